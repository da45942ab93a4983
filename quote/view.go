package quote

import (
	"encoding/binary"
)

// QuoteView is a projection of a Quote where every field is a lowercase hex string.
// Scalars are rendered as the hex encoding of their little-endian wire representation,
// e.g. a version of 5 becomes "0500".
type QuoteView struct {
	Header         HeaderView          `json:"header" yaml:"header"`
	BodyDescriptor *BodyDescriptorView `json:"bodyDescriptor,omitempty" yaml:"bodyDescriptor,omitempty"`
	Report         ReportView          `json:"report" yaml:"report"`
	SignedDataSize string              `json:"signedDataSize" yaml:"signedDataSize"`
	AuthData       AuthDataView        `json:"authData" yaml:"authData"`
}

// HeaderView is the hex projection of Header.
type HeaderView struct {
	Version            string `json:"version" yaml:"version"`
	AttestationKeyType string `json:"attestationKeyType" yaml:"attestationKeyType"`
	TEEType            string `json:"teeType" yaml:"teeType"`
	QESVN              string `json:"qeSvn" yaml:"qeSvn"`
	PCESVN             string `json:"pceSvn" yaml:"pceSvn"`
	QEVendorID         string `json:"qeVendorId" yaml:"qeVendorId"`
	UserData           string `json:"userData" yaml:"userData"`
}

// BodyDescriptorView is the hex projection of BodyDescriptor.
type BodyDescriptorView struct {
	Type string `json:"bodyType" yaml:"bodyType"`
	Size string `json:"bodySize" yaml:"bodySize"`
}

// ReportView is the hex projection of a ReportBody. Exactly one field is set.
type ReportView struct {
	Enclave *EnclaveReportView `json:"enclaveReport,omitempty" yaml:"enclaveReport,omitempty"`
	TD10    *TDReport10View    `json:"tdReport10,omitempty" yaml:"tdReport10,omitempty"`
	TD15    *TDReport15View    `json:"tdReport15,omitempty" yaml:"tdReport15,omitempty"`
}

// EnclaveReportView is the hex projection of EnclaveReport.
type EnclaveReportView struct {
	CPUSVN     string `json:"cpuSvn" yaml:"cpuSvn"`
	MiscSelect string `json:"miscSelect" yaml:"miscSelect"`
	Reserved1  string `json:"reserved1" yaml:"reserved1"`
	Attributes string `json:"attributes" yaml:"attributes"`
	MrEnclave  string `json:"mrEnclave" yaml:"mrEnclave"`
	Reserved2  string `json:"reserved2" yaml:"reserved2"`
	MrSigner   string `json:"mrSigner" yaml:"mrSigner"`
	Reserved3  string `json:"reserved3" yaml:"reserved3"`
	ISVProdID  string `json:"isvProdId" yaml:"isvProdId"`
	ISVSVN     string `json:"isvSvn" yaml:"isvSvn"`
	Reserved4  string `json:"reserved4" yaml:"reserved4"`
	ReportData string `json:"reportData" yaml:"reportData"`
}

// TDReport10View is the hex projection of TDReport10.
type TDReport10View struct {
	TEETCBSVN      string `json:"teeTcbSvn" yaml:"teeTcbSvn"`
	MrSeam         string `json:"mrSeam" yaml:"mrSeam"`
	MrSignerSeam   string `json:"mrSignerSeam" yaml:"mrSignerSeam"`
	SEAMAttributes string `json:"seamAttributes" yaml:"seamAttributes"`
	TDAttributes   string `json:"tdAttributes" yaml:"tdAttributes"`
	XFAM           string `json:"xfam" yaml:"xfam"`
	MrTd           string `json:"mrTd" yaml:"mrTd"`
	MrConfigID     string `json:"mrConfigId" yaml:"mrConfigId"`
	MrOwner        string `json:"mrOwner" yaml:"mrOwner"`
	MrOwnerConfig  string `json:"mrOwnerConfig" yaml:"mrOwnerConfig"`
	RtMr0          string `json:"rtMr0" yaml:"rtMr0"`
	RtMr1          string `json:"rtMr1" yaml:"rtMr1"`
	RtMr2          string `json:"rtMr2" yaml:"rtMr2"`
	RtMr3          string `json:"rtMr3" yaml:"rtMr3"`
	ReportData     string `json:"reportData" yaml:"reportData"`
}

// TDReport15View is the hex projection of TDReport15.
type TDReport15View struct {
	TDReport10  TDReport10View `json:"tdReport10" yaml:"tdReport10"`
	TEETCBSVN2  string         `json:"teeTcbSvn2" yaml:"teeTcbSvn2"`
	MrServiceTd string         `json:"mrServiceTd" yaml:"mrServiceTd"`
}

// AuthDataView is the hex projection of AuthData. Exactly one field is set.
type AuthDataView struct {
	V3 *AuthDataV3View `json:"v3,omitempty" yaml:"v3,omitempty"`
	V4 *AuthDataV4View `json:"v4,omitempty" yaml:"v4,omitempty"`
}

// AuthDataV3View is the hex projection of AuthDataV3.
type AuthDataV3View struct {
	ECDSASignature        string                        `json:"ecdsaSignature" yaml:"ecdsaSignature"`
	ECDSAAttestationKey   string                        `json:"ecdsaAttestationKey" yaml:"ecdsaAttestationKey"`
	QEReportCertification QEReportCertificationDataView `json:"qeReportCertificationData" yaml:"qeReportCertificationData"`
}

// AuthDataV4View is the hex projection of AuthDataV4.
type AuthDataV4View struct {
	ECDSASignature        string                        `json:"ecdsaSignature" yaml:"ecdsaSignature"`
	ECDSAAttestationKey   string                        `json:"ecdsaAttestationKey" yaml:"ecdsaAttestationKey"`
	CertificationDataType string                        `json:"certificationDataType" yaml:"certificationDataType"`
	CertificationDataSize string                        `json:"certificationDataSize" yaml:"certificationDataSize"`
	QEReportCertification QEReportCertificationDataView `json:"qeReportCertificationData" yaml:"qeReportCertificationData"`
}

// QEReportCertificationDataView is the hex projection of QEReportCertificationData.
type QEReportCertificationDataView struct {
	QEReport          EnclaveReportView     `json:"qeReport" yaml:"qeReport"`
	QEReportSignature string                `json:"qeReportSignature" yaml:"qeReportSignature"`
	QEAuthDataSize    string                `json:"qeAuthDataSize" yaml:"qeAuthDataSize"`
	QEAuthData        string                `json:"qeAuthData" yaml:"qeAuthData"`
	CertificationData CertificationDataView `json:"certificationData" yaml:"certificationData"`
}

// CertificationDataView is the hex projection of CertificationData.
type CertificationDataView struct {
	CertType string `json:"certType" yaml:"certType"`
	Size     string `json:"size" yaml:"size"`
	Body     string `json:"body" yaml:"body"`
}

// ToHexProjection projects a decoded quote into its all-hex view.
func ToHexProjection(q *Quote) QuoteView {
	v := QuoteView{
		Header:         headerView(q.Header),
		Report:         reportView(q.Report),
		SignedDataSize: hexUint32(q.SignedDataSize),
		AuthData:       authDataView(q.AuthData),
	}
	if q.BodyDescriptor != nil {
		v.BodyDescriptor = &BodyDescriptorView{
			Type: hexUint16(uint16(q.BodyDescriptor.Type)),
			Size: hexUint32(q.BodyDescriptor.Size),
		}
	}
	return v
}

func headerView(h Header) HeaderView {
	return HeaderView{
		Version:            hexUint16(h.Version),
		AttestationKeyType: hexUint16(h.AttestationKeyType),
		TEEType:            hexUint32(h.TEEType),
		QESVN:              hexUint16(h.QESVN),
		PCESVN:             hexUint16(h.PCESVN),
		QEVendorID:         ToHex(h.QEVendorID[:]),
		UserData:           ToHex(h.UserData[:]),
	}
}

func reportView(body ReportBody) ReportView {
	switch b := body.(type) {
	case *EnclaveReport:
		v := enclaveReportView(b)
		return ReportView{Enclave: &v}
	case *TDReport10:
		v := tdReport10View(b)
		return ReportView{TD10: &v}
	case *TDReport15:
		return ReportView{TD15: &TDReport15View{
			TDReport10:  tdReport10View(&b.TDReport10),
			TEETCBSVN2:  ToHex(b.TEETCBSVN2[:]),
			MrServiceTd: ToHex(b.MRSERVICETD[:]),
		}}
	default:
		return ReportView{}
	}
}

func enclaveReportView(er *EnclaveReport) EnclaveReportView {
	return EnclaveReportView{
		CPUSVN:     ToHex(er.CPUSVN[:]),
		MiscSelect: hexUint32(er.MiscSelect),
		Reserved1:  ToHex(er.Reserved1[:]),
		Attributes: ToHex(er.Attributes[:]),
		MrEnclave:  ToHex(er.MRENCLAVE[:]),
		Reserved2:  ToHex(er.Reserved2[:]),
		MrSigner:   ToHex(er.MRSIGNER[:]),
		Reserved3:  ToHex(er.Reserved3[:]),
		ISVProdID:  hexUint16(er.ISVProdID),
		ISVSVN:     hexUint16(er.ISVSVN),
		Reserved4:  ToHex(er.Reserved4[:]),
		ReportData: ToHex(er.ReportData[:]),
	}
}

func tdReport10View(td *TDReport10) TDReport10View {
	return TDReport10View{
		TEETCBSVN:      ToHex(td.TEETCBSVN[:]),
		MrSeam:         ToHex(td.MRSEAM[:]),
		MrSignerSeam:   ToHex(td.MRSIGNERSEAM[:]),
		SEAMAttributes: ToHex(td.SEAMAttributes[:]),
		TDAttributes:   ToHex(td.TDAttributes[:]),
		XFAM:           ToHex(td.XFAM[:]),
		MrTd:           ToHex(td.MRTD[:]),
		MrConfigID:     ToHex(td.MRCONFIGID[:]),
		MrOwner:        ToHex(td.MROWNER[:]),
		MrOwnerConfig:  ToHex(td.MROWNERCONFIG[:]),
		RtMr0:          ToHex(td.RTMR[0][:]),
		RtMr1:          ToHex(td.RTMR[1][:]),
		RtMr2:          ToHex(td.RTMR[2][:]),
		RtMr3:          ToHex(td.RTMR[3][:]),
		ReportData:     ToHex(td.ReportData[:]),
	}
}

func authDataView(a AuthData) AuthDataView {
	switch a := a.(type) {
	case *AuthDataV3:
		return AuthDataView{V3: &AuthDataV3View{
			ECDSASignature:        ToHex(a.Signature[:]),
			ECDSAAttestationKey:   ToHex(a.AttestationKey[:]),
			QEReportCertification: qeReportCertificationDataView(&a.QEReportCertification),
		}}
	case *AuthDataV4:
		return AuthDataView{V4: &AuthDataV4View{
			ECDSASignature:        ToHex(a.Signature[:]),
			ECDSAAttestationKey:   ToHex(a.AttestationKey[:]),
			CertificationDataType: hexUint16(uint16(a.CertificationDataType)),
			CertificationDataSize: hexUint32(a.CertificationDataSize),
			QEReportCertification: qeReportCertificationDataView(&a.QEReportCertification),
		}}
	default:
		return AuthDataView{}
	}
}

func qeReportCertificationDataView(q *QEReportCertificationData) QEReportCertificationDataView {
	return QEReportCertificationDataView{
		QEReport:          enclaveReportView(&q.QEReport),
		QEReportSignature: ToHex(q.QEReportSignature[:]),
		QEAuthDataSize:    hexUint16(q.QEAuthData.Size),
		QEAuthData:        ToHex(q.QEAuthData.Data),
		CertificationData: CertificationDataView{
			CertType: hexUint16(uint16(q.CertificationData.Type)),
			Size:     hexUint32(q.CertificationData.Size),
			Body:     ToHex(q.CertificationData.Data),
		},
	}
}

func hexUint16(v uint16) string {
	return ToHex(binary.LittleEndian.AppendUint16(nil, v))
}

func hexUint32(v uint32) string {
	return ToHex(binary.LittleEndian.AppendUint32(nil, v))
}
