// Package tdxproto converts decoded TDX quotes into the protobuf representation of github.com/google/go-tdx-guest.
//
// This allows verification code written against go-tdx-guest to consume quotes decoded by this module.
package tdxproto

import (
	"encoding/binary"
	"fmt"

	"github.com/edgelesssys/go-dcap-quote/quote"
	pb "github.com/google/go-tdx-guest/proto/tdx"
)

// FromQuote converts a version 4 TDX quote into a go-tdx-guest QuoteV4 message.
// Quotes of other versions or TEEs are rejected with a *quote.UnsupportedVersionError.
func FromQuote(q *quote.Quote) (*pb.QuoteV4, error) {
	if q.Header.Version != 4 {
		return nil, &quote.UnsupportedVersionError{Version: q.Header.Version, Variant: "go-tdx-guest QuoteV4 requires version 4"}
	}
	body, ok := q.Report.(*quote.TDReport10)
	if !ok {
		return nil, &quote.UnsupportedVersionError{Version: q.Header.Version, Variant: fmt.Sprintf("go-tdx-guest QuoteV4 requires a TD report 1.0, got %T", q.Report)}
	}
	authData, ok := q.AuthData.(*quote.AuthDataV4)
	if !ok {
		return nil, &quote.UnsupportedVersionError{Version: q.Header.Version, Variant: fmt.Sprintf("go-tdx-guest QuoteV4 requires version 4 signature data, got %T", q.AuthData)}
	}
	certData := authData.QEReportCertification.CertificationData
	if certData.Type != quote.CertificationDataPCKCertificateChain {
		return nil, fmt.Errorf("go-tdx-guest QuoteV4 requires a PCK certificate chain, got %s", certData.Type)
	}

	return &pb.QuoteV4{
		Header:         header(q.Header),
		TdQuoteBody:    tdQuoteBody(body),
		SignedDataSize: q.SignedDataSize,
		SignedData: &pb.Ecdsa256BitQuoteV4AuthData{
			Signature:           clone(authData.Signature[:]),
			EcdsaAttestationKey: clone(authData.AttestationKey[:]),
			CertificationData: &pb.CertificationData{
				CertificateDataType: uint32(authData.CertificationDataType),
				Size:                authData.CertificationDataSize,
				QeReportCertificationData: &pb.QEReportCertificationData{
					QeReport:          enclaveReport(&authData.QEReportCertification.QEReport),
					QeReportSignature: clone(authData.QEReportCertification.QEReportSignature[:]),
					QeAuthData: &pb.QeAuthData{
						ParsedDataSize: uint32(authData.QEReportCertification.QEAuthData.Size),
						Data:           clone(authData.QEReportCertification.QEAuthData.Data),
					},
					PckCertificateChainData: &pb.PCKCertificateChainData{
						CertificateDataType: uint32(certData.Type),
						Size:                certData.Size,
						PckCertChain:        clone(certData.Data),
					},
				},
			},
		},
	}, nil
}

func header(h quote.Header) *pb.Header {
	return &pb.Header{
		Version:            uint32(h.Version),
		AttestationKeyType: uint32(h.AttestationKeyType),
		TeeType:            h.TEEType,
		QeSvn:              binary.LittleEndian.AppendUint16(nil, h.QESVN),
		PceSvn:             binary.LittleEndian.AppendUint16(nil, h.PCESVN),
		QeVendorId:         clone(h.QEVendorID[:]),
		UserData:           clone(h.UserData[:]),
	}
}

func tdQuoteBody(td *quote.TDReport10) *pb.TDQuoteBody {
	rtmrs := make([][]byte, len(td.RTMR))
	for i := range td.RTMR {
		rtmrs[i] = clone(td.RTMR[i][:])
	}
	return &pb.TDQuoteBody{
		TeeTcbSvn:      clone(td.TEETCBSVN[:]),
		MrSeam:         clone(td.MRSEAM[:]),
		MrSignerSeam:   clone(td.MRSIGNERSEAM[:]),
		SeamAttributes: clone(td.SEAMAttributes[:]),
		TdAttributes:   clone(td.TDAttributes[:]),
		Xfam:           clone(td.XFAM[:]),
		MrTd:           clone(td.MRTD[:]),
		MrConfigId:     clone(td.MRCONFIGID[:]),
		MrOwner:        clone(td.MROWNER[:]),
		MrOwnerConfig:  clone(td.MROWNERCONFIG[:]),
		Rtmrs:          rtmrs,
		ReportData:     clone(td.ReportData[:]),
	}
}

func enclaveReport(er *quote.EnclaveReport) *pb.EnclaveReport {
	return &pb.EnclaveReport{
		CpuSvn:     clone(er.CPUSVN[:]),
		MiscSelect: er.MiscSelect,
		Reserved1:  clone(er.Reserved1[:]),
		Attributes: clone(er.Attributes[:]),
		MrEnclave:  clone(er.MRENCLAVE[:]),
		Reserved2:  clone(er.Reserved2[:]),
		MrSigner:   clone(er.MRSIGNER[:]),
		Reserved3:  clone(er.Reserved3[:]),
		IsvProdId:  uint32(er.ISVProdID),
		IsvSvn:     uint32(er.ISVSVN),
		Reserved4:  clone(er.Reserved4[:]),
		ReportData: clone(er.ReportData[:]),
	}
}

func clone(b []byte) []byte {
	return append([]byte{}, b...)
}
