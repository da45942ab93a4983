package quote

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Marshal serializes a quote header into its binary representation typically found in a raw quote.
func (h *Header) Marshal() [HeaderSize]byte {
	var result [HeaderSize]byte
	binary.LittleEndian.PutUint16(result[0:2], h.Version)
	binary.LittleEndian.PutUint16(result[2:4], h.AttestationKeyType)
	binary.LittleEndian.PutUint32(result[4:8], h.TEEType)
	binary.LittleEndian.PutUint16(result[8:10], h.QESVN)
	binary.LittleEndian.PutUint16(result[10:12], h.PCESVN)
	copy(result[12:28], h.QEVendorID[:])
	copy(result[28:48], h.UserData[:])

	return result
}

// Marshal serializes a version 5 body descriptor.
func (d *BodyDescriptor) Marshal() [6]byte {
	var result [6]byte
	binary.LittleEndian.PutUint16(result[0:2], uint16(d.Type))
	binary.LittleEndian.PutUint32(result[2:6], d.Size)
	return result
}

// Marshal serializes an EnclaveReport to its binary representation found in a Quote Enclave (QE) report or quote.
func (er *EnclaveReport) Marshal() [EnclaveReportSize]byte {
	var result [EnclaveReportSize]byte
	copy(result[0:16], er.CPUSVN[:])
	binary.LittleEndian.PutUint32(result[16:20], er.MiscSelect)
	copy(result[20:48], er.Reserved1[:])
	copy(result[48:64], er.Attributes[:])
	copy(result[64:96], er.MRENCLAVE[:])
	copy(result[96:128], er.Reserved2[:])
	copy(result[128:160], er.MRSIGNER[:])
	copy(result[160:256], er.Reserved3[:])
	binary.LittleEndian.PutUint16(result[256:258], er.ISVProdID)
	binary.LittleEndian.PutUint16(result[258:260], er.ISVSVN)
	copy(result[260:320], er.Reserved4[:])
	copy(result[320:384], er.ReportData[:])

	return result
}

// MarshalBinary implements ReportBody.
func (er *EnclaveReport) MarshalBinary() ([]byte, error) {
	b := er.Marshal()
	return b[:], nil
}

// Marshal serializes a TD report 1.0 into its binary representation typically found in a raw quote.
func (td *TDReport10) Marshal() [TDReport10Size]byte {
	var result [TDReport10Size]byte
	copy(result[0:16], td.TEETCBSVN[:])
	copy(result[16:64], td.MRSEAM[:])
	copy(result[64:112], td.MRSIGNERSEAM[:])
	copy(result[112:120], td.SEAMAttributes[:])
	copy(result[120:128], td.TDAttributes[:])
	copy(result[128:136], td.XFAM[:])
	copy(result[136:184], td.MRTD[:])
	copy(result[184:232], td.MRCONFIGID[:])
	copy(result[232:280], td.MROWNER[:])
	copy(result[280:328], td.MROWNERCONFIG[:])
	copy(result[328:376], td.RTMR[0][:])
	copy(result[376:424], td.RTMR[1][:])
	copy(result[424:472], td.RTMR[2][:])
	copy(result[472:520], td.RTMR[3][:])
	copy(result[520:584], td.ReportData[:])

	return result
}

// MarshalBinary implements ReportBody.
func (td *TDReport10) MarshalBinary() ([]byte, error) {
	b := td.Marshal()
	return b[:], nil
}

// Marshal serializes a TD report 1.5 into its binary representation typically found in a raw quote.
func (td *TDReport15) Marshal() [TDReport15Size]byte {
	var result [TDReport15Size]byte
	td10 := td.TDReport10.Marshal()
	copy(result[0:584], td10[:])
	copy(result[584:600], td.TEETCBSVN2[:])
	copy(result[600:648], td.MRSERVICETD[:])

	return result
}

// MarshalBinary implements ReportBody.
func (td *TDReport15) MarshalBinary() ([]byte, error) {
	b := td.Marshal()
	return b[:], nil
}

// MarshalBinary serializes the QE report certification data block.
// The declared sizes are written as found, so a mismatch with the data is reported as an error.
func (q *QEReportCertificationData) MarshalBinary() ([]byte, error) {
	if int(q.QEAuthData.Size) != len(q.QEAuthData.Data) {
		return nil, fmt.Errorf("QEAuthData.Size does not match the data (declared: %d bytes, got: %d bytes)", q.QEAuthData.Size, len(q.QEAuthData.Data))
	}
	if uint64(q.CertificationData.Size) != uint64(len(q.CertificationData.Data)) {
		return nil, fmt.Errorf("CertificationData.Size does not match the data (declared: %d bytes, got: %d bytes)", q.CertificationData.Size, len(q.CertificationData.Data))
	}

	report := q.QEReport.Marshal()
	out := make([]byte, 0, q.Size())
	out = append(out, report[:]...)
	out = append(out, q.QEReportSignature[:]...)
	out = binary.LittleEndian.AppendUint16(out, q.QEAuthData.Size)
	out = append(out, q.QEAuthData.Data...)
	out = binary.LittleEndian.AppendUint16(out, uint16(q.CertificationData.Type))
	out = binary.LittleEndian.AppendUint32(out, q.CertificationData.Size)
	out = append(out, q.CertificationData.Data...)
	return out, nil
}

// Size returns the encoded size of the QE report certification data block in bytes.
func (q *QEReportCertificationData) Size() int {
	// EnclaveReport + Signature + QEAuthData (size + data) + CertificationData (type + size + data)
	return EnclaveReportSize + 64 + 2 + len(q.QEAuthData.Data) + 2 + 4 + len(q.CertificationData.Data)
}

// MarshalBinary implements AuthData.
func (a *AuthDataV3) MarshalBinary() ([]byte, error) {
	certData, err := a.QEReportCertification.MarshalBinary()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 128+len(certData))
	out = append(out, a.Signature[:]...)
	out = append(out, a.AttestationKey[:]...)
	return append(out, certData...), nil
}

// MarshalBinary implements AuthData.
func (a *AuthDataV4) MarshalBinary() ([]byte, error) {
	certData, err := a.QEReportCertification.MarshalBinary()
	if err != nil {
		return nil, err
	}
	if uint64(a.CertificationDataSize) != uint64(len(certData)) {
		return nil, fmt.Errorf("CertificationDataSize does not match the QE report certification data (declared: %d bytes, got: %d bytes)", a.CertificationDataSize, len(certData))
	}
	out := make([]byte, 0, 134+len(certData))
	out = append(out, a.Signature[:]...)
	out = append(out, a.AttestationKey[:]...)
	out = binary.LittleEndian.AppendUint16(out, uint16(a.CertificationDataType))
	out = binary.LittleEndian.AppendUint32(out, a.CertificationDataSize)
	return append(out, certData...), nil
}

// MarshalBinary serializes the quote into its wire format.
// Encoding a decoded quote reproduces the decoder's input.
func (q *Quote) MarshalBinary() ([]byte, error) {
	if q.Report == nil || q.AuthData == nil {
		return nil, errors.New("quote is missing its report body or signature data")
	}

	header := q.Header.Marshal()
	out := append([]byte{}, header[:]...)
	if q.BodyDescriptor != nil {
		desc := q.BodyDescriptor.Marshal()
		out = append(out, desc[:]...)
	}

	body, err := q.Report.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("marshaling report body: %w", err)
	}
	out = append(out, body...)

	authData, err := q.AuthData.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("marshaling quote signature: %w", err)
	}
	if uint64(q.SignedDataSize) != uint64(len(authData)) {
		return nil, fmt.Errorf("SignedDataSize does not match the signature data (declared: %d bytes, got: %d bytes)", q.SignedDataSize, len(authData))
	}
	out = binary.LittleEndian.AppendUint32(out, q.SignedDataSize)
	return append(out, authData...), nil
}
