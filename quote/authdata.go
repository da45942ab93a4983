package quote

import (
	"fmt"

	"github.com/edgelesssys/go-dcap-quote/layout"
)

/*
   Quote Signature Parsing
   Based on:
   https://github.com/intel/SGXDataCenterAttestationPrimitives/blob/c057b236790834cf7e547ebf90da91c53c7ed7f9/QuoteVerification/QVL/Src/AttestationLibrary/src/QuoteVerification/QuoteStructures.h
*/

// CertificationDataType is the type of a CertificationData blob.
type CertificationDataType uint16

const (
	// CertificationDataPPIDCleartext is the PCK identifier: PPID in plain text, CPUSVN and PCESVN.
	CertificationDataPPIDCleartext CertificationDataType = 1
	// CertificationDataPPIDEncryptedRSA2048 is the PCK identifier: PPID encrypted using RSA-2048-OAEP, CPUSVN and PCESVN.
	CertificationDataPPIDEncryptedRSA2048 CertificationDataType = 2
	// CertificationDataPPIDEncryptedRSA3072 is the PCK identifier: PPID encrypted using RSA-3072-OAEP, CPUSVN and PCESVN.
	CertificationDataPPIDEncryptedRSA3072 CertificationDataType = 3
	// CertificationDataPCKCertificate is the PCK leaf certificate.
	CertificationDataPCKCertificate CertificationDataType = 4
	// CertificationDataPCKCertificateChain is the PCK certificate chain (encoded in PEM, \0 byte terminated).
	CertificationDataPCKCertificateChain CertificationDataType = 5
	// CertificationDataQEReportCertificationData holds QEReportCertificationData.
	CertificationDataQEReportCertificationData CertificationDataType = 6
	// CertificationDataPlatformManifest is the platform manifest.
	CertificationDataPlatformManifest CertificationDataType = 7
)

// String returns a string representation of the certification data type.
func (t CertificationDataType) String() string {
	switch t {
	case CertificationDataPPIDCleartext:
		return "PPID-cleartext"
	case CertificationDataPPIDEncryptedRSA2048:
		return "PPID-encrypted-RSA-2048"
	case CertificationDataPPIDEncryptedRSA3072:
		return "PPID-encrypted-RSA-3072"
	case CertificationDataPCKCertificate:
		return "PCK-leaf-certificate"
	case CertificationDataPCKCertificateChain:
		return "PCK-certificate-chain"
	case CertificationDataQEReportCertificationData:
		return "QE-report-certification-data"
	case CertificationDataPlatformManifest:
		return "platform-manifest"
	default:
		return fmt.Sprintf("[unknown certification data type: %d]", uint16(t))
	}
}

// AuthData is the signature part of a quote.
// It is one of *AuthDataV3 or *AuthDataV4.
type AuthData interface {
	// QEReportCertificationData returns the Quoting Enclave (QE) report and its certification data.
	QEReportCertificationData() *QEReportCertificationData
	// MarshalBinary encodes the auth data in its wire format.
	MarshalBinary() ([]byte, error)

	isAuthData()
}

// AuthDataV3 is the ECDSA-256 signature data of a version 3 quote.
type AuthDataV3 struct {
	Signature             [64]byte // ECDSA256 signature over header and report body
	AttestationKey        [64]byte // ECDSA256 public key
	QEReportCertification QEReportCertificationData
}

// QEReportCertificationData implements AuthData.
func (a *AuthDataV3) QEReportCertificationData() *QEReportCertificationData {
	return &a.QEReportCertification
}

func (*AuthDataV3) isAuthData() {}

// AuthDataV4 is the ECDSA-256 signature data of a version 4 or 5 quote.
type AuthDataV4 struct {
	Signature             [64]byte // ECDSA256 signature over header and report body
	AttestationKey        [64]byte // ECDSA256 public key
	CertificationDataType CertificationDataType
	// CertificationDataSize is the declared size of QEReportCertification.
	CertificationDataSize uint32
	QEReportCertification QEReportCertificationData
}

// QEReportCertificationData implements AuthData.
func (a *AuthDataV4) QEReportCertificationData() *QEReportCertificationData {
	return &a.QEReportCertification
}

func (*AuthDataV4) isAuthData() {}

// QEReportCertificationData holds the Quoting Enclave (QE) report and the data certifying its attestation key.
type QEReportCertificationData struct {
	QEReport          EnclaveReport
	QEReportSignature [64]byte // ECDSA256 signature
	QEAuthData        QEAuthData
	CertificationData CertificationData // usually the PEM encoded PCK certificate chain
}

// QEAuthData holds the Quoting Enclave (QE) authentication data.
type QEAuthData struct {
	// Size is the declared length of Data.
	Size uint16
	Data []byte
}

// CertificationData is a generic typed and length prefixed data blob from Intel's library.
type CertificationData struct {
	Type CertificationDataType
	// Size is the declared length of Data.
	Size uint32
	Data []byte
}

func decodeQEAuthData(r *layout.Reader) QEAuthData {
	var d QEAuthData
	d.Size = r.Uint16()
	d.Data = r.Bytes(int(d.Size))
	return d
}

func decodeCertificationData(r *layout.Reader) CertificationData {
	var c CertificationData
	c.Type = CertificationDataType(r.Uint16())
	c.Size = r.Uint32()
	c.Data = r.Bytes(int(c.Size))
	return c
}

func decodeQEReportCertificationData(r *layout.Reader) QEReportCertificationData {
	var q QEReportCertificationData
	q.QEReport = decodeEnclaveReport(r)
	r.Read(q.QEReportSignature[:])
	q.QEAuthData = decodeQEAuthData(r)
	q.CertificationData = decodeCertificationData(r)
	return q
}

func decodeAuthDataV3(r *layout.Reader) (*AuthDataV3, error) {
	var a AuthDataV3
	r.Read(a.Signature[:])
	r.Read(a.AttestationKey[:])
	a.QEReportCertification = decodeQEReportCertificationData(r)
	if err := r.Err(); err != nil {
		return nil, err
	}
	return &a, nil
}

func decodeAuthDataV4(r *layout.Reader) (*AuthDataV4, error) {
	var a AuthDataV4
	r.Read(a.Signature[:])
	r.Read(a.AttestationKey[:])
	a.CertificationDataType = CertificationDataType(r.Uint16())
	a.CertificationDataSize = r.Uint32()
	if err := r.Err(); err != nil {
		return nil, err
	}

	if a.CertificationDataType != CertificationDataQEReportCertificationData {
		return nil, &InvalidLayoutError{
			Field:  "CertificationDataType",
			Reason: fmt.Sprintf("expected %s (%d), got %d", CertificationDataQEReportCertificationData, CertificationDataQEReportCertificationData, uint16(a.CertificationDataType)),
		}
	}

	certReader := r.Sub(int(a.CertificationDataSize))
	if err := r.Err(); err != nil {
		return nil, err
	}
	a.QEReportCertification = decodeQEReportCertificationData(certReader)
	if err := certReader.Err(); err != nil {
		return nil, err
	}
	if certReader.Len() != 0 {
		return nil, &InvalidLayoutError{
			Field:  "CertificationDataSize",
			Reason: fmt.Sprintf("declares %d bytes, QE report certification data uses %d bytes", a.CertificationDataSize, int(a.CertificationDataSize)-certReader.Len()),
		}
	}
	return &a, nil
}

// decodeAuthData decodes the auth data layout belonging to the given quote version.
func decodeAuthData(r *layout.Reader, version uint16) (AuthData, error) {
	switch version {
	case 3:
		a, err := decodeAuthDataV3(r)
		if err != nil {
			return nil, err
		}
		return a, nil
	case 4, 5:
		a, err := decodeAuthDataV4(r)
		if err != nil {
			return nil, err
		}
		return a, nil
	default:
		return nil, &UnsupportedVersionError{Version: version, Variant: "auth data"}
	}
}
