// Package blobs provides synthetic DCAP quotes for tests.
//
// The quotes are assembled byte by byte from the Intel quote layout, independent of the decoder.
// Every opaque field is filled with Pattern(n, seed) using the seed constants below,
// so a decoder reading at a wrong offset produces visibly wrong values.
package blobs

import (
	"encoding/binary"
	"encoding/hex"
)

// Seeds of the opaque fields of the quotes in this package.
const (
	SeedUserData           = 0x02
	SeedTEETCBSVN          = 0x10
	SeedMRSEAM             = 0x20
	SeedMRSIGNERSEAM       = 0x30
	SeedSEAMAttributes     = 0x40
	SeedTDAttributes       = 0x48
	SeedXFAM               = 0x50
	SeedMRTD               = 0x60
	SeedMRCONFIGID         = 0x70
	SeedMROWNER            = 0x80
	SeedMROWNERCONFIG      = 0x90
	SeedRTMR0              = 0xa0 // RTMR i uses SeedRTMR0 + i*0x10
	SeedTEETCBSVN2         = 0xe0
	SeedMRSERVICETD        = 0xf0
	SeedCPUSVN             = 0x11
	SeedAttributes         = 0x21
	SeedMRENCLAVE          = 0x31
	SeedMRSIGNER           = 0x41
	SeedSignature          = 0x51
	SeedAttestationKey     = 0x61
	SeedQEReportSignature  = 0x71
	SeedPlatformManifest   = 0x81
	SeedQEReportReportData = 0x91
)

// ReportData is the report data of the TDX quotes in this package.
const ReportData = "Hello from Edgeless Systems!"

// QEMRSIGNER is the MRSIGNER of the Quoting Enclave in every quote of this package.
const QEMRSIGNER = "dc9e2a7c6f948f17474e34a7fc43ed030f7c1563f1babddf6340c82e0e54a8c5"

// QEVendorIDIntel is the vendor ID of Intel's Quoting Enclave.
const QEVendorIDIntel = "939a7233f79c4ca9940a0db3957f0607"

// Pattern returns n bytes counting upwards from seed, wrapping at 0xff.
func Pattern(n int, seed byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = seed + byte(i)
	}
	return b
}

// QEAuthData returns the Quoting Enclave authentication data of the quotes in this package.
func QEAuthData() []byte {
	b := make([]byte, 32)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

// TDXQuoteV4 returns a version 4 TDX quote with a TD report 1.0 and a PEM PCK certificate chain.
//
// Offsets: header [0:48], TD report [48:632], signed data size [632:636], signature [636:700],
// attestation key [700:764], certification data type and size [764:770], QE report [770:1154].
func TDXQuoteV4() []byte {
	h := header(4, 2, 0x81, 8, 13)
	return assemble(h, nil, tdReport10(), authDataV4(pckCertChainData()))
}

// TDXQuoteV5 returns a version 5 quote with a TD report 1.0.
// Its header has version 5, attestation key type 0, TEE type 2, QE SVN 0 and PCE SVN 129.
func TDXQuoteV5() []byte {
	h := header(5, 0, 2, 0, 129)
	return assemble(h, bodyDescriptor(2, 584), tdReport10(), authDataV4(pckCertChainData()))
}

// TDXQuoteV5Hex returns TDXQuoteV5 hex encoded.
func TDXQuoteV5Hex() string {
	return hex.EncodeToString(TDXQuoteV5())
}

// TD15QuoteV5 returns a version 5 TDX quote with a TD report 1.5.
func TD15QuoteV5() []byte {
	h := header(5, 2, 0x81, 8, 13)
	body := append(tdReport10(), Pattern(16, SeedTEETCBSVN2)...)
	body = append(body, Pattern(48, SeedMRSERVICETD)...)
	return assemble(h, bodyDescriptor(3, 648), body, authDataV4(pckCertChainData()))
}

// SGXQuoteV3 returns a version 3 SGX quote whose certification data holds a PCK certificate chain.
func SGXQuoteV3() []byte {
	h := header(3, 2, 0x0, 8, 13)
	return assemble(h, nil, sgxReport(), authDataV3(pckCertChainData()))
}

// SGXQuoteV4 returns a version 4 SGX quote whose certification data holds an opaque platform manifest.
func SGXQuoteV4() []byte {
	h := header(4, 2, 0x0, 8, 13)
	certData := certificationData(7, Pattern(100, SeedPlatformManifest))
	return assemble(h, nil, sgxReport(), authDataV4(certData))
}

func header(version, attestationKeyType uint16, teeType uint32, qeSVN, pceSVN uint16) []byte {
	b := binary.LittleEndian.AppendUint16(nil, version)
	b = binary.LittleEndian.AppendUint16(b, attestationKeyType)
	b = binary.LittleEndian.AppendUint32(b, teeType)
	b = binary.LittleEndian.AppendUint16(b, qeSVN)
	b = binary.LittleEndian.AppendUint16(b, pceSVN)
	vendorID, _ := hex.DecodeString(QEVendorIDIntel)
	b = append(b, vendorID...)
	return append(b, Pattern(20, SeedUserData)...)
}

func bodyDescriptor(bodyType uint16, size uint32) []byte {
	b := binary.LittleEndian.AppendUint16(nil, bodyType)
	return binary.LittleEndian.AppendUint32(b, size)
}

func tdReport10() []byte {
	b := Pattern(16, SeedTEETCBSVN)
	b = append(b, Pattern(48, SeedMRSEAM)...)
	b = append(b, Pattern(48, SeedMRSIGNERSEAM)...)
	b = append(b, Pattern(8, SeedSEAMAttributes)...)
	b = append(b, Pattern(8, SeedTDAttributes)...)
	b = append(b, Pattern(8, SeedXFAM)...)
	b = append(b, Pattern(48, SeedMRTD)...)
	b = append(b, Pattern(48, SeedMRCONFIGID)...)
	b = append(b, Pattern(48, SeedMROWNER)...)
	b = append(b, Pattern(48, SeedMROWNERCONFIG)...)
	for i := 0; i < 4; i++ {
		b = append(b, Pattern(48, byte(SeedRTMR0+i*0x10))...)
	}
	return append(b, reportData(ReportData)...)
}

// sgxReport is the report body of the SGX quotes: ISV product ID 1, ISV SVN 3, MISCSELECT 0.
func sgxReport() []byte {
	return enclaveReport(Pattern(32, SeedMRSIGNER), 1, 3, reportData(ReportData))
}

// qeReport is the Quoting Enclave report: ISV product ID 2, ISV SVN 8.
func qeReport() []byte {
	mrSigner, _ := hex.DecodeString(QEMRSIGNER)
	return enclaveReport(mrSigner, 2, 8, Pattern(64, SeedQEReportReportData))
}

func enclaveReport(mrSigner []byte, isvProdID, isvSVN uint16, data []byte) []byte {
	b := Pattern(16, SeedCPUSVN)
	b = binary.LittleEndian.AppendUint32(b, 0)
	b = append(b, make([]byte, 28)...)
	b = append(b, Pattern(16, SeedAttributes)...)
	b = append(b, Pattern(32, SeedMRENCLAVE)...)
	b = append(b, make([]byte, 32)...)
	b = append(b, mrSigner...)
	b = append(b, make([]byte, 96)...)
	b = binary.LittleEndian.AppendUint16(b, isvProdID)
	b = binary.LittleEndian.AppendUint16(b, isvSVN)
	b = append(b, make([]byte, 60)...)
	return append(b, data...)
}

func reportData(s string) []byte {
	b := make([]byte, 64)
	copy(b, s)
	return b
}

func certificationData(certType uint16, data []byte) []byte {
	b := binary.LittleEndian.AppendUint16(nil, certType)
	b = binary.LittleEndian.AppendUint32(b, uint32(len(data)))
	return append(b, data...)
}

func pckCertChainData() []byte {
	return certificationData(5, append([]byte(PCKCertChainPEM), 0x0))
}

func qeReportCertificationData(certData []byte) []byte {
	b := qeReport()
	b = append(b, Pattern(64, SeedQEReportSignature)...)
	b = binary.LittleEndian.AppendUint16(b, uint16(len(QEAuthData())))
	b = append(b, QEAuthData()...)
	return append(b, certData...)
}

func authDataV3(certData []byte) []byte {
	b := Pattern(64, SeedSignature)
	b = append(b, Pattern(64, SeedAttestationKey)...)
	return append(b, qeReportCertificationData(certData)...)
}

func authDataV4(certData []byte) []byte {
	qeCertData := qeReportCertificationData(certData)
	b := Pattern(64, SeedSignature)
	b = append(b, Pattern(64, SeedAttestationKey)...)
	b = append(b, certificationData(6, qeCertData)...)
	return b
}

func assemble(header, descriptor, body, authData []byte) []byte {
	b := append([]byte{}, header...)
	b = append(b, descriptor...)
	b = append(b, body...)
	b = binary.LittleEndian.AppendUint32(b, uint32(len(authData)))
	return append(b, authData...)
}
