package quote

import (
	"fmt"

	"github.com/edgelesssys/go-dcap-quote/layout"
)

// ReportType identifies the variant of a quote's report body.
// The values match the body type of a version 5 body descriptor.
type ReportType uint16

const (
	// ReportTypeSGX is an SGX enclave report.
	ReportTypeSGX ReportType = 1
	// ReportTypeTD10 is a TD report of TDX module 1.0.
	ReportTypeTD10 ReportType = 2
	// ReportTypeTD15 is a TD report of TDX module 1.5.
	ReportTypeTD15 ReportType = 3
)

// Sizes of the report body variants in bytes.
const (
	EnclaveReportSize = 384
	TDReport10Size    = 584
	TDReport15Size    = TDReport10Size + 16 + 48
)

// String returns a string representation of the report type.
func (t ReportType) String() string {
	switch t {
	case ReportTypeSGX:
		return "SGX enclave report"
	case ReportTypeTD10:
		return "TD report 1.0"
	case ReportTypeTD15:
		return "TD report 1.5"
	default:
		return fmt.Sprintf("[unknown report type: %d]", uint16(t))
	}
}

// Size returns the size in bytes of a report body of this type, or 0 for unknown types.
func (t ReportType) Size() int {
	switch t {
	case ReportTypeSGX:
		return EnclaveReportSize
	case ReportTypeTD10:
		return TDReport10Size
	case ReportTypeTD15:
		return TDReport15Size
	default:
		return 0
	}
}

// ReportBody is the report body of a quote.
// It is one of *EnclaveReport, *TDReport10 or *TDReport15.
type ReportBody interface {
	// ReportType returns the variant of the report body.
	ReportType() ReportType
	// MarshalBinary encodes the report body in its wire format.
	MarshalBinary() ([]byte, error)

	isReportBody()
}

// BodyDescriptor precedes the report body in version 5 quotes.
type BodyDescriptor struct {
	Type ReportType
	Size uint32
}

// EnclaveReport is the report of an SGX enclave.
// It is the report body of SGX quotes and the Quoting Enclave (QE) report of every quote.
type EnclaveReport struct {
	CPUSVN     [16]byte
	MiscSelect uint32
	Reserved1  [28]byte
	Attributes [16]byte
	MRENCLAVE  [32]byte
	Reserved2  [32]byte
	MRSIGNER   [32]byte
	Reserved3  [96]byte
	ISVProdID  uint16
	ISVSVN     uint16
	Reserved4  [60]byte
	ReportData [64]byte
}

// ReportType implements ReportBody.
func (*EnclaveReport) ReportType() ReportType { return ReportTypeSGX }

func (*EnclaveReport) isReportBody() {}

// TDReport10 is the TD report of a TDX 1.0 quote.
type TDReport10 struct {
	TEETCBSVN      [16]byte
	MRSEAM         [48]byte // SHA384
	MRSIGNERSEAM   [48]byte // SHA384
	SEAMAttributes [8]byte
	TDAttributes   [8]byte
	XFAM           [8]byte
	MRTD           [48]byte    // SHA384
	MRCONFIGID     [48]byte    // SHA384
	MROWNER        [48]byte    // SHA384
	MROWNERCONFIG  [48]byte    // SHA384
	RTMR           [4][48]byte // 4x SHA384 - runtime measurements
	ReportData     [64]byte
}

// ReportType implements ReportBody.
func (*TDReport10) ReportType() ReportType { return ReportTypeTD10 }

func (*TDReport10) isReportBody() {}

// TDReport15 is the TD report of a TDX 1.5 quote.
// It extends TDReport10 with a second TEE TCB SVN and the measurement of the service TD.
type TDReport15 struct {
	TDReport10
	TEETCBSVN2  [16]byte
	MRSERVICETD [48]byte // SHA384
}

// ReportType implements ReportBody.
func (*TDReport15) ReportType() ReportType { return ReportTypeTD15 }

func (*TDReport15) isReportBody() {}

func decodeEnclaveReport(r *layout.Reader) EnclaveReport {
	var er EnclaveReport
	r.Read(er.CPUSVN[:])
	er.MiscSelect = r.Uint32()
	r.Read(er.Reserved1[:])
	r.Read(er.Attributes[:])
	r.Read(er.MRENCLAVE[:])
	r.Read(er.Reserved2[:])
	r.Read(er.MRSIGNER[:])
	r.Read(er.Reserved3[:])
	er.ISVProdID = r.Uint16()
	er.ISVSVN = r.Uint16()
	r.Read(er.Reserved4[:])
	r.Read(er.ReportData[:])
	return er
}

func decodeTDReport10(r *layout.Reader) TDReport10 {
	var td TDReport10
	r.Read(td.TEETCBSVN[:])
	r.Read(td.MRSEAM[:])
	r.Read(td.MRSIGNERSEAM[:])
	r.Read(td.SEAMAttributes[:])
	r.Read(td.TDAttributes[:])
	r.Read(td.XFAM[:])
	r.Read(td.MRTD[:])
	r.Read(td.MRCONFIGID[:])
	r.Read(td.MROWNER[:])
	r.Read(td.MROWNERCONFIG[:])
	for i := range td.RTMR {
		r.Read(td.RTMR[i][:])
	}
	r.Read(td.ReportData[:])
	return td
}

func decodeTDReport15(r *layout.Reader) TDReport15 {
	var td TDReport15
	td.TDReport10 = decodeTDReport10(r)
	r.Read(td.TEETCBSVN2[:])
	r.Read(td.MRSERVICETD[:])
	return td
}

// decodeReportBody decodes the report body variant t.
// No partial report is returned if the reader runs out of data.
func decodeReportBody(r *layout.Reader, t ReportType) (ReportBody, error) {
	var body ReportBody
	switch t {
	case ReportTypeSGX:
		er := decodeEnclaveReport(r)
		body = &er
	case ReportTypeTD10:
		td := decodeTDReport10(r)
		body = &td
	case ReportTypeTD15:
		td := decodeTDReport15(r)
		body = &td
	default:
		return nil, fmt.Errorf("unknown report type %d", uint16(t))
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", t, err)
	}
	return body, nil
}

// selectReportType returns the report body variant of a quote.
// desc is only consulted for version 5 quotes.
func selectReportType(h Header, desc *BodyDescriptor) (ReportType, error) {
	switch h.Version {
	case 3:
		return ReportTypeSGX, nil
	case 4:
		switch h.TEEType {
		case TEETypeSGX:
			return ReportTypeSGX, nil
		case TEETypeTDX:
			return ReportTypeTD10, nil
		default:
			return 0, &UnsupportedVersionError{Version: h.Version, Variant: fmt.Sprintf("TEE type 0x%x", h.TEEType)}
		}
	case 5:
		if desc == nil {
			return 0, &InvalidLayoutError{Field: "BodyDescriptor", Reason: "missing for version 5 quote"}
		}
		size := desc.Type.Size()
		if size == 0 {
			return 0, &UnsupportedVersionError{Version: h.Version, Variant: fmt.Sprintf("body type %d", uint16(desc.Type))}
		}
		if uint64(desc.Size) != uint64(size) {
			return 0, &InvalidLayoutError{
				Field:  "BodyDescriptor.Size",
				Reason: fmt.Sprintf("%s requires %d bytes, descriptor declares %d bytes", desc.Type, size, desc.Size),
			}
		}
		return desc.Type, nil
	default:
		return 0, &UnsupportedVersionError{Version: h.Version}
	}
}
