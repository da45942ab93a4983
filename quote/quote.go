package quote

import (
	"fmt"

	"github.com/edgelesssys/go-dcap-quote/layout"
)

// MaxQuoteSize is the largest quote accepted by the decoder.
const MaxQuoteSize = 1 << 20

// Quote is a decoded SGX or TDX DCAP quote.
type Quote struct {
	Header Header
	// BodyDescriptor is only set for version 5 quotes.
	BodyDescriptor *BodyDescriptor
	Report         ReportBody
	// SignedDataSize is the declared size of AuthData.
	SignedDataSize uint32
	AuthData       AuthData
}

// Decode decodes a hex encoded quote. A "0x" prefix is not accepted.
func Decode(hexQuote string) (*Quote, error) {
	if hexQuote == "" {
		return nil, &EmptyInputError{}
	}
	raw, err := ToBytes(hexQuote)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(raw)
}

// DecodeBytes decodes a binary quote. The input must consist of exactly one quote.
func DecodeBytes(raw []byte) (*Quote, error) {
	if len(raw) == 0 {
		return nil, &EmptyInputError{}
	}
	if len(raw) > MaxQuoteSize {
		return nil, &InvalidLayoutError{Field: "quote", Reason: fmt.Sprintf("quote is too large (over 1 MiB, received: %d bytes)", len(raw))}
	}

	r := layout.NewReader(raw)

	var q Quote
	q.Header = decodeHeader(r)
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("decoding quote header: %w", err)
	}

	if q.Header.Version == 5 {
		desc := &BodyDescriptor{
			Type: ReportType(r.Uint16()),
			Size: r.Uint32(),
		}
		if err := r.Err(); err != nil {
			return nil, fmt.Errorf("decoding body descriptor: %w", err)
		}
		q.BodyDescriptor = desc
	}

	reportType, err := selectReportType(q.Header, q.BodyDescriptor)
	if err != nil {
		return nil, err
	}
	q.Report, err = decodeReportBody(r, reportType)
	if err != nil {
		return nil, fmt.Errorf("decoding report body: %w", err)
	}

	q.SignedDataSize = r.Uint32()
	authReader := r.Sub(int(q.SignedDataSize))
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("decoding quote signature: %w", err)
	}
	q.AuthData, err = decodeAuthData(authReader, q.Header.Version)
	if err != nil {
		return nil, fmt.Errorf("decoding quote signature: %w", err)
	}
	if authReader.Len() != 0 {
		return nil, &InvalidLayoutError{
			Field:  "SignedDataSize",
			Reason: fmt.Sprintf("declares %d bytes, signature data uses %d bytes", q.SignedDataSize, int(q.SignedDataSize)-authReader.Len()),
		}
	}

	if r.Len() != 0 {
		return nil, &InvalidLayoutError{Field: "quote", Reason: fmt.Sprintf("unexpected trailing data (%d bytes at offset %d)", r.Len(), r.Offset())}
	}

	return &q, nil
}

// TEE returns a human readable name of the quote's TEE.
func (q *Quote) TEE() string {
	switch q.Report.(type) {
	case *EnclaveReport:
		return "SGX"
	case *TDReport10, *TDReport15:
		return "TDX"
	default:
		return "unknown"
	}
}

// PCKCertificationData returns the certification data holding the PCK certificate chain of the quote.
func (q *Quote) PCKCertificationData() CertificationData {
	if q.AuthData == nil {
		return CertificationData{}
	}
	return q.AuthData.QEReportCertificationData().CertificationData
}
