package quote

import (
	"github.com/edgelesssys/go-dcap-quote/layout"
)

const (
	// TEETypeSGX is the type number referenced in the Quote header for SGX quotes.
	TEETypeSGX = 0x0

	// TEETypeTDX is the type number referenced in the Quote header for TDX quotes.
	TEETypeTDX = 0x81

	// HeaderSize is the size of the quote header in bytes.
	HeaderSize = 48
)

// Header is the version independent prefix of every quote.
type Header struct {
	Version            uint16
	AttestationKeyType uint16
	TEEType            uint32 // 0x0 = SGX, 0x81 = TDX
	QESVN              uint16
	PCESVN             uint16
	QEVendorID         [16]byte
	UserData           [20]byte
}

func decodeHeader(r *layout.Reader) Header {
	var h Header
	h.Version = r.Uint16()
	h.AttestationKeyType = r.Uint16()
	h.TEEType = r.Uint32()
	h.QESVN = r.Uint16()
	h.PCESVN = r.Uint16()
	r.Read(h.QEVendorID[:])
	r.Read(h.UserData[:])
	return h
}

// DecodeHeader decodes the 48 byte quote header from the start of raw.
// Bytes following the header are ignored.
func DecodeHeader(raw []byte) (Header, error) {
	r := layout.NewReader(raw)
	h := decodeHeader(r)
	if err := r.Err(); err != nil {
		return Header{}, err
	}
	return h, nil
}
