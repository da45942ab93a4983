package quote

import (
	"fmt"

	"github.com/edgelesssys/go-dcap-quote/layout"
)

// EmptyInputError is returned when the input holds no bytes at all.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "quote input is empty"
}

// MalformedHexError is returned when the input is not valid hexadecimal.
type MalformedHexError struct {
	// Offset is the index of the offending character in the hex string.
	// For odd-length input it is the length of the string.
	Offset int
	Reason string
}

func (e *MalformedHexError) Error() string {
	return fmt.Sprintf("malformed hex input at offset %d: %s", e.Offset, e.Reason)
}

// TruncatedInputError is returned when a structure needs more bytes than the input holds.
type TruncatedInputError = layout.TruncatedInputError

// UnsupportedVersionError is returned for quote versions or body variants the decoder does not know.
type UnsupportedVersionError struct {
	Version uint16
	// Variant describes the selector that was rejected, e.g. the TEE type or body type.
	Variant string
}

func (e *UnsupportedVersionError) Error() string {
	if e.Variant == "" {
		return fmt.Sprintf("unsupported quote version %d", e.Version)
	}
	return fmt.Sprintf("unsupported quote version %d (%s)", e.Version, e.Variant)
}

// InvalidLayoutError is returned when the input is long enough but its size fields
// or type fields contradict the expected layout.
type InvalidLayoutError struct {
	Field  string
	Reason string
}

func (e *InvalidLayoutError) Error() string {
	return fmt.Sprintf("invalid quote layout: %s: %s", e.Field, e.Reason)
}
