package quote

import (
	"encoding/hex"
	"fmt"
)

// ToBytes decodes a hex string into bytes. Upper- and lowercase digits are accepted.
// A "0x" prefix is not stripped and is rejected as malformed input.
func ToBytes(s string) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if !isHexChar(s[i]) {
			return nil, &MalformedHexError{Offset: i, Reason: fmt.Sprintf("invalid hex character %q", s[i])}
		}
	}
	if len(s)%2 != 0 {
		return nil, &MalformedHexError{Offset: len(s), Reason: "odd number of hex digits"}
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, &MalformedHexError{Reason: err.Error()}
	}
	return b, nil
}

// ToHex encodes bytes as a lowercase hex string.
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}

func isHexChar(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
