// Package layout implements a cursor over fixed-layout, little-endian binary structures.
//
// A Reader records the first short read and turns every following call into a no-op,
// so decoders can be written as a straight sequence of field reads followed by a single
// error check:
//
//	r := layout.NewReader(raw)
//	r.Read(h.VendorID[:])
//	h.Version = r.Uint16()
//	if err := r.Err(); err != nil {
//		return err
//	}
package layout

import (
	"encoding/binary"
	"fmt"
)

// TruncatedInputError is returned when a read requests more bytes than remain in the input.
type TruncatedInputError struct {
	// Offset is the absolute position in the input at which the read was attempted.
	Offset int
	// Want is the number of bytes requested.
	Want int
	// Have is the number of bytes that were left.
	Have int
}

func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("input is truncated at offset %d (requires: %d bytes, left: %d bytes)", e.Offset, e.Want, e.Have)
}

// Reader reads consecutive fields from a byte slice.
type Reader struct {
	buf  []byte
	pos  int
	base int
	err  error
}

// NewReader returns a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Offset returns the absolute position of the cursor.
// For a Reader created by Sub, the position is relative to the outermost input.
func (r *Reader) Offset() int {
	return r.base + r.pos
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.buf) - r.pos
}

// Err returns the first error encountered by the Reader, if any.
func (r *Reader) Err() error {
	return r.err
}

// take advances the cursor by n bytes and returns them without copying.
// It returns nil once the Reader has failed.
func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || n > r.Len() {
		r.err = &TruncatedInputError{Offset: r.Offset(), Want: n, Have: r.Len()}
		return nil
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b
}

// Read fills dst with the next len(dst) bytes.
// dst is left untouched if not enough bytes remain.
func (r *Reader) Read(dst []byte) {
	if b := r.take(len(dst)); b != nil {
		copy(dst, b)
	}
}

// Bytes returns a copy of the next n bytes.
func (r *Reader) Bytes(n int) []byte {
	b := r.take(n)
	if b == nil {
		return nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

// Uint16 reads a little-endian uint16.
func (r *Reader) Uint16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// Uint32 reads a little-endian uint32.
func (r *Reader) Uint32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// Uint64 reads a little-endian uint64.
func (r *Reader) Uint64() uint64 {
	b := r.take(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// Sub consumes the next n bytes and returns a Reader bounded to them.
// Errors of the child Reader are not propagated to the parent.
// If the parent has failed or fewer than n bytes remain, the child starts in the failed state.
func (r *Reader) Sub(n int) *Reader {
	start := r.Offset()
	b := r.take(n)
	if b == nil {
		return &Reader{base: start, err: r.err}
	}
	return &Reader{buf: b, base: start}
}
