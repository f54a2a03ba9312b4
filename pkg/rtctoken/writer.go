package rtctoken

import "fmt"

// maxFieldLen is the largest byte length a u16 length prefix can carry.
const maxFieldLen = 0xFFFF

// Writer accumulates the canonical binary layout of a token: fixed-width
// little-endian integers, u16 length-prefixed UTF-8 strings and raw byte
// blobs. The zero value is ready to use.
//
// Errors are sticky: the first overflow is remembered and returned by
// Finish, and all subsequent appends are ignored. Finish consumes the
// writer; appending after Finish panics.
type Writer struct {
	buf  []byte
	err  error
	done bool
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, 64)}
}

// PutUint16 appends v as two little-endian bytes.
func (w *Writer) PutUint16(v uint16) {
	if w.skip() {
		return
	}
	w.buf = append(w.buf, byte(v), byte(v>>8))
}

// PutUint32 appends v as four little-endian bytes.
func (w *Writer) PutUint32(v uint32) {
	if w.skip() {
		return
	}
	w.buf = append(w.buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// PutString appends a u16 byte-length prefix followed by the UTF-8 bytes
// of s, with no terminator. Strings longer than 65535 bytes poison the
// writer with ErrEncodingOverflow.
func (w *Writer) PutString(s string) {
	if w.skip() {
		return
	}
	if len(s) > maxFieldLen {
		w.err = fmt.Errorf("%w: string field is %d bytes", ErrEncodingOverflow, len(s))
		return
	}
	w.PutUint16(uint16(len(s)))
	w.buf = append(w.buf, s...)
}

// PutBytes appends b verbatim, without a length prefix.
func (w *Writer) PutBytes(b []byte) {
	if w.skip() {
		return
	}
	w.buf = append(w.buf, b...)
}

// Finish returns the accumulated bytes, or the first error encountered.
// The writer is consumed and must not be used again.
func (w *Writer) Finish() ([]byte, error) {
	if w.done {
		panic("rtctoken: Writer.Finish called twice")
	}
	w.done = true
	if w.err != nil {
		return nil, w.err
	}
	return w.buf, nil
}

func (w *Writer) skip() bool {
	if w.done {
		panic("rtctoken: Writer used after Finish")
	}
	return w.err != nil
}
