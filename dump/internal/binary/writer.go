package binary

import (
	"bytes"
	"encoding/binary"
)

// Writer provides buffered writing utilities for the type dump encoding.
type Writer struct {
	buf *bytes.Buffer
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{buf: &bytes.Buffer{}}
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Byte writes a single byte.
func (w *Writer) Byte(b byte) {
	w.buf.WriteByte(b)
}

// WriteBytes writes a byte slice.
func (w *Writer) WriteBytes(data []byte) {
	w.buf.Write(data)
}

// WriteU32LE writes a little-endian uint32 (fixed 4 bytes).
func (w *Writer) WriteU32LE(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteI32LE writes a little-endian int32 (fixed 4 bytes).
func (w *Writer) WriteI32LE(v int32) {
	w.WriteU32LE(uint32(v))
}

// WriteI64LE writes a little-endian int64 (fixed 8 bytes).
func (w *Writer) WriteI64LE(v int64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	w.buf.Write(buf[:])
}

// WriteCString writes s followed by a NUL terminator.
func (w *Writer) WriteCString(s string) {
	w.buf.WriteString(s)
	w.buf.WriteByte(0)
}
