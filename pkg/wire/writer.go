package wire

import (
	"encoding/binary"
	"net"
)

// Writer is an append-only big-endian byte sink. Writes never fail: there
// is no size cap and no external sink that can report an error, so every
// write method has a void signature. Reserve/Patch support writing a
// length prefix discovered only after its payload has been emitted.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer, optionally pre-sized via capacity hint.
func NewWriter(capHint int) *Writer {
	return &Writer{buf: make([]byte, 0, capHint)}
}

// Bytes returns the accumulated output. The returned slice aliases the
// Writer's internal buffer.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// WriteU8 appends a single byte.
func (w *Writer) WriteU8(v byte) { w.buf = append(w.buf, v) }

// WriteU16 appends a big-endian uint16.
func (w *Writer) WriteU16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// WriteU32 appends a big-endian uint32.
func (w *Writer) WriteU32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// WriteU64 appends a big-endian uint64.
func (w *Writer) WriteU64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// WriteUint24 appends a big-endian 24-bit integer, truncating anything
// above the low 24 bits.
func (w *Writer) WriteUint24(v uint32) {
	w.buf = append(w.buf, byte(v>>16), byte(v>>8), byte(v))
}

// WriteBytes appends a raw byte slice.
func (w *Writer) WriteBytes(b []byte) { w.buf = append(w.buf, b...) }

// WriteFill appends n copies of byte.
func (w *Writer) WriteFill(n int, b byte) {
	for i := 0; i < n; i++ {
		w.buf = append(w.buf, b)
	}
}

// WriteIPv4 appends the 4-byte form of ip, or four zero bytes if ip is nil
// or not a valid IPv4 address.
func (w *Writer) WriteIPv4(ip net.IP) {
	v4 := ip.To4()
	if v4 == nil {
		w.WriteFill(4, 0)
		return
	}
	w.buf = append(w.buf, v4...)
}

// WriteIPv6 appends the 16-byte form of ip, or sixteen zero bytes if ip is
// nil or not a valid IPv6 address.
func (w *Writer) WriteIPv6(ip net.IP) {
	v6 := ip.To16()
	if v6 == nil {
		w.WriteFill(16, 0)
		return
	}
	w.buf = append(w.buf, v6...)
}

// Reserve appends n zero bytes and returns their offset, for a length or
// other field that can only be computed after subsequent writes.
func (w *Writer) Reserve(n int) int {
	pos := len(w.buf)
	w.WriteFill(n, 0)
	return pos
}

// PatchU16BE overwrites the 2 bytes at pos (previously produced by
// Reserve(2)) with v in big-endian order.
func (w *Writer) PatchU16BE(pos int, v uint16) {
	binary.BigEndian.PutUint16(w.buf[pos:pos+2], v)
}

// PatchU8 overwrites the byte at pos (previously produced by Reserve(1)).
func (w *Writer) PatchU8(pos int, v byte) {
	w.buf[pos] = v
}
