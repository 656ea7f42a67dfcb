package wire

import (
	"errors"
	"net"
	"testing"
)

func TestCursorPrimitives(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x00, 0x00, 0x00, 0x04, 0xAA, 0xBB}
	c := NewCursor(buf)

	u8, err := c.ReadU8()
	if err != nil || u8 != 0x01 {
		t.Fatalf("ReadU8 = %v, %v", u8, err)
	}
	u16, err := c.ReadU16()
	if err != nil || u16 != 0x0203 {
		t.Fatalf("ReadU16 = %v, %v", u16, err)
	}
	u32, err := c.ReadU32()
	if err != nil || u32 != 0x00000004 {
		t.Fatalf("ReadU32 = %v, %v", u32, err)
	}
	rest, err := c.Slice(2)
	if err != nil || rest[0] != 0xAA || rest[1] != 0xBB {
		t.Fatalf("Slice = %v, %v", rest, err)
	}
	if c.Len() != 0 {
		t.Fatalf("Len = %d, want 0", c.Len())
	}
}

func TestCursorUnderflow(t *testing.T) {
	c := NewCursor([]byte{0x01})
	_, err := c.ReadU16()
	var nb *NotEnoughBytesError
	if !errors.As(err, &nb) {
		t.Fatalf("expected NotEnoughBytesError, got %v", err)
	}
	if nb.Need != 2 || nb.Have != 1 {
		t.Errorf("NotEnoughBytesError = %+v, want {2 1}", nb)
	}
}

func TestCursorUint24(t *testing.T) {
	c := NewCursor([]byte{0x12, 0x34, 0x56, 0x78})
	v, err := c.ReadUint24()
	if err != nil || v != 0x123456 {
		t.Fatalf("ReadUint24 = %#x, %v", v, err)
	}
}

func TestCursorIPv4IPv6(t *testing.T) {
	c := NewCursor([]byte{10, 0, 0, 1, 0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1})
	ip4, err := c.ReadIPv4()
	if err != nil || !ip4.Equal(net.IPv4(10, 0, 0, 1)) {
		t.Fatalf("ReadIPv4 = %v, %v", ip4, err)
	}
	ip6, err := c.ReadIPv6()
	if err != nil || ip6.String() != "2001:db8::1" {
		t.Fatalf("ReadIPv6 = %v, %v", ip6, err)
	}
}

func TestCursorSeek(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4})
	if err := c.Seek(2); err != nil {
		t.Fatal(err)
	}
	v, err := c.ReadU8()
	if err != nil || v != 3 {
		t.Fatalf("ReadU8 after Seek = %v, %v", v, err)
	}
	if err := c.Seek(99); err == nil {
		t.Error("Seek past end should fail")
	}
}

func TestWriterPrimitivesRoundTrip(t *testing.T) {
	w := NewWriter(0)
	w.WriteU8(0x01)
	w.WriteU16(0x0203)
	w.WriteU32(0x04050607)
	w.WriteUint24(0x0a0b0c)
	w.WriteIPv4(net.IPv4(192, 168, 1, 1))
	w.WriteFill(2, 0xFF)

	got := w.Bytes()
	want := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x0a, 0x0b, 0x0c, 192, 168, 1, 1, 0xFF, 0xFF}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestWriterReservePatch(t *testing.T) {
	w := NewWriter(0)
	w.WriteU8(0x42)
	lenPos := w.Reserve(2)
	w.WriteBytes([]byte{1, 2, 3})
	w.PatchU16BE(lenPos, 3)

	got := w.Bytes()
	want := []byte{0x42, 0x00, 0x03, 1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestWriterIPv6NilYieldsZeroes(t *testing.T) {
	w := NewWriter(0)
	w.WriteIPv6(nil)
	got := w.Bytes()
	if len(got) != 16 {
		t.Fatalf("len = %d, want 16", len(got))
	}
	for _, b := range got {
		if b != 0 {
			t.Fatalf("expected all-zero, got %v", got)
		}
	}
}
