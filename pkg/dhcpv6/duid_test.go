package dhcpv6

import (
	"bytes"
	"net"
	"testing"

	"github.com/athena-dhcpd/dhcpwire/pkg/wire"
)

func TestDUIDLLTWireBytes(t *testing.T) {
	duid := DUIDLLT{
		HardwareType:  1,
		Time:          0,
		LinkLayerAddr: net.HardwareAddr{0x01, 0x02, 0x03, 0x04, 0x05, 0x06},
	}
	w := wire.NewWriter(0)
	duid.Encode(w)
	want := []byte{0x00, 0x01, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("DUID-LLT = % x, want % x", w.Bytes(), want)
	}
}

func TestClientIDOptionWireBytes(t *testing.T) {
	opt := DUIDOption{CodeVal: OptionClientID, ID: DUIDLLT{
		HardwareType:  1,
		Time:          0,
		LinkLayerAddr: net.HardwareAddr{0x01, 0x02, 0x03, 0x04, 0x05, 0x06},
	}}

	scratch := wire.NewWriter(0)
	opt.Encode(scratch)
	body := scratch.Bytes()

	w := wire.NewWriter(0)
	w.WriteU16(uint16(opt.Code()))
	w.WriteU16(uint16(len(body)))
	w.WriteBytes(body)

	want := []byte{
		0x00, 0x01, // option code 1 (ClientID)
		0x00, 0x0E, // length 14
		0x00, 0x01, // DUID type 1 (LLT)
		0x00, 0x01, // hardware type 1
		0x00, 0x00, 0x00, 0x00, // time 0
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, // link-layer address
	}
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("ClientID option = % x, want % x", w.Bytes(), want)
	}
}

func TestDUIDRoundTrip(t *testing.T) {
	cases := []DUID{
		DUIDLLT{HardwareType: 1, Time: 12345, LinkLayerAddr: net.HardwareAddr{1, 2, 3, 4, 5, 6}},
		DUIDEN{EnterpriseNumber: 9, Identifier: []byte("identifier")},
		DUIDLL{HardwareType: 1, LinkLayerAddr: net.HardwareAddr{1, 2, 3, 4, 5, 6}},
		DUIDUUID{UUID: [16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}},
	}
	for _, d := range cases {
		w := wire.NewWriter(0)
		d.Encode(w)
		decoded, err := DecodeDUID(w.Bytes())
		if err != nil {
			t.Fatalf("DecodeDUID(%T): %v", d, err)
		}
		w2 := wire.NewWriter(0)
		decoded.Encode(w2)
		if !bytes.Equal(w.Bytes(), w2.Bytes()) {
			t.Fatalf("round-trip mismatch for %T: % x vs % x", d, w.Bytes(), w2.Bytes())
		}
	}
}

func TestDecodeDUIDUnknownType(t *testing.T) {
	data := []byte{0x00, 0x09, 0xAA, 0xBB}
	decoded, err := DecodeDUID(data)
	if err != nil {
		t.Fatalf("DecodeDUID: %v", err)
	}
	u, ok := decoded.(DUIDUnknown)
	if !ok {
		t.Fatalf("decoded as %T, want DUIDUnknown", decoded)
	}
	if u.DUIDType != 9 || !bytes.Equal(u.Data, []byte{0xAA, 0xBB}) {
		t.Fatalf("got %+v", u)
	}
}

func TestDecodeDUIDTooShort(t *testing.T) {
	_, err := DecodeDUID([]byte{0x00})
	if err == nil {
		t.Fatal("expected error for short DUID")
	}
}
