package dhcpv6

import (
	"net"
	"testing"
)

func TestStatusCodeDoesNotCorruptFollowingOption(t *testing.T) {
	m := NewMessage(MessageTypeReply)
	m.Options.Insert(StatusCodeOption{Value: StatusNoAddrsAvail, Message: "no addrs avail"})
	m.Options.Insert(DUIDOption{CodeVal: OptionServerID, ID: DUIDLL{
		HardwareType:  1,
		LinkLayerAddr: net.HardwareAddr{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF},
	}})

	raw := m.Encode()
	decodedAny, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	decoded := decodedAny.(*Message)

	statusOpt, ok := decoded.Options.Get(OptionStatusCode)
	if !ok {
		t.Fatal("missing StatusCode option")
	}
	status := statusOpt.(StatusCodeOption)
	if status.Value != StatusNoAddrsAvail {
		t.Errorf("status code = %v, want StatusNoAddrsAvail", status.Value)
	}
	if status.Message != "no addrs avail" {
		t.Errorf("status message = %q, want %q", status.Message, "no addrs avail")
	}

	serverOpt, ok := decoded.Options.Get(OptionServerID)
	if !ok {
		t.Fatal("missing ServerID option")
	}
	duid := serverOpt.(DUIDOption).ID.(DUIDLL)
	if !duid.LinkLayerAddr.Equal(net.HardwareAddr{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}) {
		t.Errorf("ServerID link-layer address corrupted: %v", duid.LinkLayerAddr)
	}
}

func TestStatusCodeEmptyMessage(t *testing.T) {
	opt, err := decodeStatusCode([]byte{0x00, 0x00})
	if err != nil {
		t.Fatalf("decodeStatusCode: %v", err)
	}
	sc := opt.(StatusCodeOption)
	if sc.Value != StatusSuccess || sc.Message != "" {
		t.Fatalf("got %+v", sc)
	}
}

func TestStatusCodeTooShort(t *testing.T) {
	_, err := decodeStatusCode([]byte{0x00})
	if err == nil {
		t.Fatal("expected error for 1-byte status code payload")
	}
}
