package dhcpv6

import (
	"bytes"
	"net"
	"testing"
)

func TestSolicitWithClientIDRoundTrip(t *testing.T) {
	m := NewMessage(MessageTypeSolicit)
	m.Xid = 0x123456
	m.Options.Insert(DUIDOption{CodeVal: OptionClientID, ID: DUIDLLT{
		HardwareType:  1,
		Time:          0,
		LinkLayerAddr: net.HardwareAddr{1, 2, 3, 4, 5, 6},
	}})
	m.Options.Insert(OptionRequestOption{Codes: []OptionCode{OptionDNSServers, OptionDomainSearchList}})

	raw := m.Encode()
	decodedAny, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	decoded, ok := decodedAny.(*Message)
	if !ok {
		t.Fatalf("decoded as %T, want *Message", decodedAny)
	}
	if decoded.Type != MessageTypeSolicit {
		t.Errorf("Type = %v, want Solicit", decoded.Type)
	}
	if decoded.Xid != 0x123456 {
		t.Errorf("Xid = %#x, want 0x123456", decoded.Xid)
	}

	clientID, ok := decoded.Options.Get(OptionClientID)
	if !ok {
		t.Fatal("missing ClientID option")
	}
	duid, ok := clientID.(DUIDOption).ID.(DUIDLLT)
	if !ok {
		t.Fatalf("ClientID is %T, want DUIDLLT", clientID.(DUIDOption).ID)
	}
	if !duid.LinkLayerAddr.Equal(net.HardwareAddr{1, 2, 3, 4, 5, 6}) {
		t.Errorf("LinkLayerAddr = %v", duid.LinkLayerAddr)
	}

	reencoded := decoded.Encode()
	if !bytes.Equal(reencoded, raw) {
		t.Fatalf("re-encode mismatch:\n% x\nwant\n% x", reencoded, raw)
	}
}

func TestDecodeOptionLengthExceedsBuffer(t *testing.T) {
	// msg_type=1, xid=0, then an option header claiming 20 bytes with
	// only 2 actually present.
	data := []byte{
		0x01,             // Solicit
		0x00, 0x00, 0x00, // xid
		0x00, 0x01, // option code 1 (ClientID)
		0x00, 0x14, // declared length 20
		0xAA, 0xBB, // only 2 bytes present
	}
	_, err := Decode(data)
	if err == nil {
		t.Fatal("expected error for option length exceeding buffer")
	}
}

func TestDecodeMessageTooShort(t *testing.T) {
	_, err := Decode([]byte{0x01, 0x00})
	if err == nil {
		t.Fatal("expected error for short message")
	}
}

// TestDecodeTruncationNeverPanics exercises spec.md §8's bounds property
// for the DHCPv6 family: every prefix of a well-formed message either
// fails cleanly or decodes, but never panics.
func TestDecodeTruncationNeverPanics(t *testing.T) {
	m := solicitWithClientID()
	m.Options.Insert(OptionRequestOption{Codes: []OptionCode{OptionDNSServers, OptionDomainSearchList}})
	full := m.Encode()
	for k := 0; k <= len(full); k++ {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("Decode panicked at truncation length %d: %v", k, r)
				}
			}()
			_, _ = Decode(full[:k])
		}()
	}
}

func TestIA_NAWithAddressRoundTrip(t *testing.T) {
	m := NewMessage(MessageTypeReply)
	ia := IANAOption{
		IAID: 42,
		T1:   100,
		T2:   200,
		Options: func() *Options {
			o := NewOptions()
			o.Insert(IAAddressOption{
				Address:           net.ParseIP("2001:db8::1"),
				PreferredLifetime: 3600,
				ValidLifetime:     7200,
				Options:           NewOptions(),
			})
			return o
		}(),
	}
	m.Options.Insert(ia)

	raw := m.Encode()
	decodedAny, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	decoded := decodedAny.(*Message)
	got, ok := decoded.Options.Get(OptionIANA)
	if !ok {
		t.Fatal("missing IA_NA")
	}
	gotIA := got.(IANAOption)
	if gotIA.IAID != 42 || gotIA.T1 != 100 || gotIA.T2 != 200 {
		t.Fatalf("IA_NA fixed fields = %+v", gotIA)
	}
	addrOpt, ok := gotIA.Options.Get(OptionIAAddr)
	if !ok {
		t.Fatal("missing nested IAAddress")
	}
	addr := addrOpt.(IAAddressOption)
	if !addr.Address.Equal(net.ParseIP("2001:db8::1")) {
		t.Errorf("Address = %v", addr.Address)
	}
}
