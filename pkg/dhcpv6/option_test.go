package dhcpv6

import (
	"bytes"
	"net"
	"testing"

	"github.com/athena-dhcpd/dhcpwire/pkg/namecodec"
	"github.com/athena-dhcpd/dhcpwire/pkg/wire"
)

func TestOptionRequestOptionRoundTrip(t *testing.T) {
	opt := OptionRequestOption{Codes: []OptionCode{OptionDNSServers, OptionDomainSearchList, OptionNTPServer}}
	w := wire.NewWriter(0)
	opt.Encode(w)
	decoded, err := decodeOptionRequest(w.Bytes())
	if err != nil {
		t.Fatalf("decodeOptionRequest: %v", err)
	}
	got := decoded.(OptionRequestOption)
	if len(got.Codes) != 3 || got.Codes[0] != OptionDNSServers || got.Codes[2] != OptionNTPServer {
		t.Fatalf("got %+v", got)
	}
}

func TestVendorClassRoundTrip(t *testing.T) {
	opt := VendorClassOption{
		EnterpriseNumber: 9,
		Data:             [][]byte{[]byte("cisco"), []byte("ios-xe")},
	}
	w := wire.NewWriter(0)
	opt.Encode(w)
	decoded, err := decodeVendorClass(w.Bytes())
	if err != nil {
		t.Fatalf("decodeVendorClass: %v", err)
	}
	got := decoded.(VendorClassOption)
	if got.EnterpriseNumber != 9 || len(got.Data) != 2 || string(got.Data[0]) != "cisco" || string(got.Data[1]) != "ios-xe" {
		t.Fatalf("got %+v", got)
	}
}

func TestVendorClassTruncatedDataField(t *testing.T) {
	w := wire.NewWriter(0)
	w.WriteU32(9)
	w.WriteU16(100) // declares 100 bytes, none present
	_, err := decodeVendorClass(w.Bytes())
	if err == nil {
		t.Fatal("expected error for truncated vendor class data field")
	}
}

func TestEmptyOptionRoundTrip(t *testing.T) {
	opt, err := decodeEmptyOption(OptionRapidCommit, nil)
	if err != nil {
		t.Fatalf("decodeEmptyOption: %v", err)
	}
	w := wire.NewWriter(0)
	opt.Encode(w)
	if len(w.Bytes()) != 0 {
		t.Fatalf("RapidCommit payload should be empty, got % x", w.Bytes())
	}
}

func TestEmptyOptionRejectsNonEmptyPayload(t *testing.T) {
	if _, err := decodeEmptyOption(OptionRapidCommit, []byte{0x01}); err == nil {
		t.Fatal("expected error for non-empty RapidCommit payload")
	}
}

func TestNameListOptionRoundTrip(t *testing.T) {
	opt := NameListOption{CodeVal: OptionDomainSearchList, Names: []string{"eng.example.com", "ops.example.com"}}
	w := wire.NewWriter(0)
	opt.Encode(w)

	nc := namecodec.New()
	decoded, err := decodeNameListOption(OptionDomainSearchList, w.Bytes(), nc)
	if err != nil {
		t.Fatalf("decodeNameListOption: %v", err)
	}
	got := decoded.(NameListOption)
	if len(got.Names) != 2 || got.Names[0] != "eng.example.com." || got.Names[1] != "ops.example.com." {
		t.Fatalf("got %+v", got)
	}
}

func TestNameListOptionNeverCompresses(t *testing.T) {
	// DHCPv6 forbids name compression; encoding two names sharing a
	// suffix must not emit a compression pointer between them.
	opt := NameListOption{CodeVal: OptionDomainSearchList, Names: []string{"a.example.com", "b.example.com"}}
	w := wire.NewWriter(0)
	opt.Encode(w)
	uncompressedLen := len("a.example.com.") + 1 + len("b.example.com.") + 1
	if len(w.Bytes()) < uncompressedLen {
		t.Fatalf("payload looks compressed: %d bytes, want close to %d", len(w.Bytes()), uncompressedLen)
	}
}

func TestIPv6ListOptionRoundTrip(t *testing.T) {
	opt := IPv6ListOption{
		CodeVal:   OptionDNSServers,
		Addresses: []net.IP{net.ParseIP("2001:db8::1"), net.ParseIP("2001:db8::2")},
	}
	w := wire.NewWriter(0)
	opt.Encode(w)
	decoded, err := decodeIPv6ListOption(OptionDNSServers, w.Bytes())
	if err != nil {
		t.Fatalf("decodeIPv6ListOption: %v", err)
	}
	got := decoded.(IPv6ListOption)
	if len(got.Addresses) != 2 || !got.Addresses[0].Equal(net.ParseIP("2001:db8::1")) {
		t.Fatalf("got %+v", got)
	}
}

func TestIPv6ListOptionRejectsNonMultipleOf16(t *testing.T) {
	if _, err := decodeIPv6ListOption(OptionDNSServers, make([]byte, 17)); err == nil {
		t.Fatal("expected error for payload not a multiple of 16")
	}
}

func TestClientFQDNRoundTrip(t *testing.T) {
	opt := ClientFQDNOption{Flags: 0x01, Domain: "host.example.com"}
	w := wire.NewWriter(0)
	opt.Encode(w)

	nc := namecodec.New()
	decoded, err := decodeClientFQDN(w.Bytes(), nc)
	if err != nil {
		t.Fatalf("decodeClientFQDN: %v", err)
	}
	got := decoded.(ClientFQDNOption)
	if got.Flags != 0x01 || got.Domain != "host.example.com." {
		t.Fatalf("got %+v", got)
	}
}

func TestUnknownOptionPreserved(t *testing.T) {
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	opt, err := decodeOption(OptionCode(9999), payload, namecodec.New(), 0)
	if err != nil {
		t.Fatalf("decodeOption: %v", err)
	}
	u, ok := opt.(Unknown)
	if !ok {
		t.Fatalf("decoded as %T, want Unknown", opt)
	}
	w := wire.NewWriter(0)
	u.Encode(w)
	if !bytes.Equal(w.Bytes(), payload) {
		t.Fatalf("re-encode = % x, want % x", w.Bytes(), payload)
	}
}
