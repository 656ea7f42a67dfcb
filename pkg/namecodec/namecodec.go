// Package namecodec implements the NameCodec capability the DHCP option
// codec consumes to encode and decode RFC 1035 domain names: DHCPv4
// option 119 (Domain Search) permits RFC 1035 name compression, DHCPv6
// option 24 (Domain Search List) and option 39 (Client FQDN) forbid it
// per RFC 8415 §8. DHCPv4 option 15 (Domain Name) is carried as a plain
// octet string and does not pass through this codec. The codec packages depend only
// on the Codec interface; DNSCodec is the default implementation, backed
// by the same miekg/dns name-packing primitives athena-dhcpd's DNS proxy
// uses for its own wire format.
package namecodec

import (
	"fmt"

	"github.com/miekg/dns"
)

// Codec encodes and decodes RFC 1035 domain names against a single
// accumulating buffer. A Codec value is scoped to one option's name list:
// callers construct one with New() per option they encode, then call
// EncodeName repeatedly with the buffer returned by the previous call, so
// compression pointers (when permitted) can reference names emitted
// earlier in the same option's payload. For DHCPv4 option 119 (RFC 3397)
// and DHCPv6 option 24, that scoping buffer is the option's own payload,
// never the enclosing DHCP message.
type Codec interface {
	// EncodeName appends name to dst and returns the updated buffer. If
	// compress is true and the underlying codec supports name
	// compression, a name sharing a suffix with one already written
	// through this same Codec may be emitted as a pointer instead of
	// repeating the labels. DHCPv6 callers MUST pass compress=false
	// (RFC 8415 §8 forbids compression in DHCPv6 option payloads).
	EncodeName(dst []byte, name string, compress bool) ([]byte, error)

	// DecodeName reads one domain name starting at offset off within msg,
	// returning the decoded name and the offset immediately following it
	// (following any compression pointer chase). msg is the full buffer
	// compression pointers are resolved against.
	DecodeName(msg []byte, off int) (name string, next int, err error)
}

// DNSCodec implements Codec using github.com/miekg/dns's domain-name
// packing routines. Its zero value is usable: EncodeName allocates the
// compression table on first compressed use. New returns a codec with an
// empty compression table already in place.
type DNSCodec struct {
	compression map[string]int
}

// New returns a NameCodec scoped to a single option's worth of encoding.
func New() Codec {
	return &DNSCodec{compression: map[string]int{}}
}

// EncodeName implements Codec.
func (c *DNSCodec) EncodeName(dst []byte, name string, compress bool) ([]byte, error) {
	fqdn := dns.Fqdn(name)
	off := len(dst)
	// PackDomainName writes into msg[off:]; grow dst so it has room for
	// the worst case (one length byte per label plus the root byte can
	// never exceed the textual length plus one).
	needed := off + len(fqdn) + 2
	buf := dst
	if cap(buf) < needed {
		grown := make([]byte, len(buf), needed)
		copy(grown, buf)
		buf = grown
	}
	buf = buf[:needed]

	var comp map[string]int
	if compress {
		if c.compression == nil {
			c.compression = map[string]int{}
		}
		comp = c.compression
	}

	n, err := dns.PackDomainName(fqdn, buf, off, comp, compress)
	if err != nil {
		return nil, fmt.Errorf("namecodec: encode %q: %w", name, err)
	}
	return buf[:n], nil
}

// DecodeName implements Codec.
func (c *DNSCodec) DecodeName(msg []byte, off int) (string, int, error) {
	if off < 0 || off > len(msg) {
		return "", 0, fmt.Errorf("namecodec: offset %d out of range (len %d)", off, len(msg))
	}
	name, next, err := dns.UnpackDomainName(msg, off)
	if err != nil {
		return "", 0, fmt.Errorf("namecodec: decode at %d: %w", off, err)
	}
	return name, next, nil
}
