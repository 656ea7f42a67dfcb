package dhcpv4

import (
	"github.com/athena-dhcpd/dhcpwire/pkg/namecodec"
	"github.com/athena-dhcpd/dhcpwire/pkg/wire"
)

// ClientFQDNOption carries option 81 (RFC 4702): a flags byte, two
// reserved RCODE bytes kept for wire compatibility with pre-RFC 4702
// clients, and the client's domain name.
type ClientFQDNOption struct {
	Flags  byte
	RCODE1 byte
	RCODE2 byte
	Domain string
}

func (ClientFQDNOption) Code() OptionCode { return OptionClientFQDN }

func (o ClientFQDNOption) Encode(w *wire.Writer) {
	w.WriteU8(o.Flags)
	w.WriteU8(o.RCODE1)
	w.WriteU8(o.RCODE2)
	w.WriteBytes([]byte(o.Domain))
}

func decodeClientFQDN(payload []byte, nc namecodec.Codec) (Option, error) {
	if len(payload) < 3 {
		return nil, invalidPayload(OptionClientFQDN, "expected at least 3 bytes, got %d", len(payload))
	}
	return ClientFQDNOption{
		Flags:  payload[0],
		RCODE1: payload[1],
		RCODE2: payload[2],
		Domain: string(payload[3:]),
	}, nil
}
