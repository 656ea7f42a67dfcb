package dhcpv6

import (
	"fmt"

	"github.com/athena-dhcpd/dhcpwire/pkg/namecodec"
	"github.com/athena-dhcpd/dhcpwire/pkg/wire"
)

// ClientFQDNOption carries opt 39 (RFC 4704): a one-byte flags field plus
// an uncompressed domain name.
type ClientFQDNOption struct {
	Flags  byte
	Domain string
}

func (ClientFQDNOption) Code() OptionCode { return OptionClientFQDN }

func (o ClientFQDNOption) Encode(w *wire.Writer) {
	w.WriteU8(o.Flags)
	nc := namecodec.New()
	payload, err := nc.EncodeName(nil, o.Domain, false)
	if err != nil {
		return
	}
	w.WriteBytes(payload)
}

func decodeClientFQDN(payload []byte, nc namecodec.Codec) (Option, error) {
	if len(payload) < 1 {
		return nil, invalidPayload(OptionClientFQDN, "empty payload")
	}
	flags := payload[0]
	var domain string
	if len(payload) > 1 {
		name, _, err := nc.DecodeName(payload[1:], 0)
		if err != nil {
			return nil, fmt.Errorf("%w: option %d: %v", ErrBadDomainName, OptionClientFQDN, err)
		}
		domain = name
	}
	return ClientFQDNOption{Flags: flags, Domain: domain}, nil
}
