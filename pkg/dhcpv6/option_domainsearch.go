package dhcpv6

import (
	"fmt"

	"github.com/athena-dhcpd/dhcpwire/pkg/namecodec"
	"github.com/athena-dhcpd/dhcpwire/pkg/wire"
)

// NameListOption is a list of RFC 1035-encoded domain names with no
// compression permitted (spec.md §1, §6: DHCPv6 forbids compression
// pointers entirely, unlike the v4 opt 119 equivalent). It backs
// DomainSearchList (opt 24) and the SIP/NIS/BCMCS domain-name-list
// options, which share the same wire shape.
type NameListOption struct {
	CodeVal OptionCode
	Names   []string
}

func (o NameListOption) Code() OptionCode { return o.CodeVal }

func (o NameListOption) Encode(w *wire.Writer) {
	nc := namecodec.New()
	var payload []byte
	for _, name := range o.Names {
		var err error
		payload, err = nc.EncodeName(payload, name, false)
		if err != nil {
			continue
		}
	}
	w.WriteBytes(payload)
}

func decodeNameListOption(code OptionCode, payload []byte, nc namecodec.Codec) (Option, error) {
	if len(payload) == 0 {
		return nil, invalidPayload(code, "empty payload")
	}
	var names []string
	off := 0
	for off < len(payload) {
		name, next, err := nc.DecodeName(payload, off)
		if err != nil {
			return nil, fmt.Errorf("%w: option %d: %v", ErrBadDomainName, code, err)
		}
		if next <= off {
			return nil, invalidPayload(code, "name codec made no progress at offset %d", off)
		}
		names = append(names, name)
		off = next
	}
	return NameListOption{CodeVal: code, Names: names}, nil
}
