package dhcpv4

import (
	"fmt"

	"github.com/athena-dhcpd/dhcpwire/pkg/namecodec"
	"github.com/athena-dhcpd/dhcpwire/pkg/wire"
)

// DomainSearchOption carries option 119 (RFC 3397): a list of domain
// names encoded with RFC 1035 compression, with compression pointers
// scoped to the option's own payload.
type DomainSearchOption struct {
	Names []string
}

func (DomainSearchOption) Code() OptionCode { return OptionDomainSearch }

func (o DomainSearchOption) Encode(w *wire.Writer) {
	nc := namecodec.New()
	var payload []byte
	for _, name := range o.Names {
		var err error
		payload, err = nc.EncodeName(payload, name, true)
		if err != nil {
			// Encoding is documented as infallible for well-formed
			// in-memory messages (spec.md §7); a name that fails here
			// was never valid to construct in the first place.
			continue
		}
	}
	w.WriteBytes(payload)
}

func decodeDomainSearch(payload []byte, nc namecodec.Codec) (Option, error) {
	if len(payload) == 0 {
		return nil, invalidPayload(OptionDomainSearch, "empty payload")
	}
	var names []string
	off := 0
	for off < len(payload) {
		name, next, err := nc.DecodeName(payload, off)
		if err != nil {
			return nil, fmt.Errorf("%w: option %d: %v", ErrBadDomainName, OptionDomainSearch, err)
		}
		if next <= off {
			return nil, invalidPayload(OptionDomainSearch, "name codec made no progress at offset %d", off)
		}
		names = append(names, name)
		off = next
	}
	return DomainSearchOption{Names: names}, nil
}
