package dhcpv4

import (
	"net"

	"github.com/athena-dhcpd/dhcpwire/pkg/wire"
)

// ClasslessRoute is a single RFC 3442 classless static route entry.
type ClasslessRoute struct {
	PrefixLen int // 0-32
	Dest      net.IP
	Gateway   net.IP
}

// ClasslessStaticRouteOption carries option 121's route list (RFC 3442,
// spec.md §4.5).
type ClasslessStaticRouteOption struct {
	Routes []ClasslessRoute
}

func (ClasslessStaticRouteOption) Code() OptionCode { return OptionClasslessStaticRoute }

func (o ClasslessStaticRouteOption) Encode(w *wire.Writer) {
	for _, r := range o.Routes {
		w.WriteU8(byte(r.PrefixLen))
		sig := (r.PrefixLen + 7) / 8
		dest := r.Dest.To4()
		if dest == nil {
			dest = make(net.IP, 4)
		}
		w.WriteBytes(dest[:sig])
		w.WriteIPv4(r.Gateway)
	}
}

func decodeClasslessStaticRoute(payload []byte) (Option, error) {
	var routes []ClasslessRoute
	i := 0
	for i < len(payload) {
		prefixLen := int(payload[i])
		i++
		if prefixLen > 32 {
			return nil, invalidPayload(OptionClasslessStaticRoute, "prefix length %d exceeds 32", prefixLen)
		}
		sig := (prefixLen + 7) / 8
		if i+sig+4 > len(payload) {
			return nil, invalidPayload(OptionClasslessStaticRoute, "truncated route at offset %d", i)
		}
		dest := make(net.IP, 4)
		copy(dest, payload[i:i+sig])
		i += sig
		gw := make(net.IP, 4)
		copy(gw, payload[i:i+4])
		i += 4
		routes = append(routes, ClasslessRoute{PrefixLen: prefixLen, Dest: dest, Gateway: gw})
	}
	if len(routes) == 0 {
		return nil, invalidPayload(OptionClasslessStaticRoute, "empty payload")
	}
	return ClasslessStaticRouteOption{Routes: routes}, nil
}
