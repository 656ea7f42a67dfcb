// Package metrics defines the Prometheus instrumentation that the dhcpv4
// and dhcpv6 codec packages update as they decode and encode messages.
// All metrics use the "dhcpwire_" prefix.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dhcpwire"

var (
	// MessagesDecoded counts successful decodes by protocol family
	// ("v4", "v6") and top-level message type.
	MessagesDecoded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_decoded_total",
		Help:      "Total DHCP messages decoded, by family and message type.",
	}, []string{"family", "msg_type"})

	// MessagesEncoded counts successful encodes by family and message type.
	MessagesEncoded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_encoded_total",
		Help:      "Total DHCP messages encoded, by family and message type.",
	}, []string{"family", "msg_type"})

	// DecodeErrors counts decode failures by family and error taxonomy
	// member (e.g. "not_enough_bytes", "invalid_magic", "invalid_payload",
	// "relay_too_deep").
	DecodeErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "decode_errors_total",
		Help:      "Total decode failures, by family and error kind.",
	}, []string{"family", "kind"})

	// UnknownOptionsObserved counts options a decoder could not resolve to
	// a typed variant and preserved opaquely.
	UnknownOptionsObserved = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "unknown_options_observed_total",
		Help:      "Total options decoded into an opaque Unknown variant, by family and code.",
	}, []string{"family", "code"})

	// LongOptionFragments counts RFC 3396 multi-segment option fragments
	// observed while decoding DHCPv4 options.
	LongOptionFragments = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "v4_long_option_fragments_total",
		Help:      "Total RFC 3396 contiguous same-code option fragments reassembled.",
	})

	// RelayNestingDepth observes the relay-nesting depth of decoded
	// DHCPv6 RelayMessage chains.
	RelayNestingDepth = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "v6_relay_nesting_depth",
		Help:      "Observed nesting depth of decoded DHCPv6 RelayMessage chains.",
		Buckets:   []float64{0, 1, 2, 4, 8, 16, 32},
	})
)
