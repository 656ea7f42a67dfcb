package dhcpv6

import (
	"net"

	"github.com/athena-dhcpd/dhcpwire/internal/metrics"
	"github.com/athena-dhcpd/dhcpwire/pkg/namecodec"
	"github.com/athena-dhcpd/dhcpwire/pkg/wire"
)

// RelayMessage is the envelope a relay agent wraps around a client or
// server message (msg_type 12 Relay-Forward or 13 Relay-Reply), per
// spec.md §4.9. It carries exactly one RelayMsg option whose payload is
// itself a Message or a further-nested RelayMessage; decode bounds that
// nesting at MaxRelayDepth.
type RelayMessage struct {
	Type         MessageType // MessageTypeRelayForward or MessageTypeRelayReply
	HopCount     byte
	LinkAddress  net.IP
	PeerAddress  net.IP
	Options      *Options
}

// NewRelayMessage returns a RelayMessage of the given type with an empty
// options list.
func NewRelayMessage(t MessageType) *RelayMessage {
	return &RelayMessage{Type: t, Options: NewOptions()}
}

func (r *RelayMessage) MsgType() MessageType { return r.Type }

func (r *RelayMessage) encodeBody(w *wire.Writer) {
	w.WriteU8(r.HopCount)
	w.WriteIPv6(r.LinkAddress)
	w.WriteIPv6(r.PeerAddress)
	if r.Options == nil {
		r.Options = NewOptions()
	}
	encodeNestedOptions(w, r.Options)
}

// Encode serializes the envelope: msg_type, hop_count, link-address,
// peer-address, then options (which should contain exactly one RelayMsg
// carrying the wrapped message).
func (r *RelayMessage) Encode() []byte {
	w := wire.NewWriter(4 + 32)
	w.WriteU8(byte(r.Type))
	r.encodeBody(w)
	metrics.MessagesEncoded.WithLabelValues("v6", r.Type.String()).Inc()
	return w.Bytes()
}

// RelayMsg returns the decoded inner message or relay envelope carried by
// this relay message's RelayMsg option, or nil if none is present.
func (r *RelayMessage) RelayMsg() AnyMessage {
	opt, ok := r.Options.Get(OptionRelayMsg)
	if !ok {
		return nil
	}
	rm, ok := opt.(RelayMsgOption)
	if !ok {
		return nil
	}
	return rm.Inner
}

func decodeRelayMessage(data []byte, nc namecodec.Codec, depth int) (*RelayMessage, error) {
	if len(data) < 34 {
		metrics.DecodeErrors.WithLabelValues("v6", "not_enough_bytes").Inc()
		return nil, &wire.NotEnoughBytesError{Need: 34, Have: len(data)}
	}
	c := wire.NewCursor(data)
	typByte, _ := c.ReadU8()
	hopCount, _ := c.ReadU8()
	link, err := c.ReadIPv6()
	if err != nil {
		metrics.DecodeErrors.WithLabelValues("v6", "not_enough_bytes").Inc()
		return nil, err
	}
	peer, err := c.ReadIPv6()
	if err != nil {
		metrics.DecodeErrors.WithLabelValues("v6", "not_enough_bytes").Inc()
		return nil, err
	}
	opts, err := decodeNestedOptions(c.Remaining(), nc, depth)
	if err != nil {
		metrics.DecodeErrors.WithLabelValues("v6", "invalid_payload").Inc()
		return nil, err
	}
	r := &RelayMessage{
		Type:        MessageType(typByte),
		HopCount:    hopCount,
		LinkAddress: link,
		PeerAddress: peer,
		Options:     opts,
	}
	metrics.MessagesDecoded.WithLabelValues("v6", r.Type.String()).Inc()
	metrics.RelayNestingDepth.Observe(float64(depth))
	return r, nil
}

// RelayMsgOption carries opt 9: the wrapped message or relay envelope,
// recursively decoded.
type RelayMsgOption struct {
	Inner AnyMessage
}

func (RelayMsgOption) Code() OptionCode { return OptionRelayMsg }

func (o RelayMsgOption) Encode(w *wire.Writer) {
	switch inner := o.Inner.(type) {
	case *Message:
		w.WriteBytes(inner.Encode())
	case *RelayMessage:
		w.WriteBytes(inner.Encode())
	}
}
