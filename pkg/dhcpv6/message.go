package dhcpv6

import (
	"github.com/athena-dhcpd/dhcpwire/internal/metrics"
	"github.com/athena-dhcpd/dhcpwire/pkg/namecodec"
	"github.com/athena-dhcpd/dhcpwire/pkg/wire"
)

// AnyMessage is implemented by both Message and RelayMessage: the two
// shapes a decoded top-level DHCPv6 buffer can take, distinguished by
// msg_type (spec.md §3 "v6 Message").
type AnyMessage interface {
	MsgType() MessageType
	encodeBody(w *wire.Writer)
}

// Message is an ordinary (non-relay) DHCPv6 message: a one-byte type, a
// 24-bit transaction id, and an options list running to end-of-buffer.
type Message struct {
	Type    MessageType
	Xid     uint32 // low 24 bits significant
	Options *Options
}

// NewMessage returns a Message of the given type with an empty options list.
func NewMessage(t MessageType) *Message {
	return &Message{Type: t, Options: NewOptions()}
}

func (m *Message) MsgType() MessageType { return m.Type }

func (m *Message) encodeBody(w *wire.Writer) {
	w.WriteUint24(m.Xid)
	if m.Options == nil {
		m.Options = NewOptions()
	}
	encodeNestedOptions(w, m.Options)
}

// Encode serializes the message: msg_type, xid, then options in
// ascending stored order (spec.md §4.7). There is no End marker and no
// Pad in DHCPv6.
func (m *Message) Encode() []byte {
	w := wire.NewWriter(4)
	w.WriteU8(byte(m.Type))
	m.encodeBody(w)
	metrics.MessagesEncoded.WithLabelValues("v6", m.Type.String()).Inc()
	return w.Bytes()
}

func decodeMessage(data []byte, nc namecodec.Codec, depth int) (*Message, error) {
	if len(data) < 4 {
		metrics.DecodeErrors.WithLabelValues("v6", "not_enough_bytes").Inc()
		return nil, &wire.NotEnoughBytesError{Need: 4, Have: len(data)}
	}
	c := wire.NewCursor(data)
	typByte, _ := c.ReadU8()
	xid, err := c.ReadUint24()
	if err != nil {
		metrics.DecodeErrors.WithLabelValues("v6", "not_enough_bytes").Inc()
		return nil, err
	}
	opts, err := decodeNestedOptions(c.Remaining(), nc, depth)
	if err != nil {
		metrics.DecodeErrors.WithLabelValues("v6", "invalid_payload").Inc()
		return nil, err
	}
	m := &Message{Type: MessageType(typByte), Xid: xid, Options: opts}
	metrics.MessagesDecoded.WithLabelValues("v6", m.Type.String()).Inc()
	metrics.RelayNestingDepth.Observe(float64(depth))
	return m, nil
}

// Decode parses a raw DHCPv6 buffer using the default miekg/dns-backed
// NameCodec, returning either a *Message or a *RelayMessage depending on
// msg_type.
func Decode(data []byte) (AnyMessage, error) {
	return decodeAny(data, namecodec.New(), 0)
}

// DecodeWithCodec is Decode with an explicit NameCodec, for callers that
// need a non-default domain-name backend.
func DecodeWithCodec(data []byte, nc namecodec.Codec) (AnyMessage, error) {
	return decodeAny(data, nc, 0)
}

func decodeAny(data []byte, nc namecodec.Codec, depth int) (AnyMessage, error) {
	if len(data) < 1 {
		metrics.DecodeErrors.WithLabelValues("v6", "message_too_short").Inc()
		return nil, ErrMessageTooShort
	}
	if MessageType(data[0]).IsRelay() {
		if depth+1 > MaxRelayDepth {
			metrics.DecodeErrors.WithLabelValues("v6", "relay_too_deep").Inc()
			return nil, ErrRelayTooDeep
		}
		return decodeRelayMessage(data, nc, depth+1)
	}
	return decodeMessage(data, nc, depth)
}

func decodeRelayMsgOption(payload []byte, nc namecodec.Codec, depth int) (Option, error) {
	inner, err := decodeAny(payload, nc, depth)
	if err != nil {
		return nil, err
	}
	return RelayMsgOption{Inner: inner}, nil
}
