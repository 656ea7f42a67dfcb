package dhcpv6

import "github.com/athena-dhcpd/dhcpwire/pkg/wire"

// StatusCode values defined by RFC 8415 §21.13 and its extensions.
type StatusCode uint16

const (
	StatusSuccess       StatusCode = 0
	StatusUnspecFail    StatusCode = 1
	StatusNoAddrsAvail  StatusCode = 2
	StatusNoBinding     StatusCode = 3
	StatusNotOnLink     StatusCode = 4
	StatusUseMulticast  StatusCode = 5
	StatusNoPrefixAvail StatusCode = 6 // RFC 3633
)

// StatusCodeOption carries opt 13: a numeric status plus a free-text
// message. The message's length comes strictly from the enclosing
// option's length field minus the 2-byte status code — never from any
// byte inside the payload itself. An earlier implementation bug scoped
// the message read to an internal length byte instead, over-consuming
// into whatever option followed; decodeStatusCode takes payload exactly
// as handed to it by the options decoder to avoid repeating that bug.
type StatusCodeOption struct {
	Value   StatusCode
	Message string
}

func (StatusCodeOption) Code() OptionCode { return OptionStatusCode }

func (o StatusCodeOption) Encode(w *wire.Writer) {
	w.WriteU16(uint16(o.Value))
	w.WriteBytes([]byte(o.Message))
}

func decodeStatusCode(payload []byte) (Option, error) {
	if len(payload) < 2 {
		return nil, invalidPayload(OptionStatusCode, "shorter than 2-byte status field")
	}
	code := StatusCode(uint16(payload[0])<<8 | uint16(payload[1]))
	// payload is already bounded to payload_len by the caller; the message
	// is every remaining byte, full stop.
	message := string(payload[2:])
	return StatusCodeOption{Value: code, Message: message}, nil
}
