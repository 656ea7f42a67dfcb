package dhcpv6

import (
	"errors"
	"fmt"
)

// ErrRelayTooDeep is returned when a RelayMessage envelope nests more than
// MaxRelayDepth levels deep (spec.md §4.9).
var ErrRelayTooDeep = errors.New("dhcpv6: relay message nesting exceeds maximum depth")

// InvalidPayloadError reports that a well-known option's payload failed a
// structural check during decode.
type InvalidPayloadError struct {
	Code   OptionCode
	Reason string
}

func (e *InvalidPayloadError) Error() string {
	return fmt.Sprintf("dhcpv6: option %d: invalid payload: %s", e.Code, e.Reason)
}

func invalidPayload(code OptionCode, format string, args ...any) error {
	return &InvalidPayloadError{Code: code, Reason: fmt.Sprintf(format, args...)}
}

// ErrBadDomainName is wrapped by the error a decoder returns when the
// NameCodec fails on a domain-name-bearing option. Encoders do not report
// it.
var ErrBadDomainName = errors.New("dhcpv6: invalid domain name encoding")

// ErrMessageTooShort is returned when a buffer is empty, so it lacks even
// the msg_type byte. A non-empty buffer shorter than its fixed header
// fails with wire.NotEnoughBytesError instead.
var ErrMessageTooShort = errors.New("dhcpv6: message shorter than header")
