package dhcpv4

import (
	"errors"
	"fmt"
)

// ErrInvalidMagic is returned when a decoded header's magic cookie does
// not match the RFC 2131 §3 sentinel.
var ErrInvalidMagic = errors.New("dhcpv4: invalid magic cookie")

// InvalidMessageTypeError reports an option 53 value outside the
// documented 1-18 range while Strict decoding is enabled.
type InvalidMessageTypeError struct {
	Value byte
}

func (e *InvalidMessageTypeError) Error() string {
	return fmt.Sprintf("dhcpv4: invalid message type %d", e.Value)
}

// InvalidPayloadError reports that a well-known option's payload failed a
// structural check during decode.
type InvalidPayloadError struct {
	Code   OptionCode
	Reason string
}

func (e *InvalidPayloadError) Error() string {
	return fmt.Sprintf("dhcpv4: option %d: invalid payload: %s", e.Code, e.Reason)
}

func invalidPayload(code OptionCode, format string, args ...any) error {
	return &InvalidPayloadError{Code: code, Reason: fmt.Sprintf(format, args...)}
}

// ErrBadDomainName is wrapped by the error a decoder returns when the
// NameCodec fails on a domain-name-bearing option. Encoders do not report
// it.
var ErrBadDomainName = errors.New("dhcpv4: invalid domain name encoding")
