package dhcpv6

import (
	"fmt"
	"net"

	"github.com/athena-dhcpd/dhcpwire/internal/metrics"
	"github.com/athena-dhcpd/dhcpwire/pkg/namecodec"
	"github.com/athena-dhcpd/dhcpwire/pkg/wire"
)

// Option is the closed interface implemented by every DHCPv6 option
// variant. Encode appends this option's payload (without the leading
// 2-byte code and 2-byte length, which the options container writes) to w.
type Option interface {
	Code() OptionCode
	Encode(w *wire.Writer)
}

// decodeOption dispatches a single option's payload to its typed decoder.
// payload is exactly the bytes between the option's length-prefixed
// boundaries; a decoder that does not consume payload in full fails with
// InvalidPayloadError.
func decodeOption(code OptionCode, payload []byte, nc namecodec.Codec, depth int) (Option, error) {
	switch code {
	case OptionClientID:
		return decodeDUIDOption(code, payload)
	case OptionServerID:
		return decodeDUIDOption(code, payload)

	case OptionIANA:
		return decodeIANA(payload, nc, depth)
	case OptionIATA:
		return decodeIATA(payload, nc, depth)
	case OptionIAPD:
		return decodeIAPD(payload, nc, depth)
	case OptionIAAddr:
		return decodeIAAddress(payload, nc, depth)
	case OptionIAPrefix:
		return decodeIAPrefix(payload, nc, depth)

	case OptionORO:
		return decodeOptionRequest(payload)

	case OptionPreference:
		return decodeUint8Option(code, payload)

	case OptionElapsedTime:
		return decodeUint16Option(code, payload)

	case OptionRapidCommit, OptionReconfigureAccept:
		return decodeEmptyOption(code, payload)

	case OptionStatusCode:
		return decodeStatusCode(payload)

	case OptionUserClass, OptionVendorOpts:
		return BytesOption{CodeVal: code, Value: append([]byte(nil), payload...)}, nil

	case OptionVendorClass:
		return decodeVendorClass(payload)

	case OptionInterfaceID, OptionRemoteID, OptionSubscriberID, OptionAuthentication:
		return BytesOption{CodeVal: code, Value: append([]byte(nil), payload...)}, nil

	case OptionDNSServers, OptionSIPServerAddresses, OptionNISServers,
		OptionNISV2Servers, OptionSNTPServers, OptionBCMCSServerAddresses:
		return decodeIPv6ListOption(code, payload)

	case OptionDomainSearchList, OptionSIPServerDomainNames, OptionBCMCSServerDomainNames,
		OptionNISPDomainName, OptionNISV2PDomainName:
		return decodeNameListOption(code, payload, nc)

	case OptionNTPServer:
		return BytesOption{CodeVal: code, Value: append([]byte(nil), payload...)}, nil

	case OptionInformationRefreshTime:
		return decodeUint32Option(code, payload)

	case OptionClientFQDN:
		return decodeClientFQDN(payload, nc)

	case OptionRelayMsg:
		return decodeRelayMsgOption(payload, nc, depth)

	case OptionClientArchType:
		return decodeUint16ListOption(code, payload)

	default:
		metrics.UnknownOptionsObserved.WithLabelValues("v6", fmt.Sprintf("%d", uint16(code))).Inc()
		return Unknown{CodeVal: code, Data: append([]byte(nil), payload...)}, nil
	}
}

// Unknown preserves an option whose code this package does not implement a
// typed variant for.
type Unknown struct {
	CodeVal OptionCode
	Data    []byte
}

func (u Unknown) Code() OptionCode      { return u.CodeVal }
func (u Unknown) Encode(w *wire.Writer) { w.WriteBytes(u.Data) }

// --- generic single-shape variants ---

// BytesOption is an opaque byte payload with no further structure.
type BytesOption struct {
	CodeVal OptionCode
	Value   []byte
}

func (o BytesOption) Code() OptionCode      { return o.CodeVal }
func (o BytesOption) Encode(w *wire.Writer) { w.WriteBytes(o.Value) }

func decodeUint8Option(code OptionCode, payload []byte) (Option, error) {
	if len(payload) != 1 {
		return nil, invalidPayload(code, "expected 1 byte, got %d", len(payload))
	}
	return Uint8Option{CodeVal: code, Value: payload[0]}, nil
}

// Uint8Option is a single unsigned byte payload (Preference).
type Uint8Option struct {
	CodeVal OptionCode
	Value   byte
}

func (o Uint8Option) Code() OptionCode      { return o.CodeVal }
func (o Uint8Option) Encode(w *wire.Writer) { w.WriteU8(o.Value) }

// Uint16Option is a single big-endian uint16 payload (ElapsedTime).
type Uint16Option struct {
	CodeVal OptionCode
	Value   uint16
}

func (o Uint16Option) Code() OptionCode      { return o.CodeVal }
func (o Uint16Option) Encode(w *wire.Writer) { w.WriteU16(o.Value) }

func decodeUint16Option(code OptionCode, payload []byte) (Option, error) {
	if len(payload) != 2 {
		return nil, invalidPayload(code, "expected 2 bytes, got %d", len(payload))
	}
	return Uint16Option{CodeVal: code, Value: uint16(payload[0])<<8 | uint16(payload[1])}, nil
}

// Uint32Option is a single big-endian uint32 payload
// (InformationRefreshTime).
type Uint32Option struct {
	CodeVal OptionCode
	Value   uint32
}

func (o Uint32Option) Code() OptionCode      { return o.CodeVal }
func (o Uint32Option) Encode(w *wire.Writer) { w.WriteU32(o.Value) }

func decodeUint32Option(code OptionCode, payload []byte) (Option, error) {
	if len(payload) != 4 {
		return nil, invalidPayload(code, "expected 4 bytes, got %d", len(payload))
	}
	v := uint32(payload[0])<<24 | uint32(payload[1])<<16 | uint32(payload[2])<<8 | uint32(payload[3])
	return Uint32Option{CodeVal: code, Value: v}, nil
}

// Uint16ListOption is a list of big-endian uint16 values (ClientArchType).
type Uint16ListOption struct {
	CodeVal OptionCode
	Values  []uint16
}

func (o Uint16ListOption) Code() OptionCode { return o.CodeVal }
func (o Uint16ListOption) Encode(w *wire.Writer) {
	for _, v := range o.Values {
		w.WriteU16(v)
	}
}

func decodeUint16ListOption(code OptionCode, payload []byte) (Option, error) {
	if len(payload) == 0 || len(payload)%2 != 0 {
		return nil, invalidPayload(code, "length %d is not a positive multiple of 2", len(payload))
	}
	values := make([]uint16, 0, len(payload)/2)
	for i := 0; i < len(payload); i += 2 {
		values = append(values, uint16(payload[i])<<8|uint16(payload[i+1]))
	}
	return Uint16ListOption{CodeVal: code, Values: values}, nil
}

// EmptyOption is a zero-length marker option (RapidCommit, ReconfigureAccept).
type EmptyOption struct {
	CodeVal OptionCode
}

func (o EmptyOption) Code() OptionCode      { return o.CodeVal }
func (o EmptyOption) Encode(w *wire.Writer) {}

func decodeEmptyOption(code OptionCode, payload []byte) (Option, error) {
	if len(payload) != 0 {
		return nil, invalidPayload(code, "expected empty payload, got %d bytes", len(payload))
	}
	return EmptyOption{CodeVal: code}, nil
}

// DUIDOption wraps a DUID as ClientID (opt 1) or ServerID (opt 2).
type DUIDOption struct {
	CodeVal OptionCode
	ID      DUID
}

func (o DUIDOption) Code() OptionCode { return o.CodeVal }
func (o DUIDOption) Encode(w *wire.Writer) {
	o.ID.Encode(w)
}

func decodeDUIDOption(code OptionCode, payload []byte) (Option, error) {
	duid, err := DecodeDUID(payload)
	if err != nil {
		return nil, err
	}
	return DUIDOption{CodeVal: code, ID: duid}, nil
}

// OptionRequestOption carries the Option Request Option (ORO, opt 6): a
// list of option codes the sender wants the peer to include.
type OptionRequestOption struct {
	Codes []OptionCode
}

func (OptionRequestOption) Code() OptionCode { return OptionORO }
func (o OptionRequestOption) Encode(w *wire.Writer) {
	for _, c := range o.Codes {
		w.WriteU16(uint16(c))
	}
}

func decodeOptionRequest(payload []byte) (Option, error) {
	if len(payload)%2 != 0 {
		return nil, invalidPayload(OptionORO, "length %d is not a multiple of 2", len(payload))
	}
	codes := make([]OptionCode, 0, len(payload)/2)
	for i := 0; i < len(payload); i += 2 {
		codes = append(codes, OptionCode(uint16(payload[i])<<8|uint16(payload[i+1])))
	}
	return OptionRequestOption{Codes: codes}, nil
}

// VendorClassOption carries opt 16: an enterprise number plus one or more
// length-prefixed opaque data fields (RFC 8415 §21.16).
type VendorClassOption struct {
	EnterpriseNumber uint32
	Data             [][]byte
}

func (VendorClassOption) Code() OptionCode { return OptionVendorClass }
func (o VendorClassOption) Encode(w *wire.Writer) {
	w.WriteU32(o.EnterpriseNumber)
	for _, d := range o.Data {
		w.WriteU16(uint16(len(d)))
		w.WriteBytes(d)
	}
}

func decodeVendorClass(payload []byte) (Option, error) {
	if len(payload) < 4 {
		return nil, invalidPayload(OptionVendorClass, "shorter than 4-byte enterprise number")
	}
	en := uint32(payload[0])<<24 | uint32(payload[1])<<16 | uint32(payload[2])<<8 | uint32(payload[3])
	rest := payload[4:]
	var data [][]byte
	for len(rest) > 0 {
		if len(rest) < 2 {
			return nil, invalidPayload(OptionVendorClass, "truncated data-field length")
		}
		n := int(uint16(rest[0])<<8 | uint16(rest[1]))
		rest = rest[2:]
		if n > len(rest) {
			return nil, invalidPayload(OptionVendorClass, "data field length %d exceeds remaining payload", n)
		}
		data = append(data, append([]byte(nil), rest[:n]...))
		rest = rest[n:]
	}
	return VendorClassOption{EnterpriseNumber: en, Data: data}, nil
}

// IPv6ListOption is a list of 16-byte IPv6 addresses (DNS/SIP/NIS/SNTP/
// BCMCS server address lists).
type IPv6ListOption struct {
	CodeVal   OptionCode
	Addresses []net.IP
}

func (o IPv6ListOption) Code() OptionCode { return o.CodeVal }
func (o IPv6ListOption) Encode(w *wire.Writer) {
	for _, addr := range o.Addresses {
		w.WriteIPv6(addr)
	}
}

func decodeIPv6ListOption(code OptionCode, payload []byte) (Option, error) {
	if len(payload) == 0 || len(payload)%16 != 0 {
		return nil, invalidPayload(code, "length %d is not a positive multiple of 16", len(payload))
	}
	addrs := make([]net.IP, 0, len(payload)/16)
	for i := 0; i < len(payload); i += 16 {
		addr := append(net.IP(nil), payload[i:i+16]...)
		addrs = append(addrs, addr)
	}
	return IPv6ListOption{CodeVal: code, Addresses: addrs}, nil
}

// decodeNestedOptions decodes a sequence of 4-byte-header options that
// fill payload exactly, as used inside IA_NA/IA_TA/IA_PD containers
// (spec.md §4.8 "Nested option lists").
func decodeNestedOptions(payload []byte, nc namecodec.Codec, depth int) (*Options, error) {
	opts := NewOptions()
	c := wire.NewCursor(payload)
	for c.Len() > 0 {
		code, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		length, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		body, err := c.Slice(int(length))
		if err != nil {
			return nil, err
		}
		opt, err := decodeOption(OptionCode(code), body, nc, depth)
		if err != nil {
			return nil, err
		}
		opts.Insert(opt)
	}
	return opts, nil
}

func encodeNestedOptions(w *wire.Writer, opts *Options) {
	opts.Encode(w)
}
