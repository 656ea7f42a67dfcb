package dhcpv4

import (
	"net"

	"github.com/athena-dhcpd/dhcpwire/pkg/namecodec"
	"github.com/athena-dhcpd/dhcpwire/pkg/wire"
)

// Option is the closed interface implemented by every DHCPv4 option
// variant. Decoders are dispatched by numeric code through decodeOption;
// Encode appends this option's TLV payload (without the leading code and
// length byte, which the options container writes) to w.
type Option interface {
	Code() OptionCode
	Encode(w *wire.Writer)
}

// Strict controls whether decoding option 53 (DHCP Message Type) with a
// value outside the documented 1-18 range fails with
// InvalidMessageTypeError (true) or is preserved as Unknown (false, the
// default). See spec.md §9 Open Question (a).
type Strict bool

// decodeOption dispatches a single option's payload to its typed decoder.
// payload is exactly the option's reassembled value (after RFC 3396
// long-option concatenation); a decoder that does not consume payload in
// full fails with InvalidPayloadError.
func decodeOption(code OptionCode, payload []byte, nc namecodec.Codec, strict Strict) (Option, error) {
	switch code {
	case OptionSubnetMask:
		return decodeIPOption(code, payload)
	case OptionBroadcastAddress:
		return decodeIPOption(code, payload)
	case OptionRequestedIP:
		return decodeIPOption(code, payload)
	case OptionServerIdentifier:
		return decodeIPOption(code, payload)
	case OptionSwapServer:
		return decodeIPOption(code, payload)
	case OptionRouterSolicitAddr:
		return decodeIPOption(code, payload)
	case OptionSubnetSelection:
		return decodeIPOption(code, payload)
	case OptionTFTPServerAddress:
		return decodeIPListOption(code, payload)

	case OptionRouter, OptionTimeServer, OptionNameServer, OptionDomainNameServer,
		OptionLogServer, OptionCookieServer, OptionLPRServer, OptionImpressServer,
		OptionResourceLocationServer, OptionNISServers, OptionNTPServers,
		OptionNetBIOSNameServer, OptionNetBIOSDatagramDist, OptionXWindowFontServer,
		OptionXWindowDisplayManager:
		return decodeIPListOption(code, payload)

	case OptionPolicyFilter, OptionStaticRoute:
		return decodeIPPairListOption(code, payload)

	case OptionPathMTUPlateauTable:
		return decodeUint16ListOption(code, payload)

	case OptionBootFileSize, OptionMaxDatagramReassembly, OptionInterfaceMTU,
		OptionMaxDHCPMessageSize:
		return decodeUint16Option(code, payload)

	case OptionTimeOffset:
		return decodeInt32Option(code, payload)

	case OptionPathMTUAgingTimeout, OptionARPCacheTimeout, OptionTCPKeepaliveInterval,
		OptionIPLeaseTime, OptionRenewalTime, OptionRebindingTime,
		OptionBulkLeaseQueryBaseTime, OptionBulkLeaseQueryStartTimeOfState,
		OptionBulkLeaseQueryQueryStartTime, OptionBulkLeaseQueryQueryEndTime:
		return decodeUint32Option(code, payload)

	case OptionDefaultIPTTL, OptionTCPDefaultTTL, OptionNetBIOSNodeType,
		OptionOverload, OptionBulkLeaseQueryDHCPState, OptionBulkLeaseQueryDataSource:
		return decodeUint8Option(code, payload)

	case OptionIPForwarding, OptionNonLocalSourceRouting, OptionAllSubnetsLocal,
		OptionPerformMaskDiscovery, OptionMaskSupplier, OptionPerformRouterDiscovery,
		OptionTrailerEncapsulation, OptionEthernetEncapsulation, OptionTCPKeepaliveGarbage:
		return decodeBoolOption(code, payload)

	case OptionHostname, OptionMeritDumpFile, OptionDomainName, OptionRootPath,
		OptionExtensionsPath, OptionNISDomain, OptionNetBIOSScope, OptionMessage,
		OptionVendorClassID, OptionTFTPServerName, OptionBootfileName:
		return decodeStringOption(code, payload)

	case OptionVendorSpecific, OptionClientIdentifier, OptionUserClass,
		OptionVIVendorClass, OptionVIVendorSpecific:
		return BytesOption{CodeVal: code, Value: append([]byte(nil), payload...)}, nil

	case OptionDHCPMessageType:
		return decodeMessageTypeOption(payload, strict)

	case OptionParameterRequestList:
		return decodeParameterRequestList(payload)

	case OptionClasslessStaticRoute:
		return decodeClasslessStaticRoute(payload)

	case OptionClientFQDN:
		return decodeClientFQDN(payload, nc)

	case OptionRelayAgentInfo:
		return decodeRelayAgentInformation(payload)

	case OptionClientSystemArch:
		return decodeUint16ListOption(code, payload)

	case OptionClientMachineID:
		return decodeClientMachineIdentifier(payload)

	case OptionCaptivePortal:
		return decodeCaptivePortal(payload)

	case OptionDomainSearch:
		return decodeDomainSearch(payload, nc)

	default:
		return Unknown{CodeVal: code, Data: append([]byte(nil), payload...)}, nil
	}
}

// Unknown preserves an option whose code this package does not implement
// a typed variant for, or a well-known code left opaque for any other
// reason. Its payload is never interpreted.
type Unknown struct {
	CodeVal OptionCode
	Data    []byte
}

func (u Unknown) Code() OptionCode   { return u.CodeVal }
func (u Unknown) Encode(w *wire.Writer) { w.WriteBytes(u.Data) }

// --- generic single-shape variants shared by many option codes ---

// IPOption is a single IPv4 address payload (SubnetMask, BroadcastAddr,
// RequestedIpAddress, ServerIdentifier, ...).
type IPOption struct {
	CodeVal OptionCode
	Addr    net.IP
}

func (o IPOption) Code() OptionCode   { return o.CodeVal }
func (o IPOption) Encode(w *wire.Writer) { w.WriteIPv4(o.Addr) }

func decodeIPOption(code OptionCode, payload []byte) (Option, error) {
	if len(payload) != 4 {
		return nil, invalidPayload(code, "expected 4 bytes, got %d", len(payload))
	}
	ip := make(net.IP, 4)
	copy(ip, payload)
	return IPOption{CodeVal: code, Addr: ip}, nil
}

// IPListOption is a list of IPv4 addresses (Router, DomainNameServer, ...).
type IPListOption struct {
	CodeVal OptionCode
	Addrs   []net.IP
}

func (o IPListOption) Code() OptionCode { return o.CodeVal }
func (o IPListOption) Encode(w *wire.Writer) {
	for _, ip := range o.Addrs {
		w.WriteIPv4(ip)
	}
}

func decodeIPListOption(code OptionCode, payload []byte) (Option, error) {
	if len(payload) == 0 || len(payload)%4 != 0 {
		return nil, invalidPayload(code, "length %d is not a positive multiple of 4", len(payload))
	}
	addrs := make([]net.IP, 0, len(payload)/4)
	for i := 0; i < len(payload); i += 4 {
		ip := make(net.IP, 4)
		copy(ip, payload[i:i+4])
		addrs = append(addrs, ip)
	}
	return IPListOption{CodeVal: code, Addrs: addrs}, nil
}

// IPPairListOption is a list of (destination, router) IPv4 pairs
// (StaticRoutingTable opt 33, PolicyFilter opt 21).
type IPPairListOption struct {
	CodeVal OptionCode
	Pairs   [][2]net.IP
}

func (o IPPairListOption) Code() OptionCode { return o.CodeVal }
func (o IPPairListOption) Encode(w *wire.Writer) {
	for _, p := range o.Pairs {
		w.WriteIPv4(p[0])
		w.WriteIPv4(p[1])
	}
}

func decodeIPPairListOption(code OptionCode, payload []byte) (Option, error) {
	if len(payload) == 0 || len(payload)%8 != 0 {
		return nil, invalidPayload(code, "length %d is not a positive multiple of 8", len(payload))
	}
	pairs := make([][2]net.IP, 0, len(payload)/8)
	for i := 0; i < len(payload); i += 8 {
		a := make(net.IP, 4)
		b := make(net.IP, 4)
		copy(a, payload[i:i+4])
		copy(b, payload[i+4:i+8])
		pairs = append(pairs, [2]net.IP{a, b})
	}
	return IPPairListOption{CodeVal: code, Pairs: pairs}, nil
}

// Uint8Option is a single unsigned byte payload.
type Uint8Option struct {
	CodeVal OptionCode
	Value   byte
}

func (o Uint8Option) Code() OptionCode   { return o.CodeVal }
func (o Uint8Option) Encode(w *wire.Writer) { w.WriteU8(o.Value) }

func decodeUint8Option(code OptionCode, payload []byte) (Option, error) {
	if len(payload) != 1 {
		return nil, invalidPayload(code, "expected 1 byte, got %d", len(payload))
	}
	return Uint8Option{CodeVal: code, Value: payload[0]}, nil
}

// BoolOption is a single-byte boolean payload (0x00/0x01).
type BoolOption struct {
	CodeVal OptionCode
	Value   bool
}

func (o BoolOption) Code() OptionCode { return o.CodeVal }
func (o BoolOption) Encode(w *wire.Writer) {
	if o.Value {
		w.WriteU8(1)
	} else {
		w.WriteU8(0)
	}
}

func decodeBoolOption(code OptionCode, payload []byte) (Option, error) {
	if len(payload) != 1 {
		return nil, invalidPayload(code, "expected 1 byte, got %d", len(payload))
	}
	return BoolOption{CodeVal: code, Value: payload[0] != 0}, nil
}

// Uint16Option is a single big-endian uint16 payload.
type Uint16Option struct {
	CodeVal OptionCode
	Value   uint16
}

func (o Uint16Option) Code() OptionCode    { return o.CodeVal }
func (o Uint16Option) Encode(w *wire.Writer) { w.WriteU16(o.Value) }

func decodeUint16Option(code OptionCode, payload []byte) (Option, error) {
	if len(payload) != 2 {
		return nil, invalidPayload(code, "expected 2 bytes, got %d", len(payload))
	}
	return Uint16Option{CodeVal: code, Value: uint16(payload[0])<<8 | uint16(payload[1])}, nil
}

// Uint16ListOption is a list of big-endian uint16 values (PathMTUPlateauTable,
// ClientSystemArchitecture).
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

// Uint32Option is a single big-endian uint32 payload.
type Uint32Option struct {
	CodeVal OptionCode
	Value   uint32
}

func (o Uint32Option) Code() OptionCode    { return o.CodeVal }
func (o Uint32Option) Encode(w *wire.Writer) { w.WriteU32(o.Value) }

func decodeUint32Option(code OptionCode, payload []byte) (Option, error) {
	if len(payload) != 4 {
		return nil, invalidPayload(code, "expected 4 bytes, got %d", len(payload))
	}
	v := uint32(payload[0])<<24 | uint32(payload[1])<<16 | uint32(payload[2])<<8 | uint32(payload[3])
	return Uint32Option{CodeVal: code, Value: v}, nil
}

// Int32Option is a single big-endian signed int32 payload (TimeOffset).
type Int32Option struct {
	CodeVal OptionCode
	Value   int32
}

func (o Int32Option) Code() OptionCode    { return o.CodeVal }
func (o Int32Option) Encode(w *wire.Writer) { w.WriteU32(uint32(o.Value)) }

func decodeInt32Option(code OptionCode, payload []byte) (Option, error) {
	if len(payload) != 4 {
		return nil, invalidPayload(code, "expected 4 bytes, got %d", len(payload))
	}
	v := uint32(payload[0])<<24 | uint32(payload[1])<<16 | uint32(payload[2])<<8 | uint32(payload[3])
	return Int32Option{CodeVal: code, Value: int32(v)}, nil
}

// StringOption is an opaque octet string interpreted as text (Hostname,
// DomainName, RootPath, ...).
type StringOption struct {
	CodeVal OptionCode
	Value   string
}

func (o StringOption) Code() OptionCode    { return o.CodeVal }
func (o StringOption) Encode(w *wire.Writer) { w.WriteBytes([]byte(o.Value)) }

func decodeStringOption(code OptionCode, payload []byte) (Option, error) {
	if len(payload) == 0 {
		return nil, invalidPayload(code, "empty payload")
	}
	return StringOption{CodeVal: code, Value: string(payload)}, nil
}

// BytesOption is an opaque byte payload with no further structure
// (VendorSpecific, ClientIdentifier, UserClass, ...).
type BytesOption struct {
	CodeVal OptionCode
	Value   []byte
}

func (o BytesOption) Code() OptionCode    { return o.CodeVal }
func (o BytesOption) Encode(w *wire.Writer) { w.WriteBytes(o.Value) }

// MessageTypeOption carries option 53's numeric message type.
type MessageTypeOption struct {
	Value MessageType
}

func (MessageTypeOption) Code() OptionCode        { return OptionDHCPMessageType }
func (o MessageTypeOption) Encode(w *wire.Writer) { w.WriteU8(byte(o.Value)) }

func decodeMessageTypeOption(payload []byte, strict Strict) (Option, error) {
	if len(payload) != 1 {
		return nil, invalidPayload(OptionDHCPMessageType, "expected 1 byte, got %d", len(payload))
	}
	v := payload[0]
	if strict && (v < 1 || v > 18) {
		return nil, &InvalidMessageTypeError{Value: v}
	}
	if v < 1 || v > 18 {
		return Unknown{CodeVal: OptionDHCPMessageType, Data: append([]byte(nil), payload...)}, nil
	}
	return MessageTypeOption{Value: MessageType(v)}, nil
}

// ParameterRequestListOption carries option 55's list of requested codes.
type ParameterRequestListOption struct {
	Codes []OptionCode
}

func (ParameterRequestListOption) Code() OptionCode { return OptionParameterRequestList }
func (o ParameterRequestListOption) Encode(w *wire.Writer) {
	for _, c := range o.Codes {
		w.WriteU8(byte(c))
	}
}

func decodeParameterRequestList(payload []byte) (Option, error) {
	if len(payload) == 0 {
		return nil, invalidPayload(OptionParameterRequestList, "empty payload")
	}
	codes := make([]OptionCode, len(payload))
	for i, b := range payload {
		codes[i] = OptionCode(b)
	}
	return ParameterRequestListOption{Codes: codes}, nil
}

// CaptivePortalOption carries option 114's URL (RFC 8910).
type CaptivePortalOption struct {
	URL string
}

func (CaptivePortalOption) Code() OptionCode        { return OptionCaptivePortal }
func (o CaptivePortalOption) Encode(w *wire.Writer) { w.WriteBytes([]byte(o.URL)) }

func decodeCaptivePortal(payload []byte) (Option, error) {
	if len(payload) == 0 {
		return nil, invalidPayload(OptionCaptivePortal, "empty payload")
	}
	return CaptivePortalOption{URL: string(payload)}, nil
}
