package dhcpv6

import (
	"net"

	"github.com/athena-dhcpd/dhcpwire/pkg/wire"
)

// DUIDMaxLength is RFC 8415's maximum total DUID length. Decode does not
// enforce it (callers that need strict validation can check EncodedLen
// themselves); an oversized DUID is a signal an implementation should
// look twice at, not necessarily a malformed one.
const DUIDMaxLength = 130

// duidTypeLLT etc. select the DUID wire variant; the first two octets of
// every DUID encoding.
const (
	duidTypeLLT     uint16 = 1
	duidTypeEN      uint16 = 2
	duidTypeLL      uint16 = 3
	duidTypeUUID    uint16 = 4
)

// DUID is the closed interface implemented by every DHCP Unique Identifier
// variant (spec.md §3 "DUID (v6)").
type DUID interface {
	duidType() uint16
	Encode(w *wire.Writer)
}

// DUIDLLT is the link-layer-address-plus-time variant (RFC 8415 §11.2).
type DUIDLLT struct {
	HardwareType  uint16
	Time          uint32 // seconds since 2000-01-01T00:00:00Z
	LinkLayerAddr net.HardwareAddr
}

func (DUIDLLT) duidType() uint16 { return duidTypeLLT }

func (d DUIDLLT) Encode(w *wire.Writer) {
	w.WriteU16(duidTypeLLT)
	w.WriteU16(d.HardwareType)
	w.WriteU32(d.Time)
	w.WriteBytes(d.LinkLayerAddr)
}

// DUIDEN is the enterprise-number variant (RFC 8415 §11.3).
type DUIDEN struct {
	EnterpriseNumber uint32
	Identifier       []byte
}

func (DUIDEN) duidType() uint16 { return duidTypeEN }

func (d DUIDEN) Encode(w *wire.Writer) {
	w.WriteU16(duidTypeEN)
	w.WriteU32(d.EnterpriseNumber)
	w.WriteBytes(d.Identifier)
}

// DUIDLL is the link-layer-address-only variant (RFC 8415 §11.4).
type DUIDLL struct {
	HardwareType  uint16
	LinkLayerAddr net.HardwareAddr
}

func (DUIDLL) duidType() uint16 { return duidTypeLL }

func (d DUIDLL) Encode(w *wire.Writer) {
	w.WriteU16(duidTypeLL)
	w.WriteU16(d.HardwareType)
	w.WriteBytes(d.LinkLayerAddr)
}

// DUIDUUID is the 16-byte UUID variant (RFC 6355).
type DUIDUUID struct {
	UUID [16]byte
}

func (DUIDUUID) duidType() uint16 { return duidTypeUUID }

func (d DUIDUUID) Encode(w *wire.Writer) {
	w.WriteU16(duidTypeUUID)
	w.WriteBytes(d.UUID[:])
}

// DUIDUnknown preserves a DUID whose type this package does not model.
type DUIDUnknown struct {
	DUIDType uint16
	Data     []byte
}

func (d DUIDUnknown) duidType() uint16 { return d.DUIDType }

func (d DUIDUnknown) Encode(w *wire.Writer) {
	w.WriteU16(d.DUIDType)
	w.WriteBytes(d.Data)
}

// DecodeDUID parses a DUID from its full encoded form (type prefix
// included), per spec.md §4.11.
func DecodeDUID(data []byte) (DUID, error) {
	if len(data) < 2 {
		return nil, &wire.NotEnoughBytesError{Need: 2, Have: len(data)}
	}
	typ := uint16(data[0])<<8 | uint16(data[1])
	rest := data[2:]

	switch typ {
	case duidTypeLLT:
		if len(rest) < 6 {
			return nil, &wire.NotEnoughBytesError{Need: 6, Have: len(rest)}
		}
		hw := uint16(rest[0])<<8 | uint16(rest[1])
		tm := uint32(rest[2])<<24 | uint32(rest[3])<<16 | uint32(rest[4])<<8 | uint32(rest[5])
		return DUIDLLT{
			HardwareType:  hw,
			Time:          tm,
			LinkLayerAddr: append(net.HardwareAddr(nil), rest[6:]...),
		}, nil

	case duidTypeEN:
		if len(rest) < 4 {
			return nil, &wire.NotEnoughBytesError{Need: 4, Have: len(rest)}
		}
		en := uint32(rest[0])<<24 | uint32(rest[1])<<16 | uint32(rest[2])<<8 | uint32(rest[3])
		return DUIDEN{
			EnterpriseNumber: en,
			Identifier:       append([]byte(nil), rest[4:]...),
		}, nil

	case duidTypeLL:
		if len(rest) < 2 {
			return nil, &wire.NotEnoughBytesError{Need: 2, Have: len(rest)}
		}
		hw := uint16(rest[0])<<8 | uint16(rest[1])
		return DUIDLL{
			HardwareType:  hw,
			LinkLayerAddr: append(net.HardwareAddr(nil), rest[2:]...),
		}, nil

	case duidTypeUUID:
		if len(rest) != 16 {
			return nil, invalidPayload(OptionClientID, "DUID-UUID length %d, want 16", len(rest))
		}
		var u [16]byte
		copy(u[:], rest)
		return DUIDUUID{UUID: u}, nil

	default:
		return DUIDUnknown{DUIDType: typ, Data: append([]byte(nil), rest...)}, nil
	}
}

// EncodedLen returns the number of bytes Encode will write for d.
func EncodedLen(d DUID) int {
	w := wire.NewWriter(0)
	d.Encode(w)
	return w.Len()
}
