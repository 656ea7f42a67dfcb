package dhcpv6

import (
	"net"

	"github.com/athena-dhcpd/dhcpwire/pkg/namecodec"
	"github.com/athena-dhcpd/dhcpwire/pkg/wire"
)

// IANAOption is Identity Association for Non-temporary Addresses (opt 3).
type IANAOption struct {
	IAID    uint32
	T1, T2  uint32
	Options *Options
}

func (IANAOption) Code() OptionCode { return OptionIANA }
func (o IANAOption) Encode(w *wire.Writer) {
	w.WriteU32(o.IAID)
	w.WriteU32(o.T1)
	w.WriteU32(o.T2)
	encodeNestedOptions(w, o.Options)
}

func decodeIANA(payload []byte, nc namecodec.Codec, depth int) (Option, error) {
	if len(payload) < 12 {
		return nil, invalidPayload(OptionIANA, "shorter than 12-byte fixed part")
	}
	nested, err := decodeNestedOptions(payload[12:], nc, depth)
	if err != nil {
		return nil, err
	}
	return IANAOption{
		IAID:    be32(payload[0:4]),
		T1:      be32(payload[4:8]),
		T2:      be32(payload[8:12]),
		Options: nested,
	}, nil
}

// IATAOption is Identity Association for Temporary Addresses (opt 4): no
// T1/T2 renewal timers.
type IATAOption struct {
	IAID    uint32
	Options *Options
}

func (IATAOption) Code() OptionCode { return OptionIATA }
func (o IATAOption) Encode(w *wire.Writer) {
	w.WriteU32(o.IAID)
	encodeNestedOptions(w, o.Options)
}

func decodeIATA(payload []byte, nc namecodec.Codec, depth int) (Option, error) {
	if len(payload) < 4 {
		return nil, invalidPayload(OptionIATA, "shorter than 4-byte fixed part")
	}
	nested, err := decodeNestedOptions(payload[4:], nc, depth)
	if err != nil {
		return nil, err
	}
	return IATAOption{IAID: be32(payload[0:4]), Options: nested}, nil
}

// IAPDOption is Identity Association for Prefix Delegation (opt 25,
// RFC 8415 §21.21 / RFC 3633).
type IAPDOption struct {
	IAID    uint32
	T1, T2  uint32
	Options *Options
}

func (IAPDOption) Code() OptionCode { return OptionIAPD }
func (o IAPDOption) Encode(w *wire.Writer) {
	w.WriteU32(o.IAID)
	w.WriteU32(o.T1)
	w.WriteU32(o.T2)
	encodeNestedOptions(w, o.Options)
}

func decodeIAPD(payload []byte, nc namecodec.Codec, depth int) (Option, error) {
	if len(payload) < 12 {
		return nil, invalidPayload(OptionIAPD, "shorter than 12-byte fixed part")
	}
	nested, err := decodeNestedOptions(payload[12:], nc, depth)
	if err != nil {
		return nil, err
	}
	return IAPDOption{
		IAID:    be32(payload[0:4]),
		T1:      be32(payload[4:8]),
		T2:      be32(payload[8:12]),
		Options: nested,
	}, nil
}

// IAAddressOption is an address leased under an IA_NA/IA_TA (opt 5).
type IAAddressOption struct {
	Address           net.IP
	PreferredLifetime uint32
	ValidLifetime     uint32
	Options           *Options
}

func (IAAddressOption) Code() OptionCode { return OptionIAAddr }
func (o IAAddressOption) Encode(w *wire.Writer) {
	w.WriteIPv6(o.Address)
	w.WriteU32(o.PreferredLifetime)
	w.WriteU32(o.ValidLifetime)
	encodeNestedOptions(w, o.Options)
}

func decodeIAAddress(payload []byte, nc namecodec.Codec, depth int) (Option, error) {
	if len(payload) < 24 {
		return nil, invalidPayload(OptionIAAddr, "shorter than 24-byte fixed part")
	}
	ip := make(net.IP, 16)
	copy(ip, payload[0:16])
	nested, err := decodeNestedOptions(payload[24:], nc, depth)
	if err != nil {
		return nil, err
	}
	return IAAddressOption{
		Address:           ip,
		PreferredLifetime: be32(payload[16:20]),
		ValidLifetime:     be32(payload[20:24]),
		Options:           nested,
	}, nil
}

// IAPrefixOption is a delegated prefix under an IA_PD (opt 26, RFC 3633 §10).
type IAPrefixOption struct {
	PreferredLifetime uint32
	ValidLifetime     uint32
	PrefixLength      byte
	Prefix            net.IP
	Options           *Options
}

func (IAPrefixOption) Code() OptionCode { return OptionIAPrefix }
func (o IAPrefixOption) Encode(w *wire.Writer) {
	w.WriteU32(o.PreferredLifetime)
	w.WriteU32(o.ValidLifetime)
	w.WriteU8(o.PrefixLength)
	w.WriteIPv6(o.Prefix)
	encodeNestedOptions(w, o.Options)
}

func decodeIAPrefix(payload []byte, nc namecodec.Codec, depth int) (Option, error) {
	if len(payload) < 25 {
		return nil, invalidPayload(OptionIAPrefix, "shorter than 25-byte fixed part")
	}
	ip := make(net.IP, 16)
	copy(ip, payload[9:25])
	nested, err := decodeNestedOptions(payload[25:], nc, depth)
	if err != nil {
		return nil, err
	}
	return IAPrefixOption{
		PreferredLifetime: be32(payload[0:4]),
		ValidLifetime:     be32(payload[4:8]),
		PrefixLength:      payload[8],
		Prefix:            ip,
		Options:           nested,
	}, nil
}

func be32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
