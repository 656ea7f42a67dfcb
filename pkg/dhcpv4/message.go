package dhcpv4

import (
	"fmt"
	"net"

	"github.com/athena-dhcpd/dhcpwire/internal/metrics"
	"github.com/athena-dhcpd/dhcpwire/pkg/namecodec"
	"github.com/athena-dhcpd/dhcpwire/pkg/wire"
)

// headerSize is the fixed BOOTP header length (RFC 2131 §2), not counting
// the 4-byte magic cookie that follows it.
const headerSize = 236

// Message is a decoded DHCPv4 packet: the fixed 236-byte header plus an
// options container (spec.md §3, "v4 Message").
type Message struct {
	Op     OpCode
	HType  HardwareType
	HLen   byte // MUST equal the effective length of CHAddr; see SetCHAddr.
	Hops   byte
	XID    uint32
	Secs   uint16
	Flags  uint16
	CIAddr net.IP
	YIAddr net.IP
	SIAddr net.IP
	GIAddr net.IP

	chaddr [16]byte
	SName  [64]byte
	File   [128]byte

	Options *Options
}

// NewMessage returns a Message with zero-valued header fields and an
// empty options container.
func NewMessage() *Message {
	return &Message{Options: NewOptions()}
}

// CHAddr returns the client hardware address, truncated to HLen bytes (or
// 16, whichever is smaller).
func (m *Message) CHAddr() net.HardwareAddr {
	n := int(m.HLen)
	if n > 16 {
		n = 16
	}
	mac := make(net.HardwareAddr, n)
	copy(mac, m.chaddr[:n])
	return mac
}

// SetCHAddr sets the client hardware address and updates HLen atomically,
// per spec.md §3's invariant. mac must be at most 16 bytes.
func (m *Message) SetCHAddr(mac net.HardwareAddr) error {
	if len(mac) > 16 {
		return fmt.Errorf("dhcpv4: hardware address length %d exceeds 16", len(mac))
	}
	m.chaddr = [16]byte{}
	copy(m.chaddr[:], mac)
	m.HLen = byte(len(mac))
	return nil
}

// IsBroadcast reports whether the broadcast flag (bit 15) is set.
func (m *Message) IsBroadcast() bool { return m.Flags&0x8000 != 0 }

// sname / file are opaque octet arrays on the wire; these accessors treat
// them as NUL-terminated strings per spec.md §3.

// ServerName returns the NUL-terminated text of the sname field.
func (m *Message) ServerName() string { return nulTerminated(m.SName[:]) }

// BootFile returns the NUL-terminated text of the file field.
func (m *Message) BootFile() string { return nulTerminated(m.File[:]) }

// SetServerName copies s into the 64-byte sname field, NUL-padding the
// remainder. s longer than 63 bytes is truncated so a terminator always
// fits.
func (m *Message) SetServerName(s string) {
	setNulTerminated(m.SName[:], s)
}

// SetBootFile copies s into the 128-byte file field, NUL-padding the
// remainder, truncated so a terminator always fits.
func (m *Message) SetBootFile(s string) {
	setNulTerminated(m.File[:], s)
}

func nulTerminated(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

func setNulTerminated(dst []byte, s string) {
	for i := range dst {
		dst[i] = 0
	}
	n := len(s)
	if n > len(dst)-1 {
		n = len(dst) - 1
	}
	copy(dst, s[:n])
}

// DecodeOptions configures Decode's permissiveness. The zero value is the
// default: permissive message-type range checking and the stock
// miekg/dns-backed NameCodec.
type DecodeOptions struct {
	Strict     Strict
	NameCodec  namecodec.Codec
}

func (d DecodeOptions) nameCodec() namecodec.Codec {
	if d.NameCodec != nil {
		return d.NameCodec
	}
	return namecodec.New()
}

// Decode parses a raw DHCPv4 packet using default (permissive) options.
func Decode(data []byte) (*Message, error) {
	return DecodeWithOptions(data, DecodeOptions{})
}

// msgTypeLabel returns the option-53 message type name for metrics labels,
// or "UNKNOWN" if the message carries no (or an unrecognized) option 53.
func msgTypeLabel(opts *Options) string {
	if opts == nil {
		return "UNKNOWN"
	}
	mt, ok := opts.Get(OptionDHCPMessageType)
	if !ok {
		return "UNKNOWN"
	}
	mto, ok := mt.(MessageTypeOption)
	if !ok {
		return "UNKNOWN"
	}
	return mto.Value.String()
}

// DecodeWithOptions parses a raw DHCPv4 packet per spec.md §4.3.
func DecodeWithOptions(data []byte, opt DecodeOptions) (*Message, error) {
	if len(data) < headerSize+4 {
		metrics.DecodeErrors.WithLabelValues("v4", "not_enough_bytes").Inc()
		return nil, &wire.NotEnoughBytesError{Need: headerSize + 4, Have: len(data)}
	}

	c := wire.NewCursor(data)
	m := NewMessage()

	opByte, _ := c.ReadU8()
	m.Op = OpCode(opByte)
	htype, _ := c.ReadU8()
	m.HType = HardwareType(htype)
	hlen, _ := c.ReadU8()
	m.HLen = hlen
	hops, _ := c.ReadU8()
	m.Hops = hops
	m.XID, _ = c.ReadU32()
	m.Secs, _ = c.ReadU16()
	m.Flags, _ = c.ReadU16()
	m.CIAddr, _ = c.ReadIPv4()
	m.YIAddr, _ = c.ReadIPv4()
	m.SIAddr, _ = c.ReadIPv4()
	m.GIAddr, _ = c.ReadIPv4()

	chaddr, _ := c.Slice(16)
	copy(m.chaddr[:], chaddr)

	sname, _ := c.Slice(64)
	copy(m.SName[:], sname)
	file, _ := c.Slice(128)
	copy(m.File[:], file)

	cookie, err := c.Slice(4)
	if err != nil {
		metrics.DecodeErrors.WithLabelValues("v4", "not_enough_bytes").Inc()
		return nil, err
	}
	if cookie[0] != MagicCookie[0] || cookie[1] != MagicCookie[1] ||
		cookie[2] != MagicCookie[2] || cookie[3] != MagicCookie[3] {
		metrics.DecodeErrors.WithLabelValues("v4", "invalid_magic").Inc()
		return nil, ErrInvalidMagic
	}

	opts, err := decodeOptionsTLV(c.Remaining(), opt.nameCodec(), opt.Strict)
	if err != nil {
		metrics.DecodeErrors.WithLabelValues("v4", "invalid_payload").Inc()
		return nil, err
	}
	m.Options = opts

	metrics.MessagesDecoded.WithLabelValues("v4", msgTypeLabel(m.Options)).Inc()
	return m, nil
}

// decodeOptionsTLV parses the TLV option area, reassembling RFC 3396
// long-option fragments (contiguous repeats of the same code) before
// dispatching each option's payload to its typed decoder.
func decodeOptionsTLV(data []byte, nc namecodec.Codec, strict Strict) (*Options, error) {
	opts := NewOptions()
	i := 0

	var pendingCode OptionCode
	var pendingData []byte
	pending := false

	flush := func() error {
		if !pending {
			return nil
		}
		opt, err := decodeOption(pendingCode, pendingData, nc, strict)
		if err != nil {
			return err
		}
		if _, ok := opt.(Unknown); ok {
			metrics.UnknownOptionsObserved.WithLabelValues("v4", fmt.Sprintf("%d", byte(pendingCode))).Inc()
		}
		opts.Insert(opt)
		pending = false
		pendingData = nil
		return nil
	}

	for i < len(data) {
		code := OptionCode(data[i])
		i++

		if code == OptionPad {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		if code == OptionEnd {
			break
		}

		if i >= len(data) {
			return nil, &wire.NotEnoughBytesError{Need: 1, Have: 0}
		}
		length := int(data[i])
		i++
		if i+length > len(data) {
			return nil, &wire.NotEnoughBytesError{Need: length, Have: len(data) - i}
		}
		value := data[i : i+length]
		i += length

		if pending && pendingCode == code {
			pendingData = append(pendingData, value...)
			metrics.LongOptionFragments.Inc()
			continue
		}
		if err := flush(); err != nil {
			return nil, err
		}
		pendingCode = code
		pendingData = append([]byte(nil), value...)
		pending = true
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return opts, nil
}

// Encode serializes the message to its wire form: the 236-byte header,
// the magic cookie, the options in canonical order, and the End marker
// (spec.md §4.3). Encoding is infallible for an in-memory Message.
func (m *Message) Encode() []byte {
	w := wire.NewWriter(headerSize + 4 + 64)

	w.WriteU8(byte(m.Op))
	w.WriteU8(byte(m.HType))
	w.WriteU8(m.HLen)
	w.WriteU8(m.Hops)
	w.WriteU32(m.XID)
	w.WriteU16(m.Secs)
	w.WriteU16(m.Flags & 0x8000) // bits 0-14 reserved, MUST be 0 on encode
	w.WriteIPv4(m.CIAddr)
	w.WriteIPv4(m.YIAddr)
	w.WriteIPv4(m.SIAddr)
	w.WriteIPv4(m.GIAddr)
	w.WriteBytes(m.chaddr[:])
	w.WriteBytes(m.SName[:])
	w.WriteBytes(m.File[:])
	w.WriteBytes(MagicCookie)

	if m.Options == nil {
		m.Options = NewOptions()
	}
	m.Options.Encode(w)

	metrics.MessagesEncoded.WithLabelValues("v4", msgTypeLabel(m.Options)).Inc()

	// Padding the UDP payload up to a wire minimum is a transport-layer
	// concern (RFC 2131 §4.1) outside this package's scope; callers that
	// send over a socket pad before transmission.
	return w.Bytes()
}
