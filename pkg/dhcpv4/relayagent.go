package dhcpv4

import "github.com/athena-dhcpd/dhcpwire/pkg/wire"

// Relay Agent Information sub-option types (RFC 3046, RFC 3527, RFC 5010).
const (
	RelaySubOptionCircuitID                byte = 1
	RelaySubOptionRemoteID                 byte = 2
	RelaySubOptionLinkSelection            byte = 5  // RFC 3527
	RelaySubOptionSubscriberID              byte = 6
	RelaySubOptionServerIdentifierOverride byte = 11 // RFC 5010
)

// RelayAgentSubOption is one TLV-encoded sub-option inside option 82.
type RelayAgentSubOption interface {
	SubCode() byte
	Encode(w *wire.Writer)
}

// CircuitID is RFC 3046 sub-option 1.
type CircuitID struct{ Value []byte }

func (CircuitID) SubCode() byte          { return RelaySubOptionCircuitID }
func (s CircuitID) Encode(w *wire.Writer) { w.WriteBytes(s.Value) }

// RemoteID is RFC 3046 sub-option 2.
type RemoteID struct{ Value []byte }

func (RemoteID) SubCode() byte          { return RelaySubOptionRemoteID }
func (s RemoteID) Encode(w *wire.Writer) { w.WriteBytes(s.Value) }

// LinkSelection is RFC 3527 sub-option 5.
type LinkSelection struct{ Value []byte } // 4-byte IPv4 address

func (LinkSelection) SubCode() byte          { return RelaySubOptionLinkSelection }
func (s LinkSelection) Encode(w *wire.Writer) { w.WriteBytes(s.Value) }

// SubscriberID is RFC 3993 sub-option 6.
type SubscriberID struct{ Value []byte }

func (SubscriberID) SubCode() byte          { return RelaySubOptionSubscriberID }
func (s SubscriberID) Encode(w *wire.Writer) { w.WriteBytes(s.Value) }

// ServerIdentifierOverride is RFC 5010 sub-option 11.
type ServerIdentifierOverride struct{ Value []byte } // 4-byte IPv4 address

func (ServerIdentifierOverride) SubCode() byte          { return RelaySubOptionServerIdentifierOverride }
func (s ServerIdentifierOverride) Encode(w *wire.Writer) { w.WriteBytes(s.Value) }

// UnknownSubOption preserves a relay agent sub-option this package does
// not model, by its raw sub-code and payload.
type UnknownSubOption struct {
	SubCodeVal byte
	Value      []byte
}

func (u UnknownSubOption) SubCode() byte          { return u.SubCodeVal }
func (u UnknownSubOption) Encode(w *wire.Writer) { w.WriteBytes(u.Value) }

// RelayAgentInformationOption carries option 82's sub-option list
// (RFC 3046 §2.1). The options container places this option immediately
// before the End marker regardless of its numeric rank; see
// Options.Iter.
type RelayAgentInformationOption struct {
	SubOptions []RelayAgentSubOption
}

func (RelayAgentInformationOption) Code() OptionCode { return OptionRelayAgentInfo }

func (o RelayAgentInformationOption) Encode(w *wire.Writer) {
	for _, sub := range o.SubOptions {
		w.WriteU8(sub.SubCode())
		lenPos := w.Reserve(1)
		start := w.Len()
		sub.Encode(w)
		w.PatchU8(lenPos, byte(w.Len()-start))
	}
}

func decodeRelayAgentInformation(payload []byte) (Option, error) {
	var subs []RelayAgentSubOption
	i := 0
	for i < len(payload) {
		if i+1 >= len(payload) {
			return nil, invalidPayload(OptionRelayAgentInfo, "truncated sub-option header at offset %d", i)
		}
		subType := payload[i]
		subLen := int(payload[i+1])
		i += 2
		if i+subLen > len(payload) {
			return nil, invalidPayload(OptionRelayAgentInfo, "truncated sub-option %d at offset %d", subType, i-2)
		}
		data := append([]byte(nil), payload[i:i+subLen]...)
		i += subLen

		switch subType {
		case RelaySubOptionCircuitID:
			subs = append(subs, CircuitID{Value: data})
		case RelaySubOptionRemoteID:
			subs = append(subs, RemoteID{Value: data})
		case RelaySubOptionLinkSelection:
			subs = append(subs, LinkSelection{Value: data})
		case RelaySubOptionSubscriberID:
			subs = append(subs, SubscriberID{Value: data})
		case RelaySubOptionServerIdentifierOverride:
			subs = append(subs, ServerIdentifierOverride{Value: data})
		default:
			subs = append(subs, UnknownSubOption{SubCodeVal: subType, Value: data})
		}
	}
	return RelayAgentInformationOption{SubOptions: subs}, nil
}
