package dhcpv4

import "github.com/athena-dhcpd/dhcpwire/pkg/wire"

// ClientMachineIdentifierOption carries option 97 (RFC 4578 §2.4): a
// one-byte identifier type followed by the opaque identifier itself.
type ClientMachineIdentifierOption struct {
	Type byte
	ID   []byte
}

func (ClientMachineIdentifierOption) Code() OptionCode { return OptionClientMachineID }

func (o ClientMachineIdentifierOption) Encode(w *wire.Writer) {
	w.WriteU8(o.Type)
	w.WriteBytes(o.ID)
}

func decodeClientMachineIdentifier(payload []byte) (Option, error) {
	if len(payload) < 1 {
		return nil, invalidPayload(OptionClientMachineID, "empty payload")
	}
	return ClientMachineIdentifierOption{
		Type: payload[0],
		ID:   append([]byte(nil), payload[1:]...),
	}, nil
}
