package dhcpv6

import (
	"net"
	"testing"
)

func solicitWithClientID() *Message {
	m := NewMessage(MessageTypeSolicit)
	m.Xid = 0xABCDEF
	m.Options.Insert(DUIDOption{CodeVal: OptionClientID, ID: DUIDLLT{
		HardwareType:  1,
		Time:          0,
		LinkLayerAddr: net.HardwareAddr{1, 2, 3, 4, 5, 6},
	}})
	return m
}

func TestRelayNestingRoundTrip(t *testing.T) {
	inner := solicitWithClientID()

	outerRelay := NewRelayMessage(MessageTypeRelayForward)
	outerRelay.HopCount = 1
	outerRelay.LinkAddress = net.ParseIP("2001:db8::1")
	outerRelay.PeerAddress = net.ParseIP("2001:db8::2")
	outerRelay.Options.Insert(RelayMsgOption{Inner: inner})

	topRelay := NewRelayMessage(MessageTypeRelayForward)
	topRelay.HopCount = 0
	topRelay.LinkAddress = net.ParseIP("2001:db8::3")
	topRelay.PeerAddress = net.ParseIP("2001:db8::4")
	topRelay.Options.Insert(RelayMsgOption{Inner: outerRelay})

	raw := topRelay.Encode()
	decodedAny, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	decodedTop, ok := decodedAny.(*RelayMessage)
	if !ok {
		t.Fatalf("decoded as %T, want *RelayMessage", decodedAny)
	}
	decodedOuter, ok := decodedTop.RelayMsg().(*RelayMessage)
	if !ok {
		t.Fatalf("inner relay decoded as %T, want *RelayMessage", decodedTop.RelayMsg())
	}
	decodedInner, ok := decodedOuter.RelayMsg().(*Message)
	if !ok {
		t.Fatalf("innermost decoded as %T, want *Message", decodedOuter.RelayMsg())
	}
	if decodedInner.Xid != 0xABCDEF {
		t.Errorf("Xid = %#x, want 0xabcdef", decodedInner.Xid)
	}
	if decodedInner.Type != MessageTypeSolicit {
		t.Errorf("Type = %v, want Solicit", decodedInner.Type)
	}
}

func TestRelayTooDeepFails(t *testing.T) {
	var current AnyMessage = solicitWithClientID()
	// Wrap 33 levels deep: exceeds MaxRelayDepth (32).
	for i := 0; i < 33; i++ {
		r := NewRelayMessage(MessageTypeRelayForward)
		r.LinkAddress = net.IPv6zero
		r.PeerAddress = net.IPv6zero
		r.Options.Insert(RelayMsgOption{Inner: current})
		current = r
	}

	raw := current.(*RelayMessage).Encode()
	_, err := Decode(raw)
	if err != ErrRelayTooDeep {
		t.Fatalf("err = %v, want ErrRelayTooDeep", err)
	}
}

func TestRelayWithinDepthLimitSucceeds(t *testing.T) {
	var current AnyMessage = solicitWithClientID()
	for i := 0; i < MaxRelayDepth; i++ {
		r := NewRelayMessage(MessageTypeRelayForward)
		r.LinkAddress = net.IPv6zero
		r.PeerAddress = net.IPv6zero
		r.Options.Insert(RelayMsgOption{Inner: current})
		current = r
	}

	raw := current.(*RelayMessage).Encode()
	if _, err := Decode(raw); err != nil {
		t.Fatalf("Decode at exactly MaxRelayDepth: %v", err)
	}
}
