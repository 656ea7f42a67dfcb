// Package dhcpv4 implements the DHCPv4 (RFC 2131) wire codec: the fixed
// message header, the magic cookie, the typed option variants and their
// TLV encoding rules including RFC 3396 long-option fragmentation, and
// the ordered options container.
package dhcpv4

import "net"

// MessageType is the DHCP message type carried in option 53 (RFC 2132 §9.6).
type MessageType byte

const (
	MessageTypeDiscover     MessageType = 1 // DHCPDISCOVER
	MessageTypeOffer        MessageType = 2 // DHCPOFFER
	MessageTypeRequest      MessageType = 3 // DHCPREQUEST
	MessageTypeDecline      MessageType = 4 // DHCPDECLINE
	MessageTypeAck          MessageType = 5 // DHCPACK
	MessageTypeNak          MessageType = 6 // DHCPNAK
	MessageTypeRelease      MessageType = 7 // DHCPRELEASE
	MessageTypeInform       MessageType = 8 // DHCPINFORM
	MessageTypeForceRenew   MessageType = 9 // RFC 3203
	MessageTypeLeaseQuery   MessageType = 10
	MessageTypeLeaseUnassigned MessageType = 11
	MessageTypeLeaseUnknown MessageType = 12
	MessageTypeLeaseActive  MessageType = 13
	MessageTypeBulkLeaseQuery MessageType = 14
	MessageTypeLeaseQueryDone MessageType = 15
	MessageTypeActiveLeaseQuery MessageType = 16
	MessageTypeLeaseQueryStatus MessageType = 17
	MessageTypeTLS          MessageType = 18
)

func (m MessageType) String() string {
	switch m {
	case MessageTypeDiscover:
		return "DHCPDISCOVER"
	case MessageTypeOffer:
		return "DHCPOFFER"
	case MessageTypeRequest:
		return "DHCPREQUEST"
	case MessageTypeDecline:
		return "DHCPDECLINE"
	case MessageTypeAck:
		return "DHCPACK"
	case MessageTypeNak:
		return "DHCPNAK"
	case MessageTypeRelease:
		return "DHCPRELEASE"
	case MessageTypeInform:
		return "DHCPINFORM"
	case MessageTypeForceRenew:
		return "DHCPFORCERENEW"
	case MessageTypeLeaseQuery:
		return "DHCPLEASEQUERY"
	case MessageTypeLeaseUnassigned:
		return "DHCPLEASEUNASSIGNED"
	case MessageTypeLeaseUnknown:
		return "DHCPLEASEUNKNOWN"
	case MessageTypeLeaseActive:
		return "DHCPLEASEACTIVE"
	case MessageTypeBulkLeaseQuery:
		return "DHCPBULKLEASEQUERY"
	case MessageTypeLeaseQueryDone:
		return "DHCPLEASEQUERYDONE"
	case MessageTypeActiveLeaseQuery:
		return "DHCPACTIVELEASEQUERY"
	case MessageTypeLeaseQueryStatus:
		return "DHCPLEASEQUERYSTATUS"
	case MessageTypeTLS:
		return "DHCPTLS"
	default:
		return "UNKNOWN"
	}
}

// OpCode is the BOOTP op field (RFC 2131 §2).
type OpCode byte

const (
	OpCodeBootRequest OpCode = 1
	OpCodeBootReply   OpCode = 2
)

// HardwareType is the BOOTP htype field (RFC 1700 "ARP constants").
type HardwareType byte

const (
	HardwareTypeEthernet HardwareType = 1
)

// OptionCode is the one-byte DHCPv4 option code (RFC 2132 and extensions).
type OptionCode byte

const (
	OptionPad                    OptionCode = 0
	OptionSubnetMask             OptionCode = 1
	OptionTimeOffset             OptionCode = 2
	OptionRouter                 OptionCode = 3
	OptionTimeServer             OptionCode = 4
	OptionNameServer             OptionCode = 5
	OptionDomainNameServer       OptionCode = 6
	OptionLogServer              OptionCode = 7
	OptionCookieServer           OptionCode = 8
	OptionLPRServer              OptionCode = 9
	OptionImpressServer          OptionCode = 10
	OptionResourceLocationServer OptionCode = 11
	OptionHostname               OptionCode = 12
	OptionBootFileSize           OptionCode = 13
	OptionMeritDumpFile          OptionCode = 14
	OptionDomainName             OptionCode = 15
	OptionSwapServer             OptionCode = 16
	OptionRootPath               OptionCode = 17
	OptionExtensionsPath         OptionCode = 18
	OptionIPForwarding           OptionCode = 19
	OptionNonLocalSourceRouting  OptionCode = 20
	OptionPolicyFilter           OptionCode = 21
	OptionMaxDatagramReassembly  OptionCode = 22
	OptionDefaultIPTTL           OptionCode = 23
	OptionPathMTUAgingTimeout    OptionCode = 24
	OptionPathMTUPlateauTable    OptionCode = 25
	OptionInterfaceMTU           OptionCode = 26
	OptionAllSubnetsLocal        OptionCode = 27
	OptionBroadcastAddress       OptionCode = 28
	OptionPerformMaskDiscovery   OptionCode = 29
	OptionMaskSupplier           OptionCode = 30
	OptionPerformRouterDiscovery OptionCode = 31
	OptionRouterSolicitAddr      OptionCode = 32
	OptionStaticRoute            OptionCode = 33
	OptionTrailerEncapsulation   OptionCode = 34
	OptionARPCacheTimeout        OptionCode = 35
	OptionEthernetEncapsulation  OptionCode = 36
	OptionTCPDefaultTTL          OptionCode = 37
	OptionTCPKeepaliveInterval   OptionCode = 38
	OptionTCPKeepaliveGarbage    OptionCode = 39
	OptionNISDomain              OptionCode = 40
	OptionNISServers             OptionCode = 41
	OptionNTPServers             OptionCode = 42
	OptionVendorSpecific         OptionCode = 43
	OptionNetBIOSNameServer      OptionCode = 44
	OptionNetBIOSDatagramDist    OptionCode = 45
	OptionNetBIOSNodeType        OptionCode = 46
	OptionNetBIOSScope           OptionCode = 47
	OptionXWindowFontServer      OptionCode = 48
	OptionXWindowDisplayManager  OptionCode = 49
	OptionRequestedIP            OptionCode = 50
	OptionIPLeaseTime            OptionCode = 51
	OptionOverload               OptionCode = 52
	OptionDHCPMessageType        OptionCode = 53
	OptionServerIdentifier       OptionCode = 54
	OptionParameterRequestList   OptionCode = 55
	OptionMessage                OptionCode = 56
	OptionMaxDHCPMessageSize     OptionCode = 57
	OptionRenewalTime            OptionCode = 58
	OptionRebindingTime          OptionCode = 59
	OptionVendorClassID          OptionCode = 60
	OptionClientIdentifier       OptionCode = 61
	OptionNetWareIPDomain        OptionCode = 62
	OptionNetWareIPOption        OptionCode = 63
	OptionTFTPServerName         OptionCode = 66
	OptionBootfileName           OptionCode = 67
	OptionUserClass              OptionCode = 77 // RFC 3004
	OptionClientSystemArch       OptionCode = 93 // RFC 4578
	OptionClientNetworkIface     OptionCode = 94 // RFC 4578
	OptionClientMachineID        OptionCode = 97 // RFC 4578
	OptionClientFQDN             OptionCode = 81 // RFC 4702
	OptionRelayAgentInfo         OptionCode = 82 // RFC 3046
	OptionSubnetSelection        OptionCode = 118 // RFC 3011
	OptionDomainSearch           OptionCode = 119 // RFC 3397
	OptionClasslessStaticRoute   OptionCode = 121 // RFC 3442
	OptionCaptivePortal          OptionCode = 114 // RFC 8910
	OptionVIVendorClass          OptionCode = 124
	OptionVIVendorSpecific       OptionCode = 125
	OptionTFTPServerAddress      OptionCode = 150
	// RFC 6926 bulk leasequery family
	OptionBulkLeaseQueryStatusCode       OptionCode = 151
	OptionBulkLeaseQueryBaseTime         OptionCode = 152
	OptionBulkLeaseQueryStartTimeOfState OptionCode = 153
	OptionBulkLeaseQueryQueryStartTime   OptionCode = 154
	OptionBulkLeaseQueryQueryEndTime     OptionCode = 155
	OptionBulkLeaseQueryDHCPState        OptionCode = 156
	OptionBulkLeaseQueryDataSource       OptionCode = 157
	OptionEnd                            OptionCode = 255
)

// DHCP packet size limits (RFC 2131 §2).
const (
	MinPacketSize     = 300
	MaxPacketSize     = 1500
	DefaultPacketSize = 576
)

// Well-known DHCP UDP ports (RFC 2131 §4.1).
const (
	ServerPort = 67
	ClientPort = 68
)

// MagicCookie is the four-byte sentinel separating the BOOTP header from
// the option area (RFC 2131 §3).
var MagicCookie = []byte{0x63, 0x82, 0x53, 0x63}

var (
	BroadcastMAC = net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	BroadcastIP  = net.IPv4(255, 255, 255, 255)
	ZeroIP       = net.IPv4(0, 0, 0, 0)
)
