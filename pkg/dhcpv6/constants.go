// Package dhcpv6 decodes and encodes DHCPv6 messages (RFC 8415 and the
// option-space extensions noted beside individual option codes), converting between
// the wire octet stream and a typed in-memory representation.
package dhcpv6

import "fmt"

// MessageType is the one-byte DHCPv6 message type (RFC 8415 §7.3, plus the
// RFC 5007/5460 Leasequery family).
type MessageType byte

const (
	MessageTypeSolicit            MessageType = 1
	MessageTypeAdvertise          MessageType = 2
	MessageTypeRequest            MessageType = 3
	MessageTypeConfirm            MessageType = 4
	MessageTypeRenew              MessageType = 5
	MessageTypeRebind             MessageType = 6
	MessageTypeReply              MessageType = 7
	MessageTypeRelease            MessageType = 8
	MessageTypeDecline            MessageType = 9
	MessageTypeReconfigure        MessageType = 10
	MessageTypeInformationRequest MessageType = 11
	MessageTypeRelayForward       MessageType = 12
	MessageTypeRelayReply         MessageType = 13
	MessageTypeLeaseQuery         MessageType = 14 // RFC 5007
	MessageTypeLeaseQueryReply    MessageType = 15 // RFC 5007
	MessageTypeLeaseQueryDone     MessageType = 16 // RFC 5460
	MessageTypeLeaseQueryData     MessageType = 17 // RFC 5460
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeSolicit:
		return "SOLICIT"
	case MessageTypeAdvertise:
		return "ADVERTISE"
	case MessageTypeRequest:
		return "REQUEST"
	case MessageTypeConfirm:
		return "CONFIRM"
	case MessageTypeRenew:
		return "RENEW"
	case MessageTypeRebind:
		return "REBIND"
	case MessageTypeReply:
		return "REPLY"
	case MessageTypeRelease:
		return "RELEASE"
	case MessageTypeDecline:
		return "DECLINE"
	case MessageTypeReconfigure:
		return "RECONFIGURE"
	case MessageTypeInformationRequest:
		return "INFORMATION-REQUEST"
	case MessageTypeRelayForward:
		return "RELAY-FORW"
	case MessageTypeRelayReply:
		return "RELAY-REPL"
	case MessageTypeLeaseQuery:
		return "LEASEQUERY"
	case MessageTypeLeaseQueryReply:
		return "LEASEQUERY-REPLY"
	case MessageTypeLeaseQueryDone:
		return "LEASEQUERY-DONE"
	case MessageTypeLeaseQueryData:
		return "LEASEQUERY-DATA"
	default:
		return fmt.Sprintf("MessageType(%d)", byte(t))
	}
}

// IsRelay reports whether t uses the RelayMessage envelope (§4.9) rather
// than the ordinary msg_type+xid+options layout.
func (t MessageType) IsRelay() bool {
	return t == MessageTypeRelayForward || t == MessageTypeRelayReply
}

// OptionCode is the two-byte DHCPv6 option code space (RFC 8415 §21 and
// its extensions).
type OptionCode uint16

const (
	OptionClientID               OptionCode = 1
	OptionServerID               OptionCode = 2
	OptionIANA                   OptionCode = 3
	OptionIATA                   OptionCode = 4
	OptionIAAddr                 OptionCode = 5
	OptionORO                    OptionCode = 6
	OptionPreference             OptionCode = 7
	OptionElapsedTime            OptionCode = 8
	OptionRelayMsg               OptionCode = 9
	OptionAuthentication         OptionCode = 11
	OptionServerUnicast          OptionCode = 12
	OptionStatusCode             OptionCode = 13
	OptionRapidCommit            OptionCode = 14
	OptionUserClass              OptionCode = 15
	OptionVendorClass            OptionCode = 16
	OptionVendorOpts             OptionCode = 17
	OptionInterfaceID            OptionCode = 18
	OptionReconfigureMsg         OptionCode = 19
	OptionReconfigureAccept      OptionCode = 20
	OptionSIPServerDomainNames   OptionCode = 21
	OptionSIPServerAddresses     OptionCode = 22
	OptionDNSServers             OptionCode = 23
	OptionDomainSearchList       OptionCode = 24
	OptionIAPD                   OptionCode = 25
	OptionIAPrefix               OptionCode = 26
	OptionNISServers             OptionCode = 27
	OptionNISPDomainName         OptionCode = 28
	OptionNISV2Servers           OptionCode = 29
	OptionNISV2PDomainName       OptionCode = 30
	OptionSNTPServers            OptionCode = 31
	OptionInformationRefreshTime OptionCode = 32
	OptionBCMCSServerDomainNames OptionCode = 33
	OptionBCMCSServerAddresses   OptionCode = 34
	OptionGeoconfCivic           OptionCode = 36
	OptionRemoteID               OptionCode = 37
	OptionSubscriberID           OptionCode = 38
	OptionClientFQDN             OptionCode = 39
	OptionPANAAgent              OptionCode = 40
	OptionNewPOSIXTimezone       OptionCode = 41
	OptionNewTZDBTimezone        OptionCode = 42
	OptionEchoRequest            OptionCode = 43
	OptionRSOO                   OptionCode = 66
	OptionPDExclude              OptionCode = 67
	OptionNTPServer              OptionCode = 56 // RFC 5908
	OptionBootfileURL            OptionCode = 59 // RFC 5970
	OptionBootfileParam          OptionCode = 60 // RFC 5970
	OptionClientArchType         OptionCode = 61 // RFC 5970
	OptionNII                    OptionCode = 62 // RFC 5970
	OptionERPLocalDomainName     OptionCode = 65 // RFC 6440
	OptionRelayID                OptionCode = 53 // RFC 6221
	OptionClientLinkLayerAddr    OptionCode = 79 // RFC 6939
	OptionSOLMaxRT               OptionCode = 82 // RFC 7083
	OptionINFMaxRT               OptionCode = 83 // RFC 7083
)

func (c OptionCode) String() string {
	if name, ok := optionCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("OptionCode(%d)", uint16(c))
}

var optionCodeNames = map[OptionCode]string{
	OptionClientID:               "ClientID",
	OptionServerID:               "ServerID",
	OptionIANA:                   "IA_NA",
	OptionIATA:                   "IA_TA",
	OptionIAAddr:                 "IAAddr",
	OptionORO:                    "ORO",
	OptionPreference:             "Preference",
	OptionElapsedTime:            "ElapsedTime",
	OptionRelayMsg:               "RelayMsg",
	OptionAuthentication:         "Authentication",
	OptionServerUnicast:          "ServerUnicast",
	OptionStatusCode:             "StatusCode",
	OptionRapidCommit:            "RapidCommit",
	OptionUserClass:              "UserClass",
	OptionVendorClass:            "VendorClass",
	OptionVendorOpts:             "VendorOpts",
	OptionInterfaceID:            "InterfaceID",
	OptionReconfigureMsg:         "ReconfigureMsg",
	OptionReconfigureAccept:      "ReconfigureAccept",
	OptionSIPServerDomainNames:   "SIPServerDomainNames",
	OptionSIPServerAddresses:     "SIPServerAddresses",
	OptionDNSServers:             "DNSServers",
	OptionDomainSearchList:       "DomainSearchList",
	OptionIAPD:                   "IA_PD",
	OptionIAPrefix:               "IAPrefix",
	OptionNISServers:             "NISServers",
	OptionNISPDomainName:         "NISPDomainName",
	OptionNISV2Servers:           "NISV2Servers",
	OptionNISV2PDomainName:       "NISV2PDomainName",
	OptionSNTPServers:            "SNTPServers",
	OptionInformationRefreshTime: "InformationRefreshTime",
	OptionBCMCSServerDomainNames: "BCMCSServerDomainNames",
	OptionBCMCSServerAddresses:   "BCMCSServerAddresses",
	OptionGeoconfCivic:           "GeoconfCivic",
	OptionRemoteID:               "RemoteID",
	OptionSubscriberID:           "SubscriberID",
	OptionClientFQDN:             "ClientFQDN",
	OptionPANAAgent:              "PANAAgent",
	OptionNewPOSIXTimezone:       "NewPOSIXTimezone",
	OptionNewTZDBTimezone:        "NewTZDBTimezone",
	OptionEchoRequest:            "EchoRequest",
	OptionRSOO:                   "RSOO",
	OptionPDExclude:              "PDExclude",
	OptionNTPServer:              "NTPServer",
	OptionBootfileURL:            "BootfileURL",
	OptionBootfileParam:          "BootfileParam",
	OptionClientArchType:         "ClientArchType",
	OptionNII:                    "NII",
	OptionERPLocalDomainName:     "ERPLocalDomainName",
	OptionRelayID:                "RelayID",
	OptionClientLinkLayerAddr:    "ClientLinkLayerAddr",
	OptionSOLMaxRT:               "SOLMaxRT",
	OptionINFMaxRT:               "INFMaxRT",
}

// MaxRelayDepth bounds RelayMessage nesting on decode (spec.md §4.9).
const MaxRelayDepth = 32
