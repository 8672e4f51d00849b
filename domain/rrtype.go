package domain

import "fmt"

// RRType identifies a DNS resource record type.
// Values are the IANA-assigned codes used on the wire.
type RRType uint16

// Resource record types understood by this library. Anything else is
// carried opaquely per RFC 3597.
const (
	RRTypeA     RRType = 1   // IPv4 host address
	RRTypeNS    RRType = 2   // authoritative name server
	RRTypeCNAME RRType = 5   // canonical name
	RRTypeSOA   RRType = 6   // start of authority
	RRTypePTR   RRType = 12  // domain name pointer
	RRTypeMX    RRType = 15  // mail exchange
	RRTypeTXT   RRType = 16  // text strings
	RRTypeAAAA  RRType = 28  // IPv6 host address
	RRTypeSRV   RRType = 33  // service locator
	RRTypeOPT   RRType = 41  // EDNS0 pseudo-record, never part of an RRSet
	RRTypeANY   RRType = 255 // query-only wildcard
)

// rrTypeNames maps codes to mnemonics. Populated at package load,
// read-only afterwards.
var rrTypeNames = map[RRType]string{
	RRTypeA:     "A",
	RRTypeNS:    "NS",
	RRTypeCNAME: "CNAME",
	RRTypeSOA:   "SOA",
	RRTypePTR:   "PTR",
	RRTypeMX:    "MX",
	RRTypeTXT:   "TXT",
	RRTypeAAAA:  "AAAA",
	RRTypeSRV:   "SRV",
	RRTypeOPT:   "OPT",
	RRTypeANY:   "ANY",
}

var rrTypeValues = make(map[string]RRType, len(rrTypeNames))

func init() {
	for t, name := range rrTypeNames {
		rrTypeValues[name] = t
	}
}

// IsKnown reports whether the type has a registered mnemonic.
func (t RRType) IsKnown() bool {
	_, ok := rrTypeNames[t]
	return ok
}

// String returns the IANA mnemonic, or the RFC 3597 generic form
// ("TYPE1234") for codes without one.
func (t RRType) String() string {
	if name, ok := rrTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TYPE%d", uint16(t))
}

// RRTypeFromString converts a mnemonic to its RRType code.
// The second return value is false if the mnemonic is not registered.
func RRTypeFromString(s string) (RRType, bool) {
	t, ok := rrTypeValues[s]
	return t, ok
}
