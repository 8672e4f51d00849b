package domain

import "fmt"

// RRClass identifies a DNS record class. IN is the only class seen in
// practice; the others exist for completeness.
type RRClass uint16

const (
	RRClassIN   RRClass = 1   // Internet
	RRClassCH   RRClass = 3   // Chaos
	RRClassHS   RRClass = 4   // Hesiod
	RRClassNONE RRClass = 254 // RFC 2136 prerequisite class
	RRClassANY  RRClass = 255 // query-only wildcard
)

var rrClassNames = map[RRClass]string{
	RRClassIN:   "IN",
	RRClassCH:   "CH",
	RRClassHS:   "HS",
	RRClassNONE: "NONE",
	RRClassANY:  "ANY",
}

var rrClassValues = make(map[string]RRClass, len(rrClassNames))

func init() {
	for c, name := range rrClassNames {
		rrClassValues[name] = c
	}
}

// IsKnown reports whether the class has a registered mnemonic.
func (c RRClass) IsKnown() bool {
	_, ok := rrClassNames[c]
	return ok
}

// String returns the class mnemonic, or the RFC 3597 generic form
// ("CLASS1234") for codes without one.
func (c RRClass) String() string {
	if name, ok := rrClassNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CLASS%d", uint16(c))
}

// RRClassFromString converts a mnemonic to its RRClass code.
func RRClassFromString(s string) (RRClass, bool) {
	c, ok := rrClassValues[s]
	return c, ok
}
