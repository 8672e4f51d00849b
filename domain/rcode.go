package domain

import "fmt"

// RCode is a DNS response code. The type is 16 bits wide because EDNS0
// extends the 4-bit header field with 8 more bits carried in the OPT
// pseudo-record (RFC 6891 §6.1.3).
type RCode uint16

const (
	RCodeNoError  RCode = 0  // NOERROR
	RCodeFormErr  RCode = 1  // FORMERR
	RCodeServFail RCode = 2  // SERVFAIL
	RCodeNXDomain RCode = 3  // NXDOMAIN
	RCodeNotImp   RCode = 4  // NOTIMP
	RCodeRefused  RCode = 5  // REFUSED
	RCodeYXDomain RCode = 6  // YXDOMAIN
	RCodeYXRRSet  RCode = 7  // YXRRSET
	RCodeNXRRSet  RCode = 8  // NXRRSET
	RCodeNotAuth  RCode = 9  // NOTAUTH
	RCodeNotZone  RCode = 10 // NOTZONE
	RCodeBadVers  RCode = 16 // BADVERS (extended)
)

var rcodeNames = map[RCode]string{
	RCodeNoError:  "NOERROR",
	RCodeFormErr:  "FORMERR",
	RCodeServFail: "SERVFAIL",
	RCodeNXDomain: "NXDOMAIN",
	RCodeNotImp:   "NOTIMP",
	RCodeRefused:  "REFUSED",
	RCodeYXDomain: "YXDOMAIN",
	RCodeYXRRSet:  "YXRRSET",
	RCodeNXRRSet:  "NXRRSET",
	RCodeNotAuth:  "NOTAUTH",
	RCodeNotZone:  "NOTZONE",
	RCodeBadVers:  "BADVERS",
}

var rcodeValues = make(map[string]RCode, len(rcodeNames))

func init() {
	for r, name := range rcodeNames {
		rcodeValues[name] = r
	}
}

// ExtendedRCode combines the 4-bit header RCODE with the upper 8 bits
// from an OPT record into the full 12-bit response code.
func ExtendedRCode(base RCode, ext uint8) RCode {
	return base&0x0F | RCode(ext)<<4
}

// String returns the response code mnemonic.
func (r RCode) String() string {
	if name, ok := rcodeNames[r]; ok {
		return name
	}
	return fmt.Sprintf("RCODE%d", uint16(r))
}

// RCodeFromString converts a mnemonic to its RCode value.
func RCodeFromString(s string) (RCode, bool) {
	r, ok := rcodeValues[s]
	return r, ok
}
