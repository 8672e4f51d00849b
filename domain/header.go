package domain

// HeaderLength is the fixed size of a DNS message header in bytes.
const HeaderLength = 12

// Header is the fixed 12-byte DNS message header (RFC 1035 §4.1.1).
type Header struct {
	ID      uint16
	Flags   Flags
	QDCount uint16
	ANCount uint16
	NSCount uint16
	ARCount uint16
}
