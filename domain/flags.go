package domain

// Flags is the second 16-bit word of a DNS message header, packing
// QR, OPCODE, AA, TC, RD, RA, Z and RCODE per RFC 1035 §4.1.1:
//
//	 0  1  2  3  4  5  6  7  8  9 10 11 12 13 14 15
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	|QR|   Opcode  |AA|TC|RD|RA|   Z    |   RCODE   |
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
type Flags uint16

const (
	flagQR Flags = 1 << 15
	flagAA Flags = 1 << 10
	flagTC Flags = 1 << 9
	flagRD Flags = 1 << 8
	flagRA Flags = 1 << 7
)

// IsResponse reports whether the QR bit is set.
func (f Flags) IsResponse() bool { return f&flagQR != 0 }

// OpCode extracts the 4-bit opcode field.
func (f Flags) OpCode() OpCode { return OpCode(f >> 11 & 0x0F) }

// Authoritative reports the AA bit.
func (f Flags) Authoritative() bool { return f&flagAA != 0 }

// Truncated reports the TC bit.
func (f Flags) Truncated() bool { return f&flagTC != 0 }

// RecursionDesired reports the RD bit.
func (f Flags) RecursionDesired() bool { return f&flagRD != 0 }

// RecursionAvailable reports the RA bit.
func (f Flags) RecursionAvailable() bool { return f&flagRA != 0 }

// Z extracts the reserved 3-bit field. Always zero in well-formed messages.
func (f Flags) Z() uint8 { return uint8(f >> 4 & 0x07) }

// RCode extracts the 4-bit header response code. Callers dealing with
// EDNS0 must widen it with ExtendedRCode.
func (f Flags) RCode() RCode { return RCode(f & 0x0F) }

// SetResponse returns a copy with the QR bit set.
func (f Flags) SetResponse() Flags { return f | flagQR }

// SetOpCode returns a copy with the opcode field replaced.
func (f Flags) SetOpCode(o OpCode) Flags {
	return f&^(0x0F<<11) | Flags(o&0x0F)<<11
}

// SetTruncated returns a copy with the TC bit set.
func (f Flags) SetTruncated() Flags { return f | flagTC }

// SetRecursionDesired returns a copy with the RD bit set or cleared.
func (f Flags) SetRecursionDesired(rd bool) Flags {
	if rd {
		return f | flagRD
	}
	return f &^ flagRD
}

// SetRCode returns a copy with the header RCODE field replaced.
func (f Flags) SetRCode(r RCode) Flags {
	return f&^0x0F | Flags(r&0x0F)
}
