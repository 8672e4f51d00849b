package rrdata

import (
	"fmt"

	"github.com/haukened/rr-stub/domain"
)

// Encode converts the presentation form of a record value into its
// binary RDATA, based on type. Names inside the result are never
// compressed; message-level compression is the wire codec's concern.
func Encode(rrType domain.RRType, text string) ([]byte, error) {
	switch rrType {
	case domain.RRTypeA: // 1
		return EncodeAData(text)
	case domain.RRTypeNS: // 2
		return EncodeNSData(text)
	case domain.RRTypeCNAME: // 5
		return EncodeCNAMEData(text)
	case domain.RRTypeSOA: // 6
		return EncodeSOAData(text)
	case domain.RRTypePTR: // 12
		return EncodePTRData(text)
	case domain.RRTypeMX: // 15
		return EncodeMXData(text)
	case domain.RRTypeTXT: // 16
		return EncodeTXTData(text)
	case domain.RRTypeAAAA: // 28
		return EncodeAAAAData(text)
	case domain.RRTypeSRV: // 33
		return EncodeSRVData(text)
	default:
		return nil, fmt.Errorf("%w: no encoder for %s records", domain.ErrBadParam, rrType)
	}
}
