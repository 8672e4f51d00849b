package rrdata

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/haukened/rr-stub/domain"
	"github.com/haukened/rr-stub/wire"
)

// Decode renders the RDATA of a record at msg[off:off+rdlen] into
// presentation form based on its type. Types without a dedicated decoder
// fall back to the RFC 3597 generic form.
func Decode(rrType domain.RRType, msg []byte, off, rdlen int) (string, error) {
	if off+rdlen > len(msg) {
		return "", fmt.Errorf("%w: RDATA runs past end of message", domain.ErrMalformedMessage)
	}
	switch rrType {
	case domain.RRTypeA: // 1
		return decodeAData(msg, off, rdlen)
	case domain.RRTypeNS: // 2
		return decodeNSData(msg, off, rdlen)
	case domain.RRTypeCNAME: // 5
		return decodeCNAMEData(msg, off, rdlen)
	case domain.RRTypeSOA: // 6
		return decodeSOAData(msg, off, rdlen)
	case domain.RRTypePTR: // 12
		return decodePTRData(msg, off, rdlen)
	case domain.RRTypeMX: // 15
		return decodeMXData(msg, off, rdlen)
	case domain.RRTypeTXT: // 16
		return decodeTXTData(msg, off, rdlen)
	case domain.RRTypeAAAA: // 28
		return decodeAAAAData(msg, off, rdlen)
	case domain.RRTypeSRV: // 33
		return decodeSRVData(msg, off, rdlen)
	default:
		return decodeGenericData(msg, off, rdlen), nil
	}
}

// decodeGenericData renders unknown RDATA in the RFC 3597 form:
// `\# <length> <hex>`.
func decodeGenericData(msg []byte, off, rdlen int) string {
	if rdlen == 0 {
		return `\# 0`
	}
	return fmt.Sprintf(`\# %d %s`, rdlen, strings.ToUpper(hex.EncodeToString(msg[off:off+rdlen])))
}

// Materialize copies a record envelope out of its message buffer into an
// owned ResourceRecord, decoding the RDATA presentation form. Embedded
// compressed names are fully expanded; nothing in the result aliases the
// buffer.
func Materialize(rh wire.RecordHeader) (domain.ResourceRecord, error) {
	name, err := rh.Name.Unpack()
	if err != nil {
		return domain.ResourceRecord{}, err
	}
	text, err := Decode(rh.Type, rh.Message(), rh.RDataOffset(), rh.RDataLength())
	if err != nil {
		return domain.ResourceRecord{}, err
	}
	data := make([]byte, rh.RDataLength())
	copy(data, rh.RData())
	return domain.NewResourceRecord(name, rh.Type, rh.Class, rh.TTL, data, text)
}
