package rrdata

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/haukened/rr-stub/domain"
)

// decodeMXData decodes MX record RDATA: a 16-bit preference followed by
// the exchange name, which may be compressed.
func decodeMXData(msg []byte, off, rdlen int) (string, error) {
	end := off + rdlen
	if rdlen < 3 {
		return "", fmt.Errorf("%w: MX record RDLENGTH %d too short", domain.ErrMalformedMessage, rdlen)
	}
	preference := binary.BigEndian.Uint16(msg[off:])
	exchange, next, err := decodeEmbeddedName(msg, off+2, end)
	if err != nil {
		return "", fmt.Errorf("MX exchange: %w", err)
	}
	if next != end {
		return "", fmt.Errorf("%w: MX record has %d bytes after exchange", domain.ErrMalformedMessage, end-next)
	}
	return fmt.Sprintf("%d %s", preference, exchange), nil
}

// EncodeMXData encodes the zone-file form "preference exchange" into MX
// record RDATA.
func EncodeMXData(text string) ([]byte, error) {
	parts := strings.Fields(text)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: MX record wants 2 fields, got %d", domain.ErrBadParam, len(parts))
	}
	preference, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil {
		return nil, fmt.Errorf("%w: MX preference %q: %v", domain.ErrBadParam, parts[0], err)
	}
	exchange, err := encodeEmbeddedName(parts[1])
	if err != nil {
		return nil, fmt.Errorf("MX exchange: %w", err)
	}
	data := make([]byte, 2, 2+len(exchange))
	binary.BigEndian.PutUint16(data, uint16(preference))
	return append(data, exchange...), nil
}
