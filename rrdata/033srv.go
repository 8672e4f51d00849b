package rrdata

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/haukened/rr-stub/domain"
)

// decodeSRVData decodes SRV record RDATA: priority, weight and port
// (16 bits each) followed by the target name. RFC 2782 forbids
// compressing the target, but compressed targets seen in the wild are
// tolerated.
func decodeSRVData(msg []byte, off, rdlen int) (string, error) {
	end := off + rdlen
	if rdlen < 7 {
		return "", fmt.Errorf("%w: SRV record RDLENGTH %d too short", domain.ErrMalformedMessage, rdlen)
	}
	priority := binary.BigEndian.Uint16(msg[off:])
	weight := binary.BigEndian.Uint16(msg[off+2:])
	port := binary.BigEndian.Uint16(msg[off+4:])
	target, next, err := decodeEmbeddedName(msg, off+6, end)
	if err != nil {
		return "", fmt.Errorf("SRV target: %w", err)
	}
	if next != end {
		return "", fmt.Errorf("%w: SRV record has %d bytes after target", domain.ErrMalformedMessage, end-next)
	}
	return fmt.Sprintf("%d %d %d %s", priority, weight, port, target), nil
}

// EncodeSRVData encodes the zone-file form "priority weight port target"
// into SRV record RDATA.
func EncodeSRVData(text string) ([]byte, error) {
	parts := strings.Fields(text)
	if len(parts) != 4 {
		return nil, fmt.Errorf("%w: SRV record wants 4 fields, got %d", domain.ErrBadParam, len(parts))
	}
	data := make([]byte, 6)
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(parts[i], 10, 16)
		if err != nil {
			return nil, fmt.Errorf("%w: SRV field %q: %v", domain.ErrBadParam, parts[i], err)
		}
		binary.BigEndian.PutUint16(data[i*2:], uint16(v))
	}
	target, err := encodeEmbeddedName(parts[3])
	if err != nil {
		return nil, fmt.Errorf("SRV target: %w", err)
	}
	return append(data, target...), nil
}
