package rrdata

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/haukened/rr-stub/domain"
)

// decodeSOAData decodes SOA record RDATA: two names (mname, rname) that
// may be compressed, followed by five unsigned 32-bit integers.
func decodeSOAData(msg []byte, off, rdlen int) (string, error) {
	end := off + rdlen

	mname, next, err := decodeEmbeddedName(msg, off, end)
	if err != nil {
		return "", fmt.Errorf("SOA mname: %w", err)
	}
	rname, next, err := decodeEmbeddedName(msg, next, end)
	if err != nil {
		return "", fmt.Errorf("SOA rname: %w", err)
	}
	if end-next != 20 {
		return "", fmt.Errorf("%w: SOA record has %d bytes of integer fields, want 20", domain.ErrMalformedMessage, end-next)
	}

	var fields [5]uint32
	for i := range fields {
		fields[i] = binary.BigEndian.Uint32(msg[next+i*4:])
	}
	return fmt.Sprintf("%s %s %d %d %d %d %d", mname, rname,
		fields[0], fields[1], fields[2], fields[3], fields[4]), nil
}

// EncodeSOAData encodes the zone-file form
// "mname rname serial refresh retry expire minimum" into SOA RDATA.
func EncodeSOAData(text string) ([]byte, error) {
	parts := strings.Fields(text)
	if len(parts) != 7 {
		return nil, fmt.Errorf("%w: SOA record wants 7 fields, got %d", domain.ErrBadParam, len(parts))
	}
	mname, err := encodeEmbeddedName(parts[0])
	if err != nil {
		return nil, fmt.Errorf("SOA mname: %w", err)
	}
	rname, err := encodeEmbeddedName(parts[1])
	if err != nil {
		return nil, fmt.Errorf("SOA rname: %w", err)
	}

	ints := make([]byte, 20)
	for i := 0; i < 5; i++ {
		v, err := strconv.ParseUint(parts[i+2], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: SOA field %q: %v", domain.ErrBadParam, parts[i+2], err)
		}
		binary.BigEndian.PutUint32(ints[i*4:], uint32(v))
	}

	data := append(mname, rname...)
	return append(data, ints...), nil
}
