package rrdata

import (
	"fmt"

	"github.com/haukened/rr-stub/domain"
)

// decodePTRData decodes PTR record RDATA: a single, possibly compressed
// pointer name.
func decodePTRData(msg []byte, off, rdlen int) (string, error) {
	name, next, err := decodeEmbeddedName(msg, off, off+rdlen)
	if err != nil {
		return "", err
	}
	if next != off+rdlen {
		return "", fmt.Errorf("%w: PTR record has %d bytes after name", domain.ErrMalformedMessage, off+rdlen-next)
	}
	return name, nil
}

// EncodePTRData encodes a pointer name into PTR record RDATA.
func EncodePTRData(text string) ([]byte, error) {
	return encodeEmbeddedName(text)
}
