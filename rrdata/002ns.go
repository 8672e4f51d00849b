package rrdata

import (
	"fmt"

	"github.com/haukened/rr-stub/domain"
)

// decodeNSData decodes NS record RDATA: a single, possibly compressed
// name server name.
func decodeNSData(msg []byte, off, rdlen int) (string, error) {
	name, next, err := decodeEmbeddedName(msg, off, off+rdlen)
	if err != nil {
		return "", err
	}
	if next != off+rdlen {
		return "", fmt.Errorf("%w: NS record has %d bytes after name", domain.ErrMalformedMessage, off+rdlen-next)
	}
	return name, nil
}

// EncodeNSData encodes a name server name into NS record RDATA.
func EncodeNSData(text string) ([]byte, error) {
	return encodeEmbeddedName(text)
}
