package rrdata

import (
	"fmt"

	"github.com/haukened/rr-stub/domain"
)

// decodeCNAMEData decodes CNAME record RDATA: the canonical name,
// possibly compressed.
func decodeCNAMEData(msg []byte, off, rdlen int) (string, error) {
	name, next, err := decodeEmbeddedName(msg, off, off+rdlen)
	if err != nil {
		return "", err
	}
	if next != off+rdlen {
		return "", fmt.Errorf("%w: CNAME record has %d bytes after name", domain.ErrMalformedMessage, off+rdlen-next)
	}
	return name, nil
}

// EncodeCNAMEData encodes a canonical name into CNAME record RDATA.
func EncodeCNAMEData(text string) ([]byte, error) {
	return encodeEmbeddedName(text)
}
