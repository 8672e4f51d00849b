package rrdata

import (
	"fmt"
	"strings"

	"github.com/haukened/rr-stub/domain"
)

// decodeTXTData decodes TXT record RDATA: one or more length-prefixed
// character-strings, rendered as quoted strings separated by spaces.
func decodeTXTData(msg []byte, off, rdlen int) (string, error) {
	end := off + rdlen
	if rdlen == 0 {
		return "", fmt.Errorf("%w: TXT record with empty RDATA", domain.ErrMalformedMessage)
	}
	var parts []string
	for off < end {
		length := int(msg[off])
		off++
		if off+length > end {
			return "", fmt.Errorf("%w: TXT character-string runs past RDLENGTH", domain.ErrMalformedMessage)
		}
		parts = append(parts, fmt.Sprintf("%q", msg[off:off+length]))
		off += length
	}
	return strings.Join(parts, " "), nil
}

// EncodeTXTData encodes text as a single character-string. Strings
// longer than 255 bytes are split across multiple character-strings.
func EncodeTXTData(text string) ([]byte, error) {
	if text == "" {
		return []byte{0}, nil
	}
	var data []byte
	for len(text) > 0 {
		chunk := text
		if len(chunk) > 255 {
			chunk = chunk[:255]
		}
		data = append(data, byte(len(chunk)))
		data = append(data, chunk...)
		text = text[len(chunk):]
	}
	return data, nil
}
