// Package rrdata interprets type-specific RDATA. Decoders read against
// the whole message buffer so embedded names (NS, CNAME, SOA, MX
// targets) may be compressed; they never consume more or fewer bytes
// than RDLENGTH advertises.
package rrdata

import (
	"fmt"
	"net"

	"github.com/haukened/rr-stub/domain"
	"github.com/haukened/rr-stub/wire"
)

// decodeEmbeddedName decodes one possibly compressed name inside an
// RDATA window and returns it with the offset of the next byte.
func decodeEmbeddedName(msg []byte, off, end int) (string, int, error) {
	name, next, err := wire.DecodeName(msg, off)
	if err != nil {
		return "", 0, err
	}
	if next > end {
		return "", 0, fmt.Errorf("%w: embedded name runs past RDLENGTH", domain.ErrMalformedMessage)
	}
	return name, next, nil
}

// encodeEmbeddedName encodes a name without compression, for encoders
// that produce standalone RDATA.
func encodeEmbeddedName(name string) ([]byte, error) {
	buf := make([]byte, wire.MaxNameLength)
	n, err := wire.EncodeName(buf, 0, name, nil)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// isIPv4 reports whether ip has a 4-byte representation.
func isIPv4(ip net.IP) bool {
	return ip != nil && ip.To4() != nil
}

// isIPv6 reports whether ip is a genuine IPv6 address.
func isIPv6(ip net.IP) bool {
	return ip != nil && ip.To16() != nil && ip.To4() == nil
}
