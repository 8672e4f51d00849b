package rrdata

import (
	"fmt"
	"net"

	"github.com/haukened/rr-stub/domain"
)

// decodeAAAAData decodes AAAA record RDATA: exactly sixteen address
// octets.
func decodeAAAAData(msg []byte, off, rdlen int) (string, error) {
	if rdlen != net.IPv6len {
		return "", fmt.Errorf("%w: AAAA record RDLENGTH %d, want %d", domain.ErrMalformedMessage, rdlen, net.IPv6len)
	}
	return net.IP(msg[off : off+rdlen]).String(), nil
}

// EncodeAAAAData encodes an IPv6 address string into AAAA record RDATA.
func EncodeAAAAData(text string) ([]byte, error) {
	ip := net.ParseIP(text)
	if !isIPv6(ip) {
		return nil, fmt.Errorf("%w: invalid AAAA record address %q", domain.ErrBadParam, text)
	}
	return ip.To16(), nil
}
