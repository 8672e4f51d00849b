package rrdata

import (
	"fmt"
	"net"

	"github.com/haukened/rr-stub/domain"
)

// decodeAData decodes A record RDATA: exactly four address octets.
func decodeAData(msg []byte, off, rdlen int) (string, error) {
	if rdlen != net.IPv4len {
		return "", fmt.Errorf("%w: A record RDLENGTH %d, want %d", domain.ErrMalformedMessage, rdlen, net.IPv4len)
	}
	return net.IP(msg[off : off+rdlen]).String(), nil
}

// EncodeAData encodes a dotted-quad string into A record RDATA.
func EncodeAData(text string) ([]byte, error) {
	ip := net.ParseIP(text)
	if !isIPv4(ip) {
		return nil, fmt.Errorf("%w: invalid A record address %q", domain.ErrBadParam, text)
	}
	return ip.To4(), nil
}
