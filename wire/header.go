package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/haukened/rr-stub/domain"
)

// EncodeHeader writes the fixed 12-byte message header into buf at off
// and returns the number of bytes written.
func EncodeHeader(buf []byte, off int, h domain.Header) (int, error) {
	if off+domain.HeaderLength > len(buf) {
		return 0, fmt.Errorf("%w: buffer too small for header", domain.ErrBadParam)
	}
	binary.BigEndian.PutUint16(buf[off:], h.ID)
	binary.BigEndian.PutUint16(buf[off+2:], uint16(h.Flags))
	binary.BigEndian.PutUint16(buf[off+4:], h.QDCount)
	binary.BigEndian.PutUint16(buf[off+6:], h.ANCount)
	binary.BigEndian.PutUint16(buf[off+8:], h.NSCount)
	binary.BigEndian.PutUint16(buf[off+10:], h.ARCount)
	return domain.HeaderLength, nil
}

// DecodeHeader reads the fixed 12-byte header from the front of msg.
func DecodeHeader(msg []byte) (domain.Header, error) {
	if len(msg) < domain.HeaderLength {
		return domain.Header{}, fmt.Errorf("%w: message shorter than header (%d bytes)", domain.ErrMalformedMessage, len(msg))
	}
	return domain.Header{
		ID:      binary.BigEndian.Uint16(msg[0:2]),
		Flags:   domain.Flags(binary.BigEndian.Uint16(msg[2:4])),
		QDCount: binary.BigEndian.Uint16(msg[4:6]),
		ANCount: binary.BigEndian.Uint16(msg[6:8]),
		NSCount: binary.BigEndian.Uint16(msg[8:10]),
		ARCount: binary.BigEndian.Uint16(msg[10:12]),
	}, nil
}
