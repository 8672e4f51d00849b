package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/haukened/rr-stub/domain"
)

// OPT is the EDNS0 pseudo-record of RFC 6891. It abuses the record
// envelope: CLASS carries the advertised UDP payload size and TTL packs
// the extended RCODE bits, the EDNS version and the EDNS flags. It is
// synthesized by the client and never surfaced as an RRSet member.
type OPT struct {
	UDPPayloadSize uint16
	ExtRCode       uint8
	Version        uint8
	Flags          uint16
}

// DNSSECOK reports the DO bit (RFC 3225).
func (o OPT) DNSSECOK() bool { return o.Flags&0x8000 != 0 }

// EncodeOPT writes an OPT pseudo-record with empty RDATA into buf at off
// and returns the number of bytes written: root name (1), type (2),
// class (2), TTL (4), RDLENGTH (2).
func EncodeOPT(buf []byte, off int, o OPT) (int, error) {
	const optLength = 11
	if off+optLength > len(buf) {
		return 0, fmt.Errorf("%w: buffer too small for OPT record", domain.ErrBadParam)
	}
	buf[off] = 0 // root owner name
	binary.BigEndian.PutUint16(buf[off+1:], uint16(domain.RRTypeOPT))
	binary.BigEndian.PutUint16(buf[off+3:], o.UDPPayloadSize)
	binary.BigEndian.PutUint32(buf[off+5:], o.ttl())
	binary.BigEndian.PutUint16(buf[off+9:], 0)
	return optLength, nil
}

// OPTFromRecord unpacks the envelope fields of a received OPT record.
func OPTFromRecord(rh RecordHeader) OPT {
	return OPT{
		UDPPayloadSize: uint16(rh.Class),
		ExtRCode:       uint8(rh.TTL >> 24),
		Version:        uint8(rh.TTL >> 16),
		Flags:          uint16(rh.TTL),
	}
}

func (o OPT) ttl() uint32 {
	return uint32(o.ExtRCode)<<24 | uint32(o.Version)<<16 | uint32(o.Flags)
}
