package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/haukened/rr-stub/domain"
)

// RecordHeader is a non-owning view of a resource record envelope:
// owner name, type, class, TTL and the position of the RDATA within the
// message buffer. RDATA bytes are not copied until materialization.
type RecordHeader struct {
	Name  NameRef
	Type  domain.RRType
	Class domain.RRClass
	TTL   uint32

	msg     []byte
	dataOff int
	dataLen int
}

// RData returns the RDATA as a view into the message buffer.
func (rh RecordHeader) RData() []byte {
	return rh.msg[rh.dataOff : rh.dataOff+rh.dataLen]
}

// RDataOffset returns the RDATA position within the message buffer.
func (rh RecordHeader) RDataOffset() int { return rh.dataOff }

// RDataLength returns the RDLENGTH field value.
func (rh RecordHeader) RDataLength() int { return rh.dataLen }

// Message returns the buffer the record envelope points into.
func (rh RecordHeader) Message() []byte { return rh.msg }

// decodeRecordHeader reads a record envelope at off, returning a view
// and the offset of the first byte after the record.
func decodeRecordHeader(msg []byte, off int) (RecordHeader, int, error) {
	name := NewNameRef(msg, off)
	next, err := SkipName(msg, off)
	if err != nil {
		return RecordHeader{}, 0, err
	}
	if next+10 > len(msg) {
		return RecordHeader{}, 0, fmt.Errorf("%w: truncated record envelope", domain.ErrMalformedMessage)
	}
	rh := RecordHeader{
		Name:    name,
		Type:    domain.RRType(binary.BigEndian.Uint16(msg[next:])),
		Class:   domain.RRClass(binary.BigEndian.Uint16(msg[next+2:])),
		TTL:     binary.BigEndian.Uint32(msg[next+4:]),
		msg:     msg,
		dataOff: next + 10,
		dataLen: int(binary.BigEndian.Uint16(msg[next+8:])),
	}
	if rh.dataOff+rh.dataLen > len(msg) {
		return RecordHeader{}, 0, fmt.Errorf("%w: RDLENGTH %d runs past end of message", domain.ErrMalformedMessage, rh.dataLen)
	}
	return rh, rh.dataOff + rh.dataLen, nil
}
