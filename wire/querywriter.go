package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/haukened/rr-stub/domain"
)

// WriteQuery encodes a complete query message into buf: a 2-byte
// big-endian length prefix (RFC 7766 TCP framing), the header, one
// question, and an optional EDNS0 OPT record. The same bytes serve both
// transports: TCP sends buf[:n], UDP sends buf[2:n].
//
// It returns the total number of bytes written including the prefix.
func WriteQuery(buf []byte, id uint16, q domain.Question, recursionDesired bool, opt *OPT) (int, error) {
	if err := q.Validate(); err != nil {
		return 0, err
	}

	h := domain.Header{
		ID:      id,
		Flags:   domain.Flags(0).SetOpCode(domain.OpCodeQuery).SetRecursionDesired(recursionDesired),
		QDCount: 1,
	}
	if opt != nil {
		h.ARCount = 1
	}

	off := 2
	n, err := EncodeHeader(buf, off, h)
	if err != nil {
		return 0, err
	}
	off += n

	// No compression table: a query holds a single name.
	n, err = EncodeQuestion(buf, off, q, nil)
	if err != nil {
		return 0, err
	}
	off += n

	if opt != nil {
		n, err = EncodeOPT(buf, off, *opt)
		if err != nil {
			return 0, err
		}
		off += n
	}

	if off-2 > int(^uint16(0)) {
		return 0, fmt.Errorf("%w: query message too long", domain.ErrBadParam)
	}
	binary.BigEndian.PutUint16(buf, uint16(off-2))
	return off, nil
}
