package transport

import (
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/haukened/rr-stub/domain"
)

// ExchangeTCP sends a length-prefixed query and reads one framed
// response into buf (RFC 7766). framed must already start with its
// 2-byte big-endian length prefix. A response longer than buf is
// rejected with ErrCapacityExceeded; the buffer is never grown.
func ExchangeTCP(conn net.Conn, framed, buf []byte, deadline time.Time) (int, error) {
	if err := setDeadline(conn, deadline); err != nil {
		return 0, err
	}
	if _, err := conn.Write(framed); err != nil {
		return 0, mapTimeout("tcp send", err)
	}

	var prefix [2]byte
	if _, err := io.ReadFull(conn, prefix[:]); err != nil {
		return 0, mapTimeout("tcp read length", err)
	}
	length := int(binary.BigEndian.Uint16(prefix[:]))
	if length > len(buf) {
		return 0, fmt.Errorf("%w: response of %d bytes, buffer holds %d", domain.ErrCapacityExceeded, length, len(buf))
	}

	if _, err := io.ReadFull(conn, buf[:length]); err != nil {
		return 0, mapTimeout("tcp read message", err)
	}
	return length, nil
}
