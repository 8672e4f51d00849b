package transport

import (
	"net"
	"time"
)

// ExchangeUDP sends one query datagram and receives one response
// datagram into buf, returning the number of bytes received. The
// response may legitimately fill buf completely; callers treat a full
// buffer as possible truncation.
func ExchangeUDP(conn net.Conn, query, buf []byte, deadline time.Time) (int, error) {
	if err := setDeadline(conn, deadline); err != nil {
		return 0, err
	}
	if _, err := conn.Write(query); err != nil {
		return 0, mapTimeout("udp send", err)
	}
	n, err := conn.Read(buf)
	if err != nil {
		return 0, mapTimeout("udp receive", err)
	}
	return n, nil
}
