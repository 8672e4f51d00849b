// Package transport performs single query/response exchanges over UDP
// and TCP. The socket capability is abstracted behind Dialer so the
// client state machine can run against OS sockets or test doubles.
package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/haukened/rr-stub/domain"
)

// Dialer creates connections to a nameserver. net.Dialer satisfies the
// shape via NetDialer; tests substitute in-memory implementations.
type Dialer interface {
	Dial(ctx context.Context, network, address string) (net.Conn, error)
}

// NetDialer is the OS socket Dialer.
type NetDialer struct {
	net.Dialer
}

// Dial opens a connection using the embedded net.Dialer.
func (d *NetDialer) Dial(ctx context.Context, network, address string) (net.Conn, error) {
	return d.DialContext(ctx, network, address)
}

// mapTimeout converts deadline expiry into the library's timeout error
// kind; other I/O errors pass through wrapped with context.
func mapTimeout(op string, err error) error {
	var nerr net.Error
	if errors.Is(err, os.ErrDeadlineExceeded) || (errors.As(err, &nerr) && nerr.Timeout()) {
		return fmt.Errorf("%w: %s", domain.ErrTimeout, op)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// setDeadline applies the exchange deadline to a connection.
func setDeadline(conn net.Conn, deadline time.Time) error {
	if err := conn.SetDeadline(deadline); err != nil {
		return fmt.Errorf("set deadline: %w", err)
	}
	return nil
}
