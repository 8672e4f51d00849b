package client

import (
	"fmt"
	"net"
	"time"

	"github.com/haukened/rr-stub/common/clock"
	"github.com/haukened/rr-stub/common/log"
	"github.com/haukened/rr-stub/domain"
	"github.com/haukened/rr-stub/transport"
)

// ProtocolStrategy selects how UDP and TCP are used for a query.
type ProtocolStrategy int

const (
	// UDPWithTCPFallback sends over UDP and retries over TCP when the
	// response is truncated. This is the default.
	UDPWithTCPFallback ProtocolStrategy = iota

	// TCPOnly skips UDP entirely.
	TCPOnly

	// UDPOnly never retries over TCP; truncated responses are parsed
	// and returned as received.
	UDPOnly
)

// String returns the strategy name.
func (s ProtocolStrategy) String() string {
	switch s {
	case UDPWithTCPFallback:
		return "udp"
	case TCPOnly:
		return "tcp"
	case UDPOnly:
		return "udp-only"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ProtocolStrategyFromString parses a strategy name as accepted by
// configuration surfaces: "udp", "tcp" or "udp-only".
func ProtocolStrategyFromString(s string) (ProtocolStrategy, bool) {
	switch s {
	case "udp":
		return UDPWithTCPFallback, true
	case "tcp":
		return TCPOnly, true
	case "udp-only":
		return UDPOnly, true
	default:
		return 0, false
	}
}

// Recursion controls the RD header bit.
type Recursion int

const (
	// RecursionDesired asks the nameserver to resolve recursively.
	RecursionDesired Recursion = iota

	// RecursionNone leaves the RD bit clear.
	RecursionNone
)

// EDNS configures the EDNS0 OPT pseudo-record (RFC 6891) attached to
// outgoing queries.
type EDNS struct {
	// Enabled turns EDNS0 on. When off, responses over 512 bytes arrive
	// truncated and trigger the TCP fallback.
	Enabled bool

	// Version is the EDNS version to advertise. Zero is the only
	// version defined today.
	Version uint8

	// UDPPayloadSize is the largest UDP response the client advertises
	// it can receive. It must not exceed the receive buffer size.
	UDPPayloadSize uint16
}

// Defaults applied by Config.withDefaults.
const (
	DefaultBufferSize     = 4096
	DefaultTimeout        = 5 * time.Second
	DefaultUDPPayloadSize = 1232
)

// Config carries everything a Client needs. It is constructed once,
// validated by New, and never mutated afterwards; one Config may back
// any number of Clients.
type Config struct {
	// Nameserver is the resolver address in host:port form.
	Nameserver string

	// Strategy selects UDP/TCP usage. Default: UDPWithTCPFallback.
	Strategy ProtocolStrategy

	// BufferSize is the receive buffer capacity in bytes, allocated
	// once per Client. Responses longer than this are rejected, never
	// reallocated for. Default: 4096.
	BufferSize int

	// Timeout bounds each query end to end. Default: 5s.
	Timeout time.Duration

	// Recursion controls the RD bit on queries. The zero value requests
	// recursion, which is what a stub client talking to a recursive
	// resolver wants.
	Recursion Recursion

	// EDNS configures the OPT pseudo-record.
	EDNS EDNS

	// Logger receives structured debug logging. Default: no-op.
	Logger log.Logger

	// Dialer creates sockets. Default: OS sockets.
	Dialer transport.Dialer

	// Clock supplies time for deadline arithmetic. Default: system
	// clock.
	Clock clock.Clock
}

// withDefaults returns a copy with unset fields filled in.
func (c Config) withDefaults() Config {
	if c.BufferSize == 0 {
		c.BufferSize = DefaultBufferSize
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.EDNS.Enabled && c.EDNS.UDPPayloadSize == 0 {
		c.EDNS.UDPPayloadSize = DefaultUDPPayloadSize
	}
	if c.Logger == nil {
		c.Logger = log.NewNoopLogger()
	}
	if c.Dialer == nil {
		c.Dialer = &transport.NetDialer{}
	}
	if c.Clock == nil {
		c.Clock = clock.RealClock{}
	}
	return c
}

// Validate checks the configuration for structural errors.
func (c Config) Validate() error {
	if c.Nameserver == "" {
		return fmt.Errorf("%w: nameserver must be set", domain.ErrBadParam)
	}
	if _, _, err := net.SplitHostPort(c.Nameserver); err != nil {
		return fmt.Errorf("%w: nameserver %q is not host:port: %v", domain.ErrBadParam, c.Nameserver, err)
	}
	if c.Strategy < UDPWithTCPFallback || c.Strategy > UDPOnly {
		return fmt.Errorf("%w: unknown protocol strategy %d", domain.ErrBadParam, c.Strategy)
	}
	if c.BufferSize < domain.HeaderLength {
		return fmt.Errorf("%w: buffer size %d cannot hold a message header", domain.ErrBadParam, c.BufferSize)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", domain.ErrBadParam)
	}
	if c.EDNS.Enabled {
		if c.EDNS.UDPPayloadSize < 512 {
			return fmt.Errorf("%w: EDNS payload size %d below the 512-byte floor", domain.ErrBadParam, c.EDNS.UDPPayloadSize)
		}
		if int(c.EDNS.UDPPayloadSize) > c.BufferSize {
			return fmt.Errorf("%w: EDNS payload size %d exceeds buffer size %d", domain.ErrBadParam, c.EDNS.UDPPayloadSize, c.BufferSize)
		}
	}
	return nil
}
