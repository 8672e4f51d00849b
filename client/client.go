// Package client implements a DNS stub client: it builds queries, drives
// them over UDP or TCP with truncation fallback, and parses responses
// into RRSets. A Client owns one fixed-size receive buffer reused across
// queries and must not run two queries concurrently; create one Client
// per goroutine instead, they share nothing.
package client

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"golang.org/x/net/idna"

	"github.com/haukened/rr-stub/domain"
	"github.com/haukened/rr-stub/transport"
	"github.com/haukened/rr-stub/wire"
)

// queryBufferSize holds the framed query: 2-byte TCP prefix, header,
// a maximal question and the OPT record.
const queryBufferSize = 2 + domain.HeaderLength + wire.MaxNameLength + 4 + 11

// legacyUDPLimit is the pre-EDNS0 ceiling on UDP message size.
const legacyUDPLimit = 512

// Client issues sequential DNS queries against one nameserver.
type Client struct {
	cfg  Config
	buf  []byte // receive buffer, allocated once, reused per query
	qbuf []byte // framed query scratch buffer
}

// New validates cfg, applies defaults, and allocates the Client's
// buffers.
func New(cfg Config) (*Client, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		cfg:  cfg,
		buf:  make([]byte, cfg.BufferSize),
		qbuf: make([]byte, queryBufferSize),
	}, nil
}

// Config returns the effective configuration after defaulting.
func (c *Client) Config() Config { return c.cfg }

// Query resolves one (name, type, class) tuple and returns the matching
// RRSet. The name is IDNA-mapped to its ASCII form before encoding.
// Errors leave the Client reusable for the next query.
func (c *Client) Query(ctx context.Context, name string, qtype domain.RRType, qclass domain.RRClass) (domain.RRSet, error) {
	qname, err := asciiName(name)
	if err != nil {
		return domain.RRSet{}, fmt.Errorf("%w: name %q: %v", domain.ErrBadParam, name, err)
	}

	question, err := domain.NewQuestion(qname, qtype, qclass)
	if err != nil {
		return domain.RRSet{}, err
	}

	var opt *wire.OPT
	if c.cfg.EDNS.Enabled {
		opt = &wire.OPT{
			UDPPayloadSize: c.cfg.EDNS.UDPPayloadSize,
			Version:        c.cfg.EDNS.Version,
		}
	}

	id := uint16(rand.Uint32())
	n, err := wire.WriteQuery(c.qbuf, id, question, c.cfg.Recursion == RecursionDesired, opt)
	if err != nil {
		return domain.RRSet{}, err
	}

	deadline := c.deadline(ctx)
	c.cfg.Logger.Debug(map[string]any{
		"name":     qname,
		"type":     qtype.String(),
		"class":    qclass.String(),
		"id":       id,
		"strategy": c.cfg.Strategy.String(),
	}, "sending query")

	msg, err := c.exchange(ctx, c.qbuf[:n], deadline)
	if err != nil {
		return domain.RRSet{}, err
	}

	return c.parse(msg, id, question)
}

// deadline combines the configured per-query timeout with any earlier
// context deadline.
func (c *Client) deadline(ctx context.Context) time.Time {
	deadline := c.cfg.Clock.Now().Add(c.cfg.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	return deadline
}

// exchange runs the transport state machine: UDP first (unless TCPOnly),
// escalating to TCP when the response is truncated and the strategy
// allows it. It returns a view of the response inside the Client's
// receive buffer, valid until the next query.
func (c *Client) exchange(ctx context.Context, framed []byte, deadline time.Time) ([]byte, error) {
	if c.cfg.Strategy == TCPOnly {
		return c.exchangeTCP(ctx, framed, deadline)
	}

	n, err := c.exchangeUDP(ctx, framed[2:], deadline)
	if err != nil {
		return nil, err
	}

	if c.truncated(n) && c.cfg.Strategy == UDPWithTCPFallback {
		c.cfg.Logger.Debug(map[string]any{"udp_bytes": n}, "truncated response, retrying over tcp")
		return c.exchangeTCP(ctx, framed, deadline)
	}
	return c.buf[:n], nil
}

// truncated reports whether a UDP response of n bytes should be treated
// as truncated: the TC flag is authoritative, and a datagram that filled
// the advertised payload limit may have been clipped in transit.
func (c *Client) truncated(n int) bool {
	limit := legacyUDPLimit
	if c.cfg.EDNS.Enabled {
		limit = int(c.cfg.EDNS.UDPPayloadSize)
	}
	if limit > len(c.buf) {
		limit = len(c.buf)
	}
	if n >= limit {
		return true
	}
	h, err := wire.DecodeHeader(c.buf[:n])
	if err != nil {
		return false // parse will report the real problem
	}
	return h.Flags.Truncated()
}

func (c *Client) exchangeUDP(ctx context.Context, query []byte, deadline time.Time) (int, error) {
	conn, err := c.cfg.Dialer.Dial(ctx, "udp", c.cfg.Nameserver)
	if err != nil {
		return 0, fmt.Errorf("udp dial %s: %w", c.cfg.Nameserver, err)
	}
	defer conn.Close()
	return transport.ExchangeUDP(conn, query, c.buf, deadline)
}

func (c *Client) exchangeTCP(ctx context.Context, framed []byte, deadline time.Time) ([]byte, error) {
	conn, err := c.cfg.Dialer.Dial(ctx, "tcp", c.cfg.Nameserver)
	if err != nil {
		return nil, fmt.Errorf("tcp dial %s: %w", c.cfg.Nameserver, err)
	}
	defer conn.Close()
	n, err := transport.ExchangeTCP(conn, framed, c.buf, deadline)
	if err != nil {
		return nil, err
	}
	return c.buf[:n], nil
}

// parse validates the response envelope and materializes the RRSet.
func (c *Client) parse(msg []byte, id uint16, question domain.Question) (domain.RRSet, error) {
	it, err := wire.NewMessageIterator(msg)
	if err != nil {
		return domain.RRSet{}, err
	}
	h := it.Header()

	if h.ID != id {
		return domain.RRSet{}, fmt.Errorf("%w: sent %d, got %d", domain.ErrIDMismatch, id, h.ID)
	}
	if !h.Flags.IsResponse() {
		return domain.RRSet{}, fmt.Errorf("%w: QR flag not set", domain.ErrMalformedMessage)
	}

	rrset, err := BuildRRSet(it, question.Name, question.Type, question.Class)
	if err != nil {
		return domain.RRSet{}, err
	}

	// The additional section may carry an OPT record extending the
	// response code.
	rcode := h.Flags.RCode()
	for {
		rh, ok, err := it.NextRecord(wire.SectionAdditional)
		if err != nil {
			return domain.RRSet{}, err
		}
		if !ok {
			break
		}
		if rh.Type == domain.RRTypeOPT {
			rcode = domain.ExtendedRCode(rcode, wire.OPTFromRecord(rh).ExtRCode)
		}
	}
	if err := it.Finish(); err != nil {
		return domain.RRSet{}, err
	}

	if rcode != domain.RCodeNoError {
		return domain.RRSet{}, fmt.Errorf("%w: %s", domain.ErrResponseCode, rcode)
	}
	if rrset.IsEmpty() {
		return domain.RRSet{}, domain.ErrNoAnswer
	}

	c.cfg.Logger.Debug(map[string]any{
		"name":    rrset.Name,
		"type":    rrset.Type.String(),
		"records": rrset.Len(),
		"ttl":     rrset.TTL,
	}, "query answered")
	return rrset, nil
}

// asciiName maps a possibly internationalized name to its wire-ready
// ASCII form. The root name passes through untouched.
func asciiName(name string) (string, error) {
	if name == "." {
		return name, nil
	}
	trimmed := strings.TrimSuffix(name, ".")
	ascii, err := idna.Lookup.ToASCII(trimmed)
	if err != nil {
		return "", err
	}
	return ascii, nil
}
