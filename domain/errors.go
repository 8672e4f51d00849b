package domain

import "errors"

// Error kinds returned by the codec, transport and client layers.
// Callers match them with errors.Is; concrete errors wrap these
// sentinels with context.
var (
	// ErrBadParam indicates an invalid configuration or argument,
	// such as a zero-size receive buffer.
	ErrBadParam = errors.New("bad parameter")

	// ErrMalformedName indicates a domain name that violates wire-format
	// rules: overlong label, overlong name, bad label type, or a
	// compression pointer that loops or points forward.
	ErrMalformedName = errors.New("malformed domain name")

	// ErrMalformedMessage indicates a message that violates its own
	// framing: truncated header, section count mismatch, RDLENGTH
	// pointing past the end of the buffer, and similar.
	ErrMalformedMessage = errors.New("malformed message")

	// ErrIDMismatch indicates a response whose message ID does not match
	// the query that was sent.
	ErrIDMismatch = errors.New("response ID mismatch")

	// ErrTimeout indicates the per-query timeout expired.
	ErrTimeout = errors.New("query timed out")

	// ErrCapacityExceeded indicates a response longer than the client's
	// receive buffer. The buffer is never reallocated to fit.
	ErrCapacityExceeded = errors.New("response exceeds buffer capacity")

	// ErrNoAnswer indicates a well-formed response that contains no
	// records answering the question.
	ErrNoAnswer = errors.New("no records answer the query")

	// ErrResponseCode indicates a response with a non-zero RCODE.
	ErrResponseCode = errors.New("bad response code")
)
