package domain

import "fmt"

// maxSignedTTL is the largest TTL RFC 2181 §8 allows on the wire.
const maxSignedTTL = 1<<31 - 1

// ResourceRecord is one owned, fully decoded resource record.
// Name is always fully expanded; compressed references never survive
// materialization.
type ResourceRecord struct {
	Name  string
	Type  RRType
	Class RRClass
	TTL   uint32
	Data  []byte // raw RDATA, copied out of the message buffer
	Text  string // presentation form of the RDATA
}

// NewResourceRecord constructs a ResourceRecord, clamping the TTL per
// RFC 2181 §8: a value with the most significant bit set is treated as
// zero.
func NewResourceRecord(name string, rrtype RRType, class RRClass, ttl uint32, data []byte, text string) (ResourceRecord, error) {
	rr := ResourceRecord{
		Name:  name,
		Type:  rrtype,
		Class: class,
		TTL:   ClampTTL(ttl),
		Data:  data,
		Text:  text,
	}
	if err := rr.Validate(); err != nil {
		return ResourceRecord{}, err
	}
	return rr, nil
}

// ClampTTL applies the RFC 2181 §8 rule for out-of-range TTL values.
func ClampTTL(ttl uint32) uint32 {
	if ttl > maxSignedTTL {
		return 0
	}
	return ttl
}

// Validate checks whether the ResourceRecord fields are structurally valid.
func (rr ResourceRecord) Validate() error {
	if rr.Name == "" {
		return fmt.Errorf("%w: record name must not be empty", ErrBadParam)
	}
	if rr.Type == 0 {
		return fmt.Errorf("%w: record type must not be zero", ErrBadParam)
	}
	return nil
}

// String renders the record in zone-file style, e.g.
// "example.com. 300 IN A 93.184.216.34".
func (rr ResourceRecord) String() string {
	return fmt.Sprintf("%s %d %s %s %s", rr.Name, rr.TTL, rr.Class, rr.Type, rr.Text)
}
