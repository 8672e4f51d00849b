package domain

import (
	"fmt"
	"strings"
)

// RRSet is a set of resource records sharing owner name, type and class
// (RFC 2181 §5). Records keep their wire order. TTL is the minimum TTL
// among the constituent records; mixed TTLs on the wire are normalized
// down rather than rejected.
type RRSet struct {
	Name    string
	Type    RRType
	Class   RRClass
	TTL     uint32
	Records []ResourceRecord
}

// NewRRSet builds an RRSet from records that must already share an owner
// name (compared case-insensitively), type and class.
func NewRRSet(records []ResourceRecord) (RRSet, error) {
	if len(records) == 0 {
		return RRSet{}, fmt.Errorf("%w: an RRSet needs at least one record", ErrBadParam)
	}
	first := records[0]
	set := RRSet{
		Name:    first.Name,
		Type:    first.Type,
		Class:   first.Class,
		TTL:     first.TTL,
		Records: records,
	}
	for _, rr := range records[1:] {
		if !strings.EqualFold(rr.Name, first.Name) || rr.Type != first.Type || rr.Class != first.Class {
			return RRSet{}, fmt.Errorf("%w: record %q %s %s does not belong to RRSet %q %s %s",
				ErrBadParam, rr.Name, rr.Class, rr.Type, first.Name, first.Class, first.Type)
		}
		if rr.TTL < set.TTL {
			set.TTL = rr.TTL
		}
	}
	return set, nil
}

// IsEmpty reports whether the set holds no records.
func (s RRSet) IsEmpty() bool { return len(s.Records) == 0 }

// Len returns the number of records in the set.
func (s RRSet) Len() int { return len(s.Records) }
