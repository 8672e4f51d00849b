package client

import (
	"github.com/haukened/rr-stub/domain"
	"github.com/haukened/rr-stub/rrdata"
	"github.com/haukened/rr-stub/wire"
)

// BuildRRSet drains the answer section of it and materializes the RRSet
// matching (qname, qtype, qclass). Owner names are compared through
// NameRef equality, so compression on either side does not matter.
// Records keep wire order; mixed TTLs normalize to the minimum.
//
// When the answer section holds a CNAME for qname instead of the
// requested type, the CNAME records are returned as found; following the
// chain is the caller's concern. An empty set with a nil error means the
// section held nothing for the question.
func BuildRRSet(it *wire.MessageIterator, qname string, qtype domain.RRType, qclass domain.RRClass) (domain.RRSet, error) {
	var matches []wire.RecordHeader
	var aliases []wire.RecordHeader

	for {
		rh, ok, err := it.NextRecord(wire.SectionAnswer)
		if err != nil {
			return domain.RRSet{}, err
		}
		if !ok {
			break
		}
		if rh.Class != qclass {
			continue
		}
		if rh.Type != qtype && rh.Type != domain.RRTypeCNAME {
			continue
		}
		same, err := rh.Name.EqualName(qname)
		if err != nil {
			return domain.RRSet{}, err
		}
		if !same {
			continue
		}
		if rh.Type == qtype {
			matches = append(matches, rh)
		} else {
			aliases = append(aliases, rh)
		}
	}

	if len(matches) == 0 {
		matches = aliases
	}
	if len(matches) == 0 {
		return domain.RRSet{}, nil
	}

	records := make([]domain.ResourceRecord, 0, len(matches))
	for _, rh := range matches {
		rr, err := rrdata.Materialize(rh)
		if err != nil {
			return domain.RRSet{}, err
		}
		records = append(records, rr)
	}
	return domain.NewRRSet(records)
}
