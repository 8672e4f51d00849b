package wire

import (
	"fmt"

	"github.com/haukened/rr-stub/domain"
)

// Section identifies one of the three record sections of a message.
type Section int

const (
	SectionAnswer Section = iota
	SectionAuthority
	SectionAdditional
)

// String returns the section name as used in RFC 1035.
func (s Section) String() string {
	switch s {
	case SectionAnswer:
		return "answer"
	case SectionAuthority:
		return "authority"
	case SectionAdditional:
		return "additional"
	default:
		return fmt.Sprintf("section(%d)", int(s))
	}
}

// MessageIterator is a forward-only, lazy cursor over a received message
// buffer. It yields questions and record envelopes section by section
// without copying, and validates the header's section counts against
// what the buffer actually holds at the point a mismatch is detected.
//
// An iterator is bound to one message and is not restartable; it never
// revisits bytes.
type MessageIterator struct {
	msg       []byte
	off       int
	header    domain.Header
	questions uint16
	remaining [3]uint16
	section   Section
}

// NewMessageIterator decodes the header of msg and positions the cursor
// at the question section.
func NewMessageIterator(msg []byte) (*MessageIterator, error) {
	h, err := DecodeHeader(msg)
	if err != nil {
		return nil, err
	}
	return &MessageIterator{
		msg:       msg,
		off:       domain.HeaderLength,
		header:    h,
		questions: h.QDCount,
		remaining: [3]uint16{h.ANCount, h.NSCount, h.ARCount},
	}, nil
}

// Header returns the decoded message header.
func (it *MessageIterator) Header() domain.Header { return it.header }

// NextQuestion yields the next question entry, or ok=false at the end of
// the question section. A buffer that ends before QDCOUNT questions have
// been read is a count mismatch.
func (it *MessageIterator) NextQuestion() (QuestionRef, bool, error) {
	if it.questions == 0 {
		return QuestionRef{}, false, nil
	}
	q, next, err := decodeQuestion(it.msg, it.off)
	if err != nil {
		return QuestionRef{}, false, fmt.Errorf("question %d of %d: %w",
			it.header.QDCount-it.questions+1, it.header.QDCount, err)
	}
	it.questions--
	it.off = next
	return q, true, nil
}

// NextRecord yields the next record envelope of section s, or ok=false
// at the end of that section. Sections must be visited in message order;
// any unread entries of earlier sections (including questions) are
// skipped and validated on the way. A buffer that ends before the
// advertised count has been read is a count mismatch.
func (it *MessageIterator) NextRecord(s Section) (RecordHeader, bool, error) {
	if s < SectionAnswer || s > SectionAdditional {
		return RecordHeader{}, false, fmt.Errorf("%w: unknown section %d", domain.ErrBadParam, s)
	}
	if s < it.section {
		return RecordHeader{}, false, fmt.Errorf("%w: %s section already consumed", domain.ErrBadParam, s)
	}
	if err := it.skipTo(s); err != nil {
		return RecordHeader{}, false, err
	}
	if it.remaining[s] == 0 {
		return RecordHeader{}, false, nil
	}
	rh, next, err := decodeRecordHeader(it.msg, it.off)
	if err != nil {
		return RecordHeader{}, false, fmt.Errorf("%s record %d of %d: %w",
			s, it.sectionCount(s)-it.remaining[s]+1, it.sectionCount(s), err)
	}
	it.remaining[s]--
	it.off = next
	return rh, true, nil
}

// Finish verifies that every advertised entry has been consumed and that
// no bytes trail the last section. Callers drain all sections first.
func (it *MessageIterator) Finish() error {
	for s := it.section; s <= SectionAdditional; s++ {
		for {
			_, ok, err := it.NextRecord(s)
			if err != nil {
				return err
			}
			if !ok {
				break
			}
		}
	}
	if it.off != len(it.msg) {
		return fmt.Errorf("%w: %d trailing bytes after last section", domain.ErrMalformedMessage, len(it.msg)-it.off)
	}
	return nil
}

// skipTo consumes any unread questions and the records of sections
// before s, leaving the cursor at the start of s.
func (it *MessageIterator) skipTo(s Section) error {
	for it.questions > 0 {
		if _, _, err := it.NextQuestion(); err != nil {
			return err
		}
	}
	for it.section < s {
		cur := it.section
		if it.remaining[cur] > 0 {
			rh, next, err := decodeRecordHeader(it.msg, it.off)
			if err != nil {
				return fmt.Errorf("%s record %d of %d: %w",
					cur, it.sectionCount(cur)-it.remaining[cur]+1, it.sectionCount(cur), err)
			}
			_ = rh
			it.remaining[cur]--
			it.off = next
			continue
		}
		it.section++
	}
	return nil
}

func (it *MessageIterator) sectionCount(s Section) uint16 {
	switch s {
	case SectionAnswer:
		return it.header.ANCount
	case SectionAuthority:
		return it.header.NSCount
	default:
		return it.header.ARCount
	}
}
