package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/haukened/rr-stub/domain"
)

// QuestionRef is a non-owning view of a question section entry.
type QuestionRef struct {
	Name  NameRef
	Type  domain.RRType
	Class domain.RRClass
}

// Unpack materializes the question into owned form.
func (q QuestionRef) Unpack() (domain.Question, error) {
	name, err := q.Name.Unpack()
	if err != nil {
		return domain.Question{}, err
	}
	return domain.Question{Name: name, Type: q.Type, Class: q.Class}, nil
}

// EncodeQuestion writes a question entry (name, qtype, qclass) into buf
// at off and returns the number of bytes written. table may be nil to
// disable compression.
func EncodeQuestion(buf []byte, off int, q domain.Question, table CompressionMap) (int, error) {
	n, err := EncodeName(buf, off, q.Name, table)
	if err != nil {
		return 0, err
	}
	if off+n+4 > len(buf) {
		return 0, fmt.Errorf("%w: buffer too small for question", domain.ErrBadParam)
	}
	binary.BigEndian.PutUint16(buf[off+n:], uint16(q.Type))
	binary.BigEndian.PutUint16(buf[off+n+2:], uint16(q.Class))
	return n + 4, nil
}

// decodeQuestion reads a question entry at off, returning a view and the
// offset of the first byte after it.
func decodeQuestion(msg []byte, off int) (QuestionRef, int, error) {
	name := NewNameRef(msg, off)
	next, err := SkipName(msg, off)
	if err != nil {
		return QuestionRef{}, 0, err
	}
	if next+4 > len(msg) {
		return QuestionRef{}, 0, fmt.Errorf("%w: truncated question", domain.ErrMalformedMessage)
	}
	q := QuestionRef{
		Name:  name,
		Type:  domain.RRType(binary.BigEndian.Uint16(msg[next:])),
		Class: domain.RRClass(binary.BigEndian.Uint16(msg[next+2:])),
	}
	return q, next + 4, nil
}
