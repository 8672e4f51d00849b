package domain

import "fmt"

// Question is the question section entry of a DNS message.
type Question struct {
	Name  string
	Type  RRType
	Class RRClass
}

// NewQuestion constructs a Question and validates its fields.
func NewQuestion(name string, rrtype RRType, class RRClass) (Question, error) {
	q := Question{
		Name:  name,
		Type:  rrtype,
		Class: class,
	}
	if err := q.Validate(); err != nil {
		return Question{}, err
	}
	return q, nil
}

// Validate checks whether the Question fields are structurally valid.
// Wire-level limits on the name itself are enforced by the codec.
func (q Question) Validate() error {
	if q.Name == "" {
		return fmt.Errorf("%w: question name must not be empty", ErrBadParam)
	}
	if q.Type == 0 {
		return fmt.Errorf("%w: question type must not be zero", ErrBadParam)
	}
	if q.Class == 0 {
		return fmt.Errorf("%w: question class must not be zero", ErrBadParam)
	}
	return nil
}

// String renders the question in zone-file style, e.g.
// "example.com. IN A".
func (q Question) String() string {
	return fmt.Sprintf("%s %s %s", q.Name, q.Class, q.Type)
}
