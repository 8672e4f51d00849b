// Package wire implements the DNS wire format of RFC 1035: domain name
// encoding with label compression, message headers, questions, record
// envelopes, and a lazy iterator over received messages. Decoding works
// against the original message buffer and avoids copying until records
// are materialized.
package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/haukened/rr-stub/domain"
)

const (
	// MaxLabelLength is the longest permitted label (RFC 1035 §2.3.4).
	MaxLabelLength = 63

	// MaxNameLength is the longest permitted encoded name, including
	// length octets and the terminating zero (RFC 1035 §2.3.4).
	MaxNameLength = 255

	// MaxPointers bounds compression pointer indirection while decoding
	// a single name.
	MaxPointers = 32

	// maxPointerTarget is the largest offset a 14-bit compression
	// pointer can address.
	maxPointerTarget = 0x3FFF
)

// CompressionMap remembers the offsets of name suffixes already written
// into a message, keyed by their presentation form. EncodeName consults
// it to emit compression pointers and records new suffixes as it writes.
type CompressionMap map[string]int

// EncodeName writes name into buf at off as length-prefixed labels
// terminated by a zero octet. When table is non-nil, suffixes found in it
// are replaced by a 2-byte compression pointer, and newly written
// suffixes are recorded for later reuse. It returns the number of bytes
// written.
//
// The root name ("." or "") encodes as a single zero octet. Label octets
// are accepted permissively: letters, digits, hyphen and underscore.
func EncodeName(buf []byte, off int, name string, table CompressionMap) (int, error) {
	name = strings.TrimSuffix(name, ".")

	// The uncompressed encoding must fit the 255-byte limit regardless
	// of how many bytes compression saves.
	if wireLength(name) > MaxNameLength {
		return 0, fmt.Errorf("%w: name %q exceeds %d bytes", domain.ErrMalformedName, name, MaxNameLength)
	}

	start := off
	rest := name
	for rest != "" {
		if ptr, ok := table[rest]; ok {
			if off+2 > len(buf) {
				return 0, fmt.Errorf("%w: buffer too small for name", domain.ErrBadParam)
			}
			binary.BigEndian.PutUint16(buf[off:], 0xC000|uint16(ptr))
			return off + 2 - start, nil
		}
		if table != nil && off <= maxPointerTarget {
			table[rest] = off
		}

		label := rest
		if i := strings.IndexByte(rest, '.'); i >= 0 {
			label, rest = rest[:i], rest[i+1:]
		} else {
			rest = ""
		}
		if err := checkLabel(label); err != nil {
			return 0, err
		}
		if off+1+len(label) > len(buf) {
			return 0, fmt.Errorf("%w: buffer too small for name", domain.ErrBadParam)
		}
		buf[off] = byte(len(label))
		copy(buf[off+1:], label)
		off += 1 + len(label)
	}

	if off >= len(buf) {
		return 0, fmt.Errorf("%w: buffer too small for name", domain.ErrBadParam)
	}
	buf[off] = 0
	return off + 1 - start, nil
}

// DecodeName reads a domain name from msg starting at off, following
// compression pointers, and returns the fully expanded name in
// presentation form (with trailing dot; the root name is ".") together
// with the offset of the first byte after the name in the original
// stream.
func DecodeName(msg []byte, off int) (string, int, error) {
	var sb strings.Builder
	end := -1
	pointers := 0
	expanded := 0
	pos := off

	for {
		if pos >= len(msg) {
			return "", 0, fmt.Errorf("%w: name runs past end of message", domain.ErrMalformedName)
		}
		b := msg[pos]
		switch {
		case b == 0:
			if end < 0 {
				end = pos + 1
			}
			if sb.Len() == 0 {
				return ".", end, nil
			}
			return sb.String(), end, nil

		case b&0xC0 == 0xC0:
			if pos+2 > len(msg) {
				return "", 0, fmt.Errorf("%w: truncated compression pointer", domain.ErrMalformedName)
			}
			target := int(binary.BigEndian.Uint16(msg[pos:]) & maxPointerTarget)
			if end < 0 {
				end = pos + 2
			}
			if target >= pos {
				return "", 0, fmt.Errorf("%w: compression pointer to offset %d at or beyond position %d",
					domain.ErrMalformedName, target, pos)
			}
			pointers++
			if pointers > MaxPointers {
				return "", 0, fmt.Errorf("%w: more than %d compression pointers", domain.ErrMalformedName, MaxPointers)
			}
			pos = target

		case b&0xC0 != 0:
			return "", 0, fmt.Errorf("%w: unsupported label type 0x%02x", domain.ErrMalformedName, b&0xC0)

		default:
			length := int(b)
			if pos+1+length > len(msg) {
				return "", 0, fmt.Errorf("%w: label runs past end of message", domain.ErrMalformedName)
			}
			expanded += length + 1
			if expanded+1 > MaxNameLength {
				return "", 0, fmt.Errorf("%w: expanded name exceeds %d bytes", domain.ErrMalformedName, MaxNameLength)
			}
			sb.Write(msg[pos+1 : pos+1+length])
			sb.WriteByte('.')
			pos += 1 + length
		}
	}
}

// SkipName advances past a name without expanding it and returns the
// offset of the first byte after it. Pointers terminate the name in the
// original stream; their targets are not followed.
func SkipName(msg []byte, off int) (int, error) {
	pos := off
	for {
		if pos >= len(msg) {
			return 0, fmt.Errorf("%w: name runs past end of message", domain.ErrMalformedName)
		}
		b := msg[pos]
		switch {
		case b == 0:
			return pos + 1, nil
		case b&0xC0 == 0xC0:
			if pos+2 > len(msg) {
				return 0, fmt.Errorf("%w: truncated compression pointer", domain.ErrMalformedName)
			}
			return pos + 2, nil
		case b&0xC0 != 0:
			return 0, fmt.Errorf("%w: unsupported label type 0x%02x", domain.ErrMalformedName, b&0xC0)
		default:
			if pos+1+int(b) > len(msg) {
				return 0, fmt.Errorf("%w: label runs past end of message", domain.ErrMalformedName)
			}
			pos += 1 + int(b)
		}
	}
}

// NameRef is a non-owning view of a possibly compressed name inside a
// message buffer. It supports equality comparison without expansion.
type NameRef struct {
	msg []byte
	off int
}

// NewNameRef creates a NameRef for the name starting at off in msg.
func NewNameRef(msg []byte, off int) NameRef {
	return NameRef{msg: msg, off: off}
}

// Unpack expands the referenced name into its owned presentation form.
func (n NameRef) Unpack() (string, error) {
	name, _, err := DecodeName(n.msg, n.off)
	return name, err
}

// Equal reports whether two NameRefs expand to the same label sequence,
// compared ASCII case-insensitively, independent of how either is
// compressed.
func (n NameRef) Equal(other NameRef) (bool, error) {
	a := labelIter{msg: n.msg, pos: n.off}
	b := labelIter{msg: other.msg, pos: other.off}
	for {
		la, err := a.next()
		if err != nil {
			return false, err
		}
		lb, err := b.next()
		if err != nil {
			return false, err
		}
		if la == nil || lb == nil {
			return la == nil && lb == nil, nil
		}
		if !bytes.EqualFold(la, lb) {
			return false, nil
		}
	}
}

// EqualName reports whether the referenced name expands to name,
// compared ASCII case-insensitively. A trailing dot on name is ignored.
func (n NameRef) EqualName(name string) (bool, error) {
	name = strings.TrimSuffix(name, ".")
	it := labelIter{msg: n.msg, pos: n.off}
	rest := name
	for {
		label, err := it.next()
		if err != nil {
			return false, err
		}
		if label == nil {
			return rest == "", nil
		}
		if rest == "" {
			return false, nil
		}
		want := rest
		if i := strings.IndexByte(rest, '.'); i >= 0 {
			want, rest = rest[:i], rest[i+1:]
		} else {
			rest = ""
		}
		if !strings.EqualFold(string(label), want) {
			return false, nil
		}
	}
}

// labelIter walks a wire-format name label by label, following
// compression pointers under the same constraints as DecodeName.
type labelIter struct {
	msg      []byte
	pos      int
	pointers int
}

// next returns the next label as a view into the message, or nil at the
// terminating zero octet.
func (it *labelIter) next() ([]byte, error) {
	for {
		if it.pos >= len(it.msg) {
			return nil, fmt.Errorf("%w: name runs past end of message", domain.ErrMalformedName)
		}
		b := it.msg[it.pos]
		switch {
		case b == 0:
			return nil, nil
		case b&0xC0 == 0xC0:
			if it.pos+2 > len(it.msg) {
				return nil, fmt.Errorf("%w: truncated compression pointer", domain.ErrMalformedName)
			}
			target := int(binary.BigEndian.Uint16(it.msg[it.pos:]) & maxPointerTarget)
			if target >= it.pos {
				return nil, fmt.Errorf("%w: compression pointer to offset %d at or beyond position %d",
					domain.ErrMalformedName, target, it.pos)
			}
			it.pointers++
			if it.pointers > MaxPointers {
				return nil, fmt.Errorf("%w: more than %d compression pointers", domain.ErrMalformedName, MaxPointers)
			}
			it.pos = target
		case b&0xC0 != 0:
			return nil, fmt.Errorf("%w: unsupported label type 0x%02x", domain.ErrMalformedName, b&0xC0)
		default:
			length := int(b)
			if it.pos+1+length > len(it.msg) {
				return nil, fmt.Errorf("%w: label runs past end of message", domain.ErrMalformedName)
			}
			label := it.msg[it.pos+1 : it.pos+1+length]
			it.pos += 1 + length
			return label, nil
		}
	}
}

// wireLength returns the encoded length of name without compression:
// one length octet per label plus the terminating zero.
func wireLength(name string) int {
	if name == "" {
		return 1
	}
	return len(name) + 2
}

// checkLabel enforces structural label rules and the permissive
// wire-level character set. Hostname validation is a caller concern.
func checkLabel(label string) error {
	if len(label) == 0 {
		return fmt.Errorf("%w: empty label", domain.ErrMalformedName)
	}
	if len(label) > MaxLabelLength {
		return fmt.Errorf("%w: label %q exceeds %d bytes", domain.ErrMalformedName, label, MaxLabelLength)
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return fmt.Errorf("%w: label %q contains invalid octet 0x%02x", domain.ErrMalformedName, label, c)
		}
	}
	return nil
}
