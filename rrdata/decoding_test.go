package rrdata

import (
	"errors"
	"testing"

	"github.com/haukened/rr-stub/domain"
	"github.com/haukened/rr-stub/wire"
)

// rdataMsg frames data so Decode can treat it as RDATA at offset 0.
func rdataMsg(data ...byte) []byte { return data }

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		rrType domain.RRType
		msg    []byte
		want   string
	}{
		{
			name:   "A",
			rrType: domain.RRTypeA,
			msg:    rdataMsg(192, 0, 2, 1),
			want:   "192.0.2.1",
		},
		{
			name:   "AAAA",
			rrType: domain.RRTypeAAAA,
			msg:    rdataMsg(0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1),
			want:   "2001:db8::1",
		},
		{
			name:   "NS",
			rrType: domain.RRTypeNS,
			msg:    rdataMsg(3, 'n', 's', '1', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0),
			want:   "ns1.example.com.",
		},
		{
			name:   "CNAME",
			rrType: domain.RRTypeCNAME,
			msg:    rdataMsg(3, 'w', 'w', 'w', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0),
			want:   "www.example.com.",
		},
		{
			name:   "PTR",
			rrType: domain.RRTypePTR,
			msg:    rdataMsg(4, 'h', 'o', 's', 't', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0),
			want:   "host.example.com.",
		},
		{
			name:   "MX",
			rrType: domain.RRTypeMX,
			msg:    rdataMsg(0, 10, 4, 'm', 'a', 'i', 'l', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0),
			want:   "10 mail.example.com.",
		},
		{
			name:   "TXT single string",
			rrType: domain.RRTypeTXT,
			msg:    rdataMsg(5, 'h', 'e', 'l', 'l', 'o'),
			want:   `"hello"`,
		},
		{
			name:   "TXT multiple strings",
			rrType: domain.RRTypeTXT,
			msg:    rdataMsg(2, 'v', '1', 3, 'f', 'o', 'o'),
			want:   `"v1" "foo"`,
		},
		{
			name:   "TXT empty string",
			rrType: domain.RRTypeTXT,
			msg:    rdataMsg(0),
			want:   `""`,
		},
		{
			name:   "SRV",
			rrType: domain.RRTypeSRV,
			msg: rdataMsg(0, 1, 0, 5, 0x14, 0x95, // 1 5 5269
				4, 'x', 'm', 'p', 'p', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0),
			want: "1 5 5269 xmpp.example.com.",
		},
		{
			name:   "unknown type renders generic form",
			rrType: domain.RRType(99),
			msg:    rdataMsg(0xAA, 0xBB, 0xCC),
			want:   `\# 3 AABBCC`,
		},
		{
			name:   "unknown type with empty RDATA",
			rrType: domain.RRType(99),
			msg:    rdataMsg(),
			want:   `\# 0`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.rrType, tt.msg, 0, len(tt.msg))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecode_SOA(t *testing.T) {
	var msg []byte
	msg = append(msg, 3, 'n', 's', '1', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0)
	msg = append(msg, 10, 'h', 'o', 's', 't', 'm', 'a', 's', 't', 'e', 'r', 0xC0, 0x04) // hostmaster.example.com via pointer
	msg = append(msg,
		0x78, 0x49, 0xD4, 0x0D, // serial 2018104333
		0, 0, 0x1C, 0x20, // refresh 7200
		0, 0, 0x0E, 0x10, // retry 3600
		0, 0x12, 0x75, 0x00, // expire 1209600
		0, 0, 0x0E, 0x10) // minimum 3600

	// SOA RDATA is the whole of msg here; embedded pointers still work
	// because decoders read against the full message
	got, err := Decode(domain.RRTypeSOA, msg, 0, len(msg))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := "ns1.example.com. hostmaster.example.com. 2018104333 7200 3600 1209600 3600"
	if got != want {
		t.Errorf("Decode() = %q, want %q", got, want)
	}
}

func TestDecode_CompressedEmbeddedName(t *testing.T) {
	// owner name at offset 0, MX RDATA at offset 13 with a compression
	// pointer back into it
	msg := []byte{
		7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0,
		0, 10, 0xC0, 0x00,
	}
	got, err := Decode(domain.RRTypeMX, msg, 13, 4)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if want := "10 example.com."; got != want {
		t.Errorf("Decode() = %q, want %q", got, want)
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		rrType  domain.RRType
		msg     []byte
		off     int
		rdlen   int
		wantErr error
	}{
		{
			name:    "RDATA past end of message",
			rrType:  domain.RRTypeA,
			msg:     rdataMsg(192, 0, 2),
			rdlen:   4,
			wantErr: domain.ErrMalformedMessage,
		},
		{
			name:    "A wrong length",
			rrType:  domain.RRTypeA,
			msg:     rdataMsg(192, 0, 2, 1, 9),
			rdlen:   5,
			wantErr: domain.ErrMalformedMessage,
		},
		{
			name:    "AAAA wrong length",
			rrType:  domain.RRTypeAAAA,
			msg:     rdataMsg(1, 2, 3, 4),
			rdlen:   4,
			wantErr: domain.ErrMalformedMessage,
		},
		{
			name:    "MX too short",
			rrType:  domain.RRTypeMX,
			msg:     rdataMsg(0, 10),
			rdlen:   2,
			wantErr: domain.ErrMalformedMessage,
		},
		{
			name:    "TXT empty RDATA",
			rrType:  domain.RRTypeTXT,
			msg:     rdataMsg(),
			rdlen:   0,
			wantErr: domain.ErrMalformedMessage,
		},
		{
			name:    "TXT string past RDLENGTH",
			rrType:  domain.RRTypeTXT,
			msg:     rdataMsg(9, 'x', 'y'),
			rdlen:   3,
			wantErr: domain.ErrMalformedMessage,
		},
		{
			name:    "PTR trailing bytes after name",
			rrType:  domain.RRTypePTR,
			msg:     rdataMsg(2, 'h', 'i', 0, 0xFF),
			rdlen:   5,
			wantErr: domain.ErrMalformedMessage,
		},
		{
			name:    "SOA integer block wrong size",
			rrType:  domain.RRTypeSOA,
			msg:     rdataMsg(2, 'n', 's', 0, 2, 'h', 'm', 0, 0, 0, 0, 1),
			rdlen:   12,
			wantErr: domain.ErrMalformedMessage,
		},
		{
			name:    "NS name malformed",
			rrType:  domain.RRTypeNS,
			msg:     rdataMsg(9, 'x'),
			rdlen:   2,
			wantErr: domain.ErrMalformedName,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.rrType, tt.msg, tt.off, tt.rdlen)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMaterialize(t *testing.T) {
	// a complete message whose single answer owner is compressed
	// against the question name
	var buf [128]byte
	n, err := wire.EncodeHeader(buf[:], 0, domain.Header{ID: 1, QDCount: 1, ANCount: 1})
	if err != nil {
		t.Fatal(err)
	}
	table := wire.CompressionMap{}
	q := domain.Question{Name: "example.com", Type: domain.RRTypeA, Class: domain.RRClassIN}
	qn, err := wire.EncodeQuestion(buf[:], n, q, table)
	if err != nil {
		t.Fatal(err)
	}
	off := n + qn
	an, err := wire.EncodeName(buf[:], off, "example.com", table)
	if err != nil {
		t.Fatal(err)
	}
	if an != 2 {
		t.Fatalf("answer owner name not compressed, got %d bytes", an)
	}
	off += an
	for _, b := range []byte{0, 1, 0, 1, 0, 0, 1, 44, 0, 4, 192, 0, 2, 1} {
		buf[off] = b
		off++
	}
	msg := buf[:off]

	it, err := wire.NewMessageIterator(msg)
	if err != nil {
		t.Fatal(err)
	}
	rh, ok, err := it.NextRecord(wire.SectionAnswer)
	if err != nil || !ok {
		t.Fatalf("NextRecord() = %v, %v", ok, err)
	}

	rr, err := Materialize(rh)
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}
	if rr.Name != "example.com." {
		t.Errorf("Name = %q, want %q", rr.Name, "example.com.")
	}
	if rr.Type != domain.RRTypeA || rr.Class != domain.RRClassIN {
		t.Errorf("Type/Class = %v/%v", rr.Type, rr.Class)
	}
	if rr.TTL != 300 {
		t.Errorf("TTL = %d, want 300", rr.TTL)
	}
	if rr.Text != "192.0.2.1" {
		t.Errorf("Text = %q, want %q", rr.Text, "192.0.2.1")
	}

	// the materialized record must not alias the message buffer
	msg[len(msg)-1] = 99
	if rr.Data[3] != 1 {
		t.Errorf("Data aliases the message buffer: %v", rr.Data)
	}
}
