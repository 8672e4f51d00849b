package domain

import (
	"errors"
	"testing"
)

func TestNewResourceRecord(t *testing.T) {
	rr, err := NewResourceRecord("example.com.", RRTypeA, RRClassIN, 300, []byte{93, 184, 216, 34}, "93.184.216.34")
	if err != nil {
		t.Fatalf("NewResourceRecord() error = %v", err)
	}
	if rr.TTL != 300 {
		t.Errorf("TTL = %d, want 300", rr.TTL)
	}
	if got, want := rr.String(), "example.com. 300 IN A 93.184.216.34"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNewResourceRecord_ClampsTTL(t *testing.T) {
	rr, err := NewResourceRecord("example.com.", RRTypeA, RRClassIN, 1<<31, []byte{1, 2, 3, 4}, "1.2.3.4")
	if err != nil {
		t.Fatalf("NewResourceRecord() error = %v", err)
	}
	if rr.TTL != 0 {
		t.Errorf("TTL = %d, want 0 for out-of-range value", rr.TTL)
	}
}

func TestNewResourceRecord_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		owner  string
		rrtype RRType
	}{
		{"empty name", "", RRTypeA},
		{"zero type", "example.com.", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewResourceRecord(tt.owner, tt.rrtype, RRClassIN, 60, nil, "")
			if !errors.Is(err, ErrBadParam) {
				t.Errorf("NewResourceRecord() error = %v, want %v", err, ErrBadParam)
			}
		})
	}
}

func TestResourceRecord_String_UnknownType(t *testing.T) {
	rr := ResourceRecord{Name: "example.com.", Type: RRType(999), Class: RRClassIN, TTL: 60, Text: `\# 0`}
	if got, want := rr.String(), `example.com. 60 IN TYPE999 \# 0`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
