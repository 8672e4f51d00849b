package main

import (
	"testing"

	"github.com/haukened/rr-stub/domain"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantName  string
		wantType  domain.RRType
		wantClass domain.RRClass
		wantErr   bool
	}{
		{
			name:      "name only defaults to IN A",
			args:      []string{"example.com"},
			wantName:  "example.com",
			wantType:  domain.RRTypeA,
			wantClass: domain.RRClassIN,
		},
		{
			name:      "explicit type",
			args:      []string{"example.com", "AAAA"},
			wantName:  "example.com",
			wantType:  domain.RRTypeAAAA,
			wantClass: domain.RRClassIN,
		},
		{
			name:      "explicit type and class",
			args:      []string{"example.com", "TXT", "CH"},
			wantName:  "example.com",
			wantType:  domain.RRTypeTXT,
			wantClass: domain.RRClassCH,
		},
		{
			name:    "no arguments",
			args:    []string{},
			wantErr: true,
		},
		{
			name:    "too many arguments",
			args:    []string{"a", "b", "c", "d"},
			wantErr: true,
		},
		{
			name:    "unknown type",
			args:    []string{"example.com", "BOGUS"},
			wantErr: true,
		},
		{
			name:    "unknown class",
			args:    []string{"example.com", "A", "XX"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, qtype, qclass, err := parseArgs(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseArgs() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseArgs() error = %v", err)
			}
			if name != tt.wantName || qtype != tt.wantType || qclass != tt.wantClass {
				t.Errorf("parseArgs() = %q %v %v, want %q %v %v",
					name, qtype, qclass, tt.wantName, tt.wantType, tt.wantClass)
			}
		})
	}
}

func TestRun_ConfigError(t *testing.T) {
	t.Setenv("RRQ_PROTOCOL", "quic")
	if code := run([]string{"example.com"}); code != 2 {
		t.Errorf("run() = %d, want 2", code)
	}
}

func TestRun_UsageError(t *testing.T) {
	if code := run(nil); code != 2 {
		t.Errorf("run() = %d, want 2", code)
	}
}

func TestRun_InvalidTimeout(t *testing.T) {
	t.Setenv("RRQ_TIMEOUT", "soon")
	if code := run([]string{"example.com"}); code != 2 {
		t.Errorf("run() = %d, want 2", code)
	}
}
