package domain

import "testing"

func TestRRClass_String(t *testing.T) {
	cases := []struct {
		c    RRClass
		want string
	}{
		{1, "IN"}, {3, "CH"}, {4, "HS"}, {254, "NONE"}, {255, "ANY"},
		{0, "CLASS0"}, {2, "CLASS2"}, {100, "CLASS100"},
	}
	for _, tc := range cases {
		if got := tc.c.String(); got != tc.want {
			t.Errorf("String(%d) = %v, want %v", tc.c, got, tc.want)
		}
	}
}

func TestRRClassFromString(t *testing.T) {
	cases := []struct {
		input  string
		want   RRClass
		wantOK bool
	}{
		{"IN", 1, true}, {"CH", 3, true}, {"HS", 4, true},
		{"NONE", 254, true}, {"ANY", 255, true},
		{"in", 0, false}, {"", 0, false},
	}
	for _, tc := range cases {
		got, ok := RRClassFromString(tc.input)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("RRClassFromString(%q) = (%v, %v), want (%v, %v)", tc.input, got, ok, tc.want, tc.wantOK)
		}
	}
}
