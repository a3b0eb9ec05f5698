package domain

import "testing"

func TestParseBookStatus(t *testing.T) {
	cases := []struct {
		in   string
		want BookStatus
		ok   bool
	}{
		{"available", BookStatusAvailable, true},
		{"borrowed", BookStatusBorrowed, true},
		{"AVAILABLE", BookStatusAvailable, true},
		{"  Borrowed ", BookStatusBorrowed, true},
		{"", "", false},
		{"lost", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseBookStatus(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseBookStatus(%q): got (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestBookFilterIsZero(t *testing.T) {
	if !(BookFilter{}).IsZero() {
		t.Error("empty filter should be zero")
	}
	if !(BookFilter{Search: "   "}).IsZero() {
		t.Error("whitespace-only search should be zero")
	}
	if (BookFilter{Category: "SciFi"}).IsZero() {
		t.Error("category filter should not be zero")
	}
}
