package toon

import (
	"errors"
	"testing"
)

func TestEscapeUnescapeRoundTrip(t *testing.T) {
	cases := []string{
		`plain`,
		"has\nnewline",
		"has\ttab",
		`has"quote`,
		`has\backslash`,
		"has\r\ncrlf",
	}
	for _, s := range cases {
		escaped := escapeString(s)
		got, err := unescapeString(escaped, 0, 0)
		if err != nil {
			t.Fatalf("unescapeString(%q) error: %v", escaped, err)
		}
		want := s
		if s == "has\r\ncrlf" {
			want = "has\ncrlf" // CRLF collapses to LF on the way in
		}
		if got != want {
			t.Errorf("round trip of %q = %q, want %q", s, got, want)
		}
	}
}

func TestUnescapeStringInvalidEscape(t *testing.T) {
	_, err := unescapeString(`bad\xescape`, 1, 1)
	if err == nil {
		t.Fatal("expected an error for an invalid escape sequence")
	}
	var toonErr *Error
	if !errors.As(err, &toonErr) || toonErr.Kind != ErrSyntax {
		t.Errorf("expected a Syntax error, got %v", err)
	}
}

func TestFindClosingQuote(t *testing.T) {
	if got := findClosingQuote(`abc"`, 0); got != 3 {
		t.Errorf("findClosingQuote = %d, want 3", got)
	}
	if got := findClosingQuote(`ab\"c"`, 0); got != 5 {
		t.Errorf("findClosingQuote with escaped quote = %d, want 5", got)
	}
	if got := findClosingQuote(`no quote here`, 0); got != -1 {
		t.Errorf("findClosingQuote with no quote = %d, want -1", got)
	}
}

func TestFindUnquotedChar(t *testing.T) {
	if got := findUnquotedChar(`a:"x:y":z`, ':', 0); got != 1 {
		t.Errorf("findUnquotedChar = %d, want 1 (skip quoted colon)", got)
	}
	if got := findUnquotedChar(`"a:b"`, ':', 0); got != -1 {
		t.Errorf("findUnquotedChar = %d, want -1 (colon only inside quotes)", got)
	}
}
