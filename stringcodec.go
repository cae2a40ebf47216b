package toon

import "strings"

// escapeString replaces, in one pass, the characters that must not appear
// literally inside a double-quoted TOON string: backslash, double-quote,
// newline, carriage return, and tab (spec.md §4.3). CRLF collapses to a
// single \n escape first so a round-tripped CRLF string still emits just
// one TOON string.
func escapeString(s string) string {
	if strings.ContainsAny(s, "\\\"\n\r\t") {
		s = strings.ReplaceAll(s, "\r\n", "\n")
	} else {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// unescapeString reverses the five escape sequences produced by
// escapeString. Any backslash followed by a character other than
// \ " n r t fails the decode with a syntax error (spec.md §4.3). s is the
// content strictly between the opening and closing quotes.
func unescapeString(s string, line, col int) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(s) {
			return "", newError(ErrSyntax, line, col, "", "unterminated escape sequence")
		}
		switch s[i+1] {
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			return "", newError(ErrSyntax, line, col, "", "invalid escape sequence \\%c", s[i+1])
		}
		i++
	}
	return b.String(), nil
}

// findClosingQuote scans forward from start (the index just after the
// opening quote) and returns the index of the first unescaped double quote,
// skipping the byte after each backslash, or -1 if none is found
// (spec.md §4.3).
func findClosingQuote(s string, start int) int {
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}

// findUnquotedChar returns the first index at or after start of ch in s
// that lies outside any "…" span, tracking quote state and backslash
// escapes inside quotes (spec.md §4.3). Returns -1 if not found.
func findUnquotedChar(s string, ch byte, start int) int {
	inQuote := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inQuote {
			if c == '\\' {
				i++
				continue
			}
			if c == '"' {
				inQuote = false
			}
			continue
		}
		if c == '"' {
			inQuote = true
			continue
		}
		if c == ch {
			return i
		}
	}
	return -1
}
