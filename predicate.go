package toon

import "strconv"

// isBooleanOrNullLiteral reports whether s is exactly "true", "false", or
// "null" (spec.md §4.2).
func isBooleanOrNullLiteral(s string) bool {
	return s == litTrue || s == litFalse || s == litNull
}

// isNumericLiteral reports whether s matches the numeric grammar
// -?\d+(\.\d+)?([eE][+-]?\d+)? and additionally rejects leading-zero
// integers other than "0" itself, e.g. "007" is not numeric and decodes as
// a string (spec.md §4.2). It also requires s to parse as a finite double.
func isNumericLiteral(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	neg := false
	if s[i] == '-' {
		neg = true
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intLen := i - start
	if intLen == 0 {
		return false
	}
	// Reject leading-zero integers other than "0" itself.
	if intLen > 1 && s[start] == '0' {
		return false
	}
	_ = neg

	if i < len(s) && s[i] == '.' {
		i++
		fracStart := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == fracStart {
			return false
		}
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expStart := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == expStart {
			return false
		}
	}

	if i != len(s) {
		return false
	}

	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isIdentifierSegment reports whether s matches [A-Za-z_][A-Za-z0-9_]*.
// Used to decide whether a segment of a dotted key is eligible for folding
// or expansion (spec.md §4.2).
func isIdentifierSegment(s string) bool {
	if s == "" {
		return false
	}
	if !isAlpha(s[0]) && s[0] != '_' {
		return false
	}
	for i := 1; i < len(s); i++ {
		b := s[i]
		if !isAlpha(b) && !isDigit(b) && b != '_' {
			return false
		}
	}
	return true
}

// isValidUnquotedKey reports whether s matches [A-Za-z_][A-Za-z0-9_.]*:
// identifier characters plus dot (spec.md §4.2).
func isValidUnquotedKey(s string) bool {
	if s == "" {
		return false
	}
	if !isAlpha(s[0]) && s[0] != '_' {
		return false
	}
	for i := 1; i < len(s); i++ {
		b := s[i]
		if !isAlpha(b) && !isDigit(b) && b != '_' && b != '.' {
			return false
		}
	}
	return true
}

// isSafeUnquotedString reports whether s can be emitted unquoted under the
// given delimiter (spec.md §4.2): non-empty, untrimmed-equal-to-trimmed,
// not a boolean/null literal, not numeric-looking, free of colon, double
// quote, backslash, brackets, braces, newline, carriage return, tab and the
// active delimiter, and not starting with the list-item marker.
func isSafeUnquotedString(s string, delim Delimiter) bool {
	if s == "" {
		return false
	}
	if hasLeadingOrTrailingSpace(s) {
		return false
	}
	if isBooleanOrNullLiteral(s) {
		return false
	}
	if isNumericLiteral(s) {
		return false
	}
	if hasListItemMarkerPrefix(s) {
		return false
	}
	delimByte := delim.byte()
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch b {
		case charColon, charQuote, charBackslash,
			charLBracket, charRBracket, charLBrace, charRBrace,
			'\n', '\r', '\t':
			return false
		}
		if b == delimByte {
			return false
		}
	}
	return true
}

func hasLeadingOrTrailingSpace(s string) bool {
	return s != trimSpace(s)
}

func hasListItemMarkerPrefix(s string) bool {
	return len(s) >= 2 && s[0] == charMinus && s[1] == charSpace
}

// trimSpace trims ASCII space only, matching the scanner's definition of
// indentation (spaces, never unicode whitespace).
func trimSpace(s string) string {
	start := 0
	for start < len(s) && s[start] == charSpace {
		start++
	}
	end := len(s)
	for end > start && s[end-1] == charSpace {
		end--
	}
	return s[start:end]
}
