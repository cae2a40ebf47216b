package toon

// This file holds the decoder's strict-mode invariant checks (spec.md §4.8).
// None of them run unless DecodeOptions.Strict is true; a non-strict decode
// tolerates count mismatches, extra rows/items, and blank lines inside array
// bodies.

// assertExpectedCount checks a decoded array/tabular body's item count
// against its declared header length.
func assertExpectedCount(actual, expected int, what string, lineNum int) error {
	if actual != expected {
		return newError(ErrRange, lineNum, 1, "", "expected %d %s, got %d", expected, what, actual)
	}
	return nil
}

// validateNoExtraListItems checks that the line immediately following a
// fully-read list array is not itself another list item at the same depth
// (which would mean more items were present than the header declared).
func validateNoExtraListItems(cur *cursor, depth int) error {
	next, ok := cur.peek()
	if !ok || next.depth != depth {
		return nil
	}
	if isListItemLine(next.content) {
		return newError(ErrValidation, next.lineNum, 1, next.raw, "more list items present than the declared array length")
	}
	return nil
}

// validateNoExtraTabularRows checks that the line immediately following a
// fully-read tabular body is not itself another data row at the same depth.
func validateNoExtraTabularRows(cur *cursor, depth int, delim Delimiter) error {
	next, ok := cur.peek()
	if !ok || next.depth != depth {
		return nil
	}
	if isTabularRow(next.content, delim) {
		return newError(ErrValidation, next.lineNum, 1, next.raw, "more tabular rows present than the declared array length")
	}
	return nil
}

// validateNoBlankLinesInRange fails if any blank line's number falls
// strictly between startLine and endLine (spec.md §4.8). The decoder passes
// an array's first and last row/item lines, so a blank line between the
// header and the first row/item is not checked.
func validateNoBlankLinesInRange(startLine, endLine int, blanks []blankLine) error {
	if startLine <= 0 || endLine <= 0 || startLine >= endLine {
		return nil
	}
	for _, b := range blanks {
		if b.lineNum > startLine && b.lineNum < endLine {
			return newError(ErrValidation, b.lineNum, 1, "", "blank line inside array body")
		}
	}
	return nil
}

// validateHeaderDelimiterConsistency fails when the tabular field list uses
// a delimiter character other than the one declared in the length bracket,
// e.g. `[1]{a|b}:` — comma is the (default, undeclared) bracket delimiter
// but the fields are pipe-separated.
func validateHeaderDelimiterConsistency(rawFields string, declared Delimiter) error {
	declaredByte := declared.byte()
	inQuote := false
	for i := 0; i < len(rawFields); i++ {
		c := rawFields[i]
		if inQuote {
			if c == charBackslash {
				i++
				continue
			}
			if c == charQuote {
				inQuote = false
			}
			continue
		}
		if c == charQuote {
			inQuote = true
			continue
		}
		if isDelimiterChar(c) && c != declaredByte {
			return newError(ErrValidation, 0, 0, "", "field list uses delimiter %q but the header declares %q", c, declaredByte)
		}
	}
	return nil
}

// isListItemLine reports whether content is a list-item line: "- " followed
// by anything, or exactly "-" (an empty-mapping item, spec.md §10).
func isListItemLine(content string) bool {
	return content == "-" || (len(content) >= 2 && content[0] == charMinus && content[1] == charSpace)
}

// isTabularRow reports whether content is a tabular data row rather than a
// following key/value line: a data row's first unquoted delimiter occurs
// before its first unquoted colon (or it has no colon at all, which a
// key/value line could never have) (spec.md §4.8).
func isTabularRow(content string, delim Delimiter) bool {
	colonIdx := findUnquotedChar(content, charColon, 0)
	if colonIdx < 0 {
		return true
	}
	delimIdx := findUnquotedChar(content, delim.byte(), 0)
	if delimIdx < 0 {
		return false
	}
	return delimIdx < colonIdx
}
