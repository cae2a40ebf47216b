package toon

// decoder holds the mutable state threaded through the recursive-descent
// decode (spec.md §4.7): the line cursor, the blank-line list (for strict
// range checks), the active options, and the set of keys that arrived quoted
// in the source (so path expansion can skip them, spec.md §4.13).
type decoder struct {
	cur        *cursor
	blanks     []blankLine
	opts       DecodeOptions
	delim      Delimiter
	quotedKeys map[*Object]map[string]bool
}

func newDecoder(res *scanResult, opts DecodeOptions, delim Delimiter) *decoder {
	return &decoder{
		cur:        newCursor(res.lines),
		blanks:     res.blanks,
		opts:       opts,
		delim:      delim,
		quotedKeys: make(map[*Object]map[string]bool),
	}
}

func (d *decoder) markQuoted(obj *Object, key string) {
	set := d.quotedKeys[obj]
	if set == nil {
		set = make(map[string]bool)
		d.quotedKeys[obj] = set
	}
	set[key] = true
}

// decodeDocument is the decoder's entry point (spec.md §4.7). An empty
// document (no non-blank lines) decodes to an empty Object. A single line
// that is neither an array header nor a key/value line decodes as a bare
// primitive. Otherwise the document is a root mapping, or — when the single
// top-level line is a keyless array header — a root array.
func decodeDocument(res *scanResult, opts DecodeOptions, delim Delimiter) (any, *decoder, error) {
	d := newDecoder(res, opts, delim)
	if len(res.lines) == 0 {
		return NewObject(), d, nil
	}

	first := res.lines[0]
	if first.depth == 0 {
		header, ok, err := parseArrayHeaderLine(first.content, delim)
		if err != nil {
			return nil, d, err
		}
		if ok && !header.hasKey {
			d.cur.advance()
			arr, err := d.decodeArrayBody(header, 1, first)
			return arr, d, err
		}
		if !ok && len(res.lines) == 1 && findUnquotedChar(first.content, charColon, 0) < 0 {
			val, err := parsePrimitiveToken(first.content, first.lineNum, first.indent+1)
			return val, d, err
		}
	}

	obj, err := d.decodeMapping(0)
	return obj, d, err
}

// decodeMapping decodes a mapping whose entries all sit at the given depth,
// starting from the cursor's current position (spec.md §4.7 "Mapping
// decode").
func (d *decoder) decodeMapping(depth int) (*Object, error) {
	obj := NewObject()
	if err := d.readMappingEntries(obj, depth); err != nil {
		return nil, err
	}
	return obj, nil
}

// readMappingEntries reads entries at depth into obj until the cursor runs
// out or the next line's depth no longer matches. It is used both for a
// plain mapping and for a list item's sibling fields (depth = hyphen-line
// depth + 1); a list item's own first field, when it is an array, is
// decoded separately by decodeListItem so its body can use the depth+2
// bump spec.md §10 requires.
func (d *decoder) readMappingEntries(obj *Object, depth int) error {
	for !d.cur.atEnd() {
		l, _ := d.cur.peek()
		if l.depth != depth {
			break
		}

		header, matched, err := parseArrayHeaderLine(l.content, d.delim)
		if err != nil {
			return err
		}
		if matched && header.hasKey {
			d.cur.advance()
			if header.hasFields && d.opts.Strict {
				if err := validateHeaderDelimiterConsistency(header.rawFields, header.delimiter); err != nil {
					err.(*Error).Line = l.lineNum
					return err
				}
			}
			arr, err := d.decodeArrayBody(header, depth+1, l)
			if err != nil {
				return err
			}
			obj.Set(header.key, arr)
			if l.content[0] == charQuote {
				d.markQuoted(obj, header.key)
			}
			continue
		}

		key, endIdx, wasQuoted, err := parseKeyToken(l.content, 0)
		if err != nil {
			err.(*Error).Line = l.lineNum
			return err
		}
		valuePart := trimSpace(l.content[endIdx:])
		d.cur.advance()

		if valuePart == "" {
			next, ok := d.cur.peek()
			if ok && next.depth > depth {
				nested, err := d.decodeMapping(depth + 1)
				if err != nil {
					return err
				}
				obj.Set(key, nested)
			} else {
				obj.Set(key, NewObject())
			}
		} else {
			val, err := parsePrimitiveToken(valuePart, l.lineNum, l.indent+endIdx+1)
			if err != nil {
				return err
			}
			obj.Set(key, val)
		}
		if wasQuoted {
			d.markQuoted(obj, key)
		}
	}
	return nil
}

// decodeArrayBody decodes the body of an array whose header already matched
// (spec.md §4.7). bodyDepth is the depth at which tabular rows or list
// items are expected; inline arrays ignore it since their contents sit on
// the header line itself (header.tail).
func (d *decoder) decodeArrayBody(header *arrayHeader, bodyDepth int, headerLine line) (Array, error) {
	switch {
	case header.hasFields:
		return d.decodeTabularArray(header, bodyDepth)
	case header.tail != "" || header.length == 0:
		return d.decodeInlineArray(header, headerLine)
	default:
		return d.decodeListArray(header, bodyDepth)
	}
}

func (d *decoder) decodeInlineArray(header *arrayHeader, headerLine line) (Array, error) {
	var tokens []string
	if header.tail != "" {
		tokens = parseDelimitedValues(header.tail, header.delimiter)
	}
	arr := make(Array, 0, len(tokens))
	col := headerLine.indent + 1
	for _, t := range tokens {
		val, err := parsePrimitiveToken(t, headerLine.lineNum, col)
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
	}
	if d.opts.Strict {
		if err := assertExpectedCount(len(arr), header.length, "inline values", headerLine.lineNum); err != nil {
			return nil, err
		}
	}
	return arr, nil
}

func (d *decoder) decodeTabularArray(header *arrayHeader, bodyDepth int) (Array, error) {
	rows := make(Array, 0, header.length)
	firstLine, lastLine := -1, -1
	rawFieldTokens := parseDelimitedValues(header.rawFields, header.delimiter)

	for {
		l, ok := d.cur.peek()
		if !ok || l.depth != bodyDepth || !isTabularRow(l.content, header.delimiter) {
			break
		}
		d.cur.advance()
		if firstLine < 0 {
			firstLine = l.lineNum
		}
		lastLine = l.lineNum

		values := parseDelimitedValues(l.content, header.delimiter)
		if d.opts.Strict {
			if err := assertExpectedCount(len(values), len(header.fields), "row fields", l.lineNum); err != nil {
				return nil, err
			}
		}
		row := NewObjectWithCapacity(len(header.fields))
		for i, f := range header.fields {
			var val any
			var err error
			if i < len(values) {
				val, err = parsePrimitiveToken(values[i], l.lineNum, l.indent+1)
				if err != nil {
					return nil, err
				}
			}
			row.Set(f, val)
			if i < len(rawFieldTokens) && rawFieldTokens[i] != "" && rawFieldTokens[i][0] == charQuote {
				d.markQuoted(row, f)
			}
		}
		rows = append(rows, row)

		if len(rows) == header.length {
			if d.opts.Strict {
				if err := validateNoExtraTabularRows(d.cur, bodyDepth, header.delimiter); err != nil {
					return nil, err
				}
			}
			break
		}
	}

	if d.opts.Strict {
		if err := assertExpectedCount(len(rows), header.length, "tabular rows", firstLine); err != nil {
			return nil, err
		}
		if err := validateNoBlankLinesInRange(firstLine, lastLine, d.blanks); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

func (d *decoder) decodeListArray(header *arrayHeader, bodyDepth int) (Array, error) {
	items := make(Array, 0, header.length)
	firstLine, lastLine := -1, -1

	for {
		l, ok := d.cur.peek()
		if !ok || l.depth != bodyDepth || !isListItemLine(l.content) {
			break
		}
		if firstLine < 0 {
			firstLine = l.lineNum
		}
		lastLine = l.lineNum

		val, err := d.decodeListItem(bodyDepth)
		if err != nil {
			return nil, err
		}
		items = append(items, val)

		if len(items) == header.length {
			if d.opts.Strict {
				if err := validateNoExtraListItems(d.cur, bodyDepth); err != nil {
					return nil, err
				}
			}
			break
		}
	}

	if d.opts.Strict {
		if err := assertExpectedCount(len(items), header.length, "list items", firstLine); err != nil {
			return nil, err
		}
		if err := validateNoBlankLinesInRange(firstLine, lastLine, d.blanks); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// decodeListItem decodes a single "- ..." line at itemDepth (spec.md §10).
// A bare "-" is an empty mapping. An array header on the hyphen line,
// keyless, is a plain array item (array of arrays). An array header with a
// key is shorthand for an object whose first field is that array, with
// sibling fields — if any — read at itemDepth+1. A key/value token whose
// first key's value is itself a non-empty nested mapping gets the same
// treatment: that mapping's body sits at itemDepth+2 so it can't be
// confused with the item's own sibling fields at itemDepth+1. Anything else
// is a primitive item.
func (d *decoder) decodeListItem(itemDepth int) (any, error) {
	l := d.cur.current()
	if l.content == "-" {
		d.cur.advance()
		return NewObject(), nil
	}

	rest := trimSpace(l.content[len(listItemMarker):])
	restCol := l.indent + len(listItemMarker) + 1

	if header, ok, err := parseArrayHeaderLine(rest, d.delim); err != nil {
		return nil, err
	} else if ok {
		d.cur.advance()
		if header.hasFields && d.opts.Strict {
			if err := validateHeaderDelimiterConsistency(header.rawFields, header.delimiter); err != nil {
				err.(*Error).Line = l.lineNum
				return nil, err
			}
		}
		// An array that is itself the whole item (no key) nests its body at
		// the ordinary itemDepth+1. An array that is a list item's first
		// *field* uses itemDepth+2 for its body, since itemDepth+1 is where
		// that item's sibling fields live (spec.md §10).
		bodyDepth := itemDepth + 1
		if header.hasKey {
			bodyDepth = itemDepth + 2
		}
		arr, err := d.decodeArrayBody(header, bodyDepth, l)
		if err != nil {
			return nil, err
		}
		if !header.hasKey {
			return arr, nil
		}
		obj := NewObject()
		obj.Set(header.key, arr)
		if rest[0] == charQuote {
			d.markQuoted(obj, header.key)
		}
		if err := d.readMappingEntries(obj, itemDepth+1); err != nil {
			return nil, err
		}
		return obj, nil
	}

	if colonIdx := findUnquotedChar(rest, charColon, 0); colonIdx >= 0 {
		key, endIdx, wasQuoted, err := parseKeyToken(rest, 0)
		if err != nil {
			err.(*Error).Line = l.lineNum
			return nil, err
		}
		valuePart := trimSpace(rest[endIdx:])
		d.cur.advance()

		obj := NewObject()
		if valuePart == "" {
			next, ok := d.cur.peek()
			if ok && next.depth > itemDepth {
				// This key is the list item's first field and its value is a
				// non-empty nested mapping: its body must sit at itemDepth+2,
				// the same bump an array first field gets (spec.md §10),
				// since itemDepth+1 is where this item's remaining sibling
				// fields (read below) live.
				nested, err := d.decodeMapping(itemDepth + 2)
				if err != nil {
					return nil, err
				}
				obj.Set(key, nested)
			} else {
				obj.Set(key, NewObject())
			}
		} else {
			val, err := parsePrimitiveToken(valuePart, l.lineNum, restCol+endIdx)
			if err != nil {
				return nil, err
			}
			obj.Set(key, val)
		}
		if wasQuoted {
			d.markQuoted(obj, key)
		}
		if err := d.readMappingEntries(obj, itemDepth+1); err != nil {
			return nil, err
		}
		return obj, nil
	}

	val, err := parsePrimitiveToken(rest, l.lineNum, restCol)
	if err != nil {
		return nil, err
	}
	d.cur.advance()
	return val, nil
}

// quotedKeysOf returns the set of obj's keys that arrived quoted in the
// source, or nil. Used by path expansion (spec.md §4.13) to decide which
// keys are eligible for dotted-path splitting.
func (d *decoder) quotedKeysOf(obj *Object) map[string]bool {
	return d.quotedKeys[obj]
}
