package toon

import (
	"fmt"
	"strings"
)

// arrayForm is the encoder's choice of on-the-wire shape for a given array
// (spec.md §4.11): all-primitive arrays render inline on the header line,
// uniform arrays of same-shaped flat objects render as a tabular block, and
// everything else renders as an expanded list of hyphen items.
type arrayForm int

const (
	arrayFormInline arrayForm = iota
	arrayFormTabular
	arrayFormList
)

// encodeRoot writes v — already normalized — as a complete TOON document.
// An empty root Object produces an empty document; a root Array or
// primitive is written directly, with no wrapping key (spec.md §4.11).
func encodeRoot(w *writer, v any, delim Delimiter) error {
	switch t := v.(type) {
	case *Object:
		return encodeObject(w, t, 0, delim)
	case Array:
		return encodeArrayAsValue(w, "", t, 0, delim)
	default:
		w.push(0, encodePrimitiveText(t, delim))
		return nil
	}
}

// encodeObject writes every field of obj at depth, one line per scalar or
// array field, and a recursive block for every nested-object field
// (spec.md §4.11).
func encodeObject(w *writer, obj *Object, depth int, delim Delimiter) error {
	var err error
	obj.Range(func(key string, val any) bool {
		err = encodeObjectField(w, key, val, depth, delim)
		return err == nil
	})
	return err
}

// encodeObjectField writes a single key/value pair of a mapping at depth.
func encodeObjectField(w *writer, key string, val any, depth int, delim Delimiter) error {
	keyText := encodeKeyText(key)
	switch t := val.(type) {
	case *Object:
		w.push(depth, keyText+":")
		if t.Len() == 0 {
			return nil
		}
		return encodeObject(w, t, depth+1, delim)
	case Array:
		return encodeArrayAsValue(w, keyText, t, depth, delim)
	default:
		w.push(depth, keyText+": "+encodePrimitiveText(t, delim))
		return nil
	}
}

// encodeArrayAsValue writes an array value — either a named object field
// (keyText non-empty) or the unkeyed document root (keyText=="") — choosing
// its form and, for non-inline forms, its body at depth+1.
func encodeArrayAsValue(w *writer, keyText string, arr Array, depth int, delim Delimiter) error {
	form := classifyArrayForm(arr)
	w.push(depth, buildArrayHeaderLine(keyText, arr, delim, form))
	if form == arrayFormInline {
		return nil
	}
	return encodeArrayBody(w, arr, form, depth+1, delim)
}

// encodeArrayBody writes a non-inline array's body rows/items at bodyDepth.
func encodeArrayBody(w *writer, arr Array, form arrayForm, bodyDepth int, delim Delimiter) error {
	switch form {
	case arrayFormTabular:
		fields := arr[0].(*Object).Keys()
		delimStr := string(delim.byte())
		for _, e := range arr {
			obj := e.(*Object)
			vals := make([]string, len(fields))
			for i, f := range fields {
				v, _ := obj.Get(f)
				vals[i] = encodePrimitiveText(v, delim)
			}
			w.push(bodyDepth, strings.Join(vals, delimStr))
		}
		return nil
	case arrayFormList:
		for _, item := range arr {
			if err := encodeListItem(w, item, bodyDepth, delim); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}

// encodeListItem writes a single "- ..." item at itemDepth (spec.md §10).
// A primitive item is the token on the hyphen line. A nested array item
// puts its header on the hyphen line, with body — if any — at itemDepth+1.
// An object item puts its first field inline on the hyphen line and the
// rest at itemDepth+1; if that first field's own value is an array, the
// array's header still sits on the hyphen line but its body is pushed to
// itemDepth+2 so the object's remaining sibling fields, at itemDepth+1,
// are not mistaken for the array's rows (spec.md §10).
func encodeListItem(w *writer, item any, itemDepth int, delim Delimiter) error {
	switch t := item.(type) {
	case *Object:
		return encodeObjectListItem(w, t, itemDepth, delim)
	case Array:
		form := classifyArrayForm(t)
		w.pushListItem(itemDepth, buildArrayHeaderLine("", t, delim, form))
		if form == arrayFormInline {
			return nil
		}
		return encodeArrayBody(w, t, form, itemDepth+1, delim)
	default:
		w.pushListItem(itemDepth, encodePrimitiveText(t, delim))
		return nil
	}
}

func encodeObjectListItem(w *writer, obj *Object, itemDepth int, delim Delimiter) error {
	keys := obj.Keys()
	if len(keys) == 0 {
		w.pushListItem(itemDepth, "")
		return nil
	}

	firstKey := keys[0]
	firstVal, _ := obj.Get(firstKey)
	keyText := encodeKeyText(firstKey)

	switch t := firstVal.(type) {
	case Array:
		form := classifyArrayForm(t)
		w.pushListItem(itemDepth, buildArrayHeaderLine(keyText, t, delim, form))
		if form != arrayFormInline {
			if err := encodeArrayBody(w, t, form, itemDepth+2, delim); err != nil {
				return err
			}
		}
	case *Object:
		w.pushListItem(itemDepth, keyText+":")
		if t.Len() > 0 {
			// Same depth+2 bump as the Array case above: this mapping is
			// the list item's first field, so its body can't sit at
			// itemDepth+1 -- that's where the item's own sibling fields
			// (keys[1:], below) are written (spec.md §10).
			if err := encodeObject(w, t, itemDepth+2, delim); err != nil {
				return err
			}
		}
	default:
		w.pushListItem(itemDepth, keyText+": "+encodePrimitiveText(t, delim))
	}

	for _, k := range keys[1:] {
		v, _ := obj.Get(k)
		if err := encodeObjectField(w, k, v, itemDepth+1, delim); err != nil {
			return err
		}
	}
	return nil
}

// classifyArrayForm picks the most compact form that can losslessly
// represent arr (spec.md §4.11): inline when every element is a primitive;
// tabular when every element is a non-empty object with the same set of
// purely-primitive fields; list otherwise.
func classifyArrayForm(arr Array) arrayForm {
	if len(arr) == 0 {
		return arrayFormInline
	}
	allPrimitive := true
	for _, e := range arr {
		if !isPrimitiveValue(e) {
			allPrimitive = false
			break
		}
	}
	if allPrimitive {
		return arrayFormInline
	}
	if isTabularCandidate(arr) {
		return arrayFormTabular
	}
	return arrayFormList
}

func isPrimitiveValue(v any) bool {
	switch v.(type) {
	case *Object, Array:
		return false
	default:
		return true
	}
}

func isTabularCandidate(arr Array) bool {
	first, ok := arr[0].(*Object)
	if !ok || first.Len() == 0 {
		return false
	}
	fields := first.Keys()
	for _, e := range arr {
		obj, ok := e.(*Object)
		if !ok || obj.Len() != len(fields) {
			return false
		}
		for _, f := range fields {
			v, has := obj.Get(f)
			if !has || !isPrimitiveValue(v) {
				return false
			}
		}
	}
	return true
}

// buildArrayHeaderLine renders the full `key?[len<delim>?]{fields}?: tail?`
// text for arr (spec.md §3). keyText=="" omits the key segment, producing a
// keyless header suitable for a document root or a plain array list item.
func buildArrayHeaderLine(keyText string, arr Array, delim Delimiter, form arrayForm) string {
	n := len(arr)
	lengthPart := fmt.Sprintf("[%d%s]", n, delimiterSuffix(delim))

	switch form {
	case arrayFormTabular:
		fields := arr[0].(*Object).Keys()
		fieldTexts := make([]string, len(fields))
		for i, f := range fields {
			fieldTexts[i] = encodeKeyText(f)
		}
		return keyText + lengthPart + "{" + strings.Join(fieldTexts, string(delim.byte())) + "}:"
	case arrayFormList:
		return keyText + lengthPart + ":"
	default:
		tokens := make([]string, n)
		for i, e := range arr {
			tokens[i] = encodePrimitiveText(e, delim)
		}
		tail := strings.Join(tokens, string(delim.byte()))
		if tail == "" {
			return keyText + lengthPart + ":"
		}
		return keyText + lengthPart + ": " + tail
	}
}

// delimiterSuffix returns the bracket suffix marking a non-default
// delimiter. Comma is the default and is never suffixed (spec.md §3).
func delimiterSuffix(delim Delimiter) string {
	switch delim {
	case Tab:
		return "\t"
	case Pipe:
		return "|"
	default:
		return ""
	}
}

// encodeKeyText renders key, quoting it if it does not match the unquoted
// key grammar [A-Za-z_][A-Za-z0-9_.]* (spec.md §4.2).
func encodeKeyText(key string) string {
	if isValidUnquotedKey(key) {
		return key
	}
	return "\"" + escapeString(key) + "\""
}

// encodePrimitiveText renders a single scalar value (spec.md §4.11).
func encodePrimitiveText(v any, delim Delimiter) string {
	switch t := v.(type) {
	case nil:
		return litNull
	case bool:
		if t {
			return litTrue
		}
		return litFalse
	case Number:
		return t.String()
	case string:
		return encodeStringValue(t, delim)
	default:
		return ""
	}
}

// encodeStringValue quotes s unless it is safe to emit bare under delim
// (spec.md §4.2, §4.3).
func encodeStringValue(s string, delim Delimiter) string {
	if isSafeUnquotedString(s, delim) {
		return s
	}
	return "\"" + escapeString(s) + "\""
}
