// Package toon implements encoding and decoding of TOON (Token-Oriented
// Object Notation) documents: a compact, indentation-based textual encoding
// of the JSON data model that blends YAML-style block structure with
// CSV-style tabular rows.
//
// # Parsing pipeline
//
// Decoding runs in three phases, mirroring the way a recursive-descent
// line-oriented parser is conventionally built:
//
//  1. Scanner: converts source text into depth-tagged logical lines,
//     validating indentation.
//
//  2. Parser: recognizes array headers, primitive tokens, and delimited
//     value lists on individual lines.
//
//  3. Decoder: a recursive descent over the line cursor that builds the
//     decoded value (objects, tabular/list/inline arrays, list items).
//
// Encoding is the mirror image: a Normalizer turns an arbitrary Go value
// into the JSON-shaped tree, the Encoder chooses the most compact array
// form for each node, and a line Writer assembles the final text.
package toon

import "math/big"

// Object is an insertion-ordered string-keyed mapping: the TOON data model's
// "object" variant. Plain Go maps do not preserve iteration order, and
// spec.md §3 makes key ordering significant on emission and on decode, so
// every object in the JSON-shaped tree is represented with this type rather
// than map[string]any.
//
// The zero value is not usable; construct with NewObject.
type Object struct {
	keys  []string
	index map[string]int
	vals  []any
}

// NewObject returns an empty Object ready for use.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// NewObjectWithCapacity returns an empty Object pre-sized for n entries.
func NewObjectWithCapacity(n int) *Object {
	return &Object{
		keys:  make([]string, 0, n),
		index: make(map[string]int, n),
		vals:  make([]any, 0, n),
	}
}

// Set inserts or updates key. If key already exists, its value is
// overwritten in place and its position in Keys() is unchanged (first
// occurrence wins for position; last write wins for the value — spec.md
// §4.7). If key is new, it is appended at the end.
func (o *Object) Set(key string, value any) {
	if i, ok := o.index[key]; ok {
		o.vals[i] = value
		return
	}
	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, value)
}

// Get returns the value for key and whether it was present.
func (o *Object) Get(key string) (any, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.vals[i], true
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.index[key]
	return ok
}

// Delete removes key if present, preserving the relative order of the rest.
func (o *Object) Delete(key string) {
	i, ok := o.index[key]
	if !ok {
		return
	}
	o.keys = append(o.keys[:i], o.keys[i+1:]...)
	o.vals = append(o.vals[:i], o.vals[i+1:]...)
	delete(o.index, key)
	for k, idx := range o.index {
		if idx > i {
			o.index[k] = idx - 1
		}
	}
}

// Keys returns the keys in insertion order. The returned slice must not be
// mutated by the caller.
func (o *Object) Keys() []string { return o.keys }

// Len returns the number of entries.
func (o *Object) Len() int { return len(o.keys) }

// Range calls f for each entry in insertion order. Range stops early if f
// returns false.
func (o *Object) Range(f func(key string, value any) bool) {
	for i, k := range o.keys {
		if !f(k, o.vals[i]) {
			return
		}
	}
}

// Array is the TOON data model's "array" variant: an ordered list of values.
type Array []any

// Number is the TOON data model's "number" variant. It holds either an
// arbitrary-precision integer (Int != nil) or a float64. Decoding an
// integer literal larger than float64's safe integer range still produces
// an exact Int, matching spec.md §4.4's "integers larger than the
// double-precision safe integer range are emitted verbatim."
type Number struct {
	Int   *big.Int
	Float float64
}

// IntNumber returns a Number wrapping an arbitrary-precision integer.
func IntNumber(i *big.Int) Number { return Number{Int: i} }

// Int64Number returns a Number wrapping an int64.
func Int64Number(i int64) Number { return Number{Int: big.NewInt(i)} }

// FloatNumber returns a Number wrapping a float64, normalizing signed zero
// (spec.md §4.4).
func FloatNumber(f float64) Number { return Number{Float: normalizeSignedZero(f)} }

// IsInt reports whether n holds an exact integer.
func (n Number) IsInt() bool { return n.Int != nil }

// Float64 returns n as a float64, converting from Int if necessary. Large
// big.Int values lose precision on this conversion; callers that need exact
// integer semantics should check IsInt and use Int directly.
func (n Number) Float64() float64 {
	if n.Int != nil {
		f := new(big.Float).SetInt(n.Int)
		v, _ := f.Float64()
		return v
	}
	return n.Float
}

// Equal reports whether n and other represent the same numeric value,
// regardless of which representation (Int vs Float) each uses.
func (n Number) Equal(other Number) bool {
	if n.Int != nil && other.Int != nil {
		return n.Int.Cmp(other.Int) == 0
	}
	return n.Float64() == other.Float64()
}

// String returns the canonical plain-decimal text for n (spec.md §4.4).
func (n Number) String() string {
	if n.Int != nil {
		return n.Int.String()
	}
	return formatFloat(n.Float)
}
