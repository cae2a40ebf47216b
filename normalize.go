package toon

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// normalize turns an arbitrary Go value into the JSON-shaped tree the
// Encoder consumes: *Object, Array, Number, string, bool, or nil
// (spec.md §4.9). It mirrors the decoder's data model exactly, so a value
// round-tripped through Decode then Encode needs no further conversion.
//
// Unlike a json.Marshal/Unmarshal round trip (which loses field order by
// passing through map[string]interface{}), normalize walks struct fields
// directly via reflection and preserves their declaration order in the
// resulting Object, honoring spec.md §3's insertion-order invariant.
func normalize(v any) any {
	if v == nil {
		return nil
	}
	switch t := v.(type) {
	case *Object, Array, Number:
		return t
	case bool:
		return t
	case string:
		return t
	case time.Time:
		return t.Format(time.RFC3339Nano)
	case *big.Int:
		if t == nil {
			return nil
		}
		return IntNumber(t)
	}
	return normalizeReflect(reflect.ValueOf(v))
}

func normalizeReflect(rv reflect.Value) any {
	if !rv.IsValid() {
		return nil
	}
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return normalizeReflect(rv.Elem())

	case reflect.Bool:
		return rv.Bool()

	case reflect.String:
		return rv.String()

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int64Number(rv.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return IntNumber(new(big.Int).SetUint64(rv.Uint()))

	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return FloatNumber(f)

	case reflect.Slice, reflect.Array:
		return normalizeSequence(rv)

	case reflect.Map:
		return normalizeMap(rv)

	case reflect.Struct:
		return normalizeStruct(rv)

	default:
		return nil
	}
}

func normalizeSequence(rv reflect.Value) Array {
	n := rv.Len()
	arr := make(Array, n)
	for i := 0; i < n; i++ {
		arr[i] = normalizeReflect(rv.Index(i))
	}
	return arr
}

// normalizeMap normalizes a Go map into an Object. Map iteration order is
// unspecified by the language, so keys are sorted for determinism — the
// same map always normalizes to the same TOON text (spec.md §4.9's
// requirement that encoding be a pure function of its input).
func normalizeMap(rv reflect.Value) *Object {
	keys := rv.MapKeys()
	type entry struct {
		key string
		val reflect.Value
	}
	entries := make([]entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, entry{key: mapKeyString(k), val: rv.MapIndex(k)})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	obj := NewObjectWithCapacity(len(entries))
	for _, e := range entries {
		obj.Set(e.key, normalizeReflect(e.val))
	}
	return obj
}

func mapKeyString(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	return toStringKind(k)
}

func toStringKind(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(v.Int()).String()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Int).SetUint64(v.Uint()).String()
	case reflect.Float32, reflect.Float64:
		return formatFloat(v.Float())
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	default:
		return fmt.Sprint(v.Interface())
	}
}

// normalizeStruct normalizes a struct's exported fields, in declaration
// order, into an Object. A `toon:"name"` tag renames the field; `toon:"-"`
// skips it; `toon:",omitempty"` skips a field holding its zero value.
func normalizeStruct(rv reflect.Value) *Object {
	t := rv.Type()
	obj := NewObjectWithCapacity(t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" { // unexported
			continue
		}
		name, omitempty, skip := parseToonTag(f)
		if skip {
			continue
		}
		fv := rv.Field(i)
		if omitempty && fv.IsZero() {
			continue
		}
		obj.Set(name, normalizeReflect(fv))
	}
	return obj
}

func parseToonTag(f reflect.StructField) (name string, omitempty bool, skip bool) {
	name = f.Name
	tag, ok := f.Tag.Lookup("toon")
	if !ok {
		return name, false, false
	}
	if tag == "-" {
		return "", false, true
	}
	parts := strings.Split(tag, ",")
	if parts[0] != "" {
		name = parts[0]
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitempty = true
		}
	}
	return name, omitempty, false
}
