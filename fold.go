package toon

import "strings"

// foldKeys is the encoder-side key-folding pass (spec.md §4.12): it
// collapses a chain of single-key nested objects into one dotted-path key,
// e.g. {"a": {"b": {"c": 1}}} becomes {"a.b.c": 1}. Folding only ever
// consumes keys that individually match the identifier-segment grammar
// (spec.md §4.2) — a literal key that already contains a dot, for
// instance, can never be extended into a longer chain. maxDepth, when not
// Unbounded, caps the number of segments a single folded key may carry.
func foldKeys(v any, maxDepth int) any {
	switch t := v.(type) {
	case *Object:
		return foldObject(t, maxDepth)
	case Array:
		folded := make(Array, len(t))
		for i, e := range t {
			folded[i] = foldKeys(e, maxDepth)
		}
		return folded
	default:
		return v
	}
}

func foldObject(obj *Object, maxDepth int) *Object {
	result := NewObjectWithCapacity(obj.Len())
	for _, key := range obj.Keys() {
		val, _ := obj.Get(key)
		foldedKey, foldedVal := foldChainFrom(key, val, maxDepth)
		if foldedKey != key && (obj.Has(foldedKey) || result.Has(foldedKey)) {
			// A sibling holds this exact dotted path literally, earlier or
			// later in obj: leave this entry unfolded rather than clobber
			// that sibling (spec.md §4.12's sibling-collision rule).
			result.Set(key, foldKeys(val, maxDepth))
			continue
		}
		result.Set(foldedKey, foldedVal)
	}
	return result
}

// foldChainFrom walks the raw, not-yet-folded chain of single-key objects
// starting at key/val, consuming one original key per level as long as it
// matches the identifier-segment grammar. It returns the joined dotted key
// and the folded value of whatever remains once the chain stops (a
// multi-key object, a non-object, or the depth cap).
func foldChainFrom(key string, val any, maxDepth int) (string, any) {
	if !isIdentifierSegment(key) {
		return key, foldKeys(val, maxDepth)
	}

	segments := []string{key}
	cur := val
	for {
		obj, ok := cur.(*Object)
		if !ok || obj.Len() != 1 {
			break
		}
		if maxDepth != Unbounded && len(segments) >= maxDepth {
			break
		}
		onlyKey := obj.Keys()[0]
		if !isIdentifierSegment(onlyKey) {
			break
		}
		onlyVal, _ := obj.Get(onlyKey)
		segments = append(segments, onlyKey)
		cur = onlyVal
	}

	folded := foldKeys(cur, maxDepth)
	if len(segments) < 2 {
		return key, folded
	}
	return strings.Join(segments, "."), folded
}
