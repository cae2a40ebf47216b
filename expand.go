package toon

import "strings"

// expandPaths is the decoder-side post-pass (spec.md §4.13): it splits
// dotted keys — "a.b.c" — into nested objects, the inverse of encode-side
// key folding. A key that arrived quoted in the source is never expanded,
// regardless of whether it contains a dot (that's the whole point of
// quoting it). Under strict mode, a segment collision (one key expanding
// into a path that another key already occupies with a non-object, or two
// keys expanding to the very same final path) is a PathExpansion error;
// otherwise the later entry wins.
func expandPaths(v any, dec *decoder) (any, error) {
	switch t := v.(type) {
	case *Object:
		return expandObject(t, dec)
	case Array:
		out := make(Array, len(t))
		for i, e := range t {
			expanded, err := expandPaths(e, dec)
			if err != nil {
				return nil, err
			}
			out[i] = expanded
		}
		return out, nil
	default:
		return v, nil
	}
}

func expandObject(obj *Object, dec *decoder) (*Object, error) {
	quoted := dec.quotedKeysOf(obj)
	result := NewObjectWithCapacity(obj.Len())

	for _, key := range obj.Keys() {
		val, _ := obj.Get(key)
		expandedVal, err := expandPaths(val, dec)
		if err != nil {
			return nil, err
		}

		if quoted[key] || !strings.Contains(key, ".") {
			if err := mergeLeaf(result, key, expandedVal, dec.opts.Strict); err != nil {
				return nil, err
			}
			continue
		}

		segments := strings.Split(key, ".")
		allValid := true
		for _, s := range segments {
			if !isIdentifierSegment(s) {
				allValid = false
				break
			}
		}
		if !allValid {
			if err := mergeLeaf(result, key, expandedVal, dec.opts.Strict); err != nil {
				return nil, err
			}
			continue
		}

		if err := setPath(result, segments, expandedVal, dec.opts.Strict); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// setPath walks/creates nested Objects along segments, setting val at the
// end of the chain.
func setPath(result *Object, segments []string, val any, strict bool) error {
	if len(segments) == 1 {
		return mergeLeaf(result, segments[0], val, strict)
	}

	head := segments[0]
	var child *Object
	if existing, has := result.Get(head); has {
		obj, ok := existing.(*Object)
		if !ok {
			if strict {
				return newError(ErrPathExpansion, 0, 0, "", "path segment %q conflicts with a non-object value", head)
			}
			child = NewObject()
		} else {
			child = obj
		}
	} else {
		child = NewObject()
	}

	if err := setPath(child, segments[1:], val, strict); err != nil {
		return err
	}
	result.Set(head, child)
	return nil
}

// mergeLeaf sets key to val in result, failing under strict mode if key is
// already present (two keys expanded to the same final path).
func mergeLeaf(result *Object, key string, val any, strict bool) error {
	if strict && result.Has(key) {
		return newError(ErrPathExpansion, 0, 0, "", "duplicate key %q after path expansion", key)
	}
	result.Set(key, val)
	return nil
}
