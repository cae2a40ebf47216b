package toon

// Decode parses a TOON document into the JSON-shaped value model: *Object,
// Array, Number, string, bool, or nil (spec.md §6). A nil opts applies the
// documented defaults (Indent 2, Strict true, ExpandPaths off) — mirroring
// the nil-means-defaults convention used throughout this package's options,
// since DecodeOptions{}'s zero-value Strict (false) would otherwise silently
// disable strict mode for a caller who just wanted the defaults.
func Decode(source string, opts *DecodeOptions) (any, error) {
	resolved := DefaultDecodeOptions()
	if opts != nil {
		resolved = normalizeDecodeOptions(*opts)
	}

	res, err := scan(source, resolved.Indent, resolved.Strict)
	if err != nil {
		return nil, err
	}

	value, dec, err := decodeDocument(res, resolved, Comma)
	if err != nil {
		return nil, err
	}

	if resolved.ExpandPaths == ExpandSafe {
		value, err = expandPaths(value, dec)
		if err != nil {
			return nil, err
		}
	}
	return value, nil
}

// DecodeBytes is a convenience wrapper around Decode for []byte input.
func DecodeBytes(source []byte, opts *DecodeOptions) (any, error) {
	return Decode(string(source), opts)
}

// Encode renders v as a TOON document (spec.md §6). v is first run through
// the Normalizer (normalize.go) to produce the JSON-shaped tree, then the
// Encoder chooses the most compact array form for every node. A nil opts
// applies the documented defaults (Indent 2, Comma delimiter, folding off).
func Encode(v any, opts *EncodeOptions) (string, error) {
	resolved := EncodeOptions{}
	if opts != nil {
		resolved = *opts
	}
	resolved = defaultEncodeOptions(resolved)

	normalized := normalize(v)
	if resolved.KeyFolding == FoldSafe {
		normalized = foldKeys(normalized, resolved.FlattenDepth)
	}

	w := newWriter(resolved.Indent)
	if err := encodeRoot(w, normalized, resolved.Delimiter); err != nil {
		return "", err
	}
	return w.String(), nil
}

// EncodeToBytes is a convenience wrapper around Encode returning []byte.
func EncodeToBytes(v any, opts *EncodeOptions) ([]byte, error) {
	s, err := Encode(v, opts)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}
