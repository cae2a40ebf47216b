package toon

import (
	"math"
	"strconv"
	"strings"
)

// normalizeSignedZero returns +0.0 when x's bit pattern equals -0.0, and x
// unchanged otherwise (spec.md §4.4).
func normalizeSignedZero(x float64) float64 {
	if x == 0 {
		return 0
	}
	return x
}

// formatFloat renders x as plain decimal with up to 16 significant digits
// and no exponent (spec.md §4.4). NaN and infinities are the caller's
// responsibility to have already normalized to null (the Normalizer does
// this before a float ever reaches here).
func formatFloat(x float64) string {
	x = normalizeSignedZero(x)
	if x == 0 {
		return "0"
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "0"
	}

	s := strconv.FormatFloat(x, 'g', 16, 64)
	if !strings.ContainsAny(s, "eE") {
		return trimTrailingZeros(s)
	}

	// The shortest/general form used an exponent; re-render with enough
	// fractional digits to round-trip and no exponent.
	absLog := math.Log10(math.Abs(x))
	var fracDigits int
	if math.Abs(x) < 1 {
		fracDigits = int(math.Max(0, 15-math.Floor(absLog)))
	} else {
		fracDigits = 15
	}
	s = strconv.FormatFloat(x, 'f', fracDigits, 64)
	return trimTrailingZeros(s)
}

func trimTrailingZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
