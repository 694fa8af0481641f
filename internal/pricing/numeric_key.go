// Package pricing derives numeric sort keys from free-text price fields.
// Prices are stored and displayed verbatim ("$1,000", "100 - 200", "₹999");
// the key exists only so that ordering behaves numerically instead of
// lexicographically.
package pricing

import (
	"strconv"
	"strings"
)

// NumericKey extracts the first number from price text and returns its
// value. Thousands separators inside the number are ignored and a single
// decimal point is honored. Text with no digits yields 0.
func NumericKey(priceText string) float64 {
	runes := []rune(priceText)

	start := -1
	for i, r := range runes {
		if isDigit(r) {
			start = i
			break
		}
	}
	if start == -1 {
		return 0
	}

	var b strings.Builder
	sawDot := false
	for i := start; i < len(runes); i++ {
		r := runes[i]
		switch {
		case isDigit(r):
			b.WriteRune(r)
		case r == ',' && i+1 < len(runes) && isDigit(runes[i+1]):
			// thousands separator
		case r == '.' && !sawDot && i+1 < len(runes) && isDigit(runes[i+1]):
			sawDot = true
			b.WriteRune(r)
		default:
			return parse(b.String())
		}
	}
	return parse(b.String())
}

func parse(digits string) float64 {
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0
	}
	return v
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
