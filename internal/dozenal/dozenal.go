// internal/dozenal/dozenal.go

// Package dozenal converts between decimal integers and base-12 numeral
// strings using the digit alphabet 0-9, X (ten), E (eleven). The score
// tracker uses it for display formatting; all arithmetic elsewhere stays
// decimal.
package dozenal

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"
)

// Base is the dozenal radix.
const Base = 12

// ErrInvalidNumberFormat is wrapped by every conversion failure in this
// package. Conversions never return a partial value alongside it.
var ErrInvalidNumberFormat = errors.New("invalid number format")

// digits maps a digit value 0..11 to its canonical symbol.
const digits = "0123456789XE"

// altSymbols maps accepted alternate digit symbols to canonical form.
// Lookup is case-insensitive; the two Unicode dozenal numerals are the
// turned-two and turned-three used by the Dozenal Society.
var altSymbols = map[rune]rune{
	'x': 'X',
	'e': 'E',
	'a': 'X',
	'b': 'E',
	'↊': 'X',
	'↋': 'E',
}

// DecimalToDozenal formats n in base 12. Zero maps to "0"; negative
// values get a leading '-' over the magnitude's digits.
func DecimalToDozenal(n int64) string {
	if n == 0 {
		return "0"
	}

	negative := n < 0
	// Widen before negating so MinInt64 does not overflow.
	value := uint64(n)
	if negative {
		value = -uint64(n)
	}

	var out []byte
	for value > 0 {
		out = append(out, digits[value%Base])
		value /= Base
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	if negative {
		return "-" + string(out)
	}
	return string(out)
}

// IsValidDozenal reports whether s is a well-formed dozenal numeral:
// non-empty, an optional leading sign followed by at least one digit,
// every digit in {0-9, X, E}, and no whitespace.
func IsValidDozenal(s string) bool {
	if len(s) == 0 {
		return false
	}

	i := 0
	if s[0] == '-' || s[0] == '+' {
		i = 1
	}
	if i >= len(s) {
		return false
	}

	for ; i < len(s); i++ {
		ch := s[i]
		if ch >= '0' && ch <= '9' {
			continue
		}
		if ch == 'X' || ch == 'E' {
			continue
		}
		return false
	}
	return true
}

// NormalizeDozenal canonicalizes a dozenal numeral string: outer
// whitespace is trimmed, an optional sign extracted ('+' is dropped),
// alternate digit symbols are mapped to canonical X/E, leading zeros are
// stripped, and a zero magnitude collapses to "0" with no sign. Embedded
// whitespace or any unmapped symbol fails with ErrInvalidNumberFormat.
// The result always satisfies IsValidDozenal, and the function is
// idempotent on anything it accepts.
func NormalizeDozenal(s string) (string, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return "", fmt.Errorf("%w: dozenal string cannot be empty", ErrInvalidNumberFormat)
	}

	sign := ""
	if raw[0] == '-' || raw[0] == '+' {
		if raw[0] == '-' {
			sign = "-"
		}
		raw = raw[1:]
	}
	if raw == "" {
		return "", fmt.Errorf("%w: dozenal string missing digits", ErrInvalidNumberFormat)
	}

	var normalized strings.Builder
	for _, ch := range raw {
		if unicode.IsSpace(ch) {
			return "", fmt.Errorf("%w: dozenal string contains whitespace", ErrInvalidNumberFormat)
		}
		if ch >= '0' && ch <= '9' {
			normalized.WriteRune(ch)
			continue
		}
		if mapped, ok := altSymbols[unicode.ToLower(ch)]; ok {
			normalized.WriteRune(mapped)
			continue
		}
		return "", fmt.Errorf("%w: invalid dozenal digit symbol %q", ErrInvalidNumberFormat, ch)
	}

	// Strip leading zeros, keeping a single 0 for a zero magnitude.
	magnitude := strings.TrimLeft(normalized.String(), "0")
	if magnitude == "" {
		return "0", nil
	}
	return sign + magnitude, nil
}

// DozenalToDecimal parses a dozenal numeral into a decimal integer. The
// input is normalized first; magnitudes beyond the int64 range fail with
// ErrInvalidNumberFormat rather than wrapping around.
func DozenalToDecimal(s string) (int64, error) {
	canonical, err := NormalizeDozenal(s)
	if err != nil {
		return 0, err
	}

	negative := false
	if canonical[0] == '-' {
		negative = true
		canonical = canonical[1:]
	}

	var value uint64
	for i := 0; i < len(canonical); i++ {
		d := uint64(strings.IndexByte(digits, canonical[i]))
		if value > (^uint64(0)-d)/Base {
			return 0, fmt.Errorf("%w: result exceeds integer range", ErrInvalidNumberFormat)
		}
		value = value*Base + d
	}

	if negative {
		// Magnitude of MinInt64 is one past MaxInt64.
		if value > 1<<63 {
			return 0, fmt.Errorf("%w: result exceeds integer range", ErrInvalidNumberFormat)
		}
		if value == 1<<63 {
			return math.MinInt64, nil
		}
		return -int64(value), nil
	}
	if value > math.MaxInt64 {
		return 0, fmt.Errorf("%w: result exceeds integer range", ErrInvalidNumberFormat)
	}
	return int64(value), nil
}
