// Package numeric parses the number literals used throughout recipe text:
// integers ("3"), decimals ("0.5") and fractions ("1/2", "1.5/2").
package numeric

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	cberrors "github.com/mchmarny/cookbook/pkg/errors"
)

// Error types for number parsing failures.
var (
	ErrEmpty          = errors.New("numeric value is empty")
	ErrInvalid        = errors.New("numeric value is not a number")
	ErrDivisionByZero = errors.New("fraction denominator is zero")
)

// Parse parses "n", "n.n" or "a/b" into a float64. Either side of a fraction
// may itself be a decimal. Failures are NUMERIC structured errors wrapping one
// of the sentinel errors above.
func Parse(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, numericError(s, ErrEmpty)
	}

	num, den, isFraction := strings.Cut(trimmed, "/")
	if !isFraction {
		v, err := parseFloat(trimmed)
		if err != nil {
			return 0, numericError(s, err)
		}
		return v, nil
	}

	n, err := parseFloat(num)
	if err != nil {
		return 0, numericError(s, err)
	}
	d, err := parseFloat(den)
	if err != nil {
		return 0, numericError(s, err)
	}
	if d == 0 {
		return 0, numericError(s, ErrDivisionByZero)
	}
	return n / d, nil
}

// ParseOptional parses s when present. A nil input yields (nil, nil) so optional
// fields can be omitted without being mistaken for a parse failure.
func ParseOptional(s *string) (*float64, error) {
	if s == nil {
		return nil, nil
	}
	v, err := Parse(*s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// quantityPattern splits a raw quantity into its leading amount and the rest.
// The amount is a mixed number ("1 1/2"), a single number or fraction, or a
// range of those ("2-3"). The unit may follow without a space ("500g").
var quantityPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?\s+\d+(?:\.\d+)?/\d+(?:\.\d+)?|[\d./]+(?:\s*[-–]\s*[\d./]+)?)\s*(.*)$`)

// SplitQuantity extracts the numeric amount and the raw unit text from an
// ingredient quantity such as "500 g", "500g", "1 1/2 cups" or "2-3 cloves".
// For ranges the high end is used. The boolean is false when the quantity
// does not start with a usable number.
func SplitQuantity(raw string) (float64, string, bool) {
	m := quantityPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return 0, "", false
	}
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(m[2]), ","))
	if strings.HasPrefix(rest, "-") || strings.HasPrefix(rest, "–") {
		return 0, "", false
	}
	v, err := amount(m[1])
	if err != nil {
		return 0, "", false
	}
	return v, rest, true
}

// QuantityValue returns the numeric amount of a raw ingredient quantity.
// See SplitQuantity.
func QuantityValue(raw string) (float64, bool) {
	v, _, ok := SplitQuantity(raw)
	return v, ok
}

func amount(s string) (float64, error) {
	if i := strings.LastIndexAny(s, "-–"); i > 0 {
		_, size := utf8.DecodeRuneInString(s[i:])
		s = s[i+size:]
	}
	whole, frac, mixed := strings.Cut(strings.TrimSpace(s), " ")
	if !mixed {
		return Parse(s)
	}
	w, err := Parse(whole)
	if err != nil {
		return 0, err
	}
	f, err := Parse(frac)
	if err != nil {
		return 0, err
	}
	return w + f, nil
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmpty
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	return v, nil
}

func numericError(input string, cause error) error {
	return cberrors.WrapWithContext(cberrors.ErrCodeNumeric,
		fmt.Sprintf("invalid number %q", input), cause,
		map[string]any{"input": input})
}
