package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// ErrEmpty is returned when a numeric field holds nothing but whitespace.
var ErrEmpty = errors.New("empty value")

func normalizeNumber(raw string) (string, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if cleaned == "" {
		return "", ErrEmpty
	}
	return cleaned, nil
}

// ParseNumber parses a decimal form value. Thousands separators are ignored;
// NaN and infinities are rejected.
func ParseNumber(raw string) (float64, error) {
	cleaned, err := normalizeNumber(raw)
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", raw, err)
	}
	if !mathutil.IsFinite(value) {
		return 0, fmt.Errorf("invalid number %q: not finite", raw)
	}
	return value, nil
}

// ParseCount parses an integer form value such as a quantity or a period
// count. Thousands separators are ignored; fractions are rejected.
func ParseCount(raw string) (int, error) {
	cleaned, err := normalizeNumber(raw)
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", raw, err)
	}
	return value, nil
}
