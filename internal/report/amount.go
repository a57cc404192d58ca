package report

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultGroupingSeparators are stripped from monetary cells before parsing.
const DefaultGroupingSeparators = ","

const maxCount = 1 << 53

// ParseAmount normalizes a monetary cell such as "12,345.50" to 12345.5.
func ParseAmount(raw string) (float64, error) {
	return parseAmount(raw, DefaultGroupingSeparators)
}

func parseAmount(raw, separators string) (float64, error) {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(separators, r) {
			return -1
		}
		return r
	}, raw)
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" {
		return 0, &MalformedNumberError{Value: raw, Reason: "empty value"}
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, &MalformedNumberError{Value: raw, Reason: "not a decimal number"}
	}
	v := d.InexactFloat64()
	if math.IsInf(v, 0) {
		return 0, &MalformedNumberError{Value: raw, Reason: "out of range"}
	}
	return v, nil
}

// parseCount parses a non-negative whole number, tolerating grouping separators.
func parseCount(raw, separators string) (int, error) {
	v, err := parseAmount(raw, separators)
	if err != nil {
		return 0, err
	}
	if math.Trunc(v) != v {
		return 0, &MalformedNumberError{Value: raw, Reason: "not a whole number"}
	}
	if math.Abs(v) > maxCount {
		return 0, &MalformedNumberError{Value: raw, Reason: "out of range"}
	}
	return int(v), nil
}
