package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParsePriceCents parses a locale-formatted price string into cents.
// A comma decimal separator is accepted ("1500,00") alongside a dot.
// The parsed value must be a finite number strictly greater than zero.
func ParsePriceCents(text string) (int64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, fmt.Errorf("price is required")
	}

	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("price must be a number")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("price must be a finite number")
	}
	if v <= 0 {
		return 0, fmt.Errorf("price must be greater than zero")
	}

	return int64(math.Round(v * 100)), nil
}

// FormatPrice renders cents as a comma-decimal string ("1500,00"),
// matching the format the mobile client shows users.
func FormatPrice(cents int64) string {
	whole := cents / 100
	frac := cents % 100
	if frac < 0 {
		frac = -frac
	}
	return fmt.Sprintf("%d,%02d", whole, frac)
}
