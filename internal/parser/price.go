package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// Markers used when a field has no matching element. Absence of a value is
// a normal outcome, not a lookup error.
const (
	DesignationFallback  = "N/A"
	AvailabilityFallback = "to be verified"
)

var priceJunk = regexp.MustCompile(`[^0-9,.]`)

// ParsePrice normalizes a localized price string ("1 234,56 €") into a
// decimal value. Everything but digits, comma and period is stripped, the
// comma is treated as the decimal separator. An unparsable string yields
// ok=false, never an error.
func ParsePrice(raw string) (float64, bool) {
	cleaned := priceJunk.ReplaceAllString(raw, "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	if cleaned == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || value < 0 {
		return 0, false
	}
	return value, true
}
