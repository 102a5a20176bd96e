package shared

import (
	"strconv"
	"time"
)

// The organization's fiscal year starts 1 October and is numbered in the
// Buddhist era. Core computation keys on the number only; the conversion
// lives here at the presentation boundary.
const buddhistEraOffset = 543

// FiscalYear returns the Buddhist-era fiscal year containing t.
func FiscalYear(t time.Time) int {
	year := t.Year()
	if t.Month() >= time.October {
		year++
	}
	return year + buddhistEraOffset
}

// ParseFiscalYear reads a fiscal-year query value, falling back when the
// value is absent or malformed. A zero fallback means "the current fiscal
// year".
func ParseFiscalYear(raw string, fallback int) int {
	if raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			return parsed
		}
	}
	if fallback > 0 {
		return fallback
	}
	return FiscalYear(time.Now())
}
