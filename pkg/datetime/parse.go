// Package datetime provides date parsing helpers for transaction data.
package datetime

import (
	"time"
)

const (
	// DateLayout is the format used for transaction dates.
	DateLayout = "2006-01-02"

	// MonthLayout is the format used for month bucketing and output.
	MonthLayout = "2006-01"
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseDate parses a transaction date, accepting either a plain date or a
// full RFC 3339 timestamp as emitted by bank exports.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, date)
}

// MonthKey returns the YYYY-MM bucket for a transaction date.
func MonthKey(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.Format(MonthLayout), nil
}

// OffsetMonth returns the string-formatted month offset by the given number
// of months relative to the given month.
func OffsetMonth(month string, months int) (string, error) {
	t, err := time.Parse(MonthLayout, month)
	if err != nil {
		return month, err
	}
	return t.AddDate(0, months, 0).Format(MonthLayout), nil
}
