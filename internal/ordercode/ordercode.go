// Package ordercode renders the human-facing order number from a calendar
// date and a per-day sequence value.
package ordercode

import (
	"fmt"
	"time"
)

// Format returns the order number for the given date and sequence value in
// the form DDMMYY-NNNN. The sequence is zero-padded to four digits and widens
// past 9999 rather than truncating.
func Format(day time.Time, seq int) string {
	return fmt.Sprintf("%s-%04d", day.Format("020106"), seq)
}

// DateKey returns the storage key used for a date's sequence counter row.
func DateKey(day time.Time) string {
	return day.Format("2006-01-02")
}
