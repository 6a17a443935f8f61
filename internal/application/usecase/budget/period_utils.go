// Package budget contains budget-related use cases.
package budget

import (
	"time"
)

// MonthWindow returns the first and last day of the calendar month containing
// the given date, truncated to midnight UTC.
func MonthWindow(t time.Time) (start, end time.Time) {
	t = t.UTC()
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}

// MonthLabel formats a month for budget names and trend labels, e.g. "March 2025".
func MonthLabel(t time.Time) string {
	return t.UTC().Format("January 2006")
}
