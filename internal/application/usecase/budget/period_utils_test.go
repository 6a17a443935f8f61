package budget

import (
	"testing"
	"time"
)

func TestMonthWindow(t *testing.T) {
	t.Run("covers the whole calendar month", func(t *testing.T) {
		start, end := MonthWindow(time.Date(2025, 3, 15, 18, 30, 0, 0, time.UTC))
		if !start.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected March 1 start, got %s", start)
		}
		if !end.Equal(time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected March 31 end, got %s", end)
		}
	})

	t.Run("handles February in a leap year", func(t *testing.T) {
		_, end := MonthWindow(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))
		if !end.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected February 29 end, got %s", end)
		}
	})

	t.Run("normalizes non-UTC input", func(t *testing.T) {
		loc := time.FixedZone("UTC+13", 13*60*60)
		start, _ := MonthWindow(time.Date(2025, 4, 1, 0, 30, 0, 0, loc))
		if !start.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected UTC month resolution, got %s", start)
		}
	})
}

func TestMonthLabel(t *testing.T) {
	if got := MonthLabel(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)); got != "March 2025" {
		t.Errorf("expected %q, got %q", "March 2025", got)
	}
}
