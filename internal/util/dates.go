package util

import "time"

// DateLayout is the ISO layout used for every date column in the database.
const DateLayout = "2006-01-02"

// MonthLayout is the display layout for delivery months, e.g. "Feb 2026".
const MonthLayout = "Jan 2006"

// MonthOptions returns month labels starting at the current month.
// count includes the current month, so 13 covers a rolling year.
func MonthOptions(count int) []string {
	now := time.Now()
	// Anchor to the first of the month so AddDate cannot skip short months.
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	months := make([]string, 0, count)
	for i := 0; i < count; i++ {
		months = append(months, first.AddDate(0, i, 0).Format(MonthLayout))
	}
	return months
}

// CurrentMonth returns the current month label.
func CurrentMonth() string {
	return time.Now().Format(MonthLayout)
}

// Today returns today's date in DateLayout.
func Today() string {
	return time.Now().Format(DateLayout)
}

// ValidDate reports whether s is a well-formed DateLayout date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
