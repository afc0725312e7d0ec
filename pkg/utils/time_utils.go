package utils

import "time"

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Monday midnight of the week containing t.
// Dashboard week buckets are Monday-based.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := MondayIndex(t.Weekday())
	return day.AddDate(0, 0, -offset)
}

// StartOfYear returns January 1st midnight of t's year.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// MondayIndex maps a weekday to the 0..6 index used by weekly series,
// where Monday is 0 and Sunday is 6.
func MondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}
