// Package dates holds the month arithmetic used by recurring transactions.
// Every occurrence date in the application is produced by ClampedDate so that
// a series billed on the 31st lands on the last day of shorter months instead
// of spilling into the next one.
package dates

import (
	"fmt"
	"time"
)

// occurrenceHour is the neutral time-of-day for generated dates. Noon UTC keeps
// the calendar date stable for clients in any timezone within +-11h.
const occurrenceHour = 12

// monthKeyLayout formats a date as "YYYY-MM".
const monthKeyLayout = "2006-01"

// LastDayOfMonth returns the number of days in the given month.
// Month values outside 1..12 are normalised (13 is January of the next year).
func LastDayOfMonth(year int, month time.Month) int {
	year, month = normalize(year, int(month))
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampedDate returns the date for preferredDay in the given month, clamped to
// the last valid day of that month, at noon UTC.
func ClampedDate(year int, month time.Month, preferredDay int) time.Time {
	year, month = normalize(year, int(month))
	day := preferredDay
	if day < 1 {
		day = 1
	}
	if last := LastDayOfMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, occurrenceHour, 0, 0, 0, time.UTC)
}

// AddMonths moves (year, month) forward by n months (backwards when n < 0).
func AddMonths(year int, month time.Month, n int) (int, time.Month) {
	return normalize(year, int(month)+n)
}

// MonthsBetween returns the number of whole calendar months from (fromYear, fromMonth)
// to (toYear, toMonth). Days are ignored.
func MonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

// DateOnly returns the calendar date of t (in t's own location) at noon UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), occurrenceHour, 0, 0, 0, time.UTC)
}

// BeforeDay reports whether a's calendar date is strictly before b's.
func BeforeDay(a, b time.Time) bool {
	return DateOnly(a).Before(DateOnly(b))
}

// MonthKey formats t as "YYYY-MM", the marker used for cancelled occurrences.
func MonthKey(t time.Time) string {
	return t.Format(monthKeyLayout)
}

// MonthKeyOf formats a (year, month) pair as "YYYY-MM".
func MonthKeyOf(year int, month time.Month) string {
	year, month = normalize(year, int(month))
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// ParseMonthKey parses a "YYYY-MM" key.
func ParseMonthKey(key string) (int, time.Month, error) {
	t, err := time.Parse(monthKeyLayout, key)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	return t.Year(), t.Month(), nil
}

// ParseDate parses an ISO date (YYYY-MM-DD) or an RFC3339 timestamp and returns its
// calendar date at noon UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return DateOnly(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return DateOnly(t), nil
}

func normalize(year, month int) (int, time.Month) {
	m := month - 1
	year += m / 12
	m %= 12
	if m < 0 {
		m += 12
		year--
	}
	return year, time.Month(m + 1)
}
