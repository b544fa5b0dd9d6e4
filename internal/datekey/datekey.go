package datekey

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the time layout matching a date key.
const Layout = "2006-01-02"

// Make formats a date key as YYYY-MM-DD. month is 0-based (0 = January).
// The caller is responsible for passing a day that exists in that month.
func Make(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month+1, day)
}

// MonthPrefix returns the YYYY-MM prefix shared by every key in the month.
// Matching by prefix only works because both parts are fixed width.
func MonthPrefix(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month+1)
}

// InMonth reports whether key belongs to the given 0-based month.
func InMonth(key string, year, month int) bool {
	return strings.HasPrefix(key, MonthPrefix(year, month))
}

// FromTime returns the key for the calendar day of t in t's location.
func FromTime(t time.Time) string {
	return Make(t.Year(), int(t.Month())-1, t.Day())
}

// Parse validates a key and returns midnight UTC of that day.
func Parse(key string) (time.Time, error) {
	t, err := time.Parse(Layout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", key, err)
	}
	return t, nil
}

// Shift moves a (year, 0-based month) pair by delta months, wrapping the year.
func Shift(year, month, delta int) (int, int) {
	total := year*12 + month + delta
	y, m := total/12, total%12
	if m < 0 {
		y--
		m += 12
	}
	return y, m
}

// DaysInMonth returns the number of days in the 0-based month.
func DaysInMonth(year, month int) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday the month starts on.
func FirstWeekday(year, month int) time.Weekday {
	return time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday()
}
