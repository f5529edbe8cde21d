// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// ParseDate parses a naive "2006-01-02" calendar date.
func ParseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

// DaysUntilBirthday counts the days from now until the next occurrence of
// the birth date's month and day.
func DaysUntilBirthday(birthDate string, now time.Time) int {
	b, err := ParseDate(birthDate)
	if err != nil {
		return 0
	}
	today := BeginningOfDay(now)
	target := time.Date(today.Year(), b.Month(), b.Day(), 0, 0, 0, 0, today.Location())
	if target.Before(today) {
		target = time.Date(today.Year()+1, b.Month(), b.Day(), 0, 0, 0, 0, today.Location())
	}
	return DaysBetween(today, target)
}
