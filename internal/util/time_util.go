package util

import (
	"time"
)

const (
	dateLayout  = time.DateOnly
	monthLayout = "2006-01"
)

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// MonthStart returns the first day, in UTC, of the month monthsBack months
// before t.
func MonthStart(t time.Time, monthsBack int) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month()-time.Month(monthsBack), 1, 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

func MonthKey(t time.Time) string {
	return t.UTC().Format(monthLayout)
}
