package dbtime

import "time"

// AddMonths moves d forward by n calendar months. When the target month is
// shorter than d's day-of-month the result is clamped to the last day of that month.
func AddMonths(d Date, n int) Date {
	y, m, day := d.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	if last := daysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return NewDate(first.Year(), first.Month(), day)
}

func AddYears(d Date, n int) Date { return AddMonths(d, 12*n) }

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
