package domain

import "time"

// MonthRange returns the half-open interval [start, end) covering one
// calendar month in UTC: the first instant of the month to the first
// instant of the next. December rolls over into January of the next
// year.
func MonthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	var end time.Time
	if month == 12 {
		end = time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	} else {
		end = time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	}
	return start, end
}

// MonthEnd returns the last instant of a month (last day, 23:59:59
// UTC), used by the monthly breakdown which filters with an inclusive
// end bound.
func MonthEnd(year, month int) time.Time {
	_, nextMonth := MonthRange(year, month)
	return nextMonth.Add(-time.Second)
}
