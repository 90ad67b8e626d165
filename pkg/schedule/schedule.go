// Package schedule computes due-date sequences for installment groups.
package schedule

import "time"

// NextMonth moves a date forward one calendar month, keeping the day of the
// month. December rolls into January of the next year. Days 29-31 falling in
// a shorter month are normalized forward by time.Date (Jan 31 -> Mar 2/3);
// whether they should clamp to month-end instead is an open ambiguity, so the
// native behavior is kept rather than silently adjusted.
func NextMonth(d time.Time) time.Time {
	year, month, day := d.Date()
	if month == time.December {
		year++
		month = time.January
	} else {
		month++
	}
	return time.Date(year, month, day, 0, 0, 0, 0, d.Location())
}

// MonthlyDueDates returns count due dates starting at first, one calendar
// month apart. count below 1 yields an empty slice.
func MonthlyDueDates(first time.Time, count int) []time.Time {
	if count < 1 {
		return nil
	}
	dates := make([]time.Time, 0, count)
	due := first
	for i := 0; i < count; i++ {
		if i > 0 {
			due = NextMonth(due)
		}
		dates = append(dates, due)
	}
	return dates
}
