package services

import (
	"fmt"
	"time"
)

// DateRange is a closed range of calendar days, [Start, End] inclusive.
// Both bounds are truncated to midnight local time.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls on a day inside the range.
func (r DateRange) Contains(t time.Time) bool {
	day := startOfDay(t)
	return !day.Before(r.Start) && !day.After(r.End)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DailyBuckets returns the last n calendar days, today first.
func DailyBuckets(today time.Time, n int) []time.Time {
	today = startOfDay(today)
	days := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, today.AddDate(0, 0, -i))
	}
	return days
}

// WeeklyBuckets returns the last n weeks as closed date ranges, current
// week first. Weeks start on Monday; the first range starts on the
// Monday of the current week.
func WeeklyBuckets(today time.Time, n int) []DateRange {
	today = startOfDay(today)
	// Monday-based weekday offset: Monday=0 ... Sunday=6
	weekday := (int(today.Weekday()) + 6) % 7

	weeks := make([]DateRange, 0, n)
	for i := 0; i < n; i++ {
		start := today.AddDate(0, 0, -(weekday + 7*i))
		weeks = append(weeks, DateRange{
			Start: start,
			End:   start.AddDate(0, 0, 6),
		})
	}
	return weeks
}

// YearMonth identifies one calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// String renders the month as "2006-01".
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// Range returns the half-open time span [first of month, first of next month).
func (ym YearMonth) Range() (time.Time, time.Time) {
	start := time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 1, 0)
}

// MonthlyBuckets returns the last n calendar months, current month
// first, wrapping across year boundaries.
func MonthlyBuckets(today time.Time, n int) []YearMonth {
	months := make([]YearMonth, 0, n)
	year, month := today.Year(), int(today.Month())
	for i := 0; i < n; i++ {
		m := month - i
		y := year
		for m <= 0 {
			m += 12
			y--
		}
		months = append(months, YearMonth{Year: y, Month: time.Month(m)})
	}
	return months
}
