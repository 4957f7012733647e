package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestDailyBuckets(t *testing.T) {
	today := date(2025, time.March, 10)
	days := DailyBuckets(today, 7)

	require.Len(t, days, 7)
	assert.Equal(t, today, days[0])
	assert.Equal(t, date(2025, time.March, 4), days[6])

	// Consecutive, one day apart
	for i := 1; i < len(days); i++ {
		assert.Equal(t, days[i-1].AddDate(0, 0, -1), days[i])
	}
}

func TestWeeklyBucketsStartOnMonday(t *testing.T) {
	// 2025-03-12 is a Wednesday
	weeks := WeeklyBuckets(date(2025, time.March, 12), 4)

	require.Len(t, weeks, 4)
	assert.Equal(t, date(2025, time.March, 10), weeks[0].Start)
	assert.Equal(t, date(2025, time.March, 16), weeks[0].End)

	for i, week := range weeks {
		assert.Equal(t, time.Monday, week.Start.Weekday(), "week %d", i)
		assert.Equal(t, time.Sunday, week.End.Weekday(), "week %d", i)
		assert.Equal(t, week.Start.AddDate(0, 0, 6), week.End, "week %d", i)
	}

	// Disjoint and consecutive: each week ends the day before the
	// previous one starts
	for i := 1; i < len(weeks); i++ {
		assert.Equal(t, weeks[i-1].Start.AddDate(0, 0, -1), weeks[i].End)
	}
}

func TestWeeklyBucketsOnMonday(t *testing.T) {
	// A Monday is its own week start
	monday := date(2025, time.March, 10)
	weeks := WeeklyBuckets(monday, 1)

	require.Len(t, weeks, 1)
	assert.Equal(t, monday, weeks[0].Start)
}

func TestWeeklyBucketsOnSunday(t *testing.T) {
	// Sunday belongs to the week that started six days earlier
	sunday := date(2025, time.March, 16)
	weeks := WeeklyBuckets(sunday, 1)

	require.Len(t, weeks, 1)
	assert.Equal(t, date(2025, time.March, 10), weeks[0].Start)
	assert.True(t, weeks[0].Contains(sunday))
}

func TestMonthlyBuckets(t *testing.T) {
	months := MonthlyBuckets(date(2025, time.March, 15), 6)

	require.Len(t, months, 6)
	assert.Equal(t, YearMonth{2025, time.March}, months[0])
	assert.Equal(t, YearMonth{2025, time.February}, months[1])
	assert.Equal(t, YearMonth{2025, time.January}, months[2])

	// Wraps into the previous year
	assert.Equal(t, YearMonth{2024, time.December}, months[3])
	assert.Equal(t, YearMonth{2024, time.November}, months[4])
	assert.Equal(t, YearMonth{2024, time.October}, months[5])
}

func TestYearMonthRange(t *testing.T) {
	start, end := YearMonth{2024, time.December}.Range()
	assert.Equal(t, date(2024, time.December, 1), start)
	assert.Equal(t, date(2025, time.January, 1), end)

	assert.Equal(t, "2024-12", YearMonth{2024, time.December}.String())
}

func TestDateRangeContains(t *testing.T) {
	r := DateRange{Start: date(2025, time.March, 10), End: date(2025, time.March, 16)}

	assert.True(t, r.Contains(date(2025, time.March, 10)))
	assert.True(t, r.Contains(time.Date(2025, time.March, 16, 23, 59, 0, 0, time.Local)))
	assert.False(t, r.Contains(date(2025, time.March, 9)))
	assert.False(t, r.Contains(date(2025, time.March, 17)))
}
