// Package stepwindow defines day-bucketed step count windows as reported
// by a device pedometer: one non-negative total per local calendar day,
// midnight-to-midnight boundaries.
package stepwindow

import (
	"errors"
	"time"
)

// WindowDays is the sync window length: today plus the six preceding days.
const WindowDays = 7

var ErrNegativeStepCount = errors.New("step count cannot be negative")

type DayBucket struct {
	Date      time.Time `json:"date"`
	StepCount int       `json:"step_count"`
}

// DateOf truncates t to its local calendar day.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the calendar-day distance from a to b. Positive when
// b is after a, negative when b is before a. Computed on civil days, so DST
// shifts within a day do not skew the count.
func DaysBetween(a, b time.Time) int {
	ad := DateOf(a)
	bd := DateOf(b)
	days := 0
	for ad.Before(bd) {
		ad = ad.AddDate(0, 0, 1)
		days++
	}
	for bd.Before(DateOf(a)) {
		bd = bd.AddDate(0, 0, 1)
		days--
	}
	return days
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}

// Normalize validates and fills a reported window against the 7-day range
// ending on today. Buckets outside the range are dropped, duplicate dates
// keep the last report, and days the device reported nothing for become
// zero-count buckets rather than errors. The result is ordered oldest
// first. A negative count anywhere rejects the whole window: that is
// corrupt input, not a missing day.
func Normalize(reported []DayBucket, today time.Time) ([]DayBucket, error) {
	end := DateOf(today)
	start := end.AddDate(0, 0, -(WindowDays - 1))

	byDate := make(map[string]int, WindowDays)
	for _, b := range reported {
		if b.StepCount < 0 {
			return nil, ErrNegativeStepCount
		}
		d := DateOf(b.Date)
		if d.Before(start) || d.After(end) {
			continue
		}
		byDate[FormatDate(d)] = b.StepCount
	}

	window := make([]DayBucket, 0, WindowDays)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		window = append(window, DayBucket{Date: d, StepCount: byDate[FormatDate(d)]})
	}
	return window, nil
}

// FormatDate renders a date as it is stored in the daily_steps table.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
