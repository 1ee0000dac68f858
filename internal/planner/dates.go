// Package planner is the itinerary generation and meal-day matching engine.
// Every function here is a pure transformation of its inputs: no I/O, no
// logging, no shared state. Persistence is the caller's job.
package planner

import (
	"fmt"
	"time"

	"github.com/wanderplan/itinerary/internal/domain"
)

// CalendarDate drops the time-of-day and zone from t, returning midnight UTC
// of the same calendar day as seen in t's own location.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween returns the number of whole calendar days from start to end.
// It is negative when end precedes start. Unix seconds are used instead of
// time.Duration, which saturates for spans over roughly 292 years.
func DaysBetween(start, end time.Time) int {
	s, e := CalendarDate(start), CalendarDate(end)
	return int((e.Unix() - s.Unix()) / secondsPerDay)
}

// ExpandDateRange returns every calendar date from start to end inclusive, in
// order. It returns domain.ErrInvalidRange when end precedes start.
func ExpandDateRange(start, end time.Time) ([]time.Time, error) {
	n := DaysBetween(start, end)
	if n < 0 {
		return nil, fmt.Errorf("planner.ExpandDateRange: %s..%s: %w",
			start.Format(domain.DateLayout), end.Format(domain.DateLayout), domain.ErrInvalidRange)
	}

	first := CalendarDate(start)
	dates := make([]time.Time, n+1)
	for i := range dates {
		dates[i] = first.AddDate(0, 0, i)
	}
	return dates, nil
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Format(domain.DateLayout) == b.Format(domain.DateLayout)
}
