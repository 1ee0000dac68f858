// Package domain contains the core data types for the itinerary service.
// This package has no I/O and is imported by every other internal package
// (planner, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date format used for day comparison and on the wire.
const DateLayout = "2006-01-02"

// VacationStyle is the set of travel-style flags chosen for a trip.
// At most one flag is expected to be set, but nothing enforces it; see
// planner.ActivityDensity for how ties are resolved.
type VacationStyle struct {
	Chillaxed   bool `json:"chillaxed"`
	Adventurous bool `json:"adventurous"`
	Busy        bool `json:"busy"`
}

// Name returns the label of the winning flag, or "default" when none is set.
func (v VacationStyle) Name() string {
	switch {
	case v.Busy:
		return "busy"
	case v.Adventurous:
		return "adventurous"
	case v.Chillaxed:
		return "chillaxed"
	default:
		return "default"
	}
}

// Trip is the top-level aggregate: a destination, an inclusive date range and
// the generated day-by-day plan. Days are owned by the trip.
type Trip struct {
	ID          uuid.UUID     `json:"id"`
	Destination string        `json:"destination"`
	StartDate   time.Time     `json:"start_date"`
	EndDate     time.Time     `json:"end_date"`
	Style       VacationStyle `json:"style"`
	Days        []Day         `json:"days"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Day is one calendar day within a trip.
// Number is 1-based and contiguous across the trip.
type Day struct {
	ID         uuid.UUID         `json:"id"`
	TripID     uuid.UUID         `json:"trip_id"`
	Date       time.Time         `json:"date"`
	Number     int               `json:"day_number"`
	Activities []Activity        `json:"activities"`
	Meals      map[MealSlot]Meal `json:"meals"`
	Notes      string            `json:"notes"`
}

// Activity is a candidate entry from the activity pool. It has no identity
// beyond its position in the pool.
type Activity struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Time        string `json:"time" yaml:"time"`
	Location    string `json:"location" yaml:"location"`
}
