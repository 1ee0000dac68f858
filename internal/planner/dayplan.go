package planner

import (
	"fmt"
	"time"

	"github.com/wanderplan/itinerary/internal/domain"
)

// PlanRequest is everything DayPlanBuilder needs to lay out a trip.
type PlanRequest struct {
	Destination string
	Dates       []time.Time
	Style       domain.VacationStyle
	Pool        []domain.Activity
}

// BuildDays returns one Day per date in req.Dates, numbered from 1.
// Each day gets ActivityDensity(req.Style) activities rotated out of the pool.
// Meals start empty.
func BuildDays(req PlanRequest) []domain.Day {
	target := ActivityDensity(req.Style)

	days := make([]domain.Day, len(req.Dates))
	for i, d := range req.Dates {
		days[i] = domain.Day{
			Date:       CalendarDate(d),
			Number:     i + 1,
			Activities: RotatePool(req.Pool, i, target),
			Meals:      map[domain.MealSlot]domain.Meal{},
			Notes:      DayNotes(i+1, req.Destination),
		}
	}
	return days
}

// DayNotes is the default free-text note for a generated day.
func DayNotes(number int, destination string) string {
	return fmt.Sprintf("Day %d of your trip to %s", number, destination)
}

// PlanTrip expands the trip's date range and builds its days.
// It returns domain.ErrInvalidRange when the range is inverted.
func PlanTrip(trip domain.Trip, pool []domain.Activity) ([]domain.Day, error) {
	dates, err := ExpandDateRange(trip.StartDate, trip.EndDate)
	if err != nil {
		return nil, err
	}
	return BuildDays(PlanRequest{
		Destination: trip.Destination,
		Dates:       dates,
		Style:       trip.Style,
		Pool:        pool,
	}), nil
}
