package planner

import (
	"strings"
	"time"

	"github.com/wanderplan/itinerary/internal/domain"
)

// BookingToMeal converts a restaurant booking into a Meal. The second return
// value is false for any other booking type, in which case the Meal is zero.
//
// The meal is not attached to anything; use MatchDay and AttachMeal for that.
// A booking date that does not parse leaves Meal.Date zero.
func BookingToMeal(b domain.Booking) (domain.Meal, bool) {
	if !strings.EqualFold(strings.TrimSpace(b.Type), domain.BookingTypeRestaurant) {
		return domain.Meal{}, false
	}

	meal := domain.Meal{
		Type:       ClassifyMealType(b.Time),
		Restaurant: strings.TrimSpace(b.Title),
		Cuisine:    ExtractCuisine(b.Notes),
		Location:   b.Location,
		Price:      CostToPriceBucket(string(b.Cost)),
		Time:       b.Time,
		Provider:   b.Provider,
		Notes:      b.Notes,
		BookingID:  b.ID,
	}
	if d, ok := ParseDate(b.Date); ok {
		meal.Date = d
	}
	return meal, true
}

// ParseDate reads a calendar date in "2006-01-02" form, also accepting a full
// RFC 3339 timestamp, whose time-of-day is dropped.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(domain.DateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return CalendarDate(t), true
	}
	return time.Time{}, false
}
