package planner

import "github.com/wanderplan/itinerary/internal/domain"

// AttachMeal stores meal in the slot named by its type, replacing whatever
// occupied that slot. A meal without a date takes the day's date.
func AttachMeal(day *domain.Day, meal domain.Meal) domain.Meal {
	if day.Meals == nil {
		day.Meals = map[domain.MealSlot]domain.Meal{}
	}
	meal.DayID = day.ID
	if meal.Date.IsZero() {
		meal.Date = day.Date
	}
	day.Meals[meal.Type] = meal
	return meal
}

// DetachBooking removes every meal whose booking reference equals bookingID
// from days and reports how many were removed. An empty id removes nothing.
func DetachBooking(days []domain.Day, bookingID string) int {
	if bookingID == "" {
		return 0
	}
	removed := 0
	for i := range days {
		for slot, m := range days[i].Meals {
			if m.BookingID == bookingID {
				delete(days[i].Meals, slot)
				removed++
			}
		}
	}
	return removed
}
