package planner_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/itinerary/internal/domain"
	"github.com/wanderplan/itinerary/internal/planner"
)

func daysFor(t *testing.T, start, end string) []domain.Day {
	t.Helper()
	dates, err := planner.ExpandDateRange(date(start), date(end))
	require.NoError(t, err)
	days := planner.BuildDays(planner.PlanRequest{Destination: "Rome", Dates: dates, Pool: poolOf(4)})
	for i := range days {
		days[i].ID = uuid.New()
	}
	return days
}

func TestMatchDay_Exact(t *testing.T) {
	days := daysFor(t, "2025-06-01", "2025-06-03")

	i := planner.MatchDay(days, date("2025-06-02"))

	require.Equal(t, 1, i)
	assert.Equal(t, 2, days[i].Number)
}

func TestMatchDay_IgnoresTimeOfDay(t *testing.T) {
	days := daysFor(t, "2025-06-01", "2025-06-03")

	i := planner.MatchDay(days, time.Date(2025, 6, 3, 21, 0, 0, 0, time.UTC))

	assert.Equal(t, 2, i)
}

func TestMatchDay_Nearest(t *testing.T) {
	days := daysFor(t, "2025-06-01", "2025-06-03")

	assert.Equal(t, 2, planner.MatchDay(days, date("2025-06-05")), "after the trip")
	assert.Equal(t, 0, planner.MatchDay(days, date("2025-05-20")), "before the trip")
}

func TestMatchDay_TieGoesToEarlierEntry(t *testing.T) {
	days := []domain.Day{
		{Number: 1, Date: date("2025-06-01")},
		{Number: 2, Date: date("2025-06-03")},
	}

	assert.Equal(t, 0, planner.MatchDay(days, date("2025-06-02")))
}

func TestMatchDay_Empty(t *testing.T) {
	assert.Equal(t, -1, planner.MatchDay(nil, date("2025-06-02")))
}

func TestAttachAndDetach(t *testing.T) {
	days := daysFor(t, "2025-06-01", "2025-06-02")

	meal, ok := planner.BookingToMeal(restaurantBooking())
	require.True(t, ok)

	i := planner.MatchDay(days, meal.Date)
	attached := planner.AttachMeal(&days[i], meal)

	assert.Equal(t, days[i].ID, attached.DayID)
	assert.Contains(t, days[i].Meals, domain.MealDinner)

	replacement := meal
	replacement.Restaurant = "Other Place"
	replacement.BookingID = "bk-2"
	planner.AttachMeal(&days[i], replacement)
	assert.Equal(t, "Other Place", days[i].Meals[domain.MealDinner].Restaurant)

	assert.Equal(t, 0, planner.DetachBooking(days, "bk-1"))
	assert.Equal(t, 1, planner.DetachBooking(days, "bk-2"))
	assert.Empty(t, days[i].Meals)
	assert.Equal(t, 0, planner.DetachBooking(days, ""))
}

func TestAttachMeal_FillsMissingDate(t *testing.T) {
	day := domain.Day{Date: date("2025-06-01")}

	got := planner.AttachMeal(&day, domain.Meal{Type: domain.MealLunch})

	assert.Equal(t, date("2025-06-01"), got.Date)
	assert.Len(t, day.Meals, 1)
}
