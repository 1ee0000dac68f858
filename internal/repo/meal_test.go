package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/itinerary/internal/domain"
	"github.com/wanderplan/itinerary/internal/planner"
)

func TestMealRepo_Upsert(t *testing.T) {
	trips, meals := newRepos(t)
	ctx := context.Background()

	created, err := trips.Create(ctx, tripFixture(t))
	require.NoError(t, err)

	meal, ok := planner.BookingToMeal(domain.Booking{
		ID: "bk-1", Type: "restaurant", Title: "Cervejaria", Time: "20:00",
		Date: "2025-06-02", Cost: "40", Notes: "seafood platter",
	})
	require.True(t, ok)
	meal.DayID = created.Days[1].ID

	saved, err := meals.Upsert(ctx, meal)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.Equal(t, domain.MealDinner, saved.Type)
	assert.Equal(t, "Seafood", saved.Cuisine)
	assert.Equal(t, domain.PriceUpscale, saved.Price)
	assert.Equal(t, "bk-1", saved.BookingID)
	assert.Equal(t, "2025-06-02", saved.Date.Format(domain.DateLayout))

	got, err := trips.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cervejaria", got.Days[1].Meals[domain.MealDinner].Restaurant)
}

func TestMealRepo_Upsert_ReplacesSlot(t *testing.T) {
	trips, meals := newRepos(t)
	ctx := context.Background()

	created, err := trips.Create(ctx, tripFixture(t))
	require.NoError(t, err)
	dayID := created.Days[0].ID

	first, err := meals.Upsert(ctx, domain.Meal{DayID: dayID, Type: domain.MealBreakfast, Restaurant: "A"})
	require.NoError(t, err)
	second, err := meals.Upsert(ctx, domain.Meal{DayID: dayID, Type: domain.MealBreakfast, Restaurant: "B"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "same slot keeps its row")
	got, err := trips.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, got.Days[0].Meals, 1)
	assert.Equal(t, "B", got.Days[0].Meals[domain.MealBreakfast].Restaurant)
	assert.Empty(t, got.Days[0].Meals[domain.MealBreakfast].Cuisine)
	assert.True(t, got.Days[0].Meals[domain.MealBreakfast].Date.IsZero())
}

func TestMealRepo_Upsert_UnknownDay(t *testing.T) {
	_, meals := newRepos(t)

	_, err := meals.Upsert(context.Background(), domain.Meal{DayID: uuid.New(), Type: domain.MealLunch})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMealRepo_DeleteByBookingID(t *testing.T) {
	trips, meals := newRepos(t)
	ctx := context.Background()

	created, err := trips.Create(ctx, tripFixture(t))
	require.NoError(t, err)

	_, err = meals.Upsert(ctx, domain.Meal{DayID: created.Days[0].ID, Type: domain.MealLunch, BookingID: "bk-9"})
	require.NoError(t, err)
	_, err = meals.Upsert(ctx, domain.Meal{DayID: created.Days[2].ID, Type: domain.MealDinner, BookingID: "bk-9"})
	require.NoError(t, err)
	_, err = meals.Upsert(ctx, domain.Meal{DayID: created.Days[2].ID, Type: domain.MealLunch, BookingID: "other"})
	require.NoError(t, err)

	tripIDs, err := meals.DeleteByBookingID(ctx, "bk-9")

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{created.ID}, tripIDs)
	got, err := trips.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Days[0].Meals)
	assert.Len(t, got.Days[2].Meals, 1)

	tripIDs, err = meals.DeleteByBookingID(ctx, "bk-9")
	require.NoError(t, err)
	assert.Empty(t, tripIDs)
}
