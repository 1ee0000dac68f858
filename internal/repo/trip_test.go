package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/itinerary/internal/domain"
	"github.com/wanderplan/itinerary/internal/planner"
	"github.com/wanderplan/itinerary/internal/repo"
	"github.com/wanderplan/itinerary/testutil"
)

// newRepos returns repos sharing one transaction that is rolled back when the
// test finishes.
func newRepos(t *testing.T) (repo.TripRepo, repo.MealRepo) {
	t.Helper()
	tx := testutil.NewTx(t)
	return repo.NewTripRepo(tx), repo.NewMealRepo(tx)
}

var testPool = []domain.Activity{
	{Name: "Walking tour", Time: "9:00 AM", Location: "Old Town"},
	{Name: "Museum", Time: "1:00 PM", Location: "Museum Quarter"},
	{Name: "Boat ride", Time: "5:00 PM", Location: "Harbour"},
	{Name: "Night market", Time: "8:00 PM", Location: "Market Street"},
}

// tripFixture returns a planned three-day trip ready to be stored.
func tripFixture(t *testing.T) domain.Trip {
	t.Helper()
	trip := domain.Trip{
		Destination: "Lisbon",
		StartDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		Style:       domain.VacationStyle{Adventurous: true},
	}
	days, err := planner.PlanTrip(trip, testPool)
	require.NoError(t, err)
	trip.Days = days
	return trip
}

func TestTripRepo_Create(t *testing.T) {
	trips, _ := newRepos(t)
	ctx := context.Background()

	input := tripFixture(t)
	got, err := trips.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, "Lisbon", got.Destination)
	assert.True(t, got.StartDate.Equal(input.StartDate))
	assert.True(t, got.EndDate.Equal(input.EndDate))
	assert.True(t, got.Style.Adventurous)
	assert.False(t, got.CreatedAt.IsZero())

	require.Len(t, got.Days, 3)
	for i, d := range got.Days {
		assert.NotEqual(t, uuid.Nil, d.ID)
		assert.Equal(t, got.ID, d.TripID)
		assert.Equal(t, i+1, d.Number)
		assert.Equal(t, input.Days[i].Activities, d.Activities)
	}
}

func TestTripRepo_GetByID(t *testing.T) {
	trips, _ := newRepos(t)
	ctx := context.Background()

	created, err := trips.Create(ctx, tripFixture(t))
	require.NoError(t, err)

	got, err := trips.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	require.Len(t, got.Days, 3)
	assert.Equal(t, "2025-06-02", got.Days[1].Date.Format(domain.DateLayout))
	assert.Equal(t, created.Days[1].Notes, got.Days[1].Notes)
	assert.Empty(t, got.Days[0].Meals)
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	trips, _ := newRepos(t)

	_, err := trips.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_ListPaged(t *testing.T) {
	trips, _ := newRepos(t)
	ctx := context.Background()

	first := tripFixture(t)
	first.Destination = "First"
	second := tripFixture(t)
	second.Destination = "Second"
	second.StartDate = second.StartDate.AddDate(1, 0, 0)
	second.EndDate = second.EndDate.AddDate(1, 0, 0)

	_, err := trips.Create(ctx, first)
	require.NoError(t, err)
	_, err = trips.Create(ctx, second)
	require.NoError(t, err)

	page, total, err := trips.ListPaged(ctx, domain.PageRequest{Page: 1, Limit: 100})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, total, int64(2))
	var names []string
	for _, tr := range page {
		names = append(names, tr.Destination)
		assert.Nil(t, tr.Days, "list does not load days")
	}
	assert.Contains(t, names, "First")
	assert.Contains(t, names, "Second")
}

func TestTripRepo_ReplacePlans(t *testing.T) {
	trips, meals := newRepos(t)
	ctx := context.Background()

	created, err := trips.Create(ctx, tripFixture(t))
	require.NoError(t, err)
	_, err = meals.Upsert(ctx, domain.Meal{DayID: created.Days[0].ID, Type: domain.MealLunch, Restaurant: "Kept"})
	require.NoError(t, err)

	style := domain.VacationStyle{Chillaxed: true}
	replanned := planner.BuildDays(planner.PlanRequest{
		Destination: created.Destination,
		Dates:       []time.Time{created.StartDate, created.StartDate.AddDate(0, 0, 1), created.EndDate},
		Style:       style,
		Pool:        testPool,
	})
	require.NoError(t, trips.ReplacePlans(ctx, created.ID, style, replanned))

	got, err := trips.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.Style.Chillaxed)
	assert.False(t, got.Style.Adventurous)
	for _, d := range got.Days {
		assert.Len(t, d.Activities, planner.ChillaxedActivities)
	}
	assert.Equal(t, "Kept", got.Days[0].Meals[domain.MealLunch].Restaurant)
}

func TestTripRepo_ReplacePlans_NotFound(t *testing.T) {
	trips, _ := newRepos(t)

	err := trips.ReplacePlans(context.Background(), uuid.New(), domain.VacationStyle{}, nil)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Touch(t *testing.T) {
	trips, _ := newRepos(t)
	ctx := context.Background()

	created, err := trips.Create(ctx, tripFixture(t))
	require.NoError(t, err)

	require.NoError(t, trips.Touch(ctx, created.ID))
	assert.ErrorIs(t, trips.Touch(ctx, uuid.New()), domain.ErrNotFound)
}

func TestTripRepo_Delete(t *testing.T) {
	trips, _ := newRepos(t)
	ctx := context.Background()

	created, err := trips.Create(ctx, tripFixture(t))
	require.NoError(t, err)

	require.NoError(t, trips.Delete(ctx, created.ID))

	_, err = trips.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, trips.Delete(ctx, created.ID), domain.ErrNotFound)
}
