package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/itinerary/internal/domain"
	"github.com/wanderplan/itinerary/internal/planner"
	"github.com/wanderplan/itinerary/internal/service"
)

var testPool = []domain.Activity{
	{Name: "Walking tour", Time: "9:00 AM", Location: "Old Town"},
	{Name: "Market", Time: "10:30 AM", Location: "Central Market"},
	{Name: "Museum", Time: "1:00 PM", Location: "Museum Quarter"},
	{Name: "Viewpoint", Time: "4:00 PM", Location: "Hilltop"},
	{Name: "Boat ride", Time: "5:30 PM", Location: "Harbour"},
	{Name: "Food crawl", Time: "7:00 PM", Location: "Night Market"},
}

func validTrip() domain.Trip {
	return domain.Trip{
		Destination: "Lisbon",
		StartDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		Style:       domain.VacationStyle{Adventurous: true},
	}
}

// echoRepo returns a repo whose Create hands back what it receives, with ids
// filled in the way the database would.
func echoRepo() *mockTripRepo {
	return &mockTripRepo{
		create: func(_ context.Context, t domain.Trip) (domain.Trip, error) {
			t.ID = uuid.New()
			for i := range t.Days {
				t.Days[i].ID = uuid.New()
				t.Days[i].TripID = t.ID
			}
			return t, nil
		},
	}
}

func TestTripService_Create_PlansDays(t *testing.T) {
	svc := service.NewTripService(echoRepo(), testPool, 30)

	got, err := svc.Create(context.Background(), validTrip())

	require.NoError(t, err)
	require.Len(t, got.Days, 3)
	for i, d := range got.Days {
		assert.Equal(t, i+1, d.Number)
		assert.Equal(t, validTrip().StartDate.AddDate(0, 0, i), d.Date)
		assert.Len(t, d.Activities, planner.AdventurousActivities)
		assert.Contains(t, d.Notes, "Lisbon")
	}
}

func TestTripService_Create_NormalizesDates(t *testing.T) {
	var stored domain.Trip
	r := echoRepo()
	inner := r.create
	r.create = func(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
		stored = trip
		return inner(ctx, trip)
	}
	svc := service.NewTripService(r, testPool, 30)

	trip := validTrip()
	trip.Destination = "  Porto  "
	trip.StartDate = trip.StartDate.Add(15 * time.Hour)

	_, err := svc.Create(context.Background(), trip)

	require.NoError(t, err)
	assert.Equal(t, "Porto", stored.Destination)
	assert.Equal(t, validTrip().StartDate, stored.StartDate)
}

func TestTripService_Create_MissingDestination(t *testing.T) {
	svc := service.NewTripService(echoRepo(), testPool, 30)

	trip := validTrip()
	trip.Destination = "   "

	_, err := svc.Create(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Create_MissingDates(t *testing.T) {
	svc := service.NewTripService(echoRepo(), testPool, 30)

	trip := validTrip()
	trip.EndDate = time.Time{}

	_, err := svc.Create(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Create_EndBeforeStart(t *testing.T) {
	svc := service.NewTripService(echoRepo(), testPool, 30)

	trip := validTrip()
	trip.EndDate = trip.StartDate.AddDate(0, 0, -1)

	_, err := svc.Create(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestTripService_Create_SameDayTrip(t *testing.T) {
	svc := service.NewTripService(echoRepo(), testPool, 30)

	trip := validTrip()
	trip.EndDate = trip.StartDate

	got, err := svc.Create(context.Background(), trip)

	require.NoError(t, err)
	assert.Len(t, got.Days, 1)
}

func TestTripService_Create_TooLong(t *testing.T) {
	svc := service.NewTripService(echoRepo(), testPool, 7)

	trip := validTrip()
	trip.EndDate = trip.StartDate.AddDate(0, 0, 7) // 8 days inclusive

	_, err := svc.Create(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "limit is 7")
}

func TestTripService_Create_NoCap(t *testing.T) {
	svc := service.NewTripService(echoRepo(), testPool, 0)

	trip := validTrip()
	trip.EndDate = trip.StartDate.AddDate(0, 3, 0)

	_, err := svc.Create(context.Background(), trip)

	assert.NoError(t, err)
}

func TestTripService_Create_RepoError(t *testing.T) {
	boom := errors.New("db down")
	r := &mockTripRepo{
		create: func(context.Context, domain.Trip) (domain.Trip, error) { return domain.Trip{}, boom },
	}
	svc := service.NewTripService(r, testPool, 30)

	_, err := svc.Create(context.Background(), validTrip())

	assert.ErrorIs(t, err, boom)
}

func TestTripService_GetByID_NotFound(t *testing.T) {
	r := &mockTripRepo{
		getByID: func(context.Context, uuid.UUID) (domain.Trip, error) { return domain.Trip{}, domain.ErrNotFound },
	}
	svc := service.NewTripService(r, testPool, 30)

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripService_ListPaged_NilBecomesEmpty(t *testing.T) {
	r := &mockTripRepo{
		listPaged: func(context.Context, domain.PageRequest) ([]domain.Trip, int64, error) { return nil, 0, nil },
	}
	svc := service.NewTripService(r, testPool, 30)

	trips, total, err := svc.ListPaged(context.Background(), domain.PageRequest{Page: 1, Limit: 20})

	require.NoError(t, err)
	assert.NotNil(t, trips)
	assert.Zero(t, total)
}

func TestTripService_Restyle(t *testing.T) {
	stored := validTrip()
	stored.ID = uuid.New()
	days, err := planner.PlanTrip(stored, testPool)
	require.NoError(t, err)
	stored.Days = days

	var replaced []domain.Day
	var replacedStyle domain.VacationStyle
	r := &mockTripRepo{
		getByID: func(context.Context, uuid.UUID) (domain.Trip, error) { return stored, nil },
		replacePlans: func(_ context.Context, _ uuid.UUID, style domain.VacationStyle, d []domain.Day) error {
			replacedStyle, replaced = style, d
			return nil
		},
	}
	svc := service.NewTripService(r, testPool, 30)

	_, err = svc.Restyle(context.Background(), stored.ID, domain.VacationStyle{Busy: true})

	require.NoError(t, err)
	assert.True(t, replacedStyle.Busy)
	require.Len(t, replaced, 3)
	for i, d := range replaced {
		assert.Equal(t, stored.Days[i].Date, d.Date)
		assert.Equal(t, i+1, d.Number)
		assert.Len(t, d.Activities, planner.BusyActivities)
	}
}

func TestTripService_Restyle_NotFound(t *testing.T) {
	r := &mockTripRepo{
		getByID: func(context.Context, uuid.UUID) (domain.Trip, error) { return domain.Trip{}, domain.ErrNotFound },
	}
	svc := service.NewTripService(r, testPool, 30)

	_, err := svc.Restyle(context.Background(), uuid.New(), domain.VacationStyle{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripService_Delete(t *testing.T) {
	var deleted uuid.UUID
	r := &mockTripRepo{
		delete: func(_ context.Context, id uuid.UUID) error { deleted = id; return nil },
	}
	svc := service.NewTripService(r, testPool, 30)
	id := uuid.New()

	require.NoError(t, svc.Delete(context.Background(), id))
	assert.Equal(t, id, deleted)
}
