package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/itinerary/internal/domain"
	"github.com/wanderplan/itinerary/internal/handler"
	"github.com/wanderplan/itinerary/internal/handler/gen"
)

// mockTripServicer is a test double for handler.TripServicer.
// Set only the method fields your test needs.
type mockTripServicer struct {
	create    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	listPaged func(ctx context.Context, page domain.PageRequest) ([]domain.Trip, int64, error)
	restyle   func(ctx context.Context, id uuid.UUID, style domain.VacationStyle) (domain.Trip, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripServicer) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) ListPaged(ctx context.Context, p domain.PageRequest) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockTripServicer) Restyle(ctx context.Context, id uuid.UUID, s domain.VacationStyle) (domain.Trip, error) {
	return m.restyle(ctx, id, s)
}
func (m *mockTripServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// mockMealServicer is a test double for handler.MealServicer.
type mockMealServicer struct {
	attachBooking func(ctx context.Context, tripID uuid.UUID, b domain.Booking) (domain.Meal, bool, error)
	removeBooking func(ctx context.Context, bookingID string) (int, error)
	stats         func(ctx context.Context, tripID uuid.UUID) (domain.MealStats, error)
}

func (m *mockMealServicer) AttachBooking(ctx context.Context, tripID uuid.UUID, b domain.Booking) (domain.Meal, bool, error) {
	return m.attachBooking(ctx, tripID, b)
}
func (m *mockMealServicer) RemoveBooking(ctx context.Context, bookingID string) (int, error) {
	return m.removeBooking(ctx, bookingID)
}
func (m *mockMealServicer) Stats(ctx context.Context, tripID uuid.UUID) (domain.MealStats, error) {
	return m.stats(ctx, tripID)
}

// compile-time checks: mocks must satisfy the handler interfaces.
var (
	_ handler.TripServicer = (*mockTripServicer)(nil)
	_ handler.MealServicer = (*mockMealServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks into its router, the
// same way cmd/api does.
func newHTTPHandler(trips handler.TripServicer, meals handler.MealServicer) http.Handler {
	return handler.NewServer(trips, meals, nil).Handler()
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf *bytes.Buffer
	switch b := body.(type) {
	case nil:
		buf = &bytes.Buffer{}
	case string:
		buf = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		buf = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, target, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) gen.ErrorResponse {
	t.Helper()
	var resp gen.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func plannedTrip() domain.Trip {
	tripID := uuid.New()
	day1 := uuid.New()
	return domain.Trip{
		ID:          tripID,
		Destination: "Lisbon",
		StartDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Style:       domain.VacationStyle{Adventurous: true},
		Days: []domain.Day{
			{
				ID: day1, TripID: tripID, Number: 1,
				Date:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				Activities: []domain.Activity{{Name: "Tram 28", Time: "9:00 AM"}},
				Meals: map[domain.MealSlot]domain.Meal{
					domain.MealDinner: {
						ID: uuid.New(), DayID: day1, Type: domain.MealDinner, Restaurant: "Cervejaria Ramiro",
						Cuisine: "Seafood", Price: domain.PriceModerate, Time: "20:00", BookingID: "bk-1",
						Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
					},
				},
				Notes: "Day 1 of your trip to Lisbon",
			},
			{
				ID: uuid.New(), TripID: tripID, Number: 2,
				Date:  time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
				Notes: "Day 2 of your trip to Lisbon",
			},
		},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}
