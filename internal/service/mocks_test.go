package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/wanderplan/itinerary/internal/domain"
	"github.com/wanderplan/itinerary/internal/repo"
)

// mockTripRepo is a hand-written test double for repo.TripRepo.
// Each method is a function field; set only the ones a test needs.
type mockTripRepo struct {
	create       func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	listPaged    func(ctx context.Context, page domain.PageRequest) ([]domain.Trip, int64, error)
	replacePlans func(ctx context.Context, id uuid.UUID, style domain.VacationStyle, days []domain.Day) error
	touch        func(ctx context.Context, id uuid.UUID) error
	delete       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) ListPaged(ctx context.Context, page domain.PageRequest) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, page)
}
func (m *mockTripRepo) ReplacePlans(ctx context.Context, id uuid.UUID, style domain.VacationStyle, days []domain.Day) error {
	return m.replacePlans(ctx, id, style, days)
}
func (m *mockTripRepo) Touch(ctx context.Context, id uuid.UUID) error {
	return m.touch(ctx, id)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// mockMealRepo is a hand-written test double for repo.MealRepo.
type mockMealRepo struct {
	upsert            func(ctx context.Context, meal domain.Meal) (domain.Meal, error)
	deleteByBookingID func(ctx context.Context, bookingID string) ([]uuid.UUID, error)
}

func (m *mockMealRepo) Upsert(ctx context.Context, meal domain.Meal) (domain.Meal, error) {
	return m.upsert(ctx, meal)
}
func (m *mockMealRepo) DeleteByBookingID(ctx context.Context, bookingID string) ([]uuid.UUID, error) {
	return m.deleteByBookingID(ctx, bookingID)
}

// compile-time checks: the mocks must satisfy the repo interfaces.
var (
	_ repo.TripRepo = (*mockTripRepo)(nil)
	_ repo.MealRepo = (*mockMealRepo)(nil)
)
