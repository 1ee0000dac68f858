// Package service contains the business logic of the itinerary API.
// Services validate input, run the planner, and orchestrate repo calls.
// No SQL lives here: services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wanderplan/itinerary/internal/domain"
	"github.com/wanderplan/itinerary/internal/observability"
	"github.com/wanderplan/itinerary/internal/planner"
	"github.com/wanderplan/itinerary/internal/repo"
)

// TripService plans and manages trips.
type TripService struct {
	repo    repo.TripRepo
	pool    []domain.Activity
	maxDays int
}

// NewTripService constructs a TripService. pool is the ordered activity pool
// the planner draws from; maxDays caps the trip length (0 disables the cap).
func NewTripService(r repo.TripRepo, pool []domain.Activity, maxDays int) *TripService {
	return &TripService{repo: r, pool: pool, maxDays: maxDays}
}

// Create validates the trip, generates its day plans and persists both.
// Returns domain.ErrValidation (or domain.ErrInvalidRange) for bad input.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	trip.Destination = strings.TrimSpace(trip.Destination)
	if err := s.validateTrip(trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	days, err := planner.PlanTrip(trip, s.pool)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	trip.StartDate = planner.CalendarDate(trip.StartDate)
	trip.EndDate = planner.CalendarDate(trip.EndDate)
	trip.Days = days

	created, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	observability.RecordDaysGenerated(trip.Style.Name(), len(created.Days))
	return created, nil
}

// GetByID returns a trip with its days and meals.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// ListPaged returns one page of trips and the total trip count.
// The slice is never nil.
func (s *TripService) ListPaged(ctx context.Context, page domain.PageRequest) ([]domain.Trip, int64, error) {
	trips, total, err := s.repo.ListPaged(ctx, page)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.ListPaged: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// Restyle re-plans every day of a trip for a new vacation style. Dates and
// meals stay as they are; activities and notes are regenerated.
func (s *TripService) Restyle(ctx context.Context, id uuid.UUID, style domain.VacationStyle) (domain.Trip, error) {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Restyle: %w", err)
	}

	dates := make([]time.Time, len(trip.Days))
	for i, d := range trip.Days {
		dates[i] = d.Date
	}
	days := planner.BuildDays(planner.PlanRequest{
		Destination: trip.Destination,
		Dates:       dates,
		Style:       style,
		Pool:        s.pool,
	})

	if err := s.repo.ReplacePlans(ctx, id, style, days); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Restyle: %w", err)
	}
	observability.RecordDaysGenerated(style.Name(), len(days))

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Restyle: %w", err)
	}
	return updated, nil
}

// Delete removes a trip along with its days and meals.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// validateTrip enforces the rules checked before planning:
//   - Destination must be non-empty.
//   - Both dates must be set; the range itself is checked by the planner.
//   - The trip may not span more than maxDays days.
func (s *TripService) validateTrip(trip domain.Trip) error {
	if trip.Destination == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if trip.StartDate.IsZero() || trip.EndDate.IsZero() {
		return fmt.Errorf("%w: start_date and end_date are required", domain.ErrValidation)
	}
	if n := planner.DaysBetween(trip.StartDate, trip.EndDate) + 1; s.maxDays > 0 && n > s.maxDays {
		return fmt.Errorf("%w: trip spans %d days, the limit is %d", domain.ErrValidation, n, s.maxDays)
	}
	return nil
}
