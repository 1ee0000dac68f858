package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wanderplan/itinerary/internal/domain"
	"github.com/wanderplan/itinerary/internal/observability"
	"github.com/wanderplan/itinerary/internal/planner"
	"github.com/wanderplan/itinerary/internal/repo"
)

// MealService turns restaurant bookings into meals on trip days and
// summarizes them. It holds both repos because attaching a meal needs the
// trip's days to find the target day.
type MealService struct {
	trips repo.TripRepo
	meals repo.MealRepo
}

// NewMealService constructs a MealService backed by the provided repos.
func NewMealService(trips repo.TripRepo, meals repo.MealRepo) *MealService {
	return &MealService{trips: trips, meals: meals}
}

// AttachBooking converts booking into a meal and stores it on the trip day
// whose date matches the booking, or the nearest day otherwise. The meal
// takes the slot of its meal type, replacing any earlier meal there.
//
// Non-restaurant bookings are not an error: the bool is false and nothing is
// stored. Returns domain.ErrValidation when the booking date is unreadable and
// domain.ErrNotFound when the trip does not exist.
func (s *MealService) AttachBooking(ctx context.Context, tripID uuid.UUID, booking domain.Booking) (domain.Meal, bool, error) {
	meal, ok := planner.BookingToMeal(booking)
	if !ok {
		observability.RecordBookingSkipped(booking.Type)
		return domain.Meal{}, false, nil
	}
	if meal.Date.IsZero() {
		return domain.Meal{}, false, fmt.Errorf("service.MealService.AttachBooking: %w: booking date %q is not a date",
			domain.ErrValidation, booking.Date)
	}

	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Meal{}, false, fmt.Errorf("service.MealService.AttachBooking: %w", err)
	}

	i := planner.MatchDay(trip.Days, meal.Date)
	if i < 0 {
		return domain.Meal{}, false, fmt.Errorf("service.MealService.AttachBooking: %w: trip has no days", domain.ErrValidation)
	}
	day := &trip.Days[i]
	meal = planner.AttachMeal(day, meal)

	saved, err := s.meals.Upsert(ctx, meal)
	if err != nil {
		return domain.Meal{}, false, fmt.Errorf("service.MealService.AttachBooking: %w", err)
	}
	if err := s.trips.Touch(ctx, tripID); err != nil {
		return domain.Meal{}, false, fmt.Errorf("service.MealService.AttachBooking: %w", err)
	}

	observability.RecordMealAttached(string(saved.Type), planner.SameDay(day.Date, meal.Date))
	return saved, true, nil
}

// RemoveBooking deletes every meal that came from bookingID and touches the
// trips that owned them. It returns how many trips were affected; a booking
// with no meals is not an error.
func (s *MealService) RemoveBooking(ctx context.Context, bookingID string) (int, error) {
	if bookingID == "" {
		return 0, fmt.Errorf("service.MealService.RemoveBooking: %w: booking id is required", domain.ErrValidation)
	}

	tripIDs, err := s.meals.DeleteByBookingID(ctx, bookingID)
	if err != nil {
		return 0, fmt.Errorf("service.MealService.RemoveBooking: %w", err)
	}
	for _, id := range tripIDs {
		if err := s.trips.Touch(ctx, id); err != nil {
			return 0, fmt.Errorf("service.MealService.RemoveBooking: %w", err)
		}
	}
	if len(tripIDs) > 0 {
		observability.RecordMealsDetached()
	}
	return len(tripIDs), nil
}

// Stats summarizes the meals of one trip.
func (s *MealService) Stats(ctx context.Context, tripID uuid.UUID) (domain.MealStats, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.MealStats{}, fmt.Errorf("service.MealService.Stats: %w", err)
	}
	return planner.AggregateMealStats(trip.Days), nil
}
