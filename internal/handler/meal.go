package handler

import (
	"context"
	"errors"

	"github.com/wanderplan/itinerary/internal/domain"
	"github.com/wanderplan/itinerary/internal/handler/gen"
)

// AttachBooking handles POST /trips/{id}/bookings.
// A restaurant booking becomes a meal on the matching day (201). Any other
// booking type is accepted and ignored (202 with attached=false).
func (s *Server) AttachBooking(ctx context.Context, req gen.AttachBookingRequestObject) (gen.AttachBookingResponseObject, error) {
	if req.Body == nil {
		return gen.AttachBooking400JSONResponse(requestBody("request body is required")), nil
	}
	booking, err := bookingToDomain(*req.Body)
	if err != nil {
		return gen.AttachBooking400JSONResponse(requestBody(err.Error())), nil
	}

	meal, attached, err := s.meals.AttachBooking(ctx, req.Id, booking)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return gen.AttachBooking404JSONResponse(notFoundBody(tripNotFound)), nil
		case errors.Is(err, domain.ErrValidation):
			return gen.AttachBooking422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}
	if !attached {
		return gen.AttachBooking202JSONResponse{Attached: false}, nil
	}

	resp := mealToResponse(meal)
	return gen.AttachBooking201JSONResponse{Attached: true, Meal: &resp}, nil
}

// RemoveBooking handles DELETE /bookings/{bookingId}. Removing a booking
// that no meal references is not an error.
func (s *Server) RemoveBooking(ctx context.Context, req gen.RemoveBookingRequestObject) (gen.RemoveBookingResponseObject, error) {
	n, err := s.meals.RemoveBooking(ctx, req.BookingId)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.RemoveBooking422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.RemoveBooking200JSONResponse{TripsUpdated: n}, nil
}

// GetMealStats handles GET /trips/{id}/meals/stats.
func (s *Server) GetMealStats(ctx context.Context, req gen.GetMealStatsRequestObject) (gen.GetMealStatsResponseObject, error) {
	stats, err := s.meals.Stats(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetMealStats404JSONResponse(notFoundBody(tripNotFound)), nil
		}
		return nil, err
	}

	return gen.GetMealStats200JSONResponse(statsToResponse(stats)), nil
}
