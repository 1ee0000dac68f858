package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wanderplan/itinerary/internal/domain"
)

// Booking event types carried in the event_type header.
const (
	EventBookingCreated = "booking.created"
	EventBookingDeleted = "booking.deleted"
)

// MealAttacher is the slice of the meal service the consumer drives.
type MealAttacher interface {
	AttachBooking(ctx context.Context, tripID uuid.UUID, booking domain.Booking) (domain.Meal, bool, error)
	RemoveBooking(ctx context.Context, bookingID string) (int, error)
}

// BookingCreated is the payload of a booking.created event.
type BookingCreated struct {
	TripID  uuid.UUID      `json:"trip_id"`
	Booking domain.Booking `json:"booking"`
}

// BookingDeleted is the payload of a booking.deleted event.
type BookingDeleted struct {
	BookingID string `json:"booking_id"`
}

// BookingHandler applies booking events to trip meals.
type BookingHandler struct {
	meals  MealAttacher
	logger *slog.Logger
}

// NewBookingHandler constructs a handler backed by the provided meal service.
func NewBookingHandler(meals MealAttacher, logger *slog.Logger) *BookingHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookingHandler{meals: meals, logger: logger}
}

// Handle dispatches msg by event type. Unknown event types are ignored.
func (h *BookingHandler) Handle(ctx context.Context, msg Message) error {
	switch msg.EventType {
	case EventBookingCreated:
		var ev BookingCreated
		if err := json.Unmarshal(msg.Payload, &ev); err != nil {
			return fmt.Errorf("consumer.BookingHandler.Handle: %w: %v", domain.ErrValidation, err)
		}
		if ev.TripID == uuid.Nil {
			return fmt.Errorf("consumer.BookingHandler.Handle: %w: trip_id is required", domain.ErrValidation)
		}
		meal, attached, err := h.meals.AttachBooking(ctx, ev.TripID, ev.Booking)
		if err != nil {
			return fmt.Errorf("consumer.BookingHandler.Handle: %w", err)
		}
		if !attached {
			h.logger.DebugContext(ctx, "booking skipped", "booking_id", ev.Booking.ID, "type", ev.Booking.Type)
			return nil
		}
		h.logger.InfoContext(ctx, "meal attached",
			"trip_id", ev.TripID, "booking_id", ev.Booking.ID, "day_id", meal.DayID, "meal_type", meal.Type)
		return nil

	case EventBookingDeleted:
		var ev BookingDeleted
		if err := json.Unmarshal(msg.Payload, &ev); err != nil {
			return fmt.Errorf("consumer.BookingHandler.Handle: %w: %v", domain.ErrValidation, err)
		}
		if ev.BookingID == "" {
			ev.BookingID = msg.Key
		}
		n, err := h.meals.RemoveBooking(ctx, ev.BookingID)
		if err != nil {
			return fmt.Errorf("consumer.BookingHandler.Handle: %w", err)
		}
		h.logger.InfoContext(ctx, "booking removed", "booking_id", ev.BookingID, "trips", n)
		return nil

	default:
		h.logger.DebugContext(ctx, "ignoring event", "event_type", msg.EventType)
		return nil
	}
}
