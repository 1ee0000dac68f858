package consumer

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/itinerary/internal/domain"
)

type mockMeals struct {
	AttachBookingFn func(ctx context.Context, tripID uuid.UUID, booking domain.Booking) (domain.Meal, bool, error)
	RemoveBookingFn func(ctx context.Context, bookingID string) (int, error)
}

var _ MealAttacher = (*mockMeals)(nil)

func (m *mockMeals) AttachBooking(ctx context.Context, tripID uuid.UUID, booking domain.Booking) (domain.Meal, bool, error) {
	return m.AttachBookingFn(ctx, tripID, booking)
}

func (m *mockMeals) RemoveBooking(ctx context.Context, bookingID string) (int, error) {
	return m.RemoveBookingFn(ctx, bookingID)
}

func TestBookingHandler_Created(t *testing.T) {
	tripID := uuid.New()
	var got domain.Booking
	meals := &mockMeals{
		AttachBookingFn: func(_ context.Context, id uuid.UUID, b domain.Booking) (domain.Meal, bool, error) {
			assert.Equal(t, tripID, id)
			got = b
			return domain.Meal{Type: domain.MealDinner}, true, nil
		},
	}
	h := NewBookingHandler(meals, quietLogger())

	err := h.Handle(context.Background(), Message{
		EventType: EventBookingCreated,
		Payload: []byte(`{"trip_id":"` + tripID.String() + `","booking":{"id":"bk-9","type":"restaurant",` +
			`"title":"Chez Panisse","date":"2025-06-01","time":"19:30","cost":42.5}}`),
	})

	require.NoError(t, err)
	assert.Equal(t, "bk-9", got.ID)
	assert.Equal(t, "Chez Panisse", got.Title)
	assert.Equal(t, domain.Cost("42.5"), got.Cost)
}

func TestBookingHandler_CreatedSkipped(t *testing.T) {
	meals := &mockMeals{
		AttachBookingFn: func(context.Context, uuid.UUID, domain.Booking) (domain.Meal, bool, error) {
			return domain.Meal{}, false, nil
		},
	}
	h := NewBookingHandler(meals, quietLogger())

	err := h.Handle(context.Background(), Message{
		EventType: EventBookingCreated,
		Payload:   []byte(`{"trip_id":"` + uuid.NewString() + `","booking":{"type":"flight"}}`),
	})

	require.NoError(t, err)
}

func TestBookingHandler_CreatedMissingTrip(t *testing.T) {
	h := NewBookingHandler(&mockMeals{}, quietLogger())

	err := h.Handle(context.Background(), Message{
		EventType: EventBookingCreated,
		Payload:   []byte(`{"booking":{"type":"restaurant"}}`),
	})

	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingHandler_CreatedServiceError(t *testing.T) {
	meals := &mockMeals{
		AttachBookingFn: func(context.Context, uuid.UUID, domain.Booking) (domain.Meal, bool, error) {
			return domain.Meal{}, false, domain.ErrNotFound
		},
	}
	h := NewBookingHandler(meals, quietLogger())

	err := h.Handle(context.Background(), Message{
		EventType: EventBookingCreated,
		Payload:   []byte(`{"trip_id":"` + uuid.NewString() + `","booking":{"type":"restaurant"}}`),
	})

	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingHandler_Deleted(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		key     string
		want    string
	}{
		{"id in payload", `{"booking_id":"bk-1"}`, "ignored", "bk-1"},
		{"id from key", `{}`, "bk-2", "bk-2"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got string
			meals := &mockMeals{
				RemoveBookingFn: func(_ context.Context, id string) (int, error) {
					got = id
					return 1, nil
				},
			}
			h := NewBookingHandler(meals, quietLogger())

			err := h.Handle(context.Background(), Message{
				EventType: EventBookingDeleted,
				Key:       tc.key,
				Payload:   []byte(tc.payload),
			})

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBookingHandler_DeletedError(t *testing.T) {
	meals := &mockMeals{
		RemoveBookingFn: func(context.Context, string) (int, error) {
			return 0, errors.New("db down")
		},
	}
	h := NewBookingHandler(meals, quietLogger())

	err := h.Handle(context.Background(), Message{EventType: EventBookingDeleted, Payload: []byte(`{"booking_id":"b"}`)})

	require.EqualError(t, err, "consumer.BookingHandler.Handle: db down")
}

func TestBookingHandler_UnknownEvent(t *testing.T) {
	h := NewBookingHandler(&mockMeals{}, quietLogger())

	require.NoError(t, h.Handle(context.Background(), Message{EventType: "booking.updated", Payload: []byte(`{}`)}))
}
