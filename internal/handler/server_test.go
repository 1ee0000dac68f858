package handler_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/itinerary/internal/domain"
	"github.com/wanderplan/itinerary/internal/handler"
	"github.com/wanderplan/itinerary/internal/handler/gen"
)

var _ gen.StrictServerInterface = (*handler.Server)(nil)

func TestServer_GetTrip_GeneratedResponses(t *testing.T) {
	fixture := plannedTrip()
	svc := &mockTripServicer{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			if id == fixture.ID {
				return fixture, nil
			}
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	srv := handler.NewServer(svc, nil, nil)

	got, err := srv.GetTrip(context.Background(), gen.GetTripRequestObject{Id: fixture.ID})
	require.NoError(t, err)
	ok, isOK := got.(gen.GetTrip200JSONResponse)
	require.True(t, isOK, "got %T", got)
	assert.Equal(t, fixture.ID, ok.Id)
	assert.Equal(t, "adventurous", ok.StyleName)
	require.Len(t, ok.Days, 2)
	assert.Equal(t, "Cervejaria Ramiro", ok.Days[0].Meals["dinner"].Restaurant)

	got, err = srv.GetTrip(context.Background(), gen.GetTripRequestObject{Id: uuid.New()})
	require.NoError(t, err)
	missing, isMissing := got.(gen.GetTrip404JSONResponse)
	require.True(t, isMissing, "got %T", got)
	assert.Equal(t, "not_found", missing.Error.Code)
}

func TestServer_AttachBooking_NilBody(t *testing.T) {
	srv := handler.NewServer(nil, &mockMealServicer{}, nil)

	got, err := srv.AttachBooking(context.Background(), gen.AttachBookingRequestObject{Id: uuid.New()})

	require.NoError(t, err)
	resp, ok := got.(gen.AttachBooking400JSONResponse)
	require.True(t, ok, "got %T", got)
	assert.Equal(t, "bad_request", resp.Error.Code)
}

func TestServer_RemoveBooking_UnexpectedErrorPassesThrough(t *testing.T) {
	meals := &mockMealServicer{
		removeBooking: func(context.Context, string) (int, error) { return 0, assert.AnError },
	}
	srv := handler.NewServer(nil, meals, nil)

	got, err := srv.RemoveBooking(context.Background(), gen.RemoveBookingRequestObject{BookingId: "bk-1"})

	assert.Nil(t, got)
	assert.ErrorIs(t, err, assert.AnError)
}
