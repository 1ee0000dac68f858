// Package handler implements the HTTP handlers for the itinerary API.
// All handlers are methods on Server, which implements gen.StrictServerInterface
// (generated from api/openapi.yaml). Methods are split by resource into
// trip.go, meal.go and calendar.go.
package handler

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/wanderplan/itinerary/api"
	"github.com/wanderplan/itinerary/internal/domain"
	"github.com/wanderplan/itinerary/internal/handler/gen"
)

// TripServicer defines the trip operations the handlers depend on.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	ListPaged(ctx context.Context, page domain.PageRequest) ([]domain.Trip, int64, error)
	Restyle(ctx context.Context, id uuid.UUID, style domain.VacationStyle) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MealServicer defines the booking and meal operations the handlers depend on.
type MealServicer interface {
	AttachBooking(ctx context.Context, tripID uuid.UUID, booking domain.Booking) (domain.Meal, bool, error)
	RemoveBooking(ctx context.Context, bookingID string) (int, error)
	Stats(ctx context.Context, tripID uuid.UUID) (domain.MealStats, error)
}

// Server implements gen.StrictServerInterface for every endpoint.
type Server struct {
	trips  TripServicer
	meals  MealServicer
	logger *slog.Logger
	now    func() time.Time
}

var _ gen.StrictServerInterface = (*Server)(nil)

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default().
func NewServer(trips TripServicer, meals MealServicer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{trips: trips, meals: meals, logger: logger, now: time.Now}
}

// Handler wires the Server into the generated chi router. Malformed bodies and
// parameters rejected by the generated code, and unexpected service errors,
// are rendered as ErrorResponse JSON like every other failure.
// Cross-cutting middleware (request ID, logging, CORS) is applied by the caller.
func (s *Server) Handler() http.Handler {
	strict := gen.NewStrictHandlerWithOptions(s, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.responseError,
	})
	return gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		ErrorHandlerFunc: s.paramError,
	})
}

// GetHealth handles GET /healthz.
func (s *Server) GetHealth(_ context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	return gen.GetHealth200JSONResponse{Status: "ok"}, nil
}

// GetOpenAPI handles GET /openapi.yaml.
func (s *Server) GetOpenAPI(_ context.Context, _ gen.GetOpenAPIRequestObject) (gen.GetOpenAPIResponseObject, error) {
	return gen.GetOpenAPI200ApplicationyamlResponse{
		Body:          bytes.NewReader(api.OpenAPI),
		ContentLength: int64(len(api.OpenAPI)),
	}, nil
}
