package handler

import (
	"context"
	"errors"

	"github.com/wanderplan/itinerary/internal/domain"
	"github.com/wanderplan/itinerary/internal/handler/gen"
)

const tripNotFound = "trip not found"

// CreateTrip handles POST /trips. The trip's days are planned before it is stored.
func (s *Server) CreateTrip(ctx context.Context, req gen.CreateTripRequestObject) (gen.CreateTripResponseObject, error) {
	if req.Body == nil {
		return gen.CreateTrip400JSONResponse(requestBody("request body is required")), nil
	}

	created, err := s.trips.Create(ctx, domain.Trip{
		Destination: req.Body.Destination,
		StartDate:   req.Body.StartDate.Time,
		EndDate:     req.Body.EndDate.Time,
		Style:       styleToDomain(req.Body.Style),
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateTrip422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.CreateTrip201JSONResponse{
		Body:    tripToResponse(created),
		Headers: gen.CreateTrip201ResponseHeaders{Location: "/trips/" + created.ID.String()},
	}, nil
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(ctx context.Context, req gen.ListTripsRequestObject) (gen.ListTripsResponseObject, error) {
	page := domain.NewPageRequest(req.Params.Page, req.Params.Limit)
	trips, total, err := s.trips.ListPaged(ctx, page)
	if err != nil {
		return nil, err
	}

	data := make([]gen.TripSummary, len(trips))
	for i, t := range trips {
		data[i] = tripToSummary(t)
	}
	return gen.ListTrips200JSONResponse{
		Data: data,
		Pagination: gen.Pagination{
			Page:       page.Page,
			Limit:      page.Limit,
			Total:      int(total),
			TotalPages: page.TotalPages(total),
		},
	}, nil
}

// GetTrip handles GET /trips/{id}.
func (s *Server) GetTrip(ctx context.Context, req gen.GetTripRequestObject) (gen.GetTripResponseObject, error) {
	trip, err := s.trips.GetByID(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetTrip404JSONResponse(notFoundBody(tripNotFound)), nil
		}
		return nil, err
	}

	return gen.GetTrip200JSONResponse(tripToResponse(trip)), nil
}

// RestyleTrip handles PUT /trips/{id}/style. Activities are re-planned for
// the new style; meals are kept.
func (s *Server) RestyleTrip(ctx context.Context, req gen.RestyleTripRequestObject) (gen.RestyleTripResponseObject, error) {
	if req.Body == nil {
		return gen.RestyleTrip400JSONResponse(requestBody("request body is required")), nil
	}

	trip, err := s.trips.Restyle(ctx, req.Id, styleToDomain(&req.Body.Style))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.RestyleTrip404JSONResponse(notFoundBody(tripNotFound)), nil
		}
		return nil, err
	}

	return gen.RestyleTrip200JSONResponse(tripToResponse(trip)), nil
}

// DeleteTrip handles DELETE /trips/{id}.
func (s *Server) DeleteTrip(ctx context.Context, req gen.DeleteTripRequestObject) (gen.DeleteTripResponseObject, error) {
	if err := s.trips.Delete(ctx, req.Id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteTrip404JSONResponse(notFoundBody(tripNotFound)), nil
		}
		return nil, err
	}

	return gen.DeleteTrip204Response{}, nil
}
