package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wanderplan/itinerary/internal/domain"
	"github.com/wanderplan/itinerary/internal/export"
	"github.com/wanderplan/itinerary/internal/handler/gen"
)

// GetCalendar handles GET /trips/{id}/calendar.ics and serves the planned
// trip as an iCalendar attachment.
func (s *Server) GetCalendar(ctx context.Context, req gen.GetCalendarRequestObject) (gen.GetCalendarResponseObject, error) {
	trip, err := s.trips.GetByID(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetCalendar404JSONResponse(notFoundBody(tripNotFound)), nil
		}
		return nil, err
	}

	body := export.Calendar(trip, s.now())
	return gen.GetCalendar200TextcalendarResponse{
		Body:          strings.NewReader(body),
		ContentLength: int64(len(body)),
		Headers: gen.GetCalendar200ResponseHeaders{
			ContentDisposition: fmt.Sprintf("attachment; filename=%q", calendarFilename(trip.Destination)),
		},
	}, nil
}

// calendarFilename keeps letters and digits from the destination and joins
// the rest with dashes.
func calendarFilename(destination string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, destination)
	slug = strings.Trim(slug, "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	if slug == "" {
		slug = "trip"
	}
	return slug + ".ics"
}
