package handler

import (
	"errors"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/wanderplan/itinerary/internal/domain"
	"github.com/wanderplan/itinerary/internal/handler/gen"
)

// --- mapping helpers --------------------------------------------------------

func styleToDomain(s *gen.VacationStyle) domain.VacationStyle {
	if s == nil {
		return domain.VacationStyle{}
	}
	return domain.VacationStyle{Chillaxed: s.Chillaxed, Adventurous: s.Adventurous, Busy: s.Busy}
}

// bookingToDomain converts the generated Booking body. Cost arrives as either
// a JSON number or a string and is kept as text.
func bookingToDomain(b gen.Booking) (domain.Booking, error) {
	booking := domain.Booking{
		ID:           derefString(b.Id),
		Type:         b.Type,
		Title:        derefString(b.Title),
		Time:         derefString(b.Time),
		Date:         b.Date,
		Notes:        derefString(b.Notes),
		Location:     derefString(b.Location),
		Provider:     derefString(b.Provider),
		Confirmation: derefString(b.Confirmation),
	}
	if b.Cost != nil {
		raw, err := b.Cost.MarshalJSON()
		if err != nil {
			return domain.Booking{}, err
		}
		if err := booking.Cost.UnmarshalJSON(raw); err != nil {
			return domain.Booking{}, errors.New("cost must be a number or a string")
		}
	}
	return booking, nil
}

func tripToResponse(t domain.Trip) gen.Trip {
	days := make([]gen.Day, len(t.Days))
	for i, d := range t.Days {
		days[i] = dayToResponse(d)
	}
	return gen.Trip{
		Id:          t.ID,
		Destination: t.Destination,
		StartDate:   openapi_types.Date{Time: t.StartDate},
		EndDate:     openapi_types.Date{Time: t.EndDate},
		Style:       gen.VacationStyle{Chillaxed: t.Style.Chillaxed, Adventurous: t.Style.Adventurous, Busy: t.Style.Busy},
		StyleName:   t.Style.Name(),
		Days:        days,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// tripToSummary is a list entry: the trip without its days.
func tripToSummary(t domain.Trip) gen.TripSummary {
	return gen.TripSummary{
		Id:          t.ID,
		Destination: t.Destination,
		StartDate:   openapi_types.Date{Time: t.StartDate},
		EndDate:     openapi_types.Date{Time: t.EndDate},
		StyleName:   t.Style.Name(),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func dayToResponse(d domain.Day) gen.Day {
	activities := make([]gen.Activity, len(d.Activities))
	for i, a := range d.Activities {
		activities[i] = gen.Activity{
			Name:        a.Name,
			Time:        a.Time,
			Description: optionalString(a.Description),
			Location:    optionalString(a.Location),
		}
	}
	meals := make(map[string]gen.Meal, len(d.Meals))
	for slot, m := range d.Meals {
		meals[string(slot)] = mealToResponse(m)
	}
	return gen.Day{
		Id:         d.ID,
		Date:       openapi_types.Date{Time: d.Date},
		DayNumber:  d.Number,
		Activities: activities,
		Meals:      meals,
		Notes:      d.Notes,
	}
}

// mealToResponse renders unknown cuisine, price and date as JSON null.
func mealToResponse(m domain.Meal) gen.Meal {
	resp := gen.Meal{
		Id:          m.ID,
		DayId:       m.DayID,
		MealType:    string(m.Type),
		Restaurant:  m.Restaurant,
		Cuisine:     optionalString(m.Cuisine),
		PriceBucket: optionalString(string(m.Price)),
		Location:    optionalString(m.Location),
		Time:        optionalString(m.Time),
		Provider:    optionalString(m.Provider),
		Notes:       optionalString(m.Notes),
		BookingId:   optionalString(m.BookingID),
	}
	if !m.Date.IsZero() {
		resp.Date = &openapi_types.Date{Time: m.Date}
	}
	return resp
}

func statsToResponse(st domain.MealStats) gen.MealStats {
	counts := make(map[string]int, len(st.MealTypeCounts))
	for t, n := range st.MealTypeCounts {
		counts[string(t)] = n
	}
	top := make([]gen.CuisineCount, len(st.TopCuisines))
	for i, c := range st.TopCuisines {
		top[i] = gen.CuisineCount{Cuisine: c.Cuisine, Count: c.Count}
	}
	return gen.MealStats{
		TotalMeals:     st.TotalMeals,
		MealTypeCounts: counts,
		AverageCost:    st.AverageCost,
		TopCuisines:    top,
	}
}

// optionalString maps "" to nil so empty fields are omitted or rendered null.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
