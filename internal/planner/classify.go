package planner

import (
	"math"
	"strconv"
	"strings"

	"github.com/wanderplan/itinerary/internal/domain"
)

// ClassifyMealType derives the meal type from a time string such as "09:30",
// "13:00:00" or "7:45 pm". Hours in [5,11) are breakfast, [11,16) lunch, and
// everything else, including empty or unparseable input, dinner.
func ClassifyMealType(clock string) domain.MealType {
	hour, ok := parseHour(clock)
	if !ok {
		return domain.MealDinner
	}
	switch {
	case hour >= 5 && hour < 11:
		return domain.MealBreakfast
	case hour >= 11 && hour < 16:
		return domain.MealLunch
	default:
		return domain.MealDinner
	}
}

// parseHour extracts a 0-23 hour from clock, honouring an AM/PM suffix.
func parseHour(clock string) (int, bool) {
	s := strings.ToLower(strings.TrimSpace(clock))
	if s == "" {
		return 0, false
	}

	meridiem := ""
	for _, suffix := range []string{"am", "pm", "a.m.", "p.m."} {
		if strings.HasSuffix(s, suffix) {
			meridiem = suffix[:1]
			s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
			break
		}
	}

	head, _, _ := strings.Cut(s, ":")
	hour, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0, false
	}

	switch meridiem {
	case "a":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour == 12 {
			hour = 0
		}
	case "p":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour != 12 {
			hour += 12
		}
	}

	if hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}

// CuisineKeyword maps a lowercase keyword to a cuisine label.
type CuisineKeyword struct {
	Keyword string
	Cuisine string
}

// CuisineKeywords is searched in order; the first keyword found in the notes
// decides the cuisine. Specific dishes come before generic venue words so that
// "ramen bar" is Japanese rather than a bar.
var CuisineKeywords = []CuisineKeyword{
	{"sushi", "Japanese"},
	{"ramen", "Japanese"},
	{"izakaya", "Japanese"},
	{"japanese", "Japanese"},
	{"pizza", "Italian"},
	{"pasta", "Italian"},
	{"trattoria", "Italian"},
	{"italian", "Italian"},
	{"taco", "Mexican"},
	{"burrito", "Mexican"},
	{"mexican", "Mexican"},
	{"dim sum", "Chinese"},
	{"dumpling", "Chinese"},
	{"chinese", "Chinese"},
	{"curry", "Indian"},
	{"tandoori", "Indian"},
	{"indian", "Indian"},
	{"pad thai", "Thai"},
	{"thai", "Thai"},
	{"vietnamese", "Vietnamese"},
	{"tapas", "Spanish"},
	{"paella", "Spanish"},
	{"spanish", "Spanish"},
	{"gyro", "Greek"},
	{"greek", "Greek"},
	{"mediterranean", "Mediterranean"},
	{"french", "French"},
	{"brasserie", "French"},
	{"bistro", "French"},
	{"steak", "Steakhouse"},
	{"seafood", "Seafood"},
	{"oyster", "Seafood"},
	{"bbq", "Barbecue"},
	{"barbecue", "Barbecue"},
	{"burger", "American"},
	{"diner", "American"},
	{"american", "American"},
	{"vegan", "Vegetarian"},
	{"vegetarian", "Vegetarian"},
	{"bakery", "Cafe"},
	{"coffee", "Cafe"},
	{"cafe", "Cafe"},
	{"café", "Cafe"},
}

// ExtractCuisine returns the cuisine of the first table keyword that appears
// in notes, case-insensitively, or "" when nothing matches.
func ExtractCuisine(notes string) string {
	return extractCuisine(notes, CuisineKeywords)
}

func extractCuisine(notes string, table []CuisineKeyword) string {
	lower := strings.ToLower(notes)
	if strings.TrimSpace(lower) == "" {
		return ""
	}
	for _, kw := range table {
		if strings.Contains(lower, kw.Keyword) {
			return kw.Cuisine
		}
	}
	return ""
}

// Price bucket thresholds, exclusive upper bounds.
const (
	budgetCeiling   = 15
	moderateCeiling = 35
	upscaleCeiling  = 60
)

// AmountToPriceBucket maps a numeric cost to its price bucket.
func AmountToPriceBucket(amount float64) domain.PriceBucket {
	switch {
	case math.IsNaN(amount) || math.IsInf(amount, 0):
		return domain.PriceNone
	case amount < budgetCeiling:
		return domain.PriceBudget
	case amount < moderateCeiling:
		return domain.PriceModerate
	case amount < upscaleCeiling:
		return domain.PriceUpscale
	default:
		return domain.PriceLuxury
	}
}

// CostToPriceBucket parses a textual cost ("34.99", " $20 ") and maps it to a
// price bucket. Empty or non-numeric input yields domain.PriceNone.
func CostToPriceBucket(cost string) domain.PriceBucket {
	s := strings.TrimSpace(cost)
	s = strings.TrimSpace(strings.TrimPrefix(s, "$"))
	if s == "" {
		return domain.PriceNone
	}
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return domain.PriceNone
	}
	return AmountToPriceBucket(amount)
}
