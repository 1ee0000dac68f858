package domain

import (
	"time"

	"github.com/google/uuid"
)

// MealType is the derived meal category. It doubles as the slot key on a Day.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

// MealSlot keys Day.Meals. The standard slots match the meal types.
type MealSlot = MealType

// StandardSlots lists the meal slots in the order they occur during a day.
var StandardSlots = []MealSlot{MealBreakfast, MealLunch, MealDinner}

// Valid reports whether t is one of breakfast, lunch or dinner.
func (t MealType) Valid() bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner:
		return true
	}
	return false
}

// PriceBucket is an ordinal cost tier. The zero value means unknown.
type PriceBucket string

const (
	PriceNone     PriceBucket = ""
	PriceBudget   PriceBucket = "$"
	PriceModerate PriceBucket = "$$"
	PriceUpscale  PriceBucket = "$$$"
	PriceLuxury   PriceBucket = "$$$$"
)

// Meal is a dining entry attached to one slot of a Day.
// Cuisine and Price are empty when they could not be inferred.
// BookingID is empty for meals that did not come from a reservation.
type Meal struct {
	ID         uuid.UUID   `json:"id"`
	DayID      uuid.UUID   `json:"day_id"`
	Type       MealType    `json:"meal_type"`
	Restaurant string      `json:"restaurant"`
	Cuisine    string      `json:"cuisine,omitempty"`
	Location   string      `json:"location,omitempty"`
	Price      PriceBucket `json:"price_bucket,omitempty"`
	Time       string      `json:"time,omitempty"`
	Date       time.Time   `json:"date"`
	Provider   string      `json:"provider,omitempty"`
	Notes      string      `json:"notes,omitempty"`
	BookingID  string      `json:"booking_id,omitempty"`
}

// CuisineCount is one entry of MealStats.TopCuisines.
type CuisineCount struct {
	Cuisine string `json:"cuisine"`
	Count   int    `json:"count"`
}

// MealStats summarizes every meal across a trip.
type MealStats struct {
	TotalMeals     int              `json:"total_meals"`
	MealTypeCounts map[MealType]int `json:"meal_type_counts"`
	AverageCost    float64          `json:"average_cost"`
	TopCuisines    []CuisineCount   `json:"top_cuisines"`
}
