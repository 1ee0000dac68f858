package domain

import (
	"bytes"
	"encoding/json"
)

// BookingTypeRestaurant is the only booking type that becomes a Meal.
const BookingTypeRestaurant = "restaurant"

// Booking is a reservation record owned by an external system.
// Date is a calendar date string ("2006-01-02"); Time is free-form ("19:30",
// "7:30 PM").
type Booking struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Title        string `json:"title"`
	Time         string `json:"time"`
	Date         string `json:"date"`
	Cost         Cost   `json:"cost"`
	Notes        string `json:"notes"`
	Location     string `json:"location"`
	Provider     string `json:"provider"`
	Confirmation string `json:"confirmation"`
}

// Cost is the raw cost of a booking as sent upstream. Some providers send a
// JSON number, others a string ("34.99", "$20", ""), so both are accepted and
// kept as text.
type Cost string

// UnmarshalJSON accepts a JSON number, string or null.
func (c *Cost) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*c = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = Cost(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*c = Cost(n.String())
		return nil
	}
}
