// Package export renders a planned trip as an iCalendar feed.
package export

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/wanderplan/itinerary/internal/domain"
)

const productID = "-//wanderplan//itinerary//EN"

// mealDuration is how long a meal event is blocked in the calendar.
const mealDuration = 90 * time.Minute

// Calendar renders trip as an iCalendar document: one all-day event per day
// listing its activities, and one timed event per meal whose time can be read.
// Meals without a readable time become all-day events on their day.
// stamp is written as DTSTAMP on every event.
func Calendar(trip domain.Trip, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetName(fmt.Sprintf("Trip to %s", trip.Destination))

	for _, day := range trip.Days {
		ev := cal.AddEvent(fmt.Sprintf("day-%d-%s@wanderplan", day.Number, trip.ID))
		ev.SetDtStampTime(stamp)
		ev.SetAllDayStartAt(day.Date)
		ev.SetAllDayEndAt(day.Date.AddDate(0, 0, 1))
		ev.SetSummary(fmt.Sprintf("Day %d: %s", day.Number, trip.Destination))
		ev.SetLocation(trip.Destination)
		ev.SetDescription(describeDay(day))

		for _, slot := range domain.StandardSlots {
			meal, ok := day.Meals[slot]
			if !ok {
				continue
			}
			addMeal(cal, trip, day, meal, stamp)
		}
	}
	return cal.Serialize()
}

func addMeal(cal *ical.Calendar, trip domain.Trip, day domain.Day, meal domain.Meal, stamp time.Time) {
	ev := cal.AddEvent(fmt.Sprintf("meal-%d-%s-%s@wanderplan", day.Number, meal.Type, trip.ID))
	ev.SetDtStampTime(stamp)

	summary := strings.TrimSpace(fmt.Sprintf("%s: %s", titleCase(string(meal.Type)), meal.Restaurant))
	ev.SetSummary(strings.TrimSuffix(summary, ":"))
	if meal.Location != "" {
		ev.SetLocation(meal.Location)
	}

	var desc []string
	if meal.Cuisine != "" {
		desc = append(desc, "Cuisine: "+meal.Cuisine)
	}
	if meal.Price != domain.PriceNone {
		desc = append(desc, "Price: "+string(meal.Price))
	}
	if meal.Provider != "" {
		desc = append(desc, "Booked via "+meal.Provider)
	}
	if len(desc) > 0 {
		ev.SetDescription(strings.Join(desc, "\n"))
	}

	if start, ok := mealStart(day.Date, meal.Time); ok {
		ev.SetStartAt(start)
		ev.SetEndAt(start.Add(mealDuration))
		return
	}
	ev.SetAllDayStartAt(day.Date)
	ev.SetAllDayEndAt(day.Date.AddDate(0, 0, 1))
}

// describeDay lists the day's activities one per line, then the day notes.
func describeDay(day domain.Day) string {
	var b strings.Builder
	for _, a := range day.Activities {
		fmt.Fprintf(&b, "%s - %s", a.Time, a.Name)
		if a.Location != "" {
			fmt.Fprintf(&b, " (%s)", a.Location)
		}
		b.WriteString("\n")
	}
	b.WriteString(day.Notes)
	return b.String()
}

// clockLayouts are the meal time formats placed on the calendar.
var clockLayouts = []string{"15:04", "15:04:05", "3:04 PM", "3:04PM", "3PM", "3 PM"}

// mealStart combines a day with a meal's clock time.
func mealStart(day time.Time, clock string) (time.Time, bool) {
	clock = strings.ToUpper(strings.TrimSpace(clock))
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, clock)
		if err != nil {
			continue
		}
		y, m, d := day.Date()
		return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, time.UTC), true
	}
	return time.Time{}, false
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
