package planner

import (
	"sort"

	"github.com/wanderplan/itinerary/internal/domain"
)

// TopCuisineLimit is the number of cuisines reported in MealStats.
const TopCuisineLimit = 3

// representativeCost approximates what a meal in each bucket costs.
// Meals without a bucket count as 0.
var representativeCost = map[domain.PriceBucket]float64{
	domain.PriceBudget:   10,
	domain.PriceModerate: 25,
	domain.PriceUpscale:  45,
	domain.PriceLuxury:   80,
}

// AggregateMealStats summarizes every meal in days.
//
// Meals are walked day by day in slot order (breakfast, lunch, dinner, then
// any other slot names alphabetically), which fixes the tie order for
// TopCuisines. Meals of an unknown type count toward TotalMeals and the
// average but not toward MealTypeCounts.
func AggregateMealStats(days []domain.Day) domain.MealStats {
	stats := domain.MealStats{
		MealTypeCounts: map[domain.MealType]int{
			domain.MealBreakfast: 0,
			domain.MealLunch:     0,
			domain.MealDinner:    0,
		},
		TopCuisines: []domain.CuisineCount{},
	}

	var (
		sum          float64
		cuisineCount = map[string]int{}
		firstSeen    []string
	)
	for _, day := range days {
		for _, meal := range orderedMeals(day) {
			stats.TotalMeals++
			if meal.Type.Valid() {
				stats.MealTypeCounts[meal.Type]++
			}
			sum += representativeCost[meal.Price]
			if meal.Cuisine != "" {
				if _, seen := cuisineCount[meal.Cuisine]; !seen {
					firstSeen = append(firstSeen, meal.Cuisine)
				}
				cuisineCount[meal.Cuisine]++
			}
		}
	}

	if stats.TotalMeals > 0 {
		stats.AverageCost = sum / float64(stats.TotalMeals)
	}

	// firstSeen is in encounter order; a stable sort by count keeps it for ties.
	sort.SliceStable(firstSeen, func(i, j int) bool {
		return cuisineCount[firstSeen[i]] > cuisineCount[firstSeen[j]]
	})
	for _, c := range firstSeen[:min(len(firstSeen), TopCuisineLimit)] {
		stats.TopCuisines = append(stats.TopCuisines, domain.CuisineCount{Cuisine: c, Count: cuisineCount[c]})
	}
	return stats
}

// orderedMeals returns a day's meals in a deterministic slot order.
func orderedMeals(day domain.Day) []domain.Meal {
	if len(day.Meals) == 0 {
		return nil
	}
	out := make([]domain.Meal, 0, len(day.Meals))
	for _, slot := range domain.StandardSlots {
		if m, ok := day.Meals[slot]; ok {
			out = append(out, m)
		}
	}

	var extra []domain.MealSlot
	for slot := range day.Meals {
		if !slot.Valid() {
			extra = append(extra, slot)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	for _, slot := range extra {
		out = append(out, day.Meals[slot])
	}
	return out
}
