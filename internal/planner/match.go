package planner

import (
	"time"

	"github.com/wanderplan/itinerary/internal/domain"
)

// MatchDay returns the index of the day whose date equals target, compared at
// day granularity. Without an exact match it returns the day with the smallest
// absolute distance to target; on a tie the earlier entry in days wins.
// It returns -1 only when days is empty.
func MatchDay(days []domain.Day, target time.Time) int {
	for i, d := range days {
		if SameDay(d.Date, target) {
			return i
		}
	}

	best, bestDist := -1, 0
	for i, d := range days {
		dist := abs(DaysBetween(d.Date, target))
		if best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
