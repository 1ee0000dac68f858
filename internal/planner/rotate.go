package planner

import "github.com/wanderplan/itinerary/internal/domain"

// RotationWindow is the number of distinct starting offsets days cycle
// through, so neighbouring days overlap only partially.
const RotationWindow = 3

// RotatePool picks count activities for the given 0-based day index.
// Selection starts at dayIndex mod RotationWindow and wraps around the end of
// the pool, so the result always has exactly count entries. A negative
// dayIndex counts back through the window, so -1 starts where day 2 does. A pool shorter
// than count yields repeated activities. An empty pool yields an empty slice.
func RotatePool(pool []domain.Activity, dayIndex, count int) []domain.Activity {
	if len(pool) == 0 || count <= 0 {
		return []domain.Activity{}
	}

	offset := ((dayIndex%RotationWindow + RotationWindow) % RotationWindow) % len(pool)
	picked := make([]domain.Activity, count)
	for k := range picked {
		picked[k] = pool[(offset+k)%len(pool)]
	}
	return picked
}
