package planner

import "github.com/wanderplan/itinerary/internal/domain"

// Activity counts per day for each vacation style.
const (
	ChillaxedActivities   = 2
	AdventurousActivities = 4
	BusyActivities        = 5
	DefaultActivities     = 3
)

// ActivityDensity returns how many activities a day should hold for style.
//
// When several flags are set, busy wins over adventurous, which wins over
// chillaxed. This precedence is a product policy, not something the flags
// imply on their own.
func ActivityDensity(style domain.VacationStyle) int {
	switch {
	case style.Busy:
		return BusyActivities
	case style.Adventurous:
		return AdventurousActivities
	case style.Chillaxed:
		return ChillaxedActivities
	default:
		return DefaultActivities
	}
}
