package rating

// Zone is a shipping zone derived from the distance between origin and
// destination. Zones range from 1 (local) to 9 (farthest).
type Zone int

const (
	MinZone Zone = 1
	MaxZone Zone = 9
)

// zoneBreakpoints maps inclusive distance upper bounds (miles) to zones.
// Distances beyond the last breakpoint fall into MaxZone.
var zoneBreakpoints = []struct {
	maxMiles float64
	zone     Zone
}{
	{50, 1},
	{150, 2},
	{300, 3},
	{600, 4},
	{1000, 5},
	{1400, 6},
	{1800, 7},
	{2000, 8},
}

// ZoneFromDistance resolves a distance in miles to a shipping zone.
// Boundaries are inclusive: exactly 50 miles is zone 1, 50.1 miles is zone 2.
// The function is total over non-negative inputs and monotone non-decreasing.
func ZoneFromDistance(miles float64) Zone {
	for _, bp := range zoneBreakpoints {
		if miles <= bp.maxMiles {
			return bp.zone
		}
	}
	return MaxZone
}
