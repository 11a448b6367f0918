package rating_test

import (
	"testing"

	"printshop/internal/core/domain/services/rating"

	"github.com/stretchr/testify/assert"
)

func TestZoneFromDistance(t *testing.T) {
	tests := []struct {
		name  string
		miles float64
		want  rating.Zone
	}{
		{"zero distance", 0, 1},
		{"boundary of zone 1 is inclusive", 50.0, 1},
		{"just past zone 1", 50.1, 2},
		{"boundary of zone 2", 150.0, 2},
		{"mid zone 3", 200, 3},
		{"boundary of zone 4", 600.0, 4},
		{"mid zone 5", 800, 5},
		{"boundary of zone 6", 1400.0, 6},
		{"mid zone 7", 1500, 7},
		{"boundary of zone 8", 2000.0, 8},
		{"just past zone 8", 2000.1, 9},
		{"cross country", 2800, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rating.ZoneFromDistance(tt.miles))
		})
	}
}

func TestZoneFromDistance_MonotoneAndBounded(t *testing.T) {
	prev := rating.MinZone
	for miles := 0.0; miles <= 3500; miles += 0.5 {
		zone := rating.ZoneFromDistance(miles)

		assert.GreaterOrEqual(t, zone, rating.MinZone)
		assert.LessOrEqual(t, zone, rating.MaxZone)
		assert.GreaterOrEqual(t, zone, prev, "zone decreased at %.1f miles", miles)
		prev = zone
	}
}
