package rating_test

import (
	"testing"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/services/rating"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testZipIndex() *rating.ZipIndex {
	return rating.NewZipIndex(map[string]rating.Coordinates{
		"10001": {Lat: 40.7506, Lng: -73.9972},
		"10002": {Lat: 40.7157, Lng: -73.9860},
		"02134": {Lat: 42.3584, Lng: -71.1288},
		"60616": {Lat: 41.8455, Lng: -87.6324},
		"90001": {Lat: 33.9731, Lng: -118.2479},
		"94016": {Lat: 37.7063, Lng: -122.4611},
	})
}

func mustZip(t *testing.T, value string) kernel.ZipCode {
	t.Helper()
	zip, err := kernel.NewZipCode(value)
	require.NoError(t, err)
	return zip
}

func TestZipIndex_DistanceMiles(t *testing.T) {
	index := testZipIndex()

	tests := []struct {
		name   string
		origin string
		dest   string
		want   float64
	}{
		{"coast to coast", "10001", "90001", 2448.5},
		{"new york to chicago", "10001", "60616", 711.1},
		{"new york to boston", "10001", "02134", 185.3},
		{"adjacent zip codes", "10001", "10002", 2.5},
		{"same zip code", "10001", "10001", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := index.DistanceMiles(mustZip(t, tt.origin), mustZip(t, tt.dest))
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestZipIndex_DistanceMiles_Symmetric(t *testing.T) {
	index := testZipIndex()
	a := mustZip(t, "10001")
	b := mustZip(t, "90001")

	assert.Equal(t, index.DistanceMiles(a, b), index.DistanceMiles(b, a))
}

func TestZipIndex_DistanceMiles_UnknownZipFallback(t *testing.T) {
	index := testZipIndex()
	known := mustZip(t, "10001")
	unknown := mustZip(t, "99999")

	t.Run("unknown destination", func(t *testing.T) {
		assert.Equal(t, rating.FallbackDistanceMiles, index.DistanceMiles(known, unknown))
	})

	t.Run("unknown origin", func(t *testing.T) {
		assert.Equal(t, rating.FallbackDistanceMiles, index.DistanceMiles(unknown, known))
	})

	t.Run("both unknown", func(t *testing.T) {
		other := mustZip(t, "88888")
		assert.Equal(t, rating.FallbackDistanceMiles, index.DistanceMiles(unknown, other))
	})
}

func TestZipIndex_CopiesInput(t *testing.T) {
	coords := map[string]rating.Coordinates{
		"10001": {Lat: 40.7506, Lng: -73.9972},
	}
	index := rating.NewZipIndex(coords)
	delete(coords, "10001")

	_, ok := index.Lookup(mustZip(t, "10001"))
	assert.True(t, ok)
	assert.Equal(t, 1, index.Len())
}
