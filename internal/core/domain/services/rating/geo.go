package rating

import (
	"math"

	"printshop/internal/core/domain/model/kernel"
)

const (
	// earthRadiusMiles is the Earth radius used by the great-circle formula.
	earthRadiusMiles = 3959
	// FallbackDistanceMiles is assumed when either zip code is not present
	// in the coordinate index. Keeping unknown destinations quotable beats
	// rejecting the order outright.
	FallbackDistanceMiles = 500.0
)

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat float64
	Lng float64
}

// ZipIndex maps five-digit zip codes to coordinates. It is built once at
// startup and treated as immutable afterwards, so it is safe for concurrent
// readers.
type ZipIndex struct {
	coords map[string]Coordinates
}

// NewZipIndex builds an index from the given coordinate table. The map is
// copied so later mutation by the caller cannot affect the index.
func NewZipIndex(coords map[string]Coordinates) *ZipIndex {
	own := make(map[string]Coordinates, len(coords))
	for zip, c := range coords {
		own[zip] = c
	}
	return &ZipIndex{coords: own}
}

// Lookup returns the coordinates for a zip code.
func (i *ZipIndex) Lookup(zip kernel.ZipCode) (Coordinates, bool) {
	c, ok := i.coords[zip.String()]
	return c, ok
}

// Len returns the number of indexed zip codes.
func (i *ZipIndex) Len() int {
	return len(i.coords)
}

// DistanceMiles returns the great-circle distance between two zip codes,
// rounded to one decimal place. The result is symmetric in its arguments.
// If either zip code is missing from the index, FallbackDistanceMiles is
// returned instead of an error.
func (i *ZipIndex) DistanceMiles(origin kernel.ZipCode, dest kernel.ZipCode) float64 {
	from, okFrom := i.Lookup(origin)
	to, okTo := i.Lookup(dest)
	if !okFrom || !okTo {
		return FallbackDistanceMiles
	}

	return math.Round(haversineMiles(from, to)*10) / 10
}

// haversineMiles computes the great-circle distance between two coordinates.
func haversineMiles(from Coordinates, to Coordinates) float64 {
	lat1 := from.Lat * math.Pi / 180
	lat2 := to.Lat * math.Pi / 180
	dLat := (to.Lat - from.Lat) * math.Pi / 180
	dLng := (to.Lng - from.Lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}
