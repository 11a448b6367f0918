package rating

import (
	"math"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
)

// errNilZipIndex is returned when a Calculator is constructed without a
// coordinate index.
var errNilZipIndex = errs.NewValueIsRequiredError("zipIndex")

const (
	// gramsPerPound is the exact avoirdupois conversion factor.
	gramsPerPound = 453.59237
	// localPickupDiscount is applied when the customer collects the parcel
	// from a pickup point. Only the economy tier qualifies.
	localPickupDiscount = 0.85
)

// Calculator prices an outbound shipment from the shop origin to a customer
// destination. It composes the weight bracket, distance, zone and rate table
// resolutions into a single call.
//
// Example usage:
//
//	calc, _ := rating.NewCalculator(zipIndex, originZip)
//	cost, err := calc.Cost(destZip, 0.91, rating.TierEconomy, false)
type Calculator struct {
	zips   *ZipIndex
	origin kernel.ZipCode
}

// NewCalculator creates a Calculator bound to a zip coordinate index and the
// shop's origin zip code.
func NewCalculator(zips *ZipIndex, origin kernel.ZipCode) (Calculator, error) {
	if zips == nil {
		return Calculator{}, errNilZipIndex
	}
	if err := origin.Validate(); err != nil {
		return Calculator{}, err
	}

	return Calculator{zips: zips, origin: origin}, nil
}

// Cost returns the shipping price for a parcel of the given weight to the
// destination zip code.
//
// The weight is converted from kilograms to pounds (rounded to two decimals)
// and resolved to a bracket; the destination resolves through distance to a
// zone; the rate table supplies the price. When localPickup is set and the
// tier is economy, the price is multiplied by 0.85 and rounded to the cent.
// For any other tier the pickup flag is silently ignored.
func (c Calculator) Cost(dest kernel.ZipCode, weightKG float64, tier ServiceTier, localPickup bool) (kernel.Money, error) {
	if err := tier.Validate(); err != nil {
		return kernel.Money{}, err
	}
	if err := dest.Validate(); err != nil {
		return kernel.Money{}, err
	}

	lbs := math.Round(weightKG*1000/gramsPerPound*100) / 100
	bracket, err := BracketForWeight(lbs)
	if err != nil {
		return kernel.Money{}, err
	}

	miles := c.zips.DistanceMiles(c.origin, dest)
	zone := ZoneFromDistance(miles)

	price, err := Price(tier, bracket, zone)
	if err != nil {
		return kernel.Money{}, err
	}

	if localPickup && tier == TierEconomy {
		return price.MultiplyScalar(localPickupDiscount)
	}

	return price, nil
}
