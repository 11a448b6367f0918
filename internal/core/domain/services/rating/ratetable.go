package rating

import (
	"fmt"

	"printshop/internal/core/domain/model/kernel"
)

// bracketRows is the number of weight bracket rows in each rate table: four
// sub-pound ounce tiers plus pounds 1 through 70.
const bracketRows = 4 + MaxBracketPounds

// rateTable holds cent prices indexed by [WeightBracket.Index][zone-1].
type rateTable [bracketRows][MaxZone]int64

// tableForTier resolves a service tier to its rate table. An unknown tier is
// a programming error at this depth; callers validate tiers at the boundary.
func tableForTier(tier ServiceTier) (*rateTable, error) {
	switch tier {
	case TierEconomy:
		return &economyRates, nil
	case TierStandard:
		return &standardRates, nil
	case TierExpedited:
		return &expeditedRates, nil
	default:
		return nil, fmt.Errorf("no rate table for service tier %q", tier)
	}
}

// Price looks up the shipping price for a service tier, weight bracket and
// zone. Every bracket and zone combination is populated, so the lookup only
// fails for an unknown tier or an out-of-range zone.
func Price(tier ServiceTier, bracket WeightBracket, zone Zone) (kernel.Money, error) {
	table, err := tableForTier(tier)
	if err != nil {
		return kernel.Money{}, err
	}
	if zone < MinZone || zone > MaxZone {
		return kernel.Money{}, fmt.Errorf("zone %d out of range [%d, %d]", zone, MinZone, MaxZone)
	}

	return kernel.NewMoney(table[bracket.Index()][zone-1])
}
