package rating

import (
	"fmt"
	"math"

	"printshop/internal/pkg/errs"
)

const (
	ouncesPerPound = 16
	// maxOunces is the heaviest sub-pound tier. Carriers price anything up
	// to (but not including) one pound at ounce rates, hence the .999.
	maxOunces = 15.999
	// MaxBracketPounds is the heaviest whole-pound bracket in the rate
	// tables. Heavier parcels are clamped to it.
	MaxBracketPounds = 70
)

// ounceTiers are the sub-pound pricing steps, ascending.
var ounceTiers = []float64{4, 8, 12, maxOunces}

// WeightBracket identifies one row of a carrier rate table. A bracket is
// either a sub-pound ounce tier (4, 8, 12, or 15.999 oz) or a whole-pound
// weight from 1 to 70. The two kinds never overlap.
type WeightBracket struct {
	ounces float64
	pounds int
}

// BracketForWeight resolves a parcel weight in pounds to its pricing bracket.
// Weights under one pound map to the smallest ounce tier that holds them;
// heavier weights round up to whole pounds and clamp to MaxBracketPounds.
// The function is total over non-negative weights.
func BracketForWeight(lbs float64) (WeightBracket, error) {
	if lbs < 0 || math.IsNaN(lbs) || math.IsInf(lbs, 0) {
		return WeightBracket{}, errs.NewValueIsInvalidError("weightLbs")
	}

	oz := lbs * ouncesPerPound
	if oz <= maxOunces {
		for _, tier := range ounceTiers {
			if oz <= tier {
				return WeightBracket{ounces: tier}, nil
			}
		}
	}

	pounds := int(math.Ceil(lbs))
	if pounds < 1 {
		pounds = 1
	}
	if pounds > MaxBracketPounds {
		pounds = MaxBracketPounds
	}
	return WeightBracket{pounds: pounds}, nil
}

// IsOunces reports whether this is a sub-pound bracket.
func (b WeightBracket) IsOunces() bool {
	return b.pounds == 0
}

// Ounces returns the ounce tier, or 0 for pound brackets.
func (b WeightBracket) Ounces() float64 {
	return b.ounces
}

// Pounds returns the whole-pound weight, or 0 for ounce brackets.
func (b WeightBracket) Pounds() int {
	return b.pounds
}

// Index returns the dense rate table row for this bracket: ounce tiers
// occupy rows 0 through 3, pounds 1 through 70 occupy rows 4 through 73.
func (b WeightBracket) Index() int {
	if b.IsOunces() {
		for i, tier := range ounceTiers {
			if b.ounces == tier {
				return i
			}
		}
	}
	return len(ounceTiers) + b.pounds - 1
}

// String returns a human-readable form such as "8 oz" or "2 lb".
func (b WeightBracket) String() string {
	if b.IsOunces() {
		return fmt.Sprintf("%g oz", b.ounces)
	}
	return fmt.Sprintf("%d lb", b.pounds)
}
