// Package packing computes box recommendations for outbound orders. Plans
// are advisory: they inform an operator's packing choice and never block an
// order, so every degenerate input degrades to a generic recommendation
// instead of an error.
package packing

import (
	"fmt"
	"math"
	"strings"
)

const (
	// paddingMM is added on every side of an item for protective material.
	paddingMM = 10
	// mmPerInch converts model dimensions to carton dimensions.
	mmPerInch = 25.4
	// gramsPerPound matches the carrier-facing weight conversion.
	gramsPerPound = 453.592
	// defaultPackagingPaddingG is the assumed per-unit packaging weight when
	// the caller does not supply one.
	defaultPackagingPaddingG = 50
	// dimensionBufferIn is added to reported package dimensions to cover
	// carton wall thickness and bulge.
	dimensionBufferIn = 0.5
	// maxLengthPlusGirthIn is the structural limit beyond which a package
	// risks oversize surcharges.
	maxLengthPlusGirthIn = 300
)

// PlanRequest describes one order line to pack. Dimensions may be zero when
// the model geometry was never captured; the optimizer then falls back to a
// weight-only estimate.
type PlanRequest struct {
	LengthMM          float64
	WidthMM           float64
	HeightMM          float64
	Quantity          int
	WeightPerUnitG    float64
	ShippingMethod    string
	PackagingPaddingG float64
}

// PlanResult is the packing recommendation for an order.
type PlanResult struct {
	Strategy        string
	Recommendation  string
	PackageLengthIn float64
	PackageWidthIn  float64
	PackageHeightIn float64
	TotalWeightLbs  float64
	PackageCount    int
	Notes           []string
}

// arrangement is an item grid inside a box: counts along each box axis.
type arrangement struct {
	alongL, alongW, alongH int
}

func (a arrangement) capacity() int {
	return a.alongL * a.alongW * a.alongH
}

func (a arrangement) String() string {
	return fmt.Sprintf("%d×%d×%d grid", a.alongL, a.alongW, a.alongH)
}

// Optimizer computes packing plans against the static box catalog.
type Optimizer struct{}

// NewOptimizer creates an Optimizer.
func NewOptimizer() Optimizer {
	return Optimizer{}
}

// Plan computes the packing recommendation for an order line.
//
// Unknown shipping methods and missing dimensions produce generic advisory
// results rather than errors. For a fitted plan the item is padded by 10mm on
// each side, converted to inches, and tried in all six axis orientations
// against each catalog box, smallest first. The first box that accommodates
// the needed quantity (capped by the box weight limit) wins, with the
// least-wasteful orientation; if no box holds the full quantity the first box
// holding at least one unit is used and the order splits across packages.
func (o Optimizer) Plan(req PlanRequest) PlanResult {
	spec, ok := methodSpecs[req.ShippingMethod]
	if !ok {
		return customPackagingResult(req.ShippingMethod)
	}

	if req.Quantity < 1 {
		req.Quantity = 1
	}
	if req.PackagingPaddingG <= 0 {
		req.PackagingPaddingG = defaultPackagingPaddingG
	}

	if req.LengthMM <= 0 || req.WidthMM <= 0 || req.HeightMM <= 0 {
		return genericResult(req)
	}

	unitWeightLbs := (req.WeightPerUnitG + req.PackagingPaddingG) / gramsPerPound
	maxByWeight := req.Quantity
	if unitWeightLbs > 0 {
		maxByWeight = int(spec.maxWeightLbs / unitWeightLbs)
		if maxByWeight < 1 {
			maxByWeight = 1
		}
	}

	padded := [3]float64{
		(req.LengthMM + 2*paddingMM) / mmPerInch,
		(req.WidthMM + 2*paddingMM) / mmPerInch,
		(req.HeightMM + 2*paddingMM) / mmPerInch,
	}

	needed := req.Quantity
	if maxByWeight < needed {
		needed = maxByWeight
	}

	box, arr, fitted := selectBox(spec.boxes, padded, needed)
	if !fitted {
		return oversizeResult(req, spec, unitWeightLbs, maxByWeight)
	}

	unitsPerPackage := arr.capacity()
	if maxByWeight < unitsPerPackage {
		unitsPerPackage = maxByWeight
	}
	packages := (req.Quantity + unitsPerPackage - 1) / unitsPerPackage

	return buildResult(req, box, arr.String(), packages, unitWeightLbs)
}

// selectBox walks the catalog smallest-first and returns the first box able
// to hold the needed quantity in some orientation. When none can, it relaxes
// to the first box holding at least one unit. The returned arrangement is
// the least-wasteful qualifying orientation for that box.
func selectBox(boxes []Box, padded [3]float64, needed int) (Box, arrangement, bool) {
	for _, require := range []int{needed, 1} {
		for _, box := range boxes {
			if arr, ok := bestArrangement(box, padded, require); ok {
				return box, arr, true
			}
		}
	}
	return Box{}, arrangement{}, false
}

// bestArrangement tries all six axis orientations of the padded item inside
// the box and returns the one with the least wasted volume among those that
// hold at least require units.
func bestArrangement(box Box, padded [3]float64, require int) (arrangement, bool) {
	orientations := [6][3]float64{
		{padded[0], padded[1], padded[2]},
		{padded[0], padded[2], padded[1]},
		{padded[1], padded[0], padded[2]},
		{padded[1], padded[2], padded[0]},
		{padded[2], padded[0], padded[1]},
		{padded[2], padded[1], padded[0]},
	}

	var (
		best     arrangement
		found    bool
		minWaste = math.MaxFloat64
	)

	for _, orient := range orientations {
		arr := arrangement{
			alongL: int(box.LengthIn / orient[0]),
			alongW: int(box.WidthIn / orient[1]),
			alongH: int(box.HeightIn / orient[2]),
		}
		if arr.capacity() < require {
			continue
		}

		used := (orient[0] * float64(arr.alongL)) *
			(orient[1] * float64(arr.alongW)) *
			(orient[2] * float64(arr.alongH))
		waste := box.VolumeIn3() - used
		if waste < minWaste {
			minWaste = waste
			best = arr
			found = true
		}
	}

	return best, found
}

// buildResult assembles the human-readable plan for a fitted box choice.
func buildResult(req PlanRequest, box Box, arrangementNote string, packages int, unitWeightLbs float64) PlanResult {
	itemsPerPackage := req.Quantity / packages
	if itemsPerPackage < 1 {
		itemsPerPackage = 1
	}
	weightPerPackageLbs := float64(itemsPerPackage) * unitWeightLbs

	var recommendation string
	if packages == 1 {
		recommendation = fmt.Sprintf(
			"Pack all %d items in a single %s (%g\" × %g\" × %g\")",
			req.Quantity, box.Name, box.LengthIn, box.WidthIn, box.HeightIn)
	} else {
		recommendation = fmt.Sprintf(
			"Split across %d boxes (%s). Pack ~%d items per box with protective padding.",
			packages, box.Name, itemsPerPackage)
	}

	result := PlanResult{
		Strategy:        box.Name,
		Recommendation:  recommendation,
		PackageLengthIn: box.LengthIn + dimensionBufferIn,
		PackageWidthIn:  box.WidthIn + dimensionBufferIn,
		PackageHeightIn: box.HeightIn + dimensionBufferIn,
		TotalWeightLbs:  weightPerPackageLbs * float64(packages),
		PackageCount:    packages,
		Notes: []string{
			"Arrangement: " + arrangementNote,
			fmt.Sprintf("Weight per package: ~%.1f lbs", weightPerPackageLbs),
		},
	}

	result.Notes = append(result.Notes, carrierNotes(req.ShippingMethod, result)...)
	return result
}

// carrierNotes appends method-family advisories to a plan.
func carrierNotes(method string, result PlanResult) []string {
	var notes []string
	switch {
	case strings.HasPrefix(method, "USPS"):
		notes = append(notes, "USPS flat-rate boxes have fixed pricing regardless of weight")
		if result.PackageCount > 1 {
			notes = append(notes, "Each package will be charged separately")
		}
	case strings.HasPrefix(method, "UPS"):
		girth := 2 * (result.PackageWidthIn + result.PackageHeightIn)
		lengthPlusGirth := result.PackageLengthIn + girth
		notes = append(notes, fmt.Sprintf(
			"UPS dimensional formula: %.1f\" + %.1f\" girth = %.1f\"",
			result.PackageLengthIn, girth, lengthPlusGirth))
		if lengthPlusGirth > maxLengthPlusGirthIn {
			notes = append(notes, "WARNING: package may be oversized for standard shipping")
		}
	}
	return notes
}

// oversizeResult handles items too large for any catalog box: the largest
// box is reported and packages split by weight alone.
func oversizeResult(req PlanRequest, spec methodSpec, unitWeightLbs float64, maxByWeight int) PlanResult {
	box := spec.boxes[len(spec.boxes)-1]
	packages := (req.Quantity + maxByWeight - 1) / maxByWeight

	result := buildResult(req, box, fmt.Sprintf("Stacked (qty: %d)", req.Quantity), packages, unitWeightLbs)
	result.Notes = append(result.Notes,
		"Model exceeds single-box capacity; custom packaging may be required")
	return result
}

// genericResult is the weight-only estimate used when model dimensions were
// never captured.
func genericResult(req PlanRequest) PlanResult {
	unitWeightLbs := req.WeightPerUnitG / gramsPerPound
	totalWeightLbs := unitWeightLbs * float64(req.Quantity)

	return PlanResult{
		Strategy: "Generic - Dimensions Not Available",
		Recommendation: fmt.Sprintf(
			"Dimension data not available. Recommend packing %d items with adequate protective padding. "+
				"Use the smallest available box that accommodates all items.", req.Quantity),
		TotalWeightLbs: totalWeightLbs,
		PackageCount:   1,
		Notes: []string{
			"To optimize packing, model dimensions should be captured during quote creation",
			fmt.Sprintf("Estimated total weight: %.1f lbs", totalWeightLbs),
		},
	}
}

// customPackagingResult is returned for shipping methods outside the
// catalog.
func customPackagingResult(method string) PlanResult {
	return PlanResult{
		Strategy: "Custom Packaging",
		Recommendation: fmt.Sprintf(
			"Unknown shipping method: %s. Use standard boxes with adequate protective packaging.", method),
		PackageCount: 1,
		Notes: []string{
			"Contact support for specific packing recommendations for this shipping method",
		},
	}
}
