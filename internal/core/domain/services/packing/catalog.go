package packing

import "printshop/internal/core/domain/services/rating"

// Box is one standard carton a carrier accepts, dimensions in inches.
type Box struct {
	Name         string
	LengthIn     float64
	WidthIn      float64
	HeightIn     float64
	MaxWeightLbs float64
}

// VolumeIn3 returns the interior volume in cubic inches.
func (b Box) VolumeIn3() float64 {
	return b.LengthIn * b.WidthIn * b.HeightIn
}

// methodSpec captures a shipping method's structural limits and its box
// lineup. Boxes are ordered smallest to largest; that order is the selection
// preference and must be preserved.
type methodSpec struct {
	maxLengthIn  float64
	maxGirthIn   float64
	maxWeightLbs float64
	boxes        []Box
}

// uspsPriorityBoxes are shared by all USPS methods.
var uspsPriorityBoxes = []Box{
	{Name: "Small Priority Box", LengthIn: 5.5, WidthIn: 8.625, HeightIn: 1.625, MaxWeightLbs: 70},
	{Name: "Medium Flat-Rate Box", LengthIn: 11, WidthIn: 8.5, HeightIn: 5.5, MaxWeightLbs: 70},
	{Name: "Large Priority Box", LengthIn: 12, WidthIn: 12, HeightIn: 8, MaxWeightLbs: 70},
}

// upsAirBoxes are shared by the UPS air methods; UPS Ground additionally
// offers the extra large carton.
var upsAirBoxes = []Box{
	{Name: "Small Box", LengthIn: 12, WidthIn: 12, HeightIn: 8, MaxWeightLbs: 150},
	{Name: "Medium Box", LengthIn: 18, WidthIn: 12, HeightIn: 10, MaxWeightLbs: 150},
	{Name: "Large Box", LengthIn: 24, WidthIn: 18, HeightIn: 12, MaxWeightLbs: 150},
}

var upsGroundBoxes = append(append([]Box{}, upsAirBoxes...),
	Box{Name: "Extra Large Box", LengthIn: 30, WidthIn: 24, HeightIn: 18, MaxWeightLbs: 150})

// methodSpecs is the closed catalog of shipping methods the optimizer knows
// how to pack for. Unknown methods fall back to a custom packaging advisory.
var methodSpecs = map[string]methodSpec{
	"USPS Ground Advantage": {
		maxLengthIn: 130, maxGirthIn: 130, maxWeightLbs: 70,
		boxes: uspsPriorityBoxes,
	},
	"USPS Priority Mail": {
		maxLengthIn: 130, maxGirthIn: 130, maxWeightLbs: 70,
		boxes: uspsPriorityBoxes,
	},
	"USPS Priority Mail Express": {
		maxLengthIn: 130, maxGirthIn: 130, maxWeightLbs: 70,
		boxes: uspsPriorityBoxes,
	},
	"UPS Ground": {
		maxLengthIn: 165, maxGirthIn: 300, maxWeightLbs: 150,
		boxes: upsGroundBoxes,
	},
	"UPS 2nd Day Air": {
		maxLengthIn: 165, maxGirthIn: 300, maxWeightLbs: 150,
		boxes: upsAirBoxes,
	},
	"UPS Next Day Air": {
		maxLengthIn: 165, maxGirthIn: 300, maxWeightLbs: 150,
		boxes: upsAirBoxes,
	},
}

// methodForTier maps service tiers to the carrier method used to pack and
// ship them.
var methodForTier = map[rating.ServiceTier]string{
	rating.TierEconomy:   "USPS Ground Advantage",
	rating.TierStandard:  "USPS Priority Mail",
	rating.TierExpedited: "USPS Priority Mail Express",
}

// MethodForTier returns the shipping method a service tier ships under.
// Unknown tiers return an empty string; the optimizer then degrades to a
// custom packaging advisory.
func MethodForTier(tier rating.ServiceTier) string {
	return methodForTier[tier]
}

// KnownMethods returns the shipping method names the optimizer can produce a
// fitted plan for.
func KnownMethods() []string {
	names := make([]string, 0, len(methodSpecs))
	for name := range methodSpecs {
		names = append(names, name)
	}
	return names
}
