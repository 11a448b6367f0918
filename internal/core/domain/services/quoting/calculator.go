// Package quoting assembles a full price quote for a print order: material
// cost from the filament catalog, shipping from the rating calculator, a
// fixed base cost, an optional rush surcharge, and destination sales tax.
package quoting

import (
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/material"
	"printshop/internal/core/domain/services/rating"
	"printshop/internal/core/domain/services/tax"
	"printshop/internal/pkg/errs"
)

const (
	// baseCostCents covers setup and handling on every order.
	baseCostCents = 2000
	// rushSurchargeCents is added when the customer requests rush
	// turnaround.
	rushSurchargeCents = 2000
	// minimumWeightG floors derived weights so degenerate model volumes
	// never produce a zero-cost quote.
	minimumWeightG = 0.1
	// packagingOverhead inflates the print weight to account for
	// protective packaging on the way to the carrier scales.
	packagingOverhead = 1.15
)

// Request carries the client inputs for one quote.
type Request struct {
	Zip          kernel.ZipCode
	MaterialName string
	Quantity     int
	RushOrder    bool
	ServiceTier  rating.ServiceTier
	LocalPickup  bool
	VolumeCm3    float64
	// WeightG is an optional client-supplied weight override in grams.
	// When positive it takes precedence over the volume derivation.
	WeightG float64
}

// Breakdown is the priced result of a quote. Money fields are exact cents;
// the weight fields are kept so downstream order creation can snapshot them.
type Breakdown struct {
	BaseCost       kernel.Money
	MaterialCost   kernel.Money
	ShippingCost   kernel.Money
	RushSurcharge  kernel.Money
	SalesTax       kernel.Money
	TotalBeforeTax kernel.Money
	Total          kernel.Money

	UnitWeightG      float64
	ShippingWeightKG float64
}

// Calculator produces quote breakdowns. It is pure given its catalog and
// shipping calculator, so a single instance serves concurrent callers.
type Calculator struct {
	catalog  material.Catalog
	shipping rating.Calculator
}

// NewCalculator creates a quote calculator over a material catalog and a
// shipping rate calculator.
func NewCalculator(catalog material.Catalog, shipping rating.Calculator) Calculator {
	return Calculator{catalog: catalog, shipping: shipping}
}

// Quote prices an order.
//
// The unit weight is the client override when positive, otherwise volume
// times material density floored at the minimum weight. Material cost covers
// all units; base cost, shipping and the rush surcharge are charged once per
// order, never multiplied by quantity. Sales tax comes from the destination
// state and falls back to zero when the state cannot be resolved.
func (c Calculator) Quote(req Request) (Breakdown, error) {
	if err := req.Zip.Validate(); err != nil {
		return Breakdown{}, err
	}
	if req.Quantity < 1 {
		return Breakdown{}, errs.NewValueIsOutOfRangeError("quantity", req.Quantity, 1, "unbounded")
	}
	if req.VolumeCm3 < 0 {
		return Breakdown{}, errs.NewValueIsInvalidError("volumeCm3")
	}
	if req.WeightG < 0 {
		return Breakdown{}, errs.NewValueIsInvalidError("weightG")
	}
	if err := req.ServiceTier.Validate(); err != nil {
		return Breakdown{}, err
	}

	mat, err := c.catalog.Get(req.MaterialName)
	if err != nil {
		return Breakdown{}, err
	}

	unitWeightG := req.WeightG
	if unitWeightG <= 0 {
		unitWeightG = req.VolumeCm3 * mat.DensityGPerCm3()
		if unitWeightG < minimumWeightG {
			unitWeightG = minimumWeightG
		}
	}

	baseCost, err := kernel.NewMoney(baseCostCents)
	if err != nil {
		return Breakdown{}, err
	}

	materialCost, err := kernel.MoneyFromDollars(
		unitWeightG / 1000 * mat.PricePerKG().Dollars() * float64(req.Quantity))
	if err != nil {
		return Breakdown{}, err
	}

	shippingWeightKG := unitWeightG * float64(req.Quantity) * packagingOverhead / 1000
	shippingCost, err := c.shipping.Cost(req.Zip, shippingWeightKG, req.ServiceTier, req.LocalPickup)
	if err != nil {
		return Breakdown{}, err
	}

	rushSurcharge, err := kernel.NewMoney(0)
	if err != nil {
		return Breakdown{}, err
	}
	if req.RushOrder {
		rushSurcharge, err = kernel.NewMoney(rushSurchargeCents)
		if err != nil {
			return Breakdown{}, err
		}
	}

	totalBeforeTax, err := sum(baseCost, materialCost, shippingCost, rushSurcharge)
	if err != nil {
		return Breakdown{}, err
	}

	salesTax, err := totalBeforeTax.MultiplyScalar(tax.RateForZip(req.Zip))
	if err != nil {
		return Breakdown{}, err
	}

	total, err := totalBeforeTax.Add(salesTax)
	if err != nil {
		return Breakdown{}, err
	}

	return Breakdown{
		BaseCost:         baseCost,
		MaterialCost:     materialCost,
		ShippingCost:     shippingCost,
		RushSurcharge:    rushSurcharge,
		SalesTax:         salesTax,
		TotalBeforeTax:   totalBeforeTax,
		Total:            total,
		UnitWeightG:      unitWeightG,
		ShippingWeightKG: shippingWeightKG,
	}, nil
}

func sum(first kernel.Money, rest ...kernel.Money) (kernel.Money, error) {
	total := first
	var err error
	for _, m := range rest {
		total, err = total.Add(m)
		if err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
}
