// Package queries contains read-only operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Pricing and packing queries run purely against the domain services; order
// listings read the database directly, bypassing the domain model.
package queries

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/services/rating"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrGetQuoteQueryIsNotConstructed = errors.New(
	"GetQuoteQuery must be created via NewGetQuoteQuery constructor",
)

var ErrQuoteMaterialNameIsRequired = errors.New("material name is required")

// GetQuoteQuery prices a print job without creating an order. Carries the
// model parameters and shipping preferences a customer submits from the quote
// form.
type GetQuoteQuery struct { //nolint:recvcheck //using for validation
	destination  kernel.ZipCode
	materialName string
	quantity     int
	rushOrder    bool
	serviceTier  rating.ServiceTier
	localPickup  bool
	volumeCm3    float64
	weightG      float64

	guard guard.ConstructorGuard
}

// NewGetQuoteQuery creates a quote query. The cross-field pricing rules are
// validated by the quote calculator; this constructor only rejects inputs
// that can never price.
func NewGetQuoteQuery(
	destination kernel.ZipCode,
	materialName string,
	quantity int,
	rushOrder bool,
	serviceTier rating.ServiceTier,
	localPickup bool,
	volumeCm3 float64,
	weightG float64,
) (GetQuoteQuery, error) {
	query := GetQuoteQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setDestination(destination),
		query.setMaterialName(materialName),
		query.setQuantity(quantity),
		query.setServiceTier(serviceTier),
		query.setVolume(volumeCm3),
		query.setWeight(weightG),
	); err != nil {
		return GetQuoteQuery{}, err
	}

	query.rushOrder = rushOrder
	query.localPickup = localPickup

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetQuoteQueryIsNotConstructed)
}

// Destination returns the shipping destination ZIP code.
func (q GetQuoteQuery) Destination() kernel.ZipCode {
	return q.destination
}

// MaterialName returns the requested filament.
func (q GetQuoteQuery) MaterialName() string {
	return q.materialName
}

// Quantity returns the number of units to print.
func (q GetQuoteQuery) Quantity() int {
	return q.quantity
}

// RushOrder reports whether rush turnaround was requested.
func (q GetQuoteQuery) RushOrder() bool {
	return q.rushOrder
}

// ServiceTier returns the requested shipping speed.
func (q GetQuoteQuery) ServiceTier() rating.ServiceTier {
	return q.serviceTier
}

// LocalPickup reports whether the customer drops off and collects in person.
func (q GetQuoteQuery) LocalPickup() bool {
	return q.localPickup
}

// VolumeCm3 returns the model volume in cubic centimeters.
func (q GetQuoteQuery) VolumeCm3() float64 {
	return q.volumeCm3
}

// WeightG returns the optional client-supplied weight override in grams.
func (q GetQuoteQuery) WeightG() float64 {
	return q.weightG
}

func (q *GetQuoteQuery) setDestination(destination kernel.ZipCode) error {
	if err := destination.Validate(); err != nil {
		return err
	}

	q.destination = destination
	return nil
}

func (q *GetQuoteQuery) setMaterialName(name string) error {
	if name == "" {
		return ErrQuoteMaterialNameIsRequired
	}

	q.materialName = name
	return nil
}

func (q *GetQuoteQuery) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}

	q.quantity = quantity
	return nil
}

func (q *GetQuoteQuery) setServiceTier(tier rating.ServiceTier) error {
	if err := tier.Validate(); err != nil {
		return err
	}

	q.serviceTier = tier
	return nil
}

func (q *GetQuoteQuery) setVolume(volumeCm3 float64) error {
	if volumeCm3 < 0 {
		return errs.NewValueIsInvalidError("volumeCm3")
	}

	q.volumeCm3 = volumeCm3
	return nil
}

func (q *GetQuoteQuery) setWeight(weightG float64) error {
	if weightG < 0 {
		return errs.NewValueIsInvalidError("weightG")
	}

	q.weightG = weightG
	return nil
}

// GetQuoteQueryResponse is the priced quote returned to the client. All
// monetary amounts are exact cents.
type GetQuoteQueryResponse struct {
	BaseCostCents       int64
	MaterialCostCents   int64
	ShippingCostCents   int64
	RushSurchargeCents  int64
	SalesTaxCents       int64
	TotalBeforeTaxCents int64
	TotalCents          int64
	UnitWeightG         float64
	ShippingWeightKG    float64
}
