package queries

import (
	"errors"

	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrGetPackingPlanQueryIsNotConstructed = errors.New(
	"GetPackingPlanQuery must be created via NewGetPackingPlanQuery constructor",
)

// GetPackingPlanQuery computes the box recommendation for an order line.
// Dimensions may be zero when model geometry was never captured; the plan
// then degrades to a weight-only estimate. The shipping method is carried
// as-is: methods outside the box catalog degrade to a custom packaging
// advisory rather than failing.
type GetPackingPlanQuery struct { //nolint:recvcheck //using for validation
	lengthMM       float64
	widthMM        float64
	heightMM       float64
	quantity       int
	unitWeightG    float64
	shippingMethod string

	guard guard.ConstructorGuard
}

// NewGetPackingPlanQuery creates a packing plan query.
func NewGetPackingPlanQuery(
	lengthMM, widthMM, heightMM float64,
	quantity int,
	unitWeightG float64,
	shippingMethod string,
) (GetPackingPlanQuery, error) {
	query := GetPackingPlanQuery{
		shippingMethod: shippingMethod,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setDimensions(lengthMM, widthMM, heightMM),
		query.setQuantity(quantity),
		query.setUnitWeight(unitWeightG),
	); err != nil {
		return GetPackingPlanQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPackingPlanQuery) Validate() error {
	return q.guard.Validate(ErrGetPackingPlanQueryIsNotConstructed)
}

// LengthMM returns the model length in millimeters.
func (q GetPackingPlanQuery) LengthMM() float64 {
	return q.lengthMM
}

// WidthMM returns the model width in millimeters.
func (q GetPackingPlanQuery) WidthMM() float64 {
	return q.widthMM
}

// HeightMM returns the model height in millimeters.
func (q GetPackingPlanQuery) HeightMM() float64 {
	return q.heightMM
}

// Quantity returns the number of units to pack.
func (q GetPackingPlanQuery) Quantity() int {
	return q.quantity
}

// UnitWeightG returns the per-unit print weight in grams.
func (q GetPackingPlanQuery) UnitWeightG() float64 {
	return q.unitWeightG
}

// ShippingMethod returns the carrier method the plan packs for.
func (q GetPackingPlanQuery) ShippingMethod() string {
	return q.shippingMethod
}

func (q *GetPackingPlanQuery) setDimensions(lengthMM, widthMM, heightMM float64) error {
	if lengthMM < 0 || widthMM < 0 || heightMM < 0 {
		return errs.NewValueIsInvalidError("dimensions")
	}

	q.lengthMM = lengthMM
	q.widthMM = widthMM
	q.heightMM = heightMM
	return nil
}

func (q *GetPackingPlanQuery) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}

	q.quantity = quantity
	return nil
}

func (q *GetPackingPlanQuery) setUnitWeight(unitWeightG float64) error {
	if unitWeightG < 0 {
		return errs.NewValueIsInvalidError("unitWeightG")
	}

	q.unitWeightG = unitWeightG
	return nil
}

// GetPackingPlanQueryResponse is the packing recommendation for an order
// line.
type GetPackingPlanQueryResponse struct {
	ShippingMethod  string
	Strategy        string
	Recommendation  string
	PackageLengthIn float64
	PackageWidthIn  float64
	PackageHeightIn float64
	TotalWeightLbs  float64
	PackageCount    int
	Notes           []string
}
