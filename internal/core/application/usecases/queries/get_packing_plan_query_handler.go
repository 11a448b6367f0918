package queries

import (
	"context"

	"printshop/internal/core/domain/services/packing"
)

// GetPackingPlanQueryHandler computes box recommendations through the
// packing optimizer. Pure; no storage involved.
type GetPackingPlanQueryHandler struct {
	packer packing.Optimizer
}

// NewGetPackingPlanQueryHandler creates a handler over the given optimizer.
func NewGetPackingPlanQueryHandler(packer packing.Optimizer) GetPackingPlanQueryHandler {
	return GetPackingPlanQueryHandler{packer: packer}
}

// Handle executes the packing plan query. The shipping method goes to the
// optimizer as-is; methods outside the box catalog come back as a custom
// packaging advisory, never an error.
func (h GetPackingPlanQueryHandler) Handle(
	_ context.Context,
	query GetPackingPlanQuery,
) (GetPackingPlanQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPackingPlanQueryResponse{}, err
	}

	plan := h.packer.Plan(packing.PlanRequest{
		LengthMM:       query.LengthMM(),
		WidthMM:        query.WidthMM(),
		HeightMM:       query.HeightMM(),
		Quantity:       query.Quantity(),
		WeightPerUnitG: query.UnitWeightG(),
		ShippingMethod: query.ShippingMethod(),
	})

	return GetPackingPlanQueryResponse{
		ShippingMethod:  query.ShippingMethod(),
		Strategy:        plan.Strategy,
		Recommendation:  plan.Recommendation,
		PackageLengthIn: plan.PackageLengthIn,
		PackageWidthIn:  plan.PackageWidthIn,
		PackageHeightIn: plan.PackageHeightIn,
		TotalWeightLbs:  plan.TotalWeightLbs,
		PackageCount:    plan.PackageCount,
		Notes:           plan.Notes,
	}, nil
}
