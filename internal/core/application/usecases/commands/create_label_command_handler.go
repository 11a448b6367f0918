package commands

import (
	"context"

	"printshop/internal/core/domain/services/packing"
	"printshop/internal/core/ports"
)

// CreateLabelCommandHandler buys a shipping label for a paid order.
// The packing optimizer chooses the carton; its dimensions and total weight
// go on the label request.
type CreateLabelCommandHandler struct {
	uowFactory OrderUoWFactory
	carrier    ports.Carrier
	packer     packing.Optimizer
}

// LabelResult reports the purchased label back to the caller.
type LabelResult struct {
	TrackingNumber string
	LabelURL       string
	PackageCount   int
}

// NewCreateLabelCommandHandler creates a handler for label purchases.
func NewCreateLabelCommandHandler(
	uowFactory OrderUoWFactory,
	carrier ports.Carrier,
	packer packing.Optimizer,
) CreateLabelCommandHandler {
	return CreateLabelCommandHandler{
		uowFactory: uowFactory,
		carrier:    carrier,
		packer:     packer,
	}
}

// Handle processes the label purchase.
// Loads the order, computes the packing plan for its service tier's shipping
// method, buys the label and ships the order with the returned tracking
// number. The order must be in Paid or Printing status.
func (h *CreateLabelCommandHandler) Handle(ctx context.Context, cmd CreateLabelCommand) (LabelResult, error) {
	if err := cmd.Validate(); err != nil {
		return LabelResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LabelResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	shipOrder, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return LabelResult{}, err
	}

	spec := shipOrder.Spec()
	method := packing.MethodForTier(spec.ServiceTier)
	plan := h.packer.Plan(packing.PlanRequest{
		LengthMM:       spec.LengthMM,
		WidthMM:        spec.WidthMM,
		HeightMM:       spec.HeightMM,
		Quantity:       spec.Quantity,
		WeightPerUnitG: spec.UnitWeightG,
		ShippingMethod: method,
	})

	// The label covers one parcel; a split order declares the per-package
	// weight, not the combined order weight.
	weightLbs := plan.TotalWeightLbs
	if plan.PackageCount > 1 {
		weightLbs /= float64(plan.PackageCount)
	}

	label, err := h.carrier.CreateLabel(ctx, ports.LabelRequest{
		OrderNumber:     shipOrder.Number(),
		DestinationZip:  spec.DestinationZip.String(),
		ShippingMethod:  method,
		PackageLengthIn: plan.PackageLengthIn,
		PackageWidthIn:  plan.PackageWidthIn,
		PackageHeightIn: plan.PackageHeightIn,
		WeightLbs:       weightLbs,
	})
	if err != nil {
		return LabelResult{}, err
	}

	if err = shipOrder.Ship(label.TrackingNumber); err != nil {
		return LabelResult{}, err
	}

	if err = repo.Update(ctx, shipOrder); err != nil {
		return LabelResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return LabelResult{}, err
	}

	return LabelResult{
		TrackingNumber: label.TrackingNumber,
		LabelURL:       label.LabelURL,
		PackageCount:   plan.PackageCount,
	}, nil
}
