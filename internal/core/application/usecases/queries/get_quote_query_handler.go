package queries

import (
	"context"

	"printshop/internal/core/domain/services/quoting"
)

// GetQuoteQueryHandler prices print jobs through the quote calculator. The
// handler is pure and touches no storage, so quotes stay cheap to serve.
type GetQuoteQueryHandler struct {
	quotes quoting.Calculator
}

// NewGetQuoteQueryHandler creates a handler over the given quote calculator.
func NewGetQuoteQueryHandler(quotes quoting.Calculator) GetQuoteQueryHandler {
	return GetQuoteQueryHandler{quotes: quotes}
}

// Handle executes the quote query and returns the full price breakdown.
func (h GetQuoteQueryHandler) Handle(
	_ context.Context,
	query GetQuoteQuery,
) (GetQuoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetQuoteQueryResponse{}, err
	}

	breakdown, err := h.quotes.Quote(quoting.Request{
		Zip:          query.Destination(),
		MaterialName: query.MaterialName(),
		Quantity:     query.Quantity(),
		RushOrder:    query.RushOrder(),
		ServiceTier:  query.ServiceTier(),
		LocalPickup:  query.LocalPickup(),
		VolumeCm3:    query.VolumeCm3(),
		WeightG:      query.WeightG(),
	})
	if err != nil {
		return GetQuoteQueryResponse{}, err
	}

	return GetQuoteQueryResponse{
		BaseCostCents:       breakdown.BaseCost.Cents(),
		MaterialCostCents:   breakdown.MaterialCost.Cents(),
		ShippingCostCents:   breakdown.ShippingCost.Cents(),
		RushSurchargeCents:  breakdown.RushSurcharge.Cents(),
		SalesTaxCents:       breakdown.SalesTax.Cents(),
		TotalBeforeTaxCents: breakdown.TotalBeforeTax.Cents(),
		TotalCents:          breakdown.Total.Cents(),
		UnitWeightG:         breakdown.UnitWeightG,
		ShippingWeightKG:    breakdown.ShippingWeightKG,
	}, nil
}
