package queries_test

import (
	"strings"
	"testing"

	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/services/packing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPackingPlanQueryHandler_Handle_FittedPlan(t *testing.T) {
	ctx := t.Context()
	handler := queries.NewGetPackingPlanQueryHandler(packing.NewOptimizer())

	query, err := queries.NewGetPackingPlanQuery(100, 80, 40, 2, 186.62, "USPS Ground Advantage")
	require.NoError(t, err)

	result, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, "USPS Ground Advantage", result.ShippingMethod)
	assert.Equal(t, 1, result.PackageCount)
	assert.NotEmpty(t, result.Strategy)
	assert.NotEmpty(t, result.Recommendation)
	assert.Greater(t, result.PackageLengthIn, 0.0)
	assert.Greater(t, result.TotalWeightLbs, 0.0)
}

func TestGetPackingPlanQueryHandler_Handle_MissingDimensions(t *testing.T) {
	ctx := t.Context()
	handler := queries.NewGetPackingPlanQueryHandler(packing.NewOptimizer())

	query, err := queries.NewGetPackingPlanQuery(0, 0, 0, 4, 250, "USPS Priority Mail")
	require.NoError(t, err)

	result, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, "USPS Priority Mail", result.ShippingMethod)
	assert.Equal(t, "Generic - Dimensions Not Available", result.Strategy)
	assert.Equal(t, 1, result.PackageCount)
}

func TestGetPackingPlanQueryHandler_Handle_UPSMethod(t *testing.T) {
	ctx := t.Context()
	handler := queries.NewGetPackingPlanQueryHandler(packing.NewOptimizer())

	query, err := queries.NewGetPackingPlanQuery(100, 80, 40, 2, 186.62, "UPS Ground")
	require.NoError(t, err)

	result, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, "UPS Ground", result.ShippingMethod)
	assert.Equal(t, 1, result.PackageCount)

	var hasDimensionalNote bool
	for _, note := range result.Notes {
		if strings.HasPrefix(note, "UPS dimensional formula") {
			hasDimensionalNote = true
		}
	}
	assert.True(t, hasDimensionalNote, "expected a UPS dimensional formula note, got %v", result.Notes)
}

func TestGetPackingPlanQueryHandler_Handle_UnknownMethod(t *testing.T) {
	ctx := t.Context()
	handler := queries.NewGetPackingPlanQueryHandler(packing.NewOptimizer())

	query, err := queries.NewGetPackingPlanQuery(50, 50, 20, 1, 100, "Carrier Pigeon")
	require.NoError(t, err)

	result, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, "Custom Packaging", result.Strategy)
	assert.Equal(t, 1, result.PackageCount)
	assert.Contains(t, result.Recommendation, "Carrier Pigeon")
}

func TestGetPackingPlanQueryHandler_Handle_InvalidQuery(t *testing.T) {
	ctx := t.Context()
	handler := queries.NewGetPackingPlanQueryHandler(packing.NewOptimizer())

	_, err := handler.Handle(ctx, queries.GetPackingPlanQuery{})

	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrGetPackingPlanQueryIsNotConstructed)
}
