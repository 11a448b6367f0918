package queries_test

import (
	"testing"

	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPackingPlanQuery_ValidInput(t *testing.T) {
	query, err := queries.NewGetPackingPlanQuery(100, 80, 40, 3, 186.62, "USPS Ground Advantage")

	require.NoError(t, err)
	assert.InDelta(t, 100.0, query.LengthMM(), 1e-9)
	assert.InDelta(t, 80.0, query.WidthMM(), 1e-9)
	assert.InDelta(t, 40.0, query.HeightMM(), 1e-9)
	assert.Equal(t, 3, query.Quantity())
	assert.InDelta(t, 186.62, query.UnitWeightG(), 1e-9)
	assert.Equal(t, "USPS Ground Advantage", query.ShippingMethod())
	assert.NoError(t, query.Validate())
}

func TestNewGetPackingPlanQuery_ZeroDimensionsAllowed(t *testing.T) {
	// Missing geometry is valid; the plan degrades to a weight estimate.
	query, err := queries.NewGetPackingPlanQuery(0, 0, 0, 1, 200, "USPS Priority Mail")

	require.NoError(t, err)
	assert.NoError(t, query.Validate())
}

func TestNewGetPackingPlanQuery_UnknownMethodAllowed(t *testing.T) {
	// Methods outside the box catalog are carried as-is; the optimizer turns
	// them into a custom packaging advisory instead of an error.
	query, err := queries.NewGetPackingPlanQuery(100, 80, 40, 1, 186.62, "Carrier Pigeon")

	require.NoError(t, err)
	assert.Equal(t, "Carrier Pigeon", query.ShippingMethod())
}

func TestNewGetPackingPlanQuery_InvalidInput(t *testing.T) {
	t.Run("should reject negative dimension", func(t *testing.T) {
		_, err := queries.NewGetPackingPlanQuery(-1, 80, 40, 1, 186.62, "USPS Ground Advantage")
		require.Error(t, err)
	})

	t.Run("should reject zero quantity", func(t *testing.T) {
		_, err := queries.NewGetPackingPlanQuery(100, 80, 40, 0, 186.62, "USPS Ground Advantage")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject negative weight", func(t *testing.T) {
		_, err := queries.NewGetPackingPlanQuery(100, 80, 40, 1, -1, "USPS Ground Advantage")
		require.Error(t, err)
	})
}

func TestGetPackingPlanQuery_Validate_ZeroValue(t *testing.T) {
	var query queries.GetPackingPlanQuery

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPackingPlanQueryIsNotConstructed)
}
