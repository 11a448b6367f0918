package queries_test

import (
	"errors"
	"testing"

	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/material"
	"printshop/internal/core/domain/services/quoting"
	"printshop/internal/core/domain/services/rating"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newQuoteHandler prices from a single-entry New York zip index, matching
// the fixtures in the quoting package tests.
func newQuoteHandler(t *testing.T) queries.GetQuoteQueryHandler {
	t.Helper()
	index := rating.NewZipIndex(map[string]rating.Coordinates{
		"10001": {Lat: 40.7506, Lng: -73.9972},
	})
	shipping, err := rating.NewCalculator(index, mustZip(t, "10001"))
	require.NoError(t, err)
	return queries.NewGetQuoteQueryHandler(
		quoting.NewCalculator(material.DefaultCatalog(), shipping))
}

func TestGetQuoteQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	handler := newQuoteHandler(t)

	query, err := queries.NewGetQuoteQuery(
		mustZip(t, "10001"), "PLA Basic", 1, false, rating.TierEconomy, false, 150.5, 0)
	require.NoError(t, err)

	result, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	// PLA Basic, 150.5 cm3, one unit to a taxed NY destination.
	assert.Equal(t, int64(2000), result.BaseCostCents)
	assert.Equal(t, int64(373), result.MaterialCostCents)
	assert.Equal(t, int64(520), result.ShippingCostCents)
	assert.Equal(t, int64(0), result.RushSurchargeCents)
	assert.Equal(t, int64(247), result.SalesTaxCents)
	assert.Equal(t, int64(2893), result.TotalBeforeTaxCents)
	assert.Equal(t, int64(3140), result.TotalCents)
	assert.InDelta(t, 186.62, result.UnitWeightG, 1e-9)
}

func TestGetQuoteQueryHandler_Handle_UnknownMaterial(t *testing.T) {
	ctx := t.Context()
	handler := newQuoteHandler(t)

	query, err := queries.NewGetQuoteQuery(
		mustZip(t, "10001"), "Unobtainium", 1, false, rating.TierEconomy, false, 150.5, 0)
	require.NoError(t, err)

	_, err = handler.Handle(ctx, query)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
}

func TestGetQuoteQueryHandler_Handle_InvalidQuery(t *testing.T) {
	ctx := t.Context()
	handler := newQuoteHandler(t)

	_, err := handler.Handle(ctx, queries.GetQuoteQuery{})

	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrGetQuoteQueryIsNotConstructed)
}
