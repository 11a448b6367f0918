package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	printhttp "printshop/internal/adapters/in/http"
	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/material"
	"printshop/internal/core/domain/services/packing"
	"printshop/internal/core/domain/services/quoting"
	"printshop/internal/core/domain/services/rating"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer wires a server over the pure query handlers. Command
// handlers stay zero values; tests exercising them stop at input validation.
func newTestServer(t *testing.T) *printhttp.Server {
	t.Helper()

	index := rating.NewZipIndex(map[string]rating.Coordinates{
		"10001": {Lat: 40.7506, Lng: -73.9972},
	})
	origin, err := kernel.NewZipCode("10001")
	require.NoError(t, err)
	shipping, err := rating.NewCalculator(index, origin)
	require.NoError(t, err)
	quotes := quoting.NewCalculator(material.DefaultCatalog(), shipping)

	return printhttp.NewServer(
		commands.CheckoutCommandHandler{},
		commands.CreateLabelCommandHandler{},
		queries.NewGetQuoteQueryHandler(quotes),
		queries.NewGetPackingPlanQueryHandler(packing.NewOptimizer()),
		queries.NewGetMaterialsQueryHandler(material.DefaultCatalog()),
		queries.GetUnshippedOrdersQueryHandler{},
	)
}

func doJSON(t *testing.T, server *printhttp.Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	server.RegisterRoutes(e)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestServer_GetQuote(t *testing.T) {
	server := newTestServer(t)

	t.Run("should price a valid request", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/v1/quote",
			`{"zip":"10001","material":"PLA Basic","quantity":1,"serviceTier":"economy","volumeCm3":150.5}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp printhttp.QuoteResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "$20.00", resp.BaseCost)
		assert.Equal(t, "$3.73", resp.MaterialCost)
		assert.Equal(t, "$5.20", resp.ShippingCost)
		assert.Equal(t, "$0.00", resp.RushSurcharge)
		assert.Equal(t, "$2.47", resp.SalesTax)
		assert.Equal(t, "$28.93", resp.TotalBeforeTax)
		assert.Equal(t, "$31.40", resp.Total)
		assert.InDelta(t, 186.62, resp.UnitWeightG, 1e-9)
	})

	t.Run("should reject an invalid zip", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/v1/quote",
			`{"zip":"1000","material":"PLA Basic","quantity":1,"serviceTier":"economy","volumeCm3":150.5}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should reject an unknown service tier", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/v1/quote",
			`{"zip":"10001","material":"PLA Basic","quantity":1,"serviceTier":"overnight","volumeCm3":150.5}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should report an unknown material as not found", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/v1/quote",
			`{"zip":"10001","material":"Unobtainium","quantity":1,"serviceTier":"economy","volumeCm3":150.5}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var errResp printhttp.Error
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.Equal(t, http.StatusNotFound, errResp.Code)
	})

	t.Run("should reject a zero quantity", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/v1/quote",
			`{"zip":"10001","material":"PLA Basic","quantity":0,"serviceTier":"economy","volumeCm3":150.5}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_GetPackingPlan(t *testing.T) {
	server := newTestServer(t)

	t.Run("should compute a fitted plan", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/v1/packing",
			`{"lengthMm":100,"widthMm":80,"heightMm":40,"quantity":2,"unitWeightG":186.62,`+
				`"shippingMethod":"USPS Ground Advantage"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp printhttp.PackingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "USPS Ground Advantage", resp.ShippingMethod)
		assert.Equal(t, 1, resp.PackageCount)
		assert.NotEmpty(t, resp.Recommendation)
	})

	t.Run("should pack for a UPS method", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/v1/packing",
			`{"lengthMm":100,"widthMm":80,"heightMm":40,"quantity":2,"unitWeightG":186.62,`+
				`"shippingMethod":"UPS Ground"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp printhttp.PackingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "UPS Ground", resp.ShippingMethod)
		assert.NotEqual(t, "Custom Packaging", resp.Strategy)
	})

	t.Run("should degrade without dimensions", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/v1/packing",
			`{"quantity":1,"unitWeightG":250,"shippingMethod":"USPS Priority Mail"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp printhttp.PackingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Generic - Dimensions Not Available", resp.Strategy)
	})

	t.Run("should advise custom packaging for an unknown method", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/v1/packing",
			`{"quantity":1,"unitWeightG":250,"shippingMethod":"Drone Express"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp printhttp.PackingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Custom Packaging", resp.Strategy)
		assert.Contains(t, resp.Recommendation, "Drone Express")
	})
}

func TestServer_GetMaterials(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodGet, "/api/v1/materials", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []printhttp.MaterialResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 4)
	assert.Equal(t, "PETG Basic", resp[0].Name)
}

func TestServer_Checkout_InputValidation(t *testing.T) {
	server := newTestServer(t)

	t.Run("should reject an invalid zip", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/v1/checkout",
			`{"customerName":"Ada","customerEmail":"ada@example.com","zip":"abc","material":"PLA Basic",`+
				`"quantity":1,"serviceTier":"economy","volumeCm3":150.5}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should reject a missing customer name", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/v1/checkout",
			`{"customerEmail":"ada@example.com","zip":"10001","material":"PLA Basic",`+
				`"quantity":1,"serviceTier":"economy","volumeCm3":150.5}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_CreateLabel_InvalidOrderID(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodPost, "/api/v1/orders/not-a-uuid/label", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
