// Package http exposes the application's REST API on echo. Handlers parse
// and validate transport input, delegate to command and query handlers, and
// map domain errors onto HTTP status codes.
package http

import (
	"errors"
	"fmt"
	"net/http"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/services/rating"
	"printshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	checkoutHandler    commands.CheckoutCommandHandler
	createLabelHandler commands.CreateLabelCommandHandler

	// Query handlers
	getQuoteHandler        queries.GetQuoteQueryHandler
	getPackingPlanHandler  queries.GetPackingPlanQueryHandler
	getMaterialsHandler    queries.GetMaterialsQueryHandler
	getUnshippedOrdersHndl queries.GetUnshippedOrdersQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	checkoutHandler commands.CheckoutCommandHandler,
	createLabelHandler commands.CreateLabelCommandHandler,
	getQuoteHandler queries.GetQuoteQueryHandler,
	getPackingPlanHandler queries.GetPackingPlanQueryHandler,
	getMaterialsHandler queries.GetMaterialsQueryHandler,
	getUnshippedOrdersHandler queries.GetUnshippedOrdersQueryHandler,
) *Server {
	return &Server{
		checkoutHandler:        checkoutHandler,
		createLabelHandler:     createLabelHandler,
		getQuoteHandler:        getQuoteHandler,
		getPackingPlanHandler:  getPackingPlanHandler,
		getMaterialsHandler:    getMaterialsHandler,
		getUnshippedOrdersHndl: getUnshippedOrdersHandler,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/quote", s.GetQuote)
	api.POST("/packing", s.GetPackingPlan)
	api.POST("/checkout", s.Checkout)
	api.POST("/orders/:id/label", s.CreateLabel)
	api.GET("/orders/unshipped", s.GetUnshippedOrders)
	api.GET("/materials", s.GetMaterials)
}

// GetQuote handles POST /api/v1/quote - prices a print job.
func (s *Server) GetQuote(ctx echo.Context) error {
	var req QuoteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	zip, tier, err := parseDestination(req.Zip, req.ServiceTier)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetQuoteQuery(
		zip, req.Material, req.Quantity, req.RushOrder, tier, req.LocalPickup, req.VolumeCm3, req.WeightG)
	if err != nil {
		return badRequest(ctx, "Invalid quote request: "+err.Error())
	}

	quote, err := s.getQuoteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, QuoteResponse{
		BaseCost:         dollars(quote.BaseCostCents),
		MaterialCost:     dollars(quote.MaterialCostCents),
		ShippingCost:     dollars(quote.ShippingCostCents),
		RushSurcharge:    dollars(quote.RushSurchargeCents),
		SalesTax:         dollars(quote.SalesTaxCents),
		TotalBeforeTax:   dollars(quote.TotalBeforeTaxCents),
		Total:            dollars(quote.TotalCents),
		UnitWeightG:      quote.UnitWeightG,
		ShippingWeightKG: quote.ShippingWeightKG,
	})
}

// GetPackingPlan handles POST /api/v1/packing - computes a box
// recommendation.
func (s *Server) GetPackingPlan(ctx echo.Context) error {
	var req PackingRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewGetPackingPlanQuery(
		req.LengthMM, req.WidthMM, req.HeightMM, req.Quantity, req.UnitWeightG, req.ShippingMethod)
	if err != nil {
		return badRequest(ctx, "Invalid packing request: "+err.Error())
	}

	plan, err := s.getPackingPlanHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PackingResponse{
		ShippingMethod:  plan.ShippingMethod,
		Strategy:        plan.Strategy,
		Recommendation:  plan.Recommendation,
		PackageLengthIn: plan.PackageLengthIn,
		PackageWidthIn:  plan.PackageWidthIn,
		PackageHeightIn: plan.PackageHeightIn,
		TotalWeightLbs:  plan.TotalWeightLbs,
		PackageCount:    plan.PackageCount,
		Notes:           plan.Notes,
	})
}

// Checkout handles POST /api/v1/checkout - places an order and returns its
// payment link.
func (s *Server) Checkout(ctx echo.Context) error {
	var req CheckoutRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	zip, tier, err := parseDestination(req.Zip, req.ServiceTier)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCheckoutCommand(
		kernel.NewUUID(),
		req.CustomerName,
		req.CustomerEmail,
		zip,
		commands.CheckoutSpec{
			MaterialName: req.Material,
			Quantity:     req.Quantity,
			RushOrder:    req.RushOrder,
			ServiceTier:  tier,
			LocalPickup:  req.LocalPickup,
			VolumeCm3:    req.VolumeCm3,
			WeightG:      req.WeightG,
			LengthMM:     req.LengthMM,
			WidthMM:      req.WidthMM,
			HeightMM:     req.HeightMM,
		})
	if err != nil {
		return badRequest(ctx, "Invalid checkout data: "+err.Error())
	}

	result, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CheckoutResponse{
		OrderNumber: result.OrderNumber,
		PaymentURL:  result.PaymentURL,
		TotalCents:  result.TotalCents,
	})
}

// CreateLabel handles POST /api/v1/orders/:id/label - buys a shipping label
// for a paid order.
func (s *Server) CreateLabel(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCreateLabelCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid label request: "+err.Error())
	}

	result, err := s.createLabelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, LabelResponse{
		TrackingNumber: result.TrackingNumber,
		LabelURL:       result.LabelURL,
		PackageCount:   result.PackageCount,
	})
}

// GetUnshippedOrders handles GET /api/v1/orders/unshipped - lists open
// orders for the fulfillment dashboard.
func (s *Server) GetUnshippedOrders(ctx echo.Context) error {
	query := queries.NewGetUnshippedOrdersQuery()

	orders, err := s.getUnshippedOrdersHndl.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]UnshippedOrder, len(orders))
	for i, o := range orders {
		response[i] = UnshippedOrder{
			ID:              o.ID.String(),
			Number:          o.Number,
			Material:        o.MaterialName,
			Quantity:        o.Quantity,
			DestinationZip:  o.DestinationZip,
			ServiceTier:     o.ServiceTier,
			Status:          o.Status,
			TrackingNumber:  o.TrackingNumber,
			PriceTotalCents: o.PriceTotalCents,
			PlacedAt:        o.PlacedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMaterials handles GET /api/v1/materials - lists the filament catalog.
func (s *Server) GetMaterials(ctx echo.Context) error {
	materials, err := s.getMaterialsHandler.Handle(ctx.Request().Context(), queries.NewGetMaterialsQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve materials")
	}

	response := make([]MaterialResponse, len(materials))
	for i, m := range materials {
		response[i] = MaterialResponse{
			Name:            m.Name,
			DensityGPerCm3:  m.DensityGPerCm3,
			PricePerKGCents: m.PricePerKGCents,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// dollars renders a cent amount as a two-decimal currency string, the same
// display format kernel.Money uses.
func dollars(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

// parseDestination converts the wire forms of the ZIP code and service tier.
func parseDestination(zip, tier string) (kernel.ZipCode, rating.ServiceTier, error) {
	destination, err := kernel.NewZipCode(zip)
	if err != nil {
		return kernel.ZipCode{}, "", errors.New("invalid zip code: " + zip)
	}

	serviceTier, err := rating.ParseServiceTier(tier)
	if err != nil {
		return kernel.ZipCode{}, "", errors.New("invalid service tier: " + tier)
	}

	return destination, serviceTier, nil
}

// domainError maps use case failures onto HTTP status codes: unknown
// references are 404, invalid input is 400, everything else is a 500.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return internalError(ctx, "Request failed")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
