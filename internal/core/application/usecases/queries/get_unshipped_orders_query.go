package queries

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrGetUnshippedOrdersQueryIsNotConstructed = errors.New(
	"GetUnshippedOrdersQuery must be created via NewGetUnshippedOrdersQuery constructor",
)

// GetUnshippedOrdersQuery retrieves all orders that have not reached a
// terminal state: everything still pending payment, in production, or in
// transit. Backs the operator's fulfillment dashboard.
type GetUnshippedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnshippedOrdersQuery creates a query to retrieve open orders.
func NewGetUnshippedOrdersQuery() GetUnshippedOrdersQuery {
	return GetUnshippedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnshippedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnshippedOrdersQueryIsNotConstructed)
}

// GetUnshippedOrdersQueryResponse represents one open order on the
// fulfillment dashboard.
type GetUnshippedOrdersQueryResponse struct {
	ID              kernel.UUID
	Number          string
	MaterialName    string
	Quantity        int
	DestinationZip  string
	ServiceTier     string
	Status          string
	TrackingNumber  string
	PriceTotalCents int64
	PlacedAt        time.Time
}
