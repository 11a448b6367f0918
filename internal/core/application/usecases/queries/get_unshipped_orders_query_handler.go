package queries

import (
	"context"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnshippedOrdersQueryHandler reads open orders straight from the
// database. Bypasses the aggregate so the dashboard never pays the cost of
// full order reconstruction.
type GetUnshippedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnshippedOrdersQueryHandler creates a handler for open order queries.
func NewGetUnshippedOrdersQueryHandler(db *gorm.DB) GetUnshippedOrdersQueryHandler {
	return GetUnshippedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-terminal orders, oldest
// first. Delivered and cancelled orders are excluded.
func (h GetUnshippedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnshippedOrdersQuery,
) ([]GetUnshippedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUnshippedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			material_name,
			quantity,
			destination_zip,
			service_tier,
			status,
			tracking_number,
			price_total_cents,
			placed_at
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY placed_at, id
	`, order.Delivered, order.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetUnshippedOrdersQueryResponse
		var id uuid.UUID
		var status int
		var placedAt time.Time

		err = rows.Scan(
			&id,
			&orderResp.Number,
			&orderResp.MaterialName,
			&orderResp.Quantity,
			&orderResp.DestinationZip,
			&orderResp.ServiceTier,
			&status,
			&orderResp.TrackingNumber,
			&orderResp.PriceTotalCents,
			&placedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID
		orderResp.Status = order.Status(status).String()
		orderResp.PlacedAt = placedAt

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
