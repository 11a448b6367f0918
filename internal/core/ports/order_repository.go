package ports

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for print order
// aggregates. Provides methods for storing, retrieving, and querying orders
// by their lifecycle state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.PrintOrder) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.PrintOrder) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.PrintOrder, error)

	// GetAllInShippedStatus retrieves all orders awaiting a carrier delivery
	// confirmation. Used by the tracking refresh job.
	GetAllInShippedStatus(ctx context.Context) ([]*order.PrintOrder, error)

	// GetAllReadyToShip retrieves all paid or printing orders that have no
	// shipping label yet.
	GetAllReadyToShip(ctx context.Context) ([]*order.PrintOrder, error)
}
