// Package ports defines the driven-side interfaces of the application: the
// persistence, payment and carrier contracts the adapters implement. These
// interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"printshop/internal/core/domain/model/customer"
	"printshop/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer
// aggregates.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	// The customer must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByEmail retrieves a customer by email address. Returns an
	// object-not-found error when no customer uses the address.
	GetByEmail(ctx context.Context, email string) (*customer.Customer, error)
}
