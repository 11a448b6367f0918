package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrCreateLabelCommandIsNotConstructed = errors.New(
	"CreateLabelCommand must be created via NewCreateLabelCommand constructor",
)

// CreateLabelCommand represents a request to purchase a shipping label for a
// paid order. The order moves to Shipped with the carrier's tracking number.
type CreateLabelCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateLabelCommand creates a command to buy a label for one order.
func NewCreateLabelCommand(orderID kernel.UUID) (CreateLabelCommand, error) {
	cmd := CreateLabelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CreateLabelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLabelCommand) Validate() error {
	return c.guard.Validate(ErrCreateLabelCommandIsNotConstructed)
}

// OrderID returns the order to ship.
func (c CreateLabelCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CreateLabelCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
