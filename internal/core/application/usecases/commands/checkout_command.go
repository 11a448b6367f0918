package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/services/rating"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrCustomerNameIsRequired  = errors.New("customer name is required")
	ErrCustomerEmailIsRequired = errors.New("customer email is required")
	ErrMaterialNameIsRequired  = errors.New("material name is required")
	ErrQuantityIsInvalid       = errors.New("quantity must be greater than 0")
)

// CheckoutSpec carries the print job parameters of a checkout: the model
// geometry, material, quantity and the shipping preferences. Validation of
// the cross-field rules happens in the quote calculation the handler runs.
type CheckoutSpec struct {
	MaterialName string
	Quantity     int
	RushOrder    bool
	ServiceTier  rating.ServiceTier
	LocalPickup  bool
	VolumeCm3    float64
	WeightG      float64
	LengthMM     float64
	WidthMM      float64
	HeightMM     float64
}

// CheckoutCommand represents a request to place a print order: price it,
// create the order in Pending status and hand back a payment link.
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerName  string
	customerEmail string
	destination   kernel.ZipCode
	spec          CheckoutSpec

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout command. Validates identity and
// contact fields; the print job spec is validated when the quote is priced.
func NewCheckoutCommand(
	orderID kernel.UUID,
	customerName string,
	customerEmail string,
	destination kernel.ZipCode,
	spec CheckoutSpec,
) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerName(customerName),
		cmd.setCustomerEmail(customerEmail),
		cmd.setDestination(destination),
		cmd.setSpec(spec),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the ordering customer's display name.
func (c CheckoutCommand) CustomerName() string {
	return c.customerName
}

// CustomerEmail returns the ordering customer's email address.
func (c CheckoutCommand) CustomerEmail() string {
	return c.customerEmail
}

// Destination returns the shipping destination ZIP code.
func (c CheckoutCommand) Destination() kernel.ZipCode {
	return c.destination
}

// Spec returns the print job parameters.
func (c CheckoutCommand) Spec() CheckoutSpec {
	return c.spec
}

func (c *CheckoutCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CheckoutCommand) setCustomerName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = name
	return nil
}

func (c *CheckoutCommand) setCustomerEmail(email string) error {
	if email == "" {
		return ErrCustomerEmailIsRequired
	}

	c.customerEmail = email
	return nil
}

func (c *CheckoutCommand) setDestination(destination kernel.ZipCode) error {
	if err := destination.Validate(); err != nil {
		return err
	}

	c.destination = destination
	return nil
}

func (c *CheckoutCommand) setSpec(spec CheckoutSpec) error {
	if spec.MaterialName == "" {
		return ErrMaterialNameIsRequired
	}
	if spec.Quantity < 1 {
		return ErrQuantityIsInvalid
	}
	if err := spec.ServiceTier.Validate(); err != nil {
		return err
	}
	if spec.VolumeCm3 < 0 {
		return errs.NewValueIsInvalidError("volumeCm3")
	}
	if spec.WeightG < 0 {
		return errs.NewValueIsInvalidError("weightG")
	}
	if spec.LengthMM < 0 || spec.WidthMM < 0 || spec.HeightMM < 0 {
		return errs.NewValueIsInvalidError("dimensions")
	}

	c.spec = spec
	return nil
}
