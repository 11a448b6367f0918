package customer

import (
	"errors"
	"strings"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

// Domain errors for customer operations.
var (
	// ErrNameIsRequired is returned when attempting to create a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned when attempting to create a customer without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer represents a person placing print orders. It is an aggregate root
// holding contact details and the link to the customer's record at the
// payment provider.
//
// Business rules:
//   - Customer must have a valid UUID, non-empty name and a plausible email
//   - Phone and the payment provider reference are optional
type Customer struct {
	// id uniquely identifies the customer
	id kernel.UUID
	// name is the customer's display name
	name string
	// email is the contact address used for payment links and notifications
	email string
	// phone is an optional contact number
	phone string
	// paymentProviderID references the customer record at the payment
	// provider (empty until the first checkout)
	paymentProviderID string
	// guard ensures the customer was properly constructed
	guard guard.ConstructorGuard
}

// NewCustomer creates a new Customer with the specified contact details.
//
// Parameters:
//   - id: Unique identifier (must be valid UUID)
//   - name: Display name (must be non-empty)
//   - email: Contact address (must contain a local part and a domain)
//
// Returns:
//   - *Customer: A fully initialized customer
//   - error: Validation error if any parameter is invalid
func NewCustomer(id kernel.UUID, name string, email string) (*Customer, error) {
	customer := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
		customer.setEmail(email),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// RestoreCustomer reconstructs a Customer from persistent storage, including
// the optional phone and payment provider reference. It must only be used by
// repositories.
func RestoreCustomer(id kernel.UUID, name string, email string, phone string, paymentProviderID string) (*Customer, error) {
	customer := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
		customer.setEmail(email),
	); err != nil {
		return nil, err
	}

	customer.phone = phone
	customer.paymentProviderID = paymentProviderID
	return customer, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's contact address.
func (c *Customer) Email() string {
	return c.email
}

// Phone returns the optional contact number, or an empty string.
func (c *Customer) Phone() string {
	return c.phone
}

// PaymentProviderID returns the payment provider's customer reference, or an
// empty string before the first checkout.
func (c *Customer) PaymentProviderID() string {
	return c.paymentProviderID
}

// SetPhone updates the optional contact number. An empty value clears it.
func (c *Customer) SetPhone(phone string) {
	c.phone = phone
}

// LinkPaymentProvider records the customer reference assigned by the payment
// provider. The reference is required.
func (c *Customer) LinkPaymentProvider(providerID string) error {
	if providerID == "" {
		return errs.NewValueIsRequiredError("paymentProviderID")
	}
	c.paymentProviderID = providerID
	return nil
}

// setID validates and sets the customer's unique identifier.
func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

// setName validates and sets the display name.
func (c *Customer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

// setEmail validates and sets the contact address. The check is intentionally
// loose: a local part, an @ and a domain with a dot.
func (c *Customer) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	at := strings.Index(email, "@")
	if at < 1 || !strings.Contains(email[at+1:], ".") {
		return errs.NewValueIsInvalidError("email")
	}

	c.email = email
	return nil
}
