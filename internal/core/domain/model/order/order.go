package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/services/rating"
	"printshop/internal/pkg/errs"
)

var (
	// ErrPrintOrderIsNotConstructed is returned when a PrintOrder instance was
	// not created through NewPrintOrder or RestorePrintOrder. This ensures all
	// orders are properly validated.
	ErrPrintOrderIsNotConstructed = errors.New("PrintOrder must be created via NewPrintOrder constructor")
)

// Spec captures what the customer ordered: the model, material, quantity and
// shipping preferences. It is immutable once the order is placed.
//
// Dimensions are optional: uploads without captured geometry leave all three
// at zero and downstream packing falls back to a weight-only plan. When
// present all three must be positive.
type Spec struct {
	MaterialName   string
	Quantity       int
	DestinationZip kernel.ZipCode
	ServiceTier    rating.ServiceTier
	RushOrder      bool
	LocalPickup    bool
	LengthMM       float64
	WidthMM        float64
	HeightMM       float64
	// UnitWeightG is the per-unit print weight in grams, snapshotted from the
	// quote so later catalog changes never reprice a placed order.
	UnitWeightG float64
}

// PriceSnapshot freezes the quoted price components at checkout time.
// Total must equal the sum of the other components.
type PriceSnapshot struct {
	Base     kernel.Money
	Material kernel.Money
	Shipping kernel.Money
	Rush     kernel.Money
	Tax      kernel.Money
	Total    kernel.Money
}

// PrintOrder represents a customer's print job from checkout through
// delivery. It is the aggregate root that manages the order lifecycle.
//
// PrintOrder follows these invariants:
//   - Must have valid unique identifiers for the order and customer
//   - The spec must name a material, a positive quantity and a valid
//     destination
//   - The price snapshot components must add up to its total
//   - Status transitions follow the rules defined on Status
//   - Can only be created through NewPrintOrder or RestorePrintOrder
type PrintOrder struct {
	id         kernel.UUID
	customerID kernel.UUID

	// number is the human-facing order number, e.g. ORD-20260828-5E0AF3B2.
	number string

	spec  Spec
	price PriceSnapshot

	// paymentURL is the checkout link handed to the customer (empty until a
	// payment link is attached).
	paymentURL string

	// trackingNumber is set when a shipping label is created.
	trackingNumber string

	status   Status
	placedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewPrintOrder creates a new PrintOrder with validation. The order starts in
// Pending status with its order number derived from the placement date and
// the order ID.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - customerID: Identifier of the ordering customer (must be valid UUID)
//   - spec: What was ordered (material, quantity, destination, tier)
//   - price: The quoted price components to freeze on the order
//   - placedAt: Placement time (must be non-zero; used for the order number)
//
// Returns:
//   - *PrintOrder: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewPrintOrder(id kernel.UUID, customerID kernel.UUID, spec Spec, price PriceSnapshot, placedAt time.Time) (*PrintOrder, error) {
	order := &PrintOrder{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setSpec(spec),
		order.setPrice(price),
		order.setPlacedAt(placedAt),
	); err != nil {
		return nil, err
	}

	order.number = numberFor(id, placedAt)
	return order, nil
}

// RestorePrintOrder reconstructs a PrintOrder from persistence with its full
// state, including status, payment link and tracking number. It applies the
// same field validation as NewPrintOrder plus a status check.
//
// This must only be used by repositories; application code creates orders
// through NewPrintOrder.
func RestorePrintOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	number string,
	spec Spec,
	price PriceSnapshot,
	status Status,
	paymentURL string,
	trackingNumber string,
	placedAt time.Time,
) (*PrintOrder, error) {
	order := &PrintOrder{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setNumber(number),
		order.setSpec(spec),
		order.setPrice(price),
		order.setStatus(status),
		order.setPlacedAt(placedAt),
	); err != nil {
		return nil, err
	}

	order.paymentURL = paymentURL
	order.trackingNumber = trackingNumber
	return order, nil
}

// Validate ensures the PrintOrder instance was properly constructed.
// Returns ErrPrintOrderIsNotConstructed for directly instantiated structs.
func (o *PrintOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrPrintOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *PrintOrder) IsEqual(other *PrintOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *PrintOrder) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *PrintOrder) CustomerID() kernel.UUID {
	return o.customerID
}

// Number returns the human-facing order number.
func (o *PrintOrder) Number() string {
	return o.number
}

// Spec returns what was ordered.
func (o *PrintOrder) Spec() Spec {
	return o.spec
}

// Price returns the price snapshot frozen at checkout.
func (o *PrintOrder) Price() PriceSnapshot {
	return o.price
}

// PaymentURL returns the checkout link, or an empty string when no payment
// link was attached yet.
func (o *PrintOrder) PaymentURL() string {
	return o.paymentURL
}

// TrackingNumber returns the carrier tracking number, or an empty string
// before the order ships.
func (o *PrintOrder) TrackingNumber() string {
	return o.trackingNumber
}

// Status returns the current status of the order.
func (o *PrintOrder) Status() Status {
	return o.status
}

// PlacedAt returns the placement time of the order.
func (o *PrintOrder) PlacedAt() time.Time {
	return o.placedAt
}

// AttachPaymentLink records the checkout URL handed to the customer.
// Only pending orders accept a payment link.
func (o *PrintOrder) AttachPaymentLink(url string) error {
	if url == "" {
		return errs.NewValueIsRequiredError("paymentURL")
	}
	if o.status != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to attach a payment link", o.status),
		)
	}

	o.paymentURL = url
	return nil
}

// MarkPaid records a completed payment and moves the order to Paid.
func (o *PrintOrder) MarkPaid() error {
	newStatus, err := o.status.MarkPaid()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// StartPrinting moves a paid order onto a printer.
func (o *PrintOrder) StartPrinting() error {
	newStatus, err := o.status.StartPrinting()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Ship records the carrier tracking number and moves the order to Shipped.
// Allowed from Paid or Printing; the tracking number is required.
func (o *PrintOrder) Ship(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}

	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.trackingNumber = trackingNumber
	return nil
}

// MarkDelivered records carrier-confirmed delivery. This is a final state.
func (o *PrintOrder) MarkDelivered() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel cancels the order. Only pending and paid orders can be cancelled.
func (o *PrintOrder) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// numberFor derives the order number from the placement date and the first
// eight hex digits of the order ID.
func numberFor(id kernel.UUID, placedAt time.Time) string {
	return fmt.Sprintf("ORD-%s-%s",
		placedAt.UTC().Format("20060102"),
		strings.ToUpper(id.String()[:8]))
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *PrintOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the ordering customer's identifier.
// This is a private method used only during construction.
func (o *PrintOrder) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setNumber validates and sets the order number during restoration.
func (o *PrintOrder) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	o.number = number
	return nil
}

// setSpec validates the order spec. Dimensions must be all absent or all
// positive; weight must be positive.
func (o *PrintOrder) setSpec(spec Spec) error {
	if spec.MaterialName == "" {
		return errs.NewValueIsRequiredError("materialName")
	}
	if spec.Quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", spec.Quantity, 1, "unbounded")
	}
	if err := spec.DestinationZip.Validate(); err != nil {
		return err
	}
	if err := spec.ServiceTier.Validate(); err != nil {
		return err
	}
	if spec.UnitWeightG <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitWeightG is invalid",
			fmt.Errorf("%g is not greater than 0", spec.UnitWeightG))
	}

	hasDims := spec.LengthMM > 0 && spec.WidthMM > 0 && spec.HeightMM > 0
	noDims := spec.LengthMM == 0 && spec.WidthMM == 0 && spec.HeightMM == 0
	if !hasDims && !noDims {
		return errs.NewValueIsInvalidErrorWithCause("dimensions are invalid",
			fmt.Errorf("%g×%g×%g must be all positive or all absent",
				spec.LengthMM, spec.WidthMM, spec.HeightMM))
	}

	o.spec = spec
	return nil
}

// setPrice validates the price snapshot: every component must be a
// constructed Money and the total must equal the component sum.
func (o *PrintOrder) setPrice(price PriceSnapshot) error {
	if err := errors.Join(
		price.Base.Validate(),
		price.Material.Validate(),
		price.Shipping.Validate(),
		price.Rush.Validate(),
		price.Tax.Validate(),
		price.Total.Validate(),
	); err != nil {
		return err
	}

	componentSum := price.Base.Cents() + price.Material.Cents() +
		price.Shipping.Cents() + price.Rush.Cents() + price.Tax.Cents()
	if price.Total.Cents() != componentSum {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("total %d does not match component sum %d",
				price.Total.Cents(), componentSum))
	}

	o.price = price
	return nil
}

// setStatus validates and sets the status during restoration.
func (o *PrintOrder) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setPlacedAt validates and sets the placement time.
func (o *PrintOrder) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("placedAt")
	}
	o.placedAt = placedAt
	return nil
}
