package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"printshop/internal/core/domain/model/customer"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/services/quoting"
	"printshop/internal/core/ports"
	"printshop/internal/pkg/errs"
)

// CheckoutCommandHandler places a print order: it prices the job, finds or
// registers the customer, creates the order in Pending status and attaches a
// hosted payment link.
//
// The payment link is created before the transaction commits; if the gateway
// call fails the order is not persisted.
type CheckoutCommandHandler struct {
	uowFactory UoWFactory
	quotes     quoting.Calculator
	gateway    ports.PaymentGateway
}

// CheckoutResult reports the created order back to the caller.
type CheckoutResult struct {
	OrderNumber string
	PaymentURL  string
	TotalCents  int64
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(
	uowFactory UoWFactory,
	quotes quoting.Calculator,
	gateway ports.PaymentGateway,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		quotes:     quotes,
		gateway:    gateway,
	}
}

// Handle processes the checkout command.
// Prices the job through the quote calculator, reuses an existing customer
// by email or registers a new one, and persists the order with its frozen
// price snapshot and payment link in a single transaction.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (CheckoutResult, error) {
	if err := cmd.Validate(); err != nil {
		return CheckoutResult{}, err
	}

	spec := cmd.Spec()
	breakdown, err := h.quotes.Quote(quoting.Request{
		Zip:          cmd.Destination(),
		MaterialName: spec.MaterialName,
		Quantity:     spec.Quantity,
		RushOrder:    spec.RushOrder,
		ServiceTier:  spec.ServiceTier,
		LocalPickup:  spec.LocalPickup,
		VolumeCm3:    spec.VolumeCm3,
		WeightG:      spec.WeightG,
	})
	if err != nil {
		return CheckoutResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CheckoutResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	buyer, err := h.findOrRegisterCustomer(ctx, uow, cmd)
	if err != nil {
		return CheckoutResult{}, err
	}

	newOrder, err := order.NewPrintOrder(
		cmd.OrderID(),
		buyer.ID(),
		order.Spec{
			MaterialName:   spec.MaterialName,
			Quantity:       spec.Quantity,
			DestinationZip: cmd.Destination(),
			ServiceTier:    spec.ServiceTier,
			RushOrder:      spec.RushOrder,
			LocalPickup:    spec.LocalPickup,
			LengthMM:       spec.LengthMM,
			WidthMM:        spec.WidthMM,
			HeightMM:       spec.HeightMM,
			UnitWeightG:    breakdown.UnitWeightG,
		},
		order.PriceSnapshot{
			Base:     breakdown.BaseCost,
			Material: breakdown.MaterialCost,
			Shipping: breakdown.ShippingCost,
			Rush:     breakdown.RushSurcharge,
			Tax:      breakdown.SalesTax,
			Total:    breakdown.Total,
		},
		time.Now())
	if err != nil {
		return CheckoutResult{}, err
	}

	paymentURL, err := h.gateway.CreatePaymentLink(ctx, ports.PaymentLinkRequest{
		OrderNumber:   newOrder.Number(),
		CustomerEmail: buyer.Email(),
		Description:   fmt.Sprintf("3D print order %s (%dx %s)", newOrder.Number(), spec.Quantity, spec.MaterialName),
		AmountCents:   breakdown.Total.Cents(),
	})
	if err != nil {
		return CheckoutResult{}, err
	}

	if err = newOrder.AttachPaymentLink(paymentURL); err != nil {
		return CheckoutResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return CheckoutResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CheckoutResult{}, err
	}

	return CheckoutResult{
		OrderNumber: newOrder.Number(),
		PaymentURL:  paymentURL,
		TotalCents:  breakdown.Total.Cents(),
	}, nil
}

// findOrRegisterCustomer reuses the customer owning the command's email or
// registers a new one inside the current transaction.
func (h *CheckoutCommandHandler) findOrRegisterCustomer(
	ctx context.Context, uow UoW, cmd CheckoutCommand,
) (*customer.Customer, error) {
	repo := uow.CustomerRepository()

	existing, err := repo.GetByEmail(ctx, cmd.CustomerEmail())
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	registered, err := customer.NewCustomer(kernel.NewUUID(), cmd.CustomerName(), cmd.CustomerEmail())
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, registered); err != nil {
		return nil, err
	}

	return registered, nil
}
