package ports

import "context"

// PaymentLinkRequest describes one checkout to collect payment for.
type PaymentLinkRequest struct {
	// OrderNumber is the human-facing order number shown on the payment page.
	OrderNumber string
	// CustomerEmail pre-fills the payment form.
	CustomerEmail string
	// Description is the line item shown to the customer.
	Description string
	// AmountCents is the total charge in cents.
	AmountCents int64
}

// PaymentGateway abstracts the payment provider. The gateway creates hosted
// payment links the customer completes in a browser; payment confirmation
// arrives out of band.
type PaymentGateway interface {
	// CreatePaymentLink creates a hosted payment page for the given charge
	// and returns its URL.
	CreatePaymentLink(ctx context.Context, req PaymentLinkRequest) (string, error)
}
