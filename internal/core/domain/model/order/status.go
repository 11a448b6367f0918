package order

import (
	"fmt"

	"printshop/internal/pkg/errs"
)

// Status represents the lifecycle state of a print order. It implements a
// state machine with defined transitions so orders follow the fulfillment
// workflow.
//
// State transitions:
//
//	Pending -> Paid -> Printing -> Shipped -> Delivered
//	   |         |                    ^
//	   |         +--------------------+  (Ship directly from Paid is allowed)
//	   +-> Cancelled <- Paid
//
// Pending and Paid orders can be cancelled; later states cannot.
type Status int

const (
	// Unknown represents an invalid or undefined status. The zero value
	// helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order exists and awaits payment.
	Pending

	// Paid indicates payment completed and the order is queued for
	// printing.
	Paid

	// Printing indicates the order is on a printer.
	Printing

	// Shipped indicates a label was created and the parcel handed to the
	// carrier.
	Shipped

	// Delivered indicates the carrier reported final delivery. This is a
	// terminal state.
	Delivered

	// Cancelled indicates the order was cancelled before fulfillment.
	// This is a terminal state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Paid:      "Paid",
		Printing:  "Printing",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Paid:      "Paid",
		Printing:  "Printing",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
// Used to reject values arriving from persistence or external input.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. Safe to call on any
// value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// MarkPaid transitions Pending to Paid.
func (s Status) MarkPaid() (Status, error) {
	if s != Pending {
		return 0, invalidTransition(s, "mark paid")
	}
	return Paid, nil
}

// StartPrinting transitions Paid to Printing.
func (s Status) StartPrinting() (Status, error) {
	if s != Paid {
		return 0, invalidTransition(s, "start printing")
	}
	return Printing, nil
}

// Ship transitions Paid or Printing to Shipped. Labels may be created as
// soon as payment clears, so Printing is not a required intermediate state.
func (s Status) Ship() (Status, error) {
	if s != Paid && s != Printing {
		return 0, invalidTransition(s, "ship")
	}
	return Shipped, nil
}

// Deliver transitions Shipped to Delivered.
func (s Status) Deliver() (Status, error) {
	if s != Shipped {
		return 0, invalidTransition(s, "deliver")
	}
	return Delivered, nil
}

// Cancel transitions Pending or Paid to Cancelled. Orders already printing
// or shipped cannot be cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Paid {
		return 0, invalidTransition(s, "cancel")
	}
	return Cancelled, nil
}

func invalidTransition(s Status, action string) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%s is not a valid status to %s", s.String(), action),
	)
}
