package ports

import "context"

// LabelRequest describes one shipment to buy a label for.
type LabelRequest struct {
	OrderNumber     string
	DestinationZip  string
	ShippingMethod  string
	PackageLengthIn float64
	PackageWidthIn  float64
	PackageHeightIn float64
	WeightLbs       float64
}

// Label is a purchased shipping label.
type Label struct {
	TrackingNumber string
	// LabelURL points at the printable label document.
	LabelURL string
	// CostCents is what the carrier charged for the label.
	CostCents int64
}

// TrackingStatus is a carrier's view of a shipment.
type TrackingStatus struct {
	TrackingNumber string
	// Delivered reports whether the carrier confirmed final delivery.
	Delivered bool
	// Description is the carrier's latest human-readable activity line.
	Description string
}

// Carrier abstracts the shipping carrier API used to buy labels and follow
// shipments.
type Carrier interface {
	// CreateLabel purchases a shipping label for one package.
	CreateLabel(ctx context.Context, req LabelRequest) (Label, error)

	// Track returns the carrier's current view of a shipment.
	Track(ctx context.Context, trackingNumber string) (TrackingStatus, error)
}
