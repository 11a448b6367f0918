package http

import "time"

// Error is the JSON error envelope returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// QuoteRequest is the body of POST /api/v1/quote.
type QuoteRequest struct {
	Zip         string  `json:"zip"`
	Material    string  `json:"material"`
	Quantity    int     `json:"quantity"`
	RushOrder   bool    `json:"rushOrder"`
	ServiceTier string  `json:"serviceTier"`
	LocalPickup bool    `json:"localPickup"`
	VolumeCm3   float64 `json:"volumeCm3"`
	WeightG     float64 `json:"weightG,omitempty"`
}

// QuoteResponse is the priced breakdown returned for a quote. Currency
// amounts are dollar strings with two decimals, e.g. "$31.40".
type QuoteResponse struct {
	BaseCost         string  `json:"baseCost"`
	MaterialCost     string  `json:"materialCost"`
	ShippingCost     string  `json:"shippingCost"`
	RushSurcharge    string  `json:"rushSurcharge"`
	SalesTax         string  `json:"salesTax"`
	TotalBeforeTax   string  `json:"totalBeforeTax"`
	Total            string  `json:"total"`
	UnitWeightG      float64 `json:"unitWeightG"`
	ShippingWeightKG float64 `json:"shippingWeightKg"`
}

// PackingRequest is the body of POST /api/v1/packing. ShippingMethod is a
// carrier method name such as "USPS Ground Advantage" or "UPS Ground";
// unknown methods yield a custom packaging advisory instead of an error.
type PackingRequest struct {
	LengthMM       float64 `json:"lengthMm"`
	WidthMM        float64 `json:"widthMm"`
	HeightMM       float64 `json:"heightMm"`
	Quantity       int     `json:"quantity"`
	UnitWeightG    float64 `json:"unitWeightG"`
	ShippingMethod string  `json:"shippingMethod"`
}

// PackingResponse is the box recommendation for an order line.
type PackingResponse struct {
	ShippingMethod  string   `json:"shippingMethod"`
	Strategy        string   `json:"strategy"`
	Recommendation  string   `json:"recommendation"`
	PackageLengthIn float64  `json:"packageLengthIn,omitempty"`
	PackageWidthIn  float64  `json:"packageWidthIn,omitempty"`
	PackageHeightIn float64  `json:"packageHeightIn,omitempty"`
	TotalWeightLbs  float64  `json:"totalWeightLbs"`
	PackageCount    int      `json:"packageCount"`
	Notes           []string `json:"notes"`
}

// CheckoutRequest is the body of POST /api/v1/checkout.
type CheckoutRequest struct {
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	Zip           string  `json:"zip"`
	Material      string  `json:"material"`
	Quantity      int     `json:"quantity"`
	RushOrder     bool    `json:"rushOrder"`
	ServiceTier   string  `json:"serviceTier"`
	LocalPickup   bool    `json:"localPickup"`
	VolumeCm3     float64 `json:"volumeCm3"`
	WeightG       float64 `json:"weightG,omitempty"`
	LengthMM      float64 `json:"lengthMm,omitempty"`
	WidthMM       float64 `json:"widthMm,omitempty"`
	HeightMM      float64 `json:"heightMm,omitempty"`
}

// CheckoutResponse reports the created order and its payment link.
type CheckoutResponse struct {
	OrderNumber string `json:"orderNumber"`
	PaymentURL  string `json:"paymentUrl"`
	TotalCents  int64  `json:"totalCents"`
}

// LabelResponse reports the purchased shipping label.
type LabelResponse struct {
	TrackingNumber string `json:"trackingNumber"`
	LabelURL       string `json:"labelUrl"`
	PackageCount   int    `json:"packageCount"`
}

// UnshippedOrder is one open order on the fulfillment dashboard.
type UnshippedOrder struct {
	ID              string    `json:"id"`
	Number          string    `json:"number"`
	Material        string    `json:"material"`
	Quantity        int       `json:"quantity"`
	DestinationZip  string    `json:"destinationZip"`
	ServiceTier     string    `json:"serviceTier"`
	Status          string    `json:"status"`
	TrackingNumber  string    `json:"trackingNumber,omitempty"`
	PriceTotalCents int64     `json:"priceTotalCents"`
	PlacedAt        time.Time `json:"placedAt"`
}

// MaterialResponse is one orderable filament.
type MaterialResponse struct {
	Name            string  `json:"name"`
	DensityGPerCm3  float64 `json:"densityGPerCm3"`
	PricePerKGCents int64   `json:"pricePerKgCents"`
}
