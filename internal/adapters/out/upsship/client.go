// Package upsship implements the carrier port against the UPS Shipping and
// Tracking APIs. Authentication uses the OAuth2 client credentials flow; the
// token source caches and refreshes tokens automatically.
package upsship

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"printshop/internal/core/ports"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	// ProductionAPIBaseURL is the live UPS API endpoint.
	ProductionAPIBaseURL = "https://onlinetools.ups.com"
	// ProductionOAuthTokenURL issues client credentials tokens.
	ProductionOAuthTokenURL = "https://onlinetools.ups.com/security/v1/oauth/token"

	defaultTimeout = 30 * time.Second
)

// ErrNotConfigured is returned when the client is used without credentials.
var ErrNotConfigured = errors.New("ups is not configured: client credentials are missing")

// Config holds UPS API configuration.
type Config struct {
	ClientID     string
	ClientSecret string
	// ShipperNumber is the UPS account billed for labels.
	ShipperNumber string
	// OriginZip is the ship-from postal code on every label.
	OriginZip string
	// BaseURL and TokenURL override the API endpoints, used in tests.
	BaseURL  string
	TokenURL string
}

// Client is the UPS carrier adapter.
type Client struct {
	config     Config
	httpClient *http.Client
	baseURL    string
}

var _ ports.Carrier = (*Client)(nil)

// NewClient creates a UPS client. The returned client owns an OAuth2
// transport that fetches and refreshes access tokens on demand.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = ProductionAPIBaseURL
	}
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = ProductionOAuthTokenURL
	}

	ccConfig := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     tokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	baseClient := &http.Client{Timeout: defaultTimeout}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, baseClient)

	return &Client{
		config:     cfg,
		httpClient: ccConfig.Client(ctx),
		baseURL:    baseURL,
	}
}

// IsConfigured returns true if UPS API credentials are set.
func (c *Client) IsConfigured() bool {
	return c.config.ClientID != "" && c.config.ClientSecret != ""
}

// shipmentRequest is the subset of the UPS shipment payload the adapter
// sends.
type shipmentRequest struct {
	ShipmentRequest struct {
		Shipment struct {
			Description string `json:"Description"`
			Shipper     struct {
				ShipperNumber string  `json:"ShipperNumber"`
				Address       address `json:"Address"`
			} `json:"Shipper"`
			ShipTo struct {
				Address address `json:"Address"`
			} `json:"ShipTo"`
			Service struct {
				Code string `json:"Code"`
			} `json:"Service"`
			Package pkg `json:"Package"`
		} `json:"Shipment"`
	} `json:"ShipmentRequest"`
}

type address struct {
	PostalCode  string `json:"PostalCode"`
	CountryCode string `json:"CountryCode"`
}

type pkg struct {
	Dimensions struct {
		UnitOfMeasurement struct {
			Code string `json:"Code"`
		} `json:"UnitOfMeasurement"`
		Length string `json:"Length"`
		Width  string `json:"Width"`
		Height string `json:"Height"`
	} `json:"Dimensions"`
	PackageWeight struct {
		UnitOfMeasurement struct {
			Code string `json:"Code"`
		} `json:"UnitOfMeasurement"`
		Weight string `json:"Weight"`
	} `json:"PackageWeight"`
}

// shipmentResponse is the subset of the UPS response the adapter reads.
type shipmentResponse struct {
	ShipmentResponse struct {
		ShipmentResults struct {
			ShipmentCharges struct {
				TotalCharges struct {
					MonetaryValue string `json:"MonetaryValue"`
				} `json:"TotalCharges"`
			} `json:"ShipmentCharges"`
			PackageResults struct {
				TrackingNumber string `json:"TrackingNumber"`
				ShippingLabel  struct {
					GraphicImage string `json:"GraphicImage"`
					URL          string `json:"URL"`
				} `json:"ShippingLabel"`
			} `json:"PackageResults"`
		} `json:"ShipmentResults"`
	} `json:"ShipmentResponse"`
}

// trackResponse is the subset of the UPS tracking response the adapter reads.
type trackResponse struct {
	TrackResponse struct {
		Shipment []struct {
			Package []struct {
				TrackingNumber string `json:"trackingNumber"`
				Activity       []struct {
					Status struct {
						Type        string `json:"type"`
						Description string `json:"description"`
					} `json:"status"`
				} `json:"activity"`
			} `json:"package"`
		} `json:"shipment"`
	} `json:"trackResponse"`
}

// serviceCodes maps the shop's shipping methods to UPS service codes.
var serviceCodes = map[string]string{
	"UPS Ground":       "03",
	"UPS 2nd Day Air":  "02",
	"UPS Next Day Air": "01",
}

// CreateLabel purchases a shipping label for one package.
func (c *Client) CreateLabel(ctx context.Context, req ports.LabelRequest) (ports.Label, error) {
	if !c.IsConfigured() {
		return ports.Label{}, ErrNotConfigured
	}

	code, ok := serviceCodes[req.ShippingMethod]
	if !ok {
		// USPS-tier orders still ship out through the UPS account under
		// the ground service.
		code = "03"
	}

	payload := c.buildShipmentRequest(req, code)
	body, err := json.Marshal(payload)
	if err != nil {
		return ports.Label{}, err
	}

	respBody, err := c.doJSON(ctx, http.MethodPost, "/api/shipments/v2409/ship", bytes.NewReader(body))
	if err != nil {
		return ports.Label{}, err
	}

	var parsed shipmentResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return ports.Label{}, fmt.Errorf("failed to decode ups response: %w", err)
	}

	results := parsed.ShipmentResponse.ShipmentResults
	if results.PackageResults.TrackingNumber == "" {
		return ports.Label{}, errors.New("ups response did not include a tracking number")
	}

	return ports.Label{
		TrackingNumber: results.PackageResults.TrackingNumber,
		LabelURL:       results.PackageResults.ShippingLabel.URL,
		CostCents:      dollarsToCents(results.ShipmentCharges.TotalCharges.MonetaryValue),
	}, nil
}

// Track returns the carrier's current view of a shipment.
func (c *Client) Track(ctx context.Context, trackingNumber string) (ports.TrackingStatus, error) {
	if !c.IsConfigured() {
		return ports.TrackingStatus{}, ErrNotConfigured
	}
	if trackingNumber == "" {
		return ports.TrackingStatus{}, errors.New("tracking number is required")
	}

	path := "/api/track/v1/details/" + url.PathEscape(trackingNumber)
	respBody, err := c.doJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return ports.TrackingStatus{}, err
	}

	var parsed trackResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return ports.TrackingStatus{}, fmt.Errorf("failed to decode ups response: %w", err)
	}

	status := ports.TrackingStatus{TrackingNumber: trackingNumber}
	for _, shipment := range parsed.TrackResponse.Shipment {
		for _, p := range shipment.Package {
			if len(p.Activity) == 0 {
				continue
			}
			// The first activity entry is the most recent.
			latest := p.Activity[0].Status
			status.Description = latest.Description
			status.Delivered = latest.Type == "D"
			return status, nil
		}
	}

	return status, nil
}

func (c *Client) buildShipmentRequest(req ports.LabelRequest, serviceCode string) shipmentRequest {
	var payload shipmentRequest
	shipment := &payload.ShipmentRequest.Shipment

	shipment.Description = req.OrderNumber
	shipment.Shipper.ShipperNumber = c.config.ShipperNumber
	shipment.Shipper.Address = address{PostalCode: c.config.OriginZip, CountryCode: "US"}
	shipment.ShipTo.Address = address{PostalCode: req.DestinationZip, CountryCode: "US"}
	shipment.Service.Code = serviceCode

	shipment.Package.Dimensions.UnitOfMeasurement.Code = "IN"
	shipment.Package.Dimensions.Length = fmt.Sprintf("%.1f", req.PackageLengthIn)
	shipment.Package.Dimensions.Width = fmt.Sprintf("%.1f", req.PackageWidthIn)
	shipment.Package.Dimensions.Height = fmt.Sprintf("%.1f", req.PackageHeightIn)
	shipment.Package.PackageWeight.UnitOfMeasurement.Code = "LBS"
	shipment.Package.PackageWeight.Weight = fmt.Sprintf("%.1f", req.WeightLbs)

	return payload
}

func (c *Client) doJSON(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ups request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("ups error %d: %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

// dollarsToCents parses a UPS monetary value like "12.35" into cents.
// Malformed values degrade to zero; label cost is informational.
func dollarsToCents(value string) int64 {
	whole, frac, _ := strings.Cut(value, ".")
	for len(frac) < 2 {
		frac += "0"
	}

	var cents int64
	for _, r := range whole + frac[:2] {
		if r < '0' || r > '9' {
			return 0
		}
		cents = cents*10 + int64(r-'0')
	}
	return cents
}
