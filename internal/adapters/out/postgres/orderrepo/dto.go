// Package orderrepo provides data transfer objects and mapping functions for
// print order persistence. This package implements the repository pattern for
// the order domain aggregate, handling the conversion between domain entities
// and database representations.
package orderrepo

import (
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/services/rating"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting print order
// aggregates, with indexes for the status and tracking lookups the
// fulfillment jobs run.
type OrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number         string    `gorm:"uniqueIndex"`
	CustomerID     uuid.UUID `gorm:"type:uuid;index"`
	MaterialName   string
	Quantity       int
	DestinationZip string `gorm:"type:char(5)"`
	ServiceTier    string
	RushOrder      bool
	LocalPickup    bool
	LengthMM       float64
	WidthMM        float64
	HeightMM       float64
	UnitWeightG    float64
	Price          PriceDTO `gorm:"embedded;embeddedPrefix:price_"`
	PaymentURL     string
	TrackingNumber string `gorm:"index"`
	Status         int    `gorm:"index"`
	PlacedAt       time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// PriceDTO represents the embedded price snapshot columns within the order
// table. All amounts are exact cents.
type PriceDTO struct {
	BaseCents     int64
	MaterialCents int64
	ShippingCents int64
	RushCents     int64
	TaxCents      int64
	TotalCents    int64
}

// fromDomain converts a print order aggregate to its database representation.
func fromDomain(aggregate *order.PrintOrder) OrderDTO {
	spec := aggregate.Spec()
	price := aggregate.Price()

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		Number:         aggregate.Number(),
		CustomerID:     aggregate.CustomerID().Bytes(),
		MaterialName:   spec.MaterialName,
		Quantity:       spec.Quantity,
		DestinationZip: spec.DestinationZip.String(),
		ServiceTier:    spec.ServiceTier.String(),
		RushOrder:      spec.RushOrder,
		LocalPickup:    spec.LocalPickup,
		LengthMM:       spec.LengthMM,
		WidthMM:        spec.WidthMM,
		HeightMM:       spec.HeightMM,
		UnitWeightG:    spec.UnitWeightG,
		Price: PriceDTO{
			BaseCents:     price.Base.Cents(),
			MaterialCents: price.Material.Cents(),
			ShippingCents: price.Shipping.Cents(),
			RushCents:     price.Rush.Cents(),
			TaxCents:      price.Tax.Cents(),
			TotalCents:    price.Total.Cents(),
		},
		PaymentURL:     aggregate.PaymentURL(),
		TrackingNumber: aggregate.TrackingNumber(),
		Status:         int(aggregate.Status()),
		PlacedAt:       aggregate.PlacedAt(),
	}
}

// toDomain converts a database DTO to a print order aggregate.
// Reconstructs the complete aggregate including status, payment link and
// tracking number using RestorePrintOrder.
func toDomain(dto OrderDTO) (*order.PrintOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	zip, err := kernel.NewZipCode(dto.DestinationZip)
	if err != nil {
		return nil, err
	}

	price, err := priceFromDTO(dto.Price)
	if err != nil {
		return nil, err
	}

	spec := order.Spec{
		MaterialName:   dto.MaterialName,
		Quantity:       dto.Quantity,
		DestinationZip: zip,
		ServiceTier:    rating.ServiceTier(dto.ServiceTier),
		RushOrder:      dto.RushOrder,
		LocalPickup:    dto.LocalPickup,
		LengthMM:       dto.LengthMM,
		WidthMM:        dto.WidthMM,
		HeightMM:       dto.HeightMM,
		UnitWeightG:    dto.UnitWeightG,
	}

	return order.RestorePrintOrder(
		id, customerID, dto.Number, spec, price,
		order.Status(dto.Status), dto.PaymentURL, dto.TrackingNumber, dto.PlacedAt)
}

func priceFromDTO(dto PriceDTO) (order.PriceSnapshot, error) {
	cents := []int64{
		dto.BaseCents, dto.MaterialCents, dto.ShippingCents,
		dto.RushCents, dto.TaxCents, dto.TotalCents,
	}
	money := make([]kernel.Money, len(cents))
	for i, c := range cents {
		m, err := kernel.NewMoney(c)
		if err != nil {
			return order.PriceSnapshot{}, err
		}
		money[i] = m
	}

	return order.PriceSnapshot{
		Base:     money[0],
		Material: money[1],
		Shipping: money[2],
		Rush:     money[3],
		Tax:      money[4],
		Total:    money[5],
	}, nil
}
