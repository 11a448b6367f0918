// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence.
package customerrepo

import (
	"printshop/internal/core/domain/model/customer"
	"printshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer
// aggregates.
type CustomerDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string
	Email             string `gorm:"uniqueIndex"`
	Phone             string
	PaymentProviderID string
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer aggregate to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:                aggregate.ID().Bytes(),
		Name:              aggregate.Name(),
		Email:             aggregate.Email(),
		Phone:             aggregate.Phone(),
		PaymentProviderID: aggregate.PaymentProviderID(),
	}
}

// toDomain converts a database DTO to a customer aggregate using
// RestoreCustomer.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Email, dto.Phone, dto.PaymentProviderID)
}
