// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier domain aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"time"

	"github.com/google/uuid"

	"feedo/internal/core/domain/model/courier"
	"feedo/internal/core/domain/model/kernel"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// The shift status is indexed because dispatch queries filter on it.
type CourierDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string
	Phone           string
	Email           string
	VehicleType     string
	Status          string `gorm:"index"`
	Rating          float64
	TotalDeliveries int
	LastDeliveryAt  *time.Time
	Deleted         bool
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	contact := aggregate.Contact()

	return CourierDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            contact.Name(),
		Phone:           contact.Phone(),
		Email:           contact.Email(),
		VehicleType:     aggregate.VehicleType().String(),
		Status:          aggregate.Status().String(),
		Rating:          aggregate.Rating(),
		TotalDeliveries: aggregate.TotalDeliveries(),
		LastDeliveryAt:  aggregate.LastDeliveryAt(),
		Deleted:         aggregate.IsDeleted(),
	}
}

// toDomain converts a database DTO to a courier domain aggregate using RestoreCourier.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	contact, err := kernel.NewContact(dto.Name, dto.Phone, dto.Email)
	if err != nil {
		return nil, err
	}

	vehicleType, err := courier.VehicleTypeFromString(dto.VehicleType)
	if err != nil {
		return nil, err
	}

	status, err := courier.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(
		id,
		contact,
		vehicleType,
		status,
		dto.Rating,
		dto.TotalDeliveries,
		dto.LastDeliveryAt,
		dto.Deleted,
	)
}
