// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"feedo/internal/core/domain/model/kernel"
	"feedo/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and courier assignment.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID        uuid.UUID  `gorm:"type:uuid;index"`
	CourierID       *uuid.UUID `gorm:"type:uuid;index"`
	Status          string     `gorm:"index"`
	TotalAmount     int64
	DeliveryAddress string
	DeliveryNotes   string
	Items           []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time
	AssignedAt      *time.Time
	DeliveredAt     *time.Time
	Deleted         bool
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one line of an order's immutable item snapshot.
// Prices are stored in cents.
type ItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID int64
	Name      string
	Quantity  int
	UnitPrice int64
	Subtotal  int64
}

// TableName specifies the database table name for order item entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the item snapshot and optional courier binding.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.CourierID(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Cents(),
			Subtotal:  item.Subtotal().Cents(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		ClientID:        aggregate.ClientID().Bytes(),
		CourierID:       courierID,
		Status:          aggregate.Status().String(),
		TotalAmount:     aggregate.TotalAmount().Cents(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		DeliveryNotes:   aggregate.DeliveryNotes(),
		Items:           itemDTOs,
		CreatedAt:       aggregate.CreatedAt(),
		AssignedAt:      aggregate.AssignedAt(),
		DeliveredAt:     aggregate.DeliveredAt(),
		Deleted:         aggregate.IsDeleted(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the item snapshot using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	totalAmount, err := kernel.NewMoneyFromCents(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		clientID,
		courierID,
		status,
		totalAmount,
		dto.DeliveryAddress,
		dto.DeliveryNotes,
		items,
		dto.CreatedAt,
		dto.AssignedAt,
		dto.DeliveredAt,
		dto.Deleted,
	)
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Item{}, err
	}

	unitPrice, err := kernel.NewMoneyFromCents(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}

	subtotal, err := kernel.NewMoneyFromCents(dto.Subtotal)
	if err != nil {
		return order.Item{}, err
	}

	return order.RestoreItem(id, dto.ProductID, dto.Name, dto.Quantity, unitPrice, subtotal)
}
