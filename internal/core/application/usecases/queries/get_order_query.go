// Package queries contains read operations for the dispatch core.
// Implements the Query side of the CQRS pattern: handlers read storage
// directly with raw SQL and return flat response models, bypassing the
// aggregate restore path for performance.
package queries

import (
	"errors"
	"time"

	"feedo/internal/core/domain/model/kernel"
	"feedo/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its item snapshot.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve the order with the given id.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order id.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// OrderItemResponse is the read model for one line of the order's item snapshot.
type OrderItemResponse struct {
	ProductID      int64
	Name           string
	Quantity       int
	UnitPriceCents int64
	SubtotalCents  int64
}

// GetOrderQueryResponse is the full read model of a single order.
type GetOrderQueryResponse struct {
	ID               kernel.UUID
	ClientID         kernel.UUID
	CourierID        *kernel.UUID
	Status           string
	TotalAmountCents int64
	DeliveryAddress  string
	DeliveryNotes    string
	Items            []OrderItemResponse
	CreatedAt        time.Time
	AssignedAt       *time.Time
	DeliveredAt      *time.Time
}
