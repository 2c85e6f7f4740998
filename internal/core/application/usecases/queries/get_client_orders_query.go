package queries

import (
	"errors"
	"time"

	"feedo/internal/core/domain/model/kernel"
	"feedo/internal/pkg/guard"
)

var ErrGetClientOrdersQueryIsNotConstructed = errors.New(
	"GetClientOrdersQuery must be created via NewGetClientOrdersQuery constructor",
)

// GetClientOrdersQuery retrieves a client's order history, newest first.
// Soft-deleted orders are excluded.
type GetClientOrdersQuery struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetClientOrdersQuery creates a query to retrieve the client's orders.
func NewGetClientOrdersQuery(clientID kernel.UUID) (GetClientOrdersQuery, error) {
	query := GetClientOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setClientID(clientID); err != nil {
		return GetClientOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetClientOrdersQueryIsNotConstructed if validation fails.
func (q GetClientOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetClientOrdersQueryIsNotConstructed)
}

// ClientID returns the client whose orders are requested.
func (q GetClientOrdersQuery) ClientID() kernel.UUID {
	return q.clientID
}

func (q *GetClientOrdersQuery) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	q.clientID = clientID
	return nil
}

// GetClientOrdersQueryResponse is the read model of one order in the
// client's history.
type GetClientOrdersQueryResponse struct {
	ID               kernel.UUID
	Status           string
	TotalAmountCents int64
	DeliveryAddress  string
	CreatedAt        time.Time
}
