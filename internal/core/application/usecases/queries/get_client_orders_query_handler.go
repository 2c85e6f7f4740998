package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"feedo/internal/core/domain/model/kernel"
)

// GetClientOrdersQueryHandler retrieves a client's order history from the database.
type GetClientOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetClientOrdersQueryHandler creates a handler for client history queries.
// Requires a GORM database connection for query execution.
func NewGetClientOrdersQueryHandler(db *gorm.DB) GetClientOrdersQueryHandler {
	return GetClientOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve the client's visible orders.
// Results come newest first; soft-deleted orders are excluded.
func (h GetClientOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetClientOrdersQuery,
) ([]GetClientOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetClientOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			total_amount,
			delivery_address,
			created_at
		FROM orders
		WHERE client_id = ? AND deleted = false
		ORDER BY created_at DESC
	`, query.ClientID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp GetClientOrdersQueryResponse
			id   uuid.UUID
		)

		err = rows.Scan(
			&id,
			&resp.Status,
			&resp.TotalAmountCents,
			&resp.DeliveryAddress,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
