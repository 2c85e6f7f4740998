package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"feedo/internal/core/domain/model/kernel"
	"feedo/internal/core/domain/model/order"
)

// GetPendingOrdersQueryHandler retrieves the dispatch board from the database:
// orders still waiting for a courier.
type GetPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersQueryHandler creates a handler for pending order queries.
// Requires a GORM database connection for query execution.
func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve unassigned pending orders.
// Results come oldest first so the longest-waiting orders surface on top.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]GetPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetPendingOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			total_amount,
			delivery_address,
			created_at
		FROM orders
		WHERE status = ? AND courier_id IS NULL AND deleted = false
		ORDER BY created_at
	`, order.Pending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp     GetPendingOrdersQueryResponse
			id       uuid.UUID
			clientID uuid.UUID
		)

		err = rows.Scan(
			&id,
			&clientID,
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
		if resp.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
