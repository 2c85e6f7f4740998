package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"feedo/internal/core/domain/model/kernel"
	"feedo/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves a single order with its items from the database.
// Soft-deleted orders are treated as absent.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order read model.
// Returns an ObjectNotFoundError when no visible order has the given id.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var (
		resp        GetOrderQueryResponse
		id          uuid.UUID
		clientID    uuid.UUID
		courierID   sql.Null[uuid.UUID]
		assignedAt  sql.Null[time.Time]
		deliveredAt sql.Null[time.Time]
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			courier_id,
			status,
			total_amount,
			delivery_address,
			delivery_notes,
			created_at,
			assigned_at,
			delivered_at
		FROM orders
		WHERE id = ? AND deleted = false
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&clientID,
		&courierID,
		&resp.Status,
		&resp.TotalAmountCents,
		&resp.DeliveryAddress,
		&resp.DeliveryNotes,
		&resp.CreatedAt,
		&assignedAt,
		&deliveredAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if courierID.Valid {
		bound, idErr := kernel.UUIDFromBytes(courierID.V[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		resp.CourierID = &bound
	}
	if assignedAt.Valid {
		resp.AssignedAt = &assignedAt.V
	}
	if deliveredAt.Valid {
		resp.DeliveredAt = &deliveredAt.V
	}

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	items := make([]OrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			name,
			quantity,
			unit_price,
			subtotal
		FROM order_items
		WHERE order_id = ?
		ORDER BY product_id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse

		err = rows.Scan(
			&item.ProductID,
			&item.Name,
			&item.Quantity,
			&item.UnitPriceCents,
			&item.SubtotalCents,
		)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
