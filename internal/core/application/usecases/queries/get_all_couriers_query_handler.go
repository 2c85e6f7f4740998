package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"feedo/internal/core/domain/model/kernel"
)

// GetAllCouriersQueryHandler retrieves the courier roster from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllCouriersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCouriersQueryHandler creates a handler for courier roster queries.
// Requires a GORM database connection for query execution.
func NewGetAllCouriersQueryHandler(db *gorm.DB) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{db: db}
}

// Handle executes the query to retrieve all visible couriers, sorted by name.
func (h GetAllCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCouriersQuery,
) ([]GetAllCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers := make([]GetAllCouriersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			vehicle_type,
			status,
			rating,
			total_deliveries,
			last_delivery_at
		FROM couriers
		WHERE deleted = false
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp           GetAllCouriersQueryResponse
			id             uuid.UUID
			lastDeliveryAt sql.Null[time.Time]
		)

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.VehicleType,
			&resp.Status,
			&resp.Rating,
			&resp.TotalDeliveries,
			&lastDeliveryAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if lastDeliveryAt.Valid {
			resp.LastDeliveryAt = &lastDeliveryAt.V
		}

		couriers = append(couriers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
