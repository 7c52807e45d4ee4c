package queries

import (
	"context"

	"warehouse/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetStatusCountsQueryHandler counts orders per workflow status.
type GetStatusCountsQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusCountsQueryHandler creates a handler for status count queries.
// Requires a GORM database connection for query execution.
func NewGetStatusCountsQueryHandler(db *gorm.DB) GetStatusCountsQueryHandler {
	return GetStatusCountsQueryHandler{db: db}
}

// Handle executes the query and returns one count per status that has at
// least one order, sorted by status.
func (h GetStatusCountsQueryHandler) Handle(
	ctx context.Context,
	query GetStatusCountsQuery,
) ([]StatusCount, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts := make([]StatusCount, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
		ORDER BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status int
		var count int

		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}

		counts = append(counts, StatusCount{
			Status: order.Status(status),
			Count:  count,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
