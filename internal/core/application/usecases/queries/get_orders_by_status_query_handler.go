package queries

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersByStatusQueryHandler retrieves order summaries for one workflow
// status. Totals are aggregated in SQL so the read path never loads full
// aggregates.
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for board-view queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query and returns one summary row per order in the
// requested status, sorted by the time the status was entered.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]GetOrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersByStatusQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.original_order_id,
			o.dealer_id,
			o.status,
			o.current_state_time,
			o.requested_by,
			o.assigned_to,
			COALESCE((SELECT SUM(pl.quantity_ordered) FROM product_lines pl WHERE pl.order_id = o.id), 0),
			COALESCE((SELECT SUM(a.quantity) FROM allocations a WHERE a.order_id = o.id), 0)
		FROM orders o
		WHERE o.status = ?
		ORDER BY o.current_state_time, o.id
	`, int(query.Status())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetOrdersByStatusQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&orderResp.OriginalOrderID,
			&orderResp.DealerID,
			&status,
			&orderResp.CurrentStateTime,
			&orderResp.RequestedBy,
			&orderResp.AssignedTo,
			&orderResp.TotalOrdered,
			&orderResp.TotalPacked,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID
		orderResp.Status = order.Status(status)
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
