package queries

import (
	"context"
	"database/sql"
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves the detail view of a single order.
// Reads the order tables directly; the child rows are fetched per table and
// stitched into the view, so no aggregate is loaded.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order detail view.
// Returns errs.ErrObjectNotFound when no order has the given ID.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			original_order_id,
			dealer_id,
			status,
			current_state_time,
			requested_by,
			assigned_to,
			has_remaining_items
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	var id uuid.UUID
	var status int

	err := row.Scan(
		&id,
		&resp.OriginalOrderID,
		&resp.DealerID,
		&status,
		&resp.CurrentStateTime,
		&resp.RequestedBy,
		&resp.AssignedTo,
		&resp.HasRemainingItems,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	orderID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return GetOrderQueryResponse{}, idErr
	}
	resp.ID = orderID
	resp.Status = order.Status(status)

	if err = h.loadLines(ctx, &resp); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if err = h.loadBoxes(ctx, &resp); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if err = h.loadHistory(ctx, &resp); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) loadLines(ctx context.Context, resp *GetOrderQueryResponse) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			name,
			quantity_ordered,
			quantity_available
		FROM product_lines
		WHERE order_id = ?
		ORDER BY position
	`, resp.ID.String()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	resp.Lines = make([]OrderLineView, 0)
	lineIndex := make(map[string]int)

	for rows.Next() {
		var line OrderLineView

		err = rows.Scan(
			&line.ProductID,
			&line.Name,
			&line.QuantityOrdered,
			&line.QuantityAvailable,
		)
		if err != nil {
			return err
		}

		line.Allocations = make(map[string]int)
		lineIndex[line.ProductID] = len(resp.Lines)
		resp.Lines = append(resp.Lines, line)
	}
	if err = rows.Err(); err != nil {
		return err
	}

	allocRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			box_id,
			quantity
		FROM allocations
		WHERE order_id = ?
		ORDER BY product_id, box_id
	`, resp.ID.String()).Rows()
	if err != nil {
		return err
	}
	defer allocRows.Close()

	for allocRows.Next() {
		var productID, boxID string
		var quantity int

		if err = allocRows.Scan(&productID, &boxID, &quantity); err != nil {
			return err
		}

		idx, ok := lineIndex[productID]
		if !ok {
			continue
		}
		resp.Lines[idx].Allocations[boxID] = quantity
		resp.Lines[idx].QuantityPacked += quantity
	}

	return allocRows.Err()
}

func (h GetOrderQueryHandler) loadBoxes(ctx context.Context, resp *GetOrderQueryResponse) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			box_id,
			name
		FROM boxes
		WHERE order_id = ?
		ORDER BY position
	`, resp.ID.String()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	resp.Boxes = make([]OrderBoxView, 0)

	for rows.Next() {
		var box OrderBoxView

		if err = rows.Scan(&box.BoxID, &box.Name); err != nil {
			return err
		}
		resp.Boxes = append(resp.Boxes, box)
	}

	return rows.Err()
}

func (h GetOrderQueryHandler) loadHistory(ctx context.Context, resp *GetOrderQueryResponse) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			changed_by,
			changed_at
		FROM state_history
		WHERE order_id = ?
		ORDER BY seq
	`, resp.ID.String()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	resp.History = make([]OrderStateChangeView, 0)

	for rows.Next() {
		var entry OrderStateChangeView
		var status int

		if err = rows.Scan(&status, &entry.ChangedBy, &entry.ChangedAt); err != nil {
			return err
		}
		entry.Status = order.Status(status)
		resp.History = append(resp.History, entry)
	}

	return rows.Err()
}
