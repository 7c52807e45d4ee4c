// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read the database directly with raw SQL; they never load
// full aggregates and never modify state.
package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery retrieves all orders currently in one workflow status.
// Feeds the board view that warehouse staff work from.
//
// Example:
//
//	query, err := NewGetOrdersByStatusQuery(order.Packing)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
type GetOrdersByStatusQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for orders in the given status.
// Returns an error if the status is not a valid workflow status.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return GetOrdersByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the workflow status to filter by.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// GetOrdersByStatusQueryResponse is one order summary row of the board view.
// TotalOrdered and TotalPacked are aggregated from the order's product lines
// and allocations.
type GetOrdersByStatusQueryResponse struct {
	ID               kernel.UUID
	OriginalOrderID  string
	DealerID         string
	Status           order.Status
	CurrentStateTime time.Time
	RequestedBy      string
	AssignedTo       string
	TotalOrdered     int
	TotalPacked      int
}
