package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full detail view of a single order: header,
// product lines with their box allocations, boxes, and state history.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a detail query for the given order.
// Returns an error if the order ID is not constructed.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order to load.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the detail view of one order.
type GetOrderQueryResponse struct {
	ID                kernel.UUID
	OriginalOrderID   string
	DealerID          string
	Status            order.Status
	CurrentStateTime  time.Time
	RequestedBy       string
	AssignedTo        string
	HasRemainingItems bool
	Lines             []OrderLineView
	Boxes             []OrderBoxView
	History           []OrderStateChangeView
}

// OrderLineView is one product line of the detail view. Allocations maps
// box ID to the quantity of this product packed into that box.
type OrderLineView struct {
	ProductID         string
	Name              string
	QuantityOrdered   int
	QuantityAvailable int
	QuantityPacked    int
	Allocations       map[string]int
}

// OrderBoxView is one box of the detail view.
type OrderBoxView struct {
	BoxID string
	Name  string
}

// OrderStateChangeView is one state history entry of the detail view.
type OrderStateChangeView struct {
	Status    order.Status
	ChangedBy string
	ChangedAt time.Time
}
