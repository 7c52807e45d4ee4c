package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/guard"
)

var ErrGetStatusCountsQueryIsNotConstructed = errors.New(
	"GetStatusCountsQuery must be created via NewGetStatusCountsQuery constructor",
)

// GetStatusCountsQuery retrieves the number of orders per workflow status.
// Feeds the dashboard tiles above the board view.
type GetStatusCountsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStatusCountsQuery creates a query for per-status order counts.
// This is a parameterless query covering every status including terminal ones.
func NewGetStatusCountsQuery() GetStatusCountsQuery {
	return GetStatusCountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStatusCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusCountsQueryIsNotConstructed)
}

// StatusCount is the number of orders in one workflow status.
type StatusCount struct {
	Status order.Status
	Count  int
}
