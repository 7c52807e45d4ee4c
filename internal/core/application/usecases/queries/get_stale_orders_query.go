package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrGetStaleOrdersQueryIsNotConstructed = errors.New(
	"GetStaleOrdersQuery must be created via NewGetStaleOrdersQuery constructor",
)

// GetStaleOrdersQuery retrieves in-progress orders that have sat in their
// current status since before a cutoff time. Used by the stale order watch
// job to surface orders nobody is working on.
type GetStaleOrdersQuery struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewGetStaleOrdersQuery creates a query for orders whose current status was
// entered before the cutoff. Returns an error for a zero cutoff.
func NewGetStaleOrdersQuery(cutoff time.Time) (GetStaleOrdersQuery, error) {
	if cutoff.IsZero() {
		return GetStaleOrdersQuery{}, errs.NewValueIsRequiredError("cutoff")
	}

	return GetStaleOrdersQuery{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStaleOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleOrdersQueryIsNotConstructed)
}

// Cutoff returns the staleness cutoff time.
func (q GetStaleOrdersQuery) Cutoff() time.Time {
	return q.cutoff
}

// GetStaleOrdersQueryResponse is one stale order report row.
type GetStaleOrdersQueryResponse struct {
	ID               kernel.UUID
	OriginalOrderID  string
	Status           order.Status
	CurrentStateTime time.Time
	AssignedTo       string
}
