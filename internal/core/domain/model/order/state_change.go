package order

import (
	"errors"
	"time"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// ErrStateChangeIsNotConstructed is returned when a StateChange was not created
// through the NewStateChange factory function.
var ErrStateChangeIsNotConstructed = errors.New("StateChange must be created via NewStateChange constructor")

// StateChange is one entry of an order's append-only state history: which
// status was entered, by whom, and when. Entries are immutable value objects;
// the history itself only ever grows.
type StateChange struct {
	status    Status
	changedBy string
	changedAt time.Time

	guard guard.ConstructorGuard
}

// NewStateChange creates a history entry for a status transition.
//
// Parameters:
//   - status: The status that was entered (must be a valid status)
//   - changedBy: The acting user (required)
//   - changedAt: The transition time (must not be zero)
func NewStateChange(status Status, changedBy string, changedAt time.Time) (StateChange, error) {
	if err := status.Validate(); err != nil {
		return StateChange{}, err
	}
	if changedBy == "" {
		return StateChange{}, errs.NewValueIsRequiredError("changedBy")
	}
	if changedAt.IsZero() {
		return StateChange{}, errs.NewValueIsRequiredError("changedAt")
	}

	return StateChange{
		status:    status,
		changedBy: changedBy,
		changedAt: changedAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the entry was created through the constructor.
func (c StateChange) Validate() error {
	return c.guard.Validate(ErrStateChangeIsNotConstructed)
}

// Status returns the status this entry records.
func (c StateChange) Status() Status {
	return c.status
}

// ChangedBy returns the acting user.
func (c StateChange) ChangedBy() string {
	return c.changedBy
}

// ChangedAt returns the transition time.
func (c StateChange) ChangedAt() time.Time {
	return c.changedAt
}
