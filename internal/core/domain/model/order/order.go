package order

import (
	"errors"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderHasNoProductLines is returned when an order is created without any
	// product lines. An order with nothing to fulfill cannot enter the workflow.
	ErrOrderHasNoProductLines = errors.New("order must have at least one product line")

	// ErrDuplicateProductLine is returned when two product lines carry the same
	// product code. Quantities for one product belong on one line.
	ErrDuplicateProductLine = errors.New("order already has a product line with this product code")

	// ErrBoxStillHoldsPackedStock is returned when removing the last box of an
	// order that still has packed quantity. A packed order cannot be left with
	// no container for its goods; unpack first, then remove.
	ErrBoxStillHoldsPackedStock = errors.New("cannot remove the last box while the order has packed stock")
)

// Order is the aggregate root of warehouse fulfillment. It owns its product
// lines, boxes and state history exclusively; nothing is shared across orders.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and at least one product line
//   - Status transitions follow the fulfillment workflow (see Status)
//   - The current state time is set exactly once per transition and is
//     monotonically non-decreasing
//   - Every accepted transition appends exactly one state history entry
//   - Box identifiers are unique within the order
//   - The remaining-items flag is captured at the DispatchReady transition and
//     never recomputed afterwards
//
// Orders are never deleted; they only progress to a terminal state. All
// mutation goes through the fulfillment service, which is also the layer that
// enforces allocation validation before the dispatch-ready transition.
type Order struct {
	// id is the unique identifier of the order
	id kernel.UUID

	// originalOrderID is the reference of the inbound order this was created from
	originalOrderID string

	// dealerID identifies the ordering dealer or customer
	dealerID string

	// status is the current state in the fulfillment lifecycle
	status Status

	// currentStateTime is when the current status was entered
	currentStateTime time.Time

	// requestedBy is the user who created the order
	requestedBy string

	// assignedTo is the user currently working the order, empty if unassigned
	assignedTo string

	// lines are the ordered product lines, in inbound order
	lines []*ProductLine

	// boxes are the shipping containers, in creation order
	boxes []*Box

	// boxSeq is the highest box sequence number ever issued, so removed box
	// identifiers are not reused within the order
	boxSeq int

	// hasRemainingItems records, at the moment DispatchReady was entered,
	// whether any ordered quantity was left unpacked
	hasRemainingItems bool

	// history is the append-only log of status transitions
	history []StateChange

	guard guard.ConstructorGuard
}

// NewOrder creates an order in Open status with its initial history entry.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - originalOrderID: Inbound order reference (required)
//   - dealerID: Ordering dealer identifier (required)
//   - requestedBy: User creating the order (required)
//   - lines: Product lines (at least one, unique product codes)
//   - createdAt: Creation time, used for the Open history entry
//
// Returns the created order, or an aggregated validation error.
func NewOrder(
	id kernel.UUID,
	originalOrderID, dealerID, requestedBy string,
	lines []*ProductLine,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status: Open,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOriginalOrderID(originalOrderID),
		o.setDealerID(dealerID),
		o.setRequestedBy(requestedBy),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	opened, err := NewStateChange(Open, requestedBy, createdAt)
	if err != nil {
		return nil, err
	}
	o.history = append(o.history, opened)
	o.currentStateTime = createdAt

	return o, nil
}

// RestoreOrder reconstructs an order from persistence in its stored state,
// including boxes, allocations, history and the captured remaining-items flag.
// The restored order behaves identically to one built through domain operations.
func RestoreOrder(
	id kernel.UUID,
	originalOrderID, dealerID, requestedBy, assignedTo string,
	status Status,
	currentStateTime time.Time,
	lines []*ProductLine,
	boxes []*Box,
	boxSeq int,
	hasRemainingItems bool,
	history []StateChange,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOriginalOrderID(originalOrderID),
		o.setDealerID(dealerID),
		o.setRequestedBy(requestedBy),
		o.setLines(lines),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	for _, box := range boxes {
		if err := box.Validate(); err != nil {
			return nil, err
		}
		if _, exists := o.findBox(box.ID()); exists {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"boxes are invalid",
				fmt.Errorf("duplicate box id %s", box.ID()),
			)
		}
		o.boxes = append(o.boxes, box)
	}

	for _, change := range history {
		if err := change.Validate(); err != nil {
			return nil, err
		}
		o.history = append(o.history, change)
	}

	if boxSeq < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"boxSeq is invalid",
			fmt.Errorf("%d is negative", boxSeq),
		)
	}

	o.assignedTo = assignedTo
	o.currentStateTime = currentStateTime
	o.boxSeq = boxSeq
	o.hasRemainingItems = hasRemainingItems
	return o, nil
}

// Validate ensures the order was created through a factory function.
// Call it when reconstructing orders from persistence to ensure integrity.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OriginalOrderID returns the inbound order reference.
func (o *Order) OriginalOrderID() string {
	return o.originalOrderID
}

// DealerID returns the ordering dealer identifier.
func (o *Order) DealerID() string {
	return o.dealerID
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// CurrentStateTime returns when the current status was entered.
func (o *Order) CurrentStateTime() time.Time {
	return o.currentStateTime
}

// RequestedBy returns the user who created the order.
func (o *Order) RequestedBy() string {
	return o.requestedBy
}

// AssignedTo returns the user working the order, empty if unassigned.
func (o *Order) AssignedTo() string {
	return o.assignedTo
}

// AssignTo records the user working the order.
func (o *Order) AssignTo(user string) error {
	if user == "" {
		return errs.NewValueIsRequiredError("user")
	}
	o.assignedTo = user
	return nil
}

// Lines returns the product lines in inbound order. The slice is a copy; the
// lines themselves are the aggregate's own entities.
func (o *Order) Lines() []*ProductLine {
	lines := make([]*ProductLine, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Line returns the product line with the given product code.
func (o *Order) Line(productID string) (*ProductLine, bool) {
	for _, line := range o.lines {
		if line.ProductID() == productID {
			return line, true
		}
	}
	return nil, false
}

// Boxes returns the boxes in creation order. The slice is a copy.
func (o *Order) Boxes() []*Box {
	boxes := make([]*Box, len(o.boxes))
	copy(boxes, o.boxes)
	return boxes
}

// Box returns the box with the given identifier.
func (o *Order) Box(boxID string) (*Box, bool) {
	return o.findBox(boxID)
}

// BoxSeq returns the highest box sequence number ever issued for this order.
func (o *Order) BoxSeq() int {
	return o.boxSeq
}

// History returns a copy of the append-only state history.
func (o *Order) History() []StateChange {
	history := make([]StateChange, len(o.history))
	copy(history, o.history)
	return history
}

// HasRemainingItems reports the remaining-items flag captured when the order
// entered DispatchReady. Before that transition it is always false.
func (o *Order) HasRemainingItems() bool {
	return o.hasRemainingItems
}

// TotalPacked returns the packed total across all product lines.
func (o *Order) TotalPacked() int {
	total := 0
	for _, line := range o.lines {
		total += line.QuantityPacked()
	}
	return total
}

// Remainder returns the (product, quantity) pairs left unpacked: one entry per
// line whose ordered quantity exceeds its packed quantity. Lines with a zero
// ordered quantity are out of scope for remainder computation.
func (o *Order) Remainder() []RemainderItem {
	remainder := make([]RemainderItem, 0)
	for _, line := range o.lines {
		if line.QuantityOrdered() == 0 {
			continue
		}
		if unpacked := line.QuantityUnpacked(); unpacked > 0 {
			remainder = append(remainder, RemainderItem{
				ProductID: line.ProductID(),
				Quantity:  unpacked,
			})
		}
	}
	return remainder
}

// RemainderItem is one unpacked (product, quantity) pair, used to seed a
// follow-up order when dispatch completes partially.
type RemainderItem struct {
	ProductID string
	Quantity  int
}

// AddBox creates a new box for the order. Box registry operation.
//
// A fresh identifier is generated from the order's box sequence; identifiers
// of removed boxes are never reused. When name is empty, a default display
// name is derived from the box's position, e.g. "Box-3". The new box starts
// empty: products are never auto-assigned.
func (o *Order) AddBox(name string) (*Box, error) {
	id := fmt.Sprintf("B%d", o.boxSeq+1)
	if name == "" {
		name = fmt.Sprintf("Box-%d", len(o.boxes)+1)
	}

	box, err := newBox(id, name)
	if err != nil {
		return nil, err
	}

	o.boxSeq++
	o.boxes = append(o.boxes, box)
	return box, nil
}

// EnsureBox brings the box with the given identifier into existence, renaming
// it when the supplied name differs. It is used when a caller submits its
// current box list as part of allocation input.
func (o *Order) EnsureBox(id, name string) (*Box, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("box id")
	}

	if box, exists := o.findBox(id); exists {
		if name != "" && name != box.Name() {
			if err := box.rename(name); err != nil {
				return nil, err
			}
		}
		return box, nil
	}

	if name == "" {
		name = fmt.Sprintf("Box-%d", len(o.boxes)+1)
	}

	box, err := newBox(id, name)
	if err != nil {
		return nil, err
	}

	if seq := boxSequenceNumber(id); seq > o.boxSeq {
		o.boxSeq = seq
	}
	o.boxes = append(o.boxes, box)
	return box, nil
}

// RenameBox changes a box's display name. Box registry operation.
func (o *Order) RenameBox(boxID, name string) error {
	box, exists := o.findBox(boxID)
	if !exists {
		return errs.NewObjectNotFoundError("boxID", boxID)
	}
	return box.rename(name)
}

// RemoveBox deletes a box and, atomically with it, every allocation entry
// referencing it on every product line. Box registry operation.
//
// The freed quantity is not redistributed: affected products' packed totals
// simply drop, and the caller must re-allocate explicitly. Removing the last
// box is refused while the order still has packed stock.
func (o *Order) RemoveBox(boxID string) error {
	if _, exists := o.findBox(boxID); !exists {
		return errs.NewObjectNotFoundError("boxID", boxID)
	}

	if len(o.boxes) == 1 && o.TotalPacked() > 0 {
		return ErrBoxStillHoldsPackedStock
	}

	for _, line := range o.lines {
		line.clearBox(boxID)
	}

	for i, box := range o.boxes {
		if box.ID() == boxID {
			o.boxes = append(o.boxes[:i], o.boxes[i+1:]...)
			break
		}
	}
	return nil
}

// SetAllocation records the quantity of one product placed in one box.
// Referencing an unknown product or box is a caller bug, not a business
// rejection, and fails hard with an ObjectNotFoundError.
func (o *Order) SetAllocation(productID, boxID string, quantity int) error {
	line, exists := o.Line(productID)
	if !exists {
		return errs.NewObjectNotFoundError("productID", productID)
	}
	if _, exists = o.findBox(boxID); !exists {
		return errs.NewObjectNotFoundError("boxID", boxID)
	}
	return line.setAllocation(boxID, quantity)
}

// ClearAllocations removes every allocation entry on every product line.
// Used when a caller resubmits a complete packing proposal.
func (o *Order) ClearAllocations() {
	for _, line := range o.lines {
		line.clearAllocations()
	}
}

// StartPicking transitions the order from Open to Picking.
// Appends one state history entry and sets the current state time, atomically
// with respect to each other.
func (o *Order) StartPicking(actor string, at time.Time) error {
	newStatus, err := o.status.StartPicking()
	if err != nil {
		return err
	}
	return o.recordTransition(newStatus, actor, at)
}

// StartPacking transitions the order from Picking to Packing.
func (o *Order) StartPacking(actor string, at time.Time) error {
	newStatus, err := o.status.StartPacking()
	if err != nil {
		return err
	}
	return o.recordTransition(newStatus, actor, at)
}

// MoveToDispatchReady transitions the order from Packing to DispatchReady and
// captures the remaining-items flag that later decides the terminal state.
// The fulfillment service validates allocations before calling this.
func (o *Order) MoveToDispatchReady(actor string, at time.Time, hasRemainingItems bool) error {
	newStatus, err := o.status.MoveToDispatchReady()
	if err != nil {
		return err
	}
	if err = o.recordTransition(newStatus, actor, at); err != nil {
		return err
	}
	o.hasRemainingItems = hasRemainingItems
	return nil
}

// CompleteDispatch transitions the order from DispatchReady to its terminal
// state, branching on the flag captured at the DispatchReady transition.
// Returns the terminal status that was entered.
func (o *Order) CompleteDispatch(actor string, at time.Time) (Status, error) {
	newStatus, err := o.status.CompleteDispatch(o.hasRemainingItems)
	if err != nil {
		return 0, err
	}
	if err = o.recordTransition(newStatus, actor, at); err != nil {
		return 0, err
	}
	return newStatus, nil
}

// recordTransition applies the already-validated status change: appends the
// history entry and sets the status and current state time together.
func (o *Order) recordTransition(newStatus Status, actor string, at time.Time) error {
	change, err := NewStateChange(newStatus, actor, at)
	if err != nil {
		return err
	}
	if at.Before(o.currentStateTime) {
		return errs.NewValueIsInvalidErrorWithCause(
			"transition time is invalid",
			fmt.Errorf("%s is before the current state time %s", at, o.currentStateTime),
		)
	}

	o.history = append(o.history, change)
	o.status = newStatus
	o.currentStateTime = at
	return nil
}

func (o *Order) findBox(boxID string) (*Box, bool) {
	for _, box := range o.boxes {
		if box.ID() == boxID {
			return box, true
		}
	}
	return nil, false
}

// boxSequenceNumber extracts the numeric suffix of a generated box id.
// Returns 0 for foreign id formats, which then never advance the sequence.
func boxSequenceNumber(id string) int {
	if len(id) < 2 || id[0] != 'B' {
		return 0
	}
	seq := 0
	for _, r := range id[1:] {
		if r < '0' || r > '9' {
			return 0
		}
		seq = seq*10 + int(r-'0')
	}
	return seq
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOriginalOrderID(originalOrderID string) error {
	if originalOrderID == "" {
		return errs.NewValueIsRequiredError("originalOrderID")
	}
	o.originalOrderID = originalOrderID
	return nil
}

func (o *Order) setDealerID(dealerID string) error {
	if dealerID == "" {
		return errs.NewValueIsRequiredError("dealerID")
	}
	o.dealerID = dealerID
	return nil
}

func (o *Order) setRequestedBy(requestedBy string) error {
	if requestedBy == "" {
		return errs.NewValueIsRequiredError("requestedBy")
	}
	o.requestedBy = requestedBy
	return nil
}

func (o *Order) setLines(lines []*ProductLine) error {
	if len(lines) == 0 {
		return ErrOrderHasNoProductLines
	}

	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		if _, dup := seen[line.ProductID()]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateProductLine, line.ProductID())
		}
		seen[line.ProductID()] = struct{}{}
	}

	o.lines = make([]*ProductLine, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
