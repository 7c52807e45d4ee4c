package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOriginalOrderIDIsRequired = errors.New("original order ID is required")
	ErrDealerIDIsRequired        = errors.New("dealer ID is required")
	ErrRequestedByIsRequired     = errors.New("requested by is required")
	ErrProductLinesAreRequired   = errors.New("at least one product line is required")
)

// ProductLineInput is one ordered item in an order creation request.
// Quantities are validated by the domain when the order is built.
type ProductLineInput struct {
	ProductID         string
	Name              string
	QuantityOrdered   int
	QuantityAvailable int
}

// CreateOrderCommand represents a request to register a new fulfillment order
// from an inbound dealer order. Encapsulates the order reference, the ordering
// dealer and the product lines to fulfill.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "ORD-1001", "dealer-7", "alice", lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	originalOrderID string
	dealerID        string
	requestedBy     string
	lines           []ProductLineInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new fulfillment order.
// Validates that the order ID is valid, the references are present and at
// least one product line is supplied. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	originalOrderID, dealerID, requestedBy string,
	lines []ProductLineInput,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setOriginalOrderID(originalOrderID),
		orderCommand.setDealerID(dealerID),
		orderCommand.setRequestedBy(requestedBy),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OriginalOrderID returns the inbound order reference.
func (c CreateOrderCommand) OriginalOrderID() string {
	return c.originalOrderID
}

// DealerID returns the ordering dealer identifier.
func (c CreateOrderCommand) DealerID() string {
	return c.dealerID
}

// RequestedBy returns the user creating the order.
func (c CreateOrderCommand) RequestedBy() string {
	return c.requestedBy
}

// Lines returns the product lines to fulfill.
func (c CreateOrderCommand) Lines() []ProductLineInput {
	lines := make([]ProductLineInput, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOriginalOrderID(originalOrderID string) error {
	if originalOrderID == "" {
		return ErrOriginalOrderIDIsRequired
	}

	c.originalOrderID = originalOrderID
	return nil
}

func (c *CreateOrderCommand) setDealerID(dealerID string) error {
	if dealerID == "" {
		return ErrDealerIDIsRequired
	}

	c.dealerID = dealerID
	return nil
}

func (c *CreateOrderCommand) setRequestedBy(requestedBy string) error {
	if requestedBy == "" {
		return ErrRequestedByIsRequired
	}

	c.requestedBy = requestedBy
	return nil
}

func (c *CreateOrderCommand) setLines(lines []ProductLineInput) error {
	if len(lines) == 0 {
		return ErrProductLinesAreRequired
	}

	c.lines = make([]ProductLineInput, len(lines))
	copy(c.lines, lines)
	return nil
}
