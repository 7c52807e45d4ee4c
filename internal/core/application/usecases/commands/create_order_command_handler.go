package commands

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Builds the order aggregate in Open status with its initial state history
// entry and persists it transactionally.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), "ORD-1001", "dealer-7", "alice", lines)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now open and awaiting picking
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Builds product lines and the aggregate from the command input; domain
// validation errors (negative quantities, duplicate product codes) surface
// unchanged. Uses a transaction so the order is fully persisted or not at all.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	lines := make([]*order.ProductLine, 0, len(cmd.Lines()))
	for _, input := range cmd.Lines() {
		line, err := order.NewProductLine(
			input.ProductID, input.Name,
			input.QuantityOrdered, input.QuantityAvailable,
		)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.OriginalOrderID(), cmd.DealerID(), cmd.RequestedBy(),
		lines,
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
