package commands

import (
	"context"
	"time"

	"warehouse/internal/core/domain/services"
)

// TransitionOrderCommandHandler drives an order through the fulfillment state
// machine. It loads the aggregate, delegates validation and state computation
// to the fulfillment service and persists the order only when the transition
// was accepted. A rejected transition never touches storage, which keeps
// retried requests from duplicating state history entries.
type TransitionOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	fulfillment services.FulfillmentService
}

// NewTransitionOrderCommandHandler creates a handler for workflow transitions.
// Requires an OrderUoWFactory for transactional persistence and the
// fulfillment domain service.
func NewTransitionOrderCommandHandler(
	uowFactory OrderUoWFactory,
	fulfillment services.FulfillmentService,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory:  uowFactory,
		fulfillment: fulfillment,
	}
}

// Handle processes the transition command.
//
// Returns the transition result for both accepted and rejected outcomes.
// A non-nil error means an invariant fault (unknown order, corrupt input),
// never a business-rule rejection; rejections come back inside the result
// with the complete error list.
func (h *TransitionOrderCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderCommand,
) (services.TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.TransitionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.TransitionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return services.TransitionResult{}, err
	}

	result, err := h.fulfillment.Transition(
		aggregate, cmd.Action(), cmd.Allocation(), cmd.Actor(), time.Now().UTC(),
	)
	if err != nil {
		return services.TransitionResult{}, err
	}

	if !result.Accepted {
		return result, nil
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return services.TransitionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.TransitionResult{}, err
	}

	return result, nil
}
