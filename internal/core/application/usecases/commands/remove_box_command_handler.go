package commands

import (
	"context"
)

// RemoveBoxCommandHandler handles box removal operations.
// Removal of the last box is refused by the domain while the order still has
// packed stock; that error surfaces unchanged to the caller.
type RemoveBoxCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveBoxCommandHandler creates a handler for box removal operations.
func NewRemoveBoxCommandHandler(uowFactory OrderUoWFactory) RemoveBoxCommandHandler {
	return RemoveBoxCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove-box command.
func (h *RemoveBoxCommandHandler) Handle(ctx context.Context, cmd RemoveBoxCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.RemoveBox(cmd.BoxID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
