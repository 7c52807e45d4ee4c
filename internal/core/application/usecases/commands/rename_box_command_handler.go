package commands

import (
	"context"
)

// RenameBoxCommandHandler handles box rename operations.
type RenameBoxCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRenameBoxCommandHandler creates a handler for box rename operations.
func NewRenameBoxCommandHandler(uowFactory OrderUoWFactory) RenameBoxCommandHandler {
	return RenameBoxCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rename-box command.
// Referencing an unknown box surfaces as an ObjectNotFoundError.
func (h *RenameBoxCommandHandler) Handle(ctx context.Context, cmd RenameBoxCommand) error {
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

	if err = aggregate.RenameBox(cmd.BoxID(), cmd.Name()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
