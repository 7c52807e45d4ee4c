package commands

import (
	"context"
)

// AddBoxResult describes the box that was created.
type AddBoxResult struct {
	BoxID string
	Name  string
}

// AddBoxCommandHandler handles adding boxes to an order's box registry.
// The new box always starts empty; products are assigned to it explicitly
// through the dispatch-ready transition's allocation input.
type AddBoxCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddBoxCommandHandler creates a handler for box creation operations.
func NewAddBoxCommandHandler(uowFactory OrderUoWFactory) AddBoxCommandHandler {
	return AddBoxCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-box command and returns the created box.
func (h *AddBoxCommandHandler) Handle(ctx context.Context, cmd AddBoxCommand) (AddBoxResult, error) {
	if err := cmd.Validate(); err != nil {
		return AddBoxResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AddBoxResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return AddBoxResult{}, err
	}

	box, err := aggregate.AddBox(cmd.Name())
	if err != nil {
		return AddBoxResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return AddBoxResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AddBoxResult{}, err
	}

	return AddBoxResult{BoxID: box.ID(), Name: box.Name()}, nil
}
