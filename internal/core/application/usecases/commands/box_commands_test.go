package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAddBoxCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewAddBoxCommand(id, "Fragile")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "Fragile", cmd.Name())

	// empty name asks for the positional default
	cmd, err = commands.NewAddBoxCommand(id, "")
	require.NoError(t, err)
	assert.Empty(t, cmd.Name())

	_, err = commands.NewAddBoxCommand(kernel.UUID{}, "Fragile")
	require.Error(t, err)
}

func TestNewRenameBoxCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewRenameBoxCommand(id, "B1", "Heavy parts")
	require.NoError(t, err)
	assert.Equal(t, "B1", cmd.BoxID())
	assert.Equal(t, "Heavy parts", cmd.Name())

	_, err = commands.NewRenameBoxCommand(id, "", "Heavy parts")
	require.ErrorIs(t, err, commands.ErrBoxIDIsRequired)

	_, err = commands.NewRenameBoxCommand(id, "B1", "")
	require.ErrorIs(t, err, commands.ErrBoxNameIsRequired)
}

func TestNewRemoveBoxCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewRemoveBoxCommand(id, "B1")
	require.NoError(t, err)
	assert.Equal(t, "B1", cmd.BoxID())

	_, err = commands.NewRemoveBoxCommand(id, "")
	require.ErrorIs(t, err, commands.ErrBoxIDIsRequired)
}

func TestAddBoxCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := createStoredOrder(t, order.Open)
	cmd, _ := commands.NewAddBoxCommand(stored.ID(), "")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddBoxCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "B1", result.BoxID)
	assert.Equal(t, "Box-1", result.Name)
	_, exists := stored.Box("B1")
	assert.True(t, exists)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRenameBoxCommandHandler_Handle_UnknownBox(t *testing.T) {
	ctx := t.Context()
	stored := createStoredOrder(t, order.Open)
	cmd, _ := commands.NewRenameBoxCommand(stored.ID(), "B9", "Heavy parts")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRenameBoxCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRemoveBoxCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := createStoredOrder(t, order.Open)
	_, err := stored.AddBox("")
	require.NoError(t, err)
	cmd, _ := commands.NewRemoveBoxCommand(stored.ID(), "B1")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveBoxCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, stored.Boxes())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveBoxCommandHandler_Handle_LastBoxWithPackedStock(t *testing.T) {
	ctx := t.Context()
	stored := createStoredOrder(t, order.Packing)
	box, err := stored.AddBox("")
	require.NoError(t, err)
	require.NoError(t, stored.SetAllocation("P1", box.ID(), 5))
	cmd, _ := commands.NewRemoveBoxCommand(stored.ID(), box.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveBoxCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrBoxStillHoldsPackedStock)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	assert.Equal(t, 5, stored.TotalPacked())
}
