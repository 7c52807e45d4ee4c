package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLineInputs() []commands.ProductLineInput {
	return []commands.ProductLineInput{
		{ProductID: "P1", Name: "Brake pad", QuantityOrdered: 10, QuantityAvailable: 10},
		{ProductID: "P2", Name: "Oil filter", QuantityOrdered: 4, QuantityAvailable: 2},
	}
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, "ORD-1001", "dealer-7", "alice", validLineInputs())
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "ORD-1001", cmd.OriginalOrderID())
	assert.Equal(t, "dealer-7", cmd.DealerID())
	assert.Equal(t, "alice", cmd.RequestedBy())
	assert.Len(t, cmd.Lines(), 2)
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, "ORD-1001", "dealer-7", "alice", validLineInputs())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_MissingReferences(t *testing.T) {
	id := kernel.NewUUID()

	_, err := commands.NewCreateOrderCommand(id, "", "dealer-7", "alice", validLineInputs())
	require.ErrorIs(t, err, commands.ErrOriginalOrderIDIsRequired)

	_, err = commands.NewCreateOrderCommand(id, "ORD-1001", "", "alice", validLineInputs())
	require.ErrorIs(t, err, commands.ErrDealerIDIsRequired)

	_, err = commands.NewCreateOrderCommand(id, "ORD-1001", "dealer-7", "", validLineInputs())
	require.ErrorIs(t, err, commands.ErrRequestedByIsRequired)
}

func TestNewCreateOrderCommand_NoLines(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewCreateOrderCommand(id, "ORD-1001", "dealer-7", "alice", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrProductLinesAreRequired)
}
