package services_test

import (
	"testing"
	"time"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullPackingInput(quantity int) *services.AllocationInput {
	return &services.AllocationInput{
		Products: []services.ProductPacking{{ProductID: "P1", QuantityPacked: quantity}},
		Boxes: []services.BoxPacking{
			{BoxID: "B1", BoxName: "Box-1", Items: []services.BoxItem{{ProductID: "P1", Quantity: quantity}}},
		},
	}
}

func TestFulfillmentService_Transition_Workflow(t *testing.T) {
	svc := services.NewFulfillmentService()
	at := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("start picking from Open", func(t *testing.T) {
		o := createOpenOrder(t)

		result, err := svc.Transition(o, order.ActionStartPicking, nil, "bob", at)

		require.NoError(t, err)
		assert.True(t, result.Accepted)
		assert.Equal(t, order.Picking, result.NewStatus)
		assert.Equal(t, order.Picking, o.Status())
		assert.Empty(t, result.Errors)
	})

	t.Run("action out of sequence is rejected, not a hard error", func(t *testing.T) {
		o := createOpenOrder(t)

		result, err := svc.Transition(o, order.ActionStartPacking, nil, "bob", at)

		require.NoError(t, err)
		assert.False(t, result.Accepted)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "start_packing cannot be applied in status Open")
		assert.Equal(t, order.Open, o.Status())
		assert.Len(t, o.History(), 1)
	})

	t.Run("repeating an action is rejected idempotently", func(t *testing.T) {
		o := createOpenOrder(t)

		first, err := svc.Transition(o, order.ActionStartPicking, nil, "bob", at)
		require.NoError(t, err)
		require.True(t, first.Accepted)

		second, err := svc.Transition(o, order.ActionStartPicking, nil, "bob", at.Add(time.Minute))
		require.NoError(t, err)

		assert.False(t, second.Accepted)
		assert.Contains(t, second.Errors[0], "start_picking cannot be applied in status Picking")
		assert.Equal(t, order.Picking, o.Status())
		assert.Len(t, o.History(), 2)
	})

	t.Run("unknown action is a hard error", func(t *testing.T) {
		o := createOpenOrder(t)

		_, err := svc.Transition(o, order.Action("ship_it"), nil, "bob", at)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("missing actor is a hard error", func(t *testing.T) {
		o := createOpenOrder(t)
		_, err := svc.Transition(o, order.ActionStartPicking, nil, "", at)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero transition time is a hard error", func(t *testing.T) {
		o := createOpenOrder(t)
		_, err := svc.Transition(o, order.ActionStartPicking, nil, "bob", time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestFulfillmentService_MoveToDispatchReady(t *testing.T) {
	svc := services.NewFulfillmentService()
	at := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)

	t.Run("nothing packed blocks dispatch ready", func(t *testing.T) {
		o := createPackingOrder(t)

		result, err := svc.Transition(o, order.ActionMoveToDispatchReady, &services.AllocationInput{}, "carol", at)

		require.NoError(t, err)
		assert.False(t, result.Accepted)
		assert.Contains(t, result.Errors, "no products have been packed")
		assert.Equal(t, order.Packing, o.Status())
	})

	t.Run("missing input blocks dispatch ready", func(t *testing.T) {
		o := createPackingOrder(t)

		result, err := svc.Transition(o, order.ActionMoveToDispatchReady, nil, "carol", at)

		require.NoError(t, err)
		assert.False(t, result.Accepted)
		assert.Contains(t, result.Errors[0], "box assignments are required")
	})

	t.Run("fully packed order is accepted with empty remainder", func(t *testing.T) {
		o := createPackingOrder(t)

		result, err := svc.Transition(o, order.ActionMoveToDispatchReady, fullPackingInput(10), "carol", at)

		require.NoError(t, err)
		assert.True(t, result.Accepted)
		assert.Equal(t, order.DispatchReady, result.NewStatus)
		assert.Empty(t, result.Warnings)
		assert.Empty(t, result.Remainder)
		assert.False(t, o.HasRemainingItems())

		box, exists := o.Box("B1")
		require.True(t, exists)
		assert.Equal(t, "Box-1", box.Name())
		assert.Equal(t, 10, o.TotalPacked())
	})

	t.Run("partial packing is accepted with warning and remainder", func(t *testing.T) {
		o := createPackingOrder(t)

		result, err := svc.Transition(o, order.ActionMoveToDispatchReady, fullPackingInput(6), "carol", at)

		require.NoError(t, err)
		assert.True(t, result.Accepted)
		assert.Contains(t, result.Warnings, "Brake pad is partially packed (6/10)")
		assert.Equal(t, []order.RemainderItem{{ProductID: "P1", Quantity: 4}}, result.Remainder)
		assert.True(t, o.HasRemainingItems())
	})

	t.Run("over-packing is rejected and the order is untouched", func(t *testing.T) {
		o := createPackingOrder(t)

		result, err := svc.Transition(o, order.ActionMoveToDispatchReady, fullPackingInput(12), "carol", at)

		require.NoError(t, err)
		assert.False(t, result.Accepted)
		assert.Contains(t, result.Errors, "Brake pad packed quantity (12) exceeds available quantity (10)")
		assert.Equal(t, order.Packing, o.Status())
		assert.Equal(t, 0, o.TotalPacked())
		assert.Empty(t, o.Boxes())
		assert.Len(t, o.History(), 3)
	})

	t.Run("empty box in the input blocks dispatch ready", func(t *testing.T) {
		o := createPackingOrder(t)
		input := fullPackingInput(10)
		input.Boxes = append(input.Boxes, services.BoxPacking{BoxID: "B2", BoxName: "Spare"})

		result, err := svc.Transition(o, order.ActionMoveToDispatchReady, input, "carol", at)

		require.NoError(t, err)
		assert.False(t, result.Accepted)
		assert.Contains(t, result.Errors, "box Spare has no products assigned and cannot enter dispatch ready")
		assert.Contains(t, result.Warnings, "box Spare has no products assigned")
		assert.Equal(t, order.Packing, o.Status())
	})

	t.Run("order box absent from the input blocks dispatch ready", func(t *testing.T) {
		o := createPackingOrder(t)
		_, err := o.AddBox("Forgotten")
		require.NoError(t, err)

		result, err := svc.Transition(o, order.ActionMoveToDispatchReady, fullPackingInput(10), "carol", at)

		require.NoError(t, err)
		assert.False(t, result.Accepted)
		assert.Contains(t, result.Errors, "box Forgotten has no products assigned and cannot enter dispatch ready")
	})

	t.Run("unknown product in the input is a hard error", func(t *testing.T) {
		o := createPackingOrder(t)
		input := fullPackingInput(10)
		input.Products = append(input.Products, services.ProductPacking{ProductID: "P99", QuantityPacked: 1})

		_, err := svc.Transition(o, order.ActionMoveToDispatchReady, input, "carol", at)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("negative quantity in the input is a hard error", func(t *testing.T) {
		o := createPackingOrder(t)
		input := fullPackingInput(10)
		input.Boxes[0].Items[0].Quantity = -1

		_, err := svc.Transition(o, order.ActionMoveToDispatchReady, input, "carol", at)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("duplicate box identifiers in the input are a hard error", func(t *testing.T) {
		o := createPackingOrder(t)
		input := fullPackingInput(10)
		input.Boxes = append(input.Boxes, services.BoxPacking{
			BoxID: "B1", Items: []services.BoxItem{{ProductID: "P1", Quantity: 1}},
		})

		_, err := svc.Transition(o, order.ActionMoveToDispatchReady, input, "carol", at)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("resubmission replaces earlier allocations instead of adding", func(t *testing.T) {
		o := createPackingOrder(t)
		b1, err := o.AddBox("Box-1")
		require.NoError(t, err)
		require.NoError(t, o.SetAllocation("P1", b1.ID(), 3))

		result, err := svc.Transition(o, order.ActionMoveToDispatchReady, fullPackingInput(10), "carol", at)

		require.NoError(t, err)
		require.True(t, result.Accepted)
		assert.Equal(t, 10, o.TotalPacked())
		line, _ := o.Line("P1")
		assert.Equal(t, map[string]int{"B1": 10}, line.Allocations())
	})
}

func TestFulfillmentService_CompleteDispatch(t *testing.T) {
	svc := services.NewFulfillmentService()
	readyAt := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)
	doneAt := readyAt.Add(time.Hour)

	t.Run("fully packed order completes", func(t *testing.T) {
		o := createPackingOrder(t)
		_, err := svc.Transition(o, order.ActionMoveToDispatchReady, fullPackingInput(10), "carol", readyAt)
		require.NoError(t, err)

		result, err := svc.Transition(o, order.ActionCompleteDispatch, nil, "carol", doneAt)

		require.NoError(t, err)
		assert.True(t, result.Accepted)
		assert.Equal(t, order.Completed, result.NewStatus)
		assert.Empty(t, result.Remainder)
		assert.True(t, o.Status().IsTerminal())
	})

	t.Run("partially packed order completes partially with remainder", func(t *testing.T) {
		o := createPackingOrder(t)
		_, err := svc.Transition(o, order.ActionMoveToDispatchReady, fullPackingInput(6), "carol", readyAt)
		require.NoError(t, err)

		result, err := svc.Transition(o, order.ActionCompleteDispatch, nil, "carol", doneAt)

		require.NoError(t, err)
		assert.True(t, result.Accepted)
		assert.Equal(t, order.PartiallyCompleted, result.NewStatus)
		assert.Equal(t, []order.RemainderItem{{ProductID: "P1", Quantity: 4}}, result.Remainder)
	})

	t.Run("terminal branch uses the captured flag, not recomputed data", func(t *testing.T) {
		o := createPackingOrder(t)
		_, err := svc.Transition(o, order.ActionMoveToDispatchReady, fullPackingInput(6), "carol", readyAt)
		require.NoError(t, err)

		// Removing packed stock after DispatchReady must not flip the branch
		// decision; the flag was captured at the transition.
		require.True(t, o.HasRemainingItems())

		result, err := svc.Transition(o, order.ActionCompleteDispatch, nil, "carol", doneAt)
		require.NoError(t, err)
		assert.Equal(t, order.PartiallyCompleted, result.NewStatus)
	})

	t.Run("completing a terminal order is rejected", func(t *testing.T) {
		o := createPackingOrder(t)
		_, err := svc.Transition(o, order.ActionMoveToDispatchReady, fullPackingInput(10), "carol", readyAt)
		require.NoError(t, err)
		_, err = svc.Transition(o, order.ActionCompleteDispatch, nil, "carol", doneAt)
		require.NoError(t, err)

		result, err := svc.Transition(o, order.ActionCompleteDispatch, nil, "carol", doneAt.Add(time.Minute))

		require.NoError(t, err)
		assert.False(t, result.Accepted)
		assert.Contains(t, result.Errors[0], "complete_dispatch cannot be applied in status Completed")
		assert.Equal(t, order.Completed, o.Status())
	})
}
