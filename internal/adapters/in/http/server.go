package http

import (
	"errors"
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/generated/servers"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	transitionOrderHandler commands.TransitionOrderCommandHandler
	addBoxHandler          commands.AddBoxCommandHandler
	renameBoxHandler       commands.RenameBoxCommandHandler
	removeBoxHandler       commands.RemoveBoxCommandHandler

	// Query handlers
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	getStatusCountsHandler   queries.GetStatusCountsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	addBoxHandler commands.AddBoxCommandHandler,
	renameBoxHandler commands.RenameBoxCommandHandler,
	removeBoxHandler commands.RemoveBoxCommandHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getStatusCountsHandler queries.GetStatusCountsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		transitionOrderHandler:   transitionOrderHandler,
		addBoxHandler:            addBoxHandler,
		renameBoxHandler:         renameBoxHandler,
		removeBoxHandler:         removeBoxHandler,
		getOrdersByStatusHandler: getOrdersByStatusHandler,
		getOrderHandler:          getOrderHandler,
		getStatusCountsHandler:   getStatusCountsHandler,
	}
}

// GetOrders handles GET /api/v1/orders - retrieves order summaries in one status.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	status, err := order.StatusFromString(string(params.Status))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status",
		})
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	orders, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]servers.OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = servers.OrderSummary{
			Id:               o.ID.Bytes(),
			OriginalOrderId:  o.OriginalOrderID,
			DealerId:         o.DealerID,
			Status:           o.Status.String(),
			CurrentStateTime: o.CurrentStateTime,
			RequestedBy:      o.RequestedBy,
			AssignedTo:       o.AssignedTo,
			TotalOrdered:     o.TotalOrdered,
			TotalPacked:      o.TotalPacked,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - registers a new fulfillment order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	lines := make([]commands.ProductLineInput, len(newOrder.Lines))
	for i, line := range newOrder.Lines {
		lines[i] = commands.ProductLineInput{
			ProductID:         line.ProductId,
			Name:              line.Name,
			QuantityOrdered:   line.QuantityOrdered,
			QuantityAvailable: line.QuantityAvailable,
		}
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		newOrder.OriginalOrderId,
		newOrder.DealerId,
		newOrder.RequestedBy,
		lines,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if isDomainValidationError(handleErr) {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: handleErr.Error(),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetStatusCounts handles GET /api/v1/orders/status-counts - the dashboard counts.
func (s *Server) GetStatusCounts(ctx echo.Context) error {
	counts, err := s.getStatusCountsHandler.Handle(ctx.Request().Context(), queries.NewGetStatusCountsQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve status counts",
		})
	}

	response := make([]servers.StatusCount, len(counts))
	for i, count := range counts {
		response[i] = servers.StatusCount{
			Status: count.Status.String(),
			Count:  count.Count,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves the order detail view.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(detail))
}

// TransitionOrder handles POST /api/v1/orders/{orderId}/transition - requests
// a workflow step. Business rejections come back as 422 with the complete
// error and warning lists; invariant faults as 500.
func (s *Server) TransitionOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var request servers.TransitionRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	cmd, err := commands.NewTransitionOrderCommand(
		orderID,
		order.Action(request.Action),
		request.PerformedBy,
		toAllocationInput(request.Allocation),
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	result, err := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		if isDomainValidationError(err) {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: err.Error(),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to transition order",
		})
	}

	response := toTransitionResultResponse(result)

	if !result.Accepted {
		return ctx.JSON(http.StatusUnprocessableEntity, response)
	}
	return ctx.JSON(http.StatusOK, response)
}

// AddBox handles POST /api/v1/orders/{orderId}/boxes - adds a box to the order.
func (s *Server) AddBox(ctx echo.Context, orderId openapi_types.UUID) error {
	var newBox servers.NewBox
	if err := ctx.Bind(&newBox); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	name := ""
	if newBox.Name != nil {
		name = *newBox.Name
	}

	cmd, err := commands.NewAddBoxCommand(orderID, name)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	result, err := s.addBoxHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to add box",
		})
	}

	return ctx.JSON(http.StatusCreated, servers.Box{
		BoxId: result.BoxID,
		Name:  result.Name,
	})
}

// RenameBox handles PUT /api/v1/orders/{orderId}/boxes/{boxId} - renames a box.
func (s *Server) RenameBox(ctx echo.Context, orderId openapi_types.UUID, boxId string) error {
	var renameBox servers.RenameBox
	if err := ctx.Bind(&renameBox); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	cmd, err := commands.NewRenameBoxCommand(orderID, boxId, renameBox.Name)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if handleErr := s.renameBoxHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Order or box not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to rename box",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveBox handles DELETE /api/v1/orders/{orderId}/boxes/{boxId} - removes a box.
// A box still holding packed stock cannot be removed when it is the order's
// last box; that conflict surfaces as 409.
func (s *Server) RemoveBox(ctx echo.Context, orderId openapi_types.UUID, boxId string) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	cmd, err := commands.NewRemoveBoxCommand(orderID, boxId)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if handleErr := s.removeBoxHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Order or box not found",
			})
		}
		if errors.Is(handleErr, order.ErrBoxStillHoldsPackedStock) {
			return ctx.JSON(http.StatusConflict, servers.Error{
				Code:    http.StatusConflict,
				Message: handleErr.Error(),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to remove box",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// isDomainValidationError reports whether the error is a value validation
// fault the caller can fix, as opposed to an infrastructure failure.
func isDomainValidationError(err error) bool {
	return errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange)
}

// toAllocationInput maps the wire allocation payload to the domain service input.
func toAllocationInput(allocation *servers.AllocationInput) *services.AllocationInput {
	if allocation == nil {
		return nil
	}

	input := &services.AllocationInput{
		Products: make([]services.ProductPacking, len(allocation.Products)),
		Boxes:    make([]services.BoxPacking, len(allocation.Boxes)),
	}

	for i, product := range allocation.Products {
		input.Products[i] = services.ProductPacking{
			ProductID:      product.ProductId,
			QuantityPacked: product.QuantityPacked,
		}
	}

	for i, box := range allocation.Boxes {
		boxName := ""
		if box.BoxName != nil {
			boxName = *box.BoxName
		}

		items := make([]services.BoxItem, len(box.Items))
		for j, item := range box.Items {
			items[j] = services.BoxItem{
				ProductID: item.ProductId,
				Quantity:  item.Quantity,
			}
		}

		input.Boxes[i] = services.BoxPacking{
			BoxID:   box.BoxId,
			BoxName: boxName,
			Items:   items,
		}
	}

	return input
}

// toTransitionResultResponse maps a fulfillment transition outcome to the wire format.
func toTransitionResultResponse(result services.TransitionResult) servers.TransitionResult {
	response := servers.TransitionResult{
		Accepted: result.Accepted,
		Errors:   result.Errors,
		Warnings: result.Warnings,
	}
	if response.Errors == nil {
		response.Errors = []string{}
	}
	if response.Warnings == nil {
		response.Warnings = []string{}
	}

	if result.Accepted {
		newStatus := result.NewStatus.String()
		response.NewStatus = &newStatus
	}

	for _, item := range result.Remainder {
		response.Remainder = append(response.Remainder, servers.RemainderItem{
			ProductId: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return response
}

// toOrderResponse maps the order detail view to the wire format.
func toOrderResponse(detail queries.GetOrderQueryResponse) servers.Order {
	response := servers.Order{
		Id:                detail.ID.Bytes(),
		OriginalOrderId:   detail.OriginalOrderID,
		DealerId:          detail.DealerID,
		Status:            detail.Status.String(),
		CurrentStateTime:  detail.CurrentStateTime,
		RequestedBy:       detail.RequestedBy,
		AssignedTo:        detail.AssignedTo,
		HasRemainingItems: detail.HasRemainingItems,
		Lines:             make([]servers.ProductLine, len(detail.Lines)),
		Boxes:             make([]servers.Box, len(detail.Boxes)),
		History:           make([]servers.StateChange, len(detail.History)),
	}

	for i, line := range detail.Lines {
		response.Lines[i] = servers.ProductLine{
			ProductId:         line.ProductID,
			Name:              line.Name,
			QuantityOrdered:   line.QuantityOrdered,
			QuantityAvailable: line.QuantityAvailable,
			QuantityPacked:    line.QuantityPacked,
			Allocations:       line.Allocations,
		}
	}

	for i, box := range detail.Boxes {
		response.Boxes[i] = servers.Box{
			BoxId: box.BoxID,
			Name:  box.Name,
		}
	}

	for i, entry := range detail.History {
		response.History[i] = servers.StateChange{
			Status:    entry.Status.String(),
			ChangedBy: entry.ChangedBy,
			ChangedAt: entry.ChangedAt,
		}
	}

	return response
}
