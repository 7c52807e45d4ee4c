// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"sort"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Child rows hold the product lines, boxes, allocations and state history that
// the aggregate owns exclusively; they are always loaded and saved together
// with the order row.
type OrderDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OriginalOrderID   string    `gorm:"index"`
	DealerID          string    `gorm:"index"`
	Status            int       `gorm:"index"`
	CurrentStateTime  time.Time
	RequestedBy       string
	AssignedTo        string
	BoxSeq            int
	HasRemainingItems bool

	Lines       []ProductLineDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Boxes       []BoxDTO          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Allocations []AllocationDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History     []StateHistoryDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ProductLineDTO represents one ordered item of an order.
// Position preserves the inbound line order.
type ProductLineDTO struct {
	OrderID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID         string    `gorm:"primaryKey"`
	Name              string
	QuantityOrdered   int
	QuantityAvailable int
	Position          int
}

// TableName specifies the database table name for product lines.
func (ProductLineDTO) TableName() string {
	return "product_lines"
}

// BoxDTO represents one shipping box of an order.
// Position preserves the creation order of boxes.
type BoxDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	BoxID    string    `gorm:"primaryKey"`
	Name     string
	Position int
}

// TableName specifies the database table name for boxes.
func (BoxDTO) TableName() string {
	return "boxes"
}

// AllocationDTO represents the quantity of one product packed into one box.
// Only positive quantities are stored; a cleared allocation has no row.
type AllocationDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID string    `gorm:"primaryKey"`
	BoxID     string    `gorm:"primaryKey"`
	Quantity  int
}

// TableName specifies the database table name for allocations.
func (AllocationDTO) TableName() string {
	return "allocations"
}

// StateHistoryDTO represents one entry of an order's append-only state history.
// Seq preserves the transition order.
type StateHistoryDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq       int       `gorm:"primaryKey"`
	Status    int
	ChangedBy string
	ChangedAt time.Time
}

// TableName specifies the database table name for state history entries.
func (StateHistoryDTO) TableName() string {
	return "state_history"
}

// fromDomain converts an order domain aggregate to its database representation,
// flattening the per-line allocation maps into allocation rows.
func fromDomain(aggregate *order.Order) OrderDTO {
	id := aggregate.ID().Bytes()

	dto := OrderDTO{
		ID:                id,
		OriginalOrderID:   aggregate.OriginalOrderID(),
		DealerID:          aggregate.DealerID(),
		Status:            int(aggregate.Status()),
		CurrentStateTime:  aggregate.CurrentStateTime(),
		RequestedBy:       aggregate.RequestedBy(),
		AssignedTo:        aggregate.AssignedTo(),
		BoxSeq:            aggregate.BoxSeq(),
		HasRemainingItems: aggregate.HasRemainingItems(),
	}

	for position, line := range aggregate.Lines() {
		dto.Lines = append(dto.Lines, ProductLineDTO{
			OrderID:           id,
			ProductID:         line.ProductID(),
			Name:              line.Name(),
			QuantityOrdered:   line.QuantityOrdered(),
			QuantityAvailable: line.QuantityAvailable(),
			Position:          position,
		})

		allocations := line.Allocations()
		boxIDs := make([]string, 0, len(allocations))
		for boxID := range allocations {
			boxIDs = append(boxIDs, boxID)
		}
		sort.Strings(boxIDs)
		for _, boxID := range boxIDs {
			dto.Allocations = append(dto.Allocations, AllocationDTO{
				OrderID:   id,
				ProductID: line.ProductID(),
				BoxID:     boxID,
				Quantity:  allocations[boxID],
			})
		}
	}

	for position, box := range aggregate.Boxes() {
		dto.Boxes = append(dto.Boxes, BoxDTO{
			OrderID:  id,
			BoxID:    box.ID(),
			Name:     box.Name(),
			Position: position,
		})
	}

	for seq, change := range aggregate.History() {
		dto.History = append(dto.History, StateHistoryDTO{
			OrderID:   id,
			Seq:       seq,
			Status:    int(change.Status()),
			ChangedBy: change.ChangedBy(),
			ChangedAt: change.ChangedAt(),
		})
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including allocations and history
// using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	allocationsByProduct := make(map[string]map[string]int, len(dto.Lines))
	for _, allocation := range dto.Allocations {
		if allocationsByProduct[allocation.ProductID] == nil {
			allocationsByProduct[allocation.ProductID] = make(map[string]int)
		}
		allocationsByProduct[allocation.ProductID][allocation.BoxID] = allocation.Quantity
	}

	sort.Slice(dto.Lines, func(i, j int) bool { return dto.Lines[i].Position < dto.Lines[j].Position })
	lines := make([]*order.ProductLine, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := order.RestoreProductLine(
			lineDTO.ProductID, lineDTO.Name,
			lineDTO.QuantityOrdered, lineDTO.QuantityAvailable,
			allocationsByProduct[lineDTO.ProductID],
		)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	sort.Slice(dto.Boxes, func(i, j int) bool { return dto.Boxes[i].Position < dto.Boxes[j].Position })
	boxes := make([]*order.Box, 0, len(dto.Boxes))
	for _, boxDTO := range dto.Boxes {
		box, boxErr := order.RestoreBox(boxDTO.BoxID, boxDTO.Name)
		if boxErr != nil {
			return nil, boxErr
		}
		boxes = append(boxes, box)
	}

	sort.Slice(dto.History, func(i, j int) bool { return dto.History[i].Seq < dto.History[j].Seq })
	history := make([]order.StateChange, 0, len(dto.History))
	for _, historyDTO := range dto.History {
		change, changeErr := order.NewStateChange(
			order.Status(historyDTO.Status), historyDTO.ChangedBy, historyDTO.ChangedAt,
		)
		if changeErr != nil {
			return nil, changeErr
		}
		history = append(history, change)
	}

	return order.RestoreOrder(
		id,
		dto.OriginalOrderID, dto.DealerID, dto.RequestedBy, dto.AssignedTo,
		order.Status(dto.Status),
		dto.CurrentStateTime,
		lines,
		boxes,
		dto.BoxSeq,
		dto.HasRemainingItems,
		history,
	)
}
