// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"orders/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The number is assigned by the database sequence on insert.
type OrderDTO struct {
	Number      int    `gorm:"primaryKey;autoIncrement"`
	Name        string
	Description string
	Status      string
	Items       []OrderItemDTO `gorm:"foreignKey:OrderNumber;references:Number;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents a single position of an order. Items are owned by
// their order and keyed by the (order number, item id) pair.
type OrderItemDTO struct {
	OrderNumber int    `gorm:"primaryKey"`
	ID          string `gorm:"primaryKey"`
	Name        string
	Quantity    int
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Status is stored as its canonical string form.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:       item.ID(),
			Name:     item.Name(),
			Quantity: item.Quantity(),
		})
	}

	return OrderDTO{
		Number:      aggregate.Number(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Status:      aggregate.Status().String(),
		Items:       items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder, so the creation
// rules are not re-applied to rows already persisted.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.ID, itemDTO.Name, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(dto.Number, dto.Name, dto.Description, status, items)
}
