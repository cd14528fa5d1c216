package queries

import "orders/internal/core/domain/model/order"

// OrderResponse is the read-model representation of an order returned by the
// query handlers. Both the single-order and the paginated queries use it.
type OrderResponse struct {
	Number      int
	Name        string
	Description string
	Status      order.Status
	Items       []ItemResponse
}

// ItemResponse represents a single position of an order in the read model.
type ItemResponse struct {
	ID       string
	Name     string
	Quantity int
}

func toOrderResponse(aggregate *order.Order) OrderResponse {
	items := make([]ItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemResponse{
			ID:       item.ID(),
			Name:     item.Name(),
			Quantity: item.Quantity(),
		})
	}

	return OrderResponse{
		Number:      aggregate.Number(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Status:      aggregate.Status(),
		Items:       items,
	}
}
