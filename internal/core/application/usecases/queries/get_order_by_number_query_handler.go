package queries

import (
	"context"

	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// GetOrderByNumberQueryHandler retrieves a single order through the order
// gateway. Checks existence first; the existence check and the fetch are two
// independent round-trips.
type GetOrderByNumberQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewGetOrderByNumberQueryHandler creates a handler for single-order queries.
func NewGetOrderByNumberQueryHandler(orderRepository ports.OrderRepository) GetOrderByNumberQueryHandler {
	return GetOrderByNumberQueryHandler{
		orderRepository: orderRepository,
	}
}

// Handle executes the query. Fails with errs.ObjectNotFoundError when no
// order carries the requested number.
func (h GetOrderByNumberQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByNumberQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	exists, err := h.orderRepository.Exists(ctx, query.Number())
	if err != nil {
		return OrderResponse{}, err
	}
	if !exists {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.Number())
	}

	aggregate, err := h.orderRepository.GetByNumber(ctx, query.Number())
	if err != nil {
		return OrderResponse{}, err
	}

	return toOrderResponse(aggregate), nil
}
