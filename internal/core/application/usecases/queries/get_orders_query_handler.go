package queries

import (
	"context"

	"orders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves a page of orders straight from the
// database, bypassing the domain aggregate. Orders are sorted by number so
// consecutive pages never overlap.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for paginated order listings.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the requested page. A page past the
// end of the data yields an empty slice, not an error.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, numbers, err := h.fetchOrdersPage(ctx, query)
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	itemsByOrder, err := h.fetchItems(ctx, numbers)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		items := itemsByOrder[orders[i].Number]
		if items == nil {
			items = make([]ItemResponse, 0)
		}
		orders[i].Items = items
	}

	return orders, nil
}

func (h GetOrdersQueryHandler) fetchOrdersPage(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderResponse, []int, error) {
	orders := make([]OrderResponse, 0, query.Limit())
	numbers := make([]int, 0, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			number,
			name,
			description,
			status
		FROM orders
		ORDER BY number
		OFFSET ? LIMIT ?
	`, query.Skip(), query.Limit()).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp OrderResponse
		var status string

		err = rows.Scan(
			&orderResp.Number,
			&orderResp.Name,
			&orderResp.Description,
			&status,
		)
		if err != nil {
			return nil, nil, err
		}

		orderStatus, statusErr := order.ParseStatus(status)
		if statusErr != nil {
			return nil, nil, statusErr
		}
		orderResp.Status = orderStatus

		orders = append(orders, orderResp)
		numbers = append(numbers, orderResp.Number)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return orders, numbers, nil
}

func (h GetOrdersQueryHandler) fetchItems(
	ctx context.Context,
	numbers []int,
) (map[int][]ItemResponse, error) {
	itemsByOrder := make(map[int][]ItemResponse)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_number,
			id,
			name,
			quantity
		FROM order_items
		WHERE order_number IN ?
		ORDER BY order_number, id
	`, numbers).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderNumber int
		var itemResp ItemResponse

		err = rows.Scan(
			&orderNumber,
			&itemResp.ID,
			&itemResp.Name,
			&itemResp.Quantity,
		)
		if err != nil {
			return nil, err
		}

		itemsByOrder[orderNumber] = append(itemsByOrder[orderNumber], itemResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return itemsByOrder, nil
}
