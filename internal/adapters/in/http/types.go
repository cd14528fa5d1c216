package http

// CreateOrderRequest is the payload for creating an order. A submitted status
// is ignored: new orders always start as RECEIVED.
type CreateOrderRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      string        `json:"status,omitempty"`
	Items       []ItemRequest `json:"items"`
}

// UpdateOrderRequest is the partial payload for updating an order. Absent
// fields stay untouched; items are merged into the stored ones by id.
type UpdateOrderRequest struct {
	Name        *string       `json:"name,omitempty"`
	Description *string       `json:"description,omitempty"`
	Status      *string       `json:"status,omitempty"`
	Items       []ItemRequest `json:"items,omitempty"`
}

// ItemRequest represents a single order position in a request payload.
type ItemRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// CreateOrderResponse carries the number the database assigned to a freshly
// created order.
type CreateOrderResponse struct {
	Number int `json:"number"`
}

// OrderResponse represents an order in a response payload.
type OrderResponse struct {
	Number      int            `json:"number"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Status      string         `json:"status"`
	Items       []ItemResponse `json:"items"`
}

// ItemResponse represents a single order position in a response payload.
type ItemResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Error is the uniform error payload returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
