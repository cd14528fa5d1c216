package http

import (
	"errors"
	"net/http"
	"strconv"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// Server adapts inbound HTTP requests to the order use cases. It does pure
// parameter coercion; business rules live in the commands and queries.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderByNumberHandler queries.GetOrderByNumberQueryHandler
	getOrdersHandler        queries.GetOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderByNumberHandler queries.GetOrderByNumberQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		updateOrderHandler:      updateOrderHandler,
		deleteOrderHandler:      deleteOrderHandler,
		getOrderByNumberHandler: getOrderByNumberHandler,
		getOrdersHandler:        getOrdersHandler,
	}
}

// RegisterRoutes attaches the order endpoints to the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders", s.GetOrders)
	e.GET("/orders/:number", s.GetOrder)
	e.PATCH("/orders/:number", s.UpdateOrder)
	e.DELETE("/orders/:number", s.DeleteOrder)
}

// CreateOrder handles POST /orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items, err := toDomainItems(request.Items)
	if err != nil {
		return s.renderError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(request.Name, request.Description, items)
	if err != nil {
		return s.renderError(ctx, err)
	}

	number, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{Number: number})
}

// GetOrder handles GET /orders/:number - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	number, err := parseNumber(ctx)
	if err != nil {
		return s.renderError(ctx, err)
	}

	query, err := queries.NewGetOrderByNumberQuery(number)
	if err != nil {
		return s.renderError(ctx, err)
	}

	orderResp, err := s.getOrderByNumberHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(orderResp))
}

// GetOrders handles GET /orders - retrieves a page of orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	page, err := parseQueryParam(ctx, "page", defaultPage)
	if err != nil {
		return s.renderError(ctx, err)
	}

	limit, err := parseQueryParam(ctx, "limit", defaultLimit)
	if err != nil {
		return s.renderError(ctx, err)
	}

	query, err := queries.NewGetOrdersQuery(page, limit)
	if err != nil {
		return s.renderError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, orderResp := range orders {
		response = append(response, toOrderResponse(orderResp))
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrder handles PATCH /orders/:number - partially updates an order.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	number, err := parseNumber(ctx)
	if err != nil {
		return s.renderError(ctx, err)
	}

	var request UpdateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	patch, err := toDomainPatch(request)
	if err != nil {
		return s.renderError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(number, patch)
	if err != nil {
		return s.renderError(ctx, err)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /orders/:number - deletes an order with its items.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	number, err := parseNumber(ctx)
	if err != nil {
		return s.renderError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(number)
	if err != nil {
		return s.renderError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) renderError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrInvalidOrder),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func parseNumber(ctx echo.Context) (int, error) {
	number, err := strconv.Atoi(ctx.Param("number"))
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("order number", err)
	}
	return number, nil
}

func parseQueryParam(ctx echo.Context, name string, fallback int) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}

func toDomainItems(items []ItemRequest) ([]order.Item, error) {
	domainItems := make([]order.Item, 0, len(items))
	for _, item := range items {
		domainItem, err := order.NewItem(item.ID, item.Name, item.Quantity)
		if err != nil {
			return nil, err
		}
		domainItems = append(domainItems, domainItem)
	}
	return domainItems, nil
}

func toDomainPatch(request UpdateOrderRequest) (order.Patch, error) {
	patch := order.Patch{
		Name:        request.Name,
		Description: request.Description,
	}

	if request.Status != nil {
		status, err := order.ParseStatus(*request.Status)
		if err != nil {
			return order.Patch{}, err
		}
		patch.Status = &status
	}

	items, err := toDomainItems(request.Items)
	if err != nil {
		return order.Patch{}, err
	}
	if len(items) > 0 {
		patch.Items = items
	}

	return patch, nil
}

func toOrderResponse(orderResp queries.OrderResponse) OrderResponse {
	items := make([]ItemResponse, 0, len(orderResp.Items))
	for _, item := range orderResp.Items {
		items = append(items, ItemResponse{
			ID:       item.ID,
			Name:     item.Name,
			Quantity: item.Quantity,
		})
	}

	return OrderResponse{
		Number:      orderResp.Number,
		Name:        orderResp.Name,
		Description: orderResp.Description,
		Status:      orderResp.Status.String(),
		Items:       items,
	}
}
