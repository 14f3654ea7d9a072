package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"ordertracking/internal/core/application/usecases/commands"
	"ordertracking/internal/core/application/usecases/queries"
	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/metrics"
	"ordertracking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the HTTP surface over the order tracking use cases.
// Handlers are hand-written and stay thin: parse, dispatch, map errors.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler
	recordEventHandler commands.RecordStatusEventCommandHandler
	deleteEventHandler commands.DeleteStatusEventCommandHandler

	// Query handlers
	getOrdersByStatusHandler   queries.GetOrdersByStatusQueryHandler
	countOrdersByStatusHandler queries.CountOrdersByStatusQueryHandler
	countOrdersHandler         queries.CountOrdersQueryHandler
	getOrderHandler            queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	recordEventHandler commands.RecordStatusEventCommandHandler,
	deleteEventHandler commands.DeleteStatusEventCommandHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	countOrdersByStatusHandler queries.CountOrdersByStatusQueryHandler,
	countOrdersHandler queries.CountOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		deleteOrderHandler:         deleteOrderHandler,
		recordEventHandler:         recordEventHandler,
		deleteEventHandler:         deleteEventHandler,
		getOrdersByStatusHandler:   getOrdersByStatusHandler,
		countOrdersByStatusHandler: countOrdersByStatusHandler,
		countOrdersHandler:         countOrdersHandler,
		getOrderHandler:            getOrderHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetOrders)
	v1.GET("/orders/counts", s.GetOrderCounts)
	v1.GET("/orders/:id", s.GetOrder)
	v1.DELETE("/orders/:id", s.DeleteOrder)
	v1.POST("/orders/:id/events", s.RecordStatusEvent)
	v1.DELETE("/events/:id", s.DeleteStatusEvent)
}

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderResponse represents one order in API responses. An order with no
// status events reports "unset".
type OrderResponse struct {
	ID           string `json:"id"`
	LatestStatus string `json:"latest_status"`
}

// NewStatusEvent is the request body for recording a status event.
// Created is optional; when omitted the event is stamped with the current time.
type NewStatusEvent struct {
	Status  string     `json:"status"`
	Created *time.Time `json:"created,omitempty"`
}

// CreatedResponse carries the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// OrderCountsResponse summarizes the store per projected status.
type OrderCountsResponse struct {
	Pending  int64 `json:"pending"`
	Complete int64 `json:"complete"`
	Canceled int64 `json:"canceled"`
	Total    int64 `json:"total"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - creates a new order with an empty ledger.
func (s *Server) CreateOrder(ctx echo.Context) error {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, "create_order", http.StatusBadRequest, err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, "create_order", err)
	}

	metrics.HTTPRequestsTotal.WithLabelValues("create_order", http.MethodPost, "201").Inc()
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders?status=... - lists orders by projected status.
func (s *Server) GetOrders(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return s.fail(ctx, "get_orders", http.StatusBadRequest, "unknown status filter")
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return s.fail(ctx, "get_orders", http.StatusBadRequest, err.Error())
	}

	rows, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, "get_orders", err)
	}

	response := make([]OrderResponse, len(rows))
	for i, row := range rows {
		response[i] = OrderResponse{
			ID:           row.ID.String(),
			LatestStatus: row.LatestStatus.String(),
		}
	}

	metrics.HTTPRequestsTotal.WithLabelValues("get_orders", http.MethodGet, "200").Inc()
	return ctx.JSON(http.StatusOK, response)
}

// GetOrderCounts handles GET /api/v1/orders/counts - per-status and total counts.
func (s *Server) GetOrderCounts(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	counts := make(map[order.Status]int64, len(order.AllStatuses()))
	for _, status := range order.AllStatuses() {
		query, err := queries.NewCountOrdersByStatusQuery(status)
		if err != nil {
			return s.mapError(ctx, "get_order_counts", err)
		}

		count, err := s.countOrdersByStatusHandler.Handle(reqCtx, query)
		if err != nil {
			return s.mapError(ctx, "get_order_counts", err)
		}
		counts[status] = count
	}

	total, err := s.countOrdersHandler.Handle(reqCtx, queries.NewCountOrdersQuery())
	if err != nil {
		return s.mapError(ctx, "get_order_counts", err)
	}

	metrics.HTTPRequestsTotal.WithLabelValues("get_order_counts", http.MethodGet, "200").Inc()
	return ctx.JSON(http.StatusOK, OrderCountsResponse{
		Pending:  counts[order.Pending],
		Complete: counts[order.Complete],
		Canceled: counts[order.Canceled],
		Total:    total,
	})
}

// GetOrder handles GET /api/v1/orders/:id - a single order's projection.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, "get_order", http.StatusBadRequest, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, "get_order", http.StatusBadRequest, err.Error())
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, "get_order", err)
	}

	metrics.HTTPRequestsTotal.WithLabelValues("get_order", http.MethodGet, "200").Inc()
	return ctx.JSON(http.StatusOK, OrderResponse{
		ID:           resp.ID.String(),
		LatestStatus: resp.LatestStatus.String(),
	})
}

// DeleteOrder handles DELETE /api/v1/orders/:id - removes an order and its ledger.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, "delete_order", http.StatusBadRequest, "invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, "delete_order", http.StatusBadRequest, err.Error())
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, "delete_order", err)
	}

	metrics.HTTPRequestsTotal.WithLabelValues("delete_order", http.MethodDelete, "204").Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// RecordStatusEvent handles POST /api/v1/orders/:id/events - appends a ledger event.
func (s *Server) RecordStatusEvent(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, "record_status_event", http.StatusBadRequest, "invalid order id")
	}

	var body NewStatusEvent
	if err = ctx.Bind(&body); err != nil {
		return s.fail(ctx, "record_status_event", http.StatusBadRequest, "invalid request body")
	}

	status, err := order.StatusFromString(body.Status)
	if err != nil {
		return s.fail(ctx, "record_status_event", http.StatusBadRequest, "unknown status")
	}

	var created time.Time
	if body.Created != nil {
		created = *body.Created
	}

	eventID := kernel.NewUUID()
	cmd, err := commands.NewRecordStatusEventCommand(eventID, orderID, status, created)
	if err != nil {
		return s.fail(ctx, "record_status_event", http.StatusBadRequest, err.Error())
	}

	if err = s.recordEventHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, "record_status_event", err)
	}

	metrics.HTTPRequestsTotal.WithLabelValues("record_status_event", http.MethodPost, "201").Inc()
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: eventID.String()})
}

// DeleteStatusEvent handles DELETE /api/v1/events/:id - removes a ledger event.
func (s *Server) DeleteStatusEvent(ctx echo.Context) error {
	eventID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, "delete_status_event", http.StatusBadRequest, "invalid event id")
	}

	cmd, err := commands.NewDeleteStatusEventCommand(eventID)
	if err != nil {
		return s.fail(ctx, "delete_status_event", http.StatusBadRequest, err.Error())
	}

	if err = s.deleteEventHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, "delete_status_event", err)
	}

	metrics.HTTPRequestsTotal.WithLabelValues("delete_status_event", http.MethodDelete, "204").Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// mapError translates application errors into HTTP responses.
func (s *Server) mapError(ctx echo.Context, handler string, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return s.fail(ctx, handler, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return s.fail(ctx, handler, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrStoreUnavailable):
		return s.fail(ctx, handler, http.StatusServiceUnavailable, "storage temporarily unavailable")
	default:
		return s.fail(ctx, handler, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) fail(ctx echo.Context, handler string, code int, message string) error {
	metrics.HTTPRequestsTotal.WithLabelValues(handler, ctx.Request().Method, strconv.Itoa(code)).Inc()
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
