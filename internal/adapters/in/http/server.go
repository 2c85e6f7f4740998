// Package http exposes the order and courier use cases over a REST API.
// It coordinates between HTTP handlers and application use cases, translating
// domain errors into HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"feedo/internal/core/application/usecases/commands"
	"feedo/internal/core/application/usecases/queries"
	"feedo/internal/core/domain/model/cart"
	"feedo/internal/core/domain/model/courier"
	"feedo/internal/core/domain/model/kernel"
	"feedo/internal/core/domain/model/order"
	"feedo/internal/pkg/errs"
)

// Server handles HTTP requests for order placement, lifecycle transitions,
// courier registration, shift management and the read models.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	assignCourierHandler   commands.AssignCourierCommandHandler
	transitionOrderHandler commands.TransitionOrderCommandHandler
	createCourierHandler   commands.CreateCourierCommandHandler
	setCourierShiftHandler commands.SetCourierShiftCommandHandler

	// Query handlers
	getOrderHandler         queries.GetOrderQueryHandler
	getClientOrdersHandler  queries.GetClientOrdersQueryHandler
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler
	getAllCouriersHandler   queries.GetAllCouriersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	createCourierHandler commands.CreateCourierCommandHandler,
	setCourierShiftHandler commands.SetCourierShiftCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getClientOrdersHandler queries.GetClientOrdersQueryHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	getAllCouriersHandler queries.GetAllCouriersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		assignCourierHandler:    assignCourierHandler,
		transitionOrderHandler:  transitionOrderHandler,
		createCourierHandler:    createCourierHandler,
		setCourierShiftHandler:  setCourierShiftHandler,
		getOrderHandler:         getOrderHandler,
		getClientOrdersHandler:  getClientOrdersHandler,
		getPendingOrdersHandler: getPendingOrdersHandler,
		getAllCouriersHandler:   getAllCouriersHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/pending", s.GetPendingOrders)
	api.GET("/orders/:orderID", s.GetOrder)
	api.POST("/orders/:orderID/assign", s.AssignOrder)
	api.POST("/orders/:orderID/status", s.TransitionOrder)
	api.GET("/clients/:clientID/orders", s.GetClientOrders)

	api.POST("/couriers", s.CreateCourier)
	api.GET("/couriers", s.GetCouriers)
	api.POST("/couriers/:courierID/shift", s.SetCourierShift)
}

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderItemRequest is one cart line in an order placement request.
type OrderItemRequest struct {
	ProductID      int64  `json:"productId"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	ImageRef       string `json:"imageRef"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	ClientID        string             `json:"clientId"`
	DeliveryAddress string             `json:"deliveryAddress"`
	DeliveryNotes   string             `json:"deliveryNotes"`
	Items           []OrderItemRequest `json:"items"`
}

// CreateOrderResponse confirms a placed order.
type CreateOrderResponse struct {
	ID               string `json:"id"`
	Status           string `json:"status"`
	TotalAmountCents int64  `json:"totalAmountCents"`
}

// CreateOrder handles POST /api/v1/orders - places a new order from a cart.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	clientID, err := kernel.UUIDFromString(req.ClientID)
	if err != nil {
		return badRequest(ctx, "Invalid client id: "+err.Error())
	}

	basket := cart.NewCart()
	for _, item := range req.Items {
		unitPrice, priceErr := kernel.NewMoneyFromCents(item.UnitPriceCents)
		if priceErr != nil {
			return badRequest(ctx, "Invalid item price: "+priceErr.Error())
		}
		basket.AddItem(item.ProductID, item.Name, unitPrice, item.Quantity, item.ImageRef)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), clientID, basket, req.DeliveryAddress, req.DeliveryNotes,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	placed, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		ID:               placed.ID().String(),
		Status:           placed.Status().String(),
		TotalAmountCents: placed.TotalAmount().Cents(),
	})
}

// AssignOrderResponse reports whether a dispatch attempt bound a courier.
type AssignOrderResponse struct {
	Assigned bool `json:"assigned"`
}

// AssignOrder handles POST /api/v1/orders/:orderID/assign - runs one dispatch
// attempt for the order. A false result means the order stays Pending.
func (s *Server) AssignOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	assigned, err := s.assignCourierHandler.TryAssign(ctx.Request().Context(), orderID)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AssignOrderResponse{Assigned: assigned})
}

// TransitionOrderRequest is the body of POST /api/v1/orders/:orderID/status.
// CourierID identifies the acting courier for accept, completion and refusal;
// a Cancelled target without a courier id is a client cancellation.
type TransitionOrderRequest struct {
	Status    string  `json:"status"`
	CourierID *string `json:"courierId"`
}

// TransitionOrder handles POST /api/v1/orders/:orderID/status - moves an order
// through its lifecycle.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req TransitionOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	var actorCourierID *kernel.UUID
	if req.CourierID != nil {
		courierID, idErr := kernel.UUIDFromString(*req.CourierID)
		if idErr != nil {
			return badRequest(ctx, "Invalid courier id: "+idErr.Error())
		}
		actorCourierID = &courierID
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target, actorCourierID)
	if err != nil {
		return badRequest(ctx, "Invalid transition: "+err.Error())
	}

	if err = s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OrderItemResponse is one item line in an order read model.
type OrderItemResponse struct {
	ProductID      int64  `json:"productId"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	SubtotalCents  int64  `json:"subtotalCents"`
}

// OrderResponse is the full order read model.
type OrderResponse struct {
	ID               string              `json:"id"`
	ClientID         string              `json:"clientId"`
	CourierID        *string             `json:"courierId"`
	Status           string              `json:"status"`
	TotalAmountCents int64               `json:"totalAmountCents"`
	DeliveryAddress  string              `json:"deliveryAddress"`
	DeliveryNotes    string              `json:"deliveryNotes"`
	Items            []OrderItemResponse `json:"items"`
	CreatedAt        string              `json:"createdAt"`
	AssignedAt       *string             `json:"assignedAt"`
	DeliveredAt      *string             `json:"deliveredAt"`
}

// GetOrder handles GET /api/v1/orders/:orderID - retrieves one order with items.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	items := make([]OrderItemResponse, len(result.Items))
	for i, item := range result.Items {
		items[i] = OrderItemResponse{
			ProductID:      item.ProductID,
			Name:           item.Name,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
			SubtotalCents:  item.SubtotalCents,
		}
	}

	response := OrderResponse{
		ID:               result.ID.String(),
		ClientID:         result.ClientID.String(),
		Status:           result.Status,
		TotalAmountCents: result.TotalAmountCents,
		DeliveryAddress:  result.DeliveryAddress,
		DeliveryNotes:    result.DeliveryNotes,
		Items:            items,
		CreatedAt:        formatTime(result.CreatedAt),
	}
	if result.CourierID != nil {
		courierID := result.CourierID.String()
		response.CourierID = &courierID
	}
	if result.AssignedAt != nil {
		assignedAt := formatTime(*result.AssignedAt)
		response.AssignedAt = &assignedAt
	}
	if result.DeliveredAt != nil {
		deliveredAt := formatTime(*result.DeliveredAt)
		response.DeliveredAt = &deliveredAt
	}

	return ctx.JSON(http.StatusOK, response)
}

// ClientOrderResponse is one row in a client's order history.
type ClientOrderResponse struct {
	ID               string `json:"id"`
	Status           string `json:"status"`
	TotalAmountCents int64  `json:"totalAmountCents"`
	DeliveryAddress  string `json:"deliveryAddress"`
	CreatedAt        string `json:"createdAt"`
}

// GetClientOrders handles GET /api/v1/clients/:clientID/orders - retrieves a
// client's order history, newest first.
func (s *Server) GetClientOrders(ctx echo.Context) error {
	clientID, err := kernel.UUIDFromString(ctx.Param("clientID"))
	if err != nil {
		return badRequest(ctx, "Invalid client id: "+err.Error())
	}

	query, err := queries.NewGetClientOrdersQuery(clientID)
	if err != nil {
		return badRequest(ctx, "Invalid client id: "+err.Error())
	}

	orders, err := s.getClientOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]ClientOrderResponse, len(orders))
	for i, row := range orders {
		response[i] = ClientOrderResponse{
			ID:               row.ID.String(),
			Status:           row.Status,
			TotalAmountCents: row.TotalAmountCents,
			DeliveryAddress:  row.DeliveryAddress,
			CreatedAt:        formatTime(row.CreatedAt),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PendingOrderResponse is one row in the dispatch backlog.
type PendingOrderResponse struct {
	ID               string `json:"id"`
	ClientID         string `json:"clientId"`
	TotalAmountCents int64  `json:"totalAmountCents"`
	DeliveryAddress  string `json:"deliveryAddress"`
	CreatedAt        string `json:"createdAt"`
}

// GetPendingOrders handles GET /api/v1/orders/pending - retrieves unassigned
// orders awaiting dispatch, oldest first.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	query := queries.NewGetPendingOrdersQuery()

	orders, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]PendingOrderResponse, len(orders))
	for i, row := range orders {
		response[i] = PendingOrderResponse{
			ID:               row.ID.String(),
			ClientID:         row.ClientID.String(),
			TotalAmountCents: row.TotalAmountCents,
			DeliveryAddress:  row.DeliveryAddress,
			CreatedAt:        formatTime(row.CreatedAt),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCourierRequest is the body of POST /api/v1/couriers.
type CreateCourierRequest struct {
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	VehicleType string  `json:"vehicleType"`
	Rating      float64 `json:"rating"`
}

// CreateCourierResponse confirms a registered courier.
type CreateCourierResponse struct {
	ID string `json:"id"`
}

// CreateCourier handles POST /api/v1/couriers - registers a new courier.
// New couriers start off shift.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var req CreateCourierRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	contact, err := kernel.NewContact(req.Name, req.Phone, req.Email)
	if err != nil {
		return badRequest(ctx, "Invalid contact: "+err.Error())
	}

	vehicleType, err := courier.VehicleTypeFromString(req.VehicleType)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle type: "+err.Error())
	}

	cmd, err := commands.NewCreateCourierCommand(contact, vehicleType, req.Rating)
	if err != nil {
		return badRequest(ctx, "Invalid courier data: "+err.Error())
	}

	if err = s.createCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateCourierResponse{ID: cmd.CourierID().String()})
}

// CourierResponse is one courier on the roster.
type CourierResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	VehicleType     string  `json:"vehicleType"`
	Status          string  `json:"status"`
	Rating          float64 `json:"rating"`
	TotalDeliveries int     `json:"totalDeliveries"`
	LastDeliveryAt  *string `json:"lastDeliveryAt"`
}

// GetCouriers handles GET /api/v1/couriers - retrieves the courier roster.
func (s *Server) GetCouriers(ctx echo.Context) error {
	query := queries.NewGetAllCouriersQuery()

	couriers, err := s.getAllCouriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]CourierResponse, len(couriers))
	for i, row := range couriers {
		response[i] = CourierResponse{
			ID:              row.ID.String(),
			Name:            row.Name,
			VehicleType:     row.VehicleType,
			Status:          row.Status,
			Rating:          row.Rating,
			TotalDeliveries: row.TotalDeliveries,
		}
		if row.LastDeliveryAt != nil {
			lastDeliveryAt := formatTime(*row.LastDeliveryAt)
			response[i].LastDeliveryAt = &lastDeliveryAt
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetCourierShiftRequest is the body of POST /api/v1/couriers/:courierID/shift.
type SetCourierShiftRequest struct {
	OnShift bool `json:"onShift"`
}

// SetCourierShift handles POST /api/v1/couriers/:courierID/shift - toggles a
// courier's shift status.
func (s *Server) SetCourierShift(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("courierID"))
	if err != nil {
		return badRequest(ctx, "Invalid courier id: "+err.Error())
	}

	var req SetCourierShiftRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetCourierShiftCommand(courierID, req.OnShift)
	if err != nil {
		return badRequest(ctx, "Invalid shift request: "+err.Error())
	}

	if err = s.setCourierShiftHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps use case errors to HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, order.ErrCourierAlreadyAssigned),
		errors.Is(err, commands.ErrOrderBelongsToAnotherCourier),
		errors.Is(err, courier.ErrCourierIsBusy),
		errors.Is(err, courier.ErrCourierIsNotAvailable),
		errors.Is(err, courier.ErrCourierIsNotBusy):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, order.ErrEmptyCart):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrStorageUnavailable):
		code = http.StatusServiceUnavailable
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}
