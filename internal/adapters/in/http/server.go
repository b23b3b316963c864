package http

import (
	"errors"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/dish"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the dish and order use cases over HTTP.
// It coordinates between HTTP handlers and application use cases; every
// request body is unwrapped from the data envelope before the command layer
// sees it, and every response is wrapped back into one.
type Server struct {
	// Command handlers
	createDishHandler  commands.CreateDishCommandHandler
	updateDishHandler  commands.UpdateDishCommandHandler
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler

	// Query handlers
	getAllDishesHandler queries.GetAllDishesQueryHandler
	getDishHandler      queries.GetDishQueryHandler
	getAllOrdersHandler queries.GetAllOrdersQueryHandler
	getOrderHandler     queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createDishHandler commands.CreateDishCommandHandler,
	updateDishHandler commands.UpdateDishCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getAllDishesHandler queries.GetAllDishesQueryHandler,
	getDishHandler queries.GetDishQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createDishHandler:   createDishHandler,
		updateDishHandler:   updateDishHandler,
		createOrderHandler:  createOrderHandler,
		updateOrderHandler:  updateOrderHandler,
		deleteOrderHandler:  deleteOrderHandler,
		getAllDishesHandler: getAllDishesHandler,
		getDishHandler:      getDishHandler,
		getAllOrdersHandler: getAllOrdersHandler,
		getOrderHandler:     getOrderHandler,
	}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/dishes", s.GetDishes)
	api.POST("/dishes", s.CreateDish)
	api.GET("/dishes/:dishId", s.GetDish)
	api.PUT("/dishes/:dishId", s.UpdateDish)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PUT("/orders/:orderId", s.UpdateOrder)
	api.DELETE("/orders/:orderId", s.DeleteOrder)
}

// GetDishes handles GET /api/v1/dishes - retrieves the full menu.
func (s *Server) GetDishes(ctx echo.Context) error {
	dishes, err := s.getAllDishesHandler.Handle(ctx.Request().Context(), queries.NewGetAllDishesQuery())
	if err != nil {
		return renderError(ctx, err)
	}

	response := make([]dishResponse, len(dishes))
	for i, d := range dishes {
		response[i] = toDishResponse(d)
	}

	return ctx.JSON(http.StatusOK, dataResponse{Data: response})
}

// CreateDish handles POST /api/v1/dishes - adds a dish to the menu.
func (s *Server) CreateDish(ctx echo.Context) error {
	var envelope requestEnvelope
	if err := ctx.Bind(&envelope); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	created, err := s.createDishHandler.Handle(ctx.Request().Context(),
		commands.NewCreateDishCommand(envelope.Data))
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, dataResponse{Data: toDishResponse(created)})
}

// GetDish handles GET /api/v1/dishes/:dishId - retrieves a single dish.
func (s *Server) GetDish(ctx echo.Context) error {
	located, err := s.getDishHandler.Handle(ctx.Request().Context(),
		queries.NewGetDishQuery(ctx.Param("dishId")))
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dataResponse{Data: toDishResponse(located)})
}

// UpdateDish handles PUT /api/v1/dishes/:dishId - replaces a dish's fields.
func (s *Server) UpdateDish(ctx echo.Context) error {
	var envelope requestEnvelope
	if err := ctx.Bind(&envelope); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	updated, err := s.updateDishHandler.Handle(ctx.Request().Context(),
		commands.NewUpdateDishCommand(ctx.Param("dishId"), envelope.Data))
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dataResponse{Data: toDishResponse(updated)})
}

// GetOrders handles GET /api/v1/orders - retrieves every order.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return renderError(ctx, err)
	}

	response := make([]orderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, dataResponse{Data: response})
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var envelope requestEnvelope
	if err := ctx.Bind(&envelope); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(),
		commands.NewCreateOrderCommand(envelope.Data))
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, dataResponse{Data: toOrderResponse(created)})
}

// GetOrder handles GET /api/v1/orders/:orderId - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	located, err := s.getOrderHandler.Handle(ctx.Request().Context(),
		queries.NewGetOrderQuery(ctx.Param("orderId")))
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dataResponse{Data: toOrderResponse(located)})
}

// UpdateOrder handles PUT /api/v1/orders/:orderId - replaces an order's fields.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	var envelope requestEnvelope
	if err := ctx.Bind(&envelope); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(),
		commands.NewUpdateOrderCommand(ctx.Param("orderId"), envelope.Data))
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dataResponse{Data: toOrderResponse(updated)})
}

// DeleteOrder handles DELETE /api/v1/orders/:orderId - removes a pending order.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	err := s.deleteOrderHandler.Handle(ctx.Request().Context(),
		commands.NewDeleteOrderCommand(ctx.Param("orderId")))
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// requestEnvelope is the wire shape of every write request: the payload
// proper sits under the data key.
type requestEnvelope struct {
	Data map[string]any `json:"data"`
}

// dataResponse wraps every successful payload under the data key.
type dataResponse struct {
	Data any `json:"data"`
}

// errorResponse carries a single human-readable message.
type errorResponse struct {
	Error string `json:"error"`
}

type dishResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
}

type lineItemResponse struct {
	DishID   string `json:"dishId"`
	Quantity int    `json:"quantity"`
}

type orderResponse struct {
	ID           string             `json:"id"`
	DeliverTo    string             `json:"deliverTo"`
	MobileNumber string             `json:"mobileNumber"`
	Status       string             `json:"status"`
	Dishes       []lineItemResponse `json:"dishes"`
}

func toDishResponse(d *dish.Dish) dishResponse {
	return dishResponse{
		ID:          d.ID().String(),
		Name:        d.Name(),
		Description: d.Description(),
		Price:       d.Price(),
		ImageURL:    d.ImageURL(),
	}
}

func toOrderResponse(o *order.Order) orderResponse {
	items := o.Dishes()
	dishes := make([]lineItemResponse, len(items))
	for i, item := range items {
		dishes[i] = lineItemResponse{DishID: item.DishID(), Quantity: item.Quantity()}
	}

	return orderResponse{
		ID:           o.ID().String(),
		DeliverTo:    o.DeliverTo(),
		MobileNumber: o.MobileNumber(),
		Status:       o.Status().String(),
		Dishes:       dishes,
	}
}

// renderError maps a use-case error onto the wire: a missing record is 404,
// every other guard rejection is 400. The message is the error text itself.
func renderError(ctx echo.Context, err error) error {
	status := http.StatusBadRequest
	if errors.Is(err, errs.ErrObjectNotFound) {
		status = http.StatusNotFound
	}

	return ctx.JSON(status, errorResponse{Error: err.Error()})
}
