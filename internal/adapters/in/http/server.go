// Package http provides the echo HTTP adapter for the deliveries service.
// It translates the wire contracts into commands and queries and maps the
// application layer's sentinel errors onto status codes: a duplicate order is
// 409, a transition whose precondition did not hold is 400, storage faults
// are 500.
package http

import (
	"errors"
	"net/http"
	"time"

	"deliveries/internal/core/application/usecases/commands"
	"deliveries/internal/core/application/usecases/queries"
	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDeliveryHandler   commands.CreateDeliveryCommandHandler
	approveDeliveryHandler  commands.ApproveDeliveryCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	cancelDeliveryHandler   commands.CancelDeliveryCommandHandler

	// Query handlers
	getAllDeliveriesHandler queries.GetAllDeliveriesQueryHandler
	getDeliveryHandler      queries.GetDeliveryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	approveDeliveryHandler commands.ApproveDeliveryCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	cancelDeliveryHandler commands.CancelDeliveryCommandHandler,
	getAllDeliveriesHandler queries.GetAllDeliveriesQueryHandler,
	getDeliveryHandler queries.GetDeliveryQueryHandler,
) *Server {
	return &Server{
		createDeliveryHandler:   createDeliveryHandler,
		approveDeliveryHandler:  approveDeliveryHandler,
		completeDeliveryHandler: completeDeliveryHandler,
		cancelDeliveryHandler:   cancelDeliveryHandler,
		getAllDeliveriesHandler: getAllDeliveriesHandler,
		getDeliveryHandler:      getDeliveryHandler,
	}
}

// RegisterRoutes wires the delivery routes onto the echo instance. All
// delivery routes sit behind basic auth; role checks follow per route.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()
	e.GET("/health", s.Health)

	g := e.Group("/deliveries", middleware.BasicAuth(BasicAuthValidator))
	g.POST("", s.CreateDelivery, requireRole(RolePartner))
	g.GET("", s.GetDeliveries, requireRole(RolePartner, RoleUser))
	g.GET("/:orderId", s.GetDelivery, requireRole(RolePartner, RoleUser))
	g.DELETE("/:orderId", s.CancelDelivery, requireRole(RolePartner, RoleUser))
	g.POST("/:orderId/approve", s.ApproveDelivery, requireRole(RoleUser))
	g.POST("/:orderId/complete", s.CompleteDelivery, requireRole(RolePartner))
}

// Health handles GET /health - liveness probe.
//
//	@Summary	Health check
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/health [get]
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateDelivery handles POST /deliveries - registers a new delivery.
//
//	@Summary	Create a new delivery
//	@Tags		deliveries
//	@Accept		json
//	@Produce	json
//	@Security	BasicAuth
//	@Param		request	body		CreateDeliveryRequest	true	"delivery intake payload"
//	@Success	200		{object}	DeliveryResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/deliveries [post]
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var request CreateDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery data: " + err.Error(),
		})
	}

	orderID, recipient, window, err := request.toCreateDeliveryParts()
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery data: " + err.Error(),
		})
	}

	cmd, err := commands.NewCreateDeliveryCommand(orderID, request.Order.Sender, recipient, window)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery data: " + err.Error(),
		})
	}

	if handleErr := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, delivery.ErrOrderAlreadyExists) {
			return ctx.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: "A delivery already exists for this order",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create delivery",
		})
	}

	aggregate, err := delivery.NewDelivery(orderID, request.Order.Sender, recipient, window)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create delivery",
		})
	}

	return ctx.JSON(http.StatusOK, deliveryResponseFromAggregate(aggregate, time.Now().UTC()))
}

// GetDeliveries handles GET /deliveries - retrieves all deliveries.
//
//	@Summary	List all deliveries
//	@Tags		deliveries
//	@Produce	json
//	@Security	BasicAuth
//	@Success	200	{array}		DeliveryResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/deliveries [get]
func (s *Server) GetDeliveries(ctx echo.Context) error {
	query := queries.NewGetAllDeliveriesQuery()

	deliveries, err := s.getAllDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve deliveries",
		})
	}

	response := make([]DeliveryResponse, len(deliveries))
	for i, item := range deliveries {
		response[i] = deliveryResponseFromQueryItem(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDelivery handles GET /deliveries/:orderId - retrieves a single delivery.
//
//	@Summary	Get a delivery by order id
//	@Tags		deliveries
//	@Produce	json
//	@Security	BasicAuth
//	@Param		orderId	path		string	true	"order identifier"
//	@Success	200		{object}	DeliveryResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/deliveries/{orderId} [get]
func (s *Server) GetDelivery(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	query, err := queries.NewGetDeliveryQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	result, err := s.getDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "No delivery exists for this order",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve delivery",
		})
	}

	return ctx.JSON(http.StatusOK, deliveryResponseFromQueryItem(queries.GetAllDeliveriesQueryResponse(result)))
}

// ApproveDelivery handles POST /deliveries/:orderId/approve.
//
//	@Summary	Approve a delivery
//	@Tags		deliveries
//	@Produce	json
//	@Security	BasicAuth
//	@Param		orderId	path	string	true	"order identifier"
//	@Success	202
//	@Failure	400	{object}	ErrorResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/deliveries/{orderId}/approve [post]
func (s *Server) ApproveDelivery(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("orderId"))
	if err != nil {
		return badOrderID(ctx, err)
	}

	cmd, err := commands.NewApproveDeliveryCommand(orderID)
	if err != nil {
		return badOrderID(ctx, err)
	}

	return transitionOutcome(ctx, s.approveDeliveryHandler.Handle(ctx.Request().Context(), cmd))
}

// CompleteDelivery handles POST /deliveries/:orderId/complete.
//
//	@Summary	Complete a delivery
//	@Tags		deliveries
//	@Produce	json
//	@Security	BasicAuth
//	@Param		orderId	path	string	true	"order identifier"
//	@Success	202
//	@Failure	400	{object}	ErrorResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/deliveries/{orderId}/complete [post]
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("orderId"))
	if err != nil {
		return badOrderID(ctx, err)
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID)
	if err != nil {
		return badOrderID(ctx, err)
	}

	return transitionOutcome(ctx, s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd))
}

// CancelDelivery handles DELETE /deliveries/:orderId.
//
//	@Summary	Cancel a delivery
//	@Tags		deliveries
//	@Produce	json
//	@Security	BasicAuth
//	@Param		orderId	path	string	true	"order identifier"
//	@Success	202
//	@Failure	400	{object}	ErrorResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/deliveries/{orderId} [delete]
func (s *Server) CancelDelivery(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("orderId"))
	if err != nil {
		return badOrderID(ctx, err)
	}

	cmd, err := commands.NewCancelDeliveryCommand(orderID)
	if err != nil {
		return badOrderID(ctx, err)
	}

	return transitionOutcome(ctx, s.cancelDeliveryHandler.Handle(ctx.Request().Context(), cmd))
}

// transitionOutcome maps a lifecycle transition result onto the wire: success
// is 202, a precondition failure is 400, anything else is a 500 fault.
func transitionOutcome(ctx echo.Context, err error) error {
	if err == nil {
		return ctx.NoContent(http.StatusAccepted)
	}

	if errors.Is(err, delivery.ErrInvalidTransition) {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Delivery is not in a valid state for this operation",
		})
	}

	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: "Failed to update delivery",
	})
}

func badOrderID(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: "Invalid order id: " + err.Error(),
	})
}
