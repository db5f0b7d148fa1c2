package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/dtos"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error payload returned by the intake endpoints.
type Error struct {
	Code       int                   `json:"code"`
	Message    string                `json:"message"`
	Violations []errs.FieldViolation `json:"violations,omitempty"`
}

// Server handles HTTP requests for the order intake API. It coordinates
// between HTTP handlers and the boundary layer.
type Server struct {
	observer order.Observer
}

// NewServer creates a new HTTP server. The observer is attached to every
// order that passes intake, so domain events reach the configured sink.
func NewServer(observer order.Observer) *Server {
	return &Server{observer: observer}
}

// RegisterRoutes mounts the intake endpoints on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)
	e.POST("/api/v1/orders", s.CreateOrder)
}

// GetHealth handles GET /health - reports service liveness.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/v1/orders - validates and normalizes an
// incoming order and returns its canonical projection.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var dto dtos.OrderDTO
	if err := ctx.Bind(&dto); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	newOrder, err := dto.ToDomain()
	if err != nil {
		var validationErr *errs.ValidationError
		if errors.As(err, &validationErr) {
			return ctx.JSON(http.StatusUnprocessableEntity, Error{
				Code:       http.StatusUnprocessableEntity,
				Message:    "Invalid order data",
				Violations: validationErr.Violations,
			})
		}
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	newOrder.SetObserver(s.observer)

	return ctx.JSON(http.StatusOK, dtos.OrderFromDomain(newOrder))
}
