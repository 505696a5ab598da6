package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"storefront/internal/models"
	"storefront/internal/services"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	logger   *zap.Logger
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service:  service,
		logger:   logger,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/checkout", h.HandleCheckout)
	router.Get("/track-order/:id", h.HandleTrackOrder)
}

// CheckoutRequest represents the request body for checkout. TotalAmount is a
// pointer so that a zero total still counts as present.
type CheckoutRequest struct {
	Name          string            `json:"name" validate:"required"`
	Address       string            `json:"address" validate:"required"`
	Phone         string            `json:"phone" validate:"required"`
	PaymentMethod string            `json:"paymentMethod" validate:"required"`
	CartItems     []models.CartItem `json:"cartItems" validate:"required,min=1"`
	TotalAmount   *float64          `json:"totalAmount" validate:"required"`
}

// HandleCheckout places a new order.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	var req CheckoutRequest
	if problem := bindRequest(c, h.validate, &req); problem != nil {
		return c.Status(fiber.StatusBadRequest).JSON(problem)
	}

	order, err := h.service.Checkout(c.UserContext(), services.CheckoutInput{
		Name:          req.Name,
		Address:       req.Address,
		Phone:         req.Phone,
		PaymentMethod: req.PaymentMethod,
		CartItems:     req.CartItems,
		TotalAmount:   *req.TotalAmount,
	})
	if err != nil {
		h.logger.Error("checkout failed", zap.Error(err))
		return failInternal(c, "Error saving order", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Order placed successfully!",
		"order":   order,
	})
}

// HandleTrackOrder retrieves a single order by its ID.
func (h *OrderHandler) HandleTrackOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.service.TrackOrder(c.UserContext(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidID):
			return fail(c, fiber.StatusBadRequest, "Invalid Order ID")
		case errors.Is(err, services.ErrNotFound):
			return fail(c, fiber.StatusNotFound, "Order Not Found")
		}
		h.logger.Error("order lookup failed", zap.String("order_id", orderID), zap.Error(err))
		return failInternal(c, "Error fetching order", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"order":   order,
	})
}
