package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// CheckoutInput carries the fields of a checkout. CartItems is stored as
// given and is not reconciled against TotalAmount.
type CheckoutInput struct {
	Name          string
	Address       string
	Phone         string
	PaymentMethod string
	CartItems     []models.CartItem
	TotalAmount   float64
}

// OrderService is the order ledger.
type OrderService struct {
	orderRepo repositories.OrderRepository
	publisher EventPublisher
	logger    *zap.Logger
}

// NewOrderService creates a new OrderService. publisher may be nil.
func NewOrderService(orderRepo repositories.OrderRepository, publisher EventPublisher, logger *zap.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// Checkout creates a Pending order dated now.
func (s *OrderService) Checkout(ctx context.Context, in CheckoutInput) (*models.Order, error) {
	order := &models.Order{
		Name:          in.Name,
		Address:       in.Address,
		Phone:         in.Phone,
		PaymentMethod: in.PaymentMethod,
		CartItems:     in.CartItems,
		TotalAmount:   in.TotalAmount,
		Status:        models.OrderStatusPending,
		// Millisecond precision matches what document stores keep.
		Date: time.Now().UTC().Truncate(time.Millisecond),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, storageError("checkout", err)
	}

	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.Float64("total", order.TotalAmount),
		zap.Int("items", len(order.CartItems)))

	publishEvent(ctx, s.publisher, s.logger, EventOrderCreated, order.ID, map[string]interface{}{
		"orderId":       order.ID,
		"status":        order.Status,
		"totalAmount":   order.TotalAmount,
		"paymentMethod": order.PaymentMethod,
		"date":          order.Date,
	})
	return order, nil
}

// TrackOrder returns the order with the given id. Malformed ids fail with
// ErrInvalidID before the store is consulted.
func (s *OrderService) TrackOrder(ctx context.Context, orderID string) (*models.Order, error) {
	if !primitive.IsValidObjectID(orderID) {
		return nil, ErrInvalidID
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageError("track order", err)
	}
	return order, nil
}
