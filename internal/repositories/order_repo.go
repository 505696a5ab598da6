package repositories

import (
	"context"

	"storefront/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
}

// ContactRepository is the write-only sink for contact messages.
type ContactRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
}
