package repositories

import (
	"context"

	"storefront/internal/models"
)

// VendorRepository defines the interface for vendor data access.
type VendorRepository interface {
	// Create stores a new vendor, assigning an id when empty. It returns
	// ErrDuplicateKey when the email is already registered.
	Create(ctx context.Context, vendor *models.Vendor) error
	GetByEmail(ctx context.Context, email string) (*models.Vendor, error)
	GetByID(ctx context.Context, id string) (*models.Vendor, error)
	// GetAll returns every vendor in creation order.
	GetAll(ctx context.Context) ([]models.Vendor, error)
	// AppendProduct atomically appends product to the vendor's list and
	// returns the updated vendor. An unknown id yields ErrNotFound and no write.
	AppendProduct(ctx context.Context, vendorID string, product models.Product) (*models.Vendor, error)
}
