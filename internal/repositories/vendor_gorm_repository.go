package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront/internal/models"
)

// GORMVendorRepository is a GORM implementation of VendorRepository.
// Products are stored as a JSON column on the vendor row.
type GORMVendorRepository struct {
	db *gorm.DB
}

// NewGORMVendorRepository creates a new instance of GORMVendorRepository.
func NewGORMVendorRepository(db *gorm.DB) *GORMVendorRepository {
	return &GORMVendorRepository{
		db: db,
	}
}

// Create creates a new vendor in the database.
func (r *GORMVendorRepository) Create(ctx context.Context, vendor *models.Vendor) error {
	if vendor.ID == "" {
		vendor.ID = newID()
	}
	if vendor.Products == nil {
		vendor.Products = []models.Product{}
	}
	if err := r.db.WithContext(ctx).Create(vendor).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to create vendor: %w", err)
	}
	return nil
}

// GetByEmail retrieves a vendor by email.
func (r *GORMVendorRepository) GetByEmail(ctx context.Context, email string) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.WithContext(ctx).First(&vendor, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vendor by email: %w", err)
	}
	return &vendor, nil
}

// GetByID retrieves a vendor by id.
func (r *GORMVendorRepository) GetByID(ctx context.Context, id string) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.WithContext(ctx).First(&vendor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vendor by ID %s: %w", id, err)
	}
	return &vendor, nil
}

// GetAll retrieves every vendor ordered by id. ObjectIDs lead with a
// seconds timestamp, so vendors created by different processes within the
// same second may list in either order.
func (r *GORMVendorRepository) GetAll(ctx context.Context) ([]models.Vendor, error) {
	var vendors []models.Vendor
	if err := r.db.WithContext(ctx).Order("id").Find(&vendors).Error; err != nil {
		return nil, fmt.Errorf("failed to get all vendors: %w", err)
	}
	return vendors, nil
}

// AppendProduct reads the vendor under a row lock and writes back the
// extended product list in one transaction.
func (r *GORMVendorRepository) AppendProduct(ctx context.Context, vendorID string, product models.Product) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&vendor, "id = ?", vendorID).Error; err != nil {
			return err
		}
		vendor.Products = append(vendor.Products, product)
		return tx.Save(&vendor).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to append product to vendor %s: %w", vendorID, err)
	}
	return &vendor, nil
}
