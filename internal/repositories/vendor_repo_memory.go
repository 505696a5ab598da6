package repositories

import (
	"context"
	"sync"

	"storefront/internal/models"
)

// MemoryVendorRepository is an in-memory implementation of VendorRepository.
type MemoryVendorRepository struct {
	vendors map[string]models.Vendor
	byEmail map[string]string
	order   []string // ids in creation order
	mu      sync.RWMutex
}

// NewMemoryVendorRepository creates a new instance of MemoryVendorRepository.
func NewMemoryVendorRepository() *MemoryVendorRepository {
	return &MemoryVendorRepository{
		vendors: make(map[string]models.Vendor),
		byEmail: make(map[string]string),
	}
}

// Create adds a new vendor.
func (r *MemoryVendorRepository) Create(_ context.Context, vendor *models.Vendor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[vendor.Email]; taken {
		return ErrDuplicateKey
	}
	if vendor.ID == "" {
		vendor.ID = newID()
	}
	if vendor.Products == nil {
		vendor.Products = []models.Product{}
	}
	r.vendors[vendor.ID] = cloneVendor(*vendor)
	r.byEmail[vendor.Email] = vendor.ID
	r.order = append(r.order, vendor.ID)
	return nil
}

// GetByEmail returns a vendor by exact email match.
func (r *MemoryVendorRepository) GetByEmail(_ context.Context, email string) (*models.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	v := cloneVendor(r.vendors[id])
	return &v, nil
}

// GetByID returns a vendor by its id.
func (r *MemoryVendorRepository) GetByID(_ context.Context, id string) (*models.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.vendors[id]
	if !ok {
		return nil, ErrNotFound
	}
	v := cloneVendor(stored)
	return &v, nil
}

// GetAll returns all vendors in creation order.
func (r *MemoryVendorRepository) GetAll(_ context.Context) ([]models.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vendors := make([]models.Vendor, 0, len(r.order))
	for _, id := range r.order {
		vendors = append(vendors, cloneVendor(r.vendors[id]))
	}
	return vendors, nil
}

// AppendProduct adds a product to the end of the vendor's list.
func (r *MemoryVendorRepository) AppendProduct(_ context.Context, vendorID string, product models.Product) (*models.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.vendors[vendorID]
	if !ok {
		return nil, ErrNotFound
	}
	updated := cloneVendor(stored)
	updated.Products = append(updated.Products, product)
	r.vendors[vendorID] = updated

	v := cloneVendor(updated)
	return &v, nil
}
