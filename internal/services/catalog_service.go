package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// CatalogService manages the products embedded in each vendor.
type CatalogService struct {
	repo   repositories.VendorRepository
	logger *zap.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.VendorRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		repo:   repo,
		logger: logger,
	}
}

// AddProduct appends product to the vendor's catalog and returns the
// updated vendor. Ids that cannot exist are rejected without a store call.
func (s *CatalogService) AddProduct(ctx context.Context, vendorID string, product models.Product) (*models.Vendor, error) {
	if !primitive.IsValidObjectID(vendorID) {
		return nil, ErrNotFound
	}

	vendor, err := s.repo.AppendProduct(ctx, vendorID, product)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageError("add product", err)
	}

	s.logger.Info("product added",
		zap.String("vendor_id", vendorID),
		zap.String("product", product.Name),
		zap.Int("position", len(vendor.Products)-1))
	return vendor, nil
}

// ListAllProducts flattens every catalog, vendor by vendor, annotating each
// product with its owner.
func (s *CatalogService) ListAllProducts(ctx context.Context) ([]models.ProductListing, error) {
	vendors, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, storageError("list products", err)
	}

	listings := make([]models.ProductListing, 0)
	for _, v := range vendors {
		for _, p := range v.Products {
			listings = append(listings, models.ProductListing{
				Product:  p,
				Vendor:   v.BusinessName,
				VendorID: v.ID,
			})
		}
	}
	return listings, nil
}
