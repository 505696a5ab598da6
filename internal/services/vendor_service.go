package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// RegisterInput carries the fields of a vendor registration.
type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	BusinessName string
}

// VendorService is the credential store: it owns vendor identities and
// their hashed secrets.
type VendorService struct {
	repo      repositories.VendorRepository
	hasher    PasswordHasher
	publisher EventPublisher
	logger    *zap.Logger
}

// NewVendorService creates a new VendorService. publisher may be nil.
func NewVendorService(repo repositories.VendorRepository, hasher PasswordHasher, publisher EventPublisher, logger *zap.Logger) *VendorService {
	return &VendorService{
		repo:      repo,
		hasher:    hasher,
		publisher: publisher,
		logger:    logger,
	}
}

// Register stores a new vendor with a hashed password and an empty catalog.
// The unique email index turns a concurrent duplicate into ErrDuplicateEmail too.
func (s *VendorService) Register(ctx context.Context, in RegisterInput) (*models.Vendor, error) {
	existing, err := s.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	vendor := &models.Vendor{
		Name:         in.Name,
		Email:        in.Email,
		Password:     hashed,
		BusinessName: in.BusinessName,
		Products:     []models.Product{},
	}
	if err := s.repo.Create(ctx, vendor); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, storageError("register vendor", err)
	}

	s.logger.Info("vendor registered", zap.String("vendor_id", vendor.ID))
	publishEvent(ctx, s.publisher, s.logger, EventVendorRegistered, vendor.ID, map[string]string{
		"vendorId":     vendor.ID,
		"email":        vendor.Email,
		"businessName": vendor.BusinessName,
	})
	return vendor, nil
}

// FindByEmail returns the vendor with exactly this email, or nil when absent.
func (s *VendorService) FindByEmail(ctx context.Context, email string) (*models.Vendor, error) {
	vendor, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, storageError("find vendor by email", err)
	}
	return vendor, nil
}

// VerifyCredentials returns the vendor when rawPassword matches its stored hash.
func (s *VendorService) VerifyCredentials(ctx context.Context, email, rawPassword string) (*models.Vendor, error) {
	vendor, err := s.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, ErrNotFound
	}
	if !s.hasher.Compare(vendor.Password, rawPassword) {
		return nil, ErrInvalidCredentials
	}
	return vendor, nil
}
