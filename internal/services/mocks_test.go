package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"
)

var (
	_ repositories.VendorRepository = (*MockVendorRepository)(nil)
	_ repositories.OrderRepository  = (*MockOrderRepository)(nil)
	_ services.EventPublisher       = (*MockPublisher)(nil)
)

// MockVendorRepository is a mock implementation of repositories.VendorRepository
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) Create(ctx context.Context, vendor *models.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) GetByEmail(ctx context.Context, email string) (*models.Vendor, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vendor), args.Error(1)
}

func (m *MockVendorRepository) GetByID(ctx context.Context, id string) (*models.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vendor), args.Error(1)
}

func (m *MockVendorRepository) GetAll(ctx context.Context) ([]models.Vendor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Vendor), args.Error(1)
}

func (m *MockVendorRepository) AppendProduct(ctx context.Context, vendorID string, product models.Product) (*models.Vendor, error) {
	args := m.Called(ctx, vendorID, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vendor), args.Error(1)
}

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

// MockPublisher records published events.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey, key string, body []byte) error {
	args := m.Called(ctx, routingKey, key, body)
	return args.Error(0)
}
