package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"storefront/internal/models"
)

// OrderCache is the subset of RedisCache used by CachedOrderRepository.
type OrderCache interface {
	CacheOrder(ctx context.Context, order *models.Order) error
	GetCachedOrder(ctx context.Context, id string) (*models.Order, error)
}

// CachedOrderRepository serves order lookups from a cache in front of the
// primary store. Cache failures are logged and never fail a request.
type CachedOrderRepository struct {
	next   OrderRepository
	cache  OrderCache
	logger *zap.Logger
}

func NewCachedOrderRepository(next OrderRepository, cache OrderCache, logger *zap.Logger) *CachedOrderRepository {
	return &CachedOrderRepository{next: next, cache: cache, logger: logger}
}

func (r *CachedOrderRepository) Create(ctx context.Context, order *models.Order) error {
	if err := r.next.Create(ctx, order); err != nil {
		return err
	}
	r.store(ctx, order)
	return nil
}

func (r *CachedOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	order, err := r.cache.GetCachedOrder(ctx, id)
	if err == nil {
		return order, nil
	}
	if !errors.Is(err, ErrNotFound) {
		r.logger.Warn("order cache read failed", zap.String("order_id", id), zap.Error(err))
	}

	order, err = r.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store(ctx, order)
	return order, nil
}

func (r *CachedOrderRepository) store(ctx context.Context, order *models.Order) {
	if err := r.cache.CacheOrder(ctx, order); err != nil {
		r.logger.Warn("order cache write failed", zap.String("order_id", order.ID), zap.Error(err))
	}
}
