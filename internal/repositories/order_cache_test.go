package repositories_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// mapCache is an in-process stand-in for RedisCache.
type mapCache struct {
	mu      sync.Mutex
	orders  map[string]models.Order
	hits    int
	failGet error
}

func newMapCache() *mapCache {
	return &mapCache{orders: make(map[string]models.Order)}
}

func (c *mapCache) CacheOrder(_ context.Context, order *models.Order) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orders[order.ID] = *order
	return nil
}

func (c *mapCache) GetCachedOrder(_ context.Context, id string) (*models.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failGet != nil {
		return nil, c.failGet
	}
	order, ok := c.orders[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	c.hits++
	return &order, nil
}

// countingOrderRepository counts lookups reaching the primary store.
type countingOrderRepository struct {
	repositories.OrderRepository
	lookups int
}

func (r *countingOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	r.lookups++
	return r.OrderRepository.GetByID(ctx, id)
}

func TestCachedOrderRepository(t *testing.T) {
	ctx := context.Background()
	primary := &countingOrderRepository{OrderRepository: repositories.NewMemoryOrderRepository()}
	cache := newMapCache()
	repo := repositories.NewCachedOrderRepository(primary, cache, zap.NewNop())

	order := &models.Order{Name: "A", Status: models.OrderStatusPending, TotalAmount: 20}
	require.NoError(t, repo.Create(ctx, order))

	// Served from cache after write-through.
	got, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, 0, primary.lookups)
	assert.Equal(t, 1, cache.hits)

	// A miss falls back to the primary store and fills the cache.
	other := &models.Order{Name: "B", Status: models.OrderStatusPending}
	require.NoError(t, primary.Create(ctx, other))
	_, err = repo.GetByID(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, primary.lookups)
	_, err = repo.GetByID(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, primary.lookups)

	_, err = repo.GetByID(ctx, "65f1c0ffee0000000000abcd")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCachedOrderRepository_CacheFailureFallsBack(t *testing.T) {
	ctx := context.Background()
	primary := repositories.NewMemoryOrderRepository()
	cache := newMapCache()
	cache.failGet = errors.New("redis: connection refused")
	repo := repositories.NewCachedOrderRepository(primary, cache, zap.NewNop())

	order := &models.Order{Name: "A", Status: models.OrderStatusPending}
	require.NoError(t, repo.Create(ctx, order))

	got, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}
