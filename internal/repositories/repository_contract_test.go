package repositories_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// runStoreContract exercises the behavior every backend must share.
func runStoreContract(t *testing.T, newStore func(t *testing.T) *repositories.Store) {
	t.Run("VendorCreateAndLookup", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		vendor := &models.Vendor{Name: "Asha", Email: "asha@example.com", Password: "hash", BusinessName: "Asha Crafts"}
		require.NoError(t, store.Vendors.Create(ctx, vendor))
		assert.Len(t, vendor.ID, 24)

		byEmail, err := store.Vendors.GetByEmail(ctx, "asha@example.com")
		require.NoError(t, err)
		assert.Equal(t, vendor.ID, byEmail.ID)
		assert.Equal(t, "hash", byEmail.Password)
		assert.Empty(t, byEmail.Products)

		byID, err := store.Vendors.GetByID(ctx, vendor.ID)
		require.NoError(t, err)
		assert.Equal(t, "Asha Crafts", byID.BusinessName)

		_, err = store.Vendors.GetByEmail(ctx, "missing@example.com")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
		_, err = store.Vendors.GetByID(ctx, "65f1c0ffee0000000000abcd")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("VendorDuplicateEmail", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		require.NoError(t, store.Vendors.Create(ctx, &models.Vendor{Email: "dup@example.com", Password: "h", BusinessName: "One"}))
		err := store.Vendors.Create(ctx, &models.Vendor{Email: "dup@example.com", Password: "h", BusinessName: "Two"})
		assert.ErrorIs(t, err, repositories.ErrDuplicateKey)

		vendors, err := store.Vendors.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, vendors, 1)
	})

	t.Run("AppendProduct", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		vendor := &models.Vendor{Email: "append@example.com", Password: "h", BusinessName: "Append"}
		require.NoError(t, store.Vendors.Create(ctx, vendor))

		for i := 0; i < 3; i++ {
			updated, err := store.Vendors.AppendProduct(ctx, vendor.ID, models.Product{
				Name: fmt.Sprintf("P%d", i), Price: 1.5 * float64(i), Stock: i, Image: "img",
			})
			require.NoError(t, err)
			require.Len(t, updated.Products, i+1)
			assert.Equal(t, fmt.Sprintf("P%d", i), updated.Products[i].Name)
		}

		stored, err := store.Vendors.GetByID(ctx, vendor.ID)
		require.NoError(t, err)
		require.Len(t, stored.Products, 3)
		assert.Equal(t, models.Product{Name: "P2", Price: 3, Stock: 2, Image: "img"}, stored.Products[2])

		_, err = store.Vendors.AppendProduct(ctx, "65f1c0ffee0000000000abcd", models.Product{Name: "Stray"})
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("GetAllCreationOrder", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		for i := 0; i < 4; i++ {
			require.NoError(t, store.Vendors.Create(ctx, &models.Vendor{
				Email: fmt.Sprintf("v%d@example.com", i), Password: "h", BusinessName: fmt.Sprintf("Shop %d", i),
			}))
		}
		vendors, err := store.Vendors.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, vendors, 4)
		for i, v := range vendors {
			assert.Equal(t, fmt.Sprintf("Shop %d", i), v.BusinessName)
		}
	})

	t.Run("ConcurrentAppends", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		vendor := &models.Vendor{Email: "busy@example.com", Password: "h", BusinessName: "Busy"}
		require.NoError(t, store.Vendors.Create(ctx, vendor))

		const n = 10
		var wg sync.WaitGroup
		errs := make(chan error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := store.Vendors.AppendProduct(ctx, vendor.ID, models.Product{Name: fmt.Sprintf("C%d", i)})
				errs <- err
			}(i)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		stored, err := store.Vendors.GetByID(ctx, vendor.ID)
		require.NoError(t, err)
		assert.Len(t, stored.Products, n)
	})

	t.Run("OrderCreateAndGet", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		order := &models.Order{
			Name:          "A",
			Address:       "B",
			Phone:         "1",
			PaymentMethod: "COD",
			CartItems:     []models.CartItem{{"sku": "x", "qty": 2.0}},
			TotalAmount:   20,
			Status:        models.OrderStatusPending,
			Date:          time.Now().UTC().Truncate(time.Millisecond),
		}
		require.NoError(t, store.Orders.Create(ctx, order))
		require.Len(t, order.ID, 24)

		got, err := store.Orders.GetByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, order.ID, got.ID)
		assert.Equal(t, models.OrderStatusPending, got.Status)
		assert.Equal(t, 20.0, got.TotalAmount)
		assert.True(t, order.Date.Equal(got.Date))
		require.Len(t, got.CartItems, 1)
		assert.Equal(t, "x", got.CartItems[0]["sku"])
		assert.EqualValues(t, 2, got.CartItems[0]["qty"])

		_, err = store.Orders.GetByID(ctx, "65f1c0ffee0000000000abcd")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("ContactCreate", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		msg := &models.ContactMessage{Name: "n", Email: "e@example.com", Subject: "s", Message: "m", CreatedAt: time.Now().UTC()}
		require.NoError(t, store.Contacts.Create(ctx, msg))
		assert.Len(t, msg.ID, 24)
	})

	t.Run("Ping", func(t *testing.T) {
		store := newStore(t)
		assert.NoError(t, store.Ping(context.Background()))
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreContract(t, func(t *testing.T) *repositories.Store {
		return repositories.NewMemoryStore()
	})
}

func TestMemoryVendorRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryVendorRepository()

	vendor := &models.Vendor{Email: "copy@example.com", Password: "h", BusinessName: "Copy"}
	require.NoError(t, repo.Create(ctx, vendor))
	updated, err := repo.AppendProduct(ctx, vendor.ID, models.Product{Name: "Original"})
	require.NoError(t, err)

	updated.Products[0].Name = "Mutated"

	stored, err := repo.GetByID(ctx, vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", stored.Products[0].Name)
}

func TestMemoryOrderRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryOrderRepository()

	order := &models.Order{
		Name:      "A",
		Status:    models.OrderStatusPending,
		CartItems: []models.CartItem{{"sku": "x", "qty": 2.0, "options": map[string]interface{}{"color": "red"}}},
	}
	require.NoError(t, repo.Create(ctx, order))

	// Mutating the caller's copy after Create must not reach the store.
	order.CartItems[0]["qty"] = 500.0

	tracked, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 2.0, tracked.CartItems[0]["qty"])

	tracked.CartItems[0]["qty"] = 999.0
	tracked.CartItems[0]["options"].(map[string]interface{})["color"] = "blue"
	tracked.CartItems = append(tracked.CartItems, models.CartItem{"sku": "extra"})

	again, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, again.CartItems, 1)
	assert.Equal(t, 2.0, again.CartItems[0]["qty"])
	assert.Equal(t, "red", again.CartItems[0]["options"].(map[string]interface{})["color"])
}
