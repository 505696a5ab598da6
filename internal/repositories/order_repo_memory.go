package repositories

import (
	"context"
	"sync"

	"storefront/internal/models"
)

// MemoryOrderRepository is an in-memory implementation of OrderRepository.
type MemoryOrderRepository struct {
	orders map[string]models.Order
	mu     sync.RWMutex
}

// NewMemoryOrderRepository creates a new instance of MemoryOrderRepository.
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		orders: make(map[string]models.Order),
	}
}

// GetByID returns an order by its ID.
func (r *MemoryOrderRepository) GetByID(_ context.Context, id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	order = cloneOrder(order)
	return &order, nil
}

// Create adds a new order.
func (r *MemoryOrderRepository) Create(_ context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = newID()
	}
	r.orders[order.ID] = cloneOrder(*order)
	return nil
}

// MemoryContactRepository collects contact messages in memory.
type MemoryContactRepository struct {
	messages []models.ContactMessage
	mu       sync.Mutex
}

// NewMemoryContactRepository creates an empty MemoryContactRepository.
func NewMemoryContactRepository() *MemoryContactRepository {
	return &MemoryContactRepository{}
}

// Create appends a contact message.
func (r *MemoryContactRepository) Create(_ context.Context, msg *models.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if msg.ID == "" {
		msg.ID = newID()
	}
	r.messages = append(r.messages, *msg)
	return nil
}

// Messages returns a snapshot of the stored messages.
func (r *MemoryContactRepository) Messages() []models.ContactMessage {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.ContactMessage, len(r.messages))
	copy(out, r.messages)
	return out
}
