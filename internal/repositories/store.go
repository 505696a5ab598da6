package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Store bundles the repositories of one backend together with its
// connection lifecycle.
type Store struct {
	Vendors  VendorRepository
	Orders   OrderRepository
	Contacts ContactRepository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// NewMemoryStore returns a store kept entirely in process memory.
func NewMemoryStore() *Store {
	return &Store{
		Vendors:  NewMemoryVendorRepository(),
		Orders:   NewMemoryOrderRepository(),
		Contacts: NewMemoryContactRepository(),
	}
}

// NewGORMStore returns a store backed by an already migrated *gorm.DB.
func NewGORMStore(db *gorm.DB) *Store {
	return &Store{
		Vendors:  NewGORMVendorRepository(db),
		Orders:   NewGORMOrderRepository(db),
		Contacts: NewGORMContactRepository(db),
		ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		close: func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
}

// NewMongoStore returns a store backed by MongoDB collections.
func NewMongoStore(m *MongoClient) *Store {
	return &Store{
		Vendors:  NewMongoVendorRepository(m),
		Orders:   NewMongoOrderRepository(m),
		Contacts: NewMongoContactRepository(m),
		ping:     m.Ping,
		close:    m.Close,
	}
}

// Ping checks the backing connection; memory stores are always reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close releases the backing connection.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	if err := s.close(ctx); err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}
	return nil
}
