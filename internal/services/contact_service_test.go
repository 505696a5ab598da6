package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"
)

type failingContactRepository struct{ err error }

func (r failingContactRepository) Create(context.Context, *models.ContactMessage) error {
	return r.err
}

func TestContactService_Submit(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryContactRepository()
	publisher := new(MockPublisher)
	service := services.NewContactService(repo, publisher, zap.NewNop())

	publisher.On("Publish", ctx, services.EventContactSubmitted, mock.AnythingOfType("string"), mock.Anything).Return(nil).Once()

	ack, err := service.Submit(ctx, services.ContactInput{
		Name:    "Ravi",
		Email:   "ravi@example.com",
		Subject: "Bulk order",
		Message: "Do you ship abroad?",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, ack.ID)
	assert.False(t, ack.CreatedAt.IsZero())

	stored := repo.Messages()
	require.Len(t, stored, 1)
	assert.Equal(t, "Bulk order", stored[0].Subject)
	assert.Equal(t, ack.ID, stored[0].ID)
	publisher.AssertExpectations(t)
}

func TestContactService_SubmitStorageFailure(t *testing.T) {
	dbErr := errors.New("disk full")
	service := services.NewContactService(failingContactRepository{err: dbErr}, nil, zap.NewNop())

	_, err := service.Submit(context.Background(), services.ContactInput{Name: "x", Email: "x@example.com", Subject: "s", Message: "m"})
	var storageErr *services.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "submit contact message", storageErr.Op)
	assert.ErrorIs(t, err, dbErr)
}
