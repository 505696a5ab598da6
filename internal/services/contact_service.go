package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// ContactInput carries a contact form submission.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactService is the inbox for contact form messages.
type ContactService struct {
	repo      repositories.ContactRepository
	publisher EventPublisher
	logger    *zap.Logger
}

// NewContactService creates a new ContactService. publisher may be nil.
func NewContactService(repo repositories.ContactRepository, publisher EventPublisher, logger *zap.Logger) *ContactService {
	return &ContactService{repo: repo, publisher: publisher, logger: logger}
}

// Submit stores the message. The stored record is the acknowledgement.
func (s *ContactService) Submit(ctx context.Context, in ContactInput) (*models.ContactMessage, error) {
	msg := &models.ContactMessage{
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, storageError("submit contact message", err)
	}

	publishEvent(ctx, s.publisher, s.logger, EventContactSubmitted, msg.ID, map[string]string{
		"messageId": msg.ID,
		"email":     msg.Email,
		"subject":   msg.Subject,
	})
	return msg, nil
}
