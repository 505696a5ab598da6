package services

import (
	"context"

	"go.uber.org/zap"

	"storefront/internal/models"
)

// CredentialVerifier checks a vendor's email and password.
type CredentialVerifier interface {
	VerifyCredentials(ctx context.Context, email, rawPassword string) (*models.Vendor, error)
}

// AuthService is the auth gateway: it exchanges credentials for session
// tokens and verifies them.
type AuthService struct {
	credentials CredentialVerifier
	tokens      *TokenManager
	logger      *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(credentials CredentialVerifier, tokens *TokenManager, logger *zap.Logger) *AuthService {
	return &AuthService{
		credentials: credentials,
		tokens:      tokens,
		logger:      logger,
	}
}

// Login verifies the credentials and issues a token carrying the vendor id.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, *models.Vendor, error) {
	vendor, err := s.credentials.VerifyCredentials(ctx, email, rawPassword)
	if err != nil {
		return "", nil, err
	}

	token, expiresAt, err := s.tokens.Issue(vendor.ID)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info("vendor logged in",
		zap.String("vendor_id", vendor.ID),
		zap.Time("expires_at", expiresAt))
	return token, vendor, nil
}

// Verify returns the identity carried by a valid, unexpired token.
func (s *AuthService) Verify(token string) (*VendorClaims, error) {
	return s.tokens.Verify(token)
}
