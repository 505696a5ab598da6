package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront/internal/models"
	"storefront/internal/services"
)

const testJWTSecret = "test_jwt_secret"

// MockCredentialVerifier is a mock implementation of services.CredentialVerifier
type MockCredentialVerifier struct {
	mock.Mock
}

func (m *MockCredentialVerifier) VerifyCredentials(ctx context.Context, email, rawPassword string) (*models.Vendor, error) {
	args := m.Called(ctx, email, rawPassword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vendor), args.Error(1)
}

// fakeClock is a settable time source.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	verifier := new(MockCredentialVerifier)
	tokens := services.NewTokenManager(testJWTSecret, time.Hour, nil)
	authService := services.NewAuthService(verifier, tokens, zap.NewNop())

	vendor := &models.Vendor{ID: "65f1c0ffee0000000000abcd", Email: "v@example.com", BusinessName: "V Shop"}

	// Test successful login
	verifier.On("VerifyCredentials", ctx, "v@example.com", "password123").Return(vendor, nil).Once()
	token, got, err := authService.Login(ctx, "v@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, vendor, got)

	// The token is a standard HS256 JWT carrying the vendor id.
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, vendor.ID, claims["vendorId"])
	assert.Equal(t, "HS256", parsedToken.Header["alg"])

	identity, err := authService.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, vendor.ID, identity.VendorID)

	// Test invalid credentials (wrong password)
	verifier.On("VerifyCredentials", ctx, "v@example.com", "wrong").Return(nil, services.ErrInvalidCredentials).Once()
	_, _, err = authService.Login(ctx, "v@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	// Test vendor not found
	verifier.On("VerifyCredentials", ctx, "none@example.com", "password123").Return(nil, services.ErrNotFound).Once()
	_, _, err = authService.Login(ctx, "none@example.com", "password123")
	assert.ErrorIs(t, err, services.ErrNotFound)

	verifier.AssertExpectations(t)
}

func TestTokenManager_ExpiryWindow(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: issuedAt}
	tokens := services.NewTokenManager(testJWTSecret, time.Hour, clock.Now)

	token, expiresAt, err := tokens.Issue("65f1c0ffee0000000000abcd")
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(time.Hour), expiresAt)

	accepted := []time.Duration{0, time.Second, 30 * time.Minute, time.Hour - time.Second, time.Hour - time.Millisecond}
	for _, offset := range accepted {
		clock.now = issuedAt.Add(offset)
		claims, err := tokens.Verify(token)
		require.NoError(t, err, "offset %s", offset)
		assert.Equal(t, "65f1c0ffee0000000000abcd", claims.VendorID)
	}

	rejected := []time.Duration{time.Hour, time.Hour + time.Second, 24 * time.Hour}
	for _, offset := range rejected {
		clock.now = issuedAt.Add(offset)
		_, err := tokens.Verify(token)
		assert.ErrorIs(t, err, services.ErrTokenExpired, "offset %s", offset)
	}
}

func TestTokenManager_InvalidSignature(t *testing.T) {
	tokens := services.NewTokenManager(testJWTSecret, time.Hour, nil)

	// Malformed token
	_, err := tokens.Verify("invalid.token.string")
	assert.ErrorIs(t, err, services.ErrInvalidSignature)

	// Signed with another secret
	other := services.NewTokenManager("another_secret", time.Hour, nil)
	foreign, _, err := other.Issue("65f1c0ffee0000000000abcd")
	require.NoError(t, err)
	_, err = tokens.Verify(foreign)
	assert.ErrorIs(t, err, services.ErrInvalidSignature)

	// Unexpected algorithm
	hs512 := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"vendorId": "65f1c0ffee0000000000abcd",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	hs512String, err := hs512.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	_, err = tokens.Verify(hs512String)
	assert.ErrorIs(t, err, services.ErrInvalidSignature)

	// Correctly signed but without a vendor identity
	anonymous := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	anonymousString, err := anonymous.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	_, err = tokens.Verify(anonymousString)
	assert.ErrorIs(t, err, services.ErrInvalidSignature)
}
