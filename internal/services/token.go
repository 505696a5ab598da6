package services

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// VendorClaims is the payload of a vendor session token.
type VendorClaims struct {
	VendorID string `json:"vendorId"`
	jwt.StandardClaims
}

// TokenManager signs and verifies stateless HS256 session tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager creates a TokenManager. A nil now uses time.Now.
func NewTokenManager(secret string, ttl time.Duration, now func() time.Time) *TokenManager {
	if now == nil {
		now = time.Now
	}
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}
}

// Issue signs a token for vendorID valid for [issuedAt, issuedAt+ttl).
// Token timestamps have second precision, so issuance is truncated to the second.
func (m *TokenManager) Issue(vendorID string) (string, time.Time, error) {
	issuedAt := m.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(m.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, VendorClaims{
		VendorID: vendorID,
		StandardClaims: jwt.StandardClaims{
			Subject:   vendorID,
			IssuedAt:  issuedAt.Unix(),
			ExpiresAt: expiresAt.Unix(),
		},
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks the signature and expiry of tokenString. Expiry is evaluated
// against the manager's clock rather than the library's global one.
func (m *TokenManager) Verify(tokenString string) (*VendorClaims, error) {
	parser := &jwt.Parser{
		ValidMethods:         []string{jwt.SigningMethodHS256.Alg()},
		SkipClaimsValidation: true,
	}

	claims := &VendorClaims{}
	_, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	if claims.VendorID == "" || claims.ExpiresAt == 0 {
		return nil, fmt.Errorf("%w: missing vendor claims", ErrInvalidSignature)
	}
	if !m.now().Before(time.Unix(claims.ExpiresAt, 0)) {
		return nil, ErrTokenExpired
	}
	return claims, nil
}
