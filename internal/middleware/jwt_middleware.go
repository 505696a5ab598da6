package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"storefront/internal/services"
)

// VendorIDKey is the Fiber locals key holding the authenticated vendor id.
const VendorIDKey = "vendor_id"

// TokenVerifier resolves a session token to the vendor identity it carries.
type TokenVerifier interface {
	Verify(token string) (*services.VendorClaims, error)
}

// AuthRequired is a Fiber middleware to check for a valid JWT token.
func AuthRequired(verifier TokenVerifier, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := verifier.Verify(parts[1])
		if err != nil {
			logger.Debug("token rejected", zap.Error(err))
			message := "Invalid token"
			if errors.Is(err, services.ErrTokenExpired) {
				message = "Token expired"
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": message,
			})
		}

		c.Locals(VendorIDKey, claims.VendorID)
		return c.Next()
	}
}

// VendorID returns the vendor id stored by AuthRequired, or "".
func VendorID(c *fiber.Ctx) string {
	id, _ := c.Locals(VendorIDKey).(string)
	return id
}
