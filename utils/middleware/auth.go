package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sfaraj/registrar/utils/auth"
	"github.com/sfaraj/registrar/utils/response"
)

// AuthMiddleware handles JWT authentication
type AuthMiddleware struct {
	jwtManager *auth.JWTManager
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtManager *auth.JWTManager) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
	}
}

// Required is middleware that requires a valid JWT token
func (m *AuthMiddleware) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := m.validate(c)
		if err != nil {
			return unauthorized(c, err)
		}

		c.Locals("net_id", claims.NetID)
		c.Locals("role", claims.Role)
		c.Locals("claims", claims)

		return c.Next()
	}
}

// RequireRegistrar requires a valid token with the registrar role.
// Catalog management and grade uploads are staff-only.
func (m *AuthMiddleware) RequireRegistrar() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := m.validate(c)
		if err != nil {
			return unauthorized(c, err)
		}

		if claims.Role != auth.RoleRegistrar {
			return response.Forbidden(c, "Registrar access required")
		}

		c.Locals("net_id", claims.NetID)
		c.Locals("role", claims.Role)
		c.Locals("claims", claims)

		return c.Next()
	}
}

// validate extracts and checks the bearer token.
func (m *AuthMiddleware) validate(c *fiber.Ctx) (*auth.Claims, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, auth.ErrInvalidToken
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, auth.ErrInvalidToken
	}

	return m.jwtManager.ValidateToken(parts[1])
}

func unauthorized(c *fiber.Ctx, err error) error {
	if err == auth.ErrExpiredToken {
		return response.Unauthorized(c, "Token has expired")
	}
	return response.Unauthorized(c, "Invalid token")
}

// GetNetID extracts the authenticated NetID from context
func GetNetID(c *fiber.Ctx) (string, bool) {
	netID := c.Locals("net_id")
	if netID == nil {
		return "", false
	}
	id, ok := netID.(string)
	return id, ok
}

// GetRole extracts the authenticated role from context
func GetRole(c *fiber.Ctx) (string, bool) {
	role := c.Locals("role")
	if role == nil {
		return "", false
	}
	r, ok := role.(string)
	return r, ok
}
