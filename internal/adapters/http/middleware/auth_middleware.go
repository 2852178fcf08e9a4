package middleware

import (
	"strings"

	"chapa-dashboard/internal/config"
	"chapa-dashboard/internal/core/access"
	"chapa-dashboard/internal/core/domain"
	"chapa-dashboard/internal/pkg/jwt"
	"chapa-dashboard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware creates authentication middleware
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		// 1. Try to get token from cookie first
		accessToken = c.Cookies("access_token")

		// 2. If not in cookie, try Authorization header
		if accessToken == "" {
			authHeader := c.Get("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				accessToken = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		// 3. No token found
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		// 4. Validate token
		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		// 5. Set user info in context
		c.Locals("userID", claims.UserID)
		c.Locals("email", claims.Email)
		c.Locals("role", domain.Role(claims.Role))
		c.Locals("sessionID", claims.SessionID)

		return c.Next()
	}
}

// RoleMiddleware creates role-based authorization middleware
func RoleMiddleware(allowedRoles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(domain.Role)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		// Check if user's role is in allowed roles
		for _, allowedRole := range allowedRoles {
			if role == allowedRole {
				return c.Next()
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// SuperAdminOnly middleware allows only the super_admin role
func SuperAdminOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleSuperAdmin)
}

// PageAccess gates an API group behind the permission table entry of the
// page it backs. Handlers behind it re-check on their own, so the table is
// consulted both at navigation time and at render time.
func PageAccess(page access.Page) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(domain.Role)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		if !access.HasPageAccess(role, page) {
			return response.Forbidden(c, "You don't have permission to access this resource")
		}

		return c.Next()
	}
}

// RoleFromContext returns the authenticated role set by AuthMiddleware
func RoleFromContext(c *fiber.Ctx) (domain.Role, bool) {
	role, ok := c.Locals("role").(domain.Role)
	return role, ok
}
