package middleware

import (
	"strings"

	"booklend/internal/adapters/persistence/models"
	"booklend/internal/adapters/persistence/repositories"
	"booklend/internal/config"
	"booklend/internal/pkg/jwt"
	"booklend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the auth middleware
const (
	LocalsUserID      = "userID"
	LocalsCurrentUser = "currentUser"
)

// AuthMiddleware verifies the bearer token and resolves the acting user.
// The resolved user (without the password hash) is attached to the
// request context; a token whose subject no longer exists is rejected
// the same way as a missing or invalid token.
func AuthMiddleware(userRepo repositories.UserRepository, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		authHeader := c.Get("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			accessToken = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if accessToken == "" {
			return response.Unauthorized(c, "Not authorized, no token")
		}

		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Not authorized, token failed")
		}

		user, err := userRepo.GetByID(c.Context(), claims.UserID)
		if err != nil {
			return response.Unauthorized(c, "Not authorized, token failed")
		}

		c.Locals(LocalsUserID, user.ID)
		c.Locals(LocalsCurrentUser, user.ToResponse())

		return c.Next()
	}
}

// CurrentUserID returns the acting user's ID set by AuthMiddleware
func CurrentUserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(LocalsUserID).(uint)
	return id, ok
}

// CurrentUser returns the acting user set by AuthMiddleware
func CurrentUser(c *fiber.Ctx) (*models.UserResponse, bool) {
	user, ok := c.Locals(LocalsCurrentUser).(*models.UserResponse)
	return user, ok
}
