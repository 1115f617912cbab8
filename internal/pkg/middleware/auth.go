package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/matsci-ai/matsci/app/repository"
	"github.com/matsci-ai/matsci/internal/pkg/token"
	"github.com/matsci-ai/matsci/internal/pkg/usercontext"
)

// SessionContext resolves the Authorization bearer token, loads the user
// and stores the user context in Locals. Requests without a valid token
// continue anonymously; protected routes reject them via RequireAuth.
func SessionContext(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return c.Next()
	}

	userID, verr := token.Verify(strings.TrimPrefix(header, "Bearer "))
	if verr != nil {
		return c.Next()
	}

	user, err := repository.GetGlobalFactory().GetUserRepository().GetByID(userID)
	if err != nil {
		return c.Next()
	}

	c.Locals(usercontext.Key, usercontext.UserContext{
		UserID:     user.ID,
		Username:   user.Username,
		Tier:       user.SubscriptionTier,
		IsLoggedIn: true,
	})
	return c.Next()
}

// RequireAuth ensures an authenticated caller and returns JSON 401
// otherwise.
func RequireAuth(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "authentication required",
		})
	}
	return c.Next()
}
