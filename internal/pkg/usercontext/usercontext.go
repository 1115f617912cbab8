package usercontext

import "github.com/gofiber/fiber/v2"

// Locals key shared between the auth middleware and controllers.
const Key = "USER_CONTEXT"

// UserContext represents the authenticated caller for a request.
type UserContext struct {
	UserID     string `json:"userId"`
	Username   string `json:"username"`
	Tier       string `json:"tier"`
	IsLoggedIn bool   `json:"isLoggedIn"`
}

// GetUserContext retrieves the user context from fiber context.
// Returns an anonymous context if none is set.
func GetUserContext(c *fiber.Ctx) UserContext {
	if ctx := c.Locals(Key); ctx != nil {
		return ctx.(UserContext)
	}
	return UserContext{IsLoggedIn: false}
}

// IsLoggedIn checks if the current user is logged in.
func IsLoggedIn(c *fiber.Ctx) bool {
	return GetUserContext(c).IsLoggedIn
}

// GetUserID returns the current user's ID, or empty string if not logged in.
func GetUserID(c *fiber.Ctx) string {
	return GetUserContext(c).UserID
}
