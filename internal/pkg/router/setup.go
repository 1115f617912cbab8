package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/matsci-ai/matsci/internal/pkg/middleware"
)

type Router interface {
	InstallRouter(app *fiber.App)
}

func InstallRouter(app *fiber.App) {
	// The session middleware runs first so every API handler sees the
	// resolved user context.
	app.Use(middleware.SessionContext)

	setup(app, NewApiRouter())
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
