package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/matsci-ai/matsci/app/repository"
	"github.com/matsci-ai/matsci/internal/pkg/statistics"
)

// HandleStatistics is GET /api/statistics.
func HandleStatistics(c *fiber.Ctx) error {
	data := statistics.Get(repository.GetGlobalRepositories())
	return respond(c, fiber.Map{"statistics": data})
}
