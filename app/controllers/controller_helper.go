package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/matsci-ai/matsci/internal/pkg/apperror"
	"github.com/matsci-ai/matsci/pkg/logger"
)

// respondError renders any error as the JSON failure envelope, mapping
// the error kind to an HTTP status. Internal details are logged, not
// leaked to the client.
func respondError(c *fiber.Ctx, err error) error {
	kind := apperror.KindOf(err)
	status := apperror.Status(kind)

	// Any 5xx keeps its real cause server-side: provider errors can carry
	// credential or rate-limit detail that must not reach the client.
	message := err.Error()
	if status >= fiber.StatusInternalServerError {
		logger.Get().Errorw("request failed", "path", c.Path(), "error", err)
		switch kind {
		case apperror.KindUpstream, apperror.KindUpstreamTimeout, apperror.KindUpstreamShape:
			message = "prediction failed"
		default:
			message = "internal server error"
		}
	}

	body := fiber.Map{
		"success": false,
		"error":   message,
	}
	var appErr *apperror.Error
	if errors.As(err, &appErr) && len(appErr.Fields) > 0 {
		body["fields"] = appErr.Fields
	}
	return c.Status(status).JSON(body)
}

// respond renders the JSON success envelope with extra payload fields.
func respond(c *fiber.Ctx, payload fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	return c.JSON(body)
}
