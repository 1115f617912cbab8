package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/matsci-ai/matsci/app/repository"
	"github.com/matsci-ai/matsci/internal/pkg/apperror"
	"github.com/matsci-ai/matsci/internal/pkg/usercontext"
)

// PlatformName is stamped on every exported prediction document.
const PlatformName = "Mat-Sci-AI - Advanced Material Discovery Platform"

// HandleListPredictions is GET /api/predictions. An authenticated caller
// gets their own history; otherwise the optional userId query filters.
func HandleListPredictions(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if ctx := usercontext.GetUserContext(c); ctx.IsLoggedIn {
		userID = ctx.UserID
	}

	predictions, err := repository.GetGlobalFactory().GetPredictionRepository().List(userID)
	if err != nil {
		return respondError(c, apperror.Wrap(apperror.KindInternal, "failed to list predictions", err))
	}
	return respond(c, fiber.Map{"predictions": predictions})
}

// HandleGetPrediction is GET /api/predictions/:id.
func HandleGetPrediction(c *fiber.Ctx) error {
	prediction, err := repository.GetGlobalFactory().GetPredictionRepository().GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return respondError(c, apperror.NotFound("prediction"))
		}
		return respondError(c, apperror.Wrap(apperror.KindInternal, "failed to load prediction", err))
	}
	return respond(c, fiber.Map{"prediction": prediction})
}

// HandleExportPrediction is POST /api/export/prediction/:id. It returns
// a self-describing download with the stored input and output untouched.
func HandleExportPrediction(c *fiber.Ctx) error {
	prediction, err := repository.GetGlobalFactory().GetPredictionRepository().GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return respondError(c, apperror.NotFound("prediction"))
		}
		return respondError(c, apperror.Wrap(apperror.KindInternal, "failed to load prediction", err))
	}

	exportData := fiber.Map{
		"predictionId": prediction.ID,
		"type":         prediction.PredictionType,
		"inputData":    prediction.InputData,
		"results":      prediction.OutputData,
		"confidence":   prediction.Confidence,
		"aiModel":      prediction.AIModel,
		"generatedAt":  prediction.CreatedAt,
		"exportedAt":   time.Now().UTC().Format(time.RFC3339),
		"platform":     PlatformName,
	}

	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="material-prediction-%s.json"`, prediction.ID))
	return c.JSON(exportData)
}
