package controllers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/matsci-ai/matsci/app/models"
	"github.com/matsci-ai/matsci/app/repository"
	"github.com/matsci-ai/matsci/internal/pkg/apperror"
	"github.com/matsci-ai/matsci/internal/pkg/prediction"
	"github.com/matsci-ai/matsci/internal/pkg/schema"
	"github.com/matsci-ai/matsci/internal/pkg/usercontext"
)

var predictor prediction.Service

// SetPredictionService installs the prediction backend. Called once from
// startup and from tests.
func SetPredictionService(s prediction.Service) {
	predictor = s
}

// predictRequest is the common envelope for the three prediction
// endpoints. Exactly one of the payload fields is set, matching the
// endpoint. The raw bytes are stored verbatim as the prediction's input.
type predictRequest struct {
	UserID      string          `json:"userId"`
	Properties  json.RawMessage `json:"properties"`
	Composition json.RawMessage `json:"composition"`
	PromptData  json.RawMessage `json:"promptData"`
}

// HandlePredictComposition is POST /api/predict/composition.
func HandlePredictComposition(c *fiber.Ctx) error {
	var req predictRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperror.New(apperror.KindValidation, "invalid request body"))
	}
	if len(req.Properties) == 0 {
		return respondError(c, apperror.Validation("invalid input", []apperror.FieldError{{
			Field: "properties", Message: "is required",
		}}))
	}

	var input schema.PropertySetInput
	if err := json.Unmarshal(req.Properties, &input); err != nil {
		return respondError(c, apperror.New(apperror.KindValidation, "invalid properties payload"))
	}
	if verr := input.Validate(); verr != nil {
		return respondError(c, verr)
	}

	out, err := predictor.PredictComposition(c.UserContext(), &input)
	if err != nil {
		return respondError(c, err)
	}

	id, err := storePrediction(c, req, models.PredictionTypeComposition, req.Properties, out, out.Confidence)
	if err != nil {
		return respondError(c, err)
	}

	return respond(c, fiber.Map{"prediction": out, "id": id})
}

// HandlePredictProperties is POST /api/predict/properties.
func HandlePredictProperties(c *fiber.Ctx) error {
	var req predictRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperror.New(apperror.KindValidation, "invalid request body"))
	}
	if len(req.Composition) == 0 {
		return respondError(c, apperror.Validation("invalid input", []apperror.FieldError{{
			Field: "composition", Message: "is required",
		}}))
	}

	var input schema.CompositionInput
	if err := json.Unmarshal(req.Composition, &input); err != nil {
		return respondError(c, apperror.New(apperror.KindValidation, "invalid composition payload"))
	}
	if verr := input.Validate(); verr != nil {
		return respondError(c, verr)
	}

	out, err := predictor.PredictProperties(c.UserContext(), &input)
	if err != nil {
		return respondError(c, err)
	}

	id, err := storePrediction(c, req, models.PredictionTypeProperties, req.Composition, out, out.Confidence)
	if err != nil {
		return respondError(c, err)
	}

	return respond(c, fiber.Map{"prediction": out, "id": id})
}

// HandlePredictPlan is POST /api/predict/plan.
func HandlePredictPlan(c *fiber.Ctx) error {
	var req predictRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperror.New(apperror.KindValidation, "invalid request body"))
	}
	if len(req.PromptData) == 0 {
		return respondError(c, apperror.Validation("invalid input", []apperror.FieldError{{
			Field: "promptData", Message: "is required",
		}}))
	}

	var input schema.PlanInput
	if err := json.Unmarshal(req.PromptData, &input); err != nil {
		return respondError(c, apperror.New(apperror.KindValidation, "invalid promptData payload"))
	}
	if verr := input.Validate(); verr != nil {
		return respondError(c, verr)
	}

	out, err := predictor.PredictPlan(c.UserContext(), &input)
	if err != nil {
		return respondError(c, err)
	}

	id, err := storePrediction(c, req, models.PredictionTypePlan, req.PromptData, out, out.Confidence)
	if err != nil {
		return respondError(c, err)
	}

	return respond(c, fiber.Map{"prediction": out, "id": id})
}

// storePrediction persists input bytes and the validated output under
// the caller's identity. Authenticated sessions override any userId sent
// in the body.
func storePrediction(c *fiber.Ctx, req predictRequest, predictionType string, input json.RawMessage, output any, confidence float64) (string, error) {
	userID := req.UserID
	if ctx := usercontext.GetUserContext(c); ctx.IsLoggedIn {
		userID = ctx.UserID
	}

	outputData, err := json.Marshal(output)
	if err != nil {
		return "", apperror.Wrap(apperror.KindInternal, "failed to encode prediction output", err)
	}

	record := &models.MaterialPrediction{
		UserID:         userID,
		PredictionType: predictionType,
		InputData:      input,
		OutputData:     outputData,
		Confidence:     &confidence,
		AIModel:        predictor.Model(),
	}
	if err := repository.GetGlobalFactory().GetPredictionRepository().Create(record); err != nil {
		return "", apperror.Wrap(apperror.KindInternal, "failed to store prediction", err)
	}
	return record.ID, nil
}
