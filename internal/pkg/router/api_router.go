package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/matsci-ai/matsci/app/controllers"
	"github.com/matsci-ai/matsci/internal/pkg/constants"
	"github.com/matsci-ai/matsci/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group(constants.APIRoute, limiter.New(limiter.Config{Max: 60}))

	// Prediction pipeline
	api.Post(constants.PredictCompositionRoute, controllers.HandlePredictComposition)
	api.Post(constants.PredictPropertiesRoute, controllers.HandlePredictProperties)
	api.Post(constants.PredictPlanRoute, controllers.HandlePredictPlan)
	api.Get(constants.PredictionsRoute, controllers.HandleListPredictions)
	api.Get(constants.PredictionsRoute+"/:id", controllers.HandleGetPrediction)
	api.Post(constants.ExportPredictionRoute, controllers.HandleExportPrediction)

	// Ethiopian materials database
	api.Get(constants.MaterialsRoute, controllers.HandleListMaterials)
	api.Get(constants.MaterialsRoute+"/:id", controllers.HandleGetMaterial)
	api.Post(constants.MaterialsRoute, middleware.RequireAuth, controllers.HandleCreateMaterial)

	// Accounts and sessions
	api.Post(constants.RegisterRoute, controllers.HandleRegister)
	api.Post(constants.LoginRoute, controllers.HandleLogin)
	api.Get(constants.MeRoute, middleware.RequireAuth, controllers.HandleMe)

	// Subscriptions and payments
	api.Get(constants.PlansRoute, controllers.HandleListPlans)
	api.Post(constants.InitiatePaymentRoute, controllers.HandleInitiatePayment)
	api.Post(constants.VerifyPaymentRoute, controllers.HandleVerifyPayment)
	api.Get(constants.PaymentsRoute, controllers.HandleListPayments)

	// Platform overview
	api.Get(constants.StatisticsRoute, controllers.HandleStatistics)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
