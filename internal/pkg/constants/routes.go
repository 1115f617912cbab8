package constants

// Static route constants
const (
	APIRoute                = "/api"
	PredictCompositionRoute = "/predict/composition"
	PredictPropertiesRoute  = "/predict/properties"
	PredictPlanRoute        = "/predict/plan"
	PredictionsRoute        = "/predictions"
	ExportPredictionRoute   = "/export/prediction/:id"
	MaterialsRoute          = "/ethiopian-materials"
	RegisterRoute           = "/auth/register"
	LoginRoute              = "/auth/login"
	MeRoute                 = "/auth/me"
	PlansRoute              = "/subscription-plans"
	InitiatePaymentRoute    = "/payments/initiate"
	VerifyPaymentRoute      = "/payments/verify/:transactionId"
	PaymentsRoute           = "/payments"
	StatisticsRoute         = "/statistics"
)
