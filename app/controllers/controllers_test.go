package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matsci-ai/matsci/app/controllers"
	"github.com/matsci-ai/matsci/app/models"
	"github.com/matsci-ai/matsci/app/repository"
	"github.com/matsci-ai/matsci/internal/pkg/apperror"
	"github.com/matsci-ai/matsci/internal/pkg/payment"
	"github.com/matsci-ai/matsci/internal/pkg/prediction"
	"github.com/matsci-ai/matsci/internal/pkg/router"
	"github.com/matsci-ai/matsci/internal/pkg/schema"
	"github.com/matsci-ai/matsci/internal/pkg/statistics"
)

type alwaysVerifier struct{ result bool }

func (v alwaysVerifier) Verify(_ *models.PaymentTransaction) bool { return v.result }

// failingPredictor surfaces the same error from every operation.
type failingPredictor struct{ err error }

func (f failingPredictor) PredictComposition(_ context.Context, _ *schema.PropertySetInput) (*schema.CompositionPrediction, error) {
	return nil, f.err
}

func (f failingPredictor) PredictProperties(_ context.Context, _ *schema.CompositionInput) (*schema.PropertyPrediction, error) {
	return nil, f.err
}

func (f failingPredictor) PredictPlan(_ context.Context, _ *schema.PlanInput) (*schema.PlanPrediction, error) {
	return nil, f.err
}

func (f failingPredictor) Model() string { return "failing" }

// newTestApp wires a fresh in-memory platform with the offline
// prediction backend and a deterministic payment verifier.
func newTestApp(t *testing.T, verified bool) *fiber.App {
	t.Helper()

	repository.ResetFactory()
	repository.InitializeFactory(nil)
	repos := repository.GetGlobalRepositories()
	require.NoError(t, repository.Seed(repos))

	controllers.SetPredictionService(prediction.NewFallback())
	controllers.SetPaymentProcessor(payment.NewProcessor(repos, alwaysVerifier{result: verified}))

	app := fiber.New()
	router.InstallRouter(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}

func registerAndLogin(t *testing.T, app *fiber.App) (string, string) {
	t.Helper()

	_, body := doJSON(t, app, fiber.MethodPost, "/api/auth/register", "", fiber.Map{
		"username": "almaz",
		"email":    "almaz@example.com",
		"password": "secret123",
	})
	user := body["user"].(map[string]any)

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "almaz@example.com",
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return user["id"].(string), body["token"].(string)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	app := newTestApp(t, true)

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/auth/register", "", fiber.Map{
		"username": "almaz",
		"email":    "almaz@example.com",
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "free", user["subscriptionTier"])
	assert.NotContains(t, user, "password")

	resp, body = doJSON(t, app, fiber.MethodPost, "/api/auth/register", "", fiber.Map{
		"username": "almaz",
		"email":    "other@example.com",
		"password": "secret123",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "username already exists", body["error"])

	resp, body = doJSON(t, app, fiber.MethodPost, "/api/auth/register", "", fiber.Map{
		"username": "someoneelse",
		"email":    "almaz@example.com",
		"password": "secret123",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "email already exists", body["error"])
}

func TestLoginByEmail(t *testing.T) {
	app := newTestApp(t, true)
	registerAndLogin(t, app)

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "almaz@example.com",
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "almaz", user["username"])
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	app := newTestApp(t, true)
	registerAndLogin(t, app)

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "almaz@example.com",
		"password": "wrongpass",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	wrongPassword := body["error"]

	resp, body = doJSON(t, app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "nobody@example.com",
		"password": "wrongpass",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, wrongPassword, body["error"])
}

func TestMeRequiresSession(t *testing.T) {
	app := newTestApp(t, true)
	userID, token := registerAndLogin(t, app)

	resp, _ := doJSON(t, app, fiber.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, body := doJSON(t, app, fiber.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	user := body["user"].(map[string]any)
	assert.Equal(t, userID, user["id"])
	assert.NotNil(t, user["lastLogin"])
}

func TestPredictCompositionStoresRoundTrippableInput(t *testing.T) {
	app := newTestApp(t, true)

	properties := fiber.Map{
		"mechanicalProperties": fiber.Map{"tensileStrength": 850, "hardness": 320},
		"thermalProperties":    fiber.Map{"meltingPoint": 1450},
	}
	resp, body := doJSON(t, app, fiber.MethodPost, "/api/predict/composition", "", fiber.Map{
		"properties": properties,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	require.NotEmpty(t, body["id"])

	predictionBody := body["prediction"].(map[string]any)
	assert.NotEmpty(t, predictionBody["composition"])

	id := body["id"].(string)
	resp, body = doJSON(t, app, fiber.MethodGet, "/api/predictions/"+id, "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	stored := body["prediction"].(map[string]any)
	assert.Equal(t, "properties-to-composition", stored["predictionType"])
	assert.Equal(t, prediction.FallbackModel, stored["aiModel"])

	wantInput, err := json.Marshal(properties)
	require.NoError(t, err)
	gotInput, err := json.Marshal(stored["inputData"])
	require.NoError(t, err)
	assert.JSONEq(t, string(wantInput), string(gotInput))
}

func TestPredictPropertiesValidatesSum(t *testing.T) {
	app := newTestApp(t, true)

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/predict/properties", "", fiber.Map{
		"composition": fiber.Map{
			"elements": []fiber.Map{
				{"element": "Fe", "percentage": 60},
				{"element": "C", "percentage": 10},
			},
		},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	require.NotEmpty(t, body["fields"])

	resp, body = doJSON(t, app, fiber.MethodPost, "/api/predict/properties", "", fiber.Map{
		"composition": fiber.Map{
			"elements": []fiber.Map{{"element": "Fe", "percentage": 100}},
		},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := body["prediction"].(map[string]any)
	assert.NotNil(t, out["properties"])
}

func TestPredictPlanRequiresPurpose(t *testing.T) {
	app := newTestApp(t, true)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/predict/plan", "", fiber.Map{
		"promptData": fiber.Map{"purpose": "short"},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/predict/plan", "", fiber.Map{
		"promptData": fiber.Map{
			"purpose": "A lightweight structural material for low-cost housing frames",
		},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := body["prediction"].(map[string]any)
	assert.NotEmpty(t, out["materialName"])
}

func TestProviderFailureNeverLeaksCause(t *testing.T) {
	app := newTestApp(t, true)

	cases := []struct {
		name string
		err  error
	}{
		{"upstream", apperror.Wrap(apperror.KindUpstream, "provider call failed",
			errors.New("status 401 incorrect api key sk-secret"))},
		{"timeout", apperror.Wrap(apperror.KindUpstreamTimeout, "provider call timed out",
			context.DeadlineExceeded)},
		{"shape", apperror.Wrap(apperror.KindUpstreamShape, "provider returned malformed composition prediction",
			errors.New("unexpected end of JSON input"))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			controllers.SetPredictionService(failingPredictor{err: tc.err})
			t.Cleanup(func() { controllers.SetPredictionService(prediction.NewFallback()) })

			resp, body := doJSON(t, app, fiber.MethodPost, "/api/predict/composition", "", fiber.Map{
				"properties": fiber.Map{
					"mechanicalProperties": fiber.Map{"hardness": 200},
				},
			})
			require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "prediction failed", body["error"])

			raw, err := json.Marshal(body)
			require.NoError(t, err)
			assert.NotContains(t, string(raw), "sk-secret")
			assert.NotContains(t, string(raw), tc.err.Error())
		})
	}
}

func TestExportPrediction(t *testing.T) {
	app := newTestApp(t, true)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/export/prediction/missing", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	_, body := doJSON(t, app, fiber.MethodPost, "/api/predict/plan", "", fiber.Map{
		"promptData": fiber.Map{
			"purpose": "A heat resistant furnace lining for cement production kilns",
		},
	})
	id := body["id"].(string)

	resp, body = doJSON(t, app, fiber.MethodPost, "/api/export/prediction/"+id, "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t,
		fmt.Sprintf(`attachment; filename="material-prediction-%s.json"`, id),
		resp.Header.Get(fiber.HeaderContentDisposition))
	assert.Equal(t, controllers.PlatformName, body["platform"])
	assert.Equal(t, "prompt-to-plan", body["type"])
	assert.NotNil(t, body["results"])
	assert.NotEmpty(t, body["exportedAt"])
}

func TestEthiopianMaterials(t *testing.T) {
	app := newTestApp(t, true)

	resp, body := doJSON(t, app, fiber.MethodGet, "/api/ethiopian-materials", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	materials := body["materials"].([]any)
	require.Len(t, materials, 3)
	first := materials[0].(map[string]any)
	assert.Equal(t, "Ethiopian Gold", first["name"])

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/ethiopian-materials/missing", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/ethiopian-materials", "", fiber.Map{
		"name": "Afar Salt",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	_, token := registerAndLogin(t, app)
	resp, body = doJSON(t, app, fiber.MethodPost, "/api/ethiopian-materials", token, fiber.Map{
		"name":        "Afar Salt",
		"description": "Rock salt from the Danakil Depression",
		"composition": []fiber.Map{
			{"element": "NaCl", "percentage": 97},
			{"element": "Other", "percentage": 3},
		},
		"location":     "Afar Region",
		"availability": "Abundant",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	created := body["material"].(map[string]any)
	assert.NotEmpty(t, created["id"])
}

func TestSubscriptionAndPaymentFlow(t *testing.T) {
	app := newTestApp(t, true)
	userID, token := registerAndLogin(t, app)

	resp, body := doJSON(t, app, fiber.MethodGet, "/api/subscription-plans", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	plans := body["plans"].([]any)
	require.Len(t, plans, 3)

	professional := plans[1].(map[string]any)
	require.Equal(t, "Professional", professional["name"])
	assert.Equal(t, 650.0, professional["priceInBirr"])

	resp, body = doJSON(t, app, fiber.MethodPost, "/api/payments/initiate", token, fiber.Map{
		"planId":        professional["id"],
		"paymentMethod": "telebirr",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	tx := body["transaction"].(map[string]any)
	assert.Equal(t, "pending", tx["status"])
	assert.Equal(t, 650.0, tx["amount"])
	instructions := body["paymentInstructions"].(map[string]any)
	assert.Equal(t, "*127#", instructions["shortCode"])

	txID := tx["id"].(string)
	resp, body = doJSON(t, app, fiber.MethodPost, "/api/payments/verify/"+txID, token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	verified := body["transaction"].(map[string]any)
	assert.Equal(t, "completed", verified["status"])

	resp, body = doJSON(t, app, fiber.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	user := body["user"].(map[string]any)
	assert.Equal(t, userID, user["id"])
	assert.Equal(t, "professional", user["subscriptionTier"])
	assert.NotNil(t, user["subscriptionExpiry"])

	resp, body = doJSON(t, app, fiber.MethodGet, "/api/payments", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	transactions := body["transactions"].([]any)
	require.Len(t, transactions, 1)
}

func TestVerifyFailedPaymentKeepsFreeTier(t *testing.T) {
	app := newTestApp(t, false)
	_, token := registerAndLogin(t, app)

	_, body := doJSON(t, app, fiber.MethodGet, "/api/subscription-plans", "", nil)
	plans := body["plans"].([]any)
	basic := plans[0].(map[string]any)

	_, body = doJSON(t, app, fiber.MethodPost, "/api/payments/initiate", token, fiber.Map{
		"planId":        basic["id"],
		"paymentMethod": "cbe",
	})
	tx := body["transaction"].(map[string]any)

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/payments/verify/"+tx["id"].(string), token, nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	verified := body["transaction"].(map[string]any)
	assert.Equal(t, "failed", verified["status"])

	_, body = doJSON(t, app, fiber.MethodGet, "/api/auth/me", token, nil)
	user := body["user"].(map[string]any)
	assert.Equal(t, "free", user["subscriptionTier"])
}

func TestStatisticsEndpoint(t *testing.T) {
	statistics.Reset()
	app := newTestApp(t, true)

	_, body := doJSON(t, app, fiber.MethodPost, "/api/predict/plan", "", fiber.Map{
		"promptData": fiber.Map{
			"purpose": "A durable roofing sheet material for highland climates",
		},
	})
	require.NotEmpty(t, body["id"])

	resp, body := doJSON(t, app, fiber.MethodGet, "/api/statistics", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	stats := body["statistics"].(map[string]any)
	assert.Equal(t, 1.0, stats["totalPredictions"])
	assert.Equal(t, 3.0, stats["totalMaterials"])
	assert.Equal(t, 3.0, stats["totalPlans"])
	byType := stats["predictionsByType"].(map[string]any)
	assert.Equal(t, 1.0, byType["prompt-to-plan"])
}

func TestVerifyUnknownPayment(t *testing.T) {
	app := newTestApp(t, true)

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/payments/verify/missing", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}
