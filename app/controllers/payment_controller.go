package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/matsci-ai/matsci/app/models"
	"github.com/matsci-ai/matsci/app/repository"
	"github.com/matsci-ai/matsci/internal/pkg/apperror"
	"github.com/matsci-ai/matsci/internal/pkg/payment"
	"github.com/matsci-ai/matsci/internal/pkg/schema"
	"github.com/matsci-ai/matsci/internal/pkg/usercontext"
)

var processor *payment.Processor

// SetPaymentProcessor installs the payment backend. Called once from
// startup and from tests.
func SetPaymentProcessor(p *payment.Processor) {
	processor = p
}

type initiatePaymentRequest struct {
	UserID        string `json:"userId"`
	PlanID        string `json:"planId" validate:"required"`
	PaymentMethod string `json:"paymentMethod" validate:"required"`
}

// HandleListPlans is GET /api/subscription-plans.
func HandleListPlans(c *fiber.Ctx) error {
	plans, err := repository.GetGlobalFactory().GetPlanRepository().GetActive()
	if err != nil {
		return respondError(c, apperror.Wrap(apperror.KindInternal, "failed to list plans", err))
	}
	return respond(c, fiber.Map{"plans": plans})
}

// HandleInitiatePayment is POST /api/payments/initiate.
func HandleInitiatePayment(c *fiber.Ctx) error {
	var req initiatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperror.New(apperror.KindValidation, "invalid request body"))
	}
	if verr := schema.Validate(&req); verr != nil {
		return respondError(c, verr)
	}

	userID := req.UserID
	if ctx := usercontext.GetUserContext(c); ctx.IsLoggedIn {
		userID = ctx.UserID
	}

	tx, instructions, err := processor.Initiate(userID, req.PlanID, req.PaymentMethod)
	if err != nil {
		return respondError(c, err)
	}

	return respond(c, fiber.Map{
		"transaction":         tx,
		"paymentInstructions": instructions,
	})
}

// HandleVerifyPayment is POST /api/payments/verify/:transactionId.
// Verifying a terminal transaction returns its recorded outcome without
// re-running the provider check. A failed transaction is a 400 so the
// client offers a retry with a fresh initiation.
func HandleVerifyPayment(c *fiber.Ctx) error {
	tx, err := processor.Verify(c.Params("transactionId"))
	if err != nil {
		return respondError(c, err)
	}
	if tx.Status == models.PaymentStatusFailed {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":     false,
			"error":       "payment verification failed",
			"transaction": tx,
		})
	}
	return respond(c, fiber.Map{"transaction": tx})
}

// HandleListPayments is GET /api/payments. An authenticated caller gets
// their own transactions; otherwise the userId query selects.
func HandleListPayments(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if ctx := usercontext.GetUserContext(c); ctx.IsLoggedIn {
		userID = ctx.UserID
	}
	if userID == "" {
		return respondError(c, apperror.Validation("invalid input", []apperror.FieldError{{
			Field: "userId", Message: "is required",
		}}))
	}

	transactions, err := repository.GetGlobalFactory().GetPaymentRepository().ListByUser(userID)
	if err != nil {
		return respondError(c, apperror.Wrap(apperror.KindInternal, "failed to list transactions", err))
	}
	return respond(c, fiber.Map{"transactions": transactions})
}
