// Package payment simulates the Ethiopian mobile-money flow: initiate a
// pending transaction, then verify it and elevate the subscription in a
// single step.
package payment

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matsci-ai/matsci/app/models"
	"github.com/matsci-ai/matsci/app/repository"
	"github.com/matsci-ai/matsci/internal/pkg/apperror"
	"github.com/matsci-ai/matsci/pkg/logger"
)

// Verifier decides whether a pending transaction went through. The
// production implementation would call the provider; the simulated one
// flips a weighted coin.
type Verifier interface {
	Verify(tx *models.PaymentTransaction) bool
}

// successRate approximates real-world mobile-money completion.
const successRate = 0.9

type simulatedVerifier struct{}

// NewSimulatedVerifier returns a Verifier that succeeds about 90% of
// the time.
func NewSimulatedVerifier() Verifier {
	return simulatedVerifier{}
}

func (simulatedVerifier) Verify(_ *models.PaymentTransaction) bool {
	return rand.Float64() < successRate
}

// Processor drives the payment lifecycle against the repositories.
type Processor struct {
	payments repository.PaymentRepository
	plans    repository.PlanRepository
	users    repository.UserRepository
	verifier Verifier

	// mu serializes verification so that checking the provider and
	// elevating the subscription happen as one step per transaction.
	mu sync.Mutex
}

func NewProcessor(repos *repository.Repositories, verifier Verifier) *Processor {
	return &Processor{
		payments: repos.Payment,
		plans:    repos.Plan,
		users:    repos.User,
		verifier: verifier,
	}
}

// Initiate creates a pending transaction for the given plan and returns
// it with the method-specific payment instructions.
func (p *Processor) Initiate(userID, planID, method string) (*models.PaymentTransaction, Instructions, error) {
	if !models.ValidPaymentMethod(method) {
		return nil, Instructions{}, apperror.Validation("invalid input", []apperror.FieldError{{
			Field:   "paymentMethod",
			Message: "must be one of telebirr, mpesa, cbe, abyssinia",
		}})
	}

	if _, err := p.users.GetByID(userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Instructions{}, apperror.NotFound("user")
		}
		return nil, Instructions{}, apperror.Wrap(apperror.KindInternal, "failed to load user", err)
	}

	plan, err := p.plans.GetByID(planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Instructions{}, apperror.NotFound("subscription plan")
		}
		return nil, Instructions{}, apperror.Wrap(apperror.KindInternal, "failed to load plan", err)
	}

	tx := &models.PaymentTransaction{
		UserID:        userID,
		PlanID:        plan.ID,
		Amount:        plan.PriceInBirr,
		Currency:      models.DefaultCurrency,
		PaymentMethod: method,
		Status:        models.PaymentStatusPending,
	}
	if err := p.payments.Create(tx); err != nil {
		return nil, Instructions{}, apperror.Wrap(apperror.KindInternal, "failed to create transaction", err)
	}

	logger.Get().Infow("payment initiated",
		"transactionId", tx.ID, "planId", plan.ID, "method", method, "amount", plan.PriceInBirr)

	return tx, InstructionsFor(method), nil
}

// Verify resolves a pending transaction. On success it marks the
// transaction completed and elevates the user's subscription tier and
// expiry in the same critical section. Terminal transactions are
// returned as-is, so repeated verification is idempotent.
func (p *Processor) Verify(transactionID string) (*models.PaymentTransaction, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	tx, err := p.payments.GetByID(transactionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("transaction")
		}
		return nil, apperror.Wrap(apperror.KindInternal, "failed to load transaction", err)
	}

	if tx.IsTerminal() {
		return tx, nil
	}

	if !p.verifier.Verify(tx) {
		tx.Status = models.PaymentStatusFailed
		if err := p.payments.Update(tx); err != nil {
			return nil, apperror.Wrap(apperror.KindInternal, "failed to update transaction", err)
		}
		logger.Get().Infow("payment failed verification", "transactionId", tx.ID)
		return tx, nil
	}

	plan, err := p.plans.GetByID(tx.PlanID)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "failed to load plan for completed payment", err)
	}
	user, err := p.users.GetByID(tx.UserID)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "failed to load user for completed payment", err)
	}

	tx.Status = models.PaymentStatusCompleted
	tx.TransactionID = "TXN-" + strings.ToUpper(uuid.NewString()[:8])
	if err := p.payments.Update(tx); err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "failed to update transaction", err)
	}

	expiry := time.Now().AddDate(0, 0, plan.DurationInDays)
	user.SubscriptionTier = plan.Tier()
	user.SubscriptionExpiry = &expiry
	if err := p.users.Update(user); err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "failed to elevate subscription", err)
	}

	logger.Get().Infow("payment completed",
		"transactionId", tx.ID, "userId", user.ID, "tier", user.SubscriptionTier, "expiry", expiry)

	return tx, nil
}
