package payment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matsci-ai/matsci/app/models"
	"github.com/matsci-ai/matsci/app/repository"
	"github.com/matsci-ai/matsci/internal/pkg/apperror"
)

type stubVerifier struct {
	result bool
	calls  int
}

func (s *stubVerifier) Verify(_ *models.PaymentTransaction) bool {
	s.calls++
	return s.result
}

func setupProcessor(t *testing.T, verifier Verifier) (*Processor, *repository.Repositories, *models.User, *models.SubscriptionPlan) {
	t.Helper()

	repos := repository.NewMemoryRepositories()
	require.NoError(t, repository.Seed(repos))

	user, err := models.CreateUser("abebe", "abebe@example.com", "secret123", "Abebe", "Bikila")
	require.NoError(t, err)
	require.NoError(t, repos.User.Create(user))

	plans, err := repos.Plan.GetActive()
	require.NoError(t, err)

	var professional *models.SubscriptionPlan
	for i := range plans {
		if plans[i].Name == "Professional" {
			professional = &plans[i]
		}
	}
	require.NotNil(t, professional)

	return NewProcessor(repos, verifier), repos, user, professional
}

func TestInitiateCreatesPendingTransaction(t *testing.T) {
	processor, _, user, plan := setupProcessor(t, &stubVerifier{result: true})

	tx, instructions, err := processor.Initiate(user.ID, plan.ID, models.PaymentMethodTelebirr)
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusPending, tx.Status)
	assert.Equal(t, 650.0, tx.Amount)
	assert.Equal(t, "ETB", tx.Currency)
	assert.Equal(t, models.PaymentMethodTelebirr, tx.PaymentMethod)
	assert.NotEmpty(t, tx.ID)
	assert.Nil(t, tx.CompletedAt)

	assert.Equal(t, "*127#", instructions.ShortCode)
	assert.NotEmpty(t, instructions.Steps)
	assert.NotEmpty(t, instructions.SupportPhone)
}

func TestInitiateRejectsUnknownInputs(t *testing.T) {
	processor, _, user, plan := setupProcessor(t, &stubVerifier{result: true})

	_, _, err := processor.Initiate(user.ID, plan.ID, "paypal")
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, _, err = processor.Initiate("no-such-user", plan.ID, models.PaymentMethodMpesa)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	_, _, err = processor.Initiate(user.ID, "no-such-plan", models.PaymentMethodMpesa)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestVerifySuccessElevatesSubscription(t *testing.T) {
	verifier := &stubVerifier{result: true}
	processor, repos, user, plan := setupProcessor(t, verifier)

	tx, _, err := processor.Initiate(user.ID, plan.ID, models.PaymentMethodCBE)
	require.NoError(t, err)

	verified, err := processor.Verify(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, verified.Status)
	require.NotNil(t, verified.CompletedAt)
	assert.NotEmpty(t, verified.TransactionID)

	elevated, err := repos.User.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TierProfessional, elevated.SubscriptionTier)
	require.NotNil(t, elevated.SubscriptionExpiry)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, plan.DurationInDays), *elevated.SubscriptionExpiry, time.Minute)
	assert.True(t, elevated.HasActiveSubscription())
}

func TestVerifyFailureLeavesTierUntouched(t *testing.T) {
	processor, repos, user, plan := setupProcessor(t, &stubVerifier{result: false})

	tx, _, err := processor.Initiate(user.ID, plan.ID, models.PaymentMethodAbyssinia)
	require.NoError(t, err)

	verified, err := processor.Verify(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, verified.Status)
	assert.Nil(t, verified.CompletedAt)

	unchanged, err := repos.User.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TierFree, unchanged.SubscriptionTier)
	assert.Nil(t, unchanged.SubscriptionExpiry)
}

func TestVerifyIsIdempotentOnTerminalStates(t *testing.T) {
	verifier := &stubVerifier{result: true}
	processor, _, user, plan := setupProcessor(t, verifier)

	tx, _, err := processor.Initiate(user.ID, plan.ID, models.PaymentMethodTelebirr)
	require.NoError(t, err)

	first, err := processor.Verify(tx.ID)
	require.NoError(t, err)
	require.Equal(t, models.PaymentStatusCompleted, first.Status)

	// A second verification must not re-run the provider check or flip
	// the recorded outcome.
	second, err := processor.Verify(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, second.Status)
	assert.Equal(t, first.CompletedAt.Unix(), second.CompletedAt.Unix())
	assert.Equal(t, 1, verifier.calls)
}

func TestVerifyUnknownTransaction(t *testing.T) {
	processor, _, _, _ := setupProcessor(t, &stubVerifier{result: true})

	_, err := processor.Verify("missing")
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
