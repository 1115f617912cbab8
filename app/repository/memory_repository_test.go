package repository

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matsci-ai/matsci/app/models"
)

func TestMemoryUserRepository(t *testing.T) {
	t.Parallel()

	repos := NewMemoryRepositories()

	user, err := models.CreateUser("abebe", "abebe@example.com", "secret123", "", "")
	require.NoError(t, err)
	require.NoError(t, repos.User.Create(user))
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.TierFree, user.SubscriptionTier)

	byID, err := repos.User.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "abebe", byID.Username)

	byName, err := repos.User.GetByUsername("abebe")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byEmail, err := repos.User.GetByEmail("abebe@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repos.User.GetByUsername("nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	// Mutating the returned copy must not leak into the store.
	byID.Username = "changed"
	again, err := repos.User.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "abebe", again.Username)

	byID.Username = "abebe"
	now := time.Now()
	byID.LastLogin = &now
	require.NoError(t, repos.User.Update(byID))
	stamped, err := repos.User.GetByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, stamped.LastLogin)

	missing := *user
	missing.ID = "no-such-id"
	assert.ErrorIs(t, repos.User.Update(&missing), ErrNotFound)
}

func TestMemoryPredictionRepositoryOrderingAndFilter(t *testing.T) {
	t.Parallel()

	repos := NewMemoryRepositories()

	for i, userID := range []string{"u1", "u2", "u1"} {
		p := &models.MaterialPrediction{
			UserID:         userID,
			PredictionType: models.PredictionTypeProperties,
			InputData:      json.RawMessage(`{"elements":[{"element":"Fe","percentage":100}]}`),
			OutputData:     json.RawMessage(`{"confidence":50}`),
			CreatedAt:      time.Now().Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, repos.Prediction.Create(p))
	}

	all, err := repos.Prediction.List("")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].CreatedAt.After(all[2].CreatedAt))

	mine, err := repos.Prediction.List("u1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	_, err = repos.Prediction.GetByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryPaymentRepositoryDefaults(t *testing.T) {
	t.Parallel()

	repos := NewMemoryRepositories()

	tx := &models.PaymentTransaction{UserID: "u1", PlanID: "p1", Amount: 250, PaymentMethod: models.PaymentMethodTelebirr}
	require.NoError(t, repos.Payment.Create(tx))
	assert.Equal(t, models.PaymentStatusPending, tx.Status)
	assert.Equal(t, models.DefaultCurrency, tx.Currency)

	tx.Status = models.PaymentStatusCompleted
	require.NoError(t, repos.Payment.Update(tx))
	stored, err := repos.Payment.GetByID(tx.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.CompletedAt)

	list, err := repos.Payment.ListByUser("u1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSeedIsIdempotent(t *testing.T) {
	t.Parallel()

	repos := NewMemoryRepositories()
	require.NoError(t, Seed(repos))
	require.NoError(t, Seed(repos))

	plans, err := repos.Plan.GetActive()
	require.NoError(t, err)
	assert.Len(t, plans, 3)
	assert.Equal(t, "Basic", plans[0].Name)
	assert.Equal(t, 250.0, plans[0].PriceInBirr)

	materials, err := repos.Material.GetAll()
	require.NoError(t, err)
	assert.Len(t, materials, 3)
}
