package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matsci-ai/matsci/app/models"
)

// The in-memory backend keeps every collection in a UUID-keyed map behind
// its own RWMutex. It is the default when no database is configured and
// the fixture backend for tests. Values are copied on the way in and out
// so callers never share memory with the store.

type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[string]models.User)}
}

func (r *memoryUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.SubscriptionTier == "" {
		user.SubscriptionTier = models.TierFree
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) GetByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (r *memoryUserRepository) GetByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepository) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return ErrNotFound
	}
	r.users[user.ID] = *user
	return nil
}

type memoryPlanRepository struct {
	mu    sync.RWMutex
	plans map[string]models.SubscriptionPlan
}

func newMemoryPlanRepository() *memoryPlanRepository {
	return &memoryPlanRepository{plans: make(map[string]models.SubscriptionPlan)}
}

func (r *memoryPlanRepository) Create(plan *models.SubscriptionPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	r.plans[plan.ID] = *plan
	return nil
}

func (r *memoryPlanRepository) GetActive() ([]models.SubscriptionPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	plans := make([]models.SubscriptionPlan, 0, len(r.plans))
	for _, plan := range r.plans {
		if plan.IsActive {
			plans = append(plans, plan)
		}
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].PriceInBirr < plans[j].PriceInBirr })
	return plans, nil
}

func (r *memoryPlanRepository) GetByID(id string) (*models.SubscriptionPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	plan, ok := r.plans[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &plan, nil
}

func (r *memoryPlanRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.plans)), nil
}

type memoryPaymentRepository struct {
	mu           sync.RWMutex
	transactions map[string]models.PaymentTransaction
}

func newMemoryPaymentRepository() *memoryPaymentRepository {
	return &memoryPaymentRepository{transactions: make(map[string]models.PaymentTransaction)}
}

func (r *memoryPaymentRepository) Create(tx *models.PaymentTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if tx.Status == "" {
		tx.Status = models.PaymentStatusPending
	}
	if tx.Currency == "" {
		tx.Currency = models.DefaultCurrency
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}
	r.transactions[tx.ID] = *tx
	return nil
}

func (r *memoryPaymentRepository) GetByID(id string) (*models.PaymentTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tx, ok := r.transactions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &tx, nil
}

func (r *memoryPaymentRepository) ListByUser(userID string) ([]models.PaymentTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	txs := make([]models.PaymentTransaction, 0)
	for _, tx := range r.transactions {
		if tx.UserID == userID {
			txs = append(txs, tx)
		}
	}
	sort.Slice(txs, func(i, j int) bool { return txs[i].CreatedAt.After(txs[j].CreatedAt) })
	return txs, nil
}

func (r *memoryPaymentRepository) Update(tx *models.PaymentTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.transactions[tx.ID]; !ok {
		return ErrNotFound
	}
	if tx.Status == models.PaymentStatusCompleted && tx.CompletedAt == nil {
		now := time.Now()
		tx.CompletedAt = &now
	}
	r.transactions[tx.ID] = *tx
	return nil
}

type memoryPredictionRepository struct {
	mu          sync.RWMutex
	predictions map[string]models.MaterialPrediction
}

func newMemoryPredictionRepository() *memoryPredictionRepository {
	return &memoryPredictionRepository{predictions: make(map[string]models.MaterialPrediction)}
}

func (r *memoryPredictionRepository) Create(prediction *models.MaterialPrediction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prediction.ID == "" {
		prediction.ID = uuid.NewString()
	}
	if prediction.CreatedAt.IsZero() {
		prediction.CreatedAt = time.Now()
	}
	r.predictions[prediction.ID] = *prediction
	return nil
}

func (r *memoryPredictionRepository) GetByID(id string) (*models.MaterialPrediction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	prediction, ok := r.predictions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &prediction, nil
}

func (r *memoryPredictionRepository) List(userID string) ([]models.MaterialPrediction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	predictions := make([]models.MaterialPrediction, 0)
	for _, prediction := range r.predictions {
		if userID == "" || prediction.UserID == userID {
			predictions = append(predictions, prediction)
		}
	}
	sort.Slice(predictions, func(i, j int) bool {
		return predictions[i].CreatedAt.After(predictions[j].CreatedAt)
	})
	return predictions, nil
}

type memoryMaterialRepository struct {
	mu        sync.RWMutex
	materials map[string]models.EthiopianMaterial
}

func newMemoryMaterialRepository() *memoryMaterialRepository {
	return &memoryMaterialRepository{materials: make(map[string]models.EthiopianMaterial)}
}

func (r *memoryMaterialRepository) Create(material *models.EthiopianMaterial) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if material.ID == "" {
		material.ID = uuid.NewString()
	}
	r.materials[material.ID] = *material
	return nil
}

func (r *memoryMaterialRepository) GetAll() ([]models.EthiopianMaterial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	materials := make([]models.EthiopianMaterial, 0, len(r.materials))
	for _, material := range r.materials {
		materials = append(materials, material)
	}
	sort.Slice(materials, func(i, j int) bool { return materials[i].Name < materials[j].Name })
	return materials, nil
}

func (r *memoryMaterialRepository) GetByID(id string) (*models.EthiopianMaterial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	material, ok := r.materials[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &material, nil
}

func (r *memoryMaterialRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.materials)), nil
}
