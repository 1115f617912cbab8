package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/matsci-ai/matsci/app/models"
)

// ErrNotFound is returned by every Get* when the id is unknown. A miss is
// an expected outcome, not a failure.
var ErrNotFound = errors.New("record not found")

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
}

// PlanRepository defines read access to the static plan catalog.
type PlanRepository interface {
	Create(plan *models.SubscriptionPlan) error
	GetActive() ([]models.SubscriptionPlan, error)
	GetByID(id string) (*models.SubscriptionPlan, error)
	Count() (int64, error)
}

// PaymentRepository defines the interface for payment transactions.
// Update stamps CompletedAt the first time the status becomes completed.
type PaymentRepository interface {
	Create(tx *models.PaymentTransaction) error
	GetByID(id string) (*models.PaymentTransaction, error)
	ListByUser(userID string) ([]models.PaymentTransaction, error)
	Update(tx *models.PaymentTransaction) error
}

// PredictionRepository defines the interface for stored predictions.
// Predictions are immutable once created.
type PredictionRepository interface {
	Create(prediction *models.MaterialPrediction) error
	GetByID(id string) (*models.MaterialPrediction, error)
	List(userID string) ([]models.MaterialPrediction, error)
}

// MaterialRepository defines access to the Ethiopian materials database.
type MaterialRepository interface {
	Create(material *models.EthiopianMaterial) error
	GetAll() ([]models.EthiopianMaterial, error)
	GetByID(id string) (*models.EthiopianMaterial, error)
	Count() (int64, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User       UserRepository
	Plan       PlanRepository
	Payment    PaymentRepository
	Prediction PredictionRepository
	Material   MaterialRepository
}

// NewRepositories wires all repositories against the given database. A
// nil db selects the in-memory backend; a production deployment passes a
// gorm handle and gets the MySQL-backed implementations behind the same
// interfaces.
func NewRepositories(db *gorm.DB) *Repositories {
	if db == nil {
		return NewMemoryRepositories()
	}
	return &Repositories{
		User:       NewUserRepository(db),
		Plan:       NewPlanRepository(db),
		Payment:    NewPaymentRepository(db),
		Prediction: NewPredictionRepository(db),
		Material:   NewMaterialRepository(db),
	}
}

// NewMemoryRepositories builds the mutex-guarded in-memory backend.
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		User:       newMemoryUserRepository(),
		Plan:       newMemoryPlanRepository(),
		Payment:    newMemoryPaymentRepository(),
		Prediction: newMemoryPredictionRepository(),
		Material:   newMemoryMaterialRepository(),
	}
}
