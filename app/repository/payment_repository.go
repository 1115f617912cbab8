package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/matsci-ai/matsci/app/models"
)

// paymentRepository implements the PaymentRepository interface
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment transaction repository instance
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// Create creates a pending transaction, applying status and currency
// defaults.
func (r *paymentRepository) Create(tx *models.PaymentTransaction) error {
	if tx.Status == "" {
		tx.Status = models.PaymentStatusPending
	}
	if tx.Currency == "" {
		tx.Currency = models.DefaultCurrency
	}
	return r.db.Create(tx).Error
}

func (r *paymentRepository) GetByID(id string) (*models.PaymentTransaction, error) {
	var tx models.PaymentTransaction
	err := r.db.Where("id = ?", id).First(&tx).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &tx, nil
}

func (r *paymentRepository) ListByUser(userID string) ([]models.PaymentTransaction, error) {
	var txs []models.PaymentTransaction
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&txs).Error
	return txs, err
}

// Update persists the transaction, stamping the completion time the first
// time the status becomes completed.
func (r *paymentRepository) Update(tx *models.PaymentTransaction) error {
	if tx.Status == models.PaymentStatusCompleted && tx.CompletedAt == nil {
		now := time.Now()
		tx.CompletedAt = &now
	}
	return r.db.Save(tx).Error
}
