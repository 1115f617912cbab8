package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"

	PaymentMethodTelebirr  = "telebirr"
	PaymentMethodMpesa     = "mpesa"
	PaymentMethodCBE       = "cbe"
	PaymentMethodAbyssinia = "abyssinia"

	DefaultCurrency = "ETB"
)

// PaymentTransaction records one attempt to pay for a subscription plan.
// Status transitions are monotonic: pending → completed | failed, and
// terminal states never change.
type PaymentTransaction struct {
	ID            string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID        string     `gorm:"index;type:varchar(36)" json:"userId"`
	PlanID        string     `gorm:"type:varchar(36)" json:"planId"`
	Amount        float64    `json:"amount"`
	Currency      string     `gorm:"type:varchar(10);default:'ETB'" json:"currency"`
	PaymentMethod string     `gorm:"type:varchar(50)" json:"paymentMethod" validate:"oneof=telebirr mpesa cbe abyssinia"`
	TransactionID string     `gorm:"type:varchar(100)" json:"transactionId,omitempty"`
	Status        string     `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	CompletedAt   *time.Time `gorm:"type:timestamp;default:null" json:"completedAt"`
}

func (t *PaymentTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// IsTerminal reports whether the transaction reached a final state.
func (t *PaymentTransaction) IsTerminal() bool {
	return t.Status == PaymentStatusCompleted || t.Status == PaymentStatusFailed
}

// ValidPaymentMethod checks a method string against the supported
// mobile-money providers.
func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodTelebirr, PaymentMethodMpesa, PaymentMethodCBE, PaymentMethodAbyssinia:
		return true
	}
	return false
}
