package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscriptionPlan is static reference data seeded at startup and
// read-only at runtime.
type SubscriptionPlan struct {
	ID             string   `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name           string   `gorm:"type:varchar(100)" json:"name"`
	Description    string   `gorm:"type:text" json:"description"`
	PriceInBirr    float64  `json:"priceInBirr"`
	DurationInDays int      `json:"durationInDays"`
	Features       []string `gorm:"serializer:json" json:"features"`
	IsActive       bool     `gorm:"default:true" json:"isActive"`
}

func (p *SubscriptionPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Tier maps the plan to the subscription tier it grants. Unknown plan
// names grant nothing beyond free.
func (p *SubscriptionPlan) Tier() string {
	switch strings.ToLower(p.Name) {
	case TierBasic:
		return TierBasic
	case TierProfessional:
		return TierProfessional
	case TierEnterprise:
		return TierEnterprise
	default:
		return TierFree
	}
}
