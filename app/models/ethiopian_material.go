package models

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/matsci-ai/matsci/internal/pkg/schema"
)

// EthiopianMaterial is a locally sourced reference material with its
// composition and measured properties.
type EthiopianMaterial struct {
	ID            string                   `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name          string                   `gorm:"type:varchar(150)" json:"name" validate:"required"`
	Description   string                   `gorm:"type:text" json:"description"`
	Composition   []schema.ElementFraction `gorm:"serializer:json" json:"composition" validate:"required,min=1,dive"`
	Properties    map[string]any           `gorm:"serializer:json" json:"properties"`
	Location      string                   `gorm:"type:varchar(200)" json:"location"`
	Availability  string                   `gorm:"type:varchar(200)" json:"availability"`
	EstimatedCost float64                  `json:"estimatedCost"`
}

func (m *EthiopianMaterial) Validate() error {
	v := validator.New()

	return v.Struct(m)
}

func (m *EthiopianMaterial) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
