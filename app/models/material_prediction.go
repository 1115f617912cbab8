package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/matsci-ai/matsci/internal/pkg/schema"
)

const (
	PredictionTypeComposition = "properties-to-composition"
	PredictionTypeProperties  = "composition-to-properties"
	PredictionTypePlan        = "prompt-to-plan"
)

// MaterialPrediction is an immutable record of one prediction call. Input
// and output are kept as raw JSON tagged by PredictionType, so each
// variant's payload pair is recoverable as its static type while the
// stored bytes round-trip untouched.
type MaterialPrediction struct {
	ID             string          `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID         string          `gorm:"index;type:varchar(36)" json:"userId,omitempty"`
	PredictionType string          `gorm:"type:varchar(50)" json:"predictionType"`
	InputData      json.RawMessage `gorm:"type:json" json:"inputData"`
	OutputData     json.RawMessage `gorm:"type:json" json:"outputData"`
	Confidence     *float64        `json:"confidence"`
	AIModel        string          `gorm:"type:varchar(100)" json:"aiModel"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"createdAt"`
}

func (p *MaterialPrediction) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// ValidPredictionType checks a type tag against the three supported
// input→output directions.
func ValidPredictionType(t string) bool {
	switch t {
	case PredictionTypeComposition, PredictionTypeProperties, PredictionTypePlan:
		return true
	}
	return false
}

// DecodeOutput unmarshals the stored output into the variant matching the
// prediction type tag.
func (p *MaterialPrediction) DecodeOutput() (any, error) {
	switch p.PredictionType {
	case PredictionTypeComposition:
		var out schema.CompositionPrediction
		if err := json.Unmarshal(p.OutputData, &out); err != nil {
			return nil, err
		}
		return &out, nil
	case PredictionTypeProperties:
		var out schema.PropertyPrediction
		if err := json.Unmarshal(p.OutputData, &out); err != nil {
			return nil, err
		}
		return &out, nil
	case PredictionTypePlan:
		var out schema.PlanPrediction
		if err := json.Unmarshal(p.OutputData, &out); err != nil {
			return nil, err
		}
		return &out, nil
	default:
		return nil, fmt.Errorf("unknown prediction type %q", p.PredictionType)
	}
}
