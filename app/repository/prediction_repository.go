package repository

import (
	"gorm.io/gorm"

	"github.com/matsci-ai/matsci/app/models"
)

// predictionRepository implements the PredictionRepository interface
type predictionRepository struct {
	db *gorm.DB
}

// NewPredictionRepository creates a new material prediction repository instance
func NewPredictionRepository(db *gorm.DB) PredictionRepository {
	return &predictionRepository{db: db}
}

func (r *predictionRepository) Create(prediction *models.MaterialPrediction) error {
	return r.db.Create(prediction).Error
}

func (r *predictionRepository) GetByID(id string) (*models.MaterialPrediction, error) {
	var prediction models.MaterialPrediction
	err := r.db.Where("id = ?", id).First(&prediction).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &prediction, nil
}

// List returns predictions newest first, filtered by owning user when
// userID is non-empty.
func (r *predictionRepository) List(userID string) ([]models.MaterialPrediction, error) {
	var predictions []models.MaterialPrediction
	query := r.db.Order("created_at DESC")
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	err := query.Find(&predictions).Error
	return predictions, err
}
