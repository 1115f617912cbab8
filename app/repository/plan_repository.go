package repository

import (
	"gorm.io/gorm"

	"github.com/matsci-ai/matsci/app/models"
)

// planRepository implements the PlanRepository interface
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new subscription plan repository instance
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Create(plan *models.SubscriptionPlan) error {
	return r.db.Create(plan).Error
}

// GetActive lists all plans currently offered for purchase.
func (r *planRepository) GetActive() ([]models.SubscriptionPlan, error) {
	var plans []models.SubscriptionPlan
	err := r.db.Where("is_active = ?", true).Order("price_in_birr ASC").Find(&plans).Error
	return plans, err
}

func (r *planRepository) GetByID(id string) (*models.SubscriptionPlan, error) {
	var plan models.SubscriptionPlan
	err := r.db.Where("id = ?", id).First(&plan).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &plan, nil
}

func (r *planRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.SubscriptionPlan{}).Count(&count).Error
	return count, err
}
