package repository

import (
	"gorm.io/gorm"

	"github.com/matsci-ai/matsci/app/models"
)

// materialRepository implements the MaterialRepository interface
type materialRepository struct {
	db *gorm.DB
}

// NewMaterialRepository creates a new Ethiopian material repository instance
func NewMaterialRepository(db *gorm.DB) MaterialRepository {
	return &materialRepository{db: db}
}

func (r *materialRepository) Create(material *models.EthiopianMaterial) error {
	return r.db.Create(material).Error
}

func (r *materialRepository) GetAll() ([]models.EthiopianMaterial, error) {
	var materials []models.EthiopianMaterial
	err := r.db.Order("name ASC").Find(&materials).Error
	return materials, err
}

func (r *materialRepository) GetByID(id string) (*models.EthiopianMaterial, error) {
	var material models.EthiopianMaterial
	err := r.db.Where("id = ?", id).First(&material).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &material, nil
}

func (r *materialRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.EthiopianMaterial{}).Count(&count).Error
	return count, err
}
