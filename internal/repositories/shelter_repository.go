package repositories

import (
	"github.com/rayagrigorova/pawfinder/internal/models"
	"gorm.io/gorm"
)

// ShelterRepository defines the interface for shelter profile operations
type ShelterRepository interface {
	GetShelterByID(id uint) (*models.Shelter, error)
	GetShelterByUserID(userID uint) (*models.Shelter, error)
	GetShelters() ([]models.Shelter, error)
	UpdateShelter(shelter *models.Shelter) error
}

type postgresShelterRepository struct {
	db *gorm.DB
}

func NewPostgresShelterRepository(db *gorm.DB) ShelterRepository {
	return &postgresShelterRepository{db: db}
}

func (r *postgresShelterRepository) GetShelterByID(id uint) (*models.Shelter, error) {
	var shelter models.Shelter
	if err := r.db.First(&shelter, id).Error; err != nil {
		return nil, err
	}
	return &shelter, nil
}

func (r *postgresShelterRepository) GetShelterByUserID(userID uint) (*models.Shelter, error) {
	var shelter models.Shelter
	if err := r.db.Where("user_id = ?", userID).First(&shelter).Error; err != nil {
		return nil, err
	}
	return &shelter, nil
}

func (r *postgresShelterRepository) GetShelters() ([]models.Shelter, error) {
	var shelters []models.Shelter
	if err := r.db.Order("name").Find(&shelters).Error; err != nil {
		return nil, err
	}
	return shelters, nil
}

func (r *postgresShelterRepository) UpdateShelter(shelter *models.Shelter) error {
	return r.db.Save(shelter).Error
}
