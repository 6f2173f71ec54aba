package services

import (
	"blogicum/models"

	"gorm.io/gorm"
)

type LocationService struct {
	db *gorm.DB
}

func NewLocationService(db *gorm.DB) *LocationService {
	return &LocationService{db: db}
}

func (s *LocationService) ListPublished() ([]models.Location, error) {
	var locations []models.Location
	err := s.db.Where("is_published = ?", true).Order("name").Find(&locations).Error
	return locations, err
}

func (s *LocationService) CreateLocation(location *models.Location) error {
	return s.db.Create(location).Error
}

func (s *LocationService) DeleteLocation(id uint) error {
	return s.db.Delete(&models.Location{}, id).Error
}
