package services

import (
	"blogicum/models"

	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// GetPublishedBySlug resolves a category by slug; hidden categories
// are treated as absent.
func (s *CategoryService) GetPublishedBySlug(slug string) (*models.Category, error) {
	var category models.Category
	err := s.db.Where("slug = ? AND is_published = ?", slug, true).First(&category).Error
	return &category, err
}

func (s *CategoryService) ListPublished() ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Where("is_published = ?", true).Order("title").Find(&categories).Error
	return categories, err
}

func (s *CategoryService) CreateCategory(category *models.Category) error {
	return s.db.Create(category).Error
}

func (s *CategoryService) DeleteCategory(id uint) error {
	return s.db.Delete(&models.Category{}, id).Error
}
