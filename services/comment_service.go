package services

import (
	"blogicum/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// ListByPost returns the post's comments oldest first.
func (s *CommentService) ListByPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (s *CommentService) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := s.db.Preload("Author").First(&comment, id).Error
	return &comment, err
}

func (s *CommentService) CreateComment(comment *models.Comment) error {
	return s.db.Omit(clause.Associations).Create(comment).Error
}

func (s *CommentService) UpdateComment(comment *models.Comment) error {
	return s.db.Omit(clause.Associations).Save(comment).Error
}

func (s *CommentService) DeleteComment(id uint) error {
	return s.db.Delete(&models.Comment{}, id).Error
}
