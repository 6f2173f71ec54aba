package services

import (
	"time"

	"blogicum/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PageSize is the listing window used by every paginated page.
const PageSize = 10

const commentCountSelect = "posts.*, (SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count"

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// visible narrows tx to publicly listed posts: the post and its category
// are published and the publication date is not in the future. Posts
// without a category are never publicly listed.
func (s *PostService) visible(tx *gorm.DB) *gorm.DB {
	publishedCategories := s.db.Model(&models.Category{}).
		Select("id").
		Where("is_published = ?", true)

	return tx.
		Where("posts.is_published = ?", true).
		Where("posts.pub_date <= ?", time.Now()).
		Where("posts.category_id IN (?)", publishedCategories)
}

func (s *PostService) ListIndex(page int) ([]models.Post, int64, error) {
	var total int64
	if err := s.visible(s.db.Model(&models.Post{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := s.visible(s.db.Model(&models.Post{})).
		Select(commentCountSelect).
		Preload("Author").Preload("Location").Preload("Category").
		Order("posts.pub_date DESC").
		Offset((page - 1) * PageSize).Limit(PageSize).
		Find(&posts).Error

	return posts, total, err
}

func (s *PostService) ListByCategory(category *models.Category, page int) ([]models.Post, int64, error) {
	scope := func() *gorm.DB {
		return s.db.Model(&models.Post{}).
			Where("posts.category_id = ?", category.ID).
			Where("posts.is_published = ?", true).
			Where("posts.pub_date <= ?", time.Now())
	}

	var total int64
	if err := scope().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := scope().
		Select(commentCountSelect).
		Preload("Author").Preload("Location").Preload("Category").
		Order("posts.pub_date DESC").
		Offset((page - 1) * PageSize).Limit(PageSize).
		Find(&posts).Error

	return posts, total, err
}

// ListByAuthor returns the author's posts. The author sees everything
// they wrote, including unpublished and scheduled posts; everyone else
// sees only what the public listing shows.
func (s *PostService) ListByAuthor(author *models.User, viewerID uint, page int) ([]models.Post, int64, error) {
	scope := func() *gorm.DB {
		tx := s.db.Model(&models.Post{}).Where("posts.author_id = ?", author.ID)
		if viewerID != author.ID {
			tx = s.visible(tx)
		}
		return tx
	}

	var total int64
	if err := scope().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := scope().
		Select(commentCountSelect).
		Preload("Author").Preload("Location").Preload("Category").
		Order("posts.pub_date DESC").
		Offset((page - 1) * PageSize).Limit(PageSize).
		Find(&posts).Error

	return posts, total, err
}

func (s *PostService) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	err := s.db.
		Preload("Author").Preload("Location").Preload("Category").
		First(&post, id).Error
	return &post, err
}

func (s *PostService) CreatePost(post *models.Post) error {
	return s.db.Omit(clause.Associations).Create(post).Error
}

func (s *PostService) UpdatePost(post *models.Post) error {
	return s.db.Omit(clause.Associations).Save(post).Error
}

func (s *PostService) DeletePost(id uint) error {
	return s.db.Delete(&models.Post{}, id).Error
}
