package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"blogicum/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with foreign keys
// enforced, so the SET NULL and CASCADE policies behave as they do
// against postgres.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Location{},
		&models.Post{},
		&models.Comment{},
	))

	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "secret123",
	}
	require.NoError(t, user.HashPassword())
	require.NoError(t, db.Create(user).Error)
	return user
}

func createCategory(t *testing.T, db *gorm.DB, slug string, published bool) *models.Category {
	t.Helper()

	category := &models.Category{
		Title:       "Category " + slug,
		Description: "About " + slug,
		Slug:        slug,
		IsPublished: published,
	}
	require.NoError(t, db.Create(category).Error)
	return category
}

func createLocation(t *testing.T, db *gorm.DB, name string) *models.Location {
	t.Helper()

	location := &models.Location{Name: name, IsPublished: true}
	require.NoError(t, db.Create(location).Error)
	return location
}

func createPost(t *testing.T, db *gorm.DB, author *models.User, category *models.Category,
	title string, pubDate time.Time, published bool) *models.Post {
	t.Helper()

	post := &models.Post{
		Title:       title,
		Text:        "Text of " + title,
		PubDate:     pubDate,
		AuthorID:    author.ID,
		IsPublished: published,
	}
	if category != nil {
		post.CategoryID = &category.ID
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func createComment(t *testing.T, db *gorm.DB, post *models.Post, author *models.User,
	text string, createdAt time.Time) *models.Comment {
	t.Helper()

	comment := &models.Comment{
		Text:      text,
		PostID:    post.ID,
		AuthorID:  author.ID,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(comment).Error)
	return comment
}
