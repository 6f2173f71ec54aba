package services

import (
	"testing"
	"time"

	"blogicum/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser_HashesPassword(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(db)

	user, err := service.CreateUser(&models.RegisterForm{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", user.Password)
	assert.True(t, user.CheckPassword("secret123"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(db)

	_, err := service.CreateUser(&models.RegisterForm{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = service.CreateUser(&models.RegisterForm{
		Username: "alice", Email: "other@example.com", Password: "secret123",
	})
	assert.Error(t, err)
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(db)
	user := createUser(t, db, "alice")

	updated, err := service.UpdateProfile(user.ID, &models.ProfileForm{
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Liddell",
		Email:     "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.FirstName)
	assert.Equal(t, "Liddell", updated.LastName)
}

func TestDeleteUser_CascadesPostsAndComments(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(db)
	author := createUser(t, db, "alice")
	other := createUser(t, db, "bob")
	news := createCategory(t, db, "news", true)
	now := time.Now()

	post := createPost(t, db, author, news, "A", now.Add(-time.Hour), true)
	createComment(t, db, post, author, "own comment", now)
	othersPost := createPost(t, db, other, news, "B", now.Add(-time.Hour), true)
	createComment(t, db, othersPost, author, "stray comment", now)

	require.NoError(t, service.DeleteUser(author.ID))

	var posts, comments int64
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)
	require.NoError(t, db.Model(&models.Comment{}).Count(&comments).Error)
	assert.EqualValues(t, 1, posts)
	assert.EqualValues(t, 0, comments)
}
