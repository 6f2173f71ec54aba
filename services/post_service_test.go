package services

import (
	"testing"
	"time"

	"blogicum/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListIndex_VisibilityInvariant(t *testing.T) {
	db := newTestDB(t)
	service := NewPostService(db)
	author := createUser(t, db, "alice")
	news := createCategory(t, db, "news", true)
	drafts := createCategory(t, db, "drafts", false)
	now := time.Now()

	visible := createPost(t, db, author, news, "Visible", now.Add(-time.Hour), true)
	createPost(t, db, author, news, "Scheduled", now.Add(time.Hour), true)
	createPost(t, db, author, news, "Hidden", now.Add(-time.Hour), false)
	createPost(t, db, author, drafts, "Hidden category", now.Add(-time.Hour), true)
	createPost(t, db, author, nil, "No category", now.Add(-time.Hour), true)

	posts, total, err := service.ListIndex(1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, posts, 1)
	assert.Equal(t, visible.ID, posts[0].ID)
}

func TestListIndex_OrderAndCommentCount(t *testing.T) {
	db := newTestDB(t)
	service := NewPostService(db)
	author := createUser(t, db, "alice")
	news := createCategory(t, db, "news", true)
	now := time.Now()

	older := createPost(t, db, author, news, "Older", now.Add(-2*time.Hour), true)
	newer := createPost(t, db, author, news, "Newer", now.Add(-time.Hour), true)
	createComment(t, db, older, author, "first", now.Add(-time.Minute))
	createComment(t, db, older, author, "second", now)

	posts, _, err := service.ListIndex(1)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, newer.ID, posts[0].ID)
	assert.Equal(t, older.ID, posts[1].ID)
	assert.EqualValues(t, 0, posts[0].CommentCount)
	assert.EqualValues(t, 2, posts[1].CommentCount)
	assert.Equal(t, "alice", posts[1].Author.Username)
}

func TestListIndex_Pagination(t *testing.T) {
	db := newTestDB(t)
	service := NewPostService(db)
	author := createUser(t, db, "alice")
	news := createCategory(t, db, "news", true)
	now := time.Now()

	for i := 0; i < PageSize+2; i++ {
		createPost(t, db, author, news, "Post", now.Add(-time.Duration(i+1)*time.Minute), true)
	}

	first, total, err := service.ListIndex(1)
	require.NoError(t, err)
	assert.EqualValues(t, PageSize+2, total)
	assert.Len(t, first, PageSize)

	second, _, err := service.ListIndex(2)
	require.NoError(t, err)
	assert.Len(t, second, 2)
}

func TestListByCategory(t *testing.T) {
	db := newTestDB(t)
	service := NewPostService(db)
	author := createUser(t, db, "alice")
	news := createCategory(t, db, "news", true)
	travel := createCategory(t, db, "travel", true)
	now := time.Now()

	inCategory := createPost(t, db, author, news, "In category", now.Add(-time.Hour), true)
	createPost(t, db, author, travel, "Elsewhere", now.Add(-time.Hour), true)
	createPost(t, db, author, news, "Scheduled", now.Add(time.Hour), true)

	posts, total, err := service.ListByCategory(news, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, posts, 1)
	assert.Equal(t, inCategory.ID, posts[0].ID)
}

func TestListByAuthor_OwnerSeesEverything(t *testing.T) {
	db := newTestDB(t)
	service := NewPostService(db)
	author := createUser(t, db, "alice")
	visitor := createUser(t, db, "bob")
	news := createCategory(t, db, "news", true)
	now := time.Now()

	createPost(t, db, author, news, "Public", now.Add(-time.Hour), true)
	createPost(t, db, author, news, "Scheduled", now.Add(time.Hour), true)
	createPost(t, db, author, news, "Hidden", now.Add(-time.Hour), false)

	own, total, err := service.ListByAuthor(author, author.ID, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, own, 3)

	visible, total, err := service.ListByAuthor(author, visitor.ID, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, visible, 1)
	assert.Equal(t, "Public", visible[0].Title)
}

func TestHidingPostRemovesItFromIndexButNotOwnProfile(t *testing.T) {
	db := newTestDB(t)
	service := NewPostService(db)
	author := createUser(t, db, "alice")
	news := createCategory(t, db, "news", true)

	post := createPost(t, db, author, news, "A", time.Now().Add(-time.Hour), true)

	posts, _, err := service.ListIndex(1)
	require.NoError(t, err)
	require.Len(t, posts, 1)

	post.IsPublished = false
	require.NoError(t, service.UpdatePost(post))

	posts, _, err = service.ListIndex(1)
	require.NoError(t, err)
	assert.Empty(t, posts)

	own, _, err := service.ListByAuthor(author, author.ID, 1)
	require.NoError(t, err)
	assert.Len(t, own, 1)
}

func TestDeleteLocation_NullsPostReference(t *testing.T) {
	db := newTestDB(t)
	postService := NewPostService(db)
	locationService := NewLocationService(db)
	author := createUser(t, db, "alice")
	news := createCategory(t, db, "news", true)
	location := createLocation(t, db, "The mountains")

	post := createPost(t, db, author, news, "A", time.Now().Add(-time.Hour), true)
	post.LocationID = &location.ID
	require.NoError(t, postService.UpdatePost(post))

	require.NoError(t, locationService.DeleteLocation(location.ID))

	reloaded, err := postService.GetPostByID(post.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.LocationID)
	assert.Equal(t, "A", reloaded.Title)
}

func TestDeleteCategory_NullsPostReference(t *testing.T) {
	db := newTestDB(t)
	postService := NewPostService(db)
	categoryService := NewCategoryService(db)
	author := createUser(t, db, "alice")
	news := createCategory(t, db, "news", true)

	post := createPost(t, db, author, news, "A", time.Now().Add(-time.Hour), true)

	require.NoError(t, categoryService.DeleteCategory(news.ID))

	reloaded, err := postService.GetPostByID(post.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.CategoryID)
}

func TestDeletePost_CascadesComments(t *testing.T) {
	db := newTestDB(t)
	postService := NewPostService(db)
	author := createUser(t, db, "alice")
	news := createCategory(t, db, "news", true)
	now := time.Now()

	post := createPost(t, db, author, news, "A", now.Add(-time.Hour), true)
	createComment(t, db, post, author, "one", now)
	createComment(t, db, post, author, "two", now)

	require.NoError(t, postService.DeletePost(post.ID))

	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreatePost_PersistsUnpublishedFlag(t *testing.T) {
	db := newTestDB(t)
	service := NewPostService(db)
	author := createUser(t, db, "alice")
	news := createCategory(t, db, "news", true)

	post := &models.Post{
		Title:       "Draft",
		Text:        "Text",
		PubDate:     time.Now().Add(-time.Hour),
		AuthorID:    author.ID,
		CategoryID:  &news.ID,
		IsPublished: false,
	}
	require.NoError(t, service.CreatePost(post))

	reloaded, err := service.GetPostByID(post.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsPublished)

	posts, _, err := service.ListIndex(1)
	require.NoError(t, err)
	assert.Empty(t, posts)
}
