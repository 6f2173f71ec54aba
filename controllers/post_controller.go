package controllers

import (
	"errors"
	"net/http"

	"blogicum/config"
	"blogicum/models"
	"blogicum/services"
	"blogicum/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostController struct {
	db              *gorm.DB
	cfg             *config.Config
	postService     *services.PostService
	commentService  *services.CommentService
	categoryService *services.CategoryService
	locationService *services.LocationService
	userService     *services.UserService
	feedService     *services.FeedService
}

func NewPostController(db *gorm.DB, cfg *config.Config, feedService *services.FeedService) *PostController {
	return &PostController{
		db:              db,
		cfg:             cfg,
		postService:     services.NewPostService(db),
		commentService:  services.NewCommentService(db),
		categoryService: services.NewCategoryService(db),
		locationService: services.NewLocationService(db),
		userService:     services.NewUserService(db),
		feedService:     feedService,
	}
}

func (pc *PostController) Index(c *gin.Context) {
	page := parsePage(c)

	posts, total, err := pc.postService.ListIndex(page)
	if err != nil {
		serverError(c)
		return
	}

	userID, _ := currentUserID(c)
	c.HTML(http.StatusOK, "index.html", gin.H{
		"posts":      posts,
		"pagination": paginate(c, total, services.PageSize),
		"user_id":    userID,
	})
}

func (pc *PostController) Detail(c *gin.Context) {
	pk, err := parseUintParam(c, "pk")
	if err != nil {
		notFound(c)
		return
	}

	post, err := pc.postService.GetPostByID(pk)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
		} else {
			serverError(c)
		}
		return
	}

	comments, err := pc.commentService.ListByPost(post.ID)
	if err != nil {
		serverError(c)
		return
	}

	userID, _ := currentUserID(c)
	c.HTML(http.StatusOK, "detail.html", gin.H{
		"post":     post,
		"comments": comments,
		"form":     models.CommentForm{},
		"user_id":  userID,
	})
}

func (pc *PostController) ShowCreate(c *gin.Context) {
	pc.renderPostForm(c, http.StatusOK, gin.H{})
}

func (pc *PostController) Create(c *gin.Context) {
	userID, _ := currentUserID(c)

	var form models.PostForm
	if err := c.ShouldBind(&form); err != nil {
		pc.renderPostForm(c, http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	form.Normalize()

	image, err := pc.saveImage(c)
	if err != nil {
		pc.renderPostForm(c, http.StatusBadRequest, gin.H{"error": "Could not store the uploaded image"})
		return
	}

	post := &models.Post{
		Title:       form.Title,
		Text:        form.Text,
		PubDate:     form.PubDate,
		AuthorID:    userID,
		LocationID:  form.LocationID,
		CategoryID:  form.CategoryID,
		Image:       image,
		IsPublished: form.IsPublished,
	}

	if err := pc.postService.CreatePost(post); err != nil {
		serverError(c)
		return
	}

	pc.feedService.PublishPostCreated(post)
	pc.redirectToProfile(c, userID)
}

func (pc *PostController) ShowEdit(c *gin.Context) {
	post, ok := pc.authorizePost(c)
	if !ok {
		return
	}
	pc.renderPostForm(c, http.StatusOK, gin.H{"post": post})
}

func (pc *PostController) Edit(c *gin.Context) {
	post, ok := pc.authorizePost(c)
	if !ok {
		return
	}

	userID, _ := currentUserID(c)

	var form models.PostForm
	if err := c.ShouldBind(&form); err != nil {
		pc.renderPostForm(c, http.StatusBadRequest, gin.H{"post": post, "error": err.Error()})
		return
	}

	form.Normalize()

	image, err := pc.saveImage(c)
	if err != nil {
		pc.renderPostForm(c, http.StatusBadRequest, gin.H{"post": post, "error": "Could not store the uploaded image"})
		return
	}

	post.Title = form.Title
	post.Text = form.Text
	post.PubDate = form.PubDate
	post.LocationID = form.LocationID
	post.CategoryID = form.CategoryID
	post.IsPublished = form.IsPublished
	post.AuthorID = userID
	if image != "" {
		post.Image = image
	}

	if err := pc.postService.UpdatePost(post); err != nil {
		serverError(c)
		return
	}

	pc.redirectToProfile(c, userID)
}

func (pc *PostController) ShowDelete(c *gin.Context) {
	post, ok := pc.authorizePost(c)
	if !ok {
		return
	}
	pc.renderPostForm(c, http.StatusOK, gin.H{"post": post, "deleting": true})
}

func (pc *PostController) Delete(c *gin.Context) {
	post, ok := pc.authorizePost(c)
	if !ok {
		return
	}

	if err := pc.postService.DeletePost(post.ID); err != nil {
		serverError(c)
		return
	}

	userID, _ := currentUserID(c)
	pc.redirectToProfile(c, userID)
}

// authorizePost resolves the post from the pk parameter and enforces
// authorship. A missing post renders 404; a non-author is silently
// redirected to the detail page with nothing applied.
func (pc *PostController) authorizePost(c *gin.Context) (*models.Post, bool) {
	pk, err := parseUintParam(c, "pk")
	if err != nil {
		notFound(c)
		return nil, false
	}

	post, err := pc.postService.GetPostByID(pk)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
		} else {
			serverError(c)
		}
		return nil, false
	}

	userID, _ := currentUserID(c)
	if post.AuthorID != userID {
		c.Redirect(http.StatusFound, "/posts/"+c.Param("pk"))
		c.Abort()
		return nil, false
	}

	return post, true
}

func (pc *PostController) renderPostForm(c *gin.Context, status int, extra gin.H) {
	categories, err := pc.categoryService.ListPublished()
	if err != nil {
		serverError(c)
		return
	}
	locations, err := pc.locationService.ListPublished()
	if err != nil {
		serverError(c)
		return
	}

	userID, _ := currentUserID(c)
	data := gin.H{
		"categories": categories,
		"locations":  locations,
		"user_id":    userID,
	}
	for k, v := range extra {
		data[k] = v
	}
	c.HTML(status, "create.html", data)
}

func (pc *PostController) saveImage(c *gin.Context) (string, error) {
	return utils.SavePostImage(c, pc.cfg.MediaRoot)
}

func (pc *PostController) redirectToProfile(c *gin.Context, userID uint) {
	user, err := pc.userService.GetUserByID(userID)
	if err != nil {
		serverError(c)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+user.Username)
}
