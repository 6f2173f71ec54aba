package controllers

import (
	"errors"
	"net/http"

	"blogicum/models"
	"blogicum/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProfileController struct {
	db          *gorm.DB
	userService *services.UserService
	postService *services.PostService
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{
		db:          db,
		userService: services.NewUserService(db),
		postService: services.NewPostService(db),
	}
}

func (pc *ProfileController) List(c *gin.Context) {
	profile, err := pc.userService.GetUserByUsername(c.Param("username"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
		} else {
			serverError(c)
		}
		return
	}

	viewerID, _ := currentUserID(c)
	posts, total, err := pc.postService.ListByAuthor(profile, viewerID, parsePage(c))
	if err != nil {
		serverError(c)
		return
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"profile":    profile,
		"posts":      posts,
		"pagination": paginate(c, total, services.PageSize),
		"user_id":    viewerID,
	})
}

func (pc *ProfileController) ShowEdit(c *gin.Context) {
	userID, _ := currentUserID(c)

	user, err := pc.userService.GetUserByID(userID)
	if err != nil {
		serverError(c)
		return
	}

	c.HTML(http.StatusOK, "user.html", gin.H{"profile": user, "user_id": userID})
}

func (pc *ProfileController) Edit(c *gin.Context) {
	userID, _ := currentUserID(c)

	var form models.ProfileForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "user.html", gin.H{"error": err.Error(), "user_id": userID})
		return
	}

	user, err := pc.userService.UpdateProfile(userID, &form)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.HTML(http.StatusConflict, "user.html", gin.H{
				"error":   "This username or email is already taken",
				"user_id": userID,
			})
		} else {
			serverError(c)
		}
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+user.Username)
}
