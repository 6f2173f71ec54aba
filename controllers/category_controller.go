package controllers

import (
	"errors"
	"net/http"

	"blogicum/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryController struct {
	db              *gorm.DB
	categoryService *services.CategoryService
	postService     *services.PostService
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{
		db:              db,
		categoryService: services.NewCategoryService(db),
		postService:     services.NewPostService(db),
	}
}

func (cc *CategoryController) List(c *gin.Context) {
	category, err := cc.categoryService.GetPublishedBySlug(c.Param("category_slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
		} else {
			serverError(c)
		}
		return
	}

	posts, total, err := cc.postService.ListByCategory(category, parsePage(c))
	if err != nil {
		serverError(c)
		return
	}

	userID, _ := currentUserID(c)
	c.HTML(http.StatusOK, "category.html", gin.H{
		"category":   category,
		"posts":      posts,
		"pagination": paginate(c, total, services.PageSize),
		"user_id":    userID,
	})
}
