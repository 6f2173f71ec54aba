package controllers

import (
	"errors"
	"net/http"

	"blogicum/models"
	"blogicum/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentController struct {
	db             *gorm.DB
	commentService *services.CommentService
	postService    *services.PostService
	feedService    *services.FeedService
}

func NewCommentController(db *gorm.DB, feedService *services.FeedService) *CommentController {
	return &CommentController{
		db:             db,
		commentService: services.NewCommentService(db),
		postService:    services.NewPostService(db),
		feedService:    feedService,
	}
}

func (cc *CommentController) Add(c *gin.Context) {
	pk, err := parseUintParam(c, "pk")
	if err != nil {
		notFound(c)
		return
	}

	post, err := cc.postService.GetPostByID(pk)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
		} else {
			serverError(c)
		}
		return
	}

	var form models.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "comment.html", gin.H{"post": post, "error": err.Error()})
		return
	}

	userID, _ := currentUserID(c)
	comment := &models.Comment{
		Text:     form.Text,
		PostID:   post.ID,
		AuthorID: userID,
	}

	if err := cc.commentService.CreateComment(comment); err != nil {
		serverError(c)
		return
	}

	cc.feedService.PublishCommentAdded(comment)
	c.Redirect(http.StatusFound, "/posts/"+c.Param("pk"))
}

func (cc *CommentController) ShowEdit(c *gin.Context) {
	comment, ok := cc.authorizeComment(c)
	if !ok {
		return
	}
	userID, _ := currentUserID(c)
	c.HTML(http.StatusOK, "comment.html", gin.H{"comment": comment, "user_id": userID})
}

func (cc *CommentController) Edit(c *gin.Context) {
	comment, ok := cc.authorizeComment(c)
	if !ok {
		return
	}

	var form models.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "comment.html", gin.H{"comment": comment, "error": err.Error()})
		return
	}

	comment.Text = form.Text
	if err := cc.commentService.UpdateComment(comment); err != nil {
		serverError(c)
		return
	}

	c.Redirect(http.StatusFound, "/posts/"+c.Param("pk"))
}

func (cc *CommentController) ShowDelete(c *gin.Context) {
	comment, ok := cc.authorizeComment(c)
	if !ok {
		return
	}
	userID, _ := currentUserID(c)
	c.HTML(http.StatusOK, "comment.html", gin.H{"comment": comment, "deleting": true, "user_id": userID})
}

func (cc *CommentController) Delete(c *gin.Context) {
	comment, ok := cc.authorizeComment(c)
	if !ok {
		return
	}

	if err := cc.commentService.DeleteComment(comment.ID); err != nil {
		serverError(c)
		return
	}

	c.Redirect(http.StatusFound, "/posts/"+c.Param("pk"))
}

// authorizeComment resolves the comment from the id parameter and
// enforces authorship, mirroring the post rules: missing comment is a
// 404, a non-author gets the silent redirect back to the post.
func (cc *CommentController) authorizeComment(c *gin.Context) (*models.Comment, bool) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		notFound(c)
		return nil, false
	}

	comment, err := cc.commentService.GetCommentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
		} else {
			serverError(c)
		}
		return nil, false
	}

	userID, _ := currentUserID(c)
	if comment.AuthorID != userID {
		c.Redirect(http.StatusFound, "/posts/"+c.Param("pk"))
		c.Abort()
		return nil, false
	}

	return comment, true
}
