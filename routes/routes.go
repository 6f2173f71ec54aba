package routes

import (
	"net/http"

	"blogicum/controllers"
	"blogicum/handlers"
	"blogicum/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	r *gin.Engine,
	authController *controllers.AuthController,
	postController *controllers.PostController,
	profileController *controllers.ProfileController,
	categoryController *controllers.CategoryController,
	commentController *controllers.CommentController,
	feedHandler *handlers.FeedHandler,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", postController.Index)
	r.GET("/profile/:username", profileController.List)

	guest := r.Group("/", middleware.GuestOnly())
	{
		guest.GET("/register", authController.ShowRegister)
		guest.POST("/register", authController.Register)
		guest.GET("/login", authController.ShowLogin)
		guest.POST("/login", authController.Login)
	}

	auth := r.Group("/", middleware.AuthRequired())
	{
		auth.GET("/logout", authController.Logout)
		auth.GET("/edit_profile", profileController.ShowEdit)
		auth.POST("/edit_profile", profileController.Edit)
		auth.GET("/category/:category_slug", categoryController.List)
		auth.GET("/feed/ws", feedHandler.HandleFeed)

		posts := auth.Group("/posts")
		{
			posts.GET("/create", postController.ShowCreate)
			posts.POST("/create", postController.Create)
			posts.GET("/:pk", postController.Detail)
			posts.GET("/:pk/edit", postController.ShowEdit)
			posts.POST("/:pk/edit", postController.Edit)
			posts.GET("/:pk/delete", postController.ShowDelete)
			posts.POST("/:pk/delete", postController.Delete)

			posts.POST("/:pk/comment", commentController.Add)
			posts.GET("/:pk/edit_comment/:id", commentController.ShowEdit)
			posts.POST("/:pk/edit_comment/:id", commentController.Edit)
			posts.GET("/:pk/delete_comment/:id", commentController.ShowDelete)
			posts.POST("/:pk/delete_comment/:id", commentController.Delete)
		}
	}
}
