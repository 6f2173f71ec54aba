package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blogicum/config"
	"blogicum/controllers"
	"blogicum/database"
	"blogicum/handlers"
	"blogicum/middleware"
	"blogicum/pkg/logger"
	"blogicum/routes"
	"blogicum/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	cfg := config.Load()

	db := database.Connect()
	database.Migrate(db)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS())
	r.Use(middleware.CurrentUser())

	r.LoadHTMLGlob("templates/*.html")
	r.Static("/media", cfg.MediaRoot)

	feedService := services.NewFeedService(log)

	authController := controllers.NewAuthController(db)
	postController := controllers.NewPostController(db, cfg, feedService)
	profileController := controllers.NewProfileController(db)
	categoryController := controllers.NewCategoryController(db)
	commentController := controllers.NewCommentController(db, feedService)
	feedHandler := handlers.NewFeedHandler(feedService, log)

	routes.SetupRoutes(r, authController, postController, profileController,
		categoryController, commentController, feedHandler)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}
	log.Info().Msg("server stopped")
}
