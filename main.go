package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sachinbijalwan2892/Social-media-app/internal/api"
	"github.com/sachinbijalwan2892/Social-media-app/internal/config"
	"github.com/sachinbijalwan2892/Social-media-app/internal/logger"
	"github.com/sachinbijalwan2892/Social-media-app/internal/services"
	"github.com/sachinbijalwan2892/Social-media-app/internal/storage"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Set up the flat-file stores
	userStore, err := storage.NewUserFile(cfg.UsersFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize user store")
	}
	postStore, err := storage.NewPostFile(cfg.PostsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize post store")
	}

	// Set up services
	authService := services.NewAuthService(userStore, cfg.JWTSecret)
	postService := services.NewPostService(postStore)

	// Set up router
	router := api.NewRouter(cfg.JWTSecret, authService, postService)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
