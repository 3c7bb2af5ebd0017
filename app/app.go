package app

import (
	"context"
	"go-vidshare-api/config"
	"go-vidshare-api/db"
	"go-vidshare-api/handler"
	"go-vidshare-api/logger"
	"go-vidshare-api/repository"
	"go-vidshare-api/router"
	"go-vidshare-api/service"
	"go-vidshare-api/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Fatalf("Error connecting to redis: %v", err)
	}
	defer redisClient.Close()

	mediaStore, err := storage.NewS3MediaStore(context.Background())
	if err != nil {
		logger.Log.Fatalf("Error initializing media store: %v", err)
	}

	// --- Wiring All Layers Together ---
	userRepo := repository.NewUserRepository(database)
	videoRepo := repository.NewVideoRepository(database)
	commentRepo := repository.NewCommentRepository(database)
	tweetRepo := repository.NewTweetRepository(database)
	playlistRepo := repository.NewPlaylistRepository(database)
	edgeRepo := repository.NewEdgeRepository(database)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo, edgeRepo, authService, mediaStore)
	videoService := service.NewVideoService(database, videoRepo, commentRepo, playlistRepo, edgeRepo, mediaStore, redisClient)
	commentService := service.NewCommentService(database, commentRepo, videoRepo, edgeRepo)
	tweetService := service.NewTweetService(database, tweetRepo, userRepo, edgeRepo)
	playlistService := service.NewPlaylistService(playlistRepo, videoRepo, userRepo)
	relationshipService := service.NewRelationshipService(edgeRepo, userRepo, videoRepo, commentRepo, tweetRepo)
	statsService := service.NewStatsService(edgeRepo, userRepo, videoRepo)

	handlers := router.Handlers{
		User:         handler.NewUserHandler(userService, authService),
		Video:        handler.NewVideoHandler(videoService),
		Comment:      handler.NewCommentHandler(commentService),
		Tweet:        handler.NewTweetHandler(tweetService),
		Playlist:     handler.NewPlaylistHandler(playlistService),
		Like:         handler.NewLikeHandler(relationshipService, statsService),
		Subscription: handler.NewSubscriptionHandler(relationshipService, statsService),
		Dashboard:    handler.NewDashboardHandler(statsService),
	}

	r := router.NewRouter(handlers, authService)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
