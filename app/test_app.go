package app

import (
	"database/sql"
	"go-vidshare-api/handler"
	"go-vidshare-api/repository"
	"go-vidshare-api/router"
	"go-vidshare-api/service"
	"go-vidshare-api/storage"
	"net/http"

	"github.com/redis/go-redis/v9"
)

// TestApp wires the full stack against externally managed connections so
// integration tests can drive the router directly.
type TestApp struct {
	DB     *sql.DB
	Redis  *redis.Client
	Router http.Handler
}

func NewTestApp(database *sql.DB, redisClient *redis.Client, mediaStore storage.IMediaStore) *TestApp {
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

	return &TestApp{
		DB:     database,
		Redis:  redisClient,
		Router: router.NewRouter(handlers, authService),
	}
}
