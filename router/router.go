package router

import (
	"go-vidshare-api/common"
	"go-vidshare-api/handler"
	"go-vidshare-api/service"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "go-vidshare-api/docs"
)

type Handlers struct {
	User         *handler.UserHandler
	Video        *handler.VideoHandler
	Comment      *handler.CommentHandler
	Tweet        *handler.TweetHandler
	Playlist     *handler.PlaylistHandler
	Like         *handler.LikeHandler
	Subscription *handler.SubscriptionHandler
	Dashboard    *handler.DashboardHandler
}

func NewRouter(h Handlers, authService *service.AuthService) http.Handler {
	mux := http.NewServeMux()
	auth := handler.AuthMiddleware(authService)

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /swagger/", httpSwagger.Handler())

	// --- Public Routes ---
	mux.Handle("POST /api/users/register", handler.ErrorHandlingMiddleware(h.User.Register))
	mux.Handle("POST /api/users/login", handler.ErrorHandlingMiddleware(h.User.Login))
	mux.Handle("POST /api/users/refresh-token", handler.ErrorHandlingMiddleware(h.User.Refresh))

	mux.Handle("GET /api/videos/{videoId}", handler.ErrorHandlingMiddleware(h.Video.Get))
	mux.Handle("GET /api/channels/{channelId}/videos", handler.ErrorHandlingMiddleware(h.Video.ListChannelVideos))
	mux.Handle("GET /api/videos/{videoId}/comments", handler.ErrorHandlingMiddleware(h.Comment.ListForVideo))
	mux.Handle("GET /api/users/{userId}/tweets", handler.ErrorHandlingMiddleware(h.Tweet.ListForUser))
	mux.Handle("GET /api/users/{userId}/playlists", handler.ErrorHandlingMiddleware(h.Playlist.ListForUser))
	mux.Handle("GET /api/playlists/{playlistId}", handler.ErrorHandlingMiddleware(h.Playlist.Get))

	mux.Handle("GET /api/channels/{channelId}/subscribers", handler.ErrorHandlingMiddleware(h.Subscription.Subscribers))
	mux.Handle("GET /api/users/{subscriberId}/subscriptions", handler.ErrorHandlingMiddleware(h.Subscription.SubscribedChannels))
	mux.Handle("GET /api/channels/{channelId}/stats", handler.ErrorHandlingMiddleware(h.Dashboard.ChannelStats))

	// --- Protected Routes ---
	protect := func(fn func(http.ResponseWriter, *http.Request) *common.AppError) http.Handler {
		return auth(handler.ErrorHandlingMiddleware(fn))
	}

	mux.Handle("POST /api/users/logout", protect(h.User.Logout))
	mux.Handle("GET /api/users/me", protect(h.User.CurrentUser))
	mux.Handle("PATCH /api/users/me", protect(h.User.UpdateDetails))
	mux.Handle("POST /api/users/change-password", protect(h.User.ChangePassword))
	mux.Handle("PATCH /api/users/me/avatar", protect(h.User.UpdateAvatar))
	mux.Handle("PATCH /api/users/me/cover-image", protect(h.User.UpdateCoverImage))
	mux.Handle("GET /api/users/channel/{username}", protect(h.User.ChannelProfile))

	mux.Handle("POST /api/videos", protect(h.Video.Publish))
	mux.Handle("PATCH /api/videos/{videoId}", protect(h.Video.UpdateDetails))
	mux.Handle("PATCH /api/videos/{videoId}/toggle-publish", protect(h.Video.TogglePublishStatus))
	mux.Handle("DELETE /api/videos/{videoId}", protect(h.Video.Delete))

	mux.Handle("POST /api/videos/{videoId}/comments", protect(h.Comment.Add))
	mux.Handle("PATCH /api/comments/{commentId}", protect(h.Comment.Update))
	mux.Handle("DELETE /api/comments/{commentId}", protect(h.Comment.Delete))

	mux.Handle("POST /api/tweets", protect(h.Tweet.Create))
	mux.Handle("PATCH /api/tweets/{tweetId}", protect(h.Tweet.Update))
	mux.Handle("DELETE /api/tweets/{tweetId}", protect(h.Tweet.Delete))

	mux.Handle("POST /api/playlists", protect(h.Playlist.Create))
	mux.Handle("PATCH /api/playlists/{playlistId}", protect(h.Playlist.Update))
	mux.Handle("DELETE /api/playlists/{playlistId}", protect(h.Playlist.Delete))
	mux.Handle("POST /api/playlists/{playlistId}/videos/{videoId}", protect(h.Playlist.AddVideo))
	mux.Handle("DELETE /api/playlists/{playlistId}/videos/{videoId}", protect(h.Playlist.RemoveVideo))

	mux.Handle("POST /api/likes/videos/{videoId}/toggle", protect(h.Like.ToggleVideoLike))
	mux.Handle("POST /api/likes/comments/{commentId}/toggle", protect(h.Like.ToggleCommentLike))
	mux.Handle("POST /api/likes/tweets/{tweetId}/toggle", protect(h.Like.ToggleTweetLike))
	mux.Handle("GET /api/likes/videos", protect(h.Like.LikedVideos))

	mux.Handle("POST /api/subscriptions/{channelId}/toggle", protect(h.Subscription.Toggle))

	return mux
}
