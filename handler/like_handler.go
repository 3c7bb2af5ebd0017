package handler

import (
	"go-vidshare-api/common"
	"go-vidshare-api/model"
	"go-vidshare-api/repository"
	"go-vidshare-api/service"
	"net/http"

	"github.com/google/uuid"
)

// LikeHandler exposes the like toggle endpoints and the liked-videos listing.
type LikeHandler struct {
	relationships *service.RelationshipService
	stats         *service.StatsService
}

func NewLikeHandler(relationships *service.RelationshipService, stats *service.StatsService) *LikeHandler {
	return &LikeHandler{
		relationships: relationships,
		stats:         stats,
	}
}

func mapToggleError(err error, fallback string) *common.AppError {
	switch err {
	case service.ErrVideoNotFound, service.ErrCommentNotFound, service.ErrTweetNotFound, service.ErrChannelNotFound:
		return common.NewAppError(http.StatusNotFound, err.Error(), err)
	case repository.ErrToggleConflict:
		return common.NewAppError(http.StatusConflict, "Concurrent toggle detected, please retry", err)
	default:
		return common.NewAppError(http.StatusInternalServerError, fallback, err)
	}
}

func writeToggleOutcome(w http.ResponseWriter, outcome model.ToggleOutcome) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"outcome": outcome,
		"liked":   outcome == model.ToggleCreated,
	})
}

func (h *LikeHandler) toggle(w http.ResponseWriter, r *http.Request, param string,
	fn func(r *http.Request, actorID, targetID uuid.UUID) (model.ToggleOutcome, error)) *common.AppError {

	userID, appErr := currentUserID(r)
	if appErr != nil {
		return appErr
	}
	targetID, appErr := pathUUID(r, param)
	if appErr != nil {
		return appErr
	}

	outcome, err := fn(r, userID, targetID)
	if err != nil {
		return mapToggleError(err, "Could not toggle like")
	}

	writeToggleOutcome(w, outcome)
	return nil
}

// ToggleVideoLike godoc
// @Summary      Like or unlike a video
// @Description  Creates the like edge if absent, removes it if present. Idempotent per pair of calls and race-safe under concurrency.
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  common.AppError "Video not found"
// @Failure      409  {object}  common.AppError "Concurrent toggle lost a race"
// @Router       /api/likes/videos/{videoId}/toggle [post]
func (h *LikeHandler) ToggleVideoLike(w http.ResponseWriter, r *http.Request) *common.AppError {
	return h.toggle(w, r, "videoId", func(r *http.Request, actorID, targetID uuid.UUID) (model.ToggleOutcome, error) {
		return h.relationships.ToggleVideoLike(r.Context(), actorID, targetID)
	})
}

func (h *LikeHandler) ToggleCommentLike(w http.ResponseWriter, r *http.Request) *common.AppError {
	return h.toggle(w, r, "commentId", func(r *http.Request, actorID, targetID uuid.UUID) (model.ToggleOutcome, error) {
		return h.relationships.ToggleCommentLike(r.Context(), actorID, targetID)
	})
}

func (h *LikeHandler) ToggleTweetLike(w http.ResponseWriter, r *http.Request) *common.AppError {
	return h.toggle(w, r, "tweetId", func(r *http.Request, actorID, targetID uuid.UUID) (model.ToggleOutcome, error) {
		return h.relationships.ToggleTweetLike(r.Context(), actorID, targetID)
	})
}

// LikedVideos lists the videos the authenticated user has liked, joined with
// a projection of each video.
func (h *LikeHandler) LikedVideos(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := currentUserID(r)
	if appErr != nil {
		return appErr
	}

	videos, err := h.stats.LikedVideos(r.Context(), userID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not list liked videos", err)
	}

	writeJSON(w, http.StatusOK, videos)
	return nil
}
