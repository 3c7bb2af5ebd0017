package handler

import (
	"go-vidshare-api/common"
	"go-vidshare-api/model"
	"go-vidshare-api/service"
	"net/http"
)

// TweetHandler holds dependencies for tweet endpoints.
type TweetHandler struct {
	service *service.TweetService
}

func NewTweetHandler(s *service.TweetService) *TweetHandler {
	return &TweetHandler{service: s}
}

func (h *TweetHandler) mapError(err error, fallback string) *common.AppError {
	switch err {
	case service.ErrTweetNotFound, service.ErrUserNotFound:
		return common.NewAppError(http.StatusNotFound, err.Error(), err)
	case service.ErrPermissionDenied:
		return common.NewAppError(http.StatusForbidden, err.Error(), err)
	default:
		return common.NewAppError(http.StatusInternalServerError, fallback, err)
	}
}

func (h *TweetHandler) Create(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := currentUserID(r)
	if appErr != nil {
		return appErr
	}

	var req model.TweetRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	tweet, err := h.service.Create(r.Context(), userID, req.Content)
	if err != nil {
		return h.mapError(err, "Could not create tweet")
	}

	writeJSON(w, http.StatusCreated, tweet)
	return nil
}

func (h *TweetHandler) ListForUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	ownerID, appErr := pathUUID(r, "userId")
	if appErr != nil {
		return appErr
	}

	tweets, err := h.service.ListForUser(r.Context(), ownerID)
	if err != nil {
		return h.mapError(err, "Could not list tweets")
	}

	writeJSON(w, http.StatusOK, tweets)
	return nil
}

func (h *TweetHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := currentUserID(r)
	if appErr != nil {
		return appErr
	}
	tweetID, appErr := pathUUID(r, "tweetId")
	if appErr != nil {
		return appErr
	}

	var req model.TweetRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	tweet, err := h.service.Update(r.Context(), userID, tweetID, req.Content)
	if err != nil {
		return h.mapError(err, "Could not update tweet")
	}

	writeJSON(w, http.StatusOK, tweet)
	return nil
}

func (h *TweetHandler) Delete(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := currentUserID(r)
	if appErr != nil {
		return appErr
	}
	tweetID, appErr := pathUUID(r, "tweetId")
	if appErr != nil {
		return appErr
	}

	if err := h.service.Delete(r.Context(), userID, tweetID); err != nil {
		return h.mapError(err, "Could not delete tweet")
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Tweet deleted successfully"})
	return nil
}
