package handler

import (
	"go-vidshare-api/common"
	"go-vidshare-api/model"
	"go-vidshare-api/service"
	"net/http"
)

// CommentHandler holds dependencies for comment endpoints.
type CommentHandler struct {
	service *service.CommentService
}

func NewCommentHandler(s *service.CommentService) *CommentHandler {
	return &CommentHandler{service: s}
}

func (h *CommentHandler) mapError(err error, fallback string) *common.AppError {
	switch err {
	case service.ErrVideoNotFound, service.ErrCommentNotFound:
		return common.NewAppError(http.StatusNotFound, err.Error(), err)
	case service.ErrPermissionDenied:
		return common.NewAppError(http.StatusForbidden, err.Error(), err)
	default:
		return common.NewAppError(http.StatusInternalServerError, fallback, err)
	}
}

func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := currentUserID(r)
	if appErr != nil {
		return appErr
	}
	videoID, appErr := pathUUID(r, "videoId")
	if appErr != nil {
		return appErr
	}

	var req model.CommentRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	comment, err := h.service.Add(r.Context(), userID, videoID, req.Content)
	if err != nil {
		return h.mapError(err, "Could not add comment")
	}

	writeJSON(w, http.StatusCreated, comment)
	return nil
}

func (h *CommentHandler) ListForVideo(w http.ResponseWriter, r *http.Request) *common.AppError {
	videoID, appErr := pathUUID(r, "videoId")
	if appErr != nil {
		return appErr
	}

	comments, err := h.service.ListForVideo(r.Context(), videoID)
	if err != nil {
		return h.mapError(err, "Could not list comments")
	}

	writeJSON(w, http.StatusOK, comments)
	return nil
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := currentUserID(r)
	if appErr != nil {
		return appErr
	}
	commentID, appErr := pathUUID(r, "commentId")
	if appErr != nil {
		return appErr
	}

	var req model.CommentRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	comment, err := h.service.Update(r.Context(), userID, commentID, req.Content)
	if err != nil {
		return h.mapError(err, "Could not update comment")
	}

	writeJSON(w, http.StatusOK, comment)
	return nil
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := currentUserID(r)
	if appErr != nil {
		return appErr
	}
	commentID, appErr := pathUUID(r, "commentId")
	if appErr != nil {
		return appErr
	}

	if err := h.service.Delete(r.Context(), userID, commentID); err != nil {
		return h.mapError(err, "Could not delete comment")
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Comment deleted successfully"})
	return nil
}
