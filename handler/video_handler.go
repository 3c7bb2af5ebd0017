package handler

import (
	"go-vidshare-api/common"
	"go-vidshare-api/logger"
	"go-vidshare-api/model"
	"go-vidshare-api/service"
	"net/http"

	"github.com/sirupsen/logrus"
)

const maxVideoUploadSize = 512 << 20 // 512 MiB

// VideoHandler holds dependencies for video endpoints.
type VideoHandler struct {
	service *service.VideoService
}

func NewVideoHandler(s *service.VideoService) *VideoHandler {
	return &VideoHandler{service: s}
}

func (h *VideoHandler) mapError(err error, fallback string) *common.AppError {
	switch err {
	case service.ErrVideoNotFound:
		return common.NewAppError(http.StatusNotFound, err.Error(), err)
	case service.ErrPermissionDenied:
		return common.NewAppError(http.StatusForbidden, err.Error(), err)
	default:
		return common.NewAppError(http.StatusInternalServerError, fallback, err)
	}
}

// Publish godoc
// @Summary      Publish a new video
// @Description  Uploads the video file and thumbnail to the media store and creates the video record.
// @Tags         videos
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Video title"
// @Param        description formData string false "Video description"
// @Param        video formData file true "Video file"
// @Param        thumbnail formData file true "Thumbnail image"
// @Success      201  {object}  model.Video
// @Failure      400  {object}  common.AppError
// @Failure      500  {object}  common.AppError
// @Router       /api/videos [post]
func (h *VideoHandler) Publish(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := currentUserID(r)
	if appErr != nil {
		return appErr
	}

	if err := r.ParseMultipartForm(maxVideoUploadSize); err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid multipart form", err)
	}

	title := r.FormValue("title")
	if title == "" {
		return common.NewAppError(http.StatusBadRequest, "Title is required", nil)
	}
	description := r.FormValue("description")

	videoFile, videoHeader, err := r.FormFile("video")
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Video file is required", err)
	}
	defer videoFile.Close()

	thumbFile, thumbHeader, err := r.FormFile("thumbnail")
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Thumbnail file is required", err)
	}
	defer thumbFile.Close()

	logger.Log.WithFields(logrus.Fields{
		"user_id": userID,
		"title":   title,
	}).Info("Video publish request received")

	video, err := h.service.Publish(r.Context(), userID, title, description,
		service.VideoUpload{Filename: videoHeader.Filename, ContentType: videoHeader.Header.Get("Content-Type"), Body: videoFile},
		service.VideoUpload{Filename: thumbHeader.Filename, ContentType: thumbHeader.Header.Get("Content-Type"), Body: thumbFile},
	)
	if err != nil {
		return h.mapError(err, "Could not publish video")
	}

	writeJSON(w, http.StatusCreated, video)
	return nil
}

func (h *VideoHandler) Get(w http.ResponseWriter, r *http.Request) *common.AppError {
	videoID, appErr := pathUUID(r, "videoId")
	if appErr != nil {
		return appErr
	}

	video, err := h.service.Get(r.Context(), videoID)
	if err != nil {
		return h.mapError(err, "Could not fetch video")
	}

	writeJSON(w, http.StatusOK, video)
	return nil
}

// ListChannelVideos lists a channel's published videos.
func (h *VideoHandler) ListChannelVideos(w http.ResponseWriter, r *http.Request) *common.AppError {
	channelID, appErr := pathUUID(r, "channelId")
	if appErr != nil {
		return appErr
	}

	videos, err := h.service.ListChannelVideos(r.Context(), channelID)
	if err != nil {
		return h.mapError(err, "Could not list channel videos")
	}

	writeJSON(w, http.StatusOK, videos)
	return nil
}

func (h *VideoHandler) UpdateDetails(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := currentUserID(r)
	if appErr != nil {
		return appErr
	}
	videoID, appErr := pathUUID(r, "videoId")
	if appErr != nil {
		return appErr
	}

	var req model.UpdateVideoRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	video, err := h.service.UpdateDetails(r.Context(), userID, videoID, req)
	if err != nil {
		return h.mapError(err, "Could not update video")
	}

	writeJSON(w, http.StatusOK, video)
	return nil
}

func (h *VideoHandler) TogglePublishStatus(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := currentUserID(r)
	if appErr != nil {
		return appErr
	}
	videoID, appErr := pathUUID(r, "videoId")
	if appErr != nil {
		return appErr
	}

	video, err := h.service.TogglePublishStatus(r.Context(), userID, videoID)
	if err != nil {
		return h.mapError(err, "Could not toggle publish status")
	}

	writeJSON(w, http.StatusOK, video)
	return nil
}

// Delete removes a video together with its comments, like edges and playlist
// entries.
func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := currentUserID(r)
	if appErr != nil {
		return appErr
	}
	videoID, appErr := pathUUID(r, "videoId")
	if appErr != nil {
		return appErr
	}

	if err := h.service.Delete(r.Context(), userID, videoID); err != nil {
		return h.mapError(err, "Could not delete video")
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Video deleted successfully"})
	return nil
}
