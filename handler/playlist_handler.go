package handler

import (
	"go-vidshare-api/common"
	"go-vidshare-api/model"
	"go-vidshare-api/service"
	"net/http"
)

// PlaylistHandler holds dependencies for playlist endpoints.
type PlaylistHandler struct {
	service *service.PlaylistService
}

func NewPlaylistHandler(s *service.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{service: s}
}

func (h *PlaylistHandler) mapError(err error, fallback string) *common.AppError {
	switch err {
	case service.ErrPlaylistNotFound, service.ErrVideoNotFound, service.ErrUserNotFound, service.ErrPlaylistEntryNotFound:
		return common.NewAppError(http.StatusNotFound, err.Error(), err)
	case service.ErrPermissionDenied:
		return common.NewAppError(http.StatusForbidden, err.Error(), err)
	case service.ErrDuplicatePlaylistEntry:
		return common.NewAppError(http.StatusConflict, err.Error(), err)
	default:
		return common.NewAppError(http.StatusInternalServerError, fallback, err)
	}
}

func (h *PlaylistHandler) Create(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := currentUserID(r)
	if appErr != nil {
		return appErr
	}

	var req model.PlaylistRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	playlist, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		return h.mapError(err, "Could not create playlist")
	}

	writeJSON(w, http.StatusCreated, playlist)
	return nil
}

func (h *PlaylistHandler) ListForUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	ownerID, appErr := pathUUID(r, "userId")
	if appErr != nil {
		return appErr
	}

	playlists, err := h.service.ListForUser(r.Context(), ownerID)
	if err != nil {
		return h.mapError(err, "Could not list playlists")
	}

	writeJSON(w, http.StatusOK, playlists)
	return nil
}

func (h *PlaylistHandler) Get(w http.ResponseWriter, r *http.Request) *common.AppError {
	playlistID, appErr := pathUUID(r, "playlistId")
	if appErr != nil {
		return appErr
	}

	playlist, err := h.service.Get(r.Context(), playlistID)
	if err != nil {
		return h.mapError(err, "Could not fetch playlist")
	}

	writeJSON(w, http.StatusOK, playlist)
	return nil
}

func (h *PlaylistHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := currentUserID(r)
	if appErr != nil {
		return appErr
	}
	playlistID, appErr := pathUUID(r, "playlistId")
	if appErr != nil {
		return appErr
	}

	var req model.PlaylistRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	playlist, err := h.service.Update(r.Context(), userID, playlistID, req)
	if err != nil {
		return h.mapError(err, "Could not update playlist")
	}

	writeJSON(w, http.StatusOK, playlist)
	return nil
}

func (h *PlaylistHandler) Delete(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := currentUserID(r)
	if appErr != nil {
		return appErr
	}
	playlistID, appErr := pathUUID(r, "playlistId")
	if appErr != nil {
		return appErr
	}

	if err := h.service.Delete(r.Context(), userID, playlistID); err != nil {
		return h.mapError(err, "Could not delete playlist")
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Playlist deleted successfully"})
	return nil
}

func (h *PlaylistHandler) AddVideo(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := currentUserID(r)
	if appErr != nil {
		return appErr
	}
	playlistID, appErr := pathUUID(r, "playlistId")
	if appErr != nil {
		return appErr
	}
	videoID, appErr := pathUUID(r, "videoId")
	if appErr != nil {
		return appErr
	}

	if err := h.service.AddVideo(r.Context(), userID, playlistID, videoID); err != nil {
		return h.mapError(err, "Could not add video to playlist")
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "Video added to playlist"})
	return nil
}

func (h *PlaylistHandler) RemoveVideo(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := currentUserID(r)
	if appErr != nil {
		return appErr
	}
	playlistID, appErr := pathUUID(r, "playlistId")
	if appErr != nil {
		return appErr
	}
	videoID, appErr := pathUUID(r, "videoId")
	if appErr != nil {
		return appErr
	}

	if err := h.service.RemoveVideo(r.Context(), userID, playlistID, videoID); err != nil {
		return h.mapError(err, "Could not remove video from playlist")
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Video removed from playlist"})
	return nil
}
