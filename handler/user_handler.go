package handler

import (
	"encoding/json"
	"go-vidshare-api/common"
	"go-vidshare-api/logger"
	"go-vidshare-api/model"
	"go-vidshare-api/service"
	"net/http"

	"github.com/google/uuid"
)

const maxImageUploadSize = 10 << 20 // 10 MiB

// UserHandler holds dependencies for user and session endpoints.
type UserHandler struct {
	userService *service.UserService
	authService *service.AuthService
}

func NewUserHandler(userService *service.UserService, authService *service.AuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
	}
}

// setTokenCookies attaches both credential artifacts as HttpOnly cookies so
// they are unreadable from page scripts.
func setTokenCookies(w http.ResponseWriter, accessToken, refreshToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "accessToken",
		Value:    accessToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "refreshToken",
		Value:    refreshToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

func clearTokenCookies(w http.ResponseWriter) {
	for _, name := range []string{"accessToken", "refreshToken"} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteStrictMode,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// Register godoc
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user body model.RegisterRequest true "Registration payload"
// @Success      201  {object}  model.User
// @Failure      400  {object}  common.AppError
// @Failure      409  {object}  common.AppError "Username or email already taken"
// @Router       /api/users/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RegisterRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	user, err := h.userService.Register(r.Context(), req)
	if err != nil {
		switch err {
		case service.ErrUserExists:
			return common.NewAppError(http.StatusConflict, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not register user", err)
		}
	}

	writeJSON(w, http.StatusCreated, user)
	return nil
}

// Login godoc
// @Summary      Authenticate and receive a token pair
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        credentials body model.LoginRequest true "Login payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  common.AppError "Invalid credentials"
// @Router       /api/users/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	user, accessToken, refreshToken, err := h.userService.Login(r.Context(), req)
	if err != nil {
		switch err {
		case service.ErrInvalidCredentials:
			return common.NewAppError(http.StatusUnauthorized, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not log in", err)
		}
	}

	setTokenCookies(w, accessToken, refreshToken)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user":          user,
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
	return nil
}

// Refresh exchanges a refresh token (cookie or body) for a new pair. A token
// that was already rotated or revoked is rejected as a replay.
func (h *UserHandler) Refresh(w http.ResponseWriter, r *http.Request) *common.AppError {
	oldToken := ""
	if cookie, err := r.Cookie("refreshToken"); err == nil {
		oldToken = cookie.Value
	} else {
		var req model.RefreshRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			oldToken = req.RefreshToken
		}
	}
	if oldToken == "" {
		return common.NewAppError(http.StatusUnauthorized, "Refresh token is required", nil)
	}

	accessToken, refreshToken, err := h.authService.Rotate(r.Context(), oldToken)
	if err != nil {
		switch err {
		case service.ErrInvalidToken, service.ErrTokenReplay:
			return common.NewAppError(http.StatusUnauthorized, "Invalid refresh token", err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not refresh session", err)
		}
	}

	setTokenCookies(w, accessToken, refreshToken)
	writeJSON(w, http.StatusOK, map[string]string{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
	return nil
}

// Logout revokes the stored refresh token and clears both cookies.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	if err := h.userService.Logout(r.Context(), userID); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not log out", err)
	}

	clearTokenCookies(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
	return nil
}

func (h *UserHandler) CurrentUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	user, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		switch err {
		case service.ErrUserNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not fetch user", err)
		}
	}

	writeJSON(w, http.StatusOK, user)
	return nil
}

func (h *UserHandler) UpdateDetails(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	var req model.UpdateUserRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	user, err := h.userService.UpdateDetails(r.Context(), userID, req)
	if err != nil {
		switch err {
		case service.ErrUserNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not update user", err)
		}
	}

	writeJSON(w, http.StatusOK, user)
	return nil
}

func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	var req model.ChangePasswordRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	if err := h.userService.ChangePassword(r.Context(), userID, req); err != nil {
		switch err {
		case service.ErrIncorrectPassword:
			return common.NewAppError(http.StatusBadRequest, err.Error(), err)
		case service.ErrUserNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not change password", err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Password changed successfully"})
	return nil
}

func (h *UserHandler) updateImage(w http.ResponseWriter, r *http.Request, field string) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	if err := r.ParseMultipartForm(maxImageUploadSize); err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid multipart form", err)
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Image file is required", err)
	}
	defer file.Close()

	logger.Log.WithField("user_id", userID).Infof("Uploading new %s image", field)

	var user *model.User
	if field == "avatar" {
		user, err = h.userService.UpdateAvatar(r.Context(), userID, header.Filename, header.Header.Get("Content-Type"), file)
	} else {
		user, err = h.userService.UpdateCoverImage(r.Context(), userID, header.Filename, header.Header.Get("Content-Type"), file)
	}
	if err != nil {
		switch err {
		case service.ErrUserNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not update image", err)
		}
	}

	writeJSON(w, http.StatusOK, user)
	return nil
}

func (h *UserHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) *common.AppError {
	return h.updateImage(w, r, "avatar")
}

func (h *UserHandler) UpdateCoverImage(w http.ResponseWriter, r *http.Request) *common.AppError {
	return h.updateImage(w, r, "coverImage")
}

// ChannelProfile godoc
// @Summary      Get a channel's public profile
// @Description  Returns profile fields plus live subscriber counts and whether the viewer is subscribed.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username path string true "Channel username"
// @Success      200  {object}  model.ChannelProfile
// @Failure      404  {object}  common.AppError "Channel does not exist"
// @Router       /api/users/channel/{username} [get]
func (h *UserHandler) ChannelProfile(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	username := r.PathValue("username")
	if username == "" {
		return common.NewAppError(http.StatusBadRequest, "Username is required", nil)
	}

	profile, err := h.userService.ChannelProfile(r.Context(), username, userID)
	if err != nil {
		switch err {
		case service.ErrChannelNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not fetch channel profile", err)
		}
	}

	writeJSON(w, http.StatusOK, profile)
	return nil
}
