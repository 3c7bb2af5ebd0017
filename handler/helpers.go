package handler

import (
	"go-vidshare-api/common"
	"net/http"

	"github.com/google/uuid"
)

// currentUserID pulls the authenticated user's ID out of the request context.
func currentUserID(r *http.Request) (uuid.UUID, *common.AppError) {
	userID, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}
	return userID, nil
}

// pathUUID parses a UUID path parameter.
func pathUUID(r *http.Request, name string) (uuid.UUID, *common.AppError) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, common.NewAppError(http.StatusBadRequest, "Invalid "+name+" in URL path", err)
	}
	return id, nil
}
