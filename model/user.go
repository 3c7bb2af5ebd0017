package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	FullName      string    `json:"full_name"`
	Password      string    `json:"-"`
	AvatarURL     string    `json:"avatar_url"`
	CoverImageURL string    `json:"cover_image_url"`
	// RefreshToken holds the single current refresh token for the user.
	// Empty when the user has no active session. Never exposed in responses.
	RefreshToken string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
