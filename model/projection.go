package model

import (
	"time"

	"github.com/google/uuid"
)

// ChannelCard is the projection returned for joined subscriber and
// subscribed-channel listings. Only public profile fields, never the
// full user record.
type ChannelCard struct {
	Username      string `json:"username"`
	FullName      string `json:"full_name"`
	AvatarURL     string `json:"avatar_url"`
	CoverImageURL string `json:"cover_image_url,omitempty"`
}

// LikedVideo pairs a like edge with a projection of the liked video.
type LikedVideo struct {
	LikedAt      time.Time `json:"liked_at"`
	VideoID      uuid.UUID `json:"video_id"`
	OwnerID      uuid.UUID `json:"owner_id"`
	Title        string    `json:"title"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Duration     float64   `json:"duration"`
	Views        int64     `json:"views"`
}

// ChannelStats is the dashboard rollup for a channel. All fields are computed
// live from the underlying stores; nothing here is persisted.
type ChannelStats struct {
	TotalVideos      int64 `json:"total_videos"`
	TotalSubscribers int64 `json:"total_subscribers"`
	TotalViews       int64 `json:"total_views"`
	TotalLikes       int64 `json:"total_likes"`
}

// ChannelProfile is the public channel page for a user, including the
// viewer-specific subscription flag.
type ChannelProfile struct {
	ID                uuid.UUID `json:"id"`
	Username          string    `json:"username"`
	FullName          string    `json:"full_name"`
	Email             string    `json:"email"`
	AvatarURL         string    `json:"avatar_url"`
	CoverImageURL     string    `json:"cover_image_url"`
	SubscriberCount   int64     `json:"subscriber_count"`
	SubscribedToCount int64     `json:"subscribed_to_count"`
	IsSubscribed      bool      `json:"is_subscribed"`
	CreatedAt         time.Time `json:"created_at"`
}
