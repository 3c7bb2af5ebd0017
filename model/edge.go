// file: model/edge.go

package model

import (
	"time"

	"github.com/google/uuid"
)

// EdgeKind discriminates what a relationship edge points at. An edge is a
// tagged {kind, target} variant rather than a row with one nullable column
// per possible target type.
type EdgeKind string

const (
	KindSubscription EdgeKind = "subscription"
	KindVideoLike    EdgeKind = "video_like"
	KindCommentLike  EdgeKind = "comment_like"
	KindTweetLike    EdgeKind = "tweet_like"
)

// Edge is a directed relationship between an actor and a target. Existence of
// the row is the relationship state; there is no separate boolean flag.
type Edge struct {
	ID        uuid.UUID `json:"id"`
	ActorID   uuid.UUID `json:"actor_id"`
	TargetID  uuid.UUID `json:"target_id"`
	Kind      EdgeKind  `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// ToggleOutcome reports which branch an edge toggle took.
type ToggleOutcome string

const (
	ToggleCreated ToggleOutcome = "created"
	ToggleRemoved ToggleOutcome = "removed"
)
