// file: service/relationship_service.go

package service

import (
	"context"
	"errors"
	"go-vidshare-api/logger"
	"go-vidshare-api/model"
	"go-vidshare-api/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrChannelNotFound = errors.New("channel not found")
	ErrVideoNotFound   = errors.New("video not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrTweetNotFound   = errors.New("tweet not found")
)

// RelationshipService exposes the toggle operations for subscriptions and
// likes. The ledger itself knows nothing about target validity, so every
// toggle checks the relevant entity store first.
type RelationshipService struct {
	edgeRepo    repository.IEdgeRepository
	userRepo    repository.IUserRepository
	videoRepo   repository.IVideoRepository
	commentRepo repository.ICommentRepository
	tweetRepo   repository.ITweetRepository
}

func NewRelationshipService(
	edgeRepo repository.IEdgeRepository,
	userRepo repository.IUserRepository,
	videoRepo repository.IVideoRepository,
	commentRepo repository.ICommentRepository,
	tweetRepo repository.ITweetRepository,
) *RelationshipService {
	return &RelationshipService{
		edgeRepo:    edgeRepo,
		userRepo:    userRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		tweetRepo:   tweetRepo,
	}
}

func (s *RelationshipService) toggle(ctx context.Context, actorID, targetID uuid.UUID, kind model.EdgeKind) (model.ToggleOutcome, error) {
	outcome, err := s.edgeRepo.Toggle(ctx, actorID, targetID, kind)
	if err != nil {
		return "", err
	}

	logger.Log.WithFields(logrus.Fields{
		"actor_id":  actorID,
		"target_id": targetID,
		"kind":      kind,
		"outcome":   outcome,
	}).Info("Edge toggled")

	return outcome, nil
}

// ToggleSubscription subscribes or unsubscribes actorID to/from channelID.
func (s *RelationshipService) ToggleSubscription(ctx context.Context, actorID, channelID uuid.UUID) (model.ToggleOutcome, error) {
	exists, err := s.userRepo.ExistsByID(ctx, channelID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", ErrChannelNotFound
	}
	return s.toggle(ctx, actorID, channelID, model.KindSubscription)
}

func (s *RelationshipService) ToggleVideoLike(ctx context.Context, actorID, videoID uuid.UUID) (model.ToggleOutcome, error) {
	exists, err := s.videoRepo.ExistsByID(ctx, videoID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", ErrVideoNotFound
	}
	return s.toggle(ctx, actorID, videoID, model.KindVideoLike)
}

func (s *RelationshipService) ToggleCommentLike(ctx context.Context, actorID, commentID uuid.UUID) (model.ToggleOutcome, error) {
	exists, err := s.commentRepo.ExistsByID(ctx, commentID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", ErrCommentNotFound
	}
	return s.toggle(ctx, actorID, commentID, model.KindCommentLike)
}

func (s *RelationshipService) ToggleTweetLike(ctx context.Context, actorID, tweetID uuid.UUID) (model.ToggleOutcome, error) {
	exists, err := s.tweetRepo.ExistsByID(ctx, tweetID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", ErrTweetNotFound
	}
	return s.toggle(ctx, actorID, tweetID, model.KindTweetLike)
}

// IsSubscribed reports whether actorID currently has a subscription edge to
// channelID. Existence of the edge is the subscription state.
func (s *RelationshipService) IsSubscribed(ctx context.Context, actorID, channelID uuid.UUID) (bool, error) {
	return s.edgeRepo.Exists(ctx, actorID, channelID, model.KindSubscription)
}

// HasLikedVideo reports whether actorID has liked videoID.
func (s *RelationshipService) HasLikedVideo(ctx context.Context, actorID, videoID uuid.UUID) (bool, error) {
	return s.edgeRepo.Exists(ctx, actorID, videoID, model.KindVideoLike)
}
