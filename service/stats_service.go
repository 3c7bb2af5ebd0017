// file: service/stats_service.go

package service

import (
	"context"
	"go-vidshare-api/logger"
	"go-vidshare-api/model"
	"go-vidshare-api/repository"

	"github.com/google/uuid"
)

// SubscriberList pairs a live subscriber count with the joined projections.
type SubscriberList struct {
	TotalSubscribers int64                `json:"total_subscribers"`
	Subscribers      []*model.ChannelCard `json:"subscribers"`
}

// SubscribedChannelList is the symmetric view from the subscriber side.
type SubscribedChannelList struct {
	TotalSubscribedTo int64                `json:"total_subscribed_to"`
	Channels          []*model.ChannelCard `json:"channels"`
}

// StatsService is the read-only aggregation layer over the relationship
// ledger and the entity stores. Every number it returns is recomputed at
// query time; nothing derived is ever persisted or cached.
type StatsService struct {
	edgeRepo  repository.IEdgeRepository
	userRepo  repository.IUserRepository
	videoRepo repository.IVideoRepository
}

func NewStatsService(edgeRepo repository.IEdgeRepository, userRepo repository.IUserRepository, videoRepo repository.IVideoRepository) *StatsService {
	return &StatsService{
		edgeRepo:  edgeRepo,
		userRepo:  userRepo,
		videoRepo: videoRepo,
	}
}

// ChannelSubscribers returns the subscriber projections and count for a
// channel. The channel must exist.
func (s *StatsService) ChannelSubscribers(ctx context.Context, channelID uuid.UUID) (*SubscriberList, error) {
	exists, err := s.userRepo.ExistsByID(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrChannelNotFound
	}

	subscribers, err := s.edgeRepo.ListSubscribers(ctx, channelID)
	if err != nil {
		return nil, err
	}
	count, err := s.edgeRepo.CountByTarget(ctx, channelID, model.KindSubscription)
	if err != nil {
		return nil, err
	}

	return &SubscriberList{TotalSubscribers: count, Subscribers: subscribers}, nil
}

// SubscribedChannels returns the channels a user is subscribed to.
func (s *StatsService) SubscribedChannels(ctx context.Context, subscriberID uuid.UUID) (*SubscribedChannelList, error) {
	exists, err := s.userRepo.ExistsByID(ctx, subscriberID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrChannelNotFound
	}

	channels, err := s.edgeRepo.ListSubscribedChannels(ctx, subscriberID)
	if err != nil {
		return nil, err
	}
	count, err := s.edgeRepo.CountByActor(ctx, subscriberID, model.KindSubscription)
	if err != nil {
		return nil, err
	}

	return &SubscribedChannelList{TotalSubscribedTo: count, Channels: channels}, nil
}

// LikedVideos lists the videos a user has liked, joined with a projection of
// each video.
func (s *StatsService) LikedVideos(ctx context.Context, actorID uuid.UUID) ([]*model.LikedVideo, error) {
	return s.edgeRepo.ListLikedVideos(ctx, actorID)
}

// ChannelStats assembles the dashboard rollup for a channel: published video
// count, subscriber count, total views and total likes across the channel's
// videos. A channel with zero videos yields zeros, not errors.
func (s *StatsService) ChannelStats(ctx context.Context, channelID uuid.UUID) (*model.ChannelStats, error) {
	exists, err := s.userRepo.ExistsByID(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrChannelNotFound
	}

	totalVideos, err := s.videoRepo.CountPublishedByOwner(ctx, channelID)
	if err != nil {
		return nil, err
	}

	totalSubscribers, err := s.edgeRepo.CountByTarget(ctx, channelID, model.KindSubscription)
	if err != nil {
		return nil, err
	}

	totalViews, err := s.videoRepo.SumViewsByOwner(ctx, channelID)
	if err != nil {
		return nil, err
	}

	// Two-hop rollup: like edge -> video -> owner.
	totalLikes, err := s.edgeRepo.CountLikesOnOwnedVideos(ctx, channelID)
	if err != nil {
		return nil, err
	}

	logger.Log.WithField("channel_id", channelID).Info("Channel stats computed")

	return &model.ChannelStats{
		TotalVideos:      totalVideos,
		TotalSubscribers: totalSubscribers,
		TotalViews:       totalViews,
		TotalLikes:       totalLikes,
	}, nil
}
