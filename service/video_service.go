// file: service/video_service.go

package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"go-vidshare-api/logger"
	"go-vidshare-api/model"
	"go-vidshare-api/repository"
	"go-vidshare-api/storage"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrPermissionDenied is returned when a user acts on content they don't own.
var ErrPermissionDenied = errors.New("you can only modify your own content")

// VideoUpload describes one incoming multipart file.
type VideoUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// VideoService handles the video lifecycle: publishing to the media store,
// reads with a cache-aside channel listing, and deletion with an explicit
// cascade over comments, like edges and playlist entries.
type VideoService struct {
	db           *sql.DB
	videoRepo    repository.IVideoRepository
	commentRepo  repository.ICommentRepository
	playlistRepo repository.IPlaylistRepository
	edgeRepo     repository.IEdgeRepository
	mediaStore   storage.IMediaStore
	redisClient  *redis.Client
}

func NewVideoService(
	db *sql.DB,
	videoRepo repository.IVideoRepository,
	commentRepo repository.ICommentRepository,
	playlistRepo repository.IPlaylistRepository,
	edgeRepo repository.IEdgeRepository,
	mediaStore storage.IMediaStore,
	redisClient *redis.Client,
) *VideoService {
	return &VideoService{
		db:           db,
		videoRepo:    videoRepo,
		commentRepo:  commentRepo,
		playlistRepo: playlistRepo,
		edgeRepo:     edgeRepo,
		mediaStore:   mediaStore,
		redisClient:  redisClient,
	}
}

func channelVideosKey(channelID uuid.UUID) string {
	return fmt.Sprintf("channel_videos:%s", channelID)
}

func (s *VideoService) invalidateChannelCache(ctx context.Context, channelID uuid.UUID) {
	s.redisClient.Del(ctx, channelVideosKey(channelID))
}

// Publish uploads the video file and thumbnail to the media store and records
// the video. The channel listing cache is invalidated on success.
func (s *VideoService) Publish(ctx context.Context, ownerID uuid.UUID, title, description string, videoFile, thumbnail VideoUpload) (*model.Video, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"owner_id": ownerID,
		"title":    title,
	})
	log.Info("Publishing a new video")

	videoURL, videoKey, err := s.mediaStore.Upload(ctx, "videos", videoFile.Filename, videoFile.ContentType, videoFile.Body)
	if err != nil {
		return nil, fmt.Errorf("could not upload video file: %w", err)
	}

	thumbnailURL, thumbnailKey, err := s.mediaStore.Upload(ctx, "thumbnails", thumbnail.Filename, thumbnail.ContentType, thumbnail.Body)
	if err != nil {
		// Don't leave the video file orphaned in the store.
		if delErr := s.mediaStore.Delete(ctx, videoKey); delErr != nil {
			log.WithError(delErr).Warn("Failed to clean up video file after thumbnail upload failure")
		}
		return nil, fmt.Errorf("could not upload thumbnail: %w", err)
	}

	video := &model.Video{
		OwnerID:      ownerID,
		Title:        title,
		Description:  description,
		VideoURL:     videoURL,
		VideoKey:     videoKey,
		ThumbnailURL: thumbnailURL,
		ThumbnailKey: thumbnailKey,
	}

	if err := s.videoRepo.CreateVideo(ctx, video); err != nil {
		return nil, err
	}

	s.invalidateChannelCache(ctx, ownerID)
	return video, nil
}

// Get returns a video and bumps its view counter.
func (s *VideoService) Get(ctx context.Context, videoID uuid.UUID) (*model.Video, error) {
	video, err := s.videoRepo.GetVideoByID(ctx, videoID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	if err := s.videoRepo.IncrementViews(ctx, videoID); err != nil {
		// A failed counter bump shouldn't fail the read.
		logger.Log.WithError(err).WithField("video_id", videoID).Warn("Failed to increment view counter")
	} else {
		video.Views++
	}

	return video, nil
}

// ListChannelVideos lists a channel's published videos using a cache-aside
// strategy; mutations to the channel's videos invalidate the cached entry.
func (s *VideoService) ListChannelVideos(ctx context.Context, channelID uuid.UUID) ([]*model.Video, error) {
	cacheKey := channelVideosKey(channelID)

	cached, err := s.redisClient.Get(ctx, cacheKey).Result()
	if err == nil {
		var videos []*model.Video
		if err := json.Unmarshal([]byte(cached), &videos); err == nil {
			return videos, nil
		}
	}

	videos, err := s.videoRepo.ListPublishedByOwner(ctx, channelID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(videos); err == nil {
		s.redisClient.Set(ctx, cacheKey, data, 10*time.Minute)
	}

	return videos, nil
}

func (s *VideoService) getOwned(ctx context.Context, userID, videoID uuid.UUID) (*model.Video, error) {
	video, err := s.videoRepo.GetVideoByID(ctx, videoID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	if video.OwnerID != userID {
		return nil, ErrPermissionDenied
	}
	return video, nil
}

func (s *VideoService) UpdateDetails(ctx context.Context, userID, videoID uuid.UUID, req model.UpdateVideoRequest) (*model.Video, error) {
	if _, err := s.getOwned(ctx, userID, videoID); err != nil {
		return nil, err
	}

	video, err := s.videoRepo.UpdateDetails(ctx, videoID, req.Title, req.Description)
	if err != nil {
		return nil, err
	}

	s.invalidateChannelCache(ctx, video.OwnerID)
	return video, nil
}

func (s *VideoService) TogglePublishStatus(ctx context.Context, userID, videoID uuid.UUID) (*model.Video, error) {
	if _, err := s.getOwned(ctx, userID, videoID); err != nil {
		return nil, err
	}

	video, err := s.videoRepo.TogglePublishStatus(ctx, videoID)
	if err != nil {
		return nil, err
	}

	s.invalidateChannelCache(ctx, video.OwnerID)
	return video, nil
}

// Delete removes a video and everything hanging off it in one transaction:
// like edges of its comments, the comments themselves, the video's own like
// edges and its playlist entries. The ledger enforces no cascade of its own,
// so the deleting operation owns this cleanup. Media files are removed
// best-effort after commit.
func (s *VideoService) Delete(ctx context.Context, userID, videoID uuid.UUID) error {
	video, err := s.getOwned(ctx, userID, videoID)
	if err != nil {
		return err
	}

	log := logger.Log.WithFields(logrus.Fields{
		"video_id": videoID,
		"owner_id": userID,
	})
	log.Info("Starting video deletion cascade")

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	commentIDs, err := s.commentRepo.ListIDsByVideo(ctx, tx, videoID)
	if err != nil {
		return err
	}
	for _, commentID := range commentIDs {
		if err := s.edgeRepo.DeleteByTarget(ctx, tx, commentID, model.KindCommentLike); err != nil {
			return err
		}
	}
	if err := s.commentRepo.DeleteByVideo(ctx, tx, videoID); err != nil {
		return err
	}
	if err := s.edgeRepo.DeleteByTarget(ctx, tx, videoID, model.KindVideoLike); err != nil {
		return err
	}
	if err := s.playlistRepo.DeleteVideoEntries(ctx, tx, videoID); err != nil {
		return err
	}
	if err := s.videoRepo.DeleteVideo(ctx, tx, videoID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}

	for _, key := range []string{video.VideoKey, video.ThumbnailKey} {
		if err := s.mediaStore.Delete(ctx, key); err != nil {
			log.WithError(err).WithField("key", key).Warn("Failed to delete media object")
		}
	}

	s.invalidateChannelCache(ctx, video.OwnerID)
	log.Info("Video deleted successfully")
	return nil
}
