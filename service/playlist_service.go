package service

import (
	"context"
	"database/sql"
	"errors"
	"go-vidshare-api/model"
	"go-vidshare-api/repository"

	"github.com/google/uuid"
)

var (
	ErrPlaylistNotFound       = errors.New("playlist not found")
	ErrDuplicatePlaylistEntry = errors.New("video already in playlist")
	ErrPlaylistEntryNotFound  = errors.New("video not in playlist")
)

// PlaylistService handles playlist CRUD and membership.
type PlaylistService struct {
	playlistRepo repository.IPlaylistRepository
	videoRepo    repository.IVideoRepository
	userRepo     repository.IUserRepository
}

func NewPlaylistService(playlistRepo repository.IPlaylistRepository, videoRepo repository.IVideoRepository, userRepo repository.IUserRepository) *PlaylistService {
	return &PlaylistService{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
		userRepo:     userRepo,
	}
}

func (s *PlaylistService) Create(ctx context.Context, userID uuid.UUID, req model.PlaylistRequest) (*model.Playlist, error) {
	playlist := &model.Playlist{
		OwnerID:     userID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.playlistRepo.CreatePlaylist(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) ListForUser(ctx context.Context, ownerID uuid.UUID) ([]*model.Playlist, error) {
	exists, err := s.userRepo.ExistsByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}
	return s.playlistRepo.ListByOwner(ctx, ownerID)
}

// Get returns the playlist with its videos resolved.
func (s *PlaylistService) Get(ctx context.Context, playlistID uuid.UUID) (*model.Playlist, error) {
	playlist, err := s.playlistRepo.GetPlaylistByID(ctx, playlistID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrPlaylistNotFound
		}
		return nil, err
	}

	videos, err := s.playlistRepo.ListVideos(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	playlist.Videos = videos
	return playlist, nil
}

func (s *PlaylistService) getOwned(ctx context.Context, userID, playlistID uuid.UUID) (*model.Playlist, error) {
	playlist, err := s.playlistRepo.GetPlaylistByID(ctx, playlistID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrPlaylistNotFound
		}
		return nil, err
	}
	if playlist.OwnerID != userID {
		return nil, ErrPermissionDenied
	}
	return playlist, nil
}

func (s *PlaylistService) Update(ctx context.Context, userID, playlistID uuid.UUID, req model.PlaylistRequest) (*model.Playlist, error) {
	if _, err := s.getOwned(ctx, userID, playlistID); err != nil {
		return nil, err
	}
	return s.playlistRepo.UpdateDetails(ctx, playlistID, req.Name, req.Description)
}

func (s *PlaylistService) Delete(ctx context.Context, userID, playlistID uuid.UUID) error {
	if _, err := s.getOwned(ctx, userID, playlistID); err != nil {
		return err
	}
	return s.playlistRepo.DeletePlaylist(ctx, playlistID)
}

func (s *PlaylistService) AddVideo(ctx context.Context, userID, playlistID, videoID uuid.UUID) error {
	if _, err := s.getOwned(ctx, userID, playlistID); err != nil {
		return err
	}

	exists, err := s.videoRepo.ExistsByID(ctx, videoID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrVideoNotFound
	}

	added, err := s.playlistRepo.AddVideo(ctx, playlistID, videoID)
	if err != nil {
		return err
	}
	if !added {
		return ErrDuplicatePlaylistEntry
	}
	return nil
}

func (s *PlaylistService) RemoveVideo(ctx context.Context, userID, playlistID, videoID uuid.UUID) error {
	if _, err := s.getOwned(ctx, userID, playlistID); err != nil {
		return err
	}

	removed, err := s.playlistRepo.RemoveVideo(ctx, playlistID, videoID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrPlaylistEntryNotFound
	}
	return nil
}
