package service

import (
	"context"
	"database/sql"
	"go-vidshare-api/model"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPlaylistService_AddVideo(t *testing.T) {
	ownerID := uuid.New()
	playlistID := uuid.New()
	videoID := uuid.New()

	ownedPlaylist := &model.Playlist{ID: playlistID, OwnerID: ownerID, Name: "Favorites"}

	t.Run("success", func(t *testing.T) {
		playlistRepo := new(mockPlaylistRepo)
		videoRepo := new(mockVideoRepo)
		playlistRepo.On("GetPlaylistByID", mock.Anything, playlistID).Return(ownedPlaylist, nil).Once()
		videoRepo.On("ExistsByID", mock.Anything, videoID).Return(true, nil).Once()
		playlistRepo.On("AddVideo", mock.Anything, playlistID, videoID).Return(true, nil).Once()

		svc := NewPlaylistService(playlistRepo, videoRepo, new(mockUserRepo))
		err := svc.AddVideo(context.Background(), ownerID, playlistID, videoID)

		assert.NoError(t, err)
		playlistRepo.AssertExpectations(t)
	})

	t.Run("duplicate entry", func(t *testing.T) {
		playlistRepo := new(mockPlaylistRepo)
		videoRepo := new(mockVideoRepo)
		playlistRepo.On("GetPlaylistByID", mock.Anything, playlistID).Return(ownedPlaylist, nil).Once()
		videoRepo.On("ExistsByID", mock.Anything, videoID).Return(true, nil).Once()
		playlistRepo.On("AddVideo", mock.Anything, playlistID, videoID).Return(false, nil).Once()

		svc := NewPlaylistService(playlistRepo, videoRepo, new(mockUserRepo))
		err := svc.AddVideo(context.Background(), ownerID, playlistID, videoID)

		assert.ErrorIs(t, err, ErrDuplicatePlaylistEntry)
	})

	t.Run("unknown video", func(t *testing.T) {
		playlistRepo := new(mockPlaylistRepo)
		videoRepo := new(mockVideoRepo)
		playlistRepo.On("GetPlaylistByID", mock.Anything, playlistID).Return(ownedPlaylist, nil).Once()
		videoRepo.On("ExistsByID", mock.Anything, videoID).Return(false, nil).Once()

		svc := NewPlaylistService(playlistRepo, videoRepo, new(mockUserRepo))
		err := svc.AddVideo(context.Background(), ownerID, playlistID, videoID)

		assert.ErrorIs(t, err, ErrVideoNotFound)
		playlistRepo.AssertNotCalled(t, "AddVideo")
	})

	t.Run("not the owner", func(t *testing.T) {
		playlistRepo := new(mockPlaylistRepo)
		videoRepo := new(mockVideoRepo)
		playlistRepo.On("GetPlaylistByID", mock.Anything, playlistID).Return(ownedPlaylist, nil).Once()

		svc := NewPlaylistService(playlistRepo, videoRepo, new(mockUserRepo))
		err := svc.AddVideo(context.Background(), uuid.New(), playlistID, videoID)

		assert.ErrorIs(t, err, ErrPermissionDenied)
		playlistRepo.AssertNotCalled(t, "AddVideo")
	})
}

func TestPlaylistService_RemoveVideo(t *testing.T) {
	ownerID := uuid.New()
	playlistID := uuid.New()
	videoID := uuid.New()

	ownedPlaylist := &model.Playlist{ID: playlistID, OwnerID: ownerID, Name: "Favorites"}

	t.Run("missing entry", func(t *testing.T) {
		playlistRepo := new(mockPlaylistRepo)
		playlistRepo.On("GetPlaylistByID", mock.Anything, playlistID).Return(ownedPlaylist, nil).Once()
		playlistRepo.On("RemoveVideo", mock.Anything, playlistID, videoID).Return(false, nil).Once()

		svc := NewPlaylistService(playlistRepo, new(mockVideoRepo), new(mockUserRepo))
		err := svc.RemoveVideo(context.Background(), ownerID, playlistID, videoID)

		assert.ErrorIs(t, err, ErrPlaylistEntryNotFound)
	})

	t.Run("success", func(t *testing.T) {
		playlistRepo := new(mockPlaylistRepo)
		playlistRepo.On("GetPlaylistByID", mock.Anything, playlistID).Return(ownedPlaylist, nil).Once()
		playlistRepo.On("RemoveVideo", mock.Anything, playlistID, videoID).Return(true, nil).Once()

		svc := NewPlaylistService(playlistRepo, new(mockVideoRepo), new(mockUserRepo))
		err := svc.RemoveVideo(context.Background(), ownerID, playlistID, videoID)

		assert.NoError(t, err)
	})
}

func TestPlaylistService_Get(t *testing.T) {
	playlistID := uuid.New()

	t.Run("resolves videos", func(t *testing.T) {
		playlistRepo := new(mockPlaylistRepo)
		playlistRepo.On("GetPlaylistByID", mock.Anything, playlistID).
			Return(&model.Playlist{ID: playlistID, Name: "Watch later"}, nil).Once()
		playlistRepo.On("ListVideos", mock.Anything, playlistID).
			Return([]*model.Video{{Title: "First"}, {Title: "Second"}}, nil).Once()

		svc := NewPlaylistService(playlistRepo, new(mockVideoRepo), new(mockUserRepo))
		playlist, err := svc.Get(context.Background(), playlistID)

		assert.NoError(t, err)
		assert.Len(t, playlist.Videos, 2)
	})

	t.Run("unknown playlist", func(t *testing.T) {
		playlistRepo := new(mockPlaylistRepo)
		playlistRepo.On("GetPlaylistByID", mock.Anything, playlistID).Return(nil, sql.ErrNoRows).Once()

		svc := NewPlaylistService(playlistRepo, new(mockVideoRepo), new(mockUserRepo))
		_, err := svc.Get(context.Background(), playlistID)

		assert.ErrorIs(t, err, ErrPlaylistNotFound)
	})
}
