package service

import (
	"context"
	"database/sql"
	"go-vidshare-api/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *mockUserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *mockUserRepo) GetUserByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error) {
	args := m.Called(ctx, username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *mockUserRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *mockUserRepo) UpdateDetails(ctx context.Context, id uuid.UUID, fullName, email string) (*model.User, error) {
	args := m.Called(ctx, id, fullName, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *mockUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error {
	args := m.Called(ctx, id, hashedPassword)
	return args.Error(0)
}
func (m *mockUserRepo) UpdateAvatarURL(ctx context.Context, id uuid.UUID, url string) (*model.User, error) {
	args := m.Called(ctx, id, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *mockUserRepo) UpdateCoverImageURL(ctx context.Context, id uuid.UUID, url string) (*model.User, error) {
	args := m.Called(ctx, id, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *mockUserRepo) SetRefreshToken(ctx context.Context, id uuid.UUID, token string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}
func (m *mockUserRepo) SwapRefreshToken(ctx context.Context, id uuid.UUID, oldToken, newToken string) (bool, error) {
	args := m.Called(ctx, id, oldToken, newToken)
	return args.Bool(0), args.Error(1)
}
func (m *mockUserRepo) ClearRefreshToken(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockEdgeRepo struct{ mock.Mock }

func (m *mockEdgeRepo) Toggle(ctx context.Context, actorID, targetID uuid.UUID, kind model.EdgeKind) (model.ToggleOutcome, error) {
	args := m.Called(ctx, actorID, targetID, kind)
	return args.Get(0).(model.ToggleOutcome), args.Error(1)
}
func (m *mockEdgeRepo) Exists(ctx context.Context, actorID, targetID uuid.UUID, kind model.EdgeKind) (bool, error) {
	args := m.Called(ctx, actorID, targetID, kind)
	return args.Bool(0), args.Error(1)
}
func (m *mockEdgeRepo) CountByTarget(ctx context.Context, targetID uuid.UUID, kind model.EdgeKind) (int64, error) {
	args := m.Called(ctx, targetID, kind)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockEdgeRepo) CountByActor(ctx context.Context, actorID uuid.UUID, kind model.EdgeKind) (int64, error) {
	args := m.Called(ctx, actorID, kind)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockEdgeRepo) ListSubscribers(ctx context.Context, channelID uuid.UUID) ([]*model.ChannelCard, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ChannelCard), args.Error(1)
}
func (m *mockEdgeRepo) ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*model.ChannelCard, error) {
	args := m.Called(ctx, subscriberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ChannelCard), args.Error(1)
}
func (m *mockEdgeRepo) ListLikedVideos(ctx context.Context, actorID uuid.UUID) ([]*model.LikedVideo, error) {
	args := m.Called(ctx, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.LikedVideo), args.Error(1)
}
func (m *mockEdgeRepo) CountLikesOnOwnedVideos(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockEdgeRepo) DeleteByTarget(ctx context.Context, tx *sql.Tx, targetID uuid.UUID, kind model.EdgeKind) error {
	args := m.Called(ctx, tx, targetID, kind)
	return args.Error(0)
}

type mockVideoRepo struct{ mock.Mock }

func (m *mockVideoRepo) CreateVideo(ctx context.Context, video *model.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}
func (m *mockVideoRepo) GetVideoByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}
func (m *mockVideoRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *mockVideoRepo) ListPublishedByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Video, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Video), args.Error(1)
}
func (m *mockVideoRepo) CountPublishedByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockVideoRepo) SumViewsByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockVideoRepo) UpdateDetails(ctx context.Context, id uuid.UUID, title, description string) (*model.Video, error) {
	args := m.Called(ctx, id, title, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}
func (m *mockVideoRepo) TogglePublishStatus(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}
func (m *mockVideoRepo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *mockVideoRepo) DeleteVideo(ctx context.Context, tx *sql.Tx, id uuid.UUID) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

type mockCommentRepo struct{ mock.Mock }

func (m *mockCommentRepo) CreateComment(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}
func (m *mockCommentRepo) GetCommentByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}
func (m *mockCommentRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *mockCommentRepo) ListByVideo(ctx context.Context, videoID uuid.UUID) ([]*model.Comment, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Comment), args.Error(1)
}
func (m *mockCommentRepo) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*model.Comment, error) {
	args := m.Called(ctx, id, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}
func (m *mockCommentRepo) DeleteComment(ctx context.Context, tx *sql.Tx, id uuid.UUID) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}
func (m *mockCommentRepo) ListIDsByVideo(ctx context.Context, tx *sql.Tx, videoID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, tx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}
func (m *mockCommentRepo) DeleteByVideo(ctx context.Context, tx *sql.Tx, videoID uuid.UUID) error {
	args := m.Called(ctx, tx, videoID)
	return args.Error(0)
}

type mockPlaylistRepo struct{ mock.Mock }

func (m *mockPlaylistRepo) CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	args := m.Called(ctx, playlist)
	return args.Error(0)
}
func (m *mockPlaylistRepo) GetPlaylistByID(ctx context.Context, id uuid.UUID) (*model.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Playlist), args.Error(1)
}
func (m *mockPlaylistRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Playlist, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Playlist), args.Error(1)
}
func (m *mockPlaylistRepo) ListVideos(ctx context.Context, playlistID uuid.UUID) ([]*model.Video, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Video), args.Error(1)
}
func (m *mockPlaylistRepo) UpdateDetails(ctx context.Context, id uuid.UUID, name, description string) (*model.Playlist, error) {
	args := m.Called(ctx, id, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Playlist), args.Error(1)
}
func (m *mockPlaylistRepo) DeletePlaylist(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *mockPlaylistRepo) AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) (bool, error) {
	args := m.Called(ctx, playlistID, videoID)
	return args.Bool(0), args.Error(1)
}
func (m *mockPlaylistRepo) RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) (bool, error) {
	args := m.Called(ctx, playlistID, videoID)
	return args.Bool(0), args.Error(1)
}
func (m *mockPlaylistRepo) DeleteVideoEntries(ctx context.Context, tx *sql.Tx, videoID uuid.UUID) error {
	args := m.Called(ctx, tx, videoID)
	return args.Error(0)
}

type mockTweetRepo struct{ mock.Mock }

func (m *mockTweetRepo) CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	args := m.Called(ctx, tweet)
	return args.Error(0)
}
func (m *mockTweetRepo) GetTweetByID(ctx context.Context, id uuid.UUID) (*model.Tweet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tweet), args.Error(1)
}
func (m *mockTweetRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *mockTweetRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Tweet, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Tweet), args.Error(1)
}
func (m *mockTweetRepo) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*model.Tweet, error) {
	args := m.Called(ctx, id, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tweet), args.Error(1)
}
func (m *mockTweetRepo) DeleteTweet(ctx context.Context, tx *sql.Tx, id uuid.UUID) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}
