package repository

import (
	"context"
	"database/sql"
	"go-vidshare-api/logger"
	"go-vidshare-api/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// IPlaylistRepository defines the contract for playlist database operations.
type IPlaylistRepository interface {
	CreatePlaylist(ctx context.Context, playlist *model.Playlist) error
	GetPlaylistByID(ctx context.Context, id uuid.UUID) (*model.Playlist, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Playlist, error)
	ListVideos(ctx context.Context, playlistID uuid.UUID) ([]*model.Video, error)
	UpdateDetails(ctx context.Context, id uuid.UUID, name, description string) (*model.Playlist, error)
	DeletePlaylist(ctx context.Context, id uuid.UUID) error
	AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) (bool, error)
	RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) (bool, error)
	DeleteVideoEntries(ctx context.Context, tx *sql.Tx, videoID uuid.UUID) error
}

// PlaylistRepository implements IPlaylistRepository.
type PlaylistRepository struct {
	DB *sql.DB
}

func NewPlaylistRepository(db *sql.DB) *PlaylistRepository {
	return &PlaylistRepository{DB: db}
}

const playlistColumns = `id, owner_id, name, description, created_at`

func (r *PlaylistRepository) CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	query := `INSERT INTO playlists (owner_id, name, description) VALUES ($1, $2, $3) RETURNING id, created_at`
	err := r.DB.QueryRowContext(ctx, query, playlist.OwnerID, playlist.Name, playlist.Description).
		Scan(&playlist.ID, &playlist.CreatedAt)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute create playlist query")
		return err
	}
	return nil
}

func (r *PlaylistRepository) GetPlaylistByID(ctx context.Context, id uuid.UUID) (*model.Playlist, error) {
	p := &model.Playlist{}
	query := `SELECT ` + playlistColumns + ` FROM playlists WHERE id = $1`
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PlaylistRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Playlist, error) {
	query := `SELECT ` + playlistColumns + ` FROM playlists WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		logger.Log.WithError(err).WithField("owner_id", ownerID).Error("Failed to execute list playlists query")
		return nil, err
	}
	defer rows.Close()

	var playlists []*model.Playlist
	for rows.Next() {
		var p model.Playlist
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.CreatedAt); err != nil {
			logger.Log.WithError(err).Error("Failed to scan playlist row")
			return nil, err
		}
		playlists = append(playlists, &p)
	}
	return playlists, rows.Err()
}

func (r *PlaylistRepository) ListVideos(ctx context.Context, playlistID uuid.UUID) ([]*model.Video, error) {
	query := `
		SELECT v.id, v.owner_id, v.title, v.description, v.video_url, v.video_key,
		       v.thumbnail_url, v.thumbnail_key, v.duration, v.views, v.is_published, v.created_at
		FROM playlist_videos pv
		JOIN videos v ON v.id = pv.video_id
		WHERE pv.playlist_id = $1
		ORDER BY pv.added_at`
	rows, err := r.DB.QueryContext(ctx, query, playlistID)
	if err != nil {
		logger.Log.WithError(err).WithField("playlist_id", playlistID).Error("Failed to execute list playlist videos query")
		return nil, err
	}
	defer rows.Close()

	var videos []*model.Video
	for rows.Next() {
		var v model.Video
		if err := rows.Scan(&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.VideoURL, &v.VideoKey,
			&v.ThumbnailURL, &v.ThumbnailKey, &v.Duration, &v.Views, &v.IsPublished, &v.CreatedAt); err != nil {
			logger.Log.WithError(err).Error("Failed to scan playlist video row")
			return nil, err
		}
		videos = append(videos, &v)
	}
	return videos, rows.Err()
}

func (r *PlaylistRepository) UpdateDetails(ctx context.Context, id uuid.UUID, name, description string) (*model.Playlist, error) {
	p := &model.Playlist{}
	query := `UPDATE playlists SET name = $1, description = $2 WHERE id = $3 RETURNING ` + playlistColumns
	err := r.DB.QueryRowContext(ctx, query, name, description, id).
		Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PlaylistRepository) DeletePlaylist(ctx context.Context, id uuid.UUID) error {
	log := logger.Log.WithField("playlist_id", id)
	log.Info("Executing query to delete playlist")

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM playlist_videos WHERE playlist_id = $1`, id); err != nil {
		log.WithError(err).Error("Failed to delete playlist entries")
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete playlist query")
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return tx.Commit()
}

// AddVideo inserts a playlist entry; ON CONFLICT DO NOTHING makes the insert
// idempotent and the returned bool reports whether a new entry was added.
func (r *PlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) (bool, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"playlist_id": playlistID,
		"video_id":    videoID,
	})
	log.Info("Executing query to add video to playlist")

	query := `INSERT INTO playlist_videos (playlist_id, video_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	res, err := r.DB.ExecContext(ctx, query, playlistID, videoID)
	if err != nil {
		log.WithError(err).Error("Failed to execute add video to playlist query")
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}

func (r *PlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) (bool, error) {
	query := `DELETE FROM playlist_videos WHERE playlist_id = $1 AND video_id = $2`
	res, err := r.DB.ExecContext(ctx, query, playlistID, videoID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute remove video from playlist query")
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}

// DeleteVideoEntries removes a video from every playlist, as part of the
// video deletion cascade.
func (r *PlaylistRepository) DeleteVideoEntries(ctx context.Context, tx *sql.Tx, videoID uuid.UUID) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM playlist_videos WHERE video_id = $1`, videoID)
	if err != nil {
		logger.Log.WithError(err).WithField("video_id", videoID).Error("Failed to execute delete playlist entries query")
		return err
	}
	return nil
}
