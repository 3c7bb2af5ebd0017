package repository

import (
	"context"
	"database/sql"
	"go-vidshare-api/logger"
	"go-vidshare-api/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// IVideoRepository defines the contract for video database operations.
type IVideoRepository interface {
	CreateVideo(ctx context.Context, video *model.Video) error
	GetVideoByID(ctx context.Context, id uuid.UUID) (*model.Video, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ListPublishedByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Video, error)
	CountPublishedByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
	SumViewsByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
	UpdateDetails(ctx context.Context, id uuid.UUID, title, description string) (*model.Video, error)
	TogglePublishStatus(ctx context.Context, id uuid.UUID) (*model.Video, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error
	DeleteVideo(ctx context.Context, tx *sql.Tx, id uuid.UUID) error
}

// VideoRepository implements IVideoRepository.
type VideoRepository struct {
	DB *sql.DB
}

func NewVideoRepository(db *sql.DB) *VideoRepository {
	return &VideoRepository{DB: db}
}

const videoColumns = `id, owner_id, title, description, video_url, video_key, thumbnail_url, thumbnail_key, duration, views, is_published, created_at`

func scanVideo(row *sql.Row) (*model.Video, error) {
	v := &model.Video{}
	err := row.Scan(&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.VideoURL, &v.VideoKey,
		&v.ThumbnailURL, &v.ThumbnailKey, &v.Duration, &v.Views, &v.IsPublished, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *VideoRepository) CreateVideo(ctx context.Context, video *model.Video) error {
	log := logger.Log.WithFields(logrus.Fields{
		"owner_id": video.OwnerID,
		"title":    video.Title,
	})
	log.Info("Executing query to create a new video")

	query := `INSERT INTO videos (owner_id, title, description, video_url, video_key, thumbnail_url, thumbnail_key, duration)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, views, is_published, created_at`
	err := r.DB.QueryRowContext(ctx, query, video.OwnerID, video.Title, video.Description,
		video.VideoURL, video.VideoKey, video.ThumbnailURL, video.ThumbnailKey, video.Duration).
		Scan(&video.ID, &video.Views, &video.IsPublished, &video.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create video query")
		return err
	}
	return nil
}

func (r *VideoRepository) GetVideoByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = $1`
	return scanVideo(r.DB.QueryRowContext(ctx, query, id))
}

func (r *VideoRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM videos WHERE id = $1)`
	if err := r.DB.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		logger.Log.WithError(err).WithField("video_id", id).Error("Failed to execute video existence query")
		return false, err
	}
	return exists, nil
}

func (r *VideoRepository) ListPublishedByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Video, error) {
	log := logger.Log.WithField("owner_id", ownerID)
	log.Info("Executing query to list published videos by owner")

	query := `SELECT ` + videoColumns + ` FROM videos WHERE owner_id = $1 AND is_published ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		log.WithError(err).Error("Failed to execute list videos by owner query")
		return nil, err
	}
	defer rows.Close()

	var videos []*model.Video
	for rows.Next() {
		var v model.Video
		if err := rows.Scan(&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.VideoURL, &v.VideoKey,
			&v.ThumbnailURL, &v.ThumbnailKey, &v.Duration, &v.Views, &v.IsPublished, &v.CreatedAt); err != nil {
			log.WithError(err).Error("Failed to scan video row")
			return nil, err
		}
		videos = append(videos, &v)
	}
	return videos, rows.Err()
}

// CountPublishedByOwner counts a channel's published videos.
func (r *VideoRepository) CountPublishedByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT count(*) FROM videos WHERE owner_id = $1 AND is_published`
	if err := r.DB.QueryRowContext(ctx, query, ownerID).Scan(&count); err != nil {
		logger.Log.WithError(err).WithField("owner_id", ownerID).Error("Failed to execute count videos query")
		return 0, err
	}
	return count, nil
}

// SumViewsByOwner sums view counters across all of a channel's videos.
// COALESCE keeps a channel with zero videos at zero rather than NULL.
func (r *VideoRepository) SumViewsByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var sum int64
	query := `SELECT COALESCE(SUM(views), 0) FROM videos WHERE owner_id = $1`
	if err := r.DB.QueryRowContext(ctx, query, ownerID).Scan(&sum); err != nil {
		logger.Log.WithError(err).WithField("owner_id", ownerID).Error("Failed to execute sum views query")
		return 0, err
	}
	return sum, nil
}

func (r *VideoRepository) UpdateDetails(ctx context.Context, id uuid.UUID, title, description string) (*model.Video, error) {
	query := `UPDATE videos SET title = $1, description = $2 WHERE id = $3 RETURNING ` + videoColumns
	return scanVideo(r.DB.QueryRowContext(ctx, query, title, description, id))
}

func (r *VideoRepository) TogglePublishStatus(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	query := `UPDATE videos SET is_published = NOT is_published WHERE id = $1 RETURNING ` + videoColumns
	return scanVideo(r.DB.QueryRowContext(ctx, query, id))
}

func (r *VideoRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE videos SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		logger.Log.WithError(err).WithField("video_id", id).Error("Failed to execute increment views query")
	}
	return err
}

// DeleteVideo removes the video row. Runs inside the caller's cascade
// transaction; edges, comments and playlist entries must already be gone.
func (r *VideoRepository) DeleteVideo(ctx context.Context, tx *sql.Tx, id uuid.UUID) error {
	log := logger.Log.WithField("video_id", id)
	log.Info("Executing query to delete video")

	res, err := tx.ExecContext(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete video query")
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
