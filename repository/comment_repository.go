package repository

import (
	"context"
	"database/sql"
	"go-vidshare-api/logger"
	"go-vidshare-api/model"

	"github.com/google/uuid"
)

// ICommentRepository defines the contract for comment database operations.
type ICommentRepository interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetCommentByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ListByVideo(ctx context.Context, videoID uuid.UUID) ([]*model.Comment, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string) (*model.Comment, error)
	DeleteComment(ctx context.Context, tx *sql.Tx, id uuid.UUID) error
	ListIDsByVideo(ctx context.Context, tx *sql.Tx, videoID uuid.UUID) ([]uuid.UUID, error)
	DeleteByVideo(ctx context.Context, tx *sql.Tx, videoID uuid.UUID) error
}

// CommentRepository implements ICommentRepository.
type CommentRepository struct {
	DB *sql.DB
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

const commentColumns = `id, video_id, owner_id, content, created_at, updated_at`

func (r *CommentRepository) CreateComment(ctx context.Context, comment *model.Comment) error {
	query := `INSERT INTO comments (video_id, owner_id, content) VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`
	err := r.DB.QueryRowContext(ctx, query, comment.VideoID, comment.OwnerID, comment.Content).
		Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute create comment query")
		return err
	}
	return nil
}

func (r *CommentRepository) GetCommentByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	c := &model.Comment{}
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.VideoID, &c.OwnerID, &c.Content, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CommentRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM comments WHERE id = $1)`
	if err := r.DB.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		logger.Log.WithError(err).WithField("comment_id", id).Error("Failed to execute comment existence query")
		return false, err
	}
	return exists, nil
}

func (r *CommentRepository) ListByVideo(ctx context.Context, videoID uuid.UUID) ([]*model.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE video_id = $1 ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, videoID)
	if err != nil {
		logger.Log.WithError(err).WithField("video_id", videoID).Error("Failed to execute list comments query")
		return nil, err
	}
	defer rows.Close()

	var comments []*model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.VideoID, &c.OwnerID, &c.Content, &c.CreatedAt, &c.UpdatedAt); err != nil {
			logger.Log.WithError(err).Error("Failed to scan comment row")
			return nil, err
		}
		comments = append(comments, &c)
	}
	return comments, rows.Err()
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*model.Comment, error) {
	c := &model.Comment{}
	query := `UPDATE comments SET content = $1, updated_at = now() WHERE id = $2 RETURNING ` + commentColumns
	err := r.DB.QueryRowContext(ctx, query, content, id).
		Scan(&c.ID, &c.VideoID, &c.OwnerID, &c.Content, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteComment removes a single comment inside the caller's transaction,
// which is also responsible for removing the comment's like edges.
func (r *CommentRepository) DeleteComment(ctx context.Context, tx *sql.Tx, id uuid.UUID) error {
	res, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		logger.Log.WithError(err).WithField("comment_id", id).Error("Failed to execute delete comment query")
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

// ListIDsByVideo returns the IDs of every comment on a video, read inside the
// cascade transaction so the like-edge cleanup sees a consistent set.
func (r *CommentRepository) ListIDsByVideo(ctx context.Context, tx *sql.Tx, videoID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := tx.QueryContext(ctx, `SELECT id FROM comments WHERE video_id = $1`, videoID)
	if err != nil {
		logger.Log.WithError(err).WithField("video_id", videoID).Error("Failed to execute list comment IDs query")
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *CommentRepository) DeleteByVideo(ctx context.Context, tx *sql.Tx, videoID uuid.UUID) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE video_id = $1`, videoID)
	if err != nil {
		logger.Log.WithError(err).WithField("video_id", videoID).Error("Failed to execute delete comments by video query")
		return err
	}
	return nil
}
