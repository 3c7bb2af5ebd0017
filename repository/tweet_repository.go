package repository

import (
	"context"
	"database/sql"
	"go-vidshare-api/logger"
	"go-vidshare-api/model"

	"github.com/google/uuid"
)

// ITweetRepository defines the contract for tweet database operations.
type ITweetRepository interface {
	CreateTweet(ctx context.Context, tweet *model.Tweet) error
	GetTweetByID(ctx context.Context, id uuid.UUID) (*model.Tweet, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Tweet, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string) (*model.Tweet, error)
	DeleteTweet(ctx context.Context, tx *sql.Tx, id uuid.UUID) error
}

// TweetRepository implements ITweetRepository.
type TweetRepository struct {
	DB *sql.DB
}

func NewTweetRepository(db *sql.DB) *TweetRepository {
	return &TweetRepository{DB: db}
}

func (r *TweetRepository) CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	query := `INSERT INTO tweets (owner_id, content) VALUES ($1, $2) RETURNING id, created_at`
	err := r.DB.QueryRowContext(ctx, query, tweet.OwnerID, tweet.Content).Scan(&tweet.ID, &tweet.CreatedAt)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute create tweet query")
		return err
	}
	return nil
}

func (r *TweetRepository) GetTweetByID(ctx context.Context, id uuid.UUID) (*model.Tweet, error) {
	t := &model.Tweet{}
	query := `SELECT id, owner_id, content, created_at FROM tweets WHERE id = $1`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.OwnerID, &t.Content, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TweetRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM tweets WHERE id = $1)`
	if err := r.DB.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		logger.Log.WithError(err).WithField("tweet_id", id).Error("Failed to execute tweet existence query")
		return false, err
	}
	return exists, nil
}

func (r *TweetRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Tweet, error) {
	query := `SELECT id, owner_id, content, created_at FROM tweets WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		logger.Log.WithError(err).WithField("owner_id", ownerID).Error("Failed to execute list tweets query")
		return nil, err
	}
	defer rows.Close()

	var tweets []*model.Tweet
	for rows.Next() {
		var t model.Tweet
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Content, &t.CreatedAt); err != nil {
			logger.Log.WithError(err).Error("Failed to scan tweet row")
			return nil, err
		}
		tweets = append(tweets, &t)
	}
	return tweets, rows.Err()
}

func (r *TweetRepository) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*model.Tweet, error) {
	t := &model.Tweet{}
	query := `UPDATE tweets SET content = $1 WHERE id = $2 RETURNING id, owner_id, content, created_at`
	err := r.DB.QueryRowContext(ctx, query, content, id).Scan(&t.ID, &t.OwnerID, &t.Content, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteTweet removes the tweet inside the caller's transaction; the caller
// also removes the tweet's like edges.
func (r *TweetRepository) DeleteTweet(ctx context.Context, tx *sql.Tx, id uuid.UUID) error {
	res, err := tx.ExecContext(ctx, `DELETE FROM tweets WHERE id = $1`, id)
	if err != nil {
		logger.Log.WithError(err).WithField("tweet_id", id).Error("Failed to execute delete tweet query")
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
