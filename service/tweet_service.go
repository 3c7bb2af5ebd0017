package service

import (
	"context"
	"database/sql"
	"fmt"
	"go-vidshare-api/model"
	"go-vidshare-api/repository"

	"github.com/google/uuid"
)

// TweetService handles tweet CRUD. Deleting a tweet removes its like edges in
// the same transaction.
type TweetService struct {
	db        *sql.DB
	tweetRepo repository.ITweetRepository
	userRepo  repository.IUserRepository
	edgeRepo  repository.IEdgeRepository
}

func NewTweetService(db *sql.DB, tweetRepo repository.ITweetRepository, userRepo repository.IUserRepository, edgeRepo repository.IEdgeRepository) *TweetService {
	return &TweetService{
		db:        db,
		tweetRepo: tweetRepo,
		userRepo:  userRepo,
		edgeRepo:  edgeRepo,
	}
}

func (s *TweetService) Create(ctx context.Context, userID uuid.UUID, content string) (*model.Tweet, error) {
	tweet := &model.Tweet{
		OwnerID: userID,
		Content: content,
	}
	if err := s.tweetRepo.CreateTweet(ctx, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

func (s *TweetService) ListForUser(ctx context.Context, ownerID uuid.UUID) ([]*model.Tweet, error) {
	exists, err := s.userRepo.ExistsByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}
	return s.tweetRepo.ListByOwner(ctx, ownerID)
}

func (s *TweetService) getOwned(ctx context.Context, userID, tweetID uuid.UUID) (*model.Tweet, error) {
	tweet, err := s.tweetRepo.GetTweetByID(ctx, tweetID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTweetNotFound
		}
		return nil, err
	}
	if tweet.OwnerID != userID {
		return nil, ErrPermissionDenied
	}
	return tweet, nil
}

func (s *TweetService) Update(ctx context.Context, userID, tweetID uuid.UUID, content string) (*model.Tweet, error) {
	if _, err := s.getOwned(ctx, userID, tweetID); err != nil {
		return nil, err
	}
	return s.tweetRepo.UpdateContent(ctx, tweetID, content)
}

// Delete removes the tweet and its like edges in one transaction.
func (s *TweetService) Delete(ctx context.Context, userID, tweetID uuid.UUID) error {
	if _, err := s.getOwned(ctx, userID, tweetID); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.edgeRepo.DeleteByTarget(ctx, tx, tweetID, model.KindTweetLike); err != nil {
		return err
	}
	if err := s.tweetRepo.DeleteTweet(ctx, tx, tweetID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}
