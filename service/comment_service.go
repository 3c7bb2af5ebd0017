package service

import (
	"context"
	"database/sql"
	"fmt"
	"go-vidshare-api/model"
	"go-vidshare-api/repository"

	"github.com/google/uuid"
)

// CommentService handles comment CRUD. Deleting a comment removes its like
// edges in the same transaction.
type CommentService struct {
	db          *sql.DB
	commentRepo repository.ICommentRepository
	videoRepo   repository.IVideoRepository
	edgeRepo    repository.IEdgeRepository
}

func NewCommentService(db *sql.DB, commentRepo repository.ICommentRepository, videoRepo repository.IVideoRepository, edgeRepo repository.IEdgeRepository) *CommentService {
	return &CommentService{
		db:          db,
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		edgeRepo:    edgeRepo,
	}
}

func (s *CommentService) Add(ctx context.Context, userID, videoID uuid.UUID, content string) (*model.Comment, error) {
	exists, err := s.videoRepo.ExistsByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrVideoNotFound
	}

	comment := &model.Comment{
		VideoID: videoID,
		OwnerID: userID,
		Content: content,
	}
	if err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) ListForVideo(ctx context.Context, videoID uuid.UUID) ([]*model.Comment, error) {
	exists, err := s.videoRepo.ExistsByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrVideoNotFound
	}
	return s.commentRepo.ListByVideo(ctx, videoID)
}

func (s *CommentService) getOwned(ctx context.Context, userID, commentID uuid.UUID) (*model.Comment, error) {
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	if comment.OwnerID != userID {
		return nil, ErrPermissionDenied
	}
	return comment, nil
}

func (s *CommentService) Update(ctx context.Context, userID, commentID uuid.UUID, content string) (*model.Comment, error) {
	if _, err := s.getOwned(ctx, userID, commentID); err != nil {
		return nil, err
	}
	return s.commentRepo.UpdateContent(ctx, commentID, content)
}

// Delete removes the comment and its like edges in one transaction.
func (s *CommentService) Delete(ctx context.Context, userID, commentID uuid.UUID) error {
	if _, err := s.getOwned(ctx, userID, commentID); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.edgeRepo.DeleteByTarget(ctx, tx, commentID, model.KindCommentLike); err != nil {
		return err
	}
	if err := s.commentRepo.DeleteComment(ctx, tx, commentID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}
