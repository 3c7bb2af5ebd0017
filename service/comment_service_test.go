package service

import (
	"context"
	"database/sql"
	"go-vidshare-api/model"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCommentService_Add(t *testing.T) {
	userID := uuid.New()
	videoID := uuid.New()

	t.Run("success", func(t *testing.T) {
		commentRepo := new(mockCommentRepo)
		videoRepo := new(mockVideoRepo)
		videoRepo.On("ExistsByID", mock.Anything, videoID).Return(true, nil).Once()
		commentRepo.On("CreateComment", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(nil).Once()

		svc := NewCommentService(nil, commentRepo, videoRepo, new(mockEdgeRepo))
		comment, err := svc.Add(context.Background(), userID, videoID, "nice video")

		assert.NoError(t, err)
		assert.Equal(t, userID, comment.OwnerID)
		assert.Equal(t, videoID, comment.VideoID)
	})

	t.Run("unknown video", func(t *testing.T) {
		commentRepo := new(mockCommentRepo)
		videoRepo := new(mockVideoRepo)
		videoRepo.On("ExistsByID", mock.Anything, videoID).Return(false, nil).Once()

		svc := NewCommentService(nil, commentRepo, videoRepo, new(mockEdgeRepo))
		_, err := svc.Add(context.Background(), userID, videoID, "nice video")

		assert.ErrorIs(t, err, ErrVideoNotFound)
		commentRepo.AssertNotCalled(t, "CreateComment")
	})
}

func TestCommentService_Update(t *testing.T) {
	ownerID := uuid.New()
	commentID := uuid.New()

	t.Run("only the owner can edit", func(t *testing.T) {
		commentRepo := new(mockCommentRepo)
		commentRepo.On("GetCommentByID", mock.Anything, commentID).
			Return(&model.Comment{ID: commentID, OwnerID: ownerID}, nil).Once()

		svc := NewCommentService(nil, commentRepo, new(mockVideoRepo), new(mockEdgeRepo))
		_, err := svc.Update(context.Background(), uuid.New(), commentID, "edited")

		assert.ErrorIs(t, err, ErrPermissionDenied)
		commentRepo.AssertNotCalled(t, "UpdateContent")
	})

	t.Run("unknown comment", func(t *testing.T) {
		commentRepo := new(mockCommentRepo)
		commentRepo.On("GetCommentByID", mock.Anything, commentID).Return(nil, sql.ErrNoRows).Once()

		svc := NewCommentService(nil, commentRepo, new(mockVideoRepo), new(mockEdgeRepo))
		_, err := svc.Update(context.Background(), ownerID, commentID, "edited")

		assert.ErrorIs(t, err, ErrCommentNotFound)
	})
}

// Deleting a comment must take its like edges with it in the same transaction.
func TestCommentService_Delete(t *testing.T) {
	ownerID := uuid.New()
	commentID := uuid.New()

	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	commentRepo := new(mockCommentRepo)
	edgeRepo := new(mockEdgeRepo)
	commentRepo.On("GetCommentByID", mock.Anything, commentID).
		Return(&model.Comment{ID: commentID, OwnerID: ownerID}, nil).Once()

	txType := mock.AnythingOfType("*sql.Tx")
	edgeRepo.On("DeleteByTarget", mock.Anything, txType, commentID, model.KindCommentLike).Return(nil).Once()
	commentRepo.On("DeleteComment", mock.Anything, txType, commentID).Return(nil).Once()

	svc := NewCommentService(db, commentRepo, new(mockVideoRepo), edgeRepo)
	err = svc.Delete(context.Background(), ownerID, commentID)

	assert.NoError(t, err)
	assert.NoError(t, dbMock.ExpectationsWereMet())
	commentRepo.AssertExpectations(t)
	edgeRepo.AssertExpectations(t)
}
