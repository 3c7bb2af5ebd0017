package repository

import (
	"context"
	"go-vidshare-api/model"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEdgeRepository_Toggle(t *testing.T) {
	actorID := uuid.New()
	targetID := uuid.New()

	t.Run("insert branch reports created", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		dbMock.ExpectQuery(`WITH removed AS`).
			WithArgs(actorID, targetID, model.KindSubscription).
			WillReturnRows(sqlmock.NewRows([]string{"removed", "created"}).AddRow(0, 1))

		repo := NewEdgeRepository(db)
		outcome, err := repo.Toggle(context.Background(), actorID, targetID, model.KindSubscription)

		assert.NoError(t, err)
		assert.Equal(t, model.ToggleCreated, outcome)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("delete branch reports removed", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		dbMock.ExpectQuery(`WITH removed AS`).
			WithArgs(actorID, targetID, model.KindVideoLike).
			WillReturnRows(sqlmock.NewRows([]string{"removed", "created"}).AddRow(1, 0))

		repo := NewEdgeRepository(db)
		outcome, err := repo.Toggle(context.Background(), actorID, targetID, model.KindVideoLike)

		assert.NoError(t, err)
		assert.Equal(t, model.ToggleRemoved, outcome)
	})

	// A concurrent identical toggle can slip its insert between our delete
	// and insert branches; the unique constraint then suppresses our insert
	// and both counts come back zero.
	t.Run("no-effect toggle reports a conflict", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		dbMock.ExpectQuery(`WITH removed AS`).
			WithArgs(actorID, targetID, model.KindSubscription).
			WillReturnRows(sqlmock.NewRows([]string{"removed", "created"}).AddRow(0, 0))

		repo := NewEdgeRepository(db)
		outcome, err := repo.Toggle(context.Background(), actorID, targetID, model.KindSubscription)

		assert.ErrorIs(t, err, ErrToggleConflict)
		assert.Empty(t, outcome)
	})
}

func TestEdgeRepository_Exists(t *testing.T) {
	actorID := uuid.New()
	targetID := uuid.New()

	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbMock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(actorID, targetID, model.KindSubscription).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	repo := NewEdgeRepository(db)
	exists, err := repo.Exists(context.Background(), actorID, targetID, model.KindSubscription)

	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestEdgeRepository_Counts(t *testing.T) {
	id := uuid.New()

	t.Run("count by target", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		dbMock.ExpectQuery(`SELECT count\(\*\) FROM edges WHERE target_id`).
			WithArgs(id, model.KindSubscription).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

		repo := NewEdgeRepository(db)
		count, err := repo.CountByTarget(context.Background(), id, model.KindSubscription)

		assert.NoError(t, err)
		assert.Equal(t, int64(12), count)
	})

	t.Run("count by actor", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		dbMock.ExpectQuery(`SELECT count\(\*\) FROM edges WHERE actor_id`).
			WithArgs(id, model.KindSubscription).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		repo := NewEdgeRepository(db)
		count, err := repo.CountByActor(context.Background(), id, model.KindSubscription)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("likes across owned videos joins through the videos table", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		dbMock.ExpectQuery(`JOIN videos v ON v.id = e.target_id`).
			WithArgs(model.KindVideoLike, id).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(77))

		repo := NewEdgeRepository(db)
		count, err := repo.CountLikesOnOwnedVideos(context.Background(), id)

		assert.NoError(t, err)
		assert.Equal(t, int64(77), count)
	})
}

func TestEdgeRepository_ListSubscribers(t *testing.T) {
	channelID := uuid.New()

	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"username", "full_name", "avatar_url"}).
		AddRow("alice", "Alice A", "https://cdn.example/a.png").
		AddRow("bob", "Bob B", "https://cdn.example/b.png")
	dbMock.ExpectQuery(`JOIN users u ON u.id = e.actor_id`).
		WithArgs(channelID, model.KindSubscription).
		WillReturnRows(rows)

	repo := NewEdgeRepository(db)
	cards, err := repo.ListSubscribers(context.Background(), channelID)

	assert.NoError(t, err)
	assert.Len(t, cards, 2)
	assert.Equal(t, "alice", cards[0].Username)
	assert.Equal(t, "Bob B", cards[1].FullName)
}

func TestEdgeRepository_DeleteByTarget(t *testing.T) {
	targetID := uuid.New()

	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbMock.ExpectBegin()
	dbMock.ExpectExec(`DELETE FROM edges WHERE target_id`).
		WithArgs(targetID, model.KindCommentLike).
		WillReturnResult(sqlmock.NewResult(0, 4))
	dbMock.ExpectCommit()

	tx, err := db.Begin()
	assert.NoError(t, err)

	repo := NewEdgeRepository(db)
	err = repo.DeleteByTarget(context.Background(), tx, targetID, model.KindCommentLike)

	assert.NoError(t, err)
	assert.NoError(t, tx.Commit())
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
