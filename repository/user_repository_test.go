package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserRepository_SwapRefreshToken(t *testing.T) {
	userID := uuid.New()

	t.Run("swap succeeds when the stored token matches", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		dbMock.ExpectExec(`UPDATE users SET refresh_token = \$1 WHERE id = \$2 AND refresh_token = \$3`).
			WithArgs("new-token", userID, "old-token").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewUserRepository(db)
		swapped, err := repo.SwapRefreshToken(context.Background(), userID, "old-token", "new-token")

		assert.NoError(t, err)
		assert.True(t, swapped)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	// Zero rows means the stored token no longer matches: it was already
	// rotated or the session was revoked. Not an error at this layer.
	t.Run("swap reports false when the stored token differs", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		dbMock.ExpectExec(`UPDATE users SET refresh_token = \$1 WHERE id = \$2 AND refresh_token = \$3`).
			WithArgs("new-token", userID, "stale-token").
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewUserRepository(db)
		swapped, err := repo.SwapRefreshToken(context.Background(), userID, "stale-token", "new-token")

		assert.NoError(t, err)
		assert.False(t, swapped)
	})
}

func TestUserRepository_SetRefreshToken(t *testing.T) {
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		dbMock.ExpectExec(`UPDATE users SET refresh_token = \$1 WHERE id = \$2`).
			WithArgs("token", userID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewUserRepository(db)
		err = repo.SetRefreshToken(context.Background(), userID, "token")

		assert.NoError(t, err)
	})

	t.Run("unknown user yields sql.ErrNoRows", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		dbMock.ExpectExec(`UPDATE users SET refresh_token = \$1 WHERE id = \$2`).
			WithArgs("token", userID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewUserRepository(db)
		err = repo.SetRefreshToken(context.Background(), userID, "token")

		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestUserRepository_ClearRefreshToken(t *testing.T) {
	userID := uuid.New()

	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbMock.ExpectExec(`UPDATE users SET refresh_token = NULL WHERE id = \$1`).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewUserRepository(db)
	err = repo.ClearRefreshToken(context.Background(), userID)

	assert.NoError(t, err)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestUserRepository_ExistsByID(t *testing.T) {
	userID := uuid.New()

	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbMock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	repo := NewUserRepository(db)
	exists, err := repo.ExistsByID(context.Background(), userID)

	assert.NoError(t, err)
	assert.False(t, exists)
}
