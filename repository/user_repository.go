package repository

import (
	"context"
	"database/sql"
	"go-vidshare-api/logger"
	"go-vidshare-api/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// IUserRepository defines the contract for user database operations,
// including the credential-store side of session management.
type IUserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetUserByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	UpdateDetails(ctx context.Context, id uuid.UUID, fullName, email string) (*model.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error
	UpdateAvatarURL(ctx context.Context, id uuid.UUID, url string) (*model.User, error)
	UpdateCoverImageURL(ctx context.Context, id uuid.UUID, url string) (*model.User, error)
	SetRefreshToken(ctx context.Context, id uuid.UUID, token string) error
	SwapRefreshToken(ctx context.Context, id uuid.UUID, oldToken, newToken string) (bool, error)
	ClearRefreshToken(ctx context.Context, id uuid.UUID) error
}

// UserRepository implements IUserRepository.
type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

const userColumns = `id, username, email, full_name, password, avatar_url, cover_image_url, COALESCE(refresh_token, ''), created_at`

func scanUser(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.FullName, &user.Password,
		&user.AvatarURL, &user.CoverImageURL, &user.RefreshToken, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) error {
	log := logger.Log.WithFields(logrus.Fields{
		"username": user.Username,
		"email":    user.Email,
	})
	log.Info("Executing query to create a new user")

	query := `INSERT INTO users (username, email, full_name, password, avatar_url, cover_image_url)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	err := r.DB.QueryRowContext(ctx, query, user.Username, user.Email, user.FullName,
		user.Password, user.AvatarURL, user.CoverImageURL).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create user query")
		return err
	}
	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.DB.QueryRowContext(ctx, query, id))
}

// GetUserByUsernameOrEmail finds an account by either identifier; used by login.
func (r *UserRepository) GetUserByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email = $2`
	return scanUser(r.DB.QueryRowContext(ctx, query, username, email))
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(r.DB.QueryRowContext(ctx, query, username))
}

func (r *UserRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`
	if err := r.DB.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		logger.Log.WithError(err).WithField("user_id", id).Error("Failed to execute user existence query")
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) UpdateDetails(ctx context.Context, id uuid.UUID, fullName, email string) (*model.User, error) {
	query := `UPDATE users SET full_name = $1, email = $2 WHERE id = $3 RETURNING ` + userColumns
	return scanUser(r.DB.QueryRowContext(ctx, query, fullName, email, id))
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE users SET password = $1 WHERE id = $2`, hashedPassword, id)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", id).Error("Failed to execute update password query")
	}
	return err
}

func (r *UserRepository) UpdateAvatarURL(ctx context.Context, id uuid.UUID, url string) (*model.User, error) {
	query := `UPDATE users SET avatar_url = $1 WHERE id = $2 RETURNING ` + userColumns
	return scanUser(r.DB.QueryRowContext(ctx, query, url, id))
}

func (r *UserRepository) UpdateCoverImageURL(ctx context.Context, id uuid.UUID, url string) (*model.User, error) {
	query := `UPDATE users SET cover_image_url = $1 WHERE id = $2 RETURNING ` + userColumns
	return scanUser(r.DB.QueryRowContext(ctx, query, url, id))
}

// SetRefreshToken overwrites the user's current refresh token. Any previously
// issued refresh token becomes unusable for rotation.
func (r *UserRepository) SetRefreshToken(ctx context.Context, id uuid.UUID, token string) error {
	log := logger.Log.WithField("user_id", id)
	log.Info("Executing query to set refresh token")

	res, err := r.DB.ExecContext(ctx, `UPDATE users SET refresh_token = $1 WHERE id = $2`, token, id)
	if err != nil {
		log.WithError(err).Error("Failed to execute set refresh token query")
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

// SwapRefreshToken replaces the stored refresh token only if it still equals
// oldToken. The compare-and-swap runs as a single conditional UPDATE so two
// concurrent rotations can never both succeed. Returns false when the stored
// value did not match (already rotated, revoked, or never issued).
func (r *UserRepository) SwapRefreshToken(ctx context.Context, id uuid.UUID, oldToken, newToken string) (bool, error) {
	log := logger.Log.WithField("user_id", id)
	log.Info("Executing compare-and-swap of refresh token")

	query := `UPDATE users SET refresh_token = $1 WHERE id = $2 AND refresh_token = $3`
	res, err := r.DB.ExecContext(ctx, query, newToken, id, oldToken)
	if err != nil {
		log.WithError(err).Error("Failed to execute refresh token swap query")
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}

// ClearRefreshToken revokes the user's session by nulling the stored token.
func (r *UserRepository) ClearRefreshToken(ctx context.Context, id uuid.UUID) error {
	log := logger.Log.WithField("user_id", id)
	log.Info("Executing query to clear refresh token")

	_, err := r.DB.ExecContext(ctx, `UPDATE users SET refresh_token = NULL WHERE id = $1`, id)
	if err != nil {
		log.WithError(err).Error("Failed to execute clear refresh token query")
		return err
	}
	return nil
}
