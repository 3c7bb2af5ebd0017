package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"go-vidshare-api/logger"
	"go-vidshare-api/model"
	"go-vidshare-api/repository"
	"go-vidshare-api/storage"
	"io"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	ErrUserExists   = errors.New("username or email already registered")
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned for both an unknown account and a
	// wrong password so responses cannot be used to enumerate users.
	ErrInvalidCredentials = errors.New("invalid user credentials")
	ErrIncorrectPassword  = errors.New("incorrect password")
)

const uniqueViolation = "23505"

// UserService handles registration, login and profile management.
type UserService struct {
	userRepo   repository.IUserRepository
	edgeRepo   repository.IEdgeRepository
	auth       *AuthService
	mediaStore storage.IMediaStore
}

func NewUserService(userRepo repository.IUserRepository, edgeRepo repository.IEdgeRepository, auth *AuthService, mediaStore storage.IMediaStore) *UserService {
	return &UserService{
		userRepo:   userRepo,
		edgeRepo:   edgeRepo,
		auth:       auth,
		mediaStore: mediaStore,
	}
}

// Register creates a new user with a hashed password.
func (s *UserService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	hashedPassword, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: hashedPassword,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrUserExists
		}
		return nil, err
	}

	user.Password = ""
	return user, nil
}

// Login verifies credentials and issues a token pair. Unknown account and
// wrong password are indistinguishable to the caller; the logs tell them
// apart for operators.
func (s *UserService) Login(ctx context.Context, req model.LoginRequest) (*model.User, string, string, error) {
	user, err := s.userRepo.GetUserByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			logger.Log.WithField("username", req.Username).Info("Login attempt for unknown account")
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", err
	}

	if !s.auth.CheckPasswordHash(req.Password, user.Password) {
		logger.Log.WithField("user_id", user.ID).Info("Login attempt with wrong password")
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.auth.IssuePair(ctx, user.ID)
	if err != nil {
		return nil, "", "", err
	}

	user.Password = ""
	user.RefreshToken = ""
	return user, accessToken, refreshToken, nil
}

// Logout revokes the user's refresh token.
func (s *UserService) Logout(ctx context.Context, userID uuid.UUID) error {
	return s.auth.Revoke(ctx, userID)
}

func (s *UserService) GetByID(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.Password = ""
	user.RefreshToken = ""
	return user, nil
}

func (s *UserService) UpdateDetails(ctx context.Context, userID uuid.UUID, req model.UpdateUserRequest) (*model.User, error) {
	user, err := s.userRepo.UpdateDetails(ctx, userID, req.FullName, req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.Password = ""
	user.RefreshToken = ""
	return user, nil
}

func (s *UserService) ChangePassword(ctx context.Context, userID uuid.UUID, req model.ChangePasswordRequest) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrUserNotFound
		}
		return err
	}

	if !s.auth.CheckPasswordHash(req.OldPassword, user.Password) {
		return ErrIncorrectPassword
	}

	hashed, err := s.auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("could not hash password: %w", err)
	}
	return s.userRepo.UpdatePassword(ctx, userID, hashed)
}

// UpdateAvatar uploads the new image and stores its URL on the profile.
func (s *UserService) UpdateAvatar(ctx context.Context, userID uuid.UUID, filename, contentType string, body io.Reader) (*model.User, error) {
	url, _, err := s.mediaStore.Upload(ctx, "avatars", filename, contentType, body)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.UpdateAvatarURL(ctx, userID, url)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.Password = ""
	user.RefreshToken = ""
	return user, nil
}

func (s *UserService) UpdateCoverImage(ctx context.Context, userID uuid.UUID, filename, contentType string, body io.Reader) (*model.User, error) {
	url, _, err := s.mediaStore.Upload(ctx, "covers", filename, contentType, body)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.UpdateCoverImageURL(ctx, userID, url)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.Password = ""
	user.RefreshToken = ""
	return user, nil
}

// ChannelProfile builds the public channel page for a username, including the
// viewer-specific subscription flag. Counts are derived from the ledger at
// query time.
func (s *UserService) ChannelProfile(ctx context.Context, username string, viewerID uuid.UUID) (*model.ChannelProfile, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrChannelNotFound
		}
		return nil, err
	}

	subscriberCount, err := s.edgeRepo.CountByTarget(ctx, user.ID, model.KindSubscription)
	if err != nil {
		return nil, err
	}
	subscribedToCount, err := s.edgeRepo.CountByActor(ctx, user.ID, model.KindSubscription)
	if err != nil {
		return nil, err
	}
	isSubscribed, err := s.edgeRepo.Exists(ctx, viewerID, user.ID, model.KindSubscription)
	if err != nil {
		return nil, err
	}

	return &model.ChannelProfile{
		ID:                user.ID,
		Username:          user.Username,
		FullName:          user.FullName,
		Email:             user.Email,
		AvatarURL:         user.AvatarURL,
		CoverImageURL:     user.CoverImageURL,
		SubscriberCount:   subscriberCount,
		SubscribedToCount: subscribedToCount,
		IsSubscribed:      isSubscribed,
		CreatedAt:         user.CreatedAt,
	}, nil
}
