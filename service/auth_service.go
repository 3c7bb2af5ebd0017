package service

import (
	"context"
	"errors"
	"fmt"
	"go-vidshare-api/config"
	"go-vidshare-api/logger"
	"go-vidshare-api/model"
	"go-vidshare-api/repository"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidToken covers bad signatures and expired tokens of either kind.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrTokenReplay means the presented refresh token no longer matches the
	// stored one: it was already rotated, or the session was revoked.
	ErrTokenReplay = errors.New("refresh token already rotated or revoked")
)

func accessKey() []byte {
	return []byte(config.AppConfig.JWT.AccessSecret)
}

func refreshKey() []byte {
	return []byte(config.AppConfig.JWT.RefreshSecret)
}

// AuthService manages the session lifecycle: issuing, verifying, rotating and
// revoking the access/refresh token pair. It is the only writer of the
// refresh-token field on the user record.
type AuthService struct {
	userRepo repository.IUserRepository
}

func NewAuthService(userRepo repository.IUserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", err
	}
	return string(bytes), err
}

func (s *AuthService) CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func (s *AuthService) generateToken(userID uuid.UUID, key []byte, ttl time.Duration) (string, error) {
	claims := &model.AppClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID).Error("Failed to sign JWT")
		return "", fmt.Errorf("failed to sign token string: %w", err)
	}

	return tokenString, nil
}

// IssuePair generates a fresh access/refresh token pair and persists the
// refresh token on the user record, invalidating any previously issued one.
// No tokens are returned unless persistence succeeded.
func (s *AuthService) IssuePair(ctx context.Context, userID uuid.UUID) (accessToken, refreshToken string, err error) {
	jwtCfg := config.AppConfig.JWT

	accessToken, err = s.generateToken(userID, accessKey(), jwtCfg.AccessTTL)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(userID, refreshKey(), jwtCfg.RefreshTTL)
	if err != nil {
		return "", "", err
	}

	if err := s.userRepo.SetRefreshToken(ctx, userID, refreshToken); err != nil {
		return "", "", fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return accessToken, refreshToken, nil
}

// VerifyAccess resolves an access token to a user ID. Purely computational:
// signature and expiry are checked, no store lookup happens on this path.
func (s *AuthService) VerifyAccess(tokenString string) (uuid.UUID, error) {
	claims := &model.AppClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return accessKey(), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	return claims.UserID, nil
}

// Rotate exchanges a refresh token for a new pair. Beyond signature and
// expiry, the old token must byte-match the stored one; the swap itself is a
// compare-and-swap so a replayed token (stolen or already used) fails even
// when two rotations race.
func (s *AuthService) Rotate(ctx context.Context, oldRefreshToken string) (accessToken, refreshToken string, err error) {
	claims := &model.AppClaims{}

	token, err := jwt.ParseWithClaims(oldRefreshToken, claims, func(token *jwt.Token) (interface{}, error) {
		return refreshKey(), nil
	})
	if err != nil || !token.Valid {
		return "", "", ErrInvalidToken
	}

	jwtCfg := config.AppConfig.JWT

	accessToken, err = s.generateToken(claims.UserID, accessKey(), jwtCfg.AccessTTL)
	if err != nil {
		return "", "", err
	}
	refreshToken, err = s.generateToken(claims.UserID, refreshKey(), jwtCfg.RefreshTTL)
	if err != nil {
		return "", "", err
	}

	swapped, err := s.userRepo.SwapRefreshToken(ctx, claims.UserID, oldRefreshToken, refreshToken)
	if err != nil {
		return "", "", fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	if !swapped {
		logger.Log.WithField("user_id", claims.UserID).Warn("Refresh token replay detected")
		return "", "", ErrTokenReplay
	}

	return accessToken, refreshToken, nil
}

// Revoke clears the stored refresh token. Outstanding refresh tokens become
// permanently unusable; already issued access tokens stay valid until expiry.
func (s *AuthService) Revoke(ctx context.Context, userID uuid.UUID) error {
	return s.userRepo.ClearRefreshToken(ctx, userID)
}
