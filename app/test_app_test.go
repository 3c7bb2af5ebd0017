package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"go-vidshare-api/config"
	"go-vidshare-api/logger"
	"go-vidshare-api/model"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	logger.Init()
	config.AppConfig.JWT.AccessSecret = "test-access-secret"
	config.AppConfig.JWT.RefreshSecret = "test-refresh-secret"
	config.AppConfig.JWT.AccessTTL = 15 * time.Minute
	config.AppConfig.JWT.RefreshTTL = 168 * time.Hour
	os.Exit(m.Run())
}

type noopMediaStore struct{}

func (noopMediaStore) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, string, error) {
	return "https://cdn.example/" + folder + "/" + filename, folder + "/" + filename, nil
}

func (noopMediaStore) Delete(ctx context.Context, key string) error { return nil }

// unreachableRedis returns a client that fails instantly; the flows under test
// never touch the cache, and cache errors are treated as misses anyway.
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "localhost:1",
		DialTimeout: time.Millisecond,
		ReadTimeout: time.Millisecond,
		MaxRetries:  -1,
	})
}

// Drives login, an authenticated toggle, refresh rotation and a replayed
// rotation through the real router, with the database mocked one statement at
// a time in the order the stack issues them.
func TestSessionAndToggleFlow(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	ta := NewTestApp(db, unreachableRedis(), noopMediaStore{})

	userID := uuid.New()
	channelID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	assert.NoError(t, err)

	// Login: account lookup, then the issued refresh token is persisted.
	dbMock.ExpectQuery(`FROM users WHERE username = \$1 OR email = \$2`).
		WithArgs("alice", "").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "username", "email", "full_name", "password", "avatar_url", "cover_image_url", "refresh_token", "created_at",
		}).AddRow(userID, "alice", "alice@example.com", "Alice A", string(hash), "", "", "", time.Now()))
	dbMock.ExpectExec(`UPDATE users SET refresh_token = \$1 WHERE id = \$2`).
		WithArgs(sqlmock.AnyArg(), userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	body := bytes.NewBufferString(`{"username": "alice", "password": "password123"}`)
	req, _ := http.NewRequest("POST", "/api/users/login", body)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	ta.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var loginResp struct {
		User         *model.User `json:"user"`
		AccessToken  string      `json:"access_token"`
		RefreshToken string      `json:"refresh_token"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &loginResp))
	assert.NotEmpty(t, loginResp.AccessToken)
	assert.NotEmpty(t, loginResp.RefreshToken)
	assert.Equal(t, userID, loginResp.User.ID)
	assert.Empty(t, loginResp.User.Password)

	cookieNames := map[string]bool{}
	for _, c := range rr.Result().Cookies() {
		cookieNames[c.Name] = c.HttpOnly
	}
	assert.True(t, cookieNames["accessToken"])
	assert.True(t, cookieNames["refreshToken"])

	// Authenticated subscription toggle: channel existence check, then the
	// single-statement toggle taking its insert branch.
	dbMock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM users WHERE id = \$1\)`).
		WithArgs(channelID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	dbMock.ExpectQuery(`WITH removed AS`).
		WithArgs(userID, channelID, model.KindSubscription).
		WillReturnRows(sqlmock.NewRows([]string{"removed", "created"}).AddRow(0, 1))

	req, _ = http.NewRequest("POST", fmt.Sprintf("/api/subscriptions/%s/toggle", channelID), nil)
	req.Header.Set("Authorization", "Bearer "+loginResp.AccessToken)
	rr = httptest.NewRecorder()
	ta.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"outcome": "created", "subscribed": true}`, rr.Body.String())

	// Same toggle without credentials never reaches the database.
	req, _ = http.NewRequest("POST", fmt.Sprintf("/api/subscriptions/%s/toggle", channelID), nil)
	rr = httptest.NewRecorder()
	ta.Router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// Rotation: the compare-and-swap matches the stored token and succeeds.
	dbMock.ExpectExec(`UPDATE users SET refresh_token = \$1 WHERE id = \$2 AND refresh_token = \$3`).
		WithArgs(sqlmock.AnyArg(), userID, loginResp.RefreshToken).
		WillReturnResult(sqlmock.NewResult(0, 1))

	req, _ = http.NewRequest("POST", "/api/users/refresh-token", nil)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: loginResp.RefreshToken})
	rr = httptest.NewRecorder()
	ta.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var refreshResp struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &refreshResp))
	assert.NotEmpty(t, refreshResp.AccessToken)
	assert.NotEmpty(t, refreshResp.RefreshToken)

	// Replaying the consumed token: the swap affects zero rows, so the
	// rotation is rejected and no new pair is handed out.
	dbMock.ExpectExec(`UPDATE users SET refresh_token = \$1 WHERE id = \$2 AND refresh_token = \$3`).
		WithArgs(sqlmock.AnyArg(), userID, loginResp.RefreshToken).
		WillReturnResult(sqlmock.NewResult(0, 0))

	req, _ = http.NewRequest("POST", "/api/users/refresh-token", nil)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: loginResp.RefreshToken})
	rr = httptest.NewRecorder()
	ta.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.NotContains(t, rr.Body.String(), "access_token")

	assert.NoError(t, dbMock.ExpectationsWereMet())
}
