package services

import (
	"testing"
	"time"

	"studio_ops_backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(repo *mockAuthRepo) AuthService {
	return NewAuthService(repo, nil, utils.DefaultJWTSecret, time.Hour)
}

func registerTestUser(t *testing.T, svc AuthService, username string) string {
	t.Helper()
	user, err := svc.RegisterUser(RegisterUserRequest{
		Username: username,
		Password: "correct-horse-battery",
		Name:     "Test User",
	})
	require.NoError(t, err)
	return user.ID
}

func TestRegisterUserRejectsDuplicateUsername(t *testing.T) {
	repo := newMockAuthRepo()
	svc := newTestAuthService(repo)

	registerTestUser(t, svc, "priya")

	_, err := svc.RegisterUser(RegisterUserRequest{
		Username: "priya",
		Password: "another-password",
		Name:     "Second Priya",
	})
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestLoginIssuesTokenPair(t *testing.T) {
	repo := newMockAuthRepo()
	svc := newTestAuthService(repo)

	registerTestUser(t, svc, "priya")

	resp, err := svc.LoginUser(LoginRequest{Username: "priya", Password: "correct-horse-battery"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Empty(t, resp.User.PasswordHash)
}

func TestRefreshAccessTokenRoundtrip(t *testing.T) {
	repo := newMockAuthRepo()
	svc := newTestAuthService(repo)

	userID := registerTestUser(t, svc, "priya")

	login, err := svc.LoginUser(LoginRequest{Username: "priya", Password: "correct-horse-battery"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshAccessToken(RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.Equal(t, userID, refreshed.User.ID)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEmpty(t, refreshed.RefreshToken)
	assert.Empty(t, refreshed.User.PasswordHash)
}

func TestRefreshAccessTokenRejectsGarbage(t *testing.T) {
	repo := newMockAuthRepo()
	svc := newTestAuthService(repo)

	_, err := svc.RefreshAccessToken(RefreshTokenRequest{RefreshToken: "not-a-token"})
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestRefreshAccessTokenRejectsUnknownUser(t *testing.T) {
	repo := newMockAuthRepo()
	svc := newTestAuthService(repo)

	token, err := utils.GenerateRefreshToken("ghost-user")
	require.NoError(t, err)

	_, err = svc.RefreshAccessToken(RefreshTokenRequest{RefreshToken: token})
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestRefreshAccessTokenRejectsInactiveUser(t *testing.T) {
	repo := newMockAuthRepo()
	svc := newTestAuthService(repo)

	userID := registerTestUser(t, svc, "priya")
	repo.users[userID].IsActive = false

	token, err := utils.GenerateRefreshToken(userID)
	require.NoError(t, err)

	_, err = svc.RefreshAccessToken(RefreshTokenRequest{RefreshToken: token})
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestGetUsersClearsPasswordHashes(t *testing.T) {
	repo := newMockAuthRepo()
	svc := newTestAuthService(repo)

	registerTestUser(t, svc, "priya")
	registerTestUser(t, svc, "rahul")

	users, err := svc.GetUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.PasswordHash)
	}
}

func TestDeleteUser(t *testing.T) {
	repo := newMockAuthRepo()
	svc := newTestAuthService(repo)

	userID := registerTestUser(t, svc, "priya")

	require.NoError(t, svc.DeleteUser(userID))
	assert.ErrorIs(t, svc.DeleteUser(userID), ErrUserNotFound)
}
