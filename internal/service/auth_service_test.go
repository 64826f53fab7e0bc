package service

import (
	"os"
	"testing"
	"time"

	"kostify-backend/internal/models"
	"kostify-backend/internal/repository"
	"kostify-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	utils.InitJWT("test-access-secret", "test-refresh-secret", 15*time.Minute, 168*time.Hour)
	os.Exit(m.Run())
}

func setupAuthService(t *testing.T) *AuthService {
	db := testDB(t)
	return NewAuthService(repository.NewUserRepo(db), repository.NewAuditRepo(db))
}

func TestRegisterCreatesOwnerWithTrial(t *testing.T) {
	svc := setupAuthService(t)

	resp, err := svc.Register("ibu.kost@example.com", "rahasia1", "Ibu Kost", "08123456789")
	require.NoError(t, err)

	assert.Equal(t, models.RoleOwner, resp.User.Role)
	assert.Equal(t, "trial", resp.User.SubscriptionStatus)
	require.NotNil(t, resp.User.TrialEndDate)
	assert.True(t, resp.User.TrialEndDate.After(time.Now()))
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	// The access token scopes the owner to their own data
	claims, err := utils.ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, resp.User.ID, claims.OwnerID)
	assert.Equal(t, models.RoleOwner, claims.Role)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := setupAuthService(t)

	_, err := svc.Register("ibu.kost@example.com", "rahasia1", "Ibu Kost", "08123456789")
	require.NoError(t, err)

	_, err = svc.Register("ibu.kost@example.com", "rahasia2", "Orang Lain", "0800000000")
	assert.EqualError(t, err, "email already registered")
}

func TestLogin(t *testing.T) {
	svc := setupAuthService(t)

	_, err := svc.Register("ibu.kost@example.com", "rahasia1", "Ibu Kost", "08123456789")
	require.NoError(t, err)

	resp, err := svc.Login("ibu.kost@example.com", "rahasia1")
	require.NoError(t, err)
	assert.Equal(t, "ibu.kost@example.com", resp.User.Email)

	_, err = svc.Login("ibu.kost@example.com", "salah")
	assert.EqualError(t, err, "invalid credentials")

	_, err = svc.Login("tidak.ada@example.com", "rahasia1")
	assert.EqualError(t, err, "invalid credentials")
}

func TestRefreshAndLogout(t *testing.T) {
	svc := setupAuthService(t)

	resp, err := svc.Register("ibu.kost@example.com", "rahasia1", "Ibu Kost", "08123456789")
	require.NoError(t, err)

	accessToken, err := svc.RefreshAccessToken(resp.RefreshToken)
	require.NoError(t, err)

	claims, err := utils.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)

	// A revoked refresh token no longer mints access tokens
	require.NoError(t, svc.Logout(resp.RefreshToken))
	_, err = svc.RefreshAccessToken(resp.RefreshToken)
	assert.EqualError(t, err, "invalid or revoked refresh token")
}
