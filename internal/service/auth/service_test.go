package auth

import (
	"context"
	"testing"

	"github.com/klipper-hq/klipper-backend-go/internal/domain/auth"
	"github.com/klipper-hq/klipper-backend-go/internal/domain/user"
	"github.com/klipper-hq/klipper-backend-go/internal/pkg/jwt"
	"github.com/klipper-hq/klipper-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) (*AuthServiceImpl, jwt.Service) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	users := memory.NewUserStore()
	users.Add(user.User{
		ID:           "user-1",
		EmployeeID:   "emp-48",
		EmployeeCode: "SW-048",
		PasswordHash: string(hash),
		IsHR:         true,
	})

	jwtService := jwt.NewJWTService("test-secret", "15m", "168h")
	return NewAuthService(users, jwtService), jwtService
}

func TestLogin_IssuesAccessAndRefreshTokens(t *testing.T) {
	t.Parallel()

	svc, jwtService := newAuthFixture(t)
	tokens, err := svc.Login(context.Background(), auth.LoginRequest{
		EmployeeCode: "SW-048",
		Password:     "s3cret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)

	claims, err := jwtService.ParseToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "emp-48", claims["employee_id"])
	assert.Equal(t, true, claims["is_hr"])
	assert.Equal(t, "access", claims["type"])
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthFixture(t)
	_, err := svc.Login(context.Background(), auth.LoginRequest{
		EmployeeCode: "SW-048",
		Password:     "not-it",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmployeeCode(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthFixture(t)
	_, err := svc.Login(context.Background(), auth.LoginRequest{
		EmployeeCode: "SW-999",
		Password:     "s3cret",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefresh_IssuesNewAccessToken(t *testing.T) {
	t.Parallel()

	svc, jwtService := newAuthFixture(t)
	tokens, err := svc.Login(context.Background(), auth.LoginRequest{
		EmployeeCode: "SW-048",
		Password:     "s3cret",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), tokens.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, refreshed.AccessToken)

	claims, err := jwtService.ParseToken(refreshed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "access", claims["type"])
	assert.Equal(t, "emp-48", claims["employee_id"])
}

func TestRefresh_RejectsAccessTokenAsRefreshToken(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthFixture(t)
	tokens, err := svc.Login(context.Background(), auth.LoginRequest{
		EmployeeCode: "SW-048",
		Password:     "s3cret",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), tokens.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefresh_RejectsGarbageToken(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthFixture(t)
	_, err := svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
