package identity

import (
	"context"
	"testing"
	"time"

	"github.com/nexashop/backend/internal/domain/shared"
	"github.com/nexashop/backend/internal/infrastructure/auth"
	"github.com/nexashop/backend/internal/infrastructure/config"
	"github.com/nexashop/backend/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthService() *AuthService {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars!!",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "nexashop-test",
	})
	return NewAuthService(memory.NewUserRepository(), jwtService, auth.NewInMemoryTokenBlacklist(), zap.NewNop())
}

func registerRequest() RegisterRequest {
	return RegisterRequest{
		Username: "jane",
		Email:    "jane@example.com",
		Password: "secret123",
		Name:     "Jane Doe",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	service := newAuthService()
	ctx := context.Background()

	registered, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)
	assert.Equal(t, "jane", registered.User.Username)
	assert.Equal(t, "customer", registered.User.Role)
	assert.NotEmpty(t, registered.Tokens.AccessToken)
	assert.NotEmpty(t, registered.Tokens.RefreshToken)

	loggedIn, err := service.Login(ctx, LoginRequest{Username: "Jane", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	service := newAuthService()
	ctx := context.Background()

	_, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)

	dup := registerRequest()
	dup.Email = "other@example.com"
	_, err = service.Register(ctx, dup)
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service := newAuthService()
	ctx := context.Background()

	_, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)

	dup := registerRequest()
	dup.Username = "janet"
	_, err = service.Register(ctx, dup)
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	service := newAuthService()
	ctx := context.Background()

	_, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = service.Login(ctx, LoginRequest{Username: "jane", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	service := newAuthService()

	_, err := service.Login(context.Background(), LoginRequest{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshIssuesNewPair(t *testing.T) {
	service := newAuthService()
	ctx := context.Background()

	registered, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)

	pair, err := service.Refresh(ctx, RefreshRequest{RefreshToken: registered.Tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	service := newAuthService()
	ctx := context.Background()

	registered, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = service.Refresh(ctx, RefreshRequest{RefreshToken: registered.Tokens.AccessToken})
	assert.ErrorIs(t, err, shared.ErrUnauthorized)
}

func TestLogoutBlacklistsToken(t *testing.T) {
	service := newAuthService()
	ctx := context.Background()

	registered, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)

	claims, err := service.jwt.ValidateAccessToken(registered.Tokens.AccessToken)
	require.NoError(t, err)

	require.NoError(t, service.Logout(ctx, claims))

	revoked, err := service.blacklist.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestCurrentUser(t *testing.T) {
	service := newAuthService()
	ctx := context.Background()

	registered, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)

	user, err := service.CurrentUser(ctx, registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)

	_, err = service.CurrentUser(ctx, 999)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
