package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"lightevent-backend/internal/domain"
	"lightevent-backend/internal/security"
)

func newAuthFixture() (*MockUserRepo, AuthService, security.TokenManager) {
	userRepo := new(MockUserRepo)
	tokens := security.NewTokenManager("test-secret-0123456789abcdef0123456789", time.Hour, 24*time.Hour)
	return userRepo, NewAuthService(userRepo, tokens), tokens
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo, svc, tokens := newAuthFixture()

		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.User).ID = 7
			}).Return(nil)

		user, access, refresh, err := svc.Signup(ctx, "Alice", "alice@example.com", "", "s3cretpass")
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleUser, user.Role)
		assert.NotEqual(t, "s3cretpass", user.PasswordHash)
		assert.NotEmpty(t, refresh)

		claims, err := tokens.ValidateToken(access)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), claims.UserID)
	})

	t.Run("Short password", func(t *testing.T) {
		_, svc, _ := newAuthFixture()

		_, _, _, err := svc.Signup(ctx, "Alice", "alice@example.com", "", "short")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		userRepo, svc, _ := newAuthFixture()

		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(domain.ErrEmailTaken)

		_, _, _, err := svc.Signup(ctx, "Alice", "alice@example.com", "", "s3cretpass")
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cretpass"), bcrypt.MinCost)

	t.Run("Success", func(t *testing.T) {
		userRepo, svc, _ := newAuthFixture()

		userRepo.On("GetByEmail", ctx, "alice@example.com").
			Return(&domain.User{ID: 7, Email: "alice@example.com", PasswordHash: string(hash), Role: domain.RoleUser}, nil)

		user, access, _, err := svc.Login(ctx, "alice@example.com", "s3cretpass")
		assert.NoError(t, err)
		assert.Equal(t, int32(7), user.ID)
		assert.NotEmpty(t, access)
	})

	t.Run("Wrong password", func(t *testing.T) {
		userRepo, svc, _ := newAuthFixture()

		userRepo.On("GetByEmail", ctx, "alice@example.com").
			Return(&domain.User{ID: 7, PasswordHash: string(hash)}, nil)

		_, _, _, err := svc.Login(ctx, "alice@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown email is indistinguishable", func(t *testing.T) {
		userRepo, svc, _ := newAuthFixture()

		userRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

		_, _, _, err := svc.Login(ctx, "ghost@example.com", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("New access token reflects the current role", func(t *testing.T) {
		userRepo, svc, tokens := newAuthFixture()

		refresh, err := tokens.GenerateRefreshToken(7, "alice@example.com")
		assert.NoError(t, err)

		// Promoted to organizer since the refresh token was issued
		userRepo.On("GetByID", ctx, int32(7)).
			Return(&domain.User{ID: 7, Email: "alice@example.com", Role: domain.RoleOrganizer}, nil)

		access, newRefresh, err := svc.RefreshToken(ctx, refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, newRefresh)

		claims, err := tokens.ValidateToken(access)
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleOrganizer, claims.Role)
	})

	t.Run("Access token is not accepted for refresh", func(t *testing.T) {
		_, svc, tokens := newAuthFixture()

		access, err := tokens.GenerateAccessToken(7, "alice@example.com", domain.RoleUser)
		assert.NoError(t, err)

		_, _, err = svc.RefreshToken(ctx, access)
		assert.ErrorIs(t, err, security.ErrWrongTokenType)
	})
}
