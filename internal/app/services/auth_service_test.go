package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/studenthub/internal/app/models"
	"github.com/yigit/studenthub/internal/app/models/dto"
	"github.com/yigit/studenthub/internal/app/repositories"
	"github.com/yigit/studenthub/internal/pkg/apperrors"
	"github.com/yigit/studenthub/internal/pkg/auth"
)

func newAuthService(t *testing.T) (AuthService, repositories.UserRepository) {
	t.Helper()
	userRepo := repositories.NewMemoryUserRepository()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    24 * time.Hour,
		TokenIssuer: "studenthub-test",
	})
	return NewAuthService(userRepo, jwtService, zerolog.Nop()), userRepo
}

func TestRegister(t *testing.T) {
	svc, userRepo := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, dto.RegisterRequest{Username: "teacher", Password: "teacher123", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, "teacher", user.Username)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.NotZero(t, user.ID)

	// The stored credential is a hash, never the plaintext
	stored, err := userRepo.GetByUsername(ctx, "teacher")
	require.NoError(t, err)
	assert.NotEqual(t, "teacher123", stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "teacher123"))
}

func TestRegister_RoleDefaultsToUser(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, dto.RegisterRequest{Username: "student", Password: "student123"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)

	// Anything other than an explicit "admin" registers a regular user
	user, err = svc.Register(ctx, dto.RegisterRequest{Username: "other", Password: "pw", Role: "superuser"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{Username: "", Password: "pw"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Register(ctx, dto.RegisterRequest{Username: "name", Password: ""})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{Username: "teacher", Password: "teacher123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, dto.RegisterRequest{Username: "teacher", Password: "different"})
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{Username: "teacher", Password: "teacher123", Role: "admin"})
	require.NoError(t, err)

	result, err := svc.Login(ctx, dto.LoginRequest{Username: "teacher", Password: "teacher123"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "teacher", result.User.Username)
	assert.Equal(t, models.RoleAdmin, result.User.Role)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{Username: "teacher", Password: "teacher123"})
	require.NoError(t, err)

	// Unknown username and wrong password fail with the same error, so
	// responses cannot be used to enumerate usernames
	_, unknownErr := svc.Login(ctx, dto.LoginRequest{Username: "nobody", Password: "teacher123"})
	_, wrongPwErr := svc.Login(ctx, dto.LoginRequest{Username: "teacher", Password: "wrong"})

	assert.ErrorIs(t, unknownErr, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPwErr, apperrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongPwErr.Error())
}

func TestLogin_Validation(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, dto.LoginRequest{Username: "teacher"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
