package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/studenthub/internal/app/models"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "studenthub-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(24 * time.Hour)

	user := &models.User{
		ID:       7,
		Username: "teacher",
		Role:     models.RoleAdmin,
	}

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "teacher", claims.Username)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "studenthub-test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestService(-1 * time.Hour)

	token, err := svc.GenerateToken(&models.User{ID: 1, Username: "student", Role: models.RoleUser})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_Tampered(t *testing.T) {
	svc := newTestService(24 * time.Hour)

	token, err := svc.GenerateToken(&models.User{ID: 1, Username: "student", Role: models.RoleUser})
	require.NoError(t, err)

	// Flip the last character of the signature
	last := token[len(token)-1]
	replacement := byte('x')
	if last == replacement {
		replacement = 'y'
	}
	tampered := token[:len(token)-1] + string(replacement)

	_, err = svc.ValidateToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := newTestService(24 * time.Hour)
	other := NewJWTService(JWTConfig{SecretKey: "other-secret", TokenExp: 24 * time.Hour, TokenIssuer: "studenthub-test"})

	token, err := other.GenerateToken(&models.User{ID: 1, Username: "student", Role: models.RoleUser})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newTestService(24 * time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	// The prefix is optional
	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
