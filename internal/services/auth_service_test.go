package services

import (
	"testing"
	"time"

	"github.com/quizgen/quizgen/internal/config"
	"github.com/quizgen/quizgen/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: 168 * time.Hour,
	}
}

func TestRegister_DuplicateConflict(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, testConfig())

	require.NoError(t, svc.Register("alice", "alice@example.com", "secret123"))

	// same username
	err := svc.Register("alice", "other@example.com", "secret123")
	assert.ErrorIs(t, err, ErrUserExists)

	// same email
	err = svc.Register("bob", "alice@example.com", "secret123")
	assert.ErrorIs(t, err, ErrUserExists)

	// fresh username and email
	require.NoError(t, svc.Register("bob", "bob@example.com", "secret123"))
}

func TestRegister_PasswordIsHashed(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, testConfig())

	require.NoError(t, svc.Register("alice", "alice@example.com", "secret123"))

	stored, err := users.ByUsername("alice")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
}

func TestLogin_TokenRoundTrip(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, testConfig())

	require.NoError(t, svc.Register("alice", "alice@example.com", "secret123"))

	token, err := svc.Login("alice", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, username, err := svc.ValidateToken(token)
	require.NoError(t, err)

	stored, err := users.ByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, userID)
	assert.Equal(t, "alice", username)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, testConfig())

	require.NoError(t, svc.Register("alice", "alice@example.com", "secret123"))

	_, err := svc.Login("alice", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateToken_Expired(t *testing.T) {
	users := newFakeUserRepo()
	cfg := testConfig()
	cfg.JWTExpiry = -time.Hour // already expired at issue time
	svc := NewAuthService(users, cfg)

	require.NoError(t, svc.Register("alice", "alice@example.com", "secret123"))
	token, err := svc.Login("alice", "secret123")
	require.NoError(t, err)

	_, _, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, testConfig())

	require.NoError(t, svc.Register("alice", "alice@example.com", "secret123"))
	token, err := svc.Login("alice", "secret123")
	require.NoError(t, err)

	other := NewAuthService(users, &config.Config{JWTSecret: "other-secret", JWTExpiry: time.Hour})
	_, _, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestUpdateProfile_PartialAndPasswordRehash(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, testConfig())

	require.NoError(t, svc.Register("alice", "alice@example.com", "secret123"))
	stored, err := users.ByUsername("alice")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(stored.ID, &dto.UpdateProfileRequest{Email: "new@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, "alice", updated.Username)

	_, err = svc.UpdateProfile(stored.ID, &dto.UpdateProfileRequest{Password: "changed456"})
	require.NoError(t, err)

	_, err = svc.Login("alice", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login("alice", "changed456")
	assert.NoError(t, err)
}

func TestProfile_NotFound(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testConfig())

	_, err := svc.Profile(42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
