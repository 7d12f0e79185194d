package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/okothpaul/shopkart-api/models"
)

func TestRegisterUserStoresHashedPassword(t *testing.T) {
	db := newTestDB(t)

	user, err := RegisterUser(db, "alice", "alice@example.com", "secret-pass")
	require.NoError(t, err)

	assert.NotEqual(t, "secret-pass", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret-pass")))
	assert.Equal(t, "user", user.Role)
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	db := newTestDB(t)

	_, err := RegisterUser(db, "alice", "alice@example.com", "secret-pass")
	require.NoError(t, err)

	_, err = RegisterUser(db, "alice2", "alice@example.com", "other-pass")
	assert.ErrorIs(t, err, ErrEmailTaken)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "alice@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegisterUserDuplicateUsername(t *testing.T) {
	db := newTestDB(t)

	_, err := RegisterUser(db, "alice", "alice@example.com", "secret-pass")
	require.NoError(t, err)

	_, err = RegisterUser(db, "alice", "other@example.com", "other-pass")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthenticateUser(t *testing.T) {
	db := newTestDB(t)

	registered, err := RegisterUser(db, "alice", "alice@example.com", "secret-pass")
	require.NoError(t, err)

	user, err := AuthenticateUser(db, "alice@example.com", "secret-pass")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = AuthenticateUser(db, "alice@example.com", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = AuthenticateUser(db, "nobody@example.com", "secret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
