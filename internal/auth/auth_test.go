package auth

import (
	"testing"
	"time"

	"store-service/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestTokenMaker_Roundtrip(t *testing.T) {
	maker := NewTokenMaker("test-secret", time.Hour)

	token, err := maker.Generate(&domain.User{ID: 42, Role: domain.RoleAdmin})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := maker.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID())
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestTokenMaker_ExpiredToken(t *testing.T) {
	maker := NewTokenMaker("test-secret", -time.Minute)

	token, err := maker.Generate(&domain.User{ID: 42, Role: domain.RoleUser})
	assert.NoError(t, err)

	_, err = maker.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenMaker_WrongSecret(t *testing.T) {
	maker := NewTokenMaker("test-secret", time.Hour)
	other := NewTokenMaker("another-secret", time.Hour)

	token, err := maker.Generate(&domain.User{ID: 42, Role: domain.RoleUser})
	assert.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenMaker_GarbageToken(t *testing.T) {
	maker := NewTokenMaker("test-secret", time.Hour)

	_, err := maker.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "secret123"))
}
