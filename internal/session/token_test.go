package session

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc, err := NewTokenService(t.TempDir())
	require.NoError(t, err)

	userID := uuid.New()
	_, err = svc.Issue(userID)
	require.NoError(t, err)

	got, err := svc.Verify()
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenMissingFile(t *testing.T) {
	svc, err := NewTokenService(t.TempDir())
	require.NoError(t, err)

	_, err = svc.Verify()
	assert.True(t, errors.Is(err, ErrTokenInvalid))
}

func TestTokenExpiry(t *testing.T) {
	svc, err := NewTokenService(t.TempDir())
	require.NoError(t, err)

	_, err = svc.Issue(uuid.New())
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(tokenLifetime + time.Hour) }
	_, err = svc.Verify()
	assert.True(t, errors.Is(err, ErrTokenInvalid))
}

func TestTokenForeignKeyRejected(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewTokenService(dir)
	require.NoError(t, err)
	_, err = svc.Issue(uuid.New())
	require.NoError(t, err)

	// Same token file, different device secret.
	other, err := NewTokenService(t.TempDir())
	require.NoError(t, err)
	other.dir = dir

	_, err = other.Verify()
	assert.True(t, errors.Is(err, ErrTokenInvalid))
}

func TestTokenSecretPersistsAcrossRestarts(t *testing.T) {
	dir := t.TempDir()
	first, err := NewTokenService(dir)
	require.NoError(t, err)
	userID := uuid.New()
	_, err = first.Issue(userID)
	require.NoError(t, err)

	second, err := NewTokenService(dir)
	require.NoError(t, err)
	got, err := second.Verify()
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenClear(t *testing.T) {
	svc, err := NewTokenService(t.TempDir())
	require.NoError(t, err)

	_, err = svc.Issue(uuid.New())
	require.NoError(t, err)
	require.NoError(t, svc.Clear())
	require.NoError(t, svc.Clear(), "clearing twice is fine")

	_, err = svc.Verify()
	assert.True(t, errors.Is(err, ErrTokenInvalid))
}
