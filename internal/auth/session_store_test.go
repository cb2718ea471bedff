package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "civicportal/internal/errors"
)

func liveSession(id string) Session {
	now := time.Now()
	return Session{
		ID:        id,
		UserID:    1,
		Username:  "wanjiku",
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func TestMemorySessionStore_PutGet(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	session := liveSession("abc")
	assert.NoError(t, store.Put(ctx, session))

	got, err := store.Get(ctx, "abc")
	assert.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, session.UserID, got.UserID)
	assert.Equal(t, session.Username, got.Username)
}

func TestMemorySessionStore_GetUnknown(t *testing.T) {
	store := NewMemorySessionStore()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMemorySessionStore_ExpiredSessionEvicted(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	now := time.Now()
	stale := Session{
		ID:        "stale",
		UserID:    1,
		IssuedAt:  now.Add(-2 * time.Hour),
		ExpiresAt: now.Add(-time.Minute),
	}
	assert.NoError(t, store.Put(ctx, stale))

	// First read reports expiry and evicts the record.
	_, err := store.Get(ctx, "stale")
	assert.ErrorIs(t, err, apperrors.ErrSessionExpired)

	// Subsequent reads see no record at all.
	_, err = store.Get(ctx, "stale")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMemorySessionStore_DeleteIdempotent(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	assert.NoError(t, store.Put(ctx, liveSession("abc")))
	assert.NoError(t, store.Delete(ctx, "abc"))

	_, err := store.Get(ctx, "abc")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.NoError(t, store.Delete(ctx, "abc"))
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()
	session := Session{ExpiresAt: now}

	assert.False(t, session.Expired(now.Add(-time.Second)))
	assert.False(t, session.Expired(now))
	assert.True(t, session.Expired(now.Add(time.Second)))
}
