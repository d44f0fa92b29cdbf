package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	now = now.Add(time.Minute)
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryStore_NoTTLAndDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "k", []byte("v"), 0))
	_, err := store.Get(ctx, "k")
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "k"))
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	type payload struct {
		Title string `json:"title"`
		Marks int    `json:"marks"`
	}
	require.NoError(t, SetJSON(ctx, store, "p", payload{Title: "Algebra", Marks: 3}, time.Hour))

	var got payload
	require.NoError(t, GetJSON(ctx, store, "p", &got))
	assert.Equal(t, payload{Title: "Algebra", Marks: 3}, got)

	assert.ErrorIs(t, GetJSON(ctx, store, "missing", &got), ErrMiss)
}

func TestMemoryStore_ExpiryKeepsConcurrentSet(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }
	require.NoError(t, store.Set(ctx, "k", []byte("old"), time.Minute))

	now = now.Add(time.Minute)
	replaced := false
	store.now = func() time.Time {
		// Runs after Get has released its read lock: a writer stores a fresh value.
		if !replaced {
			replaced = true
			require.NoError(t, store.Set(ctx, "k", []byte("fresh"), time.Minute))
		}
		return now
	}

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
	require.True(t, replaced)

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("fresh"), got)
}
