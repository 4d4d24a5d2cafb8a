package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSet(t *testing.T) {
	m := NewMemory()
	defer m.Close()

	ctx := context.Background()

	_, ok := m.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, "key", []byte(`{"slots":[]}`), time.Minute))

	payload, ok := m.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"slots":[]}`), payload)
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory()
	defer m.Close()

	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "key", []byte("payload"), 10*time.Millisecond))

	time.Sleep(30 * time.Millisecond)

	_, ok := m.Get(ctx, "key")
	assert.False(t, ok, "expired entry must be a miss")
}

func TestMemoryOverwrite(t *testing.T) {
	m := NewMemory()
	defer m.Close()

	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "key", []byte("old"), time.Minute))
	require.NoError(t, m.Set(ctx, "key", []byte("new"), time.Minute))

	payload, ok := m.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, []byte("new"), payload)
}
