package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterbuiltwl/portal/internal/core/domain"
)

func TestQueryStore_Expiry(t *testing.T) {
	s := NewQueryStore()
	now := time.Unix(1000, 0)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "query:public:apps", []int{1, 2}, time.Minute))

	var got []int
	found, err := s.Get(ctx, "query:public:apps", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []int{1, 2}, got)

	now = now.Add(time.Minute)
	found, err = s.Get(ctx, "query:public:apps", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestQueryStore_DeletePrefix(t *testing.T) {
	s := NewQueryStore()
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "query:alice:a", 1, 0))
	require.NoError(t, s.Set(ctx, "query:alice:b", 1, 0))
	require.NoError(t, s.Set(ctx, "query:alicex:a", 1, 0))

	require.NoError(t, s.DeletePrefix(ctx, "query:alice:"))
	assert.Equal(t, 1, s.Len())
}

func TestReportRepository(t *testing.T) {
	r := NewReportRepository()
	ctx := context.Background()

	_, err := r.FindLatest(ctx, "alice")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	for _, id := range []string{"r1", "r2", "r3"} {
		require.NoError(t, r.Save(ctx, &domain.StressTestReport{ID: id, Principal: "alice"}))
	}

	latest, err := r.FindLatest(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "r3", latest.ID)

	list, err := r.List(ctx, "alice", 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "r3", list[0].ID)
	assert.Equal(t, "r2", list[1].ID)
}

func TestCheckoutLock_Expires(t *testing.T) {
	l := NewCheckoutLock()
	now := time.Unix(1000, 0)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	ok, _ := l.Acquire(ctx, "alice", time.Minute)
	assert.True(t, ok)
	ok, _ = l.Acquire(ctx, "alice", time.Minute)
	assert.False(t, ok)

	now = now.Add(time.Minute)
	ok, _ = l.Acquire(ctx, "alice", time.Minute)
	assert.True(t, ok)
}
