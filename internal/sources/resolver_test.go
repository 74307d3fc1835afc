package sources

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDeduplicates(t *testing.T) {
	var calls int
	var gotIDs []int
	r := New(func(ctx context.Context, chunkIDs []int) ([]Record, error) {
		calls++
		gotIDs = chunkIDs
		return []Record{
			{ChunkID: 3, DocumentID: 1, TextPreview: "第三段"},
			{ChunkID: 7, DocumentID: 1, TextPreview: "第七段"},
		}, nil
	})

	resolved, err := r.Resolve(context.Background(), []int{7, 7, 3, 7})
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, []int{3, 7}, gotIDs)
	assert.Len(t, resolved, 2)
	assert.Equal(t, "第七段", resolved[7].TextPreview)
}

func TestResolveMissingIDsAbsent(t *testing.T) {
	r := New(func(ctx context.Context, chunkIDs []int) ([]Record, error) {
		// Service knows nothing about chunk 99.
		return []Record{{ChunkID: 5, DocumentID: 2}}, nil
	})

	resolved, err := r.Resolve(context.Background(), []int{5, 99})
	require.NoError(t, err)

	assert.Len(t, resolved, 1)
	_, ok := resolved[99]
	assert.False(t, ok, "unresolvable ids must be absent, not errors")
}

func TestResolveEmptySetSkipsLookup(t *testing.T) {
	r := New(func(ctx context.Context, chunkIDs []int) ([]Record, error) {
		t.Fatal("lookup must not run for an empty id set")
		return nil, nil
	})

	resolved, err := r.Resolve(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, resolved)
}

func TestResolvePropagatesLookupError(t *testing.T) {
	boom := errors.New("service down")
	r := New(func(ctx context.Context, chunkIDs []int) ([]Record, error) {
		return nil, boom
	})

	_, err := r.Resolve(context.Background(), []int{1})
	assert.ErrorIs(t, err, boom)
}

func TestPassLastRequestWins(t *testing.T) {
	r := New(func(ctx context.Context, chunkIDs []int) ([]Record, error) {
		return []Record{{ChunkID: chunkIDs[0]}}, nil
	})

	older := r.Start()
	newer := r.Start()

	// The older pass completes after the newer one started; its result is
	// discarded even though the lookup itself succeeded.
	_, err := older.Resolve(context.Background(), []int{1})
	assert.ErrorIs(t, err, ErrSuperseded)

	resolved, err := newer.Resolve(context.Background(), []int{2})
	require.NoError(t, err)
	assert.Contains(t, resolved, 2)
}

func TestPassStaleAfterCompletion(t *testing.T) {
	r := New(func(ctx context.Context, chunkIDs []int) ([]Record, error) {
		return nil, nil
	})

	p := r.Start()
	assert.False(t, p.Stale())
	r.Start()
	assert.True(t, p.Stale())
}

func TestDedupe(t *testing.T) {
	assert.Nil(t, Dedupe(nil))
	assert.Equal(t, []int{3, 7}, Dedupe([]int{7, 7, 3, 7}))
	assert.Equal(t, []int{1, 2, 5}, Dedupe([]int{5, 1, 2, 1, 5}))
}
