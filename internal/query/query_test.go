package query

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey_ID(t *testing.T) {
	assert.Equal(t, "teams", NewKey("teams").ID())
	assert.Equal(t, "tasks/team/42", NewKey("tasks", "team", "42").ID())
}

func TestKey_Matches(t *testing.T) {
	tests := []struct {
		name    string
		key     Key
		pattern Key
		want    bool
	}{
		{"resource only matches all", NewKey("tasks", "team", "42"), NewKey("tasks"), true},
		{"prefix match", NewKey("tasks", "team", "42"), NewKey("tasks", "team"), true},
		{"exact match", NewKey("tasks", "team", "42"), NewKey("tasks", "team", "42"), true},
		{"other resource", NewKey("teams"), NewKey("tasks"), false},
		{"diverging part", NewKey("tasks", "team", "42"), NewKey("tasks", "team", "7"), false},
		{"pattern longer than key", NewKey("tasks"), NewKey("tasks", "team"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.Matches(tt.pattern))
		})
	}
}

func TestFetch_IncompleteKeyDoesNotExecute(t *testing.T) {
	c := NewCache()
	calls := 0

	_, err := Fetch(context.Background(), c, NewKey("tasks", "team", ""), func(ctx context.Context) (string, error) {
		calls++
		return "x", nil
	})

	require.ErrorIs(t, err, ErrKeyIncomplete)
	assert.Zero(t, calls)
}

func TestFetch_CachesValue(t *testing.T) {
	c := NewCache()
	calls := 0
	fn := func(ctx context.Context) (string, error) {
		calls++
		return "v", nil
	}

	for i := 0; i < 3; i++ {
		got, err := Fetch(context.Background(), c, NewKey("teams"), fn)
		require.NoError(t, err)
		assert.Equal(t, "v", got)
	}
	assert.Equal(t, 1, calls)
}

func TestFetch_ErrorsAreNotCached(t *testing.T) {
	c := NewCache()
	calls := 0
	fn := func(ctx context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("boom")
		}
		return "v", nil
	}

	_, err := Fetch(context.Background(), c, NewKey("teams"), fn)
	require.Error(t, err)

	got, err := Fetch(context.Background(), c, NewKey("teams"), fn)
	require.NoError(t, err)
	assert.Equal(t, "v", got)
	assert.Equal(t, 2, calls)
}

func TestFetch_ConcurrentCallersShareOneFetch(t *testing.T) {
	c := NewCache()
	var calls atomic.Int32
	release := make(chan struct{})

	fn := func(ctx context.Context) (string, error) {
		calls.Add(1)
		<-release
		return "v", nil
	}

	const n = 8
	var wg sync.WaitGroup
	results := make([]string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := Fetch(context.Background(), c, NewKey("teams"), fn)
			assert.NoError(t, err)
			results[i] = got
		}(i)
	}

	// Let all callers pile onto the in-flight fetch.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Equal(t, "v", r)
	}
}

func TestInvalidate_MarksStaleByPrefix(t *testing.T) {
	c := NewCache()
	fetched := func(v string) func(context.Context) (string, error) {
		return func(ctx context.Context) (string, error) { return v, nil }
	}

	_, err := Fetch(context.Background(), c, NewKey("tasks", "my"), fetched("mine"))
	require.NoError(t, err)
	_, err = Fetch(context.Background(), c, NewKey("tasks", "team", "42"), fetched("t42"))
	require.NoError(t, err)
	_, err = Fetch(context.Background(), c, NewKey("teams"), fetched("teams"))
	require.NoError(t, err)

	c.Invalidate(NewKey("tasks"))

	res, ok := c.Peek(NewKey("tasks", "my"))
	require.True(t, ok)
	assert.True(t, res.Stale)
	res, ok = c.Peek(NewKey("tasks", "team", "42"))
	require.True(t, ok)
	assert.True(t, res.Stale)
	res, ok = c.Peek(NewKey("teams"))
	require.True(t, ok)
	assert.False(t, res.Stale, "other resources stay fresh")
}

func TestInvalidate_StaleKeyRefetches(t *testing.T) {
	c := NewCache()
	calls := 0
	fn := func(ctx context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "old", nil
		}
		return "new", nil
	}

	got, err := Fetch(context.Background(), c, NewKey("teams"), fn)
	require.NoError(t, err)
	assert.Equal(t, "old", got)

	c.Invalidate(NewKey("teams"))

	got, err = Fetch(context.Background(), c, NewKey("teams"), fn)
	require.NoError(t, err)
	assert.Equal(t, "new", got)
	assert.Equal(t, 2, calls)
}

func TestInvalidate_AbandonedGenerationNeverOverwrites(t *testing.T) {
	c := NewCache()
	key := NewKey("tasks", "my")

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		got, err := Fetch(context.Background(), c, key, func(ctx context.Context) (string, error) {
			close(started)
			<-release
			return "old", nil
		})
		// The caller still gets the response it was waiting on.
		assert.NoError(t, err)
		assert.Equal(t, "old", got)
	}()

	<-started
	c.Invalidate(key)
	close(release)
	<-done

	// The late resolution belongs to an abandoned generation: it must not
	// have been stored.
	_, ok := c.Peek(key)
	assert.False(t, ok)

	got, err := Fetch(context.Background(), c, key, func(ctx context.Context) (string, error) {
		return "new", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "new", got)

	res, ok := c.Peek(key)
	require.True(t, ok)
	assert.Equal(t, "new", res.Data)
	assert.False(t, res.Stale)
}

func TestFetch_CanceledCallerReturnsContextError(t *testing.T) {
	c := NewCache()
	release := make(chan struct{})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})
	go func() {
		<-started
		cancel()
	}()

	_, err := Fetch(ctx, c, NewKey("teams"), func(ctx context.Context) (string, error) {
		close(started)
		<-release
		return "v", nil
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestClear_DropsEverything(t *testing.T) {
	c := NewCache()
	_, err := Fetch(context.Background(), c, NewKey("teams"), func(ctx context.Context) (string, error) {
		return "v", nil
	})
	require.NoError(t, err)

	c.Clear()

	_, ok := c.Peek(NewKey("teams"))
	assert.False(t, ok)
}
