// Package query caches server state by resource key. Reads with the same key
// share a single in-flight fetch, invalidation marks keys stale by prefix,
// and a generation counter keeps late responses from overwriting newer data.
package query

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// ErrKeyIncomplete is returned when a key has an empty part. A query whose
// required parameter is missing must not execute.
var ErrKeyIncomplete = errors.New("query key has a missing part")

// Key identifies one cached query: a resource name plus ordered parameter
// parts, e.g. {Resource: "tasks", Parts: ["team", "42"]}.
type Key struct {
	Resource string
	Parts    []string
}

// NewKey builds a key from a resource and its parameter parts.
func NewKey(resource string, parts ...string) Key {
	return Key{Resource: resource, Parts: parts}
}

// ID returns the canonical string form used for deduplication and lookup.
func (k Key) ID() string {
	if len(k.Parts) == 0 {
		return k.Resource
	}
	return k.Resource + "/" + strings.Join(k.Parts, "/")
}

// Incomplete reports whether any part is empty.
func (k Key) Incomplete() bool {
	if k.Resource == "" {
		return true
	}
	for _, p := range k.Parts {
		if p == "" {
			return true
		}
	}
	return false
}

// Matches reports whether k falls under pattern: same resource, and the
// pattern's parts are a prefix of k's. A pattern with no parts matches every
// key of its resource.
func (k Key) Matches(pattern Key) bool {
	if k.Resource != pattern.Resource {
		return false
	}
	if len(pattern.Parts) > len(k.Parts) {
		return false
	}
	for i, p := range pattern.Parts {
		if k.Parts[i] != p {
			return false
		}
	}
	return true
}

// Result is a point-in-time view of one cache entry.
type Result struct {
	Data      any
	Err       error
	FetchedAt time.Time
	Stale     bool
}

type entry struct {
	key       Key
	data      any
	err       error
	fetchedAt time.Time
	stale     bool
}

// Cache is a concurrency-safe query cache. The zero value is not usable;
// construct with NewCache.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
	gens    map[string]uint64
	group   singleflight.Group

	now func() time.Time
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]*entry),
		gens:    make(map[string]uint64),
		now:     time.Now,
	}
}

// Fetch returns the cached value for key, or runs fn to populate it.
// Concurrent callers with the same key share one execution of fn. When the
// key is invalidated while fn is in flight, the caller still receives fn's
// result but the cache keeps the post-invalidation state.
func Fetch[T any](ctx context.Context, c *Cache, key Key, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if key.Incomplete() {
		return zero, ErrKeyIncomplete
	}

	if data, ok := c.fresh(key); ok {
		v, ok := data.(T)
		if ok {
			return v, nil
		}
		// Type changed between callers for the same key; refetch.
	}

	data, err := c.fetch(ctx, key, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, err
	}
	v, ok := data.(T)
	if !ok {
		return zero, errors.New("query: cached value has unexpected type")
	}
	return v, nil
}

func (c *Cache) fresh(key Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key.ID()]
	if !ok || e.stale || e.err != nil {
		return nil, false
	}
	return e.data, true
}

func (c *Cache) fetch(ctx context.Context, key Key, fn func(context.Context) (any, error)) (any, error) {
	id := key.ID()

	c.mu.Lock()
	gen := c.gens[id]
	c.gens[id] = gen
	c.mu.Unlock()

	ch := c.group.DoChan(id, func() (any, error) {
		// The fetch outlives any single caller once shared.
		data, err := fn(context.WithoutCancel(ctx))
		c.store(key, gen, data, err)
		return data, err
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}

// store records a resolution, unless the key's generation moved on while the
// fetch was in flight.
func (c *Cache) store(key Key, gen uint64, data any, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := key.ID()
	if c.gens[id] != gen {
		return
	}
	c.entries[id] = &entry{
		key:       key,
		data:      data,
		err:       err,
		fetchedAt: c.now(),
	}
}

// Invalidate marks every key matching any pattern as stale and abandons the
// generation of any fetch currently in flight for it.
func (c *Cache) Invalidate(patterns ...Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, pattern := range patterns {
		for id, e := range c.entries {
			if e.key.Matches(pattern) {
				e.stale = true
				c.gens[id]++
				c.group.Forget(id)
			}
		}
		// In-flight fetches without a stored entry yet.
		for id := range c.gens {
			if keyFromID(id).Matches(pattern) {
				c.gens[id]++
				c.group.Forget(id)
			}
		}
	}
}

// Peek returns the entry for key without fetching.
func (c *Cache) Peek(key Key) (Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key.ID()]
	if !ok {
		return Result{}, false
	}
	return Result{Data: e.data, Err: e.err, FetchedAt: e.fetchedAt, Stale: e.stale}, true
}

// Clear drops all entries, e.g. on logout.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id := range c.entries {
		delete(c.entries, id)
		c.gens[id]++
		c.group.Forget(id)
	}
}

func keyFromID(id string) Key {
	segments := strings.Split(id, "/")
	return Key{Resource: segments[0], Parts: segments[1:]}
}
