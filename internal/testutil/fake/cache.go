//go:build unit || e2e

package fake

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"staybook/internal/usecase/shared"
)

// Cache is an in-memory shared.Cache. Setting Err makes every call fail with it.
type Cache struct {
	mu     sync.Mutex
	values map[string][]byte
	hashes map[string]map[string][]byte
	sets   map[string]map[string]struct{}
	ttls   map[string]time.Duration
	calls  map[string]int

	Err error
}

func NewCache() *Cache {
	return &Cache{
		values: map[string][]byte{},
		hashes: map[string]map[string][]byte{},
		sets:   map[string]map[string]struct{}{},
		ttls:   map[string]time.Duration{},
		calls:  map[string]int{},
	}
}

func (c *Cache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls["Get"]++
	if c.Err != nil {
		return nil, c.Err
	}
	v, ok := c.values[key]
	if !ok {
		return nil, shared.ErrCacheMiss
	}
	return slices.Clone(v), nil
}

func (c *Cache) GetField(_ context.Context, key, field string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls["GetField"]++
	if c.Err != nil {
		return nil, c.Err
	}
	v, ok := c.hashes[key][field]
	if !ok {
		return nil, shared.ErrCacheMiss
	}
	return slices.Clone(v), nil
}

func (c *Cache) Members(_ context.Context, key string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls["Members"]++
	if c.Err != nil {
		return nil, c.Err
	}
	return slices.Sorted(maps.Keys(c.sets[key])), nil
}

func (c *Cache) SetWithExpiry(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls["SetWithExpiry"]++
	if c.Err != nil {
		return c.Err
	}
	c.values[key] = slices.Clone(value)
	c.ttls[key] = ttl
	return nil
}

func (c *Cache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls["Delete"]++
	if c.Err != nil {
		return c.Err
	}
	for _, k := range keys {
		delete(c.values, k)
		delete(c.hashes, k)
		delete(c.sets, k)
		delete(c.ttls, k)
	}
	return nil
}

// GroupedWrite applies all ops or none.
func (c *Cache) GroupedWrite(_ context.Context, ops ...shared.CacheOp) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls["GroupedWrite"]++
	if c.Err != nil {
		return c.Err
	}
	for _, op := range ops {
		switch op.Kind {
		case shared.CacheOpSet:
			c.values[op.Key] = slices.Clone(op.Value)
			c.ttls[op.Key] = op.TTL
		case shared.CacheOpSetField:
			if c.hashes[op.Key] == nil {
				c.hashes[op.Key] = map[string][]byte{}
			}
			c.hashes[op.Key][op.Field] = slices.Clone(op.Value)
		case shared.CacheOpExpire:
			c.ttls[op.Key] = op.TTL
		case shared.CacheOpAddMember:
			if c.sets[op.Key] == nil {
				c.sets[op.Key] = map[string]struct{}{}
			}
			c.sets[op.Key][op.Member] = struct{}{}
		}
	}
	return nil
}

// Calls reports how many times method was invoked, failed calls included.
func (c *Cache) Calls(method string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[method]
}

func (c *Cache) Field(key, field string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.hashes[key][field]
	return v, ok
}

func (c *Cache) TTL(key string) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ttls[key]
}

func (c *Cache) HasKey(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, v := c.values[key]
	_, h := c.hashes[key]
	_, s := c.sets[key]
	return v || h || s
}
