package snapshot

import (
	"context"
	"sync"
)

// Cache is an optional warm-start layer for the snapshot Service. A hit lets
// a new session render with the previous session's plan while the fresh fetch
// is in flight. Implementations must treat a cached nil subscription (user on
// the implicit free plan) as a valid hit.
type Cache interface {
	Get(ctx context.Context) (sub *Subscription, ok bool, err error)
	Set(ctx context.Context, sub *Subscription) error
	Delete(ctx context.Context) error
}

// memoryCache is a process-local Cache, mainly useful in tests and
// single-process deployments.
type memoryCache struct {
	mu  sync.RWMutex
	sub *Subscription
	set bool
}

// NewMemoryCache returns an in-memory Cache.
func NewMemoryCache() Cache {
	return &memoryCache{}
}

func (c *memoryCache) Get(ctx context.Context) (*Subscription, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.set {
		return nil, false, nil
	}
	if c.sub == nil {
		return nil, true, nil
	}
	sub := *c.sub
	return &sub, true, nil
}

func (c *memoryCache) Set(ctx context.Context, sub *Subscription) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if sub == nil {
		c.sub = nil
	} else {
		subCopy := *sub
		c.sub = &subCopy
	}
	c.set = true
	return nil
}

func (c *memoryCache) Delete(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sub = nil
	c.set = false
	return nil
}
