package cache

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/Vedant222005/Messmate/internal/domain"
	"github.com/Vedant222005/Messmate/internal/metrics"
)

type MessLister interface {
	ListAllActive(ctx context.Context) ([]*domain.Mess, error)
}

// MessCache keeps the active catalog in memory for the public listing.
// Writes go through Set/Delete so the cache tracks mess mutations.
type MessCache struct {
	mu     sync.RWMutex
	cache  map[string]*domain.Mess
	lister MessLister
	logger *zap.Logger
}

func NewMessCache(lister MessLister, logger *zap.Logger) *MessCache {
	return &MessCache{
		cache:  make(map[string]*domain.Mess),
		lister: lister,
		logger: logger,
	}
}

func (c *MessCache) LoadInitialData(ctx context.Context) error {
	messes, err := c.lister.ListAllActive(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, mess := range messes {
		messCopy := *mess
		c.cache[mess.ID] = &messCopy
	}
	metrics.MessCacheItems.Set(float64(len(c.cache)))
	c.logger.Info("loaded active messes into catalog cache", zap.Int("count", len(c.cache)))
	return nil
}

func (c *MessCache) Get(id string) (*domain.Mess, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	mess, found := c.cache[id]
	if !found {
		return nil, false
	}
	messCopy := *mess
	return &messCopy, true
}

// All returns the cached catalog, newest first.
func (c *MessCache) All() []*domain.Mess {
	c.mu.RLock()
	defer c.mu.RUnlock()

	messes := make([]*domain.Mess, 0, len(c.cache))
	for _, mess := range c.cache {
		messCopy := *mess
		messes = append(messes, &messCopy)
	}
	sort.Slice(messes, func(i, j int) bool {
		return messes[i].CreatedAt.After(messes[j].CreatedAt)
	})
	return messes
}

func (c *MessCache) Set(mess *domain.Mess) {
	if !mess.IsActive {
		c.Delete(mess.ID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	messCopy := *mess
	c.cache[mess.ID] = &messCopy
	metrics.MessCacheItems.Set(float64(len(c.cache)))
}

func (c *MessCache) Delete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.cache[id]; found {
		delete(c.cache, id)
		metrics.MessCacheItems.Set(float64(len(c.cache)))
	}
}
