//go:generate mockgen -source ./carrier_cache.go -destination=./mocks/carrier_cache.go -package=mock_cache
package cache

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
)

type CarrierRepository interface {
	GetAll(ctx context.Context, includeDeleted bool) ([]*repository.Carrier, error)
	GetByID(ctx context.Context, id string) (*repository.Carrier, error)
}

// CarrierCache is a read-through cache of the carrier feed.
type CarrierCache struct {
	mu     sync.RWMutex
	cache  map[string]*repository.Carrier
	repo   CarrierRepository
	logger *zap.Logger
}

func NewCarrierCache(repo CarrierRepository, logger *zap.Logger) *CarrierCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CarrierCache{
		cache:  make(map[string]*repository.Carrier),
		repo:   repo,
		logger: logger,
	}
}

// LoadInitialData replaces the cache content with all carriers, deleted ones
// included.
func (c *CarrierCache) LoadInitialData(ctx context.Context) error {
	c.logger.Info("Loading carriers into cache")
	carriers, err := c.repo.GetAll(ctx, true)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]*repository.Carrier, len(carriers))
	for _, carrier := range carriers {
		carrierCopy := *carrier
		c.cache[carrier.ID] = &carrierCopy
	}
	metrics.CarrierCacheItems.Set(float64(len(c.cache)))
	c.logger.Info("Carrier cache loaded", zap.Int("count", len(c.cache)))
	return nil
}

// Get returns a copy of the cached carrier, loading it on a miss.
func (c *CarrierCache) Get(ctx context.Context, id string) (*repository.Carrier, error) {
	c.mu.RLock()
	carrier, found := c.cache[id]
	c.mu.RUnlock()
	if found {
		carrierCopy := *carrier
		return &carrierCopy, nil
	}

	carrier, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Set(carrier)
	carrierCopy := *carrier
	return &carrierCopy, nil
}

func (c *CarrierCache) Set(carrier *repository.Carrier) {
	c.mu.Lock()
	defer c.mu.Unlock()
	carrierCopy := *carrier
	c.cache[carrier.ID] = &carrierCopy
	metrics.CarrierCacheItems.Set(float64(len(c.cache)))
}

func (c *CarrierCache) Delete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.cache[id]; found {
		delete(c.cache, id)
		metrics.CarrierCacheItems.Set(float64(len(c.cache)))
		c.logger.Debug("Carrier evicted from cache", zap.String("carrier_id", id))
	}
}

func (c *CarrierCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}
