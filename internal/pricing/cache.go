package pricing

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/arenawatch/arenawatch-backend/internal/clock"
)

// SharedCache is an optional cross-run day-price cache (Redis in
// production). A nil SharedCache degrades to in-memory caching only.
type SharedCache interface {
	GetDayPrice(ctx context.Context, day time.Time) (float64, bool, error)
	SetDayPrice(ctx context.Context, day time.Time, price float64) error
}

// CachedOracle caches historical prices by UTC day for the lifetime of a
// run, bounding provider call volume. The current price is cached for a
// short TTL since sells close to "now" all resolve against it.
type CachedOracle struct {
	provider Oracle
	shared   SharedCache
	logger   *zap.Logger

	mu         sync.Mutex
	days       map[time.Time]float64
	current    float64
	currentSet time.Time
	currentTTL time.Duration
}

// NewCachedOracle wraps a provider with day-level caching. shared may be
// nil.
func NewCachedOracle(provider Oracle, shared SharedCache, logger *zap.Logger) *CachedOracle {
	return &CachedOracle{
		provider:   provider,
		shared:     shared,
		logger:     logger,
		days:       make(map[time.Time]float64),
		currentTTL: time.Minute,
	}
}

// PriceAt resolves a day price through the in-memory cache, then the shared
// cache, then the provider. Shared-cache failures degrade to a provider
// call, never to a lookup failure.
func (c *CachedOracle) PriceAt(ctx context.Context, day time.Time) (float64, error) {
	day = clock.UTCDay(day)

	c.mu.Lock()
	if price, ok := c.days[day]; ok {
		c.mu.Unlock()
		return price, nil
	}
	c.mu.Unlock()

	if c.shared != nil {
		price, ok, err := c.shared.GetDayPrice(ctx, day)
		if err != nil {
			c.logger.Warn("shared price cache read failed", zap.Error(err))
		} else if ok {
			c.store(day, price)
			return price, nil
		}
	}

	price, err := c.provider.PriceAt(ctx, day)
	if err != nil {
		return 0, err
	}
	c.store(day, price)

	if c.shared != nil {
		if err := c.shared.SetDayPrice(ctx, day, price); err != nil {
			c.logger.Warn("shared price cache write failed", zap.Error(err))
		}
	}
	return price, nil
}

// CurrentPrice returns the provider's current price, cached briefly.
func (c *CachedOracle) CurrentPrice(ctx context.Context) (float64, error) {
	c.mu.Lock()
	if !c.currentSet.IsZero() && time.Since(c.currentSet) < c.currentTTL {
		price := c.current
		c.mu.Unlock()
		return price, nil
	}
	c.mu.Unlock()

	price, err := c.provider.CurrentPrice(ctx)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	c.current = price
	c.currentSet = time.Now()
	c.mu.Unlock()
	return price, nil
}

func (c *CachedOracle) store(day time.Time, price float64) {
	c.mu.Lock()
	c.days[day] = price
	c.mu.Unlock()
}
