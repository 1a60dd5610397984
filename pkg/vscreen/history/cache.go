package history

import (
	"context"
	"fmt"
	"sync"

	"github.com/SYUPEHUB/tse-volume-screener/pkg/vscreen/types"
)

// CacheSource memoizes a Source by (symbol, lookback) for the life of the
// process. Runs are sequential, but the lock keeps the cache safe if a
// caller ever shares it. Only successful fetches are cached, including
// empty ones: a symbol with no data stays empty for the whole session.
type CacheSource struct {
	next Source

	mu    sync.Mutex
	items map[string]types.BarSeries
}

func NewCacheSource(next Source) *CacheSource {
	return &CacheSource{next: next, items: make(map[string]types.BarSeries)}
}

func key(symbol string, lookbackDays int) string {
	return fmt.Sprintf("%s|%d", symbol, lookbackDays)
}

func (c *CacheSource) Fetch(ctx context.Context, symbol string, lookbackDays int) (types.BarSeries, error) {
	k := key(symbol, lookbackDays)
	c.mu.Lock()
	if s, ok := c.items[k]; ok {
		c.mu.Unlock()
		return s, nil
	}
	c.mu.Unlock()

	s, err := c.next.Fetch(ctx, symbol, lookbackDays)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.items[k] = s
	c.mu.Unlock()
	return s, nil
}

// Len reports how many (symbol, lookback) pairs are cached.
func (c *CacheSource) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
