// Package enrich fills optional display fields from Yahoo quote data.
package enrich

import (
	"context"
	"fmt"
	"sync"
	"time"

	yfgo "github.com/komsit37/yf-go"

	"github.com/SYUPEHUB/tse-volume-screener/pkg/vscreen/types"
)

// NameService resolves a company name for a symbol.
type NameService interface {
	Name(ctx context.Context, sym string) (string, error)
}

// YFService implements NameService using yf-go's quote summary.
type YFService struct {
	client  *yfgo.Client
	timeout time.Duration
}

func NewYFService(timeout time.Duration) *YFService {
	return &YFService{client: yfgo.NewClient(), timeout: timeout}
}

func (s *YFService) Name(ctx context.Context, sym string) (string, error) {
	if sym == "" {
		return "", nil
	}
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	res, err := s.client.QuoteSummaryTyped(cctx, sym, []yfgo.QuoteSummaryModule{yfgo.ModulePrice})
	if err != nil {
		return "", err
	}
	if res.Price == nil {
		return "", fmt.Errorf("no price module for %s", sym)
	}
	if res.Price.ShortName != "" {
		return res.Price.ShortName, nil
	}
	return res.Price.LongName, nil
}

// CacheService decorates a NameService with a process-lifetime cache.
// Failed lookups are cached as empty so a bad symbol is asked only once.
type CacheService struct {
	next NameService

	mu    sync.Mutex
	names map[string]string
}

func NewCacheService(next NameService) *CacheService {
	return &CacheService{next: next, names: make(map[string]string)}
}

func (c *CacheService) Name(ctx context.Context, sym string) (string, error) {
	c.mu.Lock()
	if n, ok := c.names[sym]; ok {
		c.mu.Unlock()
		return n, nil
	}
	c.mu.Unlock()

	n, err := c.next.Name(ctx, sym)
	if err != nil {
		n = ""
	}
	c.mu.Lock()
	c.names[sym] = n
	c.mu.Unlock()
	return n, nil
}

// Apply fills Result.Name in place. Lookup failures leave the field empty;
// the screen result itself is never affected.
func Apply(ctx context.Context, svc NameService, rows []types.Result) {
	for i := range rows {
		if n, err := svc.Name(ctx, rows[i].Ticker); err == nil {
			rows[i].Name = n
		}
	}
}
