package history

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SYUPEHUB/tse-volume-screener/pkg/vscreen/types"
)

// countingSource wraps a Source and counts pass-through fetches.
type countingSource struct {
	next  Source
	count int
}

func (c *countingSource) Fetch(ctx context.Context, symbol string, lookbackDays int) (types.BarSeries, error) {
	c.count++
	return c.next.Fetch(ctx, symbol, lookbackDays)
}

func TestCacheSource_Memoizes(t *testing.T) {
	inner := &countingSource{next: &MockSource{Series: map[string]types.BarSeries{
		"7203.T": FlatSeries(10, 1000, 50000),
	}}}
	c := NewCacheSource(inner)
	ctx := context.Background()

	first, err := c.Fetch(ctx, "7203.T", 160)
	require.NoError(t, err)
	second, err := c.Fetch(ctx, "7203.T", 160)
	require.NoError(t, err)

	assert.Equal(t, 1, inner.count, "identical (symbol, lookback) must hit the cache")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, c.Len())
}

func TestCacheSource_KeyIncludesLookback(t *testing.T) {
	inner := &countingSource{next: &MockSource{}}
	c := NewCacheSource(inner)
	ctx := context.Background()

	_, _ = c.Fetch(ctx, "7203.T", 160)
	_, _ = c.Fetch(ctx, "7203.T", 260)
	_, _ = c.Fetch(ctx, "6758.T", 160)

	assert.Equal(t, 3, inner.count)
	assert.Equal(t, 3, c.Len())
}

func TestCacheSource_CachesEmptyResults(t *testing.T) {
	inner := &countingSource{next: &MockSource{}} // every symbol empty
	c := NewCacheSource(inner)
	ctx := context.Background()

	s, err := c.Fetch(ctx, "0000.T", 160)
	require.NoError(t, err)
	assert.True(t, s.Empty())
	_, _ = c.Fetch(ctx, "0000.T", 160)
	assert.Equal(t, 1, inner.count, "empty is a result, not a retry trigger")
}

func TestCacheSource_ErrorsNotCached(t *testing.T) {
	inner := &countingSource{next: &MockSource{Err: errors.New("down")}}
	c := NewCacheSource(inner)
	ctx := context.Background()

	_, err := c.Fetch(ctx, "7203.T", 160)
	require.Error(t, err)
	assert.Equal(t, 0, c.Len())
}
