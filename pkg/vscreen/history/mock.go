package history

import (
	"context"
	"time"

	"github.com/SYUPEHUB/tse-volume-screener/pkg/vscreen/types"
)

// MockSource serves fixed series per symbol, for development and tests.
type MockSource struct {
	Series map[string]types.BarSeries
	Err    error
	Calls  []string // symbols fetched, in order
}

func (m *MockSource) Fetch(_ context.Context, symbol string, _ int) (types.BarSeries, error) {
	m.Calls = append(m.Calls, symbol)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Series[symbol], nil
}

// FlatSeries builds n bars ending today with constant close and volume.
// Helpful as a baseline that individual tests then perturb.
func FlatSeries(n int, close, volume float64) types.BarSeries {
	bars := make(types.BarSeries, n)
	for i := range bars {
		bars[i] = types.Bar{
			Date:   time.Now().AddDate(0, 0, -(n - 1 - i)),
			Open:   close,
			Close:  close,
			Volume: volume,
		}
	}
	return bars
}
