// Package history fetches daily price/volume bars for symbols.
package history

import (
	"context"

	"github.com/SYUPEHUB/tse-volume-screener/pkg/vscreen/types"
)

// Source fetches daily bars for one symbol over a lookback window in
// calendar days. An empty series means "no usable data"; implementations
// return errors only for transport-level faults, and callers are expected
// to treat those the same as an empty series.
type Source interface {
	Fetch(ctx context.Context, symbol string, lookbackDays int) (types.BarSeries, error)
}
