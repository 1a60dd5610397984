// Package screen evaluates bar series against the volume initial-move
// conditions and runs the screen over a symbol list.
package screen

import (
	"math"

	"github.com/SYUPEHUB/tse-volume-screener/pkg/vscreen/codes"
	"github.com/SYUPEHUB/tse-volume-screener/pkg/vscreen/types"
)

// SkipReason names why a symbol dropped out of the screen. Skips are
// expected in normal operation and are never fatal.
type SkipReason string

const (
	SkipNone         SkipReason = ""
	SkipFetchFailed  SkipReason = "fetch_failed"
	SkipShortHistory SkipReason = "short_history"
	SkipBadPrevClose SkipReason = "bad_prev_close"
	SkipPriceRan     SkipReason = "price_ran"
	SkipBadBaseAvg   SkipReason = "bad_base_avg"
	SkipIlliquid     SkipReason = "illiquid"
	SkipLowRecent    SkipReason = "low_recent_ratio"
	SkipBadSpikeBase SkipReason = "bad_spike_base"
	SkipLowSpike     SkipReason = "low_spike_ratio"
	SkipNoContinuity SkipReason = "no_continuity"
)

// Evaluate runs one symbol's series through the filter chain. It returns
// either a Result or the reason the symbol was skipped. Any undefined
// arithmetic (NaN, zero denominators) is a skip, never an error.
func Evaluate(symbol string, bars types.BarSeries, p types.Params) (*types.Result, SkipReason) {
	n := len(bars)
	if n < p.MinBars() {
		return nil, SkipShortHistory
	}

	todayClose := bars[n-1].Close
	prevClose := bars[n-2].Close
	if prevClose <= 0 {
		return nil, SkipBadPrevClose
	}
	dayChange := (todayClose - prevClose) / prevClose * 100
	if math.IsNaN(dayChange) {
		return nil, SkipBadPrevClose
	}

	// Price must not have run yet. Only the upside is bounded; large
	// negative moves pass through.
	if dayChange > p.MaxDayChange {
		return nil, SkipPriceRan
	}

	// Gradual build-up: recent window vs the base window just before it.
	recentAvg := meanVolume(bars[n-p.RecentDays : n])
	baseAvg := meanVolume(bars[n-p.RecentDays-p.BaseDays : n-p.RecentDays])
	if math.IsNaN(recentAvg) || math.IsNaN(baseAvg) || baseAvg <= 0 {
		return nil, SkipBadBaseAvg
	}
	if baseAvg < p.MinBaseVolume {
		return nil, SkipIlliquid
	}
	recentRatio := recentAvg / baseAvg
	if recentRatio < p.MinRecentRatio {
		return nil, SkipLowRecent
	}

	// Single-day spike: today vs the spikeDays average ending yesterday.
	todayVolume := bars[n-1].Volume
	spikeBase := meanVolume(bars[n-1-p.SpikeDays : n-1])
	if math.IsNaN(spikeBase) || spikeBase <= 0 {
		return nil, SkipBadSpikeBase
	}
	todayRatio := todayVolume / spikeBase
	if todayRatio < p.MinSpikeRatio {
		return nil, SkipLowSpike
	}

	// Continuity: the prior day must already sit above the spike base, so
	// an isolated one-day tick flanked by a quiet day does not qualify.
	if bars[n-2].Volume < spikeBase {
		return nil, SkipNoContinuity
	}

	return &types.Result{
		Ticker:          symbol,
		Code:            codes.Code(symbol),
		Date:            bars[n-1].Date,
		Close:           todayClose,
		DayChangePct:    dayChange,
		TodayVolume:     int64(todayVolume),
		TodayRatio:      todayRatio,
		RecentAvgVolume: int64(recentAvg),
		BaseAvgVolume:   int64(baseAvg),
		RecentRatio:     recentRatio,
	}, SkipNone
}

func meanVolume(bars []types.Bar) float64 {
	if len(bars) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, b := range bars {
		sum += b.Volume
	}
	return sum / float64(len(bars))
}
