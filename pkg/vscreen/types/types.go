package types

import (
	"fmt"
	"time"
)

// Bar is one trading day for a symbol. Unadjusted prices.
type Bar struct {
	Date   time.Time
	Open   float64
	Close  float64
	Volume float64
}

// BarSeries is a chronologically ordered run of daily bars for one symbol.
type BarSeries []Bar

// Empty reports whether the series holds no bars.
func (s BarSeries) Empty() bool { return len(s) == 0 }

// Last returns the most recent bar. Callers must check Empty first.
func (s BarSeries) Last() Bar { return s[len(s)-1] }

// Result is one passing row of the screen.
type Result struct {
	Ticker          string    // exchange-qualified, e.g. "7203.T"
	Code            string    // bare code, e.g. "7203"
	Name            string    // optional, filled by enrichment
	Date            time.Time // last bar date
	Close           float64
	DayChangePct    float64
	TodayVolume     int64
	TodayRatio      float64
	RecentAvgVolume int64
	BaseAvgVolume   int64
	RecentRatio     float64
}

// Params holds the screen thresholds for one run. Immutable once built.
type Params struct {
	LookbackDays   int     // calendar days of history per symbol
	RecentDays     int     // trailing window for the build-up average
	BaseDays       int     // comparison window preceding the recent window
	MinRecentRatio float64 // recent/base volume ratio floor
	SpikeDays      int     // window (excluding today) behind the spike ratio
	MinSpikeRatio  float64 // today/spike-base volume ratio floor
	MaxDayChange   float64 // upper bound on day change percent
	MinBaseVolume  float64 // liquidity floor on the base average
	TopN           int     // result count limit
}

// Default mirrors the screen's stock settings.
func Default() Params {
	return Params{
		LookbackDays:   160,
		RecentDays:     5,
		BaseDays:       20,
		MinRecentRatio: 1.5,
		SpikeDays:      20,
		MinSpikeRatio:  3.0,
		MaxDayChange:   5,
		MinBaseVolume:  100000,
		TopN:           50,
	}
}

// Validate checks every threshold against its accepted range.
func (p Params) Validate() error {
	checks := []struct {
		name    string
		ok      bool
		allowed string
	}{
		{"lookback", p.LookbackDays >= 60 && p.LookbackDays <= 260, "60-260"},
		{"recent", p.RecentDays >= 3 && p.RecentDays <= 10, "3-10"},
		{"base", p.BaseDays >= 10 && p.BaseDays <= 60, "10-60"},
		{"min-recent-ratio", p.MinRecentRatio >= 1.0 && p.MinRecentRatio <= 5.0, "1.0-5.0"},
		{"spike", p.SpikeDays >= 10 && p.SpikeDays <= 60, "10-60"},
		{"min-spike-ratio", p.MinSpikeRatio >= 1.0 && p.MinSpikeRatio <= 10.0, "1.0-10.0"},
		{"max-day-change", p.MaxDayChange >= 1 && p.MaxDayChange <= 15, "1-15"},
		{"min-base-volume", p.MinBaseVolume >= 0, ">=0"},
		{"top", p.TopN >= 10 && p.TopN <= 200, "10-200"},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%s out of range (allowed %s)", c.name, c.allowed)
		}
	}
	return nil
}

// MinBars is the fewest bars a series needs before evaluation makes sense.
// A little slack is kept beyond the raw window sizes.
func (p Params) MinBars() int {
	n := p.RecentDays + p.BaseDays + 5
	if v := p.SpikeDays + 5; v > n {
		n = v
	}
	if v := p.BaseDays + 10; v > n {
		n = v
	}
	return n
}
