package screen

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/SYUPEHUB/tse-volume-screener/pkg/vscreen/history"
	"github.com/SYUPEHUB/tse-volume-screener/pkg/vscreen/types"
)

// ErrNoCodes means the run was started with an empty symbol list.
var ErrNoCodes = errors.New("no codes to screen")

// ErrNoMatches means every symbol was processed and none passed. Distinct
// from a processing failure; callers usually print a notice and exit clean.
var ErrNoMatches = errors.New("no symbols matched")

// Progress is called after each symbol completes, pass or skip.
type Progress func(current, total int, symbol string)

// Summary accounts for one run.
type Summary struct {
	Processed int
	Passed    int
	Skips     map[SkipReason]int
}

// Screener runs the filter chain over a symbol list, one symbol at a time.
type Screener struct {
	Source     history.Source
	Params     types.Params
	OnProgress Progress
}

// Run fetches and evaluates every symbol in order and returns the passing
// rows ranked and truncated to TopN. Per-symbol failures (fetch errors,
// short or empty history, filter misses) are absorbed as skips; only an
// empty input list or an empty result set surface, as ErrNoCodes and
// ErrNoMatches. Cancellation is honored between symbols.
func (s *Screener) Run(ctx context.Context, symbols []string) ([]types.Result, Summary, error) {
	sum := Summary{Skips: make(map[SkipReason]int)}
	if len(symbols) == 0 {
		return nil, sum, ErrNoCodes
	}

	var rows []types.Result
	for i, sym := range symbols {
		if err := ctx.Err(); err != nil {
			return nil, sum, err
		}

		bars, err := s.Source.Fetch(ctx, sym, s.Params.LookbackDays)
		if err != nil {
			log.Debug().Str("symbol", sym).Err(err).Msg("fetch failed, skipping")
			sum.Skips[SkipFetchFailed]++
		} else if row, reason := Evaluate(sym, bars, s.Params); reason != SkipNone {
			log.Debug().Str("symbol", sym).Str("reason", string(reason)).Msg("skipped")
			sum.Skips[reason]++
		} else {
			rows = append(rows, *row)
			sum.Passed++
		}
		sum.Processed++

		if s.OnProgress != nil {
			s.OnProgress(i+1, len(symbols), sym)
		}
	}

	if len(rows) == 0 {
		return nil, sum, ErrNoMatches
	}
	return Rank(rows, s.Params.TopN), sum, nil
}
