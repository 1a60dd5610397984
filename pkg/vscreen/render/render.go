// Package render turns screen results into tables, CSV and JSON.
package render

import (
	"io"
	"strconv"

	"github.com/SYUPEHUB/tse-volume-screener/pkg/vscreen/types"
)

// Renderer renders ranked screen results to an output writer.
type Renderer interface {
	Render(w io.Writer, rows []types.Result, opts Options) error
}

type Options struct {
	Color       bool
	PrettyJSON  bool
	MaxColWidth int
	Names       bool // include the NAME column (enrichment must have run)
}

// ExportFilename is the deterministic name of the CSV export.
const ExportFilename = "tse_volume_initial_move.csv"

const dateLayout = "2006-01-02"

// Headers returns the column set, in order, shared by every renderer.
func Headers(names bool) []string {
	h := []string{"ticker", "code"}
	if names {
		h = append(h, "name")
	}
	return append(h,
		"date", "close", "chg%", "volume", "vol_ratio",
		"recent_avg", "base_avg", "recent_ratio")
}

// Record formats one result into strings matching Headers. Prices, the
// day change and both ratios carry two decimals; volumes are grouped.
func Record(r types.Result, names bool) []string {
	rec := []string{r.Ticker, r.Code}
	if names {
		rec = append(rec, r.Name)
	}
	return append(rec,
		r.Date.Format(dateLayout),
		formatFloat(r.Close, 2),
		formatFloat(r.DayChangePct, 2),
		formatIntComma(r.TodayVolume),
		formatFloat(r.TodayRatio, 2),
		formatIntComma(r.RecentAvgVolume),
		formatIntComma(r.BaseAvgVolume),
		formatFloat(r.RecentRatio, 2),
	)
}

func formatFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

func formatIntComma(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	out := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
