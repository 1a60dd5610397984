package render

import (
	"encoding/json"
	"io"

	"github.com/SYUPEHUB/tse-volume-screener/pkg/vscreen/types"
)

// jsonRow is the output shape for JSONRenderer. Raw values, not the
// two-decimal strings the table and CSV use.
type jsonRow struct {
	Ticker          string  `json:"ticker"`
	Code            string  `json:"code"`
	Name            string  `json:"name,omitempty"`
	Date            string  `json:"date"`
	Close           float64 `json:"close"`
	DayChangePct    float64 `json:"day_change_pct"`
	TodayVolume     int64   `json:"volume"`
	TodayRatio      float64 `json:"vol_ratio"`
	RecentAvgVolume int64   `json:"recent_avg_volume"`
	BaseAvgVolume   int64   `json:"base_avg_volume"`
	RecentRatio     float64 `json:"recent_ratio"`
}

type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer { return &JSONRenderer{} }

func (r *JSONRenderer) Render(w io.Writer, rows []types.Result, opts Options) error {
	out := make([]jsonRow, 0, len(rows))
	for _, res := range rows {
		out = append(out, jsonRow{
			Ticker:          res.Ticker,
			Code:            res.Code,
			Name:            res.Name,
			Date:            res.Date.Format(dateLayout),
			Close:           res.Close,
			DayChangePct:    res.DayChangePct,
			TodayVolume:     res.TodayVolume,
			TodayRatio:      res.TodayRatio,
			RecentAvgVolume: res.RecentAvgVolume,
			BaseAvgVolume:   res.BaseAvgVolume,
			RecentRatio:     res.RecentRatio,
		})
	}
	enc := json.NewEncoder(w)
	if opts.PrettyJSON {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}
