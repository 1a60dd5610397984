package history

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/SYUPEHUB/tse-volume-screener/pkg/vscreen/types"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// YahooSource fetches daily bars from the Yahoo Finance chart API,
// unadjusted, no dividend/split events.
type YahooSource struct {
	Client  *http.Client
	BaseURL string
}

// NewYahooSource builds a source with a sane request timeout.
func NewYahooSource() *YahooSource {
	return &YahooSource{
		Client:  &http.Client{Timeout: 30 * time.Second},
		BaseURL: defaultBaseURL,
	}
}

// chartResponse is the subset of the chart API payload we read.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Fetch requests daily bars from now-lookbackDays to now. Bars with any
// missing field are dropped; the result is chronological. A response with
// no rows, an API-level error, or a missing column yields an empty series
// and no error.
func (s *YahooSource) Fetch(ctx context.Context, symbol string, lookbackDays int) (types.BarSeries, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -lookbackDays)

	q := url.Values{}
	q.Set("interval", "1d")
	q.Set("period1", fmt.Sprint(start.Unix()))
	q.Set("period2", fmt.Sprint(end.Unix()))
	q.Set("events", "")
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", s.BaseURL, url.PathEscape(symbol), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch %s: %w", symbol, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		// Unknown symbols come back as 404; that is "no data", not a fault.
		return nil, nil
	}

	var chart chartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil || len(chart.Chart.Result) == 0 {
		return nil, nil
	}
	result := chart.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		return nil, nil
	}

	quote := result.Indicators.Quote[0]
	if len(quote.Open) != len(result.Timestamp) ||
		len(quote.Close) != len(result.Timestamp) ||
		len(quote.Volume) != len(result.Timestamp) {
		return nil, nil
	}

	bars := make(types.BarSeries, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		o, c, v := quote.Open[i], quote.Close[i], quote.Volume[i]
		if o == nil || c == nil || v == nil {
			continue // holiday / halted bar
		}
		bars = append(bars, types.Bar{
			Date:   time.Unix(ts, 0),
			Open:   *o,
			Close:  *c,
			Volume: *v,
		})
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return bars, nil
}
