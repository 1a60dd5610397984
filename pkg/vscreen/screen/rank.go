package screen

import (
	"sort"

	"github.com/SYUPEHUB/tse-volume-screener/pkg/vscreen/types"
)

// Rank orders rows by today's volume ratio, then the recent/base ratio,
// both descending, and keeps the first topN.
func Rank(rows []types.Result, topN int) []types.Result {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].TodayRatio != rows[j].TodayRatio {
			return rows[i].TodayRatio > rows[j].TodayRatio
		}
		return rows[i].RecentRatio > rows[j].RecentRatio
	})
	if topN > 0 && len(rows) > topN {
		rows = rows[:topN]
	}
	return rows
}
