package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SYUPEHUB/tse-volume-screener/pkg/vscreen/types"
)

func sampleRows() []types.Result {
	return []types.Result{{
		Ticker:          "7203.T",
		Code:            "7203",
		Name:            "トヨタ自動車",
		Date:            time.Date(2025, 8, 28, 0, 0, 0, 0, time.UTC),
		Close:           1030.5,
		DayChangePct:    3.04999,
		TodayVolume:     600000,
		TodayRatio:      5.357142,
		RecentAvgVolume: 248000,
		BaseAvgVolume:   100000,
		RecentRatio:     2.48,
	}}
}

func TestCSVRenderer(t *testing.T) {
	var buf bytes.Buffer
	err := NewCSVRenderer().Render(&buf, sampleRows(), Options{})
	require.NoError(t, err)

	out := buf.Bytes()
	require.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}), "export must carry a UTF-8 BOM")

	lines := strings.Split(strings.TrimSpace(string(out[3:])), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ticker,code,date,close,chg%,volume,vol_ratio,recent_avg,base_avg,recent_ratio", lines[0])
	assert.Equal(t, `7203.T,7203,2025-08-28,1030.50,3.05,"600,000",5.36,"248,000","100,000",2.48`, lines[1])
}

func TestCSVRenderer_NameColumn(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVRenderer().Render(&buf, sampleRows(), Options{Names: true}))

	s := string(buf.Bytes()[3:])
	assert.Contains(t, s, "ticker,code,name,date")
	assert.Contains(t, s, "トヨタ自動車")
}

func TestWriteCSVFile_DefaultName(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	path, err := WriteCSVFile("", sampleRows(), Options{})
	require.NoError(t, err)
	assert.Equal(t, ExportFilename, path)

	data, err := os.ReadFile(filepath.Join(dir, ExportFilename))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))
}

func TestFormatIntComma(t *testing.T) {
	assert.Equal(t, "0", formatIntComma(0))
	assert.Equal(t, "999", formatIntComma(999))
	assert.Equal(t, "1,000", formatIntComma(1000))
	assert.Equal(t, "600,000", formatIntComma(600000))
	assert.Equal(t, "1,234,567", formatIntComma(1234567))
	assert.Equal(t, "-45,000", formatIntComma(-45000))
}
