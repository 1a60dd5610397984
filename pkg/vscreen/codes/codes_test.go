package codes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"four digit codes get suffix", "7203\n6758", []string{"6758.T", "7203.T"}},
		{"qualified symbols pass through", "7203.T,AAPL", []string{"7203.T", "AAPL"}},
		{"mixed separators", "7203, 6758\n9984,\n", []string{"6758.T", "7203.T", "9984.T"}},
		{"dedup across forms", "7203,7203\n7203", []string{"7203.T"}},
		{"non-code tokens verbatim", "720\n72030\nabcd\n12a4", []string{"12a4", "720", "72030", "abcd"}},
		{"whitespace only", "  \n , ,\n", []string{}},
		{"empty", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.in))
		})
	}
}

func TestParse_SortedRegardlessOfOrder(t *testing.T) {
	a := Parse("9984,7203,6758")
	b := Parse("6758\n9984\n7203")
	assert.Equal(t, a, b)
	assert.Equal(t, []string{"6758.T", "7203.T", "9984.T"}, a)
}

func TestCode(t *testing.T) {
	assert.Equal(t, "7203", Code("7203.T"))
	assert.Equal(t, "AAPL", Code("AAPL"))
}

func TestLoadFile_YAMLList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("codes:\n  - 7203\n  - \"6758\"\n  - AAPL\n"), 0o644))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"6758.T", "7203.T", "AAPL"}, got)
}

func TestLoadFile_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codes.txt")
	require.NoError(t, os.WriteFile(path, []byte("7203, 6758\n9984"), 0o644))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"6758.T", "7203.T", "9984.T"}, got)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
