package feed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMarketsDefaults(t *testing.T) {
	markets, err := LoadMarkets("")
	require.NoError(t, err)
	require.Len(t, markets, 10)
	require.Equal(t, "R_10", markets[0].ID)
}

func TestLoadMarketsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watchlist.yaml")
	content := `watchlist:
  - id: R_50
    name: Volatility 50 Index
  - id: 1HZ100V
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	markets, err := LoadMarkets(path)
	require.NoError(t, err)
	require.Len(t, markets, 2)
	require.Equal(t, Market{ID: "R_50", Name: "Volatility 50 Index"}, markets[0])
	require.Equal(t, "1HZ100V", markets[1].ID)
}

func TestLoadMarketsEmptyFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watchlist.yaml")
	require.NoError(t, os.WriteFile(path, []byte("watchlist: []\n"), 0o644))

	markets, err := LoadMarkets(path)
	require.NoError(t, err)
	require.Len(t, markets, 10)
}

func TestLoadMarketsMissingFile(t *testing.T) {
	_, err := LoadMarkets(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
