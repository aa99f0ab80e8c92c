package feed

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Market identifies one tradable synthetic instrument on the feed.
type Market struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name,omitempty"`
}

type watchlistFile struct {
	Watchlist []Market `yaml:"watchlist"`
}

// DefaultMarkets is the built-in set of synthetic volatility indices the
// scanner sweeps when no watchlist file is configured.
func DefaultMarkets() []Market {
	return []Market{
		{ID: "R_10", Name: "Volatility 10 Index"},
		{ID: "R_25", Name: "Volatility 25 Index"},
		{ID: "R_50", Name: "Volatility 50 Index"},
		{ID: "R_75", Name: "Volatility 75 Index"},
		{ID: "R_100", Name: "Volatility 100 Index"},
		{ID: "1HZ10V", Name: "Volatility 10 (1s) Index"},
		{ID: "1HZ25V", Name: "Volatility 25 (1s) Index"},
		{ID: "1HZ50V", Name: "Volatility 50 (1s) Index"},
		{ID: "1HZ75V", Name: "Volatility 75 (1s) Index"},
		{ID: "1HZ100V", Name: "Volatility 100 (1s) Index"},
	}
}

// LoadMarkets returns the watchlist from the given YAML file, or the default
// set when path is empty.
func LoadMarkets(path string) ([]Market, error) {
	if path == "" {
		return DefaultMarkets(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var wf watchlistFile
	if err := yaml.Unmarshal(b, &wf); err != nil {
		return nil, err
	}
	if len(wf.Watchlist) == 0 {
		return DefaultMarkets(), nil
	}
	return wf.Watchlist, nil
}
