package cfb

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Built-in model parameter defaults.
const (
	DefaultHomeFieldAdvantage = 2.5
	DefaultSpreadStdDev       = 13.0
	DefaultEdgeThreshold      = 2.0
	DefaultCoverProbThreshold = 0.55
	DefaultProvider           = "consensus"
	DefaultCacheDir           = "cfb_cache"
)

// Config holds the model parameters and provider settings for a run.
// HomeFieldAdvantage is a pointer so an unset value can fall back to a
// season-type-dependent default (most postseason games are neutral site).
type Config struct {
	HomeFieldAdvantage *float64 `yaml:"home_field_advantage"`
	SpreadStdDev       float64  `yaml:"spread_std_dev"`
	EdgeThreshold      float64  `yaml:"edge_threshold"`
	CoverProbThreshold float64  `yaml:"cover_prob_threshold"`
	Provider           string   `yaml:"provider"`
	CacheDir           string   `yaml:"cache_dir"`
}

// DefaultConfig returns the built-in parameter defaults.
func DefaultConfig() Config {
	return Config{
		SpreadStdDev:       DefaultSpreadStdDev,
		EdgeThreshold:      DefaultEdgeThreshold,
		CoverProbThreshold: DefaultCoverProbThreshold,
		Provider:           DefaultProvider,
		CacheDir:           DefaultCacheDir,
	}
}

// LoadConfig reads a YAML parameter file over the defaults. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.SpreadStdDev <= 0 {
		cfg.SpreadStdDev = DefaultSpreadStdDev
	}
	if cfg.EdgeThreshold <= 0 {
		cfg.EdgeThreshold = DefaultEdgeThreshold
	}
	if cfg.CoverProbThreshold <= 0 {
		cfg.CoverProbThreshold = DefaultCoverProbThreshold
	}
	if cfg.Provider == "" {
		cfg.Provider = DefaultProvider
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = DefaultCacheDir
	}
	return cfg, nil
}

// HomeField resolves the home-field advantage for a season type: an
// explicit setting always wins, otherwise the regular season gets the
// standard advantage and the neutral-site postseason gets none.
func (c Config) HomeField(seasonType string) float64 {
	if c.HomeFieldAdvantage != nil {
		return *c.HomeFieldAdvantage
	}
	if seasonType == PostseasonType {
		return 0
	}
	return DefaultHomeFieldAdvantage
}
