package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"melonrank/internal/melon"
)

// YAMLConfig represents the structure of the config.yaml file.
// Chart scraping settings change with the source page, so they live in a
// file rather than in environment variables.
type YAMLConfig struct {
	ChartSource ChartSourceConfig `yaml:"chart_source"`
}

// ChartSourceConfig describes where and how the chart page is scraped.
// Empty fields keep the built-in defaults.
type ChartSourceConfig struct {
	URL       string          `yaml:"url"`
	UserAgent string          `yaml:"user_agent"`
	Selectors melon.Selectors `yaml:"selectors"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	return LoadYAMLConfigFile(getEnv("CONFIG_FILE", "config.yaml"))
}

// LoadYAMLConfigFile loads the YAML configuration from path.
func LoadYAMLConfigFile(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// FetcherOptions builds chart fetcher options from the environment config
// and the optional YAML overrides. YAML values win when set.
func (c *Config) FetcherOptions(y *YAMLConfig) []melon.Option {
	opts := []melon.Option{
		melon.WithURL(c.ChartURL),
		melon.WithTimeout(c.FetchTimeout),
	}
	if y == nil {
		return opts
	}

	src := y.ChartSource
	if src.URL != "" {
		opts = append(opts, melon.WithURL(src.URL))
	}
	if src.UserAgent != "" {
		opts = append(opts, melon.WithUserAgent(src.UserAgent))
	}

	sel := melon.DefaultSelectors
	if src.Selectors.Row != "" {
		sel.Row = src.Selectors.Row
	}
	if src.Selectors.Rank != "" {
		sel.Rank = src.Selectors.Rank
	}
	if src.Selectors.Title != "" {
		sel.Title = src.Selectors.Title
	}
	if src.Selectors.Artist != "" {
		sel.Artist = src.Selectors.Artist
	}
	return append(opts, melon.WithSelectors(sel))
}
