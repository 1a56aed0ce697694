package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SeasonalMatch selects how the seasonal factor compares a stored draw
// date against the target draw date.
type SeasonalMatch string

const (
	// MatchMonth counts every record drawn in the target month.
	MatchMonth SeasonalMatch = "month"
	// MatchMonthDay counts only records drawn on the same day and month.
	MatchMonthDay SeasonalMatch = "month_day"
)

type APIConfig struct {
	BaseURL        string        `yaml:"base_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

type StoreConfig struct {
	Path string `yaml:"path"`
}

type EngineConfig struct {
	WeightCulture  int           `yaml:"weight_culture"`
	WeightSeasonal int           `yaml:"weight_seasonal"`
	WeightRecent   int           `yaml:"weight_recent"`
	WeightWeekday  int           `yaml:"weight_weekday"`
	WeightPenalty  int           `yaml:"weight_penalty"`
	RecentWindow   int           `yaml:"recent_window"`
	SeasonalMatch  SeasonalMatch `yaml:"seasonal_match"`
}

type BackfillConfig struct {
	Years       int `yaml:"years"`
	Concurrency int `yaml:"concurrency"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type Config struct {
	API      APIConfig      `yaml:"api"`
	Store    StoreConfig    `yaml:"store"`
	Engine   EngineConfig   `yaml:"engine"`
	Backfill BackfillConfig `yaml:"backfill"`
	Server   ServerConfig   `yaml:"server"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "https://lotto.api.rayriffy.com",
			RequestTimeout: 8 * time.Second,
		},
		Store: StoreConfig{
			Path: "data/draw_history.json",
		},
		Engine: EngineConfig{
			WeightCulture:  5,
			WeightSeasonal: 3,
			WeightRecent:   1,
			WeightWeekday:  0,
			WeightPenalty:  -5,
			RecentWindow:   5,
			SeasonalMatch:  MatchMonth,
		},
		Backfill: BackfillConfig{
			Years:       10,
			Concurrency: 4,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	// Set defaults for fields an explicit file may have zeroed.
	if config.API.BaseURL == "" {
		config.API.BaseURL = "https://lotto.api.rayriffy.com"
	}
	if config.API.RequestTimeout == 0 {
		config.API.RequestTimeout = 8 * time.Second
	}
	if config.Store.Path == "" {
		config.Store.Path = "data/draw_history.json"
	}
	if config.Engine.RecentWindow <= 0 {
		config.Engine.RecentWindow = 5
	}
	if config.Engine.SeasonalMatch == "" {
		config.Engine.SeasonalMatch = MatchMonth
	}
	if config.Backfill.Years <= 0 {
		config.Backfill.Years = 10
	}
	if config.Backfill.Concurrency <= 0 {
		config.Backfill.Concurrency = 4
	}
	if config.Server.Addr == "" {
		config.Server.Addr = ":8080"
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects combinations the engine cannot score sensibly with.
func (c *Config) Validate() error {
	switch c.Engine.SeasonalMatch {
	case MatchMonth, MatchMonthDay:
	default:
		return fmt.Errorf("invalid seasonal_match %q: must be %q or %q",
			c.Engine.SeasonalMatch, MatchMonth, MatchMonthDay)
	}
	if c.Engine.WeightPenalty > 0 {
		return fmt.Errorf("weight_penalty must be <= 0, got %d", c.Engine.WeightPenalty)
	}
	if t := c.API.RequestTimeout; t < 3*time.Second || t > 10*time.Second {
		return fmt.Errorf("request_timeout %s out of range: must be between 3s and 10s", t)
	}
	return nil
}
