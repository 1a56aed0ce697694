package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "https://lotto.api.rayriffy.com", cfg.API.BaseURL)
	assert.Equal(t, 8*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "data/draw_history.json", cfg.Store.Path)
	assert.Equal(t, 5, cfg.Engine.WeightCulture)
	assert.Equal(t, 3, cfg.Engine.WeightSeasonal)
	assert.Equal(t, 1, cfg.Engine.WeightRecent)
	assert.Equal(t, 0, cfg.Engine.WeightWeekday)
	assert.Equal(t, -5, cfg.Engine.WeightPenalty)
	assert.Equal(t, 5, cfg.Engine.RecentWindow)
	assert.Equal(t, MatchMonth, cfg.Engine.SeasonalMatch)
	assert.Equal(t, 10, cfg.Backfill.Years)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: "http://localhost:9999"
  request_timeout: 4s
store:
  path: "testdata/history.json"
engine:
  weight_culture: 7
  weight_seasonal: 2
  weight_weekday: 2
  weight_penalty: -20
  recent_window: 20
  seasonal_match: month_day
backfill:
  years: 3
  concurrency: 2
server:
  addr: ":9090"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999", cfg.API.BaseURL)
	assert.Equal(t, 4*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "testdata/history.json", cfg.Store.Path)
	assert.Equal(t, 7, cfg.Engine.WeightCulture)
	assert.Equal(t, 2, cfg.Engine.WeightSeasonal)
	assert.Equal(t, 2, cfg.Engine.WeightWeekday)
	assert.Equal(t, -20, cfg.Engine.WeightPenalty)
	assert.Equal(t, 20, cfg.Engine.RecentWindow)
	assert.Equal(t, MatchMonthDay, cfg.Engine.SeasonalMatch)
	assert.Equal(t, 3, cfg.Backfill.Years)
	assert.Equal(t, 2, cfg.Backfill.Concurrency)
	assert.Equal(t, ":9090", cfg.Server.Addr)

	// Fields the file did not set keep their defaults.
	assert.Equal(t, 1, cfg.Engine.WeightRecent)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
engine:
  weight_culture: 9
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Engine.WeightCulture)
	assert.Equal(t, "https://lotto.api.rayriffy.com", cfg.API.BaseURL)
	assert.Equal(t, 8*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, 5, cfg.Engine.RecentWindow)
	assert.Equal(t, MatchMonth, cfg.Engine.SeasonalMatch)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/non/existent/config.yaml")
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, `
engine:
  weight_culture: "not a number"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "bad seasonal match",
			content: `
engine:
  seasonal_match: week
`,
			wantErr: "invalid seasonal_match",
		},
		{
			name: "positive penalty",
			content: `
engine:
  weight_penalty: 5
`,
			wantErr: "weight_penalty must be <= 0",
		},
		{
			name: "timeout too short",
			content: `
api:
  request_timeout: 1s
`,
			wantErr: "request_timeout",
		},
		{
			name: "timeout too long",
			content: `
api:
  request_timeout: 30s
`,
			wantErr: "request_timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
