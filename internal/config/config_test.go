package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresKenpomKey(t *testing.T) {
	t.Setenv("KENPOM_API_KEY", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "KENPOM_API_KEY")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("KENPOM_API_KEY", "k")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://kenpom.com", cfg.KenpomBaseURL)
	assert.Equal(t, 60, cfg.KenpomRPM)
	assert.Equal(t, 5001, cfg.APIPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.True(t, cfg.RateLimitEnabled)
	assert.True(t, cfg.CacheEnabled)
	assert.False(t, cfg.InjuryEnabled())
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("KENPOM_API_KEY", "k")
	t.Setenv("ANTHROPIC_API_KEY", "a")
	t.Setenv("API_PORT", "8080")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("SEASON_YEAR", "2027")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.InjuryEnabled())
	assert.Equal(t, 8080, cfg.APIPort)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigins)
	assert.False(t, cfg.RateLimitEnabled)
	assert.Equal(t, 2027, cfg.SeasonYear)
}

func TestDefaultSeasonYear(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2025-08-01", 2026},
		{"2025-11-15", 2026},
		{"2026-01-10", 2026},
		{"2026-03-31", 2026},
		{"2026-07-31", 2026},
		{"2026-08-01", 2027},
	}

	for _, tt := range tests {
		now, err := time.Parse("2006-01-02", tt.date)
		require.NoError(t, err)
		assert.Equal(t, tt.want, DefaultSeasonYear(now), "date %s", tt.date)
	}
}
