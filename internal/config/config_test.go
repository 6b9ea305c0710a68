package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := LoadForTests(map[string]string{
		"DATABASE_URL":             "postgres://localhost/tour",
		"REDIS_URL":                "redis://localhost:6379/0",
		"PRICING_EDITOR_PAX_SLABS": "",
		"PRICING_EXPORT_PAX_SLABS": "",
	})
	require.NoError(t, err)

	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, ":8080", cfg.HTTPAddr())
	require.Equal(t, "USD", cfg.CurrencyCode)
	require.Equal(t, []int{1, 2, 4, 6, 8, 10, 15, 20}, cfg.EditorPaxSlabs)
	require.Equal(t, []int{2, 4, 6, 8, 10}, cfg.ExportPaxSlabs)
	require.Equal(t, 5*time.Minute, cfg.DirectoryCacheTTL)
	require.Equal(t, time.Minute, cfg.ExportRateWindow)
	require.Equal(t, 10, cfg.ExportRateMax)
}

func TestLoadParsesSlabLists(t *testing.T) {
	cfg, err := LoadForTests(map[string]string{
		"DATABASE_URL":             "postgres://localhost/tour",
		"REDIS_URL":                "redis://localhost:6379/0",
		"PRICING_EDITOR_PAX_SLABS": "2, 4, 0, -3, 6",
		"PRICING_EXPORT_PAX_SLABS": "junk",
	})
	require.NoError(t, err)

	require.Equal(t, []int{2, 4, 6}, cfg.EditorPaxSlabs, "invalid entries are dropped")
	require.Equal(t, []int{2, 4, 6, 8, 10}, cfg.ExportPaxSlabs, "unparseable list falls back to defaults")
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	_, err := LoadForTests(map[string]string{
		"DATABASE_URL": "",
		"REDIS_URL":    "redis://localhost:6379/0",
	})
	require.Error(t, err)
}
