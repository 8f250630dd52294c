package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"country-map/internal/sources"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"ADDR", "API_BASE", "ENABLE_GOOGLE_SHEETS", "GOOGLE_SHEET_NAME", "FETCH_TIMEOUT_S", "REFRESH_INTERVAL_S", "RATE_LIMIT_QPS", "LOCATE_RADIUS_KM", "REDIS_ENABLE"} {
		t.Setenv(k, "")
	}
	c := Load()
	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, "/api", c.APIBase)
	assert.False(t, c.Sheets.Enabled)
	assert.Equal(t, sources.DefaultSheetName, c.Sheets.SheetName)
	assert.Equal(t, 10*time.Second, c.FetchTimeout)
	assert.Zero(t, c.RefreshEvery)
	assert.Equal(t, 200, c.RateLimitQPS)
	assert.Equal(t, 300.0, c.LocateRadiusKm)
	assert.False(t, c.RedisEnabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_BASE", "v1/")
	t.Setenv("ENABLE_GOOGLE_SHEETS", "TRUE")
	t.Setenv("GOOGLE_SHEET_ID", "doc")
	t.Setenv("GOOGLE_SHEETS_API_KEY", "key")
	t.Setenv("FETCH_TIMEOUT_S", "3")
	t.Setenv("REFRESH_INTERVAL_S", "600")
	t.Setenv("REDIS_DB", "-1")
	t.Setenv("LOCATE_RADIUS_KM", "abc")
	c := Load()
	assert.Equal(t, "/v1", c.APIBase)
	assert.True(t, c.Sheets.Enabled)
	assert.Equal(t, "doc", c.Sheets.SheetID)
	assert.Equal(t, "key", c.Sheets.APIKey)
	assert.Equal(t, 3*time.Second, c.FetchTimeout)
	assert.Equal(t, 10*time.Minute, c.RefreshEvery)
	assert.Equal(t, 0, c.RedisDB)
	assert.Equal(t, 300.0, c.LocateRadiusKm)
}

func TestZeroValues(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT_S", "0")
	t.Setenv("RATE_LIMIT_QPS", "0")
	t.Setenv("CACHE_TTL_S", "0")
	t.Setenv("REFRESH_INTERVAL_S", "0")
	t.Setenv("LOCATE_CACHE_TTL_S", "0")
	t.Setenv("REDIS_DB", "0")
	c := Load()
	assert.Equal(t, 10*time.Second, c.FetchTimeout)
	assert.Equal(t, 200, c.RateLimitQPS)
	assert.Equal(t, 300*time.Second, c.CacheTTL)
	assert.Zero(t, c.RefreshEvery)
	assert.Zero(t, c.LocateCacheTTL)
	assert.Zero(t, c.RedisDB)
}
