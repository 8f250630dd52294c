// 包 config：从进程环境变量读取服务配置（.env 由入口通过 godotenv 预先加载），缺省值内联
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"country-map/internal/loader"
	"country-map/internal/sources"
)

// Config：服务配置
type Config struct {
	Addr      string
	APIBase   string
	UIDist    string
	LogLevel  string
	LogFormat string

	TopologyURL    string
	TopologyObject string
	Sheets         sources.Config
	FetchTimeout   time.Duration
	DefaultsFile   string
	RefreshEvery   time.Duration
	AdminToken     string

	RedisEnabled bool
	RedisHost    string
	RedisPort    string
	RedisPass    string
	RedisDB      int
	CacheTTL     time.Duration

	GeoIPPath      string
	LocateCacheTTL time.Duration
	LocateRadiusKm float64

	RateLimitEnabled bool
	RateLimitQPS     int
}

// 文档注释：读取配置
// 约束：数值解析失败或为负时回退到缺省值；经 positive 读取的键为 0 时同样回退，其余键的 0 表示关闭；布尔值仅 "true"/"1" 视为开启。
func Load() Config {
	return Config{
		Addr:      str("ADDR", ":8080"),
		APIBase:   "/" + strings.Trim(str("API_BASE", "/api"), "/"),
		UIDist:    str("UI_DIST", "ui/dist"),
		LogLevel:  str("LOG_LEVEL", "info"),
		LogFormat: str("LOG_FORMAT", "text"),

		TopologyURL:    str("TOPOLOGY_URL", loader.DefaultTopologyURL),
		TopologyObject: str("TOPOLOGY_OBJECT", "countries"),
		Sheets: sources.Config{
			Enabled:   flag("ENABLE_GOOGLE_SHEETS"),
			SheetID:   str("GOOGLE_SHEET_ID", ""),
			SheetName: str("GOOGLE_SHEET_NAME", sources.DefaultSheetName),
			ScriptURL: str("GOOGLE_APPS_SCRIPT_URL", ""),
			APIKey:    str("GOOGLE_SHEETS_API_KEY", ""),
			CSVBase:   str("SHEETS_CSV_BASE", sources.DefaultCSVBase),
			APIBase:   str("SHEETS_API_BASE", sources.DefaultAPIBase),
		},
		FetchTimeout: time.Duration(positive("FETCH_TIMEOUT_S", 10)) * time.Second,
		DefaultsFile: str("DEFAULT_COUNTRIES_FILE", ""),
		RefreshEvery: seconds("REFRESH_INTERVAL_S", 0),
		AdminToken:   str("ADMIN_TOKEN", ""),

		RedisEnabled: flag("REDIS_ENABLE"),
		RedisHost:    str("REDIS_HOST", "127.0.0.1"),
		RedisPort:    str("REDIS_PORT", "6379"),
		RedisPass:    os.Getenv("REDIS_PASS"),
		RedisDB:      integer("REDIS_DB", 0),
		CacheTTL:     time.Duration(positive("CACHE_TTL_S", 300)) * time.Second,

		GeoIPPath:      str("GEOIP_DB_PATH", ""),
		LocateCacheTTL: seconds("LOCATE_CACHE_TTL_S", 3600),
		LocateRadiusKm: float("LOCATE_RADIUS_KM", 300),

		RateLimitEnabled: flag("RATE_LIMIT_ENABLED"),
		RateLimitQPS:     positive("RATE_LIMIT_QPS", 200),
	}
}

func str(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func flag(key string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	return v == "true" || v == "1"
}

func integer(key string, def int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

// positive：同 integer，但 0 也回退到缺省值
func positive(key string, def int) int {
	if n := integer(key, def); n > 0 {
		return n
	}
	return def
}

func seconds(key string, def int) time.Duration {
	return time.Duration(integer(key, def)) * time.Second
}

func float(key string, def float64) float64 {
	if s := os.Getenv(key); s != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && f > 0 {
			return f
		}
	}
	return def
}
