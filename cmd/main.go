// 程序入口：仅负责读取配置、初始化依赖并启动服务；API 注册在 internal/api 以便扩展
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"country-map/internal/api"
	"country-map/internal/config"
	"country-map/internal/defaults"
	"country-map/internal/loader"
	"country-map/internal/logger"
	"country-map/internal/middleware"
	"country-map/internal/revgeo"
	"country-map/internal/topo"
	"country-map/internal/utils"
	"country-map/internal/version"
	"country-map/internal/viewer"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()
	l := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	l.Debug("log_init_ok", "commit", version.Commit)
	l.Debug("config_api_base", "base", cfg.APIBase)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fallback, err := defaults.Load(cfg.DefaultsFile)
	if err != nil {
		l.Error("defaults_load_error", "path", cfg.DefaultsFile, "err", err)
		os.Exit(1)
	}

	topoOpts := topo.DefaultOptions()
	topoOpts.Object = cfg.TopologyObject
	ld := loader.New(loader.Options{
		TopologyURL: cfg.TopologyURL,
		Topo:        topoOpts,
		Sources:     cfg.Sheets,
		Client:      &http.Client{Timeout: cfg.FetchTimeout},
		Defaults:    fallback,
		Locate:      revgeo.Options{CacheTTL: cfg.LocateCacheTTL, RadiusKm: cfg.LocateRadiusKm},
	})
	var holder loader.Holder
	first := ld.Reload(ctx, &holder)
	l.Info("initial_load", "id", first.ID, "source", first.Source, "countries", len(first.Countries), "notice", first.Notice)
	if cfg.RefreshEvery > 0 {
		l.Info("refresh_enabled", "every", cfg.RefreshEvery.String())
		go ld.Run(ctx, &holder, cfg.RefreshEvery)
	}

	deps := api.Deps{Holder: &holder, Loader: ld, CacheTTL: cfg.CacheTTL, AdminToken: cfg.AdminToken}
	if cfg.RedisEnabled {
		deps.Redis = utils.OpenRedisChecked(ctx, cfg.RedisHost+":"+cfg.RedisPort, cfg.RedisPass, cfg.RedisDB)
		if deps.Redis != nil {
			defer deps.Redis.Close()
			l.Info("redis_ping_ok")
		}
	} else {
		l.Info("redis_disabled")
	}
	if loc, err := viewer.Open(cfg.GeoIPPath); err != nil {
		l.Error("geoip_open_error", "path", cfg.GeoIPPath, "err", err)
	} else if loc != nil {
		defer loc.Close()
		deps.Viewer = loc
	}

	mux := http.NewServeMux()
	mux.Handle(cfg.APIBase+"/", http.StripPrefix(cfg.APIBase, api.BuildRoutes(deps)))
	// NOTE: 向前端暴露 API 基础路径，避免硬编码
	mux.HandleFunc("/config.js", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "application/javascript; charset=utf-8")
		w.Header().Set("cache-control", "no-store")
		_, _ = w.Write([]byte("window.__API_BASE__='" + cfg.APIBase + "'\n"))
		_, _ = w.Write([]byte("window.__COMMIT_SHA__='" + version.Commit + "'\n"))
	})
	if st, err := os.Stat(cfg.UIDist); err == nil && st.IsDir() {
		l.Debug("config_ui_dir", "dir", cfg.UIDist)
		mux.Handle("/", http.FileServer(http.Dir(cfg.UIDist)))
	}

	handler := logger.AccessMiddleware(l)(mux)
	handler = middleware.RateLimit(cfg.RateLimitEnabled, cfg.RateLimitQPS)(handler)
	s := &http.Server{Addr: cfg.Addr, Handler: handler, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.Shutdown(sctx)
	}()
	l.Info("listening", "addr", cfg.Addr)
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		l.Error("listen_error", "err", err)
		os.Exit(1)
	}
	l.Info("shutdown")
}
