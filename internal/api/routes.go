// 包 api：集中注册 HTTP API 路由，读取当前快照对外提供国家列表、分组、点选命中与重载
package api

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"country-map/internal/loader"
	"country-map/internal/logger"
	"country-map/internal/metrics"
	"country-map/internal/model"
	"country-map/internal/reconcile"
	"country-map/internal/viewer"
)

// Reloader：同步重载并发布快照
type Reloader interface {
	Reload(ctx context.Context, h *loader.Holder) *loader.Snapshot
}

// 文档注释：路由依赖
// 约束：Holder 必填；Redis 与 Viewer 可为 nil（对应能力关闭）；AdminToken 为空时重载接口拒绝所有请求。
type Deps struct {
	Holder     *loader.Holder
	Loader     Reloader
	Redis      *redis.Client
	CacheTTL   time.Duration
	Viewer     *viewer.Locator
	AdminToken string
}

// 构建并返回 API 路由：独立 ServeMux 便于在主入口挂载到 API_BASE 前缀
func BuildRoutes(d Deps) *http.ServeMux {
	mux := http.NewServeMux()
	handle := func(pattern, route string, fn http.HandlerFunc) {
		mux.Handle(pattern, instrument(route, fn))
	}
	handle("GET /countries", "countries", d.countries)
	handle("GET /countries/sidebar", "sidebar", d.sidebar)
	handle("GET /countries/{code}", "country", d.country)
	handle("GET /locate", "locate", d.locate)
	handle("GET /viewer", "viewer", d.viewerCountry)
	handle("GET /unmatched", "unmatched", d.unmatched)
	handle("POST /reload", "reload", d.reload)
	handle("GET /health", "health", d.health)
	mux.Handle("GET /metrics", metrics.Handler())
	return mux
}

func instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t0 := time.Now()
		metrics.RequestsTotal.WithLabelValues(route).Inc()
		next.ServeHTTP(w, r)
		metrics.RequestDurationMs.WithLabelValues(route).Observe(float64(time.Since(t0).Milliseconds()))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("content-type", "application/json; charset=utf-8")
	w.Header().Set("cache-control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// current：当前快照；尚未完成首次加载时写 503
func (d Deps) current(w http.ResponseWriter) (*loader.Snapshot, bool) {
	s := d.Holder.Current()
	if s == nil {
		writeError(w, http.StatusServiceUnavailable, "not loaded")
		return nil, false
	}
	return s, true
}

// 文档注释：国家列表
// 背景：可选 Redis 缓存，键含快照 ID，快照替换后旧键自然失效；缓存读写失败不影响响应。
func (d Deps) countries(w http.ResponseWriter, r *http.Request) {
	s, ok := d.current(w)
	if !ok {
		return
	}
	key := "countries:" + s.ID
	if d.Redis != nil {
		if b, err := d.Redis.Get(r.Context(), key).Bytes(); err == nil && len(b) > 0 {
			metrics.RedisHitsTotal.Inc()
			w.Header().Set("content-type", "application/json; charset=utf-8")
			w.Header().Set("cache-control", "no-store")
			w.Header().Set("x-cache", "hit")
			_, _ = w.Write(b)
			return
		}
		metrics.RedisMissesTotal.Inc()
	}
	b, err := json.Marshal(s)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "encode failed")
		return
	}
	b = append(b, '\n')
	if d.Redis != nil {
		if err := d.Redis.Set(r.Context(), key, b, d.CacheTTL).Err(); err != nil {
			logger.L().Debug("redis_set_failed", "key", key, "err", err)
		}
	}
	w.Header().Set("content-type", "application/json; charset=utf-8")
	w.Header().Set("cache-control", "no-store")
	_, _ = w.Write(b)
}

func (d Deps) sidebar(w http.ResponseWriter, r *http.Request) {
	s, ok := d.current(w)
	if !ok {
		return
	}
	list := reconcile.Sidebar(s.Countries, s.Anchors, r.URL.Query().Get("q"))
	if list == nil {
		list = []model.Country{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"countries": list})
}

// countryView：单个国家及其分组信息
type countryView struct {
	Country model.Country   `json:"country"`
	Primary string          `json:"primary,omitempty"`
	Members []model.Country `json:"members,omitempty"`
}

func (d Deps) country(w http.ResponseWriter, r *http.Request) {
	s, ok := d.current(w)
	if !ok {
		return
	}
	c, ok := s.Find(r.PathValue("code"))
	if !ok {
		writeError(w, http.StatusNotFound, "country not marked")
		return
	}
	v := countryView{Country: c}
	if c.Group != "" {
		if p, ok := reconcile.Primary(s.Countries, c.Group, s.Anchors); ok {
			v.Primary = p.Code
		}
		v.Members = reconcile.Members(s.Countries, c.Group)
	}
	writeJSON(w, http.StatusOK, v)
}

// locateView：点选结果
type locateView struct {
	Found      bool           `json:"found"`
	Approx     bool           `json:"approx"`
	DistanceKm float64        `json:"distance_km,omitempty"`
	ShapeCode  string         `json:"shape_code,omitempty"`
	ShapeName  string         `json:"shape_name,omitempty"`
	Marked     bool           `json:"marked"`
	Country    *model.Country `json:"country,omitempty"`
}

// 文档注释：点选命中
// 背景：命中形状后映射到已标注国家（先按代码，再按名称），分组成员解析为主成员，与地图上的分组高亮一致。
func (d Deps) locate(w http.ResponseWriter, r *http.Request) {
	s, ok := d.current(w)
	if !ok {
		return
	}
	q := r.URL.Query()
	lon, err1 := strconv.ParseFloat(q.Get("lon"), 64)
	lat, err2 := strconv.ParseFloat(q.Get("lat"), 64)
	if err1 != nil || err2 != nil {
		writeError(w, http.StatusBadRequest, "lon and lat are required numbers")
		return
	}
	if s.Index == nil {
		writeError(w, http.StatusServiceUnavailable, "topology not loaded")
		return
	}
	h, found := s.Index.Locate(lon, lat)
	switch {
	case !found:
		metrics.LocateTotal.WithLabelValues("miss").Inc()
	case h.Cached:
		metrics.LocateTotal.WithLabelValues("cache").Inc()
	case h.Approx:
		metrics.LocateTotal.WithLabelValues("nearest").Inc()
	default:
		metrics.LocateTotal.WithLabelValues("hit").Inc()
	}
	v := locateView{Found: found, Approx: h.Approx, DistanceKm: h.DistanceKm, ShapeCode: h.Code, ShapeName: h.Name}
	if found {
		if c, ok := markedFor(s, h.Code, h.Name); ok {
			v.Marked = true
			v.Country = &c
		}
	}
	writeJSON(w, http.StatusOK, v)
}

// markedFor：形状代码/名称 → 已标注国家（分组解析为主成员）
func markedFor(s *loader.Snapshot, code, name string) (model.Country, bool) {
	c, ok := model.Country{}, false
	if code != "" {
		c, ok = s.Find(code)
	}
	if !ok && name != "" {
		for _, x := range s.Countries {
			if strings.EqualFold(strings.TrimSpace(x.Name), strings.TrimSpace(name)) {
				c, ok = x, true
				break
			}
		}
	}
	if !ok {
		return model.Country{}, false
	}
	if c.Group != "" {
		if p, ok := reconcile.Primary(s.Countries, c.Group, s.Anchors); ok {
			return p, true
		}
	}
	return c, true
}

func (d Deps) viewerCountry(w http.ResponseWriter, r *http.Request) {
	if !d.Viewer.Enabled() {
		writeError(w, http.StatusNotFound, "geoip disabled")
		return
	}
	s, ok := d.current(w)
	if !ok {
		return
	}
	ip := viewer.ClientIP(r)
	out := map[string]any{"ip": ip, "marked": false}
	if code, ok := d.Viewer.Country(ip); ok {
		out["code"] = code
		if c, ok := markedFor(s, code, ""); ok {
			out["marked"] = true
			out["country"] = c
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (d Deps) unmatched(w http.ResponseWriter, r *http.Request) {
	s, ok := d.current(w)
	if !ok {
		return
	}
	list := s.Unmatched
	if list == nil {
		list = []reconcile.Unmatched{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": s.ID, "unmatched": list})
}

// 文档注释：同步重载
// 约束：需 x-admin-token 与配置一致（常量时间比较）；未配置令牌时一律拒绝。
func (d Deps) reload(w http.ResponseWriter, r *http.Request) {
	if d.AdminToken == "" || d.Loader == nil {
		writeError(w, http.StatusForbidden, "reload disabled")
		return
	}
	tok := r.Header.Get("x-admin-token")
	if subtle.ConstantTimeCompare([]byte(tok), []byte(d.AdminToken)) != 1 {
		writeError(w, http.StatusUnauthorized, "invalid admin token")
		return
	}
	s := d.Loader.Reload(r.Context(), d.Holder)
	logger.L().Info("reload_requested", "id", s.ID, "source", s.Source, "notice", s.Notice)
	w.WriteHeader(http.StatusNoContent)
}

func (d Deps) health(w http.ResponseWriter, r *http.Request) {
	out := map[string]any{"status": "ok", "loaded": false}
	if s := d.Holder.Current(); s != nil {
		out["loaded"] = true
		out["snapshot"] = s.ID
		out["source"] = s.Source
		out["loaded_at"] = s.LoadedAt
	}
	writeJSON(w, http.StatusOK, out)
}
