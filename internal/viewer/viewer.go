// 包 viewer：访问者 IP → 国家（GeoLite2-Country mmdb），用于在地图上标识“你在这里”
package viewer

import (
	"net"
	"net/http"
	"strings"

	"github.com/oschwald/geoip2-golang"

	"country-map/internal/countrycode"
	"country-map/internal/logger"
)

// 文档注释：访问者国家定位器
// 背景：数据库路径未配置时返回 nil 定位器，所有方法对 nil 安全并视为未命中。
type Locator struct {
	db *geoip2.Reader
}

// Open：打开 mmdb；path 为空时返回 (nil, nil)
func Open(path string) (*Locator, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	db, err := geoip2.Open(path)
	if err != nil {
		return nil, err
	}
	logger.L().Info("geoip_opened", "path", path, "type", db.Metadata().DatabaseType)
	return &Locator{db: db}, nil
}

// Enabled：是否已加载数据库
func (l *Locator) Enabled() bool { return l != nil && l.db != nil }

// 文档注释：查询 IP 所在国家
// 返回：alpha-3 代码；IP 非法、未收录或未启用时 ok=false。
func (l *Locator) Country(ip string) (string, bool) {
	if !l.Enabled() {
		return "", false
	}
	parsed := net.ParseIP(strings.TrimSpace(ip))
	if parsed == nil {
		return "", false
	}
	rec, err := l.db.Country(parsed)
	if err != nil {
		logger.L().Debug("geoip_lookup_error", "ip", ip, "err", err)
		return "", false
	}
	if rec.Country.IsoCode == "" {
		return "", false
	}
	return countrycode.Canonical(rec.Country.IsoCode), true
}

// Close：释放数据库
func (l *Locator) Close() error {
	if !l.Enabled() {
		return nil
	}
	return l.db.Close()
}

// 文档注释：获取访问者 IP
// 背景：多层代理下依次读取常见反向代理头，最后回退远端地址。
// 约束：头部存在伪造风险，仅用于展示，不用于鉴权；返回值去掉端口与 IPv6 方括号。
func ClientIP(r *http.Request) string {
	h := r.Header
	for _, k := range []string{"x-forwarded-for", "cf-connecting-ip", "x-real-ip", "x-client-ip"} {
		if x := h.Get(k); x != "" {
			return strings.TrimSpace(strings.Split(x, ",")[0])
		}
	}
	if x := h.Get("forwarded"); x != "" {
		if i := strings.Index(strings.ToLower(x), "for="); i >= 0 {
			y := x[i+4:]
			if p := strings.IndexAny(y, ";,"); p >= 0 {
				y = y[:p]
			}
			return stripPort(strings.Trim(y, "\" "))
		}
	}
	return stripPort(r.RemoteAddr)
}

func stripPort(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return strings.Trim(host, "[]")
}
