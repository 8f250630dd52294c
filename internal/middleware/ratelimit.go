// 包 middleware：入口级 HTTP 中间件
package middleware

import (
	"net/http"
	"sync"
	"time"

	"country-map/internal/logger"
)

// 文档注释：令牌桶限流（每秒）
// 背景：重载与点选接口在流量峰值时可能压满上游拉取与索引扫描，入口处按秒限速。
// 约束：不做排队，超额请求直接返回 429；每个整秒重置令牌。
type TokenBucket struct {
	capacity int
	tokens   int
	lastSec  int64
	mu       sync.Mutex
	now      func() time.Time
}

// NewTokenBucket：容量即每秒允许的请求数
func NewTokenBucket(qps int) *TokenBucket {
	if qps <= 0 {
		qps = 200
	}
	return &TokenBucket{capacity: qps, tokens: qps, lastSec: time.Now().Unix(), now: time.Now}
}

// Allow：尝试取得一个令牌
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	nowSec := tb.now().Unix()
	if tb.lastSec != nowSec {
		tb.lastSec = nowSec
		tb.tokens = tb.capacity
	}
	if tb.tokens > 0 {
		tb.tokens--
		return true
	}
	return false
}

// RateLimit：按开关与速率包装处理器；未启用时原样返回
func RateLimit(enabled bool, qps int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !enabled {
			return next
		}
		tb := NewTokenBucket(qps)
		logger.L().Info("rate_limit_enabled", "qps", tb.capacity)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !tb.Allow() {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
