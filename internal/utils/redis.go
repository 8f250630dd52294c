// 包 utils：Redis 连接工具
package utils

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"country-map/internal/logger"
)

// OpenRedis：使用地址、密码与 DB 打开 Redis 客户端；地址为空返回 nil
func OpenRedis(addr, pass string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	if db < 0 {
		db = 0
	}
	logger.L().Debug("redis_open", "addr", addr, "db", db)
	return redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})
}

// 文档注释：打开并探活
// 背景：缓存为可选能力，探活失败时关闭客户端并返回 nil，调用方按无缓存运行。
func OpenRedisChecked(ctx context.Context, addr, pass string, db int) *redis.Client {
	rc := OpenRedis(addr, pass, db)
	if rc == nil {
		return nil
	}
	pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rc.Ping(pctx).Err(); err != nil {
		logger.L().Warn("redis_unavailable", "addr", addr, "err", err)
		_ = rc.Close()
		return nil
	}
	return rc
}
