// 包 logger：统一初始化与获取日志器，避免各模块重复配置；级别与输出格式由配置传入
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// 默认日志器：在进程级复用，避免多处初始化导致输出不一致
var defaultLogger atomic.Pointer[slog.Logger]

// Setup：初始化默认日志器，输出到标准错误
func Setup(level, format string) *slog.Logger {
	return SetupTo(os.Stderr, level, format)
}

// 文档注释：初始化默认日志器到指定输出
// 约束：level 取 debug/info/warn/error，未知值按 info；format 为 json 时输出 JSON，否则为文本。
func SetupTo(w io.Writer, level, format string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	var h slog.Handler
	if strings.ToLower(format) == "json" {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	} else {
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	}
	l := slog.New(h)
	defaultLogger.Store(l)
	return l
}

// L：获取默认日志器
// 背景：为业务代码提供快捷访问；若未初始化则按 LOG_LEVEL/LOG_FORMAT 环境变量初始化
func L() *slog.Logger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	return Setup(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
}
