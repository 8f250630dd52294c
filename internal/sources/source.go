// 包 sources：表格标注数据源适配器（公开 CSV 文档、脚本端点、键值 API），统一输出标注记录
package sources

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"country-map/internal/countrycode"
	"country-map/internal/logger"
	"country-map/internal/model"
)

// 文档注释：数据源策略接口
// 背景：各传输方式输出同构的标注列表，加载层只依赖该接口；选择规则集中在 Select。
// 约束：非 2xx 返回 *model.TransportError；载荷无法解析返回 *model.MalformedInputError；返回值已经过 finalize。
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]model.Annotation, error)
}

// 默认基础地址：可通过配置覆盖（测试或代理）
const (
	DefaultCSVBase   = "https://docs.google.com/spreadsheets/d"
	DefaultAPIBase   = "https://sheets.googleapis.com"
	DefaultSheetName = "Sheet1"
)

// Config：数据源选择所需的配置子集
type Config struct {
	Enabled   bool
	SheetID   string
	SheetName string
	ScriptURL string
	APIKey    string
	CSVBase   string
	APIBase   string
}

// 文档注释：按优先级选择数据源
// 背景：脚本端点 > 键值 API（需表格 ID 与密钥）> 公开 CSV（需表格 ID）。
// 返回：未启用或缺少必要参数时 ok=false，调用方应使用默认列表。
func Select(cfg Config, client *http.Client) (Source, bool) {
	if !cfg.Enabled {
		return nil, false
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	sheet := cfg.SheetName
	if sheet == "" {
		sheet = DefaultSheetName
	}
	switch {
	case strings.TrimSpace(cfg.ScriptURL) != "":
		return &ScriptSource{URL: strings.TrimSpace(cfg.ScriptURL), Client: client}, true
	case cfg.SheetID != "" && cfg.APIKey != "":
		return &SheetsAPISource{Base: orDefault(cfg.APIBase, DefaultAPIBase), SheetID: cfg.SheetID, Sheet: sheet, APIKey: cfg.APIKey, Client: client}, true
	case cfg.SheetID != "":
		return &CSVSource{Base: orDefault(cfg.CSVBase, DefaultCSVBase), SheetID: cfg.SheetID, Sheet: sheet, Client: client}, true
	}
	logger.L().Warn("sheets_enabled_without_target")
	return nil, false
}

func orDefault(v, def string) string {
	v = strings.TrimRight(strings.TrimSpace(v), "/")
	if v == "" {
		return def
	}
	return v
}

// 文档注释：统一后处理
// 约束：丢弃名称为空或备注去空白后为空的记录；备注仅去首尾空白；代码依次取显式代码（规范化）、名称解析、占位代码；颜色缺省为默认色。
func finalize(raw []model.Annotation) []model.Annotation {
	out := make([]model.Annotation, 0, len(raw))
	for _, a := range raw {
		a.Name = strings.TrimSpace(a.Name)
		a.Description = strings.TrimSpace(a.Description)
		if a.Name == "" || a.Description == "" {
			continue
		}
		a.Code = countrycode.Canonical(a.Code)
		if a.Code == "" {
			if c, ok := countrycode.Resolve(a.Name); ok {
				a.Code = c
			} else {
				a.Code = countrycode.Placeholder(a.Name)
				logger.L().Debug("annotation_placeholder_code", "name", a.Name, "code", a.Code)
			}
		}
		a.Color = strings.TrimSpace(a.Color)
		if a.Color == "" {
			a.Color = model.DefaultColor
		}
		a.Group = strings.TrimSpace(a.Group)
		out = append(out, a)
	}
	return out
}

// get：带上下文的 GET，读取完整响应体
func get(ctx context.Context, client *http.Client, op, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &model.TransportError{Op: op, URL: redact(url), Err: err}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &model.TransportError{Op: op, URL: redact(url), Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &model.TransportError{Op: op, URL: redact(url), Status: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &model.TransportError{Op: op, URL: redact(url), Err: err}
	}
	return body, nil
}

// redact：错误与日志中隐藏查询串（可能携带 API 密钥）
func redact(url string) string {
	if i := strings.IndexByte(url, '?'); i >= 0 {
		return url[:i]
	}
	return url
}
