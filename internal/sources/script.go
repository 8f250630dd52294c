package sources

import (
	"context"
	"net/http"

	"github.com/tidwall/gjson"

	"country-map/internal/model"
)

// 文档注释：脚本端点（Apps Script Web App）
// 背景：返回 {"countries":[{name, code?, description|remark, color?, group?}]}；字段宽松，按 gjson 路径读取。
// 约束：非 JSON 或缺少 countries 数组视为载荷非法。
type ScriptSource struct {
	URL    string
	Client *http.Client
}

func (s *ScriptSource) Name() string { return "apps_script" }

func (s *ScriptSource) Fetch(ctx context.Context) ([]model.Annotation, error) {
	body, err := get(ctx, s.Client, "apps_script", s.URL)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, &model.MalformedInputError{What: "apps script payload"}
	}
	list := gjson.GetBytes(body, "countries")
	if !list.IsArray() {
		return nil, &model.MalformedInputError{What: "apps script payload: countries is not an array"}
	}
	var raw []model.Annotation
	list.ForEach(func(_, v gjson.Result) bool {
		desc := v.Get("description").String()
		if desc == "" {
			desc = v.Get("remark").String()
		}
		raw = append(raw, model.Annotation{
			Code:        v.Get("code").String(),
			Name:        v.Get("name").String(),
			Color:       v.Get("color").String(),
			Description: desc,
			Group:       v.Get("group").String(),
		})
		return true
	})
	return finalize(raw), nil
}
