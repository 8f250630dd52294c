package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"

	"country-map/internal/model"
)

// 文档注释：Sheets 键值 API（v4 values 接口）
// 背景：读取 <sheet>!A2:B 区域，每行 [名称, 备注]；区域为空时服务端省略 values 字段，按空列表处理。
type SheetsAPISource struct {
	Base    string
	SheetID string
	Sheet   string
	APIKey  string
	Client  *http.Client
}

func (s *SheetsAPISource) Name() string { return "sheets_api" }

// URL：<base>/v4/spreadsheets/<id>/values/<sheet>!A2:B?key=<key>
func (s *SheetsAPISource) URL() string {
	rng := url.PathEscape(s.Sheet + "!A2:B")
	return fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?key=%s", s.Base, url.PathEscape(s.SheetID), rng, url.QueryEscape(s.APIKey))
}

func (s *SheetsAPISource) Fetch(ctx context.Context) ([]model.Annotation, error) {
	body, err := get(ctx, s.Client, "sheets_api", s.URL())
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, &model.MalformedInputError{What: "sheets api payload"}
	}
	values := gjson.GetBytes(body, "values")
	if values.Exists() && !values.IsArray() {
		return nil, &model.MalformedInputError{What: "sheets api payload: values is not an array"}
	}
	var raw []model.Annotation
	values.ForEach(func(_, row gjson.Result) bool {
		cells := row.Array()
		a := model.Annotation{}
		if len(cells) > 0 {
			a.Name = cells[0].String()
		}
		if len(cells) > 1 {
			a.Description = cells[1].String()
		}
		raw = append(raw, a)
		return true
	})
	return finalize(raw), nil
}
