package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"country-map/internal/model"
	"country-map/internal/tabular"
)

// 文档注释：公开表格的 CSV 导出
// 背景：首行为表头（Country/Region, Remark），其余每行一条标注；备注可含引号包裹的换行。
type CSVSource struct {
	Base    string
	SheetID string
	Sheet   string
	Client  *http.Client
}

func (s *CSVSource) Name() string { return "csv" }

// URL：<base>/<id>/gviz/tq?tqx=out:csv&sheet=<sheet>
func (s *CSVSource) URL() string {
	return fmt.Sprintf("%s/%s/gviz/tq?tqx=out:csv&sheet=%s", s.Base, url.PathEscape(s.SheetID), url.QueryEscape(s.Sheet))
}

func (s *CSVSource) Fetch(ctx context.Context) ([]model.Annotation, error) {
	body, err := get(ctx, s.Client, "csv", s.URL())
	if err != nil {
		return nil, err
	}
	var raw []model.Annotation
	for _, r := range tabular.Records(tabular.Parse(string(body)), 2) {
		raw = append(raw, model.Annotation{Name: r[0], Description: r[1]})
	}
	return finalize(raw), nil
}
