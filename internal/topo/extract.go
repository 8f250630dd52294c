package topo

import (
	"fmt"
	"strings"

	"country-map/internal/countrycode"
	"country-map/internal/logger"
	"country-map/internal/model"
)

// 文档注释：从拓扑中提取形状记录
// 背景：每个输入要素产出一条形状，名称与代码按 Options 中的键顺序取第一个有效值。
// 约束：名称全部缺失时使用 UnknownName；代码 "-99" 视为缺失；代表点不可得时记录告警而非报错。
func Extract(t *Topology, opts Options) ([]model.Shape, error) {
	if opts.Object == "" {
		opts.Object = "countries"
	}
	feats, err := Features(t, opts.Object)
	if err != nil {
		return nil, err
	}
	out := make([]model.Shape, 0, len(feats))
	for _, f := range feats {
		out = append(out, ShapeOf(f, opts))
	}
	return out, nil
}

// ShapeOf：将单个要素转换为形状记录
func ShapeOf(f Feature, opts Options) model.Shape {
	name := firstString(f.Props, opts.NameKeys)
	if name == "" {
		name = UnknownName
	}
	code := strings.ToUpper(firstCode(f.Props, opts.CodeKeys))
	if code == "" && opts.NumericID && f.ID != "" {
		code, _ = countrycode.FromNumeric(f.ID)
	}
	pt := Centroid(f.Polygons)
	if pt == nil && len(f.BBox) >= 4 {
		pt = &model.Coord{Lon: (f.BBox[0] + f.BBox[2]) / 2, Lat: (f.BBox[1] + f.BBox[3]) / 2}
	}
	if pt == nil {
		logger.L().Warn("shape_point_unavailable", "name", name, "id", f.ID)
	}
	return model.Shape{Name: name, Code: code, Point: pt, Props: f.Props}
}

func firstString(props map[string]any, keys []string) string {
	for _, k := range keys {
		if s := propString(props[k]); s != "" {
			return s
		}
	}
	return ""
}

func firstCode(props map[string]any, keys []string) string {
	for _, k := range keys {
		s := propString(props[k])
		if s == "" || s == "-99" {
			continue
		}
		return s
	}
	return ""
}

func propString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case float64:
		return fmt.Sprint(x)
	default:
		return ""
	}
}
