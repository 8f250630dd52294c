// 包 revgeo：地图形状的点选命中（包围盒过滤 → 点入多边形 → 最近质心兜底），结果按 geohash 缓存
package revgeo

import (
	"country-map/internal/model"
	"country-map/internal/topo"
)

// 文档注释：可命中的形状单元
// 背景：与 topo 提取出的形状一一对应，保留名称、代码与面几何；只读，随快照整体替换。
// 约束：几何为 Polygon 列表，第一环为外环，其余为洞。
type Unit struct {
	Code  string
	Name  string
	Polys []Polygon
	Point *model.Coord
}

// Polygon：环集合与包围盒（minLon, minLat, maxLon, maxLat）
type Polygon struct {
	Rings [][]model.Coord
	BBox  [4]float64
}

// Centroid：最近邻兜底所用的代表点
type Centroid struct {
	Lat  float64
	Lon  float64
	Unit int
}

// 文档注释：由要素与形状构造单元
// 约束：feats 与 shapes 须一一对应（同一次 topo.Extract/Features 的结果）；长度不一致时按较短者截断。
func UnitsFrom(feats []topo.Feature, shapes []model.Shape) []Unit {
	n := len(feats)
	if len(shapes) < n {
		n = len(shapes)
	}
	out := make([]Unit, 0, n)
	for i := 0; i < n; i++ {
		u := Unit{Code: shapes[i].Code, Name: shapes[i].Name, Point: shapes[i].Point}
		for _, p := range feats[i].Polygons {
			bb, ok := topo.Bounds([]topo.Polygon{p})
			if !ok {
				continue
			}
			u.Polys = append(u.Polys, Polygon{Rings: p, BBox: bb})
		}
		out = append(out, u)
	}
	return out
}
