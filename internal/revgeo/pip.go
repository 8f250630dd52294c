package revgeo

import "country-map/internal/model"

// 文档注释：点入多边形判定（Even-Odd）
// 约束：外环命中且不在任一洞内视为命中；输入为经纬度（WGS84），不处理跨反子午线的环。
func pointInPoly(pt model.Coord, poly Polygon) bool {
	if len(poly.Rings) == 0 {
		return false
	}
	if !pointInRing(pt, poly.Rings[0]) {
		return false
	}
	for i := 1; i < len(poly.Rings); i++ {
		if pointInRing(pt, poly.Rings[i]) {
			return false
		}
	}
	return true
}

// 射线法判定点是否在环内
func pointInRing(pt model.Coord, ring []model.Coord) bool {
	n := len(ring)
	if n < 3 {
		return false
	}
	inside := false
	x, y := pt.Lon, pt.Lat
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := ring[i].Lon, ring[i].Lat
		xj, yj := ring[j].Lon, ring[j].Lat
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// 快速包围盒过滤
func inBBox(pt model.Coord, b [4]float64) bool {
	return pt.Lon >= b[0] && pt.Lon <= b[2] && pt.Lat >= b[1] && pt.Lat <= b[3]
}
