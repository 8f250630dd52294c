package topo

import (
	"math"

	"country-map/internal/model"
)

// 文档注释：计算要素代表点
// 背景：按面积加权的平面质心，外环计正、洞计负；跨越反子午线的要素在平面上仍可得到一个落在包围盒内的点。
// 约束：面积为零或结果非有限值时回退到包围盒中点；无坐标返回 nil。
func Centroid(polys []Polygon) *model.Coord {
	var sw, sx, sy float64
	for _, p := range polys {
		for i, ring := range p {
			a, cx, cy := ringCentroid(ring)
			if a == 0 {
				continue
			}
			w := math.Abs(a)
			if i > 0 {
				w = -w
			}
			sw += w
			sx += w * cx
			sy += w * cy
		}
	}
	if sw > 1e-12 {
		c := model.Coord{Lon: sx / sw, Lat: sy / sw}
		if finite(c.Lon) && finite(c.Lat) {
			return &c
		}
	}
	bb, ok := Bounds(polys)
	if !ok {
		return nil
	}
	return &model.Coord{Lon: (bb[0] + bb[2]) / 2, Lat: (bb[1] + bb[3]) / 2}
}

// ringCentroid：鞋带公式，返回有符号面积与环质心
func ringCentroid(ring []model.Coord) (area, cx, cy float64) {
	n := len(ring)
	if n < 3 {
		return 0, 0, 0
	}
	var a2, x, y float64
	for i := 0; i < n; i++ {
		p, q := ring[i], ring[(i+1)%n]
		cross := p.Lon*q.Lat - q.Lon*p.Lat
		a2 += cross
		x += (p.Lon + q.Lon) * cross
		y += (p.Lat + q.Lat) * cross
	}
	if a2 == 0 {
		return 0, 0, 0
	}
	return a2 / 2, x / (3 * a2), y / (3 * a2)
}

// Bounds：包围盒 [minLon, minLat, maxLon, maxLat]；无坐标时 ok=false
func Bounds(polys []Polygon) (bb [4]float64, ok bool) {
	bb = [4]float64{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, p := range polys {
		for _, ring := range p {
			for _, c := range ring {
				ok = true
				bb[0] = math.Min(bb[0], c.Lon)
				bb[1] = math.Min(bb[1], c.Lat)
				bb[2] = math.Max(bb[2], c.Lon)
				bb[3] = math.Max(bb[3], c.Lat)
			}
		}
	}
	return bb, ok
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
