package revgeo

import (
	"math"

	"github.com/umahmood/haversine"
)

// 文档注释：KD-Tree 最近邻（二维经纬）
// 背景：点击落在海上或小岛附近时，以最近的形状代表点兜底；由调用方限制最大半径。
// 约束：经度/纬度交替分割；仅支持最近一个点查询；不处理反子午线两侧的近邻。
type kdNode struct {
	c  Centroid
	ax int // 0:lon,1:lat
	l  *kdNode
	r  *kdNode
}

func buildKD(cs []Centroid, depth int) *kdNode {
	if len(cs) == 0 {
		return nil
	}
	ax := depth % 2
	mid := len(cs) / 2
	selectNth(cs, mid, ax)
	node := &kdNode{c: cs[mid], ax: ax}
	node.l = buildKD(cs[:mid], depth+1)
	node.r = buildKD(cs[mid+1:], depth+1)
	return node
}

// 原地 nth 元素选择（轴为经度/纬度）
func selectNth(a []Centroid, n int, ax int) {
	lo, hi := 0, len(a)-1
	for lo < hi {
		p := partition(a, lo, hi, (lo+hi)/2, ax)
		if p == n {
			return
		}
		if n < p {
			hi = p - 1
		} else {
			lo = p + 1
		}
	}
}

func partition(a []Centroid, lo, hi, pivot, ax int) int {
	pv := a[pivot]
	a[pivot], a[hi] = a[hi], a[pivot]
	i := lo
	for j := lo; j < hi; j++ {
		if axis(a[j], ax) < axis(pv, ax) {
			a[i], a[j] = a[j], a[i]
			i++
		}
	}
	a[i], a[hi] = a[hi], a[i]
	return i
}

func axis(c Centroid, ax int) float64 {
	if ax == 0 {
		return c.Lon
	}
	return c.Lat
}

// distanceKm：球面距离（千米）
func distanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	_, km := haversine.Distance(haversine.Coord{Lat: lat1, Lon: lon1}, haversine.Coord{Lat: lat2, Lon: lon2})
	return km
}

// 最近邻查询，返回质心与距离（千米）；空树返回 ok=false
func nearest(node *kdNode, lat, lon float64) (Centroid, float64, bool) {
	if node == nil {
		return Centroid{}, 0, false
	}
	best := Centroid{}
	bestD := math.MaxFloat64
	var dfs func(n *kdNode)
	dfs = func(n *kdNode) {
		if n == nil {
			return
		}
		if d := distanceKm(lat, lon, n.c.Lat, n.c.Lon); d < bestD {
			bestD = d
			best = n.c
		}
		key, perDeg := lat, 111.0
		if n.ax == 0 {
			key, perDeg = lon, kmPerLonWithin(lat, bestD)
		}
		q := axis(n.c, n.ax)
		first, second := n.l, n.r
		if key > q {
			first, second = n.r, n.l
		}
		dfs(first)
		if math.Abs(key-q)*perDeg < bestD {
			dfs(second)
		}
	}
	dfs(node)
	return best, bestD, true
}

// kmPerLonWithin：半径 d 内可能出现的最高纬度上经度 1° 的地面距离，用于经度轴剪枝
func kmPerLonWithin(lat, d float64) float64 {
	maxLat := math.Min(math.Abs(lat)+d/111.0, 90)
	return 111.0 * math.Max(math.Cos(maxLat*math.Pi/180), 0)
}
