package revgeo

import (
	"math"
	"time"

	"country-map/internal/model"
)

// Options：命中索引参数
type Options struct {
	CacheTTL  time.Duration
	CacheSize int
	RadiusKm  float64
	Precision int
}

// DefaultOptions：缓存 1 小时，兜底半径 300km，geohash 7 位
func DefaultOptions() Options {
	return Options{CacheTTL: time.Hour, CacheSize: 4096, RadiusKm: 300, Precision: 7}
}

// 文档注释：命中结果
// 约束：Approx 表示由最近质心兜底而非 PIP 精确命中；Cached 表示结果来自缓存。
type Hit struct {
	Code       string
	Name       string
	Approx     bool
	DistanceKm float64
	Cached     bool
}

// 文档注释：点选命中索引（包围盒候选 → PIP 命中 → 最近质心兜底）
// 背景：随快照一次构建、只读共享；缓存为索引私有，快照替换后旧缓存随旧索引释放。
type Index struct {
	units []Unit
	kd    *kdNode
	cache *LRU
	opts  Options
}

// NewIndex：构建索引；零值参数按 DefaultOptions 补齐
func NewIndex(units []Unit, opts Options) *Index {
	def := DefaultOptions()
	if opts.RadiusKm <= 0 {
		opts.RadiusKm = def.RadiusKm
	}
	if opts.Precision <= 0 {
		opts.Precision = def.Precision
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = def.CacheSize
	}
	var cs []Centroid
	for i, u := range units {
		if u.Point != nil {
			cs = append(cs, Centroid{Lat: u.Point.Lat, Lon: u.Point.Lon, Unit: i})
		}
	}
	return &Index{units: units, kd: buildKD(cs, 0), cache: NewLRU(opts.CacheSize, opts.CacheTTL), opts: opts}
}

// Len：单元数量
func (ix *Index) Len() int { return len(ix.units) }

// 文档注释：点选命中
// 返回：命中单元的代码与名称；坐标越界、PIP 未命中且半径内无质心时 ok=false（不缓存未命中）。
func (ix *Index) Locate(lon, lat float64) (Hit, bool) {
	if ix == nil || math.IsNaN(lon) || math.IsNaN(lat) || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Hit{}, false
	}
	key := encodeGeohash(lat, lon, ix.opts.Precision)
	if h, ok := ix.cache.Get(key); ok {
		h.Cached = true
		return h, true
	}
	pt := model.Coord{Lon: lon, Lat: lat}
	for i := range ix.units {
		u := &ix.units[i]
		for _, p := range u.Polys {
			if inBBox(pt, p.BBox) && pointInPoly(pt, p) {
				h := Hit{Code: u.Code, Name: u.Name}
				ix.cache.Set(key, h)
				return h, true
			}
		}
	}
	if c, d, ok := nearest(ix.kd, lat, lon); ok && d <= ix.opts.RadiusKm {
		u := ix.units[c.Unit]
		h := Hit{Code: u.Code, Name: u.Name, Approx: true, DistanceKm: d}
		ix.cache.Set(key, h)
		return h, true
	}
	return Hit{}, false
}
