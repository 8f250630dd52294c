package topo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"country-map/internal/logger"
	"country-map/internal/model"
)

// Decode：从读取器解码拓扑文档；JSON 非法时返回 MalformedInputError
func Decode(r io.Reader) (*Topology, error) {
	var t Topology
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, &model.MalformedInputError{What: "topology", Err: err}
	}
	if t.Objects == nil {
		return nil, &model.MalformedInputError{What: "topology: missing objects"}
	}
	return &t, nil
}

// 文档注释：拉取并解码拓扑文档
// 约束：非 2xx 返回 TransportError；client 为空时使用 10s 超时的默认客户端。
func Fetch(ctx context.Context, client *http.Client, url string) (*Topology, error) {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &model.TransportError{Op: "topology", URL: url, Err: err}
	}
	logger.L().Debug("topology_fetch", "url", url)
	resp, err := client.Do(req)
	if err != nil {
		return nil, &model.TransportError{Op: "topology", URL: url, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &model.TransportError{Op: "topology", URL: url, Status: resp.StatusCode}
	}
	return Decode(resp.Body)
}

// 文档注释：将指定对象集合转换为要素列表
// 背景：集合为 GeometryCollection 时每个成员为一个要素；成员本身是 GeometryCollection 时其面合并到同一要素。
// 约束：集合缺失或结构非法返回 MalformedInputError；弧段索引越界视为结构非法。
func Features(t *Topology, object string) ([]Feature, error) {
	if t == nil {
		return nil, &model.MalformedInputError{What: "topology: nil"}
	}
	raw, ok := t.Objects[object]
	if !ok {
		return nil, &model.MalformedInputError{What: fmt.Sprintf("topology: missing object %q", object)}
	}
	var root geometry
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, &model.MalformedInputError{What: "topology object " + object, Err: err}
	}
	arcs := decodeArcs(t)
	members := []geometry{root}
	if root.Type == "GeometryCollection" {
		members = root.Geometries
	}
	out := make([]Feature, 0, len(members))
	for i := range members {
		g := &members[i]
		f := Feature{ID: idString(g.ID), Props: g.Properties, BBox: g.BBox}
		if f.Props == nil {
			f.Props = map[string]any{}
		}
		polys, err := polygonsOf(g, arcs)
		if err != nil {
			return nil, &model.MalformedInputError{What: fmt.Sprintf("topology geometry %d", i), Err: err}
		}
		f.Polygons = polys
		out = append(out, f)
	}
	return out, nil
}

// decodeArcs：按 Transform 差分解码全部弧段为绝对经纬度
func decodeArcs(t *Topology) [][]model.Coord {
	out := make([][]model.Coord, len(t.Arcs))
	for i, arc := range t.Arcs {
		pts := make([]model.Coord, 0, len(arc))
		var x, y float64
		for _, p := range arc {
			if len(p) < 2 {
				continue
			}
			if t.Transform != nil {
				x += p[0]
				y += p[1]
				pts = append(pts, model.Coord{
					Lon: x*t.Transform.Scale[0] + t.Transform.Translate[0],
					Lat: y*t.Transform.Scale[1] + t.Transform.Translate[1],
				})
			} else {
				pts = append(pts, model.Coord{Lon: p[0], Lat: p[1]})
			}
		}
		out[i] = pts
	}
	return out
}

func polygonsOf(g *geometry, arcs [][]model.Coord) ([]Polygon, error) {
	switch g.Type {
	case "Polygon":
		var rings [][]int
		if err := json.Unmarshal(g.Arcs, &rings); err != nil {
			return nil, err
		}
		p, err := stitchPolygon(rings, arcs)
		if err != nil {
			return nil, err
		}
		return []Polygon{p}, nil
	case "MultiPolygon":
		var parts [][][]int
		if err := json.Unmarshal(g.Arcs, &parts); err != nil {
			return nil, err
		}
		out := make([]Polygon, 0, len(parts))
		for _, rings := range parts {
			p, err := stitchPolygon(rings, arcs)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		}
		return out, nil
	case "GeometryCollection":
		var out []Polygon
		for i := range g.Geometries {
			ps, err := polygonsOf(&g.Geometries[i], arcs)
			if err != nil {
				return nil, err
			}
			out = append(out, ps...)
		}
		return out, nil
	default:
		return nil, nil
	}
}

func stitchPolygon(rings [][]int, arcs [][]model.Coord) (Polygon, error) {
	p := make(Polygon, 0, len(rings))
	for _, ring := range rings {
		r, err := stitchRing(ring, arcs)
		if err != nil {
			return nil, err
		}
		p = append(p, r)
	}
	return p, nil
}

// 文档注释：按弧段索引拼接环
// 约束：负索引 ^i 表示反向使用第 i 条弧；相邻弧首尾重合，拼接时丢弃后一条弧的首点。
func stitchRing(idx []int, arcs [][]model.Coord) ([]model.Coord, error) {
	var ring []model.Coord
	for _, a := range idx {
		reverse := a < 0
		if reverse {
			a = ^a
		}
		if a < 0 || a >= len(arcs) {
			return nil, fmt.Errorf("arc index %d out of range", a)
		}
		src := arcs[a]
		n := len(src)
		for k := 0; k < n; k++ {
			pt := src[k]
			if reverse {
				pt = src[n-1-k]
			}
			if k == 0 && len(ring) > 0 {
				continue
			}
			ring = append(ring, pt)
		}
	}
	return ring, nil
}

func idString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
