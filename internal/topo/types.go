// 包 topo：TopoJSON 拓扑解码、弧段拼接与国家形状提取
package topo

import (
	"encoding/json"

	"country-map/internal/model"
)

// 文档注释：TopoJSON 顶层结构
// 约束：Objects 按名称延迟解码；Arcs 可为量化坐标（存在 Transform 时按差分解码）。
type Topology struct {
	Type      string                     `json:"type"`
	Transform *Transform                 `json:"transform,omitempty"`
	Objects   map[string]json.RawMessage `json:"objects"`
	Arcs      [][][]float64              `json:"arcs"`
}

// Transform：量化参数，point = delta累加值 * scale + translate
type Transform struct {
	Scale     [2]float64 `json:"scale"`
	Translate [2]float64 `json:"translate"`
}

// geometry：拓扑对象中的几何体；arcs 的嵌套层级随类型变化，按需解码
type geometry struct {
	Type       string          `json:"type"`
	ID         any             `json:"id,omitempty"`
	Properties map[string]any  `json:"properties,omitempty"`
	Arcs       json.RawMessage `json:"arcs,omitempty"`
	Geometries []geometry      `json:"geometries,omitempty"`
	BBox       []float64       `json:"bbox,omitempty"`
}

// Polygon：环集合，第一环为外环，其余为洞
type Polygon [][]model.Coord

// 文档注释：解码后的单个要素
// 背景：供形状提取与点选命中共用；几何为空表示该要素类型不含面（点、线等）。
type Feature struct {
	ID       string
	Props    map[string]any
	Polygons []Polygon
	BBox     []float64
}

// Options：属性键优先级与对象集合名称，均为配置数据
type Options struct {
	Object   string
	NameKeys []string
	CodeKeys []string
	// NumericID：属性中无代码时，尝试将要素 id（ISO 数字代码）映射为 alpha-3
	NumericID bool
}

// DefaultOptions：world-atlas / Natural Earth 常用属性名
func DefaultOptions() Options {
	return Options{
		Object:    "countries",
		NameKeys:  []string{"name", "NAME", "NAME_LONG", "ADMIN"},
		CodeKeys:  []string{"ISO_A3", "ISO_A3_EH", "ADM0_A3", "ISO_A2"},
		NumericID: true,
	}
}

// UnknownName：所有名称属性均缺失时的显示名
const UnknownName = "Unknown"
