// 包 model：国家标注链路的领域类型（地图形状、表格标注、规范国家）与错误分类
package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// 默认强调色：表格未提供颜色时统一使用
const DefaultColor = "#10b981"

// Coord：经纬度坐标（WGS84），对外序列化为 [lon, lat]
type Coord struct {
	Lon float64
	Lat float64
}

func (c Coord) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{c.Lon, c.Lat})
}

func (c *Coord) UnmarshalJSON(b []byte) error {
	var v []float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if len(v) < 2 {
		return fmt.Errorf("coord: want [lon, lat], got %d values", len(v))
	}
	c.Lon, c.Lat = v[0], v[1]
	return nil
}

// 文档注释：地图形状记录
// 背景：每个拓扑要素（Polygon/MultiPolygon）对应一条；一次加载内只读，下一次加载整体替换。
// 约束：Name 非空；Code 为大写代码或空串；Point 为空表示质心与包围盒均不可用。
type Shape struct {
	Name  string
	Code  string
	Point *Coord
	Props map[string]any
}

// 文档注释：表格标注记录
// 约束：Name 与 Description 非空；Description 仅去首尾空白，内部换行原样保留。
type Annotation struct {
	Code        string `json:"code,omitempty" yaml:"code"`
	Name        string `json:"name" yaml:"name"`
	Color       string `json:"color,omitempty" yaml:"color"`
	Description string `json:"description,omitempty" yaml:"description"`
	Group       string `json:"group,omitempty" yaml:"group"`
}

// 文档注释：规范国家（渲染所用的唯一数据源）
// 约束：Coordinates 仅来源于 Shape，不做推算；创建后不再逐字段修改。
type Country struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
	Coordinates *Coord `json:"coordinates,omitempty"`
	Group       string `json:"group,omitempty"`
}

// 哨兵错误：用于 errors.Is 分类
var (
	ErrTransport = errors.New("transport error")
	ErrMalformed = errors.New("malformed input")
)

// TransportError：拉取失败或返回非成功状态码
type TransportError struct {
	Op     string
	URL    string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s %s: http status %d", e.Op, e.URL, e.Status)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// MalformedInputError：载荷结构不符合预期（如拓扑缺少国家集合）
type MalformedInputError struct {
	What string
	Err  error
}

func (e *MalformedInputError) Error() string {
	if e.Err != nil {
		return "malformed " + e.What + ": " + e.Err.Error()
	}
	return "malformed " + e.What
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

func (e *MalformedInputError) Is(target error) bool { return target == ErrMalformed }
