// 包 reconcile：将地图形状与表格标注对齐为规范国家列表（代码匹配 → 精确名称 → 模糊名称），并提供分组主成员计算
package reconcile

import (
	"strings"
	"unicode"

	"country-map/internal/countrycode"
	"country-map/internal/logger"
	"country-map/internal/model"
)

// Step：命中所在的匹配阶段
type Step string

const (
	StepCode  Step = "code"
	StepName  Step = "name"
	StepFuzzy Step = "fuzzy"
)

// Unmatched：未能对应到任何形状的标注（记录告警，不产出国家）
type Unmatched struct {
	Annotation model.Annotation `json:"annotation"`
}

// 文档注释：对齐结果
// 约束：Countries 与输入标注同序（跳过未匹配项）；Steps 按阶段统计命中数。
type Result struct {
	Countries []model.Country
	Unmatched []Unmatched
	Steps     map[Step]int
}

// Engine：携带排除规则的对齐器；零值等价于无排除规则
type Engine struct {
	Exclusions []Exclusion
}

// New：构造对齐器；未传入规则时使用 DefaultExclusions
func New(excl ...Exclusion) *Engine {
	if len(excl) == 0 {
		excl = DefaultExclusions
	}
	return &Engine{Exclusions: excl}
}

var defaultEngine = New()

// Reconcile：使用默认规则对齐，仅返回国家列表
func Reconcile(shapes []model.Shape, anns []model.Annotation) []model.Country {
	return defaultEngine.Run(shapes, anns).Countries
}

// ReconcileReport：使用默认规则对齐，返回完整结果
func ReconcileReport(shapes []model.Shape, anns []model.Annotation) Result {
	return defaultEngine.Run(shapes, anns)
}

// index：形状的名称与代码索引；names 保留首次出现顺序，用于模糊扫描
type index struct {
	shapes []model.Shape
	byName map[string][]int
	names  []string
	byCode map[string][]int
}

func buildIndex(shapes []model.Shape) *index {
	ix := &index{shapes: shapes, byName: map[string][]int{}, byCode: map[string][]int{}}
	for i, s := range shapes {
		if key := nameKey(s.Name); key != "" {
			if _, seen := ix.byName[key]; !seen {
				ix.names = append(ix.names, key)
			}
			ix.byName[key] = append(ix.byName[key], i)
		}
		code := strings.ToUpper(strings.TrimSpace(s.Code))
		if code == "" {
			continue
		}
		ix.byCode[code] = append(ix.byCode[code], i)
		if c := countrycode.Canonical(code); c != code {
			ix.byCode[c] = append(ix.byCode[c], i)
		}
	}
	return ix
}

// 文档注释：执行对齐
// 背景：逐条标注按顺序尝试三个阶段，首个成功即停止；每个候选都须通过排除规则。
// 约束：纯函数，不读时钟、不做 I/O（告警日志除外）；同一输入总是得到同一输出。
func (e *Engine) Run(shapes []model.Shape, anns []model.Annotation) Result {
	ix := buildIndex(shapes)
	res := Result{Countries: make([]model.Country, 0, len(anns)), Steps: map[Step]int{}}
	for _, a := range anns {
		s, step, ok := e.match(ix, a)
		if !ok {
			res.Unmatched = append(res.Unmatched, Unmatched{Annotation: a})
			logger.L().Warn("country_unmatched", "name", a.Name, "code", a.Code)
			continue
		}
		res.Steps[step]++
		res.Countries = append(res.Countries, emit(a, s))
	}
	return res
}

func (e *Engine) match(ix *index, a model.Annotation) (model.Shape, Step, bool) {
	code := strings.ToUpper(strings.TrimSpace(a.Code))
	key := nameKey(a.Name)
	if code != "" {
		var fallback = -1
		for _, i := range ix.byCode[code] {
			if e.rejects(code, ix.shapes[i]) {
				continue
			}
			if nameKey(ix.shapes[i].Name) == key {
				return ix.shapes[i], StepCode, true
			}
			if fallback < 0 {
				fallback = i
			}
		}
		if fallback >= 0 {
			return ix.shapes[fallback], StepCode, true
		}
	}
	if key == "" {
		return model.Shape{}, "", false
	}
	if i, ok := e.firstAllowed(ix, ix.byName[key], code); ok {
		return ix.shapes[i], StepName, true
	}
	compact := stripSpace(key)
	for _, n := range ix.names {
		if !(strings.Contains(n, key) || strings.Contains(key, n) || stripSpace(n) == compact) {
			continue
		}
		if i, ok := e.firstAllowed(ix, ix.byName[n], code); ok {
			return ix.shapes[i], StepFuzzy, true
		}
	}
	return model.Shape{}, "", false
}

func (e *Engine) firstAllowed(ix *index, cands []int, code string) (int, bool) {
	for _, i := range cands {
		if !e.rejects(code, ix.shapes[i]) {
			return i, true
		}
	}
	return 0, false
}

func (e *Engine) rejects(code string, s model.Shape) bool {
	for _, ex := range e.Exclusions {
		if ex.Rejects(code, s) {
			return true
		}
	}
	return false
}

// emit：代码优先取标注，其余字段原样取自标注；坐标复制自形状
func emit(a model.Annotation, s model.Shape) model.Country {
	c := model.Country{
		Code:        a.Code,
		Name:        a.Name,
		Color:       a.Color,
		Description: a.Description,
		Group:       a.Group,
	}
	if c.Code == "" {
		c.Code = s.Code
	}
	if s.Point != nil {
		p := *s.Point
		c.Coordinates = &p
	}
	return c
}

func nameKey(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
