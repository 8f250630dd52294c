package reconcile

import (
	"strings"

	"country-map/internal/countrycode"
	"country-map/internal/model"
)

// 文档注释：匹配排除规则
// 背景：部分代码与名称存在易混淆的近邻（例如 KOR 与朝鲜的名称互相包含 "korea"），对应的形状在任何匹配步骤中都不可选。
// 约束：Code 为标注侧代码；形状代码或形状名称解析出的代码落在 ShapeCodes 中即拒绝；NameContains 片段按小写比较，兜底未收录的写法。
type Exclusion struct {
	Code         string
	ShapeCodes   []string
	NameContains []string
}

// DefaultExclusions：内置规则，仅 KOR 一条
var DefaultExclusions = []Exclusion{
	{
		Code:         "KOR",
		ShapeCodes:   []string{"PRK"},
		NameContains: []string{"north korea", "democratic people's republic", "dem. rep. korea", "dprk"},
	},
}

// Rejects：判断该规则是否拒绝以 code 匹配到 shape
func (e Exclusion) Rejects(code string, s model.Shape) bool {
	if countrycode.Canonical(e.Code) != countrycode.Canonical(code) {
		return false
	}
	if len(e.ShapeCodes) > 0 {
		resolved, _ := countrycode.Resolve(s.Name)
		shapeCode := countrycode.Canonical(s.Code)
		for _, c := range e.ShapeCodes {
			c = countrycode.Canonical(c)
			if c == shapeCode || c == resolved {
				return true
			}
		}
	}
	name := strings.ToLower(s.Name)
	for _, frag := range e.NameContains {
		if strings.Contains(name, frag) {
			return true
		}
	}
	return false
}
