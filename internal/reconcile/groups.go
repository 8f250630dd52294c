package reconcile

import (
	"sort"
	"strings"

	"country-map/internal/model"
)

// DefaultAnchors：分组名 → 主成员代码
var DefaultAnchors = map[string]string{"china": "CHN"}

// Members：按输入顺序返回某分组的全部成员
func Members(countries []model.Country, group string) []model.Country {
	if group == "" {
		return nil
	}
	var out []model.Country
	for _, c := range countries {
		if c.Group == group {
			out = append(out, c)
		}
	}
	return out
}

// 文档注释：分组主成员
// 约束：优先取代码等于锚点的成员，否则取第一个成员；分组不存在时 ok=false。
func Primary(countries []model.Country, group string, anchors map[string]string) (model.Country, bool) {
	members := Members(countries, group)
	if len(members) == 0 {
		return model.Country{}, false
	}
	if anchor, ok := anchors[group]; ok {
		for _, m := range members {
			if strings.EqualFold(m.Code, anchor) {
				return m, true
			}
		}
	}
	return members[0], true
}

// Groups：分组名 → 成员（输入顺序）
func Groups(countries []model.Country) map[string][]model.Country {
	out := map[string][]model.Country{}
	for _, c := range countries {
		if c.Group != "" {
			out[c.Group] = append(out[c.Group], c)
		}
	}
	return out
}

// 文档注释：折叠分组
// 背景：侧边栏与点选以分组为单位展示，每组只保留主成员，放在该组首个成员的位置；未分组国家原样保留。
func Collapse(countries []model.Country, anchors map[string]string) []model.Country {
	out := make([]model.Country, 0, len(countries))
	seen := map[string]bool{}
	for _, c := range countries {
		if c.Group == "" {
			out = append(out, c)
			continue
		}
		if seen[c.Group] {
			continue
		}
		seen[c.Group] = true
		p, _ := Primary(countries, c.Group, anchors)
		out = append(out, p)
	}
	return out
}

// 文档注释：侧边栏列表
// 约束：先折叠分组，按代码去重，再按名称做不区分大小写的子串过滤；结果按名称排序。
func Sidebar(countries []model.Country, anchors map[string]string, query string) []model.Country {
	q := strings.ToLower(strings.TrimSpace(query))
	seen := map[string]bool{}
	var out []model.Country
	for _, c := range Collapse(countries, anchors) {
		if seen[c.Code] {
			continue
		}
		seen[c.Code] = true
		if q != "" && !strings.Contains(strings.ToLower(c.Name), q) {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
