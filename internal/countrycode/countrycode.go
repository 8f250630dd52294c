// 包 countrycode：国家名称与代码变体（alpha-2、数字代码、常见缩写）到 alpha-3 的静态映射
package countrycode

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	byName    = map[string]string{}
	byAlpha2  = map[string]string{}
	byNumeric = map[string]string{}
	known     = map[string]bool{}
)

func init() {
	for _, e := range table {
		known[e.a3] = true
		if e.a2 != "" {
			byAlpha2[e.a2] = e.a3
		}
		if e.num != "" {
			byNumeric[e.num] = e.a3
		}
		for _, n := range e.names {
			byName[Normalize(n)] = e.a3
		}
	}
}

// 文档注释：名称规范化
// 约束：去首尾空白、转小写、内部连续空白折叠为单个空格、去除变音符号（Côte → cote）、弯引号统一为直引号。
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return ""
	}
	s = strings.NewReplacer("’", "'", "‘", "'", "ʼ", "'").Replace(s)
	if folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s); err == nil {
		s = folded
	}
	return strings.Join(strings.Fields(s), " ")
}

// 文档注释：名称到 alpha-3 代码
// 返回：未收录时返回 ("", false)；纯函数，无 I/O。
func Resolve(name string) (string, bool) {
	key := Normalize(name)
	if key == "" {
		return "", false
	}
	code, ok := byName[key]
	return code, ok
}

// 文档注释：代码变体规范化
// 背景：表格与地图数据中代码写法不一（CN、chn、156、UK）；已收录的统一为 alpha-3，未收录的原样转大写返回。
func Canonical(code string) string {
	c := strings.ToUpper(strings.TrimSpace(code))
	if c == "" || known[c] {
		return c
	}
	if a3, ok := byAlpha2[c]; ok {
		return a3
	}
	if a3, ok := byNumeric[c]; ok {
		return a3
	}
	if a3, ok := byName[strings.ToLower(c)]; ok && len(c) <= 3 {
		return a3
	}
	return c
}

// FromNumeric：ISO 3166 数字代码（如 "156"、"4"）到 alpha-3
func FromNumeric(id string) (string, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", false
	}
	for len(id) < 3 {
		id = "0" + id
	}
	code, ok := byNumeric[id]
	return code, ok
}

// 文档注释：占位代码
// 背景：名称无法解析为代码时，取名称前三个字符大写作为临时代码，不足三位以 X 补齐。
func Placeholder(name string) string {
	r := []rune(strings.ToUpper(strings.TrimSpace(name)))
	if len(r) > 3 {
		r = r[:3]
	}
	for len(r) < 3 {
		r = append(r, 'X')
	}
	return string(r)
}

// Known：是否为对照表中的 alpha-3 代码
func Known(code string) bool { return known[strings.ToUpper(code)] }
