// 包 defaults：内置的后备国家列表，以及可选的 YAML 覆盖文件
package defaults

import (
	"bytes"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"country-map/internal/countrycode"
	"country-map/internal/model"
)

// 内置列表：无坐标；简介见 info.go；china 分组以 CHN 为主成员
var builtin = []model.Country{
	// Asia
	{Code: "CHN", Name: "China", Color: model.DefaultColor, Group: "china"},
	{Code: "TWN", Name: "Taiwan", Color: model.DefaultColor, Group: "china"},
	{Code: "HKG", Name: "Hong Kong", Color: model.DefaultColor, Group: "china"},
	{Code: "SGP", Name: "Singapore", Color: model.DefaultColor},
	{Code: "JPN", Name: "Japan", Color: model.DefaultColor},
	{Code: "KOR", Name: "South Korea", Color: model.DefaultColor},
	{Code: "IND", Name: "India", Color: model.DefaultColor},
	{Code: "IDN", Name: "Indonesia", Color: model.DefaultColor},
	{Code: "PHL", Name: "Philippines", Color: model.DefaultColor},
	{Code: "TUR", Name: "Turkey", Color: model.DefaultColor},
	// Europe
	{Code: "CHE", Name: "Switzerland", Color: model.DefaultColor},
	{Code: "DEU", Name: "Germany", Color: model.DefaultColor},
	{Code: "BEL", Name: "Belgium", Color: model.DefaultColor},
	{Code: "FRA", Name: "France", Color: model.DefaultColor},
	{Code: "NLD", Name: "Netherlands", Color: model.DefaultColor},
	{Code: "GBR", Name: "United Kingdom", Color: model.DefaultColor},
	{Code: "DNK", Name: "Denmark", Color: model.DefaultColor},
	{Code: "SWE", Name: "Sweden", Color: model.DefaultColor},
	{Code: "GEO", Name: "Georgia", Color: model.DefaultColor},
	{Code: "RUS", Name: "Russia", Color: model.DefaultColor},
	{Code: "UKR", Name: "Ukraine", Color: model.DefaultColor},
	// Others
	{Code: "NZL", Name: "New Zealand", Color: model.DefaultColor},
	{Code: "PER", Name: "Peru", Color: model.DefaultColor},
	{Code: "BRA", Name: "Brazil", Color: model.DefaultColor},
	{Code: "USA", Name: "United States", Color: model.DefaultColor},
	{Code: "ARG", Name: "Argentina", Color: model.DefaultColor},
	{Code: "AUS", Name: "Australia", Color: model.DefaultColor},
	{Code: "CHL", Name: "Chile", Color: model.DefaultColor},
	{Code: "ISR", Name: "Israel", Color: model.DefaultColor},
	{Code: "MEX", Name: "Mexico", Color: model.DefaultColor},
}

// Countries：返回内置列表的副本
func Countries() []model.Country {
	out := make([]model.Country, len(builtin))
	copy(out, builtin)
	return out
}

// file：覆盖文件结构
type file struct {
	Countries []model.Annotation `yaml:"countries"`
}

// 文档注释：读取 YAML 覆盖文件
// 背景：运维可替换后备列表而无需重新构建；条目字段同标注（code/name/color/description/group）。
// 约束：path 为空返回内置列表；名称为空或代码无法确定的条目视为文件非法；未知字段报错；未写简介的条目沿用内置简介。
func Load(path string) ([]model.Country, error) {
	if strings.TrimSpace(path) == "" {
		return Countries(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse：解析覆盖文件内容
func Parse(b []byte) ([]model.Country, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, &model.MalformedInputError{What: "default countries file", Err: err}
	}
	out := make([]model.Country, 0, len(f.Countries))
	for i, a := range f.Countries {
		name := strings.TrimSpace(a.Name)
		if name == "" {
			return nil, &model.MalformedInputError{What: "default countries file: entry " + strconv.Itoa(i) + " has no name"}
		}
		code := countrycode.Canonical(a.Code)
		if code == "" {
			c, ok := countrycode.Resolve(name)
			if !ok {
				return nil, &model.MalformedInputError{What: "default countries file: no code for " + name}
			}
			code = c
		}
		color := strings.TrimSpace(a.Color)
		if color == "" {
			color = model.DefaultColor
		}
		desc := strings.TrimSpace(a.Description)
		if desc == "" {
			desc = Describe(code)
		}
		out = append(out, model.Country{
			Code:        code,
			Name:        name,
			Color:       color,
			Description: desc,
			Group:       strings.TrimSpace(a.Group),
		})
	}
	return out, nil
}
