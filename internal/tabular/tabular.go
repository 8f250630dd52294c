// 包 tabular：表格导出文本（逗号分隔、双引号包裹）的解析与写出
package tabular

import "strings"

// 文档注释：解析逗号分隔文本为行列
// 背景：表格导出的备注列常含换行与逗号，需按引号状态区分字段内容与分隔符。
// 约束：引号外的 \n、\r\n、\r 结束一行；"" 转义为单个引号；无终止符的末行照常输出；
// 空行跳过；未闭合引号吞到输入结尾，不报错。空输入返回 nil。
func Parse(text string) [][]string {
	var rows [][]string
	var row []string
	var cell strings.Builder
	inQuotes := false
	n := len(text)
	for i := 0; i < n; i++ {
		ch := text[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < n && text[i+1] == '"' {
				cell.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			row = append(row, cell.String())
			cell.Reset()
		case (ch == '\n' || ch == '\r') && !inQuotes:
			if ch == '\r' && i+1 < n && text[i+1] == '\n' {
				i++
			}
			if cell.Len() > 0 || len(row) > 0 {
				rows = append(rows, append(row, cell.String()))
				row = nil
				cell.Reset()
			}
		default:
			cell.WriteByte(ch)
		}
	}
	if cell.Len() > 0 || len(row) > 0 {
		rows = append(rows, append(row, cell.String()))
	}
	return rows
}

// 文档注释：将行列写出为逗号分隔文本（Parse 的配套写出）
// 约束：含逗号、引号、回车或换行的单元格以双引号包裹，内部引号加倍；每行以 \n 结尾。
func Format(rows [][]string) string {
	var b strings.Builder
	for _, row := range rows {
		for j, cell := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			if strings.ContainsAny(cell, ",\"\r\n") {
				b.WriteByte('"')
				b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
				b.WriteByte('"')
			} else {
				b.WriteString(cell)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Records：跳过标题行，按列序返回数据行；列数不足的行以空串补齐到 width
func Records(rows [][]string, width int) [][]string {
	if len(rows) <= 1 {
		return nil
	}
	out := make([][]string, 0, len(rows)-1)
	for _, r := range rows[1:] {
		if len(r) < width {
			padded := make([]string, width)
			copy(padded, r)
			r = padded
		}
		out = append(out, r)
	}
	return out
}
