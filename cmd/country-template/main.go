// 程序入口：导出国家标注模板（表格首列为地图上的国家名称，第二列留空供填写备注）
package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"country-map/internal/loader"
	"country-map/internal/logger"
	"country-map/internal/model"
	"country-map/internal/tabular"
	"country-map/internal/topo"
)

var (
	topologyURL string
	objectName  string
	outPath     string
	withCodes   bool
	timeout     time.Duration
)

var rootCmd = &cobra.Command{
	Use:          "country-template",
	Short:        "Tools for the country annotation spreadsheet",
	SilenceUsage: true,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a CSV template listing every country name in the map topology",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := &http.Client{Timeout: timeout}
		t, err := topo.Fetch(cmd.Context(), client, topologyURL)
		if err != nil {
			return err
		}
		opts := topo.DefaultOptions()
		opts.Object = objectName
		shapes, err := topo.Extract(t, opts)
		if err != nil {
			return err
		}
		var w io.Writer = cmd.OutOrStdout()
		if outPath != "" && outPath != "-" {
			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		rows := templateRows(shapes, withCodes)
		if _, err := io.WriteString(w, tabular.Format(rows)); err != nil {
			return err
		}
		logger.L().Info("template_exported", "countries", len(rows)-1, "out", outPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&topologyURL, "url", loader.DefaultTopologyURL, "TopoJSON URL")
	exportCmd.Flags().StringVar(&objectName, "object", "countries", "topology object collection")
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().BoolVar(&withCodes, "codes", false, "append a Code column")
	exportCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "download timeout")
}

// 文档注释：模板行
// 约束：首行为表头；名称去重后按字典序排列；备注列留空。
func templateRows(shapes []model.Shape, codes bool) [][]string {
	header := []string{"Country Name", "Remark"}
	if codes {
		header = append(header, "Code")
	}
	byName := map[string]string{}
	for _, s := range shapes {
		if _, ok := byName[s.Name]; !ok || byName[s.Name] == "" {
			byName[s.Name] = s.Code
		}
	}
	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	sort.Strings(names)
	rows := [][]string{header}
	for _, n := range names {
		row := []string{n, ""}
		if codes {
			row = append(row, byName[n])
		}
		rows = append(rows, row)
	}
	return rows
}

func main() {
	_ = godotenv.Load(".env")
	logger.Setup(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
