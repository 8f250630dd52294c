package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"country-map/internal/model"
	"country-map/internal/tabular"
)

func TestTemplateRows(t *testing.T) {
	shapes := []model.Shape{
		{Name: "Peru", Code: "PER"},
		{Name: "Cote d'Ivoire"},
		{Name: "Brazil", Code: "BRA"},
		{Name: "Cote d'Ivoire", Code: "CIV"},
	}
	assert.Equal(t, [][]string{
		{"Country Name", "Remark"},
		{"Brazil", ""},
		{"Cote d'Ivoire", ""},
		{"Peru", ""},
	}, templateRows(shapes, false))

	rows := templateRows(shapes, true)
	assert.Equal(t, []string{"Cote d'Ivoire", "", "CIV"}, rows[2])
}

func TestExportCommand(t *testing.T) {
	doc := `{"type":"Topology","objects":{"countries":{"type":"GeometryCollection","geometries":[
		{"type":"Polygon","arcs":[[0]],"properties":{"name":"Korea, South"}},
		{"type":"Polygon","arcs":[[0]],"properties":{"name":"Chad"}}
	]}},"arcs":[[[0,0],[1,0],[1,1],[0,0]]]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(doc))
	}))
	defer srv.Close()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"export", "--url", srv.URL})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "Country Name,Remark\nChad,\n\"Korea, South\",\n", out.String())
	assert.Equal(t, [][]string{{"Country Name", "Remark"}, {"Chad", ""}, {"Korea, South", ""}}, tabular.Parse(out.String()))
}
