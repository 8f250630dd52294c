package topo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"country-map/internal/model"
)

const fixture = `{
  "type": "Topology",
  "transform": {"scale": [1, 1], "translate": [0, 0]},
  "objects": {
    "countries": {
      "type": "GeometryCollection",
      "geometries": [
        {"type": "Polygon", "arcs": [[0]], "id": "156", "properties": {"name": "China"}},
        {"type": "MultiPolygon", "arcs": [[[1]], [[-3]]], "properties": {"NAME": "South Korea", "ISO_A3": "kor"}},
        {"type": "Point", "coordinates": [5, 5], "id": 392},
        {"type": "Polygon", "arcs": [[0]], "properties": {"ADMIN": "Kosovo", "ISO_A3": "-99", "ADM0_A3": "KOS"}}
      ]
    }
  },
  "arcs": [
    [[0, 0], [10, 0], [0, 10], [-10, 0], [0, -10]],
    [[20, 0], [2, 0], [0, 2], [-2, 0], [0, -2]],
    [[30, 0], [0, 2], [2, 0], [0, -2], [-2, 0]]
  ]
}`

func mustDecode(t *testing.T, s string) *Topology {
	t.Helper()
	topo, err := Decode(strings.NewReader(s))
	require.NoError(t, err)
	return topo
}

func TestExtractOneShapePerFeature(t *testing.T) {
	shapes, err := Extract(mustDecode(t, fixture), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, shapes, 4)
	for _, s := range shapes {
		assert.NotEmpty(t, s.Name)
	}

	china := shapes[0]
	assert.Equal(t, "China", china.Name)
	assert.Equal(t, "CHN", china.Code, "numeric id maps to alpha-3")
	require.NotNil(t, china.Point)
	assert.InDelta(t, 5, china.Point.Lon, 1e-9)
	assert.InDelta(t, 5, china.Point.Lat, 1e-9)

	korea := shapes[1]
	assert.Equal(t, "South Korea", korea.Name)
	assert.Equal(t, "KOR", korea.Code)
	require.NotNil(t, korea.Point)
	assert.InDelta(t, 26, korea.Point.Lon, 1e-9)
	assert.InDelta(t, 1, korea.Point.Lat, 1e-9)

	point := shapes[2]
	assert.Equal(t, UnknownName, point.Name)
	assert.Equal(t, "JPN", point.Code)
	assert.Nil(t, point.Point)

	kosovo := shapes[3]
	assert.Equal(t, "Kosovo", kosovo.Name)
	assert.Equal(t, "KOS", kosovo.Code, "-99 is skipped")
}

func TestExtractWithoutNumericID(t *testing.T) {
	opts := DefaultOptions()
	opts.NumericID = false
	shapes, err := Extract(mustDecode(t, fixture), opts)
	require.NoError(t, err)
	assert.Empty(t, shapes[0].Code)
}

func TestExtractMissingObject(t *testing.T) {
	opts := DefaultOptions()
	opts.Object = "land"
	_, err := Extract(mustDecode(t, fixture), opts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrMalformed))
}

func TestExtractBadArcIndex(t *testing.T) {
	doc := `{"type":"Topology","objects":{"countries":{"type":"GeometryCollection","geometries":[{"type":"Polygon","arcs":[[7]]}]}},"arcs":[]}`
	_, err := Extract(mustDecode(t, doc), DefaultOptions())
	assert.True(t, errors.Is(err, model.ErrMalformed))
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode(strings.NewReader("{not json"))
	var me *model.MalformedInputError
	assert.True(t, errors.As(err, &me))

	_, err = Decode(strings.NewReader(`{"type":"Topology"}`))
	assert.True(t, errors.Is(err, model.ErrMalformed))
}

func TestStitchRing(t *testing.T) {
	arcs := [][]model.Coord{
		{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 0}, {Lon: 1, Lat: 1}},
		{{Lon: 0, Lat: 0}, {Lon: 0, Lat: 1}, {Lon: 1, Lat: 1}},
	}
	ring, err := stitchRing([]int{0, ^1}, arcs)
	require.NoError(t, err)
	assert.Equal(t, []model.Coord{
		{Lon: 0, Lat: 0}, {Lon: 1, Lat: 0}, {Lon: 1, Lat: 1}, {Lon: 0, Lat: 1}, {Lon: 0, Lat: 0},
	}, ring)
}

func TestCentroidHoleAndFallback(t *testing.T) {
	square := func(x0, y0, d float64) []model.Coord {
		return []model.Coord{{Lon: x0, Lat: y0}, {Lon: x0 + d, Lat: y0}, {Lon: x0 + d, Lat: y0 + d}, {Lon: x0, Lat: y0 + d}, {Lon: x0, Lat: y0}}
	}
	c := Centroid([]Polygon{{square(0, 0, 10), square(0, 0, 2)}})
	require.NotNil(t, c)
	assert.InDelta(t, 496.0/96.0, c.Lon, 1e-9)
	assert.InDelta(t, 496.0/96.0, c.Lat, 1e-9)

	line := []model.Coord{{Lon: 0, Lat: 0}, {Lon: 4, Lat: 2}, {Lon: 0, Lat: 0}}
	c = Centroid([]Polygon{{line}})
	require.NotNil(t, c)
	assert.Equal(t, model.Coord{Lon: 2, Lat: 1}, *c)

	assert.Nil(t, Centroid(nil))
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(fixture))
	}))
	defer srv.Close()

	topo, err := Fetch(context.Background(), srv.Client(), srv.URL+"/countries.json")
	require.NoError(t, err)
	assert.Len(t, topo.Arcs, 3)

	_, err = Fetch(context.Background(), srv.Client(), srv.URL+"/missing")
	var te *model.TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, http.StatusNotFound, te.Status)
}
