package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"country-map/internal/loader"
	"country-map/internal/model"
	"country-map/internal/reconcile"
	"country-map/internal/revgeo"
	"country-map/internal/topo"
)

func square(x0, y0, d float64) []model.Coord {
	return []model.Coord{{Lon: x0, Lat: y0}, {Lon: x0 + d, Lat: y0}, {Lon: x0 + d, Lat: y0 + d}, {Lon: x0, Lat: y0 + d}, {Lon: x0, Lat: y0}}
}

func testSnapshot(id string) *loader.Snapshot {
	feats := []topo.Feature{
		{Polygons: []topo.Polygon{{square(0, 0, 10)}}},
		{Polygons: []topo.Polygon{{square(20, 0, 2)}}},
		{Polygons: []topo.Polygon{{square(40, 0, 2)}}},
		{Polygons: []topo.Polygon{{square(60, 0, 2)}}},
	}
	shapes := []model.Shape{
		{Name: "China", Code: "CHN", Point: &model.Coord{Lon: 5, Lat: 5}},
		{Name: "Taiwan", Code: "TWN", Point: &model.Coord{Lon: 21, Lat: 1}},
		{Name: "France", Code: "FRA", Point: &model.Coord{Lon: 41, Lat: 1}},
		{Name: "Peru", Code: "PER", Point: &model.Coord{Lon: 61, Lat: 1}},
	}
	return &loader.Snapshot{
		ID:       id,
		Source:   "csv",
		LoadedAt: time.Unix(1700000000, 0).UTC(),
		Countries: []model.Country{
			{Code: "TWN", Name: "Taiwan", Color: model.DefaultColor, Description: "island", Group: "china", Coordinates: &model.Coord{Lon: 21, Lat: 1}},
			{Code: "CHN", Name: "China", Color: model.DefaultColor, Description: "home", Group: "china", Coordinates: &model.Coord{Lon: 5, Lat: 5}},
			{Code: "FRA", Name: "France", Color: model.DefaultColor, Description: "Paris", Coordinates: &model.Coord{Lon: 41, Lat: 1}},
		},
		Unmatched: []reconcile.Unmatched{{Annotation: model.Annotation{Code: "ATL", Name: "Atlantis"}}},
		Anchors:   reconcile.DefaultAnchors,
		Index:     revgeo.NewIndex(revgeo.UnitsFrom(feats, shapes), revgeo.DefaultOptions()),
	}
}

type fakeReloader struct{ calls int }

func (f *fakeReloader) Reload(_ context.Context, h *loader.Holder) *loader.Snapshot {
	f.calls++
	s := testSnapshot("reloaded")
	h.Store(s)
	return s
}

func newServer(t *testing.T, d Deps) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(BuildRoutes(d))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func loadedDeps() Deps {
	h := &loader.Holder{}
	h.Store(testSnapshot("snap-1"))
	return Deps{Holder: h}
}

func TestNotLoaded(t *testing.T) {
	srv := newServer(t, Deps{Holder: &loader.Holder{}})
	var body map[string]any
	assert.Equal(t, http.StatusServiceUnavailable, getJSON(t, srv.URL+"/countries", &body))
	assert.Equal(t, "not loaded", body["error"])

	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/health", &body))
	assert.Equal(t, false, body["loaded"])
}

func TestCountries(t *testing.T) {
	srv := newServer(t, loadedDeps())
	var body struct {
		ID        string          `json:"id"`
		Source    string          `json:"source"`
		Notice    string          `json:"notice"`
		Countries []model.Country `json:"countries"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/countries", &body))
	assert.Equal(t, "snap-1", body.ID)
	assert.Equal(t, "csv", body.Source)
	assert.Empty(t, body.Notice)
	require.Len(t, body.Countries, 3)
	assert.Equal(t, &model.Coord{Lon: 5, Lat: 5}, body.Countries[1].Coordinates)
}

func TestCountriesRedisUnavailable(t *testing.T) {
	d := loadedDeps()
	d.Redis = redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	defer d.Redis.Close()
	d.CacheTTL = time.Minute
	srv := newServer(t, d)
	var body map[string]any
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/countries", &body))
	assert.Equal(t, "snap-1", body["id"])
}

func TestSidebar(t *testing.T) {
	srv := newServer(t, loadedDeps())
	var body struct {
		Countries []model.Country `json:"countries"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/countries/sidebar", &body))
	var codes []string
	for _, c := range body.Countries {
		codes = append(codes, c.Code)
	}
	assert.Equal(t, []string{"CHN", "FRA"}, codes)

	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/countries/sidebar?q=zzz", &body))
	assert.Empty(t, body.Countries)
}

func TestCountryByCode(t *testing.T) {
	srv := newServer(t, loadedDeps())
	var v countryView
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/countries/twn", &v))
	assert.Equal(t, "Taiwan", v.Country.Name)
	assert.Equal(t, "CHN", v.Primary)
	assert.Len(t, v.Members, 2)

	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/countries/FRA", &v))
	assert.Empty(t, v.Primary)

	assert.Equal(t, http.StatusNotFound, getJSON(t, srv.URL+"/countries/PER", nil))
}

func TestLocate(t *testing.T) {
	srv := newServer(t, loadedDeps())
	cases := []struct {
		name   string
		query  string
		found  bool
		marked bool
		code   string
		approx bool
	}{
		{"taiwan resolves to china", "lon=21&lat=1", true, true, "CHN", false},
		{"plain country", "lon=41&lat=1", true, true, "FRA", false},
		{"unmarked shape", "lon=61&lat=1", true, false, "", false},
		{"near the coast", "lon=41&lat=2.5", true, true, "FRA", true},
		{"open ocean", "lon=-150&lat=-50", false, false, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var v locateView
			require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/locate?"+tc.query, &v))
			assert.Equal(t, tc.found, v.Found)
			assert.Equal(t, tc.marked, v.Marked)
			assert.Equal(t, tc.approx, v.Approx)
			if tc.code != "" {
				require.NotNil(t, v.Country)
				assert.Equal(t, tc.code, v.Country.Code)
			}
		})
	}
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv.URL+"/locate?lon=abc&lat=1", nil))
}

func TestViewerDisabled(t *testing.T) {
	srv := newServer(t, loadedDeps())
	assert.Equal(t, http.StatusNotFound, getJSON(t, srv.URL+"/viewer", nil))
}

func TestUnmatched(t *testing.T) {
	srv := newServer(t, loadedDeps())
	var body struct {
		Unmatched []reconcile.Unmatched `json:"unmatched"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/unmatched", &body))
	require.Len(t, body.Unmatched, 1)
	assert.Equal(t, "Atlantis", body.Unmatched[0].Annotation.Name)
}

func TestReload(t *testing.T) {
	fr := &fakeReloader{}
	d := loadedDeps()
	d.Loader = fr
	d.AdminToken = "s3cret"
	srv := newServer(t, d)

	post := func(token string) int {
		req, err := http.NewRequest(http.MethodPost, srv.URL+"/reload", strings.NewReader(""))
		require.NoError(t, err)
		if token != "" {
			req.Header.Set("x-admin-token", token)
		}
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		return resp.StatusCode
	}
	assert.Equal(t, http.StatusUnauthorized, post(""))
	assert.Equal(t, http.StatusUnauthorized, post("wrong"))
	assert.Equal(t, 0, fr.calls)
	assert.Equal(t, http.StatusNoContent, post("s3cret"))
	assert.Equal(t, 1, fr.calls)
	assert.Equal(t, "reloaded", d.Holder.Current().ID)

	resp, err := http.Get(srv.URL + "/reload")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestReloadWithoutToken(t *testing.T) {
	d := loadedDeps()
	d.Loader = &fakeReloader{}
	srv := newServer(t, d)
	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/reload", nil)
	req.Header.Set("x-admin-token", "")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestMetricsRoute(t *testing.T) {
	srv := newServer(t, loadedDeps())
	getJSON(t, srv.URL+"/health", nil)
	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
