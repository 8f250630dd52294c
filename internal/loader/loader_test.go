package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"country-map/internal/defaults"
	"country-map/internal/model"
	"country-map/internal/sources"
	"country-map/internal/topo"
)

const topology = `{
  "type": "Topology",
  "objects": {
    "countries": {
      "type": "GeometryCollection",
      "geometries": [
        {"type": "Polygon", "arcs": [[0]], "id": "156", "properties": {"name": "China"}},
        {"type": "Polygon", "arcs": [[1]], "properties": {"name": "Taiwan"}},
        {"type": "Polygon", "arcs": [[2]], "properties": {"name": "North Korea"}},
        {"type": "Polygon", "arcs": [[3]], "id": "410", "properties": {"name": "South Korea"}}
      ]
    }
  },
  "arcs": [
    [[0, 0], [10, 0], [10, 10], [0, 10], [0, 0]],
    [[20, 0], [22, 0], [22, 2], [20, 2], [20, 0]],
    [[30, 0], [32, 0], [32, 2], [30, 2], [30, 0]],
    [[40, 0], [42, 0], [42, 2], [40, 2], [40, 0]]
  ]
}`

const script = `{"countries":[
  {"name":"China","description":"home","group":"china"},
  {"name":"Taiwan","description":"island","group":"china"},
  {"name":"Korea","code":"KOR","description":"kimchi"},
  {"name":"Atlantis","description":"lost"}
]}`

type upstream struct {
	topoStatus   int
	scriptStatus int
	scriptBody   string
}

func (u *upstream) start(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/topology.json":
			if u.topoStatus != 0 {
				w.WriteHeader(u.topoStatus)
				return
			}
			_, _ = w.Write([]byte(topology))
		case "/script":
			if u.scriptStatus != 0 {
				w.WriteHeader(u.scriptStatus)
				return
			}
			body := u.scriptBody
			if body == "" {
				body = script
			}
			_, _ = w.Write([]byte(body))
		default:
			http.NotFound(w, r)
		}
	}))
	return srv
}

func newLoader(srv *httptest.Server, enabled bool) *Loader {
	return New(Options{
		TopologyURL: srv.URL + "/topology.json",
		Sources:     sources.Config{Enabled: enabled, ScriptURL: srv.URL + "/script"},
		Client:      srv.Client(),
	})
}

func TestLoadReconciles(t *testing.T) {
	u := &upstream{}
	srv := u.start(t)
	defer srv.Close()

	s := newLoader(srv, true).Load(context.Background())
	assert.Equal(t, "apps_script", s.Source)
	assert.Empty(t, s.Notice)
	assert.NotEmpty(t, s.ID)
	require.Len(t, s.Countries, 3)
	assert.Equal(t, model.Country{Code: "CHN", Name: "China", Color: model.DefaultColor, Description: "home", Group: "china", Coordinates: &model.Coord{Lon: 5, Lat: 5}}, s.Countries[0])
	assert.Equal(t, "TWN", s.Countries[1].Code)
	assert.Equal(t, &model.Coord{Lon: 21, Lat: 1}, s.Countries[1].Coordinates)
	assert.Equal(t, &model.Coord{Lon: 41, Lat: 1}, s.Countries[2].Coordinates, "KOR never lands on North Korea")
	require.Len(t, s.Unmatched, 1)
	assert.Equal(t, "Atlantis", s.Unmatched[0].Annotation.Name)

	require.NotNil(t, s.Index)
	h, ok := s.Index.Locate(5, 5)
	require.True(t, ok)
	assert.Equal(t, "CHN", h.Code)
	c, ok := s.Find("twn")
	require.True(t, ok)
	assert.Equal(t, "Taiwan", c.Name)
}

func TestLoadFillsBuiltinDescriptions(t *testing.T) {
	u := &upstream{scriptBody: `{"countries":[{"name":"China"},{"name":"Taiwan","description":"island"}]}`}
	srv := u.start(t)
	defer srv.Close()

	s := newLoader(srv, true).Load(context.Background())
	require.Len(t, s.Countries, 2)
	assert.Equal(t, defaults.Describe("CHN"), s.Countries[0].Description)
	assert.NotEmpty(t, s.Countries[0].Description)
	assert.Equal(t, "island", s.Countries[1].Description)
}

func TestNewDefaultsPropertyKeysWithCustomObject(t *testing.T) {
	u := &upstream{}
	srv := u.start(t)
	defer srv.Close()

	ld := New(Options{
		TopologyURL: srv.URL + "/topology.json",
		Topo:        topo.Options{Object: "countries"},
		Sources:     sources.Config{Enabled: true, ScriptURL: srv.URL + "/script"},
		Client:      srv.Client(),
	})
	assert.Equal(t, topo.DefaultOptions(), ld.opts.Topo)
	s := ld.Load(context.Background())
	assert.Equal(t, "apps_script", s.Source)
	require.Len(t, s.Countries, 3)
	assert.Equal(t, "China", s.Countries[0].Name)
}

func TestLoadFallbacks(t *testing.T) {
	cases := []struct {
		name      string
		up        upstream
		enabled   bool
		notice    string
		wantIndex bool
	}{
		{"disabled", upstream{}, false, "", true},
		{"sheet transport error", upstream{scriptStatus: http.StatusInternalServerError}, true, NoticeFailed, true},
		{"sheet malformed", upstream{scriptBody: "<html>"}, true, NoticeFailed, true},
		{"topology error", upstream{topoStatus: http.StatusBadGateway}, true, NoticeFailed, false},
		{"topology error while disabled", upstream{topoStatus: http.StatusBadGateway}, false, NoticeFailed, false},
		{"empty sheet", upstream{scriptBody: `{"countries":[{"name":"France","remark":"  "}]}`}, true, NoticeEmpty, true},
		{"nothing matches", upstream{scriptBody: `{"countries":[{"name":"Atlantis","remark":"lost"}]}`}, true, NoticeNoMatch, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := tc.up.start(t)
			defer srv.Close()
			s := newLoader(srv, tc.enabled).Load(context.Background())
			assert.Equal(t, SourceDefault, s.Source)
			assert.Equal(t, tc.notice, s.Notice)
			assert.Equal(t, defaults.Countries(), s.Countries)
			assert.Equal(t, tc.wantIndex, s.Index != nil)
		})
	}
}

func TestLoadCustomDefaults(t *testing.T) {
	u := &upstream{scriptStatus: http.StatusNotFound}
	srv := u.start(t)
	defer srv.Close()
	custom := []model.Country{{Code: "FRA", Name: "France", Color: model.DefaultColor}}
	l := New(Options{
		TopologyURL: srv.URL + "/topology.json",
		Sources:     sources.Config{Enabled: true, ScriptURL: srv.URL + "/script"},
		Client:      srv.Client(),
		Defaults:    custom,
	})
	s := l.Load(context.Background())
	assert.Equal(t, custom, s.Countries)
	s.Countries[0].Name = "mutated"
	assert.Equal(t, "France", custom[0].Name)
}

func TestHolder(t *testing.T) {
	var h Holder
	assert.Nil(t, h.Current())
	s := &Snapshot{ID: "a"}
	h.Store(s)
	assert.Same(t, s, h.Current())
}

func TestRunRefreshesUntilCancelled(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	u := &upstream{}
	srv := u.start(t)
	defer srv.Close()

	l := newLoader(srv, true)
	var h Holder
	first := l.Reload(context.Background(), &h)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Run(ctx, &h, 10*time.Millisecond)
		close(done)
	}()
	require.Eventually(t, func() bool { return h.Current().ID != first.ID }, 2*time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("refresh loop did not stop")
	}
}

func TestRunDisabled(t *testing.T) {
	var h Holder
	New(Options{}).Run(context.Background(), &h, 0)
	assert.Nil(t, h.Current())
}

func TestSnapshotFind(t *testing.T) {
	s := &Snapshot{Countries: []model.Country{{Code: "FRA", Name: "France"}, {Code: "CHN", Name: "China"}}}
	c, ok := s.Find(" chn ")
	require.True(t, ok)
	assert.Equal(t, "China", c.Name)
	_, ok = s.Find("CH")
	assert.False(t, ok)
	_, ok = s.Find("")
	assert.False(t, ok)
}
