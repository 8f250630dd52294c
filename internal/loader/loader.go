// 包 loader：并发拉取拓扑与表格标注，对齐为国家列表并在失败或空结果时回退到默认列表，结果以快照形式原子发布
package loader

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"country-map/internal/defaults"
	"country-map/internal/logger"
	"country-map/internal/metrics"
	"country-map/internal/model"
	"country-map/internal/reconcile"
	"country-map/internal/revgeo"
	"country-map/internal/sources"
	"country-map/internal/topo"
)

// 回退提示：每次回退只给出一行提示
const (
	NoticeNoMatch = "no countries could be matched, using default data"
	NoticeEmpty   = "Google Sheets has no valid data, using default data"
	NoticeFailed  = "failed to load data, using default data"
)

// SourceDefault：快照来源为默认列表
const SourceDefault = "default"

// Options：加载参数；零值字段按默认值补齐
type Options struct {
	TopologyURL string
	Topo        topo.Options
	Sources     sources.Config
	Client      *http.Client
	Defaults    []model.Country
	Anchors     map[string]string
	Engine      *reconcile.Engine
	Locate      revgeo.Options
}

// Loader：加载器；同一时刻仅允许一次加载
type Loader struct {
	opts Options
	mu   sync.Mutex
	now  func() time.Time
}

// DefaultTopologyURL：world-atlas 50m 国家边界
const DefaultTopologyURL = "https://cdn.jsdelivr.net/npm/world-atlas@2/countries-50m.json"

func New(opts Options) *Loader {
	if opts.TopologyURL == "" {
		opts.TopologyURL = DefaultTopologyURL
	}
	def := topo.DefaultOptions()
	if opts.Topo.Object == "" {
		opts.Topo.Object = def.Object
	}
	if opts.Topo.NameKeys == nil && opts.Topo.CodeKeys == nil {
		opts.Topo.NameKeys, opts.Topo.CodeKeys, opts.Topo.NumericID = def.NameKeys, def.CodeKeys, def.NumericID
	}
	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: 10 * time.Second}
	}
	if opts.Defaults == nil {
		opts.Defaults = defaults.Countries()
	}
	if opts.Anchors == nil {
		opts.Anchors = reconcile.DefaultAnchors
	}
	if opts.Engine == nil {
		opts.Engine = reconcile.New()
	}
	return &Loader{opts: opts, now: time.Now}
}

// 文档注释：执行一次完整加载
// 背景：拓扑与标注并发拉取（errgroup），各自记录错误而不相互取消，使拓扑成功时即便标注失败仍可构建点选索引。
// 约束：从不返回错误；未填写简介的已匹配国家沿用内置简介；任何传输或载荷错误（含拓扑）、标注为空、无一匹配都回退到默认列表并给出一行 Notice；未启用表格且拓扑正常时使用默认列表且无提示。
func (l *Loader) Load(ctx context.Context) *Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	start := time.Now()
	log := logger.L()

	src, enabled := sources.Select(l.opts.Sources, l.opts.Client)
	var (
		feats  []topo.Feature
		anns   []model.Annotation
		topErr error
		srcErr error
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		feats, topErr = l.fetchTopology(egCtx)
		return nil
	})
	if enabled {
		eg.Go(func() error {
			anns, srcErr = fetchSource(egCtx, src)
			return nil
		})
	}
	_ = eg.Wait()

	snap := &Snapshot{ID: uuid.NewString(), LoadedAt: l.now(), Anchors: l.opts.Anchors}
	var shapes []model.Shape
	if topErr != nil {
		log.Error("topology_load_failed", "url", l.opts.TopologyURL, "err", topErr)
	} else {
		shapes = make([]model.Shape, 0, len(feats))
		for _, f := range feats {
			shapes = append(shapes, topo.ShapeOf(f, l.opts.Topo))
		}
		snap.Index = revgeo.NewIndex(revgeo.UnitsFrom(feats, shapes), l.opts.Locate)
	}

	outcome := "sheets"
	switch {
	case topErr != nil || srcErr != nil:
		outcome = "fallback_error"
		if srcErr != nil {
			log.Error("annotations_load_failed", "source", src.Name(), "err", srcErr)
		}
		l.fallback(snap, NoticeFailed)
	case !enabled:
		outcome = SourceDefault
		l.fallback(snap, "")
		log.Info("sheets_disabled_using_defaults")
	case len(anns) == 0:
		outcome = "fallback_empty"
		log.Warn("annotations_empty", "source", src.Name())
		l.fallback(snap, NoticeEmpty)
	default:
		res := l.opts.Engine.Run(shapes, anns)
		for step, n := range res.Steps {
			metrics.MatchedTotal.WithLabelValues(string(step)).Add(float64(n))
		}
		metrics.UnmatchedTotal.Add(float64(len(res.Unmatched)))
		snap.Unmatched = res.Unmatched
		if len(res.Countries) == 0 {
			outcome = "fallback_nomatch"
			log.Warn("annotations_unmatched", "source", src.Name(), "annotations", len(anns))
			l.fallback(snap, NoticeNoMatch)
			break
		}
		snap.Source = src.Name()
		for i := range res.Countries {
			if res.Countries[i].Description == "" {
				res.Countries[i].Description = defaults.Describe(res.Countries[i].Code)
			}
		}
		snap.Countries = res.Countries
	}
	metrics.LoadsTotal.WithLabelValues(outcome).Inc()
	metrics.LoadDurationMs.Observe(float64(time.Since(start).Milliseconds()))
	log.Info("load_done",
		"id", snap.ID,
		"source", snap.Source,
		"outcome", outcome,
		"shapes", len(shapes),
		"countries", len(snap.Countries),
		"unmatched", len(snap.Unmatched),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return snap
}

// fallback：复制默认列表到快照
func (l *Loader) fallback(s *Snapshot, notice string) {
	s.Source = SourceDefault
	s.Notice = notice
	s.Countries = make([]model.Country, len(l.opts.Defaults))
	copy(s.Countries, l.opts.Defaults)
}

func (l *Loader) fetchTopology(ctx context.Context) ([]topo.Feature, error) {
	t0 := time.Now()
	t, err := topo.Fetch(ctx, l.opts.Client, l.opts.TopologyURL)
	observe("topology", t0, err)
	if err != nil {
		return nil, err
	}
	return topo.Features(t, l.opts.Topo.Object)
}

func fetchSource(ctx context.Context, src sources.Source) ([]model.Annotation, error) {
	t0 := time.Now()
	anns, err := src.Fetch(ctx)
	observe(src.Name(), t0, err)
	return anns, err
}

func observe(name string, t0 time.Time, err error) {
	metrics.SourceDurationMs.WithLabelValues(name).Observe(float64(time.Since(t0).Milliseconds()))
	status := "ok"
	switch {
	case errors.Is(err, model.ErrTransport):
		status = "transport_error"
	case errors.Is(err, model.ErrMalformed):
		status = "malformed"
	case err != nil:
		status = "error"
	}
	metrics.SourceFetchTotal.WithLabelValues(name, status).Inc()
}

// Reload：加载并发布到持有者
func (l *Loader) Reload(ctx context.Context, h *Holder) *Snapshot {
	s := l.Load(ctx)
	h.Store(s)
	return s
}

// 文档注释：周期刷新
// 背景：按固定间隔重新加载并发布；阻塞直到 ctx 取消，调用方在独立协程中运行。
// 约束：every <= 0 时立即返回；单次加载失败已在 Load 内回退，不中断循环。
func (l *Loader) Run(ctx context.Context, h *Holder, every time.Duration) {
	if every <= 0 {
		return
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.L().Debug("refresh_stopped")
			return
		case <-t.C:
			l.Reload(ctx, h)
		}
	}
}
