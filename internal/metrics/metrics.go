// 包 metrics：加载链路与 HTTP 接口的 Prometheus 指标
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "countrymap_requests_total",
		Help: "Total number of API requests by route",
	}, []string{"route"})
	RequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "countrymap_request_duration_ms",
		Help:    "Request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"route"})
	LoadsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "countrymap_loads_total",
		Help: "Snapshot loads by outcome (sheets, default, fallback_empty, fallback_error)",
	}, []string{"outcome"})
	LoadDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "countrymap_load_duration_ms",
		Help:    "Full load duration in milliseconds",
		Buckets: []float64{10, 50, 100, 200, 500, 1000, 2000, 5000, 10000},
	})
	SourceFetchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "countrymap_source_fetch_total",
		Help: "Upstream fetches by source and status",
	}, []string{"source", "status"})
	SourceDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "countrymap_source_duration_ms",
		Help:    "Upstream fetch duration in milliseconds",
		Buckets: []float64{10, 50, 100, 200, 500, 1000, 2000, 5000, 10000},
	}, []string{"source"})
	MatchedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "countrymap_reconcile_matched_total",
		Help: "Annotations matched to a shape, by matching step",
	}, []string{"step"})
	UnmatchedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "countrymap_reconcile_unmatched_total",
		Help: "Annotations without any matching shape",
	})
	RedisHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "countrymap_redis_hits_total",
		Help: "Total redis cache hits",
	})
	RedisMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "countrymap_redis_misses_total",
		Help: "Total redis cache misses",
	})
	LocateTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "countrymap_locate_total",
		Help: "Hit-test lookups by result (hit, nearest, miss, cache)",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestDurationMs)
	prometheus.MustRegister(LoadsTotal)
	prometheus.MustRegister(LoadDurationMs)
	prometheus.MustRegister(SourceFetchTotal)
	prometheus.MustRegister(SourceDurationMs)
	prometheus.MustRegister(MatchedTotal)
	prometheus.MustRegister(UnmatchedTotal)
	prometheus.MustRegister(RedisHitsTotal)
	prometheus.MustRegister(RedisMissesTotal)
	prometheus.MustRegister(LocateTotal)
}

// 文档注释：返回 Prometheus 指标监听器
// 背景：统一暴露注册指标到 /metrics 路径，供 Prometheus 抓取；在路由层挂载。
func Handler() http.Handler { return promhttp.Handler() }
