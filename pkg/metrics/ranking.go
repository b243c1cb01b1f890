package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the catalog search path, scoring included
	SearchLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "search_latency_seconds",
		Help:    "Latency of product search and ranking",
		Buckets: prometheus.DefBuckets,
	})

	SearchRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "search_requests_total",
		Help: "Total number of search requests",
	})

	TrendingCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "trending_cache_hits_total",
		Help: "Trending feed requests served from cache",
	})

	TrendingCacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "trending_cache_misses_total",
		Help: "Trending feed requests that recomputed scores",
	})

	OrdersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Total number of orders placed",
	})
)

func Init() {
	prometheus.MustRegister(
		SearchLatency,
		SearchRequests,
		TrendingCacheHits,
		TrendingCacheMisses,
		OrdersCreated,
	)
}
