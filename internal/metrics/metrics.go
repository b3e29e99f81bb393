package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RecommendDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "pos_recommend_latency_seconds",
		Help:    "Latency of the recommendation endpoint",
		Buckets: prometheus.DefBuckets,
	})

	RecommendTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pos_recommend_total",
		Help: "Total recommendation requests served",
	})

	RecommendCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pos_recommend_cache_hits_total",
		Help: "Recommendation requests answered from cache",
	})

	ModelFallbackTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pos_model_fallback_total",
		Help: "Recommendation requests served without a loaded model bundle",
	})

	CheckoutTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pos_checkout_total",
		Help: "Completed checkouts",
	})
)

func Init() {
	prometheus.MustRegister(RecommendDuration, RecommendTotal, RecommendCacheHits, ModelFallbackTotal, CheckoutTotal)
}
