package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gardrop_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gardrop_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// AdvertSaves counts save/unsave operations on adverts.
	AdvertSaves = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gardrop_advert_saves_total",
		Help: "Total number of advert save and unsave operations",
	}, []string{"action"})

	// QuestionsAsked counts questions and answers created on adverts.
	QuestionsAsked = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gardrop_advert_questions_total",
		Help: "Total number of questions and answers created",
	}, []string{"kind"})
)

// ObserveQuery records the latency of a database query, e.g. via defer:
//
//	defer ObserveQuery("select", "adverts", time.Now())
func ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}
