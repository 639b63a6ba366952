package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Entry metrics
	EntriesCreated     prometheus.Counter
	EntriesRejected    *prometheus.CounterVec
	EntryDuration      prometheus.Histogram
	EntryAmountsPosted prometheus.Counter

	// Account metrics
	AccountsCreated   *prometheus.CounterVec
	AccountOperations *prometheus.CounterVec

	// Balance metrics
	BalanceQueries  *prometheus.CounterVec
	BalanceDuration *prometheus.HistogramVec
	TrialBalance    prometheus.Gauge
	CacheHits       prometheus.Counter
	CacheMisses     prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Entry metrics
		EntriesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "doubledouble_entries_created_total",
			Help: "Total number of entries recorded",
		}),
		EntriesRejected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "doubledouble_entries_rejected_total",
				Help: "Total number of entries rejected by reason",
			},
			[]string{"reason"},
		),
		EntryDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "doubledouble_entry_duration_seconds",
			Help:    "Duration of entry creation",
			Buckets: prometheus.DefBuckets,
		}),
		EntryAmountsPosted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "doubledouble_amounts_posted_total",
			Help: "Total number of debit and credit amounts posted",
		}),

		// Account metrics
		AccountsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "doubledouble_accounts_created_total",
				Help: "Total number of accounts created by kind",
			},
			[]string{"kind"},
		),
		AccountOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "doubledouble_account_operations_total",
				Help: "Total account operations by type",
			},
			[]string{"operation"},
		),

		// Balance metrics
		BalanceQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "doubledouble_balance_queries_total",
				Help: "Total balance queries by scope",
			},
			[]string{"scope"},
		),
		BalanceDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "doubledouble_balance_duration_seconds",
				Help:    "Balance query duration by scope",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"scope"},
		),
		TrialBalance: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "doubledouble_trial_balance",
			Help: "Most recently computed trial balance, zero when the books balance",
		}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "doubledouble_balance_cache_hits_total",
			Help: "Total balance cache hits",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "doubledouble_balance_cache_misses_total",
			Help: "Total balance cache misses",
		}),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "doubledouble_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "doubledouble_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}
