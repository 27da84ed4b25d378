package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iho/expenseledger/internal/domain"
)

// Metrics holds the ledger's Prometheus metrics on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	// Transaction metrics
	TransactionsAddedTotal  *prometheus.CounterVec
	TransactionsLoadedTotal prometheus.Counter

	// Import metrics
	ImportedRows prometheus.Counter
	SkippedRows  prometheus.Counter
	Imports      prometheus.Counter

	// Store metrics
	StoreSaves        *prometheus.CounterVec
	StoreSaveDuration prometheus.Histogram
	LastSaveTimestamp prometheus.Gauge
}

// New creates and registers all metrics on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		TransactionsAddedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expenseledger_transactions_added_total",
				Help: "Transactions added to the ledger by type",
			},
			[]string{"type"},
		),
		TransactionsLoadedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "expenseledger_transactions_loaded_total",
			Help: "Transactions read from the store on startup",
		}),

		ImportedRows: factory.NewCounter(prometheus.CounterOpts{
			Name: "expenseledger_import_rows_imported_total",
			Help: "Import file rows applied to the ledger",
		}),
		SkippedRows: factory.NewCounter(prometheus.CounterOpts{
			Name: "expenseledger_import_rows_skipped_total",
			Help: "Import file rows skipped as invalid",
		}),
		Imports: factory.NewCounter(prometheus.CounterOpts{
			Name: "expenseledger_imports_total",
			Help: "Completed import runs",
		}),

		StoreSaves: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expenseledger_store_saves_total",
				Help: "Full store rewrites by status",
			},
			[]string{"status"},
		),
		StoreSaveDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "expenseledger_store_save_duration_seconds",
			Help:    "Duration of full store rewrites",
			Buckets: prometheus.DefBuckets,
		}),
		LastSaveTimestamp: factory.NewGauge(prometheus.GaugeOpts{
			Name: "expenseledger_store_last_save_timestamp_seconds",
			Help: "Unix time of the last successful store rewrite",
		}),
	}
}

// Registry returns the registry holding the metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes all metrics in text exposition format to path, for the
// node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// TransactionAdded implements usecase.MetricsRecorder.
func (m *Metrics) TransactionAdded(kind domain.Kind) {
	m.TransactionsAddedTotal.WithLabelValues(kind.String()).Inc()
}

// TransactionsLoaded implements usecase.MetricsRecorder.
func (m *Metrics) TransactionsLoaded(n int) {
	m.TransactionsLoadedTotal.Add(float64(n))
}

// ImportFinished implements usecase.MetricsRecorder.
func (m *Metrics) ImportFinished(imported, skipped int) {
	m.Imports.Inc()
	m.ImportedRows.Add(float64(imported))
	m.SkippedRows.Add(float64(skipped))
}

// StoreSaved implements usecase.MetricsRecorder.
func (m *Metrics) StoreSaved(duration time.Duration, err error) {
	m.StoreSaveDuration.Observe(duration.Seconds())
	if err != nil {
		m.StoreSaves.WithLabelValues("error").Inc()
		return
	}
	m.StoreSaves.WithLabelValues("ok").Inc()
	m.LastSaveTimestamp.SetToCurrentTime()
}
