package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iho/txengine/internal/domain"
	"github.com/iho/txengine/internal/usecase"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Transaction metrics
	Transactions      *prometheus.CounterVec
	TransactionErrors *prometheus.CounterVec
	MalformedRows     prometheus.Counter
	AccountsLocked    prometheus.Counter
	BatchDuration     prometheus.Histogram

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New creates all metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		// Transaction metrics
		Transactions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txengine_transactions_total",
				Help: "Total transactions processed by type and outcome",
			},
			[]string{"type", "outcome"},
		),
		TransactionErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txengine_transaction_errors_total",
				Help: "Total rejected transactions by error kind",
			},
			[]string{"kind"},
		),
		MalformedRows: factory.NewCounter(prometheus.CounterOpts{
			Name: "txengine_malformed_rows_total",
			Help: "Total input rows skipped because they could not be parsed",
		}),
		AccountsLocked: factory.NewCounter(prometheus.CounterOpts{
			Name: "txengine_accounts_locked_total",
			Help: "Total accounts locked by a chargeback",
		}),
		BatchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "txengine_batch_duration_seconds",
			Help:    "Duration of batch runs",
			Buckets: prometheus.DefBuckets,
		}),

		// API metrics
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txengine_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "txengine_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}

// ObserveTransaction records the outcome of one engine call.
func (m *Metrics) ObserveTransaction(txType domain.TransactionType, err error) {
	if err != nil {
		m.Transactions.WithLabelValues(string(txType), "failed").Inc()
		m.TransactionErrors.WithLabelValues(domain.KindOf(err).String()).Inc()
		return
	}

	m.Transactions.WithLabelValues(string(txType), "applied").Inc()
	if txType == domain.TransactionTypeChargeback {
		m.AccountsLocked.Inc()
	}
}

// ObserveMalformedRow records a skipped input row.
func (m *Metrics) ObserveMalformedRow() {
	m.MalformedRows.Inc()
}

// ObserveBatch records the duration of a batch run.
func (m *Metrics) ObserveBatch(duration time.Duration) {
	m.BatchDuration.Observe(duration.Seconds())
}

var _ usecase.MetricsRecorder = (*Metrics)(nil)

// ErrNoGatherer is returned by WriteTextfile when no gatherer is given.
var ErrNoGatherer = errors.New("metrics: no gatherer")

// WriteTextfile writes everything gathered by g to path in the text exposition
// format, for the node exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if g == nil {
		return ErrNoGatherer
	}
	return prometheus.WriteToTextfile(path, g)
}
