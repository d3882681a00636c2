package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
)

var (
	validationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "validator",
		Name:      "transactions_total",
		Help:      "Count of validated transactions by verdict.",
	}, []string{"source", "coin", "network", "status", "reason"})

	validationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "validator",
		Name:      "transaction_duration_seconds",
		Help:      "Duration of validating a single transaction.",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
	}, []string{"source", "coin", "network", "status"})

	validationFees = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "validator",
		Name:      "transaction_fee_satoshis",
		Help:      "Fee paid by valid transactions.",
		Buckets:   prometheus.ExponentialBuckets(100, 4, 12),
	}, []string{"source", "coin", "network"})

	validationWeights = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "validator",
		Name:      "transaction_weight",
		Help:      "Weight of validated transactions.",
		Buckets:   prometheus.ExponentialBuckets(256, 2, 12),
	}, []string{"source", "coin", "network"})

	blocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "validator",
		Name:      "blocks_total",
		Help:      "Count of validated blocks by status.",
	}, []string{"source", "coin", "network", "status"})
)

// Validator tracks transaction verdicts for one source (follower, api, cli).
type Validator struct {
	source  string
	coin    model.Coin
	network model.Network
}

// NewValidator constructs a Validator metrics collector.
func NewValidator(source string, coin model.Coin, network model.Network) *Validator {
	return &Validator{source: orUnknown(source), coin: orUnknown(coin), network: orUnknown(network)}
}

// ObserveTransaction records one verdict. reason is empty for valid transactions.
func (m Validator) ObserveTransaction(reason string, fee uint64, weight int64, started time.Time) {
	status := "valid"
	if reason != "" {
		status = "rejected"
	}

	validationsTotal.WithLabelValues(m.source, string(m.coin), string(m.network), status, reason).Inc()
	validationDuration.WithLabelValues(m.source, string(m.coin), string(m.network), status).
		Observe(time.Since(started).Seconds())
	if weight > 0 {
		validationWeights.WithLabelValues(m.source, string(m.coin), string(m.network)).Observe(float64(weight))
	}
	if reason == "" {
		validationFees.WithLabelValues(m.source, string(m.coin), string(m.network)).Observe(float64(fee))
	}
}

// ObserveBlock records the status of a validated block.
func (m Validator) ObserveBlock(status model.BlockStatus) {
	blocksTotal.WithLabelValues(m.source, string(m.coin), string(m.network), string(status)).Inc()
}
