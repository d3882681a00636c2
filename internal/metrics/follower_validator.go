package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
)

var (
	followerFetchHeightsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "follower_validator",
		Name:      "fetch_heights_total",
		Help:      "Count of attempts to fetch heights awaiting validation.",
	}, []string{"coin", "network", "status"})

	followerFetchHeightsDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "follower_validator",
		Name:      "fetch_heights_duration_seconds",
		Help:      "Duration of fetching heights awaiting validation.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	followerProcessBlockTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "follower_validator",
		Name:      "process_block_total",
		Help:      "Count of blocks processed by the follower.",
	}, []string{"coin", "network", "status"})

	followerProcessBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "follower_validator",
		Name:      "process_block_duration_seconds",
		Help:      "Duration of resolving, validating and storing one block.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"coin", "network", "status"})

	followerValidatedHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "follower_validator",
		Name:      "validated_height",
		Help:      "Highest block height validated by the follower.",
	}, []string{"coin", "network"})

	followerNodeHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "follower_validator",
		Name:      "node_height",
		Help:      "Latest block height reported by the node.",
	}, []string{"coin", "network"})
)

// FollowerValidator tracks metrics for the follower validation pipeline.
type FollowerValidator struct {
	coin    model.Coin
	network model.Network
}

// NewFollowerValidator constructs a FollowerValidator with defaults.
func NewFollowerValidator(coin model.Coin, network model.Network) *FollowerValidator {
	return &FollowerValidator{coin: orUnknown(coin), network: orUnknown(network)}
}

// ObserveFetchHeights records a fetch attempt outcome and duration.
func (m FollowerValidator) ObserveFetchHeights(err error, started time.Time) {
	status := statusOf(err)
	followerFetchHeightsTotal.WithLabelValues(string(m.coin), string(m.network), status).Inc()
	followerFetchHeightsDuration.WithLabelValues(string(m.coin), string(m.network), status).
		Observe(time.Since(started).Seconds())
}

// ObserveProcessBlock records processing of one block. height is only reported on success.
func (m FollowerValidator) ObserveProcessBlock(err error, height uint64, started time.Time) {
	status := statusOf(err)
	followerProcessBlockTotal.WithLabelValues(string(m.coin), string(m.network), status).Inc()
	followerProcessBlockDuration.WithLabelValues(string(m.coin), string(m.network), status).
		Observe(time.Since(started).Seconds())
	if err == nil {
		followerValidatedHeight.WithLabelValues(string(m.coin), string(m.network)).Set(float64(height))
	}
}

// ObserveNodeHeight records the tip height reported by the node.
func (m FollowerValidator) ObserveNodeHeight(height uint64) {
	followerNodeHeight.WithLabelValues(string(m.coin), string(m.network)).Set(float64(height))
}
