package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/blockinsight7000-validator/internal/utxo/model"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "rpc_client",
		Name:      "operations_total",
		Help:      "Count of node RPC operations.",
	}, []string{"operation", "coin", "network", "status"})
	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "coin", "network", "status"})
)

// RPCClient tracks metrics for RPC calls to blockchain nodes.
type RPCClient struct {
	coin    model.Coin
	network model.Network
}

// NewRPCClient constructs a metrics collector for RPC calls.
func NewRPCClient(coin model.Coin, network model.Network) *RPCClient {
	return &RPCClient{coin: orUnknown(coin), network: orUnknown(network)}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	rpcRequestsTotal.WithLabelValues(operation, string(m.coin), string(m.network), status).Inc()
	rpcRequestDuration.WithLabelValues(operation, string(m.coin), string(m.network), status).Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func orUnknown[T ~string](v T) T {
	if v == "" {
		return "unknown"
	}
	return v
}
