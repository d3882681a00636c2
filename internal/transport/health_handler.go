// Package transport exposes gRPC/HTTP handlers.
package transport

import (
	"context"
	"time"

	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const healthCheckTimeout = 3 * time.Second

// ExplorerHandler implements ExplorerServiceServer.
type ExplorerHandler struct {
	blockinsight7000v1.UnimplementedExplorerServiceServer

	deps   map[string]Pinger
	logger *zap.Logger
}

// NewExplorerHandler returns an ExplorerHandler reporting the health of deps, keyed by name.
func NewExplorerHandler(deps map[string]Pinger, logger *zap.Logger) blockinsight7000v1.ExplorerServiceServer {
	return &ExplorerHandler{deps: deps, logger: logger}
}

// Health reports server health. An unreachable dependency yields codes.Unavailable.
func (h *ExplorerHandler) Health(ctx context.Context, _ *blockinsight7000v1.HealthRequest) (*blockinsight7000v1.HealthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	for name, dep := range h.deps {
		if err := dep.Ping(ctx); err != nil {
			h.logger.Warn("health check failed", zap.String("dependency", name), zap.Error(err))
			return nil, status.Errorf(codes.Unavailable, "%s unavailable", name)
		}
	}

	return &blockinsight7000v1.HealthResponse{
		Status:      blockinsight7000v1.HealthStatus_HEALTH_STATUS_HEALTHY,
		Description: "",
	}, nil
}
