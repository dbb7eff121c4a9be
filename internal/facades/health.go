package facades

import (
	"context"
	"time"

	"github.com/mannsoni/portfolio/internal/logger"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the gRPC health service name reported for the HTTP API.
const ServiceName = "portfolio.v1.API"

// Pinger checks a dependency, e.g. *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthReporter mirrors database reachability into a gRPC health server.
type HealthReporter struct {
	server   *health.Server
	pinger   Pinger
	interval time.Duration
}

func NewHealthReporter(server *health.Server, pinger Pinger, interval time.Duration) *HealthReporter {
	return &HealthReporter{server: server, pinger: pinger, interval: interval}
}

// Check pings once and updates both the overall and the API status.
func (h *HealthReporter) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := h.pinger.PingContext(ctx); err != nil {
		logger.Log.Warnw("health check failed", "error", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.server.SetServingStatus("", status)
	h.server.SetServingStatus(ServiceName, status)
	return status
}

// Run checks on every interval until ctx is done, then marks the service as shutting down.
func (h *HealthReporter) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			h.server.Shutdown()
			return
		case <-ticker.C:
			h.Check(ctx)
		}
	}
}
