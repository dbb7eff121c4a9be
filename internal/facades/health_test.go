package facades

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) PingContext(context.Context) error { return f.err }

func serviceStatus(t *testing.T, srv *health.Server, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := srv.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.Status
}

func TestHealthReporter_Check(t *testing.T) {
	srv := health.NewServer()
	pinger := &fakePinger{}
	h := NewHealthReporter(srv, pinger, time.Second)

	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, h.Check(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, serviceStatus(t, srv, ServiceName))

	pinger.err = errors.New("connection refused")
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, h.Check(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, serviceStatus(t, srv, ""))
}

func TestHealthReporter_RunStopsOnCancel(t *testing.T) {
	srv := health.NewServer()
	h := NewHealthReporter(srv, &fakePinger{}, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()

	// The service is unknown until the first check has run.
	assert.Eventually(t, func() bool {
		resp, err := srv.Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
		return err == nil && resp.Status == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reporter did not stop")
	}
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, serviceStatus(t, srv, ServiceName))
}
