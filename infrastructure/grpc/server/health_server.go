package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"voice-relay/contract"

	grpc3 "github.com/mama165/sdk-go/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

var _ contract.Worker = (*HealthServer)(nil)

// HealthServer exposes the standard gRPC health service.
// It reports SERVING while running and NOT_SERVING once shutdown starts.
type HealthServer struct {
	log     *slog.Logger
	address string
	health  *health.Server
}

func NewHealthServer(log *slog.Logger, port int) *HealthServer {
	return &HealthServer{
		log:     log,
		address: fmt.Sprintf("0.0.0.0:%d", port),
		health:  health.NewServer(),
	}
}

func (h *HealthServer) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", h.address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", h.address, err)
	}

	s := grpc.NewServer(grpc.ChainUnaryInterceptor(grpc3.UnaryLoggingInterceptor(h.log)))
	grpc_health_v1.RegisterHealthServer(s, h.health)
	h.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	errChan := make(chan error, 1)
	go func() {
		h.log.Info("Starting gRPC health server", "address", h.address)
		errChan <- s.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		h.health.Shutdown()
		s.GracefulStop()
		<-errChan
		return ctx.Err()
	case err = <-errChan:
		if err != nil && !stderrors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("gRPC server error: %w", err)
		}
		return nil
	}
}
