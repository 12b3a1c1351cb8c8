// Package grpcserver exposes the standard gRPC health service. Serving status
// follows the reachability of the service's backing stores.
package grpcserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/metrics"
)

// ServiceName is the health service name reported next to the overall status.
const ServiceName = "packetery.Packetery"

const checkTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

// Check is a dependency whose failure takes the service out of rotation.
type Check struct {
	Name   string
	Pinger Pinger
}

type Server struct {
	grpc     *grpc.Server
	health   *health.Server
	checks   []Check
	interval time.Duration
	logger   *zap.Logger

	mu      sync.Mutex
	serving healthpb.HealthCheckResponse_ServingStatus
}

func NewServer(checks []Check, interval time.Duration, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	g := grpc.NewServer(grpc.ChainUnaryInterceptor(loggingInterceptor(logger)))
	healthpb.RegisterHealthServer(g, hs)
	reflection.Register(g)

	return &Server{
		grpc:     g,
		health:   hs,
		checks:   checks,
		interval: interval,
		logger:   logger,
		serving:  healthpb.HealthCheckResponse_NOT_SERVING,
	}
}

// Run serves on port until Shutdown is called, re-checking the dependencies
// every interval while ctx is alive.
func (s *Server) Run(ctx context.Context, port string) error {
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", port, err)
	}
	return s.Serve(ctx, lis)
}

func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	s.CheckOnce(ctx)
	go s.watch(ctx)

	s.logger.Info("gRPC server starting", zap.String("addr", lis.Addr().String()))
	if err := s.grpc.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

func (s *Server) Shutdown() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
	s.logger.Info("gRPC server stopped")
}

func (s *Server) watch(ctx context.Context) {
	if s.interval <= 0 {
		return
	}
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.CheckOnce(ctx)
		}
	}
}

// CheckOnce pings every dependency and publishes the resulting status.
func (s *Server) CheckOnce(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	next := healthpb.HealthCheckResponse_SERVING
	for _, check := range s.checks {
		pingCtx, cancel := context.WithTimeout(ctx, checkTimeout)
		err := check.Pinger.Ping(pingCtx)
		cancel()
		if err != nil {
			metrics.OperationErrorsTotal.WithLabelValues("health_" + check.Name).Inc()
			s.logger.Warn("Health check failed", zap.String("dependency", check.Name), zap.Error(err))
			next = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}

	s.mu.Lock()
	changed := s.serving != next
	s.serving = next
	s.mu.Unlock()

	if changed {
		s.logger.Info("Serving status changed", zap.String("status", next.String()))
		s.health.SetServingStatus("", next)
		s.health.SetServingStatus(ServiceName, next)
	}
	return next
}

func loggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		l := logger.With(zap.String("rpc_method", info.FullMethod))
		l.Debug("RPC call received")

		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			l.Warn("RPC call failed", zap.String("code", status.Code(err).String()), zap.Duration("took", time.Since(start)), zap.Error(err))
			return resp, err
		}
		l.Debug("RPC call completed", zap.Duration("took", time.Since(start)))
		return resp, nil
	}
}
