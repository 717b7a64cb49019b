// Package grpc exposes the standard gRPC health service for orchestrators.
package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health-check service name reported alongside "".
const ServiceName = "networkfault.Dashboard"

// Server wraps the gRPC server and its health status.
type Server struct {
	server       *grpc.Server
	healthServer *health.Server
	port         int
	log          *slog.Logger
}

// NewServer creates a gRPC server with the health service registered and serving.
func NewServer(port int, log *slog.Logger) *Server {
	s := grpc.NewServer(
		grpc.MaxRecvMsgSize(1024*1024),
		grpc.ConnectionTimeout(30*time.Second),
	)
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(s, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{server: s, healthServer: healthServer, port: port, log: log}
}

// Serve listens on the configured port and blocks until the server stops.
func (s *Server) Serve() error {
	addr := fmt.Sprintf("0.0.0.0:%d", s.port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.ServeListener(listener)
}

// ServeListener serves on an existing listener.
func (s *Server) ServeListener(l net.Listener) error {
	s.log.Info("gRPC server starting", "address", l.Addr().String())
	if err := s.server.Serve(l); err != nil && err != grpc.ErrServerStopped {
		return fmt.Errorf("grpc serve: %w", err)
	}
	return nil
}

// Stop marks the service NOT_SERVING and stops gracefully, forcing after ctx ends.
func (s *Server) Stop(ctx context.Context) {
	s.log.Info("Stopping gRPC server")
	s.healthServer.Shutdown()

	stopped := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		s.log.Info("gRPC server stopped gracefully")
	case <-ctx.Done():
		s.log.Warn("gRPC server forced to stop after timeout")
		s.server.Stop()
	}
}
