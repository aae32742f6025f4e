package grpchealth

import (
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"shipment/pkg/logger"
)

const (
	// ServiceName имя сервиса в health-протоколе, пустое имя отвечает за процесс целиком.
	ServiceName = "shipment"

	KeepaliveTime    = 5 * time.Minute
	KeepaliveTimeout = 3 * time.Second
)

// Server gRPC health для проб оркестратора. Статус переключается вместе с
// флагом graceful shutdown HTTP-сервера.
type Server struct {
	log    logger.Logger
	grpc   *grpc.Server
	health *health.Server
}

func NewServer(log logger.Logger) *Server {
	srv := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    KeepaliveTime,
			Timeout: KeepaliveTimeout,
		}),
	)
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthSrv)

	s := &Server{
		log: log.With(
			logger.NewField("component", "grpc-health"),
		),
		grpc:   srv,
		health: healthSrv,
	}
	s.SetServing(true)
	return s
}

func (s *Server) ListenAndServe(port string) error {
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("listen grpc health port %s: %w", port, err)
	}

	s.log.With(
		logger.NewField("port", port),
	).Info("starting gRPC health server")
	return s.Serve(lis)
}

func (s *Server) Serve(lis net.Listener) error {
	if err := s.grpc.Serve(lis); err != nil {
		return fmt.Errorf("serve grpc health: %w", err)
	}
	return nil
}

func (s *Server) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// GracefulStop переводит все сервисы в NOT_SERVING и дожидается активных вызовов.
func (s *Server) GracefulStop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}
