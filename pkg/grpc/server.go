package grpc

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/scienceol/labprofile/pkg/middleware/db"
	"github.com/scienceol/labprofile/pkg/middleware/logger"
	"github.com/scienceol/labprofile/pkg/utils"
	ggrpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health service key reported next to the overall "" status.
const ServiceName = "labprofile"

const probeInterval = 10 * time.Second

type Server struct {
	*ggrpc.Server
	health *health.Server
	lis    net.Listener
}

// NewServer listens on port and serves the standard health and reflection
// services. Serving status follows the datastore ping.
func NewServer(ctx context.Context, port int, ds *db.Datastore) (*Server, error) {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("failed to listen: %w", err)
	}
	s := newServer(lis)

	utils.SafelyGo(func() {
		logger.Infof(ctx, "gRPC server starting on port %d", port)
		if err := s.Serve(lis); err != nil {
			logger.Errorf(ctx, "gRPC server error: %v", err)
		}
	}, func(err error) {
		logger.Errorf(ctx, "gRPC serve panic: %+v", err)
	})
	utils.SafelyGo(func() {
		s.watch(ctx, ds)
	}, func(err error) {
		logger.Errorf(ctx, "gRPC health watch panic: %+v", err)
	})

	return s, nil
}

func newServer(lis net.Listener) *Server {
	s := ggrpc.NewServer(
		ggrpc.ChainUnaryInterceptor(UnaryRecoveryInterceptor(), UnaryLogInterceptor()),
		ggrpc.ChainStreamInterceptor(StreamRecoveryInterceptor()),
	)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	reflection.Register(s)
	return &Server{Server: s, health: hs, lis: lis}
}

// Addr is the bound listener address.
func (s *Server) Addr() net.Addr {
	return s.lis.Addr()
}

func (s *Server) setServing(serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", st)
	s.health.SetServingStatus(ServiceName, st)
}

func (s *Server) probe(ctx context.Context, ds *db.Datastore) {
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	err := ds.Ping(pingCtx)
	if err != nil {
		logger.Warnf(ctx, "gRPC health probe: datastore ping err: %v", err)
	}
	s.setServing(err == nil)
}

func (s *Server) watch(ctx context.Context, ds *db.Datastore) {
	s.probe(ctx, ds)
	ticker := time.NewTicker(probeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.probe(ctx, ds)
		}
	}
}

// GracefulStop reports NOT_SERVING before draining in-flight calls.
func (s *Server) GracefulStop() {
	s.health.Shutdown()
	s.Server.GracefulStop()
}
