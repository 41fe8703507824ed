package api

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	_ "github.com/scienceol/labprofile/docs" // swagger docs

	"github.com/gin-gonic/gin"
	"github.com/scienceol/labprofile/internal/config"
	lpgrpc "github.com/scienceol/labprofile/pkg/grpc"
	"github.com/scienceol/labprofile/pkg/middleware/db"
	"github.com/scienceol/labprofile/pkg/middleware/logger"
	"github.com/scienceol/labprofile/pkg/middleware/trace"
	"github.com/scienceol/labprofile/pkg/repo/migrate"
	"github.com/scienceol/labprofile/pkg/utils"
	"github.com/scienceol/labprofile/pkg/web"
	"github.com/spf13/cobra"
)

var datastore *db.Datastore

func NewWeb() *cobra.Command {
	return &cobra.Command{
		Use:          "apiserver",
		Long:         "Start the API server (HTTP + gRPC health)",
		SilenceUsage: true,
		PreRunE:      initWeb,
		RunE:         newRouter,
		PostRunE:     cleanWebResource,
	}
}

func NewMigrate() *cobra.Command {
	return &cobra.Command{
		Use:          "migrate",
		Long:         "Run database migrations",
		SilenceUsage: true,
		PreRunE:      initMigrate,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return migrate.Table(cmd.Root().Context(), datastore)
		},
		PostRunE: func(cmd *cobra.Command, _ []string) error {
			datastore.Close(cmd.Context())
			return nil
		},
	}
}

func dbConfig(conf *config.GlobalConfig) *db.Config {
	return &db.Config{
		Driver:           string(conf.Database.Driver),
		Host:             conf.Database.Host,
		Port:             conf.Database.Port,
		User:             conf.Database.User,
		PW:               conf.Database.Password,
		DBName:           conf.Database.Name,
		SSLMode:          conf.Database.SSLMode,
		SqlitePath:       conf.Database.SqlitePath,
		StatementTimeout: time.Duration(conf.Database.StatementTimeout) * time.Millisecond,
		MaxOpenConns:     conf.Database.MaxOpenConns,
		MaxIdleConns:     conf.Database.MaxIdleConns,
		ConnMaxLifetime:  time.Duration(conf.Database.ConnMaxLifetime) * time.Second,
		LogConf:          db.LogConf{Level: conf.Log.LogLevel},
	}
}

func initMigrate(cmd *cobra.Command, _ []string) error {
	ds, err := db.New(cmd.Context(), dbConfig(config.Global()))
	if err != nil {
		return err
	}
	datastore = ds
	return nil
}

func initWeb(cmd *cobra.Command, _ []string) error {
	conf := config.Global()
	trace.InitTrace(cmd.Context(), &trace.InitConfig{
		ServiceName:    fmt.Sprintf("%s-%s", conf.Server.Platform, conf.Server.Service),
		Version:        conf.Trace.Version,
		TraceEndpoint:  conf.Trace.TraceEndpoint,
		MetricEndpoint: conf.Trace.MetricEndpoint,
		Insecure:       conf.Trace.Insecure,
		Stdout:         conf.Trace.Stdout,
	})

	ds, err := db.New(cmd.Context(), dbConfig(conf))
	if err != nil {
		return err
	}
	datastore = ds

	if conf.Server.AutoMigrate {
		if err := migrate.Table(cmd.Context(), ds); err != nil {
			return err
		}
	}
	return nil
}

func newEngine(ctx context.Context, ds *db.Datastore) *gin.Engine {
	if config.Global().Server.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	web.NewRouter(ctx, router, ds)
	return router
}

func newRouter(cmd *cobra.Command, _ []string) error {
	router := newEngine(cmd.Root().Context(), datastore)
	conf := config.Global()
	port := conf.Server.Port
	addr := ":" + strconv.Itoa(port)

	httpServer := http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 30 * time.Second,
		IdleTimeout:       30 * time.Second,
		TLSNextProto:      make(map[string]func(*http.Server, *tls.Conn, http.Handler)),
	}

	logger.Infof(cmd.Context(), "API server starting on http://0.0.0.0:%d", port)

	utils.SafelyGo(func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorf(cmd.Context(), "start server err: %v", err)
			os.Exit(1)
		}
	}, func(err error) {
		logger.Errorf(cmd.Context(), "run http server err: %+v", err)
		os.Exit(1)
	})

	grpcPort := conf.Server.GrpcPort
	grpcServer, err := lpgrpc.NewServer(cmd.Root().Context(), grpcPort, datastore)
	if err != nil {
		logger.Errorf(cmd.Context(), "start gRPC server err: %+v", err)
	}

	<-cmd.Context().Done()

	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Errorf(ctx, "shut down server err: %+v", err)
	}
	return nil
}

func cleanWebResource(cmd *cobra.Command, _ []string) error {
	datastore.Close(cmd.Context())
	trace.CloseTrace()
	return nil
}
