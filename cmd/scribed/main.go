package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	jobspb "github.com/scribepipe/scribepipe/gen/proto/jobs/v1"
	"github.com/scribepipe/scribepipe/internal/blobstore"
	"github.com/scribepipe/scribepipe/internal/chunk"
	"github.com/scribepipe/scribepipe/internal/common"
	"github.com/scribepipe/scribepipe/internal/jobs"
	"github.com/scribepipe/scribepipe/internal/pipeline"
	"github.com/scribepipe/scribepipe/internal/provider"
	repo "github.com/scribepipe/scribepipe/internal/repository"
	svc "github.com/scribepipe/scribepipe/internal/server"
	"github.com/scribepipe/scribepipe/internal/usage"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := svc.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		os.Exit(1)
	}
	defer svc.CloseDB(entc, pool, logger)

	store, err := blobstore.NewStore(ctx, cfg.Storage)
	if err != nil {
		logger.Error("failed to open blob store", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}

	jobsRepo := repo.NewJobRepository(entc, logger)
	usageRepo := repo.NewUsageRecordRepository(entc, logger)
	meter := usage.NewMeter(usageRepo, logger)
	splitter := chunk.NewAudioSplitter(chunk.NewExecRunner(), cfg.Media, logger)
	registries := provider.DefaultRegistries()

	processor := pipeline.NewProcessor(logger, jobsRepo, meter, store, splitter, registries, cfg.Providers)
	ledger := jobs.NewService(jobsRepo, store, cfg.Storage.SignedURLTTL, logger)

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(svc.LoggingInterceptor(logger)))
	jobspb.RegisterJobsServiceServer(grpcServer, svc.NewJobsService(ledger, processor, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("scribed listening", "grpc_addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	// The local store signs /blobs/ URLs against this endpoint; with
	// S3 the download URLs are presigned and no HTTP server runs.
	var httpServer *http.Server
	if local, ok := store.(*blobstore.LocalStore); ok {
		mux := http.NewServeMux()
		mux.Handle("/blobs/", svc.NewBlobHandler(local, logger))
		httpServer = &http.Server{Addr: cfg.Server.HTTPAddr, Handler: mux}
		logger.Info("blob downloads listening", "http_addr", cfg.Server.HTTPAddr)
		go func() {
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				slog.Error("http serve error", "error", err)
				os.Exit(1)
			}
		}()
	}

	<-ctx.Done()
	logger.Info("shutting down")
	if httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		_ = httpServer.Shutdown(shutdownCtx)
		cancel()
	}
	grpcServer.GracefulStop()
}
