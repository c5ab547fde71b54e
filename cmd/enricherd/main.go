package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	enricherv1 "github.com/tomide-adesanmi/company-enricher/gen/proto/enricher/v1"
	"github.com/tomide-adesanmi/company-enricher/internal/async"
	"github.com/tomide-adesanmi/company-enricher/internal/common"
	"github.com/tomide-adesanmi/company-enricher/internal/enrich"
	"github.com/tomide-adesanmi/company-enricher/internal/ingest"
	"github.com/tomide-adesanmi/company-enricher/internal/pipeline"
	"github.com/tomide-adesanmi/company-enricher/internal/queue"
	repo "github.com/tomide-adesanmi/company-enricher/internal/repository"
	"github.com/tomide-adesanmi/company-enricher/internal/scheduler"
	"github.com/tomide-adesanmi/company-enricher/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
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

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	uploads := repo.NewUploadRepository(entc, logger)
	jobs := repo.NewJobRepository(entc, logger)
	records := repo.NewRecordRepository(entc, logger)

	ingestor := ingest.NewUsecase(uploads, logger)
	enricher := enrich.NewHTTPEnricher(cfg.Enrich.URL, cfg.Enrich.APIKey, cfg.Enrich.Timeout, logger)
	executor := pipeline.NewExecutor(uploads, jobs, records, enricher, logger)
	workerPool := async.NewPool(executor, logger,
		async.WithWorkers(cfg.Scheduler.Workers),
		async.WithJobTimeout(cfg.Scheduler.JobTimeout),
	)
	manager := queue.NewManager(uploads, jobs, cfg.Scheduler.MaxRetries, logger)

	sched := scheduler.New(manager, jobs, uploads, workerPool, scheduler.Config{
		TickInterval:    cfg.Scheduler.TickInterval,
		ReclaimInterval: cfg.Scheduler.ReclaimInterval,
		StaleTimeout:    cfg.Scheduler.StaleTimeout,
	}, logger)
	if err := sched.Start(); err != nil {
		logger.Error("starting scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	if cfg.Ingest.WatchDir != "" {
		err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Root:    cfg.Ingest.WatchDir,
			OwnerID: cfg.Ingest.OwnerID,
		}, ingestor, logger)
		if err != nil {
			logger.Error("starting drop-directory watcher", "error", err)
			os.Exit(1)
		}
	}

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewEnricherService(ingestor, manager, uploads, jobs, records, logger)
	enricherv1.RegisterEnricherServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	workerPool.Shutdown(shutdownCtx)
	logger.Info("stopped")
}
