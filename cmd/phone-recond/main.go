package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "github.com/reconkit/phone-recon/gen/proto/phonerecon/v1"
	"github.com/reconkit/phone-recon/internal/async"
	"github.com/reconkit/phone-recon/internal/common"
	"github.com/reconkit/phone-recon/internal/export"
	"github.com/reconkit/phone-recon/internal/extract"
	"github.com/reconkit/phone-recon/internal/imports"
	"github.com/reconkit/phone-recon/internal/ingest"
	"github.com/reconkit/phone-recon/internal/ocr"
	"github.com/reconkit/phone-recon/internal/phone"
	"github.com/reconkit/phone-recon/internal/pipeline"
	repo "github.com/reconkit/phone-recon/internal/repository"
	svc "github.com/reconkit/phone-recon/internal/server"
)

func main() {
	// Setup structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time and level attributes, keep message and other variables
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

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
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	if cfg.Database.AutoMigrate {
		if err := repo.Migrate(ctx, entc, logger); err != nil {
			logger.Error("failed to migrate schema", "error", err)
			os.Exit(1)
		}
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	screenshotsRepo := repo.NewScreenshotRepository(entc, logger)
	numbersRepo := repo.NewNumberRepository(entc, logger)
	groupsRepo := repo.NewGroupRepository(entc, logger)
	contactsRepo := repo.NewContactRepository(entc, logger)
	snapshotsRepo := repo.NewSnapshotRepository(entc, logger)

	// OCR -> scan -> normalize pipeline
	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.TesseractBin,
		TesseractLang: cfg.OCR.Language,
		TessdataDir:   cfg.OCR.TessdataDir,
		PageSegModes:  cfg.OCR.PageSegModes,
	}, logger)
	normalizer := phone.NewNormalizer(phone.NewParser())
	stage := pipeline.NewExtractStage(
		screenshotsRepo,
		numbersRepo,
		groupsRepo,
		extract.NewOCRAdapter(extractor),
		normalizer,
		cfg.Extraction.DefaultRegion,
		logger,
	)
	workerPool := async.NewPool(stage, logger,
		async.WithWorkers(cfg.Extraction.Workers),
		async.WithJobTimeout(cfg.Extraction.ItemTimeout),
	)

	registrar := ingest.NewRegistrar(screenshotsRepo, logger)
	importSvc := imports.NewService(contactsRepo, normalizer, logger)
	exportSvc := export.NewService(numbersRepo, contactsRepo, logger)

	pb.RegisterScreenshotServiceServer(grpcServer, svc.NewScreenshotServer(registrar, screenshotsRepo, logger))
	pb.RegisterExtractionServiceServer(grpcServer, svc.NewExtractionServer(stage, workerPool, screenshotsRepo, logger))
	pb.RegisterNumberServiceServer(grpcServer, svc.NewNumberServer(numbersRepo, logger))
	pb.RegisterGroupServiceServer(grpcServer, svc.NewGroupServer(groupsRepo, logger))
	pb.RegisterContactServiceServer(grpcServer, svc.NewContactServer(importSvc, contactsRepo, logger))
	pb.RegisterComparisonServiceServer(grpcServer, svc.NewComparisonServer(numbersRepo, contactsRepo, snapshotsRepo, logger))
	pb.RegisterExportServiceServer(grpcServer, svc.NewExportServer(exportSvc, logger))

	// Register gRPC health service
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	// Set the service as serving (empty string means overall server health)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("phone-recond listening", "addr", cfg.Server.GRPCAddr, "workers", cfg.Extraction.Workers)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}
