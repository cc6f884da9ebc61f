package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/futureinfotechservice/finance/internal/application/usecase"
	"github.com/futureinfotechservice/finance/internal/domain/service"
	"github.com/futureinfotechservice/finance/internal/infrastructure/config"
	"github.com/futureinfotechservice/finance/internal/infrastructure/messaging"
	pgRepo "github.com/futureinfotechservice/finance/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/futureinfotechservice/finance/internal/presentation/grpc"
	"github.com/futureinfotechservice/finance/internal/presentation/rest"
	"github.com/futureinfotechservice/finance/pkg/kafka"
	"github.com/futureinfotechservice/finance/pkg/observability"
	pg "github.com/futureinfotechservice/finance/pkg/postgres"
)

func main() {
	cfg := config.Load()
	cfg.Validate()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: "json",
	})
	logger.Info("starting loan service",
		"grpc_port", cfg.GRPCPort,
		"http_port", cfg.HTTPPort,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Database -----------------------------------------------------------
	pgCfg := pg.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}

	if err := pg.RunMigrations(pgCfg.DSN(), "file://"+cfg.MigrationsDir); err != nil {
		logger.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	pool, err := pg.NewPool(ctx, pgCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// --- Metrics ------------------------------------------------------------
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("metrics init failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := meterProvider.Shutdown(context.Background()); err != nil {
			logger.Warn("meter provider shutdown error", "error", err)
		}
	}()

	// --- Infrastructure adapters -------------------------------------------
	producer := kafka.NewProducer(kafka.Config{Brokers: cfg.Kafka.Brokers})
	defer func() {
		if err := producer.Close(); err != nil {
			logger.Warn("kafka producer close error", "error", err)
		}
	}()
	publisher := messaging.NewKafkaEventPublisher(producer, logger)

	loanRepo := pgRepo.NewLoanRepo(pool)
	loanTypeRepo := pgRepo.NewLoanTypeRepo(pool)
	collectionRepo := pgRepo.NewCollectionRepo(pool)
	closingRepo := pgRepo.NewClosingRepo(pool)

	// --- Use cases ----------------------------------------------------------
	penaltyPolicy := service.NewPenaltyPolicy()
	balanceReader := service.NewBalanceReader()

	issueLoanUC := usecase.NewIssueLoanUseCase(loanTypeRepo, loanRepo, penaltyPolicy, publisher, logger)
	recordCollectionUC := usecase.NewRecordCollectionUseCase(loanRepo, collectionRepo, publisher, logger)
	closeLoanUC := usecase.NewCloseLoanUseCase(loanRepo, closingRepo, publisher, logger)
	getLoanUC := usecase.NewGetLoanUseCase(loanRepo)
	getBalanceUC := usecase.NewGetLoanBalanceUseCase(loanRepo, balanceReader)
	listCollectionsUC := usecase.NewListCollectionsUseCase(collectionRepo)
	listCustomerLoansUC := usecase.NewListCustomerLoansUseCase(loanRepo)

	// --- gRPC server --------------------------------------------------------
	handler := grpcPresentation.NewLoanHandler(
		issueLoanUC, recordCollectionUC, closeLoanUC,
		getLoanUC, getBalanceUC, listCollectionsUC, listCustomerLoansUC,
	)
	grpcServer := grpcPresentation.NewServer(handler, cfg, logger)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			logger.Error("gRPC server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- HTTP health and metrics server ------------------------------------
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(pool, logger)
	healthHandler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: mux,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", cfg.HTTPAddr())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- Graceful shutdown --------------------------------------------------
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received shutdown signal", "signal", sig.String())

	grpcServer.GracefulStop()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("loan service stopped")
}
