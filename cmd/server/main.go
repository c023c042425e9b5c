package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	httpdelivery "github.com/finlane/paycore/internal/delivery/http"
	"github.com/finlane/paycore/internal/domain/entity"
	"github.com/finlane/paycore/internal/domain/event"
	"github.com/finlane/paycore/internal/domain/repository"
	"github.com/finlane/paycore/internal/infrastructure/config"
	"github.com/finlane/paycore/internal/infrastructure/logging"
	"github.com/finlane/paycore/internal/infrastructure/memory"
	"github.com/finlane/paycore/internal/infrastructure/postgres"
	"github.com/finlane/paycore/internal/infrastructure/qrgenerator"
	"github.com/finlane/paycore/internal/infrastructure/rabbitmq"
	"github.com/finlane/paycore/internal/usecase/payment"
	"github.com/finlane/paycore/internal/usecase/requestqr"
)

const (
	dbMaxConns        = 10
	dbMinConns        = 2
	dbMaxConnLifetime = 30 * time.Minute
	dbMaxConnIdleTime = 5 * time.Minute

	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config load failed", "error", err)
		os.Exit(1)
	}

	var intents repository.IntentRepository = memory.NewIntentStore()
	if cfg.DatabaseURL != "" {
		pool, dbErr := initDB(ctx, cfg.DatabaseURL)
		if dbErr != nil {
			logger.Error("database init failed", "error", dbErr)
			os.Exit(1)
		}
		defer pool.Close()
		intents = postgres.NewIntentRepo(pool)
	}

	emitter := event.Emitter(logging.NewEmitter(logger))
	if cfg.RabbitMQURL != "" {
		producer, mqErr := rabbitmq.NewProducer(cfg.RabbitMQURL, cfg.EventExchange, logger)
		if mqErr != nil {
			logger.Error("rabbitmq init failed", "error", mqErr)
			os.Exit(1)
		}
		defer producer.Close()
		emitter = event.Multi(emitter, producer)
	}

	banks, directory := seed()

	gateway := payment.NewGateway(banks, emitter)
	coordinator := payment.NewCoordinator(directory, gateway, intents)
	requestQRUC := requestqr.NewUseCase(qrgenerator.NewGenerator(cfg.QRSize))

	handler := httpdelivery.NewHandler(coordinator, intents, banks, requestQRUC)
	router := httpdelivery.NewRouter(handler)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		logger.Info("HTTP server starting", "addr", cfg.HTTPAddr)
		if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Error("serve failed", "error", serveErr)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}

// seed provisions the bootstrap banks, accounts and users. Directory
// management beyond this fixture is owned by an external system.
func seed() (*memory.BankRegistry, *memory.AccountDirectory) {
	bank1 := entity.NewBank("B1")
	bank2 := entity.NewBank("B2")
	_, _ = bank1.OpenAccount("A1", decimal.NewFromInt(500))
	_, _ = bank2.OpenAccount("A2", decimal.NewFromInt(200))

	banks := memory.NewBankRegistry()
	banks.Register(bank1)
	banks.Register(bank2)

	directory := memory.NewAccountDirectory()
	directory.Register(entity.NewUser("U1", "Alice", entity.AccountRef{BankID: "B1", AccountID: "A1"}))
	directory.Register(entity.NewUser("U2", "Bob", entity.AccountRef{BankID: "B2", AccountID: "A2"}))

	return banks, directory
}

func initDB(ctx context.Context, url string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}

	cfg.MaxConns = dbMaxConns
	cfg.MinConns = dbMinConns
	cfg.MaxConnLifetime = dbMaxConnLifetime
	cfg.MaxConnIdleTime = dbMaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
