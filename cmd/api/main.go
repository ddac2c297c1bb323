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
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/AnuragChougule/venuebook/internal/app"
	"github.com/AnuragChougule/venuebook/internal/clock"
	"github.com/AnuragChougule/venuebook/internal/config"
	"github.com/AnuragChougule/venuebook/internal/geo"
	"github.com/AnuragChougule/venuebook/internal/mail"
	"github.com/AnuragChougule/venuebook/internal/metrics"
	"github.com/AnuragChougule/venuebook/internal/payment"
	"github.com/AnuragChougule/venuebook/internal/storage/postgres"
	transporthttp "github.com/AnuragChougule/venuebook/internal/transport/http"
	"github.com/AnuragChougule/venuebook/internal/worker"
	"github.com/AnuragChougule/venuebook/migrations"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config.LoadEnvFile(logger)
	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	startupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(startupCtx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pool.Ping(startupCtx); err != nil {
		return err
	}
	if err := migrations.Apply(startupCtx, pool); err != nil {
		return err
	}

	graph, err := geo.Load()
	if err != nil {
		return err
	}

	clk := clock.System()

	venueRepo := postgres.NewVenueRepository(pool)
	bookingRepo := postgres.NewBookingRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	otpRepo := postgres.NewOTPRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)

	var sender mail.Sender
	if cfg.SMTPHost != "" {
		sender = mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	} else {
		logger.Warn("SMTP_HOST not set, verification codes are logged instead of mailed")
		sender = mail.NewLogSender(logger)
	}

	provider := payment.NewClient(
		&http.Client{Timeout: 10 * time.Second},
		cfg.PaymentEndpoint,
		cfg.PaymentKeyID,
		cfg.PaymentKeySecret,
	)
	if cfg.PaymentKeyID == "" {
		logger.Warn("PAYMENT_KEY_ID not set, order creation will fail upstream")
	}

	catalogSvc := app.NewCatalogService(venueRepo, graph, clk)
	discoverySvc := app.NewDiscoveryService(venueRepo, graph)
	bookingSvc := app.NewBookingService(bookingRepo, clk)
	signupSvc := app.NewSignupService(otpRepo, userRepo, sender, clk, app.WithCodeTTL(cfg.CodeTTL))
	authSvc := app.NewAuthService(userRepo, sessionRepo, clk, app.WithSessionTTL(cfg.SessionTTL))
	paymentSvc := app.NewPaymentService(provider, clk)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectorsFor(pool)...)
	recorder := metrics.NewCollector(registry)

	codeLimiter := transporthttp.NewRateLimiter(cfg.CodeRequestsPerMinute)
	defer codeLimiter.Stop()

	handler := transporthttp.NewRouter(transporthttp.RouterDeps{
		Discovery:   discoverySvc,
		Catalog:     catalogSvc,
		Bookings:    bookingSvc,
		Signup:      signupSvc,
		Auth:        authSvc,
		Orders:      paymentSvc,
		Logger:      logger,
		Recorder:    recorder,
		Gatherer:    registry,
		CodeLimiter: codeLimiter,
		CORSOrigins: cfg.CORSOrigins,
	})

	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: handler,
	}

	sweeper := worker.NewSweeper(otpRepo, sessionRepo, clk, cfg.SweepInterval, logger)

	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(rootCtx)
	group.Go(func() error {
		logger.Info("api listening", "port", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		if err := sweeper.Run(groupCtx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutting down")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("server stopped")
	return nil
}

func collectorsFor(pool *pgxpool.Pool) []prometheus.Collector {
	return []prometheus.Collector{
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "venuebook_db_pool_total_conns",
			Help: "Current size of the database connection pool.",
		}, func() float64 {
			return float64(pool.Stat().TotalConns())
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "venuebook_db_pool_idle_conns",
			Help: "Idle connections in the database pool.",
		}, func() float64 {
			return float64(pool.Stat().IdleConns())
		}),
	}
}
