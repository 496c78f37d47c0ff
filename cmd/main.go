package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"budget-review/internal/adapter/credentials"
	"budget-review/internal/adapter/http"
	"budget-review/internal/adapter/platform"
	"budget-review/internal/adapter/platform/google"
	"budget-review/internal/adapter/platform/meta"
	"budget-review/internal/adapter/postgres"
	"budget-review/internal/adapter/usecase"
	"budget-review/internal/clock"
	"budget-review/internal/config"
	"budget-review/internal/config/configs"
	"budget-review/internal/core/domain"
	"budget-review/internal/core/port"
	"budget-review/internal/db"
)

// main is the entry point of the budget review service. It loads
// configuration, optionally runs database migrations and the demo seed,
// wires repositories, platform fetchers and use cases, then serves HTTP
// until a termination signal arrives. Shutdown drains in-flight requests
// and background health snapshots.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.NewHandler(os.Stdout))
	slog.SetDefault(logger)

	clk, err := clock.New(cfg.Review.Timezone)
	if err != nil {
		logger.Error("invalid timezone", slog.Any("error", err))
		return
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool, clk.Today()); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("demo data seeded")
	}

	secrets := postgres.NewSecretStore(pool)
	if err = bootstrapSecrets(ctx, secrets, cfg.Secrets); err != nil {
		logger.Error("secret bootstrap error", slog.Any("error", err))
		return
	}
	creds := credentials.NewManager(secrets, clk, cfg.Google.TokenURL,
		&http.Client{Timeout: cfg.Google.Timeout}, logger)

	metaFetcher := meta.NewFetcher(
		platform.NewClient(&http.Client{Timeout: cfg.Meta.Timeout}, string(domain.PlatformMeta)),
		creds, clk,
		meta.Config{
			BaseURL:    cfg.Meta.BaseURL,
			APIVersion: cfg.Meta.APIVersion,
			PageSize:   cfg.Meta.PageSize,
			MaxPages:   cfg.Meta.MaxPages,
		},
		logger,
	)
	fetchers := []port.PlatformFetcher{metaFetcher}
	if cfg.Google.Enabled() {
		fetchers = append(fetchers, google.NewFetcher(
			platform.NewClient(&http.Client{Timeout: cfg.Google.Timeout}, string(domain.PlatformGoogle)),
			creds,
			google.Config{
				BaseURL:         cfg.Google.BaseURL,
				APIVersion:      cfg.Google.APIVersion,
				DeveloperToken:  cfg.Google.DeveloperToken,
				LoginCustomerID: cfg.Google.LoginCustomerID,
				MaxPages:        cfg.Google.MaxPages,
			},
			logger,
		))
	} else {
		logger.Warn("GOOGLE_DEVELOPER_TOKEN not set, google reviews disabled")
	}

	accounts := postgres.NewAccountRepository(pool)
	reviews := postgres.NewReviewRepository(pool)

	reviewSvc := usecase.NewReviewService(usecase.ReviewDeps{
		Accounts: accounts,
		Reviews:  reviews,
		Health:   postgres.NewHealthRepository(pool),
		Fetchers: fetchers,
		Balances: map[domain.Platform]port.BalanceFetcher{domain.PlatformMeta: metaFetcher},
		Clock:    clk,
		Logger:   logger,
	}, usecase.ReviewConfig{
		Threshold:     cfg.Review.Threshold,
		HealthTimeout: cfg.Review.HealthTimeout,
	})
	batchSvc := usecase.NewBatchService(usecase.BatchDeps{
		Accounts: accounts,
		Reviews:  reviews,
		Audit:    postgres.NewAuditRepository(pool),
		Reviewer: reviewSvc,
		Clock:    clk,
		Logger:   logger,
	}, cfg.Review.Workers)

	handler := httpadapter.NewHandler(reviewSvc, batchSvc, httpadapter.Config{
		MaxBodyBytes: cfg.HTTP.MaxBodyBytes,
		Location:     clk.Location(),
	}, logger)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	if err = reviewSvc.Wait(shutdownCtx); err != nil {
		logger.Warn("health snapshots still running at shutdown", slog.Any("error", err))
	}
}

// bootstrapSecrets copies the non-empty credentials from the environment
// into the secret store.
func bootstrapSecrets(ctx context.Context, store port.SecretStore, s configs.Secrets) error {
	values := map[string]string{
		credentials.SecretMetaAccessToken:    s.MetaAccessToken,
		credentials.SecretGoogleRefreshToken: s.GoogleRefreshToken,
		credentials.SecretGoogleClientID:     s.GoogleClientID,
		credentials.SecretGoogleClientSecret: s.GoogleClientSecret,
	}
	for name, v := range values {
		if v == "" {
			delete(values, name)
		}
	}
	if len(values) == 0 {
		return nil
	}
	return store.PutSecrets(ctx, values)
}
