package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/sikayet/console-api/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting console service",
		"upstream", cfg.Upstream.BaseURL,
		"auth_mode", cfg.Auth.Mode,
		"audit_db", cfg.Postgres.Enabled,
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps := &bootstrap.ServiceDeps{Config: &cfg, Logger: logger}

	if cfg.Postgres.Enabled {
		db, dbErr := bootstrap.ConnectDB(cfg.Postgres, logger)
		if dbErr != nil {
			return dbErr
		}
		defer func() {
			if cerr := db.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close database failed", "error", cerr)
			}
		}()
		if cfg.Postgres.RunMigrationsOnStart {
			if migErr := bootstrap.RunMigrations(ctx, db, logger); migErr != nil {
				return migErr
			}
		}
		deps.DB = db
	} else {
		logger.InfoContext(ctx, "audit database disabled, actions will not be recorded")
	}

	// Redis is best effort: the session store falls back to process memory.
	if redisClient, redisErr := bootstrap.ConnectRedis(cfg.Redis, logger); redisErr != nil {
		logger.WarnContext(ctx, "redis unavailable, sessions held in memory", "error", redisErr)
	} else {
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close redis failed", "error", cerr)
			}
		}()
		deps.Redis = redisClient
	}

	services, err := bootstrap.NewServices(deps)
	if err != nil {
		return err
	}

	server := bootstrap.NewHTTPServer(&cfg, services, logger)

	g, gctx := errgroup.WithContext(ctx)

	if services.AuditWorker != nil {
		g.Go(func() error {
			if runErr := services.AuditWorker.Run(gctx); runErr != nil && !errors.Is(runErr, context.Canceled) {
				return runErr
			}
			return nil
		})
	}

	g.Go(func() error {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			return serveErr
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return bootstrap.ShutdownHTTPServer(context.Background(), server, logger)
	})

	return g.Wait()
}
