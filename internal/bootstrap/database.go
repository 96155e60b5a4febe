package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	// Registers the pgx stdlib driver.
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"github.com/sikayet/console-api/config"
	"github.com/sikayet/console-api/internal/data"
)

// ConnectDB opens and verifies the Postgres connection for the audit trail.
func ConnectDB(cfg config.DBConfig, logger *slog.Logger) (*sql.DB, error) {
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:   "/" + cfg.Name,
	}
	q := u.Query()
	q.Set("sslmode", cfg.SSLMode)
	u.RawQuery = q.Encode()

	db, err := sql.Open("pgx", u.String())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if pingErr := db.PingContext(ctx); pingErr != nil {
		if closeErr := db.Close(); closeErr != nil {
			pingErr = errors.Join(pingErr, fmt.Errorf("close database connection: %w", closeErr))
		}
		return nil, fmt.Errorf("ping database: %w", pingErr)
	}

	if logger != nil {
		logger.Info("database connected", "host", cfg.Host, "port", cfg.Port, "database", cfg.Name)
	}
	return db, nil
}

// ConnectRedis opens and verifies the Redis connection for session storage.
// A failed connection is not fatal to the caller: the session store can run
// on its in-process fallback.
//
//nolint:ireturn // redis.UniversalClient keeps sentinel support flexible.
func ConnectRedis(cfg config.RedisConfig, logger *slog.Logger) (redis.UniversalClient, error) {
	var client redis.UniversalClient
	var addrDesc string

	if cfg.UseSentinel {
		if len(cfg.SentinelNodes) == 0 {
			return nil, errors.New("redis sentinel configuration requires at least one sentinel node")
		}
		client = redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:       cfg.SentinelMasterName,
			SentinelAddrs:    cfg.SentinelNodes,
			Password:         cfg.Password,
			SentinelPassword: cfg.SentinelPassword,
		})
		addrDesc = "sentinel:" + cfg.SentinelMasterName
	} else {
		uri := strings.TrimSpace(cfg.URI)
		if uri == "" {
			return nil, errors.New("redis configuration requires a URI")
		}
		if strings.HasPrefix(uri, "redis://") || strings.HasPrefix(uri, "rediss://") {
			opt, err := redis.ParseURL(uri)
			if err != nil {
				return nil, fmt.Errorf("parse redis url: %w", err)
			}
			client = redis.NewClient(opt)
			addrDesc = opt.Addr
		} else {
			client = redis.NewClient(&redis.Options{Addr: uri, Password: cfg.Password})
			addrDesc = uri
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if pingErr := client.Ping(ctx).Err(); pingErr != nil {
		if closeErr := client.Close(); closeErr != nil {
			pingErr = errors.Join(pingErr, fmt.Errorf("close redis client: %w", closeErr))
		}
		return nil, fmt.Errorf("ping redis: %w", pingErr)
	}

	if logger != nil {
		logger.Info("redis connected", "addr", addrDesc)
	}
	return client, nil
}

// RunMigrations applies pending schema migrations.
func RunMigrations(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if err := data.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	if logger != nil {
		logger.InfoContext(ctx, "database migrations completed")
	}
	return nil
}
