package bootstrap

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/sikayet/console-api/config"
	"github.com/sikayet/console-api/internal/clock"
	httpx "github.com/sikayet/console-api/internal/http"
)

// NewHTTPServer builds the console's HTTP server from wired services.
func NewHTTPServer(cfg *config.AppConfig, services *Services, logger *slog.Logger) *http.Server {
	handler := httpx.NewRouter(httpx.RouterOptions{
		Logger:   logger,
		Clock:    clock.System{},
		Hub:      services.Hub,
		Audit:    services.Audit,
		Upstream: services.Upstream,

		Auth:          services.Auth,
		Complaints:    services.Complaints,
		Categories:    services.Categories,
		FAQCategories: services.FAQCategories,
		FAQs:          services.FAQs,
		Guides:        services.Guides,
		KVKK:          services.KVKK,
		Rules:         services.Rules,
		Users:         services.Users,

		AuditRepo: services.AuditRepo,

		SecureCookies:  cfg.HTTP.SecureCookies,
		SSORedirectURL: cfg.Auth.OIDC.RedirectURL,

		CommitDelay:   cfg.Undo.CommitDelay,
		ToastClose:    cfg.Undo.ToastClose,
		CommitTimeout: cfg.Undo.CommitTimeout,
	})

	addr := cfg.HTTP.Addr
	if addr == "" {
		addr = ":8080"
	}
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

// ShutdownHTTPServer gracefully drains the server.
func ShutdownHTTPServer(ctx context.Context, server *http.Server, logger *slog.Logger) error {
	if server == nil {
		return nil
	}
	logger.Info("shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("HTTP server stopped")
	return nil
}
