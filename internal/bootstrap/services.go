package bootstrap

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/sikayet/console-api/config"
	"github.com/sikayet/console-api/internal/adapters/authroles"
	"github.com/sikayet/console-api/internal/adapters/oidc"
	"github.com/sikayet/console-api/internal/adapters/redisstore"
	"github.com/sikayet/console-api/internal/clock"
	"github.com/sikayet/console-api/internal/data"
	"github.com/sikayet/console-api/internal/notify"
	"github.com/sikayet/console-api/internal/ports"
	"github.com/sikayet/console-api/internal/service"
	"github.com/sikayet/console-api/internal/upstream"
)

// ServiceDeps groups infrastructure for NewServices.
type ServiceDeps struct {
	Config *config.AppConfig
	// DB is nil when the audit database is disabled.
	DB *sql.DB
	// Redis is nil when Redis is unreachable; the session store then runs
	// on its in-process fallback.
	Redis  redis.UniversalClient
	Logger *slog.Logger
}

// Services holds everything the HTTP layer needs.
type Services struct {
	Auth          *service.AuthService
	Complaints    *service.ComplaintService
	Categories    *service.CategoryService
	FAQCategories *service.FAQCategoryService
	FAQs          *service.FAQService
	Guides        *service.GuideService
	KVKK          *service.KVKKService
	Rules         *service.RuleService
	Users         *service.UserService

	Hub *notify.Hub
	// Upstream is the platform API client, also probed by the health endpoint.
	Upstream *upstream.Client
	// Audit is the recorder handed to services; a no-op without a database.
	Audit     ports.AuditRecorder
	AuditRepo *data.AuditRepo
	// AuditWorker is nil when auditing is disabled; otherwise its Run must
	// be started for entries to persist.
	AuditWorker *service.AuditService
}

// NewServices wires adapters and services from configuration.
func NewServices(deps *ServiceDeps) (*Services, error) {
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	client := upstream.NewClient(upstream.ClientOptions{
		BaseURL:    cfg.Upstream.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Upstream.Timeout},
		Logger:     logger,
	})

	var audit ports.AuditRecorder = service.NopAuditRecorder{}
	var auditRepo *data.AuditRepo
	var auditWorker *service.AuditService
	if deps.DB != nil {
		auditRepo = data.NewAuditRepo(deps.DB)
		auditWorker = service.NewAuditService(service.AuditServiceOptions{
			Repo:   auditRepo,
			Logger: logger,
		})
		audit = auditWorker
	}

	sessions := redisstore.NewSessionStore(redisstore.Options{
		Client: deps.Redis,
		Prefix: cfg.Redis.KeyPrefix,
		Logger: logger,
	})

	gate := authroles.StaticRoleMapper{
		AdminGroup:     cfg.Auth.AdminGroup,
		ModeratorGroup: cfg.Auth.ModeratorGroup,
	}

	var sso ports.SSOProvider
	if cfg.Auth.Mode == config.AuthModeOIDC {
		provider, err := oidc.NewProvider(oidc.ProviderConfig{
			ClientID:     cfg.Auth.OIDC.ClientID,
			ClientSecret: cfg.Auth.OIDC.ClientSecret,
			RedirectURL:  cfg.Auth.OIDC.RedirectURL,
			Scope:        cfg.Auth.OIDC.Scope,
			DiscoveryURL: cfg.Auth.OIDC.DiscoveryURL,
		})
		if err != nil {
			return nil, fmt.Errorf("init oidc provider: %w", err)
		}
		sso = provider
	}

	auth := service.NewAuthService(service.AuthServiceOptions{
		API:      client.Auth(),
		SSO:      sso,
		Sessions: sessions,
		Gate:     gate,
		Audit:    audit,
		TTL:      cfg.Auth.SessionTTL,
	})

	return &Services{
		Auth:          auth,
		Complaints:    service.NewComplaintService(client.Complaints(), audit),
		Categories:    service.NewCategoryService(client.Categories(), audit),
		FAQCategories: service.NewFAQCategoryService(client.FAQCategories(), audit),
		FAQs:          service.NewFAQService(client.FAQs(), audit),
		Guides:        service.NewGuideService(client.Guides(), audit),
		KVKK:          service.NewKVKKService(client.KVKK(), audit),
		Rules:         service.NewRuleService(client.Rules(), audit),
		Users:         service.NewUserService(client.Users(), audit),
		Hub:           notify.NewHub(toastMode(cfg), clock.System{}),
		Upstream:      client,
		Audit:         audit,
		AuditRepo:     auditRepo,
		AuditWorker:   auditWorker,
	}, nil
}

func toastMode(cfg *config.AppConfig) notify.Mode {
	if cfg.Undo.ReplaceToasts {
		return notify.ModeReplace
	}
	return notify.ModeQueue
}
