package httpx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sikayet/console-api/internal/clock"
	"github.com/sikayet/console-api/internal/data"
	domainauth "github.com/sikayet/console-api/internal/domain/auth"
	"github.com/sikayet/console-api/internal/domain/model"
	"github.com/sikayet/console-api/internal/notify"
	"github.com/sikayet/console-api/internal/ports"
	"github.com/sikayet/console-api/internal/service"
)

// RouterOptions groups everything the HTTP surface needs.
type RouterOptions struct {
	Logger *slog.Logger
	Clock  clock.Clock
	Hub    *notify.Hub
	Audit  ports.AuditRecorder

	// Upstream feeds the health endpoint's reachability report; nil skips it.
	Upstream UpstreamPinger

	Auth          *service.AuthService
	Complaints    *service.ComplaintService
	Categories    *service.CategoryService
	FAQCategories *service.FAQCategoryService
	FAQs          *service.FAQService
	Guides        *service.GuideService
	KVKK          *service.KVKKService
	Rules         *service.RuleService
	Users         *service.UserService

	// AuditRepo enables the admin audit view; nil when running without a
	// database.
	AuditRepo *data.AuditRepo

	SecureCookies  bool
	SSORedirectURL string

	CommitDelay   time.Duration
	ToastClose    time.Duration
	CommitTimeout time.Duration
}

// NewRouter builds the console's handler tree: public auth and health routes,
// and the session-gated admin API.
func NewRouter(opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	resourceOpts := func(label, entityType string) ResourceHandlerOptions {
		return ResourceHandlerOptions{
			Hub:           opts.Hub,
			Clock:         opts.Clock,
			Audit:         opts.Audit,
			Label:         label,
			EntityType:    entityType,
			CommitDelay:   opts.CommitDelay,
			ToastClose:    opts.ToastClose,
			CommitTimeout: opts.CommitTimeout,
		}
	}

	complaints := NewComplaintHandler(opts.Complaints, resourceOpts("Complaint", "complaint"))
	categories := NewResourceHandler[model.Category, model.CreateCategoryRequest, model.UpdateCategoryRequest](
		opts.Categories, resourceOpts("Category", "category"))
	faqCategories := NewResourceHandler[model.FAQCategory, model.CreateFAQCategoryRequest, model.UpdateFAQCategoryRequest](
		opts.FAQCategories, resourceOpts("FAQ category", "faq_category"))
	faqs := NewResourceHandler[model.FAQ, model.CreateFAQRequest, model.UpdateFAQRequest](
		opts.FAQs, resourceOpts("FAQ", "faq"))
	guides := NewResourceHandler[model.Guide, model.CreateGuideRequest, model.UpdateGuideRequest](
		opts.Guides, resourceOpts("Guide", "guide"))
	kvkk := NewResourceHandler[model.KVKKSection, model.CreateKVKKSectionRequest, model.UpdateKVKKSectionRequest](
		opts.KVKK, resourceOpts("KVKK section", "kvkk_section"))
	rules := NewResourceHandler[model.Rule, model.CreateRuleRequest, model.UpdateRuleRequest](
		opts.Rules, resourceOpts("Rule", "rule"))
	users := NewResourceHandler[model.User, model.CreateUserRequest, model.UpdateUserRequest](
		opts.Users, resourceOpts("User", "user"))

	protected := http.NewServeMux()
	complaints.Register(protected, "/api/complaints")
	categories.Register(protected, "/api/categories")
	faqCategories.Register(protected, "/api/faq-categories")
	faqs.Register(protected, "/api/faqs")
	guides.Register(protected, "/api/guides")
	kvkk.Register(protected, "/api/kvkk")
	rules.Register(protected, "/api/rules")
	users.Register(protected, "/api/users")

	protected.HandleFunc("POST /api/faqs/{id}/status", toggleHandler(opts.FAQs.SetStatus))
	protected.HandleFunc("POST /api/users/{id}/active", toggleHandler(opts.Users.SetActive))
	protected.HandleFunc("POST /api/guides/{id}/activate", actionHandler(opts.Guides.Activate))
	protected.HandleFunc("POST /api/kvkk/{id}/activate", actionHandler(opts.KVKK.Activate))

	NewNotificationHandler(opts.Hub).Register(protected)

	if opts.AuditRepo != nil {
		admin := http.NewServeMux()
		NewAuditHandler(opts.AuditRepo).Register(admin)
		protected.Handle("/api/audit", RequireRole(domainauth.RoleAdmin)(admin))
	}

	auth := NewAuthHandler(AuthHandlerOptions{
		Service:       opts.Auth,
		Hub:           opts.Hub,
		SecureCookies: opts.SecureCookies,
		SessionCleanup: []func(string){
			complaints.RemoveSession,
			categories.RemoveSession,
			faqCategories.RemoveSession,
			faqs.RemoveSession,
			guides.RemoveSession,
			kvkk.RemoveSession,
			rules.RemoveSession,
			users.RemoveSession,
		},
		SSORedirectURL: opts.SSORedirectURL,
	})
	auth.RegisterSession(protected)

	root := http.NewServeMux()
	auth.Register(root)
	HealthHandler{Upstream: opts.Upstream}.Register(root)
	root.Handle("/api/", RequireSession(opts.Auth)(protected))

	var handler http.Handler = root
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler
}
