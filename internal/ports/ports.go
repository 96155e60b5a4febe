// Package ports defines interfaces (hexagonal ports) between the console's
// layers. Implementations live in internal/upstream, internal/adapters, and
// internal/data; orchestration in internal/service.
package ports

import (
	"context"
	"errors"

	domainauth "github.com/sikayet/console-api/internal/domain/auth"
	"github.com/sikayet/console-api/internal/domain/model"
)

// ErrSessionNotFound is returned by SessionStore implementations when no
// session exists under the given ID.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists and retrieves console sessions. Implementations
// absorb storage failures on Save (falling back to in-process state) so a
// storage outage never blocks login.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
	// Token returns the bearer token for a session, reading the primary and
	// legacy storage keys defensively.
	Token(ctx context.Context, id string) (string, error)
}

// RoleGate decides whether a role claim is authorized for the admin console
// and maps SSO group claims onto platform roles.
type RoleGate interface {
	IsAuthorized(role domainauth.Role) bool
	Map(groups []string) domainauth.Role
}

// AuthAPI is the upstream password login endpoint.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*domainauth.LoginResult, error)
}

// BeginInput carries inputs for initiating an SSO auth flow.
type BeginInput struct {
	RedirectURL string
}

// ExchangeInput groups parameters for the SSO code/token exchange.
type ExchangeInput struct {
	Code  string
	State string
	Nonce string
}

// SSOProvider initiates and completes an OIDC authentication flow.
type SSOProvider interface {
	// Begin starts the login flow and returns the provider auth URL, an
	// opaque state, and a nonce.
	Begin(ctx context.Context, in BeginInput) (authURL, state, nonce string, err error)
	// Exchange completes the login flow, verifying state and nonce, and
	// returns the authenticated identity.
	Exchange(ctx context.Context, in ExchangeInput) (domainauth.Identity, error)
}

// AuditRecorder records console actions. Recording is best effort: failures
// are logged by the implementation, never returned to the caller.
type AuditRecorder interface {
	Record(ctx context.Context, entry model.AuditEntry)
}

// CRUD is the upstream call set every admin resource shares.
type CRUD[T any, C any, U any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, req C) (*T, error)
	Update(ctx context.Context, id string, req U) (*T, error)
	Delete(ctx context.Context, id string) error
}

// ComplaintAPI is the upstream complaints resource. Complaints are filed by
// end users; the console only moderates them, so there is no Create.
type ComplaintAPI interface {
	List(ctx context.Context) ([]model.Complaint, error)
	Get(ctx context.Context, id string) (*model.Complaint, error)
	Update(ctx context.Context, id string, req model.UpdateComplaintRequest) (*model.Complaint, error)
	Delete(ctx context.Context, id string) error
	Approve(ctx context.Context, id string) (*model.Complaint, error)
	Reject(ctx context.Context, id, reason string) (*model.Complaint, error)
}

// CategoryAPI is the upstream complaint categories resource.
type CategoryAPI interface {
	CRUD[model.Category, model.CreateCategoryRequest, model.UpdateCategoryRequest]
}

// FAQCategoryAPI is the upstream FAQ categories resource.
type FAQCategoryAPI interface {
	CRUD[model.FAQCategory, model.CreateFAQCategoryRequest, model.UpdateFAQCategoryRequest]
}

// FAQAPI is the upstream FAQs resource.
type FAQAPI interface {
	CRUD[model.FAQ, model.CreateFAQRequest, model.UpdateFAQRequest]
	SetStatus(ctx context.Context, id string, active bool) (*model.FAQ, error)
}

// GuideAPI is the upstream guide content resource.
type GuideAPI interface {
	CRUD[model.Guide, model.CreateGuideRequest, model.UpdateGuideRequest]
	Activate(ctx context.Context, id string) (*model.Guide, error)
}

// KVKKAPI is the upstream KVKK sections resource.
type KVKKAPI interface {
	CRUD[model.KVKKSection, model.CreateKVKKSectionRequest, model.UpdateKVKKSectionRequest]
	Activate(ctx context.Context, id string) (*model.KVKKSection, error)
}

// RuleAPI is the upstream moderation rules resource.
type RuleAPI interface {
	CRUD[model.Rule, model.CreateRuleRequest, model.UpdateRuleRequest]
}

// UserAPI is the upstream users resource.
type UserAPI interface {
	CRUD[model.User, model.CreateUserRequest, model.UpdateUserRequest]
	SetActive(ctx context.Context, id string, active bool) (*model.User, error)
}
