package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sikayet/console-api/internal/apperr"
	domainauth "github.com/sikayet/console-api/internal/domain/auth"
	"github.com/sikayet/console-api/internal/domain/model"
	"github.com/sikayet/console-api/internal/ports"
	"github.com/sikayet/console-api/internal/upstream"
)

// DefaultSessionTTL is how long a password-login session lives. SSO sessions
// inherit the IdP token expiry instead.
const DefaultSessionTTL = 12 * time.Hour

// unauthorizedRoleMessage is shown when a valid account lacks a console role.
const unauthorizedRoleMessage = "You are not authorized to access the admin console."

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	API      ports.AuthAPI
	SSO      ports.SSOProvider // nil outside SSO mode
	Sessions ports.SessionStore
	Gate     ports.RoleGate
	Audit    ports.AuditRecorder
	TTL      time.Duration
}

// AuthService orchestrates login, the role gate, and session persistence.
type AuthService struct {
	api      ports.AuthAPI
	sso      ports.SSOProvider
	sessions ports.SessionStore
	gate     ports.RoleGate
	audit    ports.AuditRecorder
	ttl      time.Duration
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	audit := opts.Audit
	if audit == nil {
		audit = NopAuditRecorder{}
	}
	return &AuthService{
		api:      opts.API,
		sso:      opts.SSO,
		sessions: opts.Sessions,
		gate:     opts.Gate,
		audit:    audit,
		ttl:      ttl,
	}
}

// Login authenticates against the platform API and gates on role. A rejected
// role leaves no session behind: the upstream token is discarded.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domainauth.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, apperr.ValidationField("email", "Email is required.")
	}
	if password == "" {
		return nil, apperr.ValidationField("password", "Password is required.")
	}

	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, upstream.NormalizeError(err)
	}

	role := domainauth.ParseRole(string(res.User.Role))
	if !s.gate.IsAuthorized(role) {
		s.audit.Record(ctx, model.AuditEntry{
			Actor:   email,
			Action:  model.AuditActionLoginDenied,
			Outcome: "denied",
			Detail:  "role " + string(role),
		})
		return nil, apperr.Unauthorized(unauthorizedRoleMessage)
	}

	user := res.User
	user.Role = role
	sess := s.newSession(res.AccessToken, user, time.Now().Add(s.ttl))
	if saveErr := s.sessions.Save(ctx, sess); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}

	s.audit.Record(ctx, model.AuditEntry{
		Actor:  email,
		Action: model.AuditActionLogin,
		Detail: "role " + string(role),
	})
	return &sess, nil
}

// BeginSSOResult carries what the HTTP layer needs to redirect the browser.
type BeginSSOResult struct {
	AuthURL string
	State   string
	Nonce   string
}

// BeginSSO starts the IdP login flow. Only available in SSO mode.
func (s *AuthService) BeginSSO(ctx context.Context, redirectURL string) (*BeginSSOResult, error) {
	if s.sso == nil {
		return nil, apperr.NotFound("SSO login is not enabled.")
	}
	authURL, state, nonce, err := s.sso.Begin(ctx, ports.BeginInput{RedirectURL: redirectURL})
	if err != nil {
		return nil, fmt.Errorf("begin sso flow: %w", err)
	}
	return &BeginSSOResult{AuthURL: authURL, State: state, Nonce: nonce}, nil
}

// CompleteSSO finishes the IdP flow: exchanges the code, maps IdP groups to a
// platform role, applies the same gate as password login, and persists a
// session carrying the provider token.
func (s *AuthService) CompleteSSO(ctx context.Context, in ports.ExchangeInput) (*domainauth.Session, error) {
	if s.sso == nil {
		return nil, apperr.NotFound("SSO login is not enabled.")
	}
	identity, err := s.sso.Exchange(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("complete sso flow: %w", err)
	}

	role := s.gate.Map(identity.Groups)
	if !s.gate.IsAuthorized(role) {
		s.audit.Record(ctx, model.AuditEntry{
			Actor:   identity.Email,
			Action:  model.AuditActionLoginDenied,
			Outcome: "denied",
			Detail:  "role " + string(role),
		})
		return nil, apperr.Unauthorized(unauthorizedRoleMessage)
	}

	user := domainauth.User{ID: identity.UserID, Email: identity.Email, Role: role}
	expiresAt := identity.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(s.ttl)
	}
	sess := s.newSession(identity.AccessToken, user, expiresAt)
	if saveErr := s.sessions.Save(ctx, sess); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}

	s.audit.Record(ctx, model.AuditEntry{
		Actor:  identity.Email,
		Action: model.AuditActionLogin,
		Detail: "sso, role " + string(role),
	})
	return &sess, nil
}

// GetSession resolves a session ID from a cookie. Missing or expired
// sessions come back as unauthorized so the browser re-authenticates.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, apperr.Unauthorized("Your session has expired. Please sign in again.")
	}
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return nil, apperr.Unauthorized("Your session has expired. Please sign in again.")
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &sess, nil
}

// Logout removes the session. A missing session is not an error.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	sess, getErr := s.sessions.Get(ctx, sessionID)
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if getErr == nil {
		s.audit.Record(ctx, model.AuditEntry{
			Actor:  sess.User.Email,
			Action: model.AuditActionLogout,
		})
	}
	return nil
}

func (s *AuthService) newSession(token string, user domainauth.User, expiresAt time.Time) domainauth.Session {
	return domainauth.Session{
		ID:        uuid.NewString(),
		Token:     token,
		User:      user,
		CreatedAt: time.Now().UTC(),
		ExpiresAt: expiresAt,
	}
}
