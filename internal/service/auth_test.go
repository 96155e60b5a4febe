package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sikayet/console-api/internal/apperr"
	domainauth "github.com/sikayet/console-api/internal/domain/auth"
	"github.com/sikayet/console-api/internal/domain/model"
	mocks "github.com/sikayet/console-api/internal/mocks/auth"
	"github.com/sikayet/console-api/internal/ports"
	"github.com/sikayet/console-api/internal/upstream"
)

type authFixture struct {
	api      *mocks.MockAuthAPI
	sso      *mocks.MockSSOProvider
	sessions *mocks.MemorySessionStore
	audit    *mocks.RecorderSpy
	svc      *AuthService
}

func newAuthFixture(withSSO bool) *authFixture {
	f := &authFixture{
		api:      mocks.NewMockAuthAPI(),
		sessions: mocks.NewMemorySessionStore(),
		audit:    &mocks.RecorderSpy{},
	}
	var sso ports.SSOProvider
	if withSSO {
		f.sso = mocks.NewMockSSOProvider()
		sso = f.sso
	}
	f.svc = NewAuthService(AuthServiceOptions{
		API:      f.api,
		SSO:      sso,
		Sessions: f.sessions,
		Gate:     gateFor("console-admins", "console-moderators"),
		Audit:    f.audit,
	})
	return f
}

// gateFor builds a RoleGate matching the static mapper used in production.
type staticGate struct {
	admin, moderator string
}

func gateFor(admin, moderator string) staticGate {
	return staticGate{admin: admin, moderator: moderator}
}

func (g staticGate) IsAuthorized(role domainauth.Role) bool {
	return role == domainauth.RoleAdmin || role == domainauth.RoleModerator
}

func (g staticGate) Map(groups []string) domainauth.Role {
	role := domainauth.RoleUser
	for _, group := range groups {
		switch group {
		case g.admin:
			return domainauth.RoleAdmin
		case g.moderator:
			role = domainauth.RoleModerator
		}
	}
	return role
}

func TestAuthService_Login_Success(t *testing.T) {
	f := newAuthFixture(false)
	ctx := context.Background()

	sess, err := f.svc.Login(ctx, "admin@example.com", "secret")

	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "token-1", sess.Token)
	assert.Equal(t, domainauth.RoleAdmin, sess.User.Role)
	assert.WithinDuration(t, time.Now().Add(DefaultSessionTTL), sess.ExpiresAt, time.Minute)

	stored, err := f.sessions.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.Token, stored.Token)

	entry, ok := f.audit.Last()
	require.True(t, ok)
	assert.Equal(t, model.AuditActionLogin, entry.Action)
	assert.Equal(t, "admin@example.com", entry.Actor)
}

func TestAuthService_Login_Validation(t *testing.T) {
	f := newAuthFixture(false)
	ctx := context.Background()

	_, err := f.svc.Login(ctx, "   ", "secret")
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Equal(t, "email", apperr.GetField(err))

	_, err = f.svc.Login(ctx, "admin@example.com", "")
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Equal(t, "password", apperr.GetField(err))
}

func TestAuthService_Login_NormalizesRoleClaim(t *testing.T) {
	f := newAuthFixture(false)
	f.api.DefaultResult.User.Role = domainauth.Role(" moderator ")

	sess, err := f.svc.Login(context.Background(), "mod@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleModerator, sess.User.Role)
}

func TestAuthService_Login_RejectedRoleLeavesNoSession(t *testing.T) {
	f := newAuthFixture(false)
	f.api.DefaultResult.User.Role = domainauth.RoleUser

	sess, err := f.svc.Login(context.Background(), "user@example.com", "secret")

	require.Error(t, err)
	assert.Nil(t, sess)
	assert.True(t, apperr.IsUnauthorized(err))
	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "You are not authorized to access the admin console.", appErr.Message)

	// The upstream token must be discarded: nothing persisted.
	assert.Zero(t, f.sessions.Len())

	entry, ok := f.audit.Last()
	require.True(t, ok)
	assert.Equal(t, model.AuditActionLoginDenied, entry.Action)
	assert.Equal(t, "denied", entry.Outcome)
	assert.Equal(t, "user@example.com", entry.Actor)
}

func TestAuthService_Login_UpstreamUnauthorized(t *testing.T) {
	f := newAuthFixture(false)
	f.api.LoginFunc = func(context.Context, string, string) (*domainauth.LoginResult, error) {
		return nil, &upstream.APIError{Status: 401, Message: "HTTP 401"}
	}

	_, err := f.svc.Login(context.Background(), "admin@example.com", "wrong")

	require.Error(t, err)
	assert.True(t, apperr.IsUnauthorized(err))
	assert.Zero(t, f.sessions.Len())
}

func TestAuthService_BeginSSO_DisabledWithoutProvider(t *testing.T) {
	f := newAuthFixture(false)

	_, err := f.svc.BeginSSO(context.Background(), "http://localhost:8080/api/auth/sso/callback")

	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestAuthService_BeginSSO_Success(t *testing.T) {
	f := newAuthFixture(true)

	res, err := f.svc.BeginSSO(context.Background(), "http://localhost:8080/api/auth/sso/callback")

	require.NoError(t, err)
	assert.Equal(t, "https://mock-idp/auth", res.AuthURL)
	assert.Equal(t, "state-1", res.State)
	assert.Equal(t, "nonce-1", res.Nonce)
}

func TestAuthService_CompleteSSO_Success(t *testing.T) {
	f := newAuthFixture(true)
	expiry := time.Now().Add(30 * time.Minute)
	f.sso.DefaultIdentity.ExpiresAt = expiry

	sess, err := f.svc.CompleteSSO(context.Background(), ports.ExchangeInput{
		Code:  "code-1",
		State: "state-1",
		Nonce: "nonce-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "idp-token-1", sess.Token, "SSO sessions carry the provider token")
	assert.Equal(t, domainauth.RoleAdmin, sess.User.Role)
	assert.Equal(t, expiry, sess.ExpiresAt)

	entry, ok := f.audit.Last()
	require.True(t, ok)
	assert.Equal(t, model.AuditActionLogin, entry.Action)
}

func TestAuthService_CompleteSSO_UnmappedGroupsRejected(t *testing.T) {
	f := newAuthFixture(true)
	f.sso.DefaultIdentity.Groups = []string{"unrelated-team"}

	sess, err := f.svc.CompleteSSO(context.Background(), ports.ExchangeInput{Code: "code-1"})

	require.Error(t, err)
	assert.Nil(t, sess)
	assert.True(t, apperr.IsUnauthorized(err))
	assert.Zero(t, f.sessions.Len())

	entry, ok := f.audit.Last()
	require.True(t, ok)
	assert.Equal(t, model.AuditActionLoginDenied, entry.Action)
}

func TestAuthService_GetSession(t *testing.T) {
	f := newAuthFixture(false)
	ctx := context.Background()

	sess, err := f.svc.Login(ctx, "admin@example.com", "secret")
	require.NoError(t, err)

	got, err := f.svc.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)

	_, err = f.svc.GetSession(ctx, "")
	assert.True(t, apperr.IsUnauthorized(err))

	_, err = f.svc.GetSession(ctx, "unknown")
	assert.True(t, apperr.IsUnauthorized(err))
}

func TestAuthService_Logout(t *testing.T) {
	f := newAuthFixture(false)
	ctx := context.Background()

	sess, err := f.svc.Login(ctx, "admin@example.com", "secret")
	require.NoError(t, err)

	require.NoError(t, f.svc.Logout(ctx, sess.ID))
	assert.Zero(t, f.sessions.Len())

	entry, ok := f.audit.Last()
	require.True(t, ok)
	assert.Equal(t, model.AuditActionLogout, entry.Action)
	assert.Equal(t, "admin@example.com", entry.Actor)

	// Logging out a missing session is not an error and records nothing new.
	before := len(f.audit.Entries())
	require.NoError(t, f.svc.Logout(ctx, sess.ID))
	assert.Len(t, f.audit.Entries(), before)
}
