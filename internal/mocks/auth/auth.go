// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.
package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	domainauth "github.com/sikayet/console-api/internal/domain/auth"
	"github.com/sikayet/console-api/internal/domain/model"
	"github.com/sikayet/console-api/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.AuthAPI       = (*MockAuthAPI)(nil)
	_ ports.SSOProvider   = (*MockSSOProvider)(nil)
	_ ports.SessionStore  = (*MemorySessionStore)(nil)
	_ ports.AuditRecorder = (*RecorderSpy)(nil)
)

// MockAuthAPI simulates the upstream login endpoint.
type MockAuthAPI struct {
	LoginFunc func(ctx context.Context, email, password string) (*domainauth.LoginResult, error)

	// DefaultResult is returned when LoginFunc is nil.
	DefaultResult domainauth.LoginResult
}

// NewMockAuthAPI creates a MockAuthAPI that accepts any credentials as an admin.
func NewMockAuthAPI() *MockAuthAPI {
	return &MockAuthAPI{
		DefaultResult: domainauth.LoginResult{
			AccessToken: "token-1",
			User: domainauth.User{
				ID:    "user-1",
				Email: "admin@example.com",
				Role:  domainauth.RoleAdmin,
			},
		},
	}
}

func (m *MockAuthAPI) Login(ctx context.Context, email, password string) (*domainauth.LoginResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	res := m.DefaultResult
	if res.User.Email == "" {
		res.User.Email = email
	}
	return &res, nil
}

// MockSSOProvider simulates an IdP with deterministic state/nonce handling.
type MockSSOProvider struct {
	BeginFunc    func(ctx context.Context, in ports.BeginInput) (authURL, state, nonce string, err error)
	ExchangeFunc func(ctx context.Context, in ports.ExchangeInput) (domainauth.Identity, error)

	AuthURL         string
	DefaultIdentity domainauth.Identity

	callCount int
}

// NewMockSSOProvider creates a MockSSOProvider with sensible defaults.
func NewMockSSOProvider() *MockSSOProvider {
	return &MockSSOProvider{
		AuthURL: "https://mock-idp/auth",
		DefaultIdentity: domainauth.Identity{
			UserID:      "mock-user-1",
			Email:       "mock.user@example.com",
			FirstName:   "Mock",
			LastName:    "User",
			Groups:      []string{"console-admins"},
			AccessToken: "idp-token-1",
			ExpiresAt:   time.Now().Add(time.Hour),
		},
	}
}

func (m *MockSSOProvider) Begin(ctx context.Context, in ports.BeginInput) (string, string, string, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx, in)
	}
	m.callCount++
	authURL := m.AuthURL
	if authURL == "" {
		authURL = "https://mock-idp/auth"
	}
	state := fmt.Sprintf("state-%d", m.callCount)
	nonce := fmt.Sprintf("nonce-%d", m.callCount)
	return authURL, state, nonce, nil
}

func (m *MockSSOProvider) Exchange(ctx context.Context, in ports.ExchangeInput) (domainauth.Identity, error) {
	if m.ExchangeFunc != nil {
		return m.ExchangeFunc(ctx, in)
	}
	return m.DefaultIdentity, nil
}

// MemorySessionStore is a map-backed session store for tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session

	// SaveErr makes Save fail when set.
	SaveErr error
}

// NewMemorySessionStore creates an empty MemorySessionStore.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]domainauth.Session)}
}

func (s *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	return sess, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *MemorySessionStore) Token(ctx context.Context, id string) (string, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return sess.Token, nil
}

// Len reports how many sessions are stored.
func (s *MemorySessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// RecorderSpy collects recorded audit entries for assertions.
type RecorderSpy struct {
	mu      sync.Mutex
	entries []model.AuditEntry
}

func (r *RecorderSpy) Record(_ context.Context, entry model.AuditEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

// Entries returns a copy of everything recorded so far.
func (r *RecorderSpy) Entries() []model.AuditEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.AuditEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Last returns the most recent entry, or false when nothing was recorded.
func (r *RecorderSpy) Last() (model.AuditEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) == 0 {
		return model.AuditEntry{}, false
	}
	return r.entries[len(r.entries)-1], true
}
