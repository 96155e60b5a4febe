// Package redisstore provides the Redis-backed session store for the console.
//
// The store reads an ordered list of key prefixes: the current prefix first,
// then legacy prefixes left behind by earlier console versions. Stored values
// are decoded defensively: a full session record, a bare token wrapper, or a
// raw token string are all accepted, and malformed data is never fatal.
// Writes that fail (Redis down, quota) are absorbed into an in-process
// fallback so a storage outage never blocks login.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/sikayet/console-api/internal/domain/auth"
	"github.com/sikayet/console-api/internal/ports"
)

// DefaultPrefix is the current session key prefix.
const DefaultPrefix = "console:session:"

// legacyPrefixes are older key layouts still honored on reads.
var legacyPrefixes = []string{"session:", "admin:token:"}

// ErrNotFound is returned when a session is not found under any known key.
var ErrNotFound = ports.ErrSessionNotFound

// KeyPrefixes returns every prefix the store reads, current first. Used by
// operational tooling that sweeps session keys.
func KeyPrefixes() []string {
	return append([]string{DefaultPrefix}, legacyPrefixes...)
}

// SessionStore is the Redis-backed store with in-process fallback.
type SessionStore struct {
	client   redis.UniversalClient
	prefixes []string
	logger   *slog.Logger

	mu       sync.RWMutex
	fallback map[string]domainauth.Session
}

// Options groups dependencies for NewSessionStore.
type Options struct {
	Client redis.UniversalClient
	// Prefix overrides DefaultPrefix. Legacy prefixes are always appended.
	Prefix string
	Logger *slog.Logger
}

// NewSessionStore creates a session store.
func NewSessionStore(opts Options) *SessionStore {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionStore{
		client:   opts.Client,
		prefixes: append([]string{prefix}, legacyPrefixes...),
		logger:   logger,
		fallback: make(map[string]domainauth.Session),
	}
}

// Save persists the session. Storage failures are absorbed: the session is
// kept in the in-process fallback and the caller proceeds as if persistence
// succeeded.
func (s *SessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session is expired")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	if s.client != nil {
		if setErr := s.client.Set(ctx, s.prefixes[0]+sess.ID, data, ttl).Err(); setErr == nil {
			return nil
		} else {
			s.logger.WarnContext(ctx, "session storage unavailable, keeping session in memory",
				"error", setErr)
		}
	}

	s.mu.Lock()
	s.fallback[sess.ID] = sess
	s.mu.Unlock()
	return nil
}

// Get retrieves a session, trying each known key prefix in order and the
// in-process fallback last.
func (s *SessionStore) Get(ctx context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ErrNotFound
	}

	if s.client != nil {
		for _, prefix := range s.prefixes {
			data, err := s.client.Get(ctx, prefix+id).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) {
					continue
				}
				s.logger.WarnContext(ctx, "session read failed, trying fallback",
					"error", err)
				break
			}
			sess, ok := decodeSession(id, []byte(data))
			if !ok {
				continue
			}
			if expired(sess) {
				// TTL should have removed it; be defensive.
				if delErr := s.client.Del(ctx, prefix+id).Err(); delErr != nil {
					s.logger.WarnContext(ctx, "cleanup expired session failed", "error", delErr)
				}
				continue
			}
			return sess, nil
		}
	}

	s.mu.RLock()
	sess, ok := s.fallback[id]
	s.mu.RUnlock()
	if !ok || expired(sess) {
		return domainauth.Session{}, ErrNotFound
	}
	return sess, nil
}

// Token returns the session's bearer token, or empty with ErrNotFound.
func (s *SessionStore) Token(ctx context.Context, id string) (string, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return sess.Token, nil
}

// Delete removes the session under every known prefix and the fallback.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}

	s.mu.Lock()
	delete(s.fallback, id)
	s.mu.Unlock()

	if s.client == nil {
		return nil
	}
	keys := make([]string, 0, len(s.prefixes))
	for _, prefix := range s.prefixes {
		keys = append(keys, prefix+id)
	}
	return s.client.Del(ctx, keys...).Err()
}

func expired(sess domainauth.Session) bool {
	return !sess.ExpiresAt.IsZero() && time.Now().After(sess.ExpiresAt)
}

// decodeSession parses a stored value defensively. Accepted shapes, in
// order: a full session record, a JSON wrapper carrying a token field, and a
// raw token string. Malformed data yields a bare-token session rather than
// an error.
func decodeSession(id string, data []byte) (domainauth.Session, bool) {
	if len(data) == 0 {
		return domainauth.Session{}, false
	}

	var sess domainauth.Session
	if err := json.Unmarshal(data, &sess); err == nil && sess.Token != "" {
		if sess.ID == "" {
			sess.ID = id
		}
		return sess, true
	}

	var wrapper struct {
		Token       string `json:"token"`
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(data, &wrapper); err == nil {
		if tok := firstNonEmpty(wrapper.Token, wrapper.AccessToken); tok != "" {
			return domainauth.Session{ID: id, Token: tok}, true
		}
	}

	// Legacy layouts stored the raw token string, sometimes JSON-quoted.
	var quoted string
	if err := json.Unmarshal(data, &quoted); err == nil {
		if quoted == "" {
			return domainauth.Session{}, false
		}
		return domainauth.Session{ID: id, Token: quoted}, true
	}
	return domainauth.Session{ID: id, Token: string(data)}, true
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
