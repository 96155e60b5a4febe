package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/sikayet/console-api/internal/apperr"
	domainauth "github.com/sikayet/console-api/internal/domain/auth"
	"github.com/sikayet/console-api/internal/service"
	"github.com/sikayet/console-api/internal/upstream"
)

var errForbidden = errors.New("You do not have permission to perform this action.")

func sessionExpiredError() error {
	return apperr.Unauthorized("Your session has expired. Please sign in again.")
}

// SessionResolver resolves a session cookie value into a session.
type SessionResolver interface {
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
}

// Logging returns a middleware that logs each request.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &respWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSession resolves the session cookie and rejects unauthenticated
// requests. On success the request context carries the session, the upstream
// bearer token, and the acting operator for audit entries.
func RequireSession(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				WriteAppError(w, sessionExpiredError())
				return
			}

			sess, err := resolver.GetSession(r.Context(), cookie.Value)
			if err != nil {
				WriteAppError(w, err)
				return
			}

			ctx := SetSessionInContext(r.Context(), sess)
			ctx = upstream.WithToken(ctx, sess.Token)
			ctx = service.WithActor(ctx, sess.User.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a subtree on a single role. Runs after RequireSession.
func RequireRole(role domainauth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := SessionFromContext(r.Context())
			if sess == nil {
				WriteAppError(w, sessionExpiredError())
				return
			}
			if sess.User.Role != role {
				WriteError(w, ErrorParams{
					Code:    http.StatusForbidden,
					ErrCode: "forbidden",
					Err:     errForbidden,
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
