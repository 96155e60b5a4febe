package httpx

import (
	"context"
	"net/http"

	domainauth "github.com/sikayet/console-api/internal/domain/auth"
)

// SessionCookieName is the browser cookie carrying the console session ID.
const SessionCookieName = "session_id"

type sessionKey struct{}

// SetSessionInContext stamps the resolved session onto ctx.
func SetSessionInContext(ctx context.Context, sess *domainauth.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// SessionFromContext returns the session placed by RequireSession, or nil.
func SessionFromContext(ctx context.Context) *domainauth.Session {
	if sess, ok := ctx.Value(sessionKey{}).(*domainauth.Session); ok {
		return sess
	}
	return nil
}

// SetSessionCookie writes the session cookie. HttpOnly keeps the ID away
// from page scripts; SameSite=Lax covers the console's same-origin calls.
func SetSessionCookie(w http.ResponseWriter, sessionID string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
