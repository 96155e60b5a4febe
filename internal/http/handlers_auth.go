package httpx

import (
	"errors"
	"net/http"

	"github.com/sikayet/console-api/internal/notify"
	"github.com/sikayet/console-api/internal/ports"
	"github.com/sikayet/console-api/internal/service"
)

const (
	ssoStateCookie = "sso_state"
	ssoNonceCookie = "sso_nonce"
)

var errInvalidSSOState = errors.New("SSO state mismatch. Please retry the sign-in.")

// AuthHandler serves login, logout, and the session probe.
type AuthHandler struct {
	svc    *service.AuthService
	hub    *notify.Hub
	secure bool
	// cleanup funcs drop per-session handler state on logout.
	cleanup []func(sessionID string)
	// redirectURL is the SSO callback URL registered with the IdP.
	redirectURL string
}

// AuthHandlerOptions groups dependencies for AuthHandler.
type AuthHandlerOptions struct {
	Service        *service.AuthService
	Hub            *notify.Hub
	SecureCookies  bool
	SessionCleanup []func(sessionID string)
	SSORedirectURL string
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(opts AuthHandlerOptions) *AuthHandler {
	return &AuthHandler{
		svc:         opts.Service,
		hub:         opts.Hub,
		secure:      opts.SecureCookies,
		cleanup:     opts.SessionCleanup,
		redirectURL: opts.SSORedirectURL,
	}
}

// Register mounts the auth routes. Login and the SSO flow are unauthenticated;
// everything else in the console sits behind RequireSession.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/login", h.login)
	mux.HandleFunc("POST /api/auth/logout", h.logout)
	mux.HandleFunc("GET /api/auth/sso/login", h.ssoLogin)
	mux.HandleFunc("GET /api/auth/sso/callback", h.ssoCallback)
}

// RegisterSession mounts the authenticated session probe.
func (h *AuthHandler) RegisterSession(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/auth/session", h.session)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	sess, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	SetSessionCookie(w, sess.ID, h.secure)
	WriteJSON(w, http.StatusOK, map[string]any{"user": sess.User})
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if logoutErr := h.svc.Logout(r.Context(), cookie.Value); logoutErr != nil {
			WriteAppError(w, logoutErr)
			return
		}
		h.hub.Remove(cookie.Value)
		for _, fn := range h.cleanup {
			fn(cookie.Value)
		}
	}
	ClearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) session(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	if sess == nil {
		WriteAppError(w, sessionExpiredError())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"user": sess.User})
}

func (h *AuthHandler) ssoLogin(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.BeginSSO(r.Context(), h.redirectURL)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	// State and nonce ride in short-lived cookies for the callback check.
	h.setFlowCookie(w, ssoStateCookie, res.State)
	h.setFlowCookie(w, ssoNonceCookie, res.Nonce)
	http.Redirect(w, r, res.AuthURL, http.StatusFound)
}

func (h *AuthHandler) ssoCallback(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	stateCookie, err := r.Cookie(ssoStateCookie)
	if err != nil || state == "" || stateCookie.Value != state {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_state",
			Err:     errInvalidSSOState,
		})
		return
	}
	nonceCookie, err := r.Cookie(ssoNonceCookie)
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_state",
			Err:     errInvalidSSOState,
		})
		return
	}

	sess, err := h.svc.CompleteSSO(r.Context(), ports.ExchangeInput{
		Code:  r.URL.Query().Get("code"),
		State: state,
		Nonce: nonceCookie.Value,
	})
	if err != nil {
		WriteAppError(w, err)
		return
	}

	h.clearFlowCookie(w, ssoStateCookie)
	h.clearFlowCookie(w, ssoNonceCookie)
	SetSessionCookie(w, sess.ID, h.secure)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *AuthHandler) setFlowCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/api/auth/sso",
		HttpOnly: true,
		Secure:   h.secure,
		MaxAge:   300,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearFlowCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/api/auth/sso",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
