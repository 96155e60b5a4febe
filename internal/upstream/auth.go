package upstream

import (
	"context"
	"net/http"

	domainauth "github.com/sikayet/console-api/internal/domain/auth"
)

// LoginRequest is the upstream credential payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthAPI exposes the upstream authentication endpoint.
type AuthAPI struct{ c *Client }

// Auth returns the authentication endpoint group.
func (c *Client) Auth() *AuthAPI { return &AuthAPI{c: c} }

// Login authenticates against the platform. The call is anonymous; no bearer
// header is attached unless the caller put a token in ctx.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (*domainauth.LoginResult, error) {
	var out domainauth.LoginResult
	err := a.c.do(ctx, http.MethodPost, "/api/auth/login", LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
