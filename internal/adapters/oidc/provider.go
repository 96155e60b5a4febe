// Package oidc implements SSO login for the console against a corporate IdP.
//
// The console's primary auth mode is password login against the platform
// API; this provider backs the optional AUTH_MODE=oidc deployment where
// operators sign in through the company IdP and the role gate maps group
// membership onto platform roles.
package oidc

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	domainauth "github.com/sikayet/console-api/internal/domain/auth"
	"github.com/sikayet/console-api/internal/ports"
)

// Provider implements ports.SSOProvider on top of go-oidc and oauth2.
type Provider struct {
	config     *oauth2.Config
	httpClient *http.Client

	oidcProvider *gooidc.Provider
	verifier     *gooidc.IDTokenVerifier
}

// ProviderConfig holds the IdP settings.
type ProviderConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scope        string
	DiscoveryURL string
	HTTPClient   *http.Client // optional
}

// NewProvider creates a provider. It performs a single discovery fetch
// against the IdP, so it needs network access at construction time.
func NewProvider(cfg ProviderConfig) (*Provider, error) {
	if cfg.ClientID == "" {
		return nil, errors.New("client ID is required")
	}
	if cfg.ClientSecret == "" {
		return nil, errors.New("client secret is required")
	}
	if cfg.RedirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}
	if cfg.DiscoveryURL == "" {
		return nil, errors.New("discovery URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
	issuer := strings.TrimSuffix(cfg.DiscoveryURL, "/")
	issuer = strings.TrimSuffix(issuer, "/.well-known/openid-configuration")
	op, err := gooidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("oidc discovery: %w", err)
	}

	p := &Provider{
		httpClient:   httpClient,
		oidcProvider: op,
		verifier:     op.Verifier(&gooidc.Config{ClientID: cfg.ClientID}),
	}
	p.config = &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       strings.Fields(cfg.Scope),
		Endpoint:     op.Endpoint(),
	}
	return p, nil
}

// Begin starts the login flow: it generates a fresh state and nonce and
// returns the IdP authorization URL the browser should be sent to.
func (p *Provider) Begin(_ context.Context, in ports.BeginInput) (string, string, string, error) {
	if in.RedirectURL == "" {
		return "", "", "", errors.New("redirect URL is required")
	}

	state, err := randomToken(32)
	if err != nil {
		return "", "", "", fmt.Errorf("generate state: %w", err)
	}
	nonce, err := randomToken(32)
	if err != nil {
		return "", "", "", fmt.Errorf("generate nonce: %w", err)
	}

	authURL := p.config.AuthCodeURL(state,
		oauth2.SetAuthURLParam("nonce", nonce),
		oauth2.SetAuthURLParam("response_type", "code"),
	)
	return authURL, state, nonce, nil
}

// Exchange completes the login flow: it redeems the authorization code,
// verifies the ID token against the stored nonce, and returns the identity.
func (p *Provider) Exchange(ctx context.Context, in ports.ExchangeInput) (domainauth.Identity, error) {
	if in.Code == "" {
		return domainauth.Identity{}, errors.New("authorization code is required")
	}
	if in.Nonce == "" {
		return domainauth.Identity{}, errors.New("nonce is required")
	}

	token, err := p.config.Exchange(ctx, in.Code)
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("exchange code: %w", err)
	}

	claims, err := p.verifyIDToken(ctx, token, in.Nonce)
	if err != nil {
		return domainauth.Identity{}, err
	}

	// UserInfo backfills deployments where the IdP keeps profile claims
	// out of the ID token.
	if claims.Email == "" || claims.Subject == "" {
		if uiErr := p.fillFromUserInfo(ctx, token.AccessToken, &claims); uiErr != nil {
			return domainauth.Identity{}, fmt.Errorf("user info: %w", uiErr)
		}
	}

	expiresAt := time.Now().Add(time.Hour)
	if !token.Expiry.IsZero() {
		expiresAt = token.Expiry
	}

	return domainauth.Identity{
		UserID:      firstNonEmpty(claims.PreferredUsername, claims.Subject),
		Email:       claims.Email,
		FirstName:   claims.GivenName,
		LastName:    claims.FamilyName,
		Groups:      claims.Groups,
		AccessToken: token.AccessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

// idClaims covers the standard OIDC profile claims the console consumes.
type idClaims struct {
	Subject           string   `json:"sub"`
	PreferredUsername string   `json:"preferred_username"`
	Email             string   `json:"email"`
	GivenName         string   `json:"given_name"`
	FamilyName        string   `json:"family_name"`
	Groups            []string `json:"groups"`
	Nonce             string   `json:"nonce"`
}

func (p *Provider) verifyIDToken(ctx context.Context, tok *oauth2.Token, expectedNonce string) (idClaims, error) {
	var claims idClaims
	rawID, ok := tok.Extra("id_token").(string)
	if !ok || rawID == "" {
		return claims, errors.New("missing id_token in token response")
	}
	idTok, err := p.verifier.Verify(ctx, rawID)
	if err != nil {
		return claims, fmt.Errorf("verify id_token: %w", err)
	}
	if err := idTok.Claims(&claims); err != nil {
		return claims, fmt.Errorf("parse id_token claims: %w", err)
	}
	if claims.Nonce != expectedNonce {
		return claims, errors.New("invalid nonce")
	}
	return claims, nil
}

func (p *Provider) fillFromUserInfo(ctx context.Context, accessToken string, claims *idClaims) error {
	ui, err := p.oidcProvider.UserInfo(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}))
	if err != nil {
		return err
	}
	var extra idClaims
	if err := ui.Claims(&extra); err != nil {
		return err
	}
	if claims.Subject == "" {
		claims.Subject = extra.Subject
	}
	if claims.PreferredUsername == "" {
		claims.PreferredUsername = extra.PreferredUsername
	}
	if claims.Email == "" {
		claims.Email = extra.Email
	}
	if claims.GivenName == "" {
		claims.GivenName = extra.GivenName
	}
	if claims.FamilyName == "" {
		claims.FamilyName = extra.FamilyName
	}
	if len(claims.Groups) == 0 {
		claims.Groups = extra.Groups
	}
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// randomToken returns a URL-safe random string of exactly n characters.
func randomToken(n int) (string, error) {
	if n <= 0 {
		return "", nil
	}
	b := make([]byte, (n*3+3)/4+1)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b)[:n], nil
}
