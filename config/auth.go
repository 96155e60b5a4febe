package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthMode selects how operators sign in to the console.
type AuthMode string

const (
	// AuthModePassword logs in against the platform API with email/password.
	AuthModePassword AuthMode = "password"
	// AuthModeOIDC logs in through the corporate IdP.
	AuthModeOIDC AuthMode = "oidc"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "password", "oidc":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: password, oidc)", v)
	}
}

// OIDCConfig contains the IdP settings used when Mode=oidc.
type OIDCConfig struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	RedirectURL  string `env:"REDIRECT_URL"  envDefault:"http://localhost:8080/api/auth/sso/callback"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email groups"`
	DiscoveryURL string `env:"DISCOVERY_URL"`
}

// AuthConfig groups authentication configuration.
type AuthConfig struct {
	// Mode determines the login flow.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"password"`

	// OIDC configuration (used when Mode=oidc).
	OIDC OIDCConfig `envPrefix:"OIDC_"`

	// AdminGroup and ModeratorGroup are the IdP groups mapped onto the
	// platform roles in SSO mode.
	AdminGroup     string `env:"AUTH_ADMIN_GROUP"     envDefault:""`
	ModeratorGroup string `env:"AUTH_MODERATOR_GROUP" envDefault:""`

	// SessionTTL is the lifetime of password-login sessions.
	SessionTTL time.Duration `env:"AUTH_SESSION_TTL" envDefault:"12h"`
}
