package config

import (
	"os"
	"strings"
)

// AppConfig is the console's configuration, loaded from environment
// variables with github.com/caarlos0/env. Domain-specific sections live in
// their own files:
//   - auth.go: authentication mode, OIDC settings, role gate groups
//   - upstream.go: platform API client settings
//   - database.go: Postgres (audit trail) and Redis (sessions)
//   - http.go: HTTP server settings
//   - undo.go: delayed-delete timings
type AppConfig struct {
	// IsDev relaxes cookie security and enables verbose logging.
	IsDev bool `env:"DEV" envDefault:"false"`

	Auth     AuthConfig
	Upstream UpstreamConfig
	Postgres DBConfig    `envPrefix:"DB_"`
	Redis    RedisConfig `envPrefix:"REDIS_"`
	HTTP     HTTPConfig
	Undo     UndoConfig
}

// Sanitize applies guardrails to values loaded from env. Call it after
// env.Parse.
func (c *AppConfig) Sanitize() {
	c.Upstream.Sanitize()
	c.Undo.Sanitize()
	c.detectDevMode()
}

// detectDevMode also honors NODE_ENV, which the frontend tooling sets.
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
