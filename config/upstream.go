package config

import (
	"os"
	"strings"
	"time"
)

// UpstreamConfig contains the platform API client settings.
type UpstreamConfig struct {
	// BaseURL is the platform API root, without a trailing slash.
	BaseURL string `env:"UPSTREAM_BASE_URL" envDefault:"http://localhost:3000"`

	// Timeout bounds each upstream request.
	Timeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"30s"`
}

// Sanitize applies guardrails and honors the legacy variable names earlier
// console versions used.
func (u *UpstreamConfig) Sanitize() {
	// Legacy deployments configured the API root as API_URL or
	// REACT_APP_API_URL; keep reading them when the new name is unset.
	if os.Getenv("UPSTREAM_BASE_URL") == "" {
		for _, legacy := range []string{"API_URL", "REACT_APP_API_URL"} {
			if v := os.Getenv(legacy); v != "" {
				u.BaseURL = v
				break
			}
		}
	}
	u.BaseURL = strings.TrimRight(u.BaseURL, "/")

	if u.Timeout <= 0 {
		u.Timeout = 30 * time.Second
	}
}
