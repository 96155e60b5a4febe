package config

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address the console binds to.
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`

	// BaseURL is the console's external URL, used for SSO redirects.
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`

	// SecureCookies marks session cookies Secure. Enable behind TLS.
	SecureCookies bool `env:"HTTP_SECURE_COOKIES" envDefault:"false"`
}
