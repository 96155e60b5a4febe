package config

// DBConfig contains the PostgreSQL settings for the audit trail. The console
// runs without Postgres when Enabled is false; auditing then becomes a no-op.
type DBConfig struct {
	Enabled  bool   `env:"ENABLED"  envDefault:"true"`
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"console"`
	Password string `env:"PASSWORD" envDefault:"console"`
	Name     string `env:"NAME"     envDefault:"console"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"`
	// RunMigrationsOnStart applies pending migrations during startup.
	RunMigrationsOnStart bool `env:"RUN_MIGRATIONS_ON_START" envDefault:"true"`
}

// RedisConfig contains the Redis settings for session storage. When Redis is
// unreachable the session store falls back to in-process memory.
type RedisConfig struct {
	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:"localhost:26379"`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
	// KeyPrefix overrides the default session key prefix.
	KeyPrefix string `env:"KEY_PREFIX" envDefault:""`
}
