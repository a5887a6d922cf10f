package config

import "time"

// DBConfig contains PostgreSQL database configuration.
type DBConfig struct {
	Host     string `env:"HOST"                    envDefault:"localhost"`
	Port     int    `env:"PORT"                    envDefault:"5432"`
	User     string `env:"USER"                    envDefault:"tradehub"`
	Password string `env:"PASSWORD"                envDefault:"tradehub"`
	Name     string `env:"NAME"                    envDefault:"tradehub"`
	SSLMode  string `env:"SSL_MODE"                envDefault:"disable"` // Use 'disable' for local dev, 'require' for production
	// RunMigrationsOnStart controls whether the application automatically applies migrations during startup.
	RunMigrationsOnStart bool `env:"RUN_MIGRATIONS_ON_START" envDefault:"true"`
}

// RedisConfig contains Redis configuration.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
	// Enabled toggles the Redis-backed listing cache. When false the API
	// serves every request straight from Postgres.
	Enabled bool `env:"ENABLED" envDefault:"true"`
}

// CacheConfig contains cache tuning knobs.
type CacheConfig struct {
	// AppliedJobsTTL is the TTL for a tradesperson's applied-jobs
	// exclusion list. Kept short so new applications surface quickly.
	AppliedJobsTTL time.Duration `env:"CACHE_APPLIED_JOBS_TTL" envDefault:"1m"`
}
