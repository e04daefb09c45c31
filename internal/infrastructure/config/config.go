package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds every runtime setting, populated from the environment.
type Config struct {
	Port     int    `env:"PORT, default=8080"`
	Env      string `env:"APP_ENV, default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret  string        `env:"JWT_SECRET, required"`
	AccessTTL  time.Duration `env:"JWT_ACCESS_TTL, default=1h"`
	RefreshTTL time.Duration `env:"JWT_REFRESH_TTL, default=168h"`

	// ResetURL is the frontend page reset links point at; the token is
	// appended as a query parameter.
	ResetURL string `env:"PASSWORD_RESET_URL, default=http://localhost:3000/reset-password"`

	Mongo MongoConfig `env:", prefix=MONGO_"`
	Redis RedisConfig `env:", prefix=REDIS_"`
	SMTP  SMTPConfig  `env:", prefix=SMTP_"`

	MailWorkers int `env:"MAIL_WORKERS, default=2"`
}

type MongoConfig struct {
	URI      string `env:"URI, default=mongodb://localhost:27017"`
	Database string `env:"DATABASE, default=portfolio"`
}

type RedisConfig struct {
	Addr     string `env:"ADDR, default=localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB, default=0"`
}

// SMTPConfig configures outbound mail. With an empty Host the service falls
// back to logging messages instead of sending them.
type SMTPConfig struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT, default=587"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	From     string `env:"FROM, default=no-reply@portfolio.local"`
}

// Load reads the configuration from the environment.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
