package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	Session SessionConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FORGEFRONT_APP_ENV" required:"true"`
	Port         string `envconfig:"FORGEFRONT_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"FORGEFRONT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FORGEFRONT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type SessionConfig struct {
	CookieName    string        `envconfig:"FORGEFRONT_SESSION_COOKIE" default:"forgefront_session"`
	CookieSecure  bool          `envconfig:"FORGEFRONT_SESSION_COOKIE_SECURE" default:"false"`
	TTL           time.Duration `envconfig:"FORGEFRONT_SESSION_TTL" default:"30m"`
	SweepInterval time.Duration `envconfig:"FORGEFRONT_SESSION_SWEEP_INTERVAL" default:"5m"`
}
