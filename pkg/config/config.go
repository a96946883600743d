package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	Backend BackendConfig
	State   StateConfig
	Payment PaymentConfig
	CORS    CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.State.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BOOKSTORE_APP_ENV" required:"true"`
	Port         string `envconfig:"BOOKSTORE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"BOOKSTORE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BOOKSTORE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// BackendConfig points at the bookstore REST API everything is delegated to.
type BackendConfig struct {
	BaseURL string        `envconfig:"BOOKSTORE_BACKEND_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"BOOKSTORE_BACKEND_TIMEOUT" default:"10s"`
}

// StateConfig selects where the cart and session snapshots are persisted.
type StateConfig struct {
	Backend  string `envconfig:"BOOKSTORE_STATE_BACKEND" default:"file"`
	Dir      string `envconfig:"BOOKSTORE_STATE_DIR" default:".bookstore"`
	RedisURL string `envconfig:"BOOKSTORE_STATE_REDIS_URL"`
}

func (s StateConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(s.Backend)) {
	case StateBackendFile, StateBackendMemory:
		return nil
	case StateBackendRedis:
		if strings.TrimSpace(s.RedisURL) == "" {
			return fmt.Errorf("%s is required when the state backend is %q", EnvStateRedisURL, StateBackendRedis)
		}
		return nil
	default:
		return fmt.Errorf("unknown state backend %q", s.Backend)
	}
}

// Kind returns the normalized state backend name.
func (s StateConfig) Kind() string {
	return strings.ToLower(strings.TrimSpace(s.Backend))
}

// PaymentConfig carries the VNPay redirect wiring the checkout flow needs.
type PaymentConfig struct {
	ReturnURL string `envconfig:"BOOKSTORE_PAYMENT_RETURN_URL" default:"http://localhost:3000/payment/success"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"BOOKSTORE_CORS_ALLOWED_ORIGINS" default:"*"`
}
