package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultAPIToken is the fallback shared secret used when API_TOKEN is not
// set. Deployments are expected to override it; main logs a warning when
// the fallback is in use.
const DefaultAPIToken = "screen-time-secret"

// Config holds the bridge configuration. It is loaded once at startup and
// passed into the constructors that need it; there is no ambient global
// state.
type Config struct {
	// HTTPPort is the TCP port the bridge listens on (all interfaces).
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	// APIToken is the bearer token required on every route except /health.
	APIToken string `env:"API_TOKEN" envDefault:"screen-time-secret"`

	// DaemonAddr is the base URL of the local firewall daemon's internal
	// v1 API.
	DaemonAddr string `env:"DAEMON_ADDR" envDefault:"http://127.0.0.1:8181"`

	// DaemonTimeout bounds each firewall daemon call so a hung daemon
	// cannot hang the request.
	DaemonTimeout time.Duration `env:"DAEMON_TIMEOUT" envDefault:"5s"`

	// RedisAddr is the address of the local Redis instance holding policy
	// metadata.
	RedisAddr string `env:"REDIS_ADDR" envDefault:"127.0.0.1:6379"`
}

// LoadConfig loads configuration from environment variables, falling back
// to the defaults above for anything unset.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
