// Package config defines the environment variable and command-line flags
// supported by this SDK and includes default values for particular
// fields.
package config

import (
	"sync"
	"time"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Environment names resolved by Host.
const (
	EnvSandbox    = "sandbox"
	EnvProduction = "production"
)

const (
	sandboxHost    = "homologation-payment.payline.com"
	productionHost = "payment.payline.com"
)

// Config defines the configuration options for this SDK.
type Config struct {
	Environment              string        `env:"CHECKOUT_ENVIRONMENT"       flag:"environment"       flagDesc:"Gateway environment: sandbox, production, or a custom hostname"`
	Locale                   string        `env:"CHECKOUT_LOCALE"            flag:"locale"            flagDesc:"Language sent as Accept-Language and to the 3DS engine"`
	ThreeDSAPIKey            string        `env:"CHECKOUT_THREEDS_API_KEY"   flag:"threeds-api-key"   flagDesc:"API key for the native 3DS2 engine"`
	HTTPTimeout              time.Duration `env:"CHECKOUT_HTTP_TIMEOUT"      flag:"http-timeout"      flagDesc:"Timeout for gateway round-trips"`
	ActiveWaitingInterval    time.Duration `env:"CHECKOUT_POLL_INTERVAL"     flag:"poll-interval"     flagDesc:"Fixed interval between active-waiting polls"`
	ActiveWaitingMaxAttempts int           `env:"CHECKOUT_POLL_MAX_ATTEMPTS" flag:"poll-max-attempts" flagDesc:"Upper bound on active-waiting polls before giving up"`
	ScreenHeight             int           `env:"CHECKOUT_SCREEN_HEIGHT"     flag:"screen-height"     flagDesc:"Device screen height reported in device fingerprints"`
	ScreenWidth              int           `env:"CHECKOUT_SCREEN_WIDTH"      flag:"screen-width"      flagDesc:"Device screen width reported in device fingerprints"`
	ContainerHeight          float64       `env:"CHECKOUT_CONTAINER_HEIGHT"  flag:"container-height"  flagDesc:"Rendering container height reported in device fingerprints"`
	ContainerWidth           float64       `env:"CHECKOUT_CONTAINER_WIDTH"   flag:"container-width"   flagDesc:"Rendering container width reported in device fingerprints"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		Environment:              EnvSandbox,
		Locale:                   "en",
		HTTPTimeout:              30 * time.Second,
		ActiveWaitingInterval:    3 * time.Second,
		ActiveWaitingMaxAttempts: 100,
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Host resolves the configured environment to a gateway hostname. Custom
// values are treated as hostnames verbatim.
func (c *Config) Host() string {
	switch c.Environment {
	case EnvSandbox:
		return sandboxHost
	case EnvProduction:
		return productionHost
	default:
		return c.Environment
	}
}

// IsSandbox reports whether the configured environment should use the
// non-production scheme resolution policy. Custom hosts count as sandbox.
func (c *Config) IsSandbox() bool {
	return c.Environment != EnvProduction
}
