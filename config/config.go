// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for this service.
type Config struct {
	BindAddr string `env:"BIND_ADDR" flag:"bind-addr" flagDesc:"Bind address"`
	// DemoMode switches onboarding to fabricated, test-mode-verifiable KYC
	// data and unlocks the onboarding skip. Must never be enabled against
	// live Stripe keys.
	DemoMode          bool   `env:"DEMO_MODE"            flag:"demo-mode"            flagDesc:"Fill onboarding with fabricated test-mode KYC data"`
	WebURL            string `env:"WEB_URL"              flag:"web-url"              flagDesc:"Base URL for the demo web app"`
	StripeUSSecretKey string `env:"STRIPE_US_SECRET_KEY" flag:"stripe-us-secret-key" flagDesc:"Secret key for the US platform account"`
	StripeEUSecretKey string `env:"STRIPE_EU_SECRET_KEY" flag:"stripe-eu-secret-key" flagDesc:"Secret key for the EU platform account"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		BindAddr: ":4242",
		WebURL:   "http://localhost:3000",
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
