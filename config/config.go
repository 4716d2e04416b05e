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
	BindAddr          string `env:"BIND_ADDR"            flag:"bind-addr"            flagDesc:"Bind address"`
	Collection        string `env:"MONGODB_COLLECTION"   flag:"mongodb-collection"   flagDesc:"MongoDB collection for transaction data"`
	Database          string `env:"MONGODB_DATABASE"     flag:"mongodb-database"     flagDesc:"MongoDB database for transaction data"`
	MongoDBURL        string `env:"MONGODB_URL"          flag:"mongodb-url"          flagDesc:"MongoDB server URL"`
	EasyEnvironment   string `env:"EASY_ENVIRONMENT"     flag:"easy-environment"     flagDesc:"Easy environment (test or live)"`
	EasySecretKey     string `env:"EASY_SECRET_KEY"      flag:"easy-secret-key"      flagDesc:"Secret key used to authorise API calls to Easy"`
	TermsURL          string `env:"TERMS_URL"            flag:"terms-url"            flagDesc:"Terms and conditions URL sent with every checkout"`
	ChargeNow         string `env:"CHARGE_NOW"           flag:"charge-now"           flagDesc:"Set to yes to capture payments immediately"`
	CheckoutFinishURL string `env:"CHECKOUT_FINISH_URL"  flag:"checkout-finish-url"  flagDesc:"Finish page URL for embedded checkouts"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		Database:   "checkout",
		Collection: "transactions",
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
