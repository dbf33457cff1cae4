package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors Config for the environment layer. Pointer fields
// distinguish "unset" from "set to the zero value" so the overlay only
// touches variables that are actually present.
type envConfig struct {
	APIEndpointURL      *string        `env:"MARKETPLAC_API_URL"`
	ChatEndpointURL     *string        `env:"MARKETPLAC_CHAT_URL"`
	CheckoutPageURL     *string        `env:"MARKETPLAC_CHECKOUT_URL"`
	ChatRoom            *string        `env:"MARKETPLAC_CHAT_ROOM"`
	DatabasePath        *string        `env:"MARKETPLAC_DATABASE_PATH"`
	OnlineCheckInterval *time.Duration `env:"MARKETPLAC_ONLINE_CHECK_INTERVAL"`
}

// parseEnv overlays cfg with values from environment variables. Panics on a
// malformed value, matching the fail-fast behavior of the other layers.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.APIEndpointURL != nil {
		cfg.APIEndpointURL = *ec.APIEndpointURL
	}
	if ec.ChatEndpointURL != nil {
		cfg.ChatEndpointURL = *ec.ChatEndpointURL
	}
	if ec.CheckoutPageURL != nil {
		cfg.CheckoutPageURL = *ec.CheckoutPageURL
	}
	if ec.ChatRoom != nil {
		cfg.ChatRoom = *ec.ChatRoom
	}
	if ec.DatabasePath != nil {
		cfg.DatabasePath = *ec.DatabasePath
	}
	if ec.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = *ec.OnlineCheckInterval
	}
}
