package config

import "time"

// Config holds runtime settings for the MarketPlac CLI.
//
// Fields:
//   - APIEndpointURL: base URL of the storefront HTTP API.
//   - ChatEndpointURL: websocket URL of the live chat channel.
//   - CheckoutPageURL: base URL of the hosted payment page; the checkout
//     session id is appended to it on redirect.
//   - ChatRoom: the single chat room this client participates in.
//   - DatabasePath: path to the local sqlite database holding the
//     persisted credential.
//   - OnlineCheckInterval: how often the client probes server reachability.
type Config struct {
	APIEndpointURL      string
	ChatEndpointURL     string
	CheckoutPageURL     string
	ChatRoom            string
	DatabasePath        string
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIEndpointURL = "http://localhost:5000"
	c.ChatEndpointURL = "ws://localhost:5000/ws"
	c.CheckoutPageURL = "https://checkout.stripe.com/pay"
	c.ChatRoom = "general"
	c.DatabasePath = "marketplac.db"
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
