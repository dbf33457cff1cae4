package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/marketplac/internal/flagx"
	"github.com/dmitrijs2005/marketplac/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "3s"
// or as integer nanoseconds.
type JsonConfig struct {
	APIEndpointURL      string         `json:"api_endpoint_url"`
	ChatEndpointURL     string         `json:"chat_endpoint_url"`
	CheckoutPageURL     string         `json:"checkout_page_url"`
	ChatRoom            string         `json:"chat_room"`
	DatabasePath        string         `json:"database_path"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flag. When the flag is absent nothing is loaded. Only fields
// present in the file override the current values. Panics on read or
// unmarshal errors, matching the fail-fast behavior of the other layers.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIEndpointURL != "" {
		cfg.APIEndpointURL = jc.APIEndpointURL
	}
	if jc.ChatEndpointURL != "" {
		cfg.ChatEndpointURL = jc.ChatEndpointURL
	}
	if jc.CheckoutPageURL != "" {
		cfg.CheckoutPageURL = jc.CheckoutPageURL
	}
	if jc.ChatRoom != "" {
		cfg.ChatRoom = jc.ChatRoom
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.OnlineCheckInterval.Duration != 0 {
		cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval.Duration)
	}
}
