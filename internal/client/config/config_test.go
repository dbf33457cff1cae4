package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "http://localhost:5000", cfg.APIEndpointURL)
	require.Equal(t, "ws://localhost:5000/ws", cfg.ChatEndpointURL)
	require.Equal(t, "general", cfg.ChatRoom)
	require.Equal(t, "marketplac.db", cfg.DatabasePath)
	require.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
}

func TestParseJson_OverlaysOnlyPresentFields(t *testing.T) {
	file := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{
		"api_endpoint_url": "http://shop.example.com",
		"online_check_interval": "10s"
	}`), 0o600))

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd", "-c", file}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "http://shop.example.com", cfg.APIEndpointURL)
	require.Equal(t, 10*time.Second, cfg.OnlineCheckInterval)
	// untouched fields keep their defaults
	require.Equal(t, "ws://localhost:5000/ws", cfg.ChatEndpointURL)
	require.Equal(t, "general", cfg.ChatRoom)
}

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "http://localhost:5000", cfg.APIEndpointURL)
}

func TestParseEnv_Overlay(t *testing.T) {
	t.Setenv("MARKETPLAC_API_URL", "http://env.example.com")
	t.Setenv("MARKETPLAC_ONLINE_CHECK_INTERVAL", "7s")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, "http://env.example.com", cfg.APIEndpointURL)
	require.Equal(t, 7*time.Second, cfg.OnlineCheckInterval)
	require.Equal(t, "marketplac.db", cfg.DatabasePath)
}

func TestParseFlags_Overlay(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd", "-a", "http://flag.example.com", "-i", "9"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	require.Equal(t, "http://flag.example.com", cfg.APIEndpointURL)
	require.Equal(t, 9*time.Second, cfg.OnlineCheckInterval)
	require.Equal(t, "ws://localhost:5000/ws", cfg.ChatEndpointURL)
}
