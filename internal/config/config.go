package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config aggregates process configuration from env vars and an optional
// config file. All state is in-memory, so there is nothing to configure
// beyond the listen address, the dev credential, and the observability
// toggles.
type Config struct {
	Server struct {
		Addr string
	}
	Auth struct {
		// Password is the shared development credential accepted for
		// every seeded user.
		Password string
	}
	Metrics struct {
		Enabled bool
		Token   string
	}
	Portal struct {
		WebViewURL string
	}
	Features struct {
		Telemetry bool
		Advanced  bool
	}
}

// Load reads configuration with SHOPDEMO_-prefixed env vars taking
// precedence over an optional ./config.yaml.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SHOPDEMO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("auth.password", "password")
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.token", "")
	v.SetDefault("portal.webviewurl", "http://10.0.2.2:5000")
	v.SetDefault("features.telemetry", true)
	v.SetDefault("features.advanced", false)

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
