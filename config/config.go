// Package config provides configuration management for the application.
package config

import (
	"net"
	"os"

	"github.com/spf13/viper"
)

// DefaultBodySizeLimit is the maximum request body size in bytes (10MB).
const DefaultBodySizeLimit int64 = 10 << 20

// KeyFunc returns a vendor API key, re-reading the environment on every
// call. A key exported mid-session takes effect on the next request; a
// missing key only fails requests targeting that vendor.
type KeyFunc func() string

// EnvKey returns a KeyFunc that reads the named environment variable.
func EnvKey(name string) KeyFunc {
	return func() string { return os.Getenv(name) }
}

// Config holds the application configuration
type Config struct {
	Server  ServerConfig
	Metrics MetricsConfig
	Logging LoggingConfig
	Secrets Secrets
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host          string
	Port          string
	BodySizeLimit int64
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// MetricsConfig holds the optional Prometheus endpoint settings.
type MetricsConfig struct {
	Enabled  bool
	Endpoint string
}

// LoggingConfig holds process logging settings.
type LoggingConfig struct {
	// Format is "json" or "text".
	Format string
}

// Secrets holds the per-vendor API key lookups.
type Secrets struct {
	OpenAI   KeyFunc
	Claude   KeyFunc
	Gemini   KeyFunc
	DeepSeek KeyFunc
}

// Load reads configuration from an optional .env file and the environment.
func Load() (*Config, error) {
	// Load .env file using Viper (optional, won't fail if not found)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig()

	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("BODY_SIZE_LIMIT", DefaultBodySizeLimit)
	viper.SetDefault("METRICS_ENABLED", false)
	viper.SetDefault("METRICS_ENDPOINT", "/metrics")

	// Enable automatic environment variable reading
	viper.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host:          viper.GetString("HOST"),
			Port:          viper.GetString("PORT"),
			BodySizeLimit: viper.GetInt64("BODY_SIZE_LIMIT"),
		},
		Metrics: MetricsConfig{
			Enabled:  viper.GetBool("METRICS_ENABLED"),
			Endpoint: viper.GetString("METRICS_ENDPOINT"),
		},
		Logging: LoggingConfig{
			Format: viper.GetString("LOG_FORMAT"),
		},
		// Secrets are deliberately lookup functions, not captured strings:
		// adapters read the key per call.
		Secrets: Secrets{
			OpenAI:   EnvKey("OPENAI_API_KEY"),
			Claude:   EnvKey("CLAUDE_API_KEY"),
			Gemini:   EnvKey("GEMINI_API_KEY"),
			DeepSeek: EnvKey("DEEPSEEK_API_KEY"),
		},
	}

	return cfg, nil
}
