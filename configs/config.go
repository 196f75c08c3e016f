package configs

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// DefaultAnkiConnectURL is the endpoint AnkiConnect listens on out of the box.
const DefaultAnkiConnectURL = "http://localhost:8765"

// FileConfig defines the structure loaded from the optional YAML
// configuration file.
type FileConfig struct {
	AnkiConnectURL string   `yaml:"anki_connect_url,omitempty"`
	APIKey         string   `yaml:"api_key,omitempty"`
	DisabledGroups []string `yaml:"disabled_groups,omitempty"`
}

// Config holds the final application configuration, merged from file and
// environment variables. Fields are loaded from environment variables with
// the prefix "ANKIBRIDGE_", overriding file settings.
type Config struct {
	// Config file path (loaded first from env). Empty means no file.
	ConfigFilePath string `envconfig:"CONFIG_FILE"`

	// AnkiConnectURL is the fixed endpoint every invocation goes to. It is
	// read once at startup and never mutated. The default is applied in
	// Load, not via a tag: a tagged default would clobber the file value on
	// the env-override pass.
	AnkiConnectURL string `envconfig:"ANKI_CONNECT_URL"`

	// APIKey is AnkiConnect's optional key parameter; empty disables it.
	APIKey string `envconfig:"API_KEY"`

	// ProtocolVersion is the AnkiConnect API version sent with every request.
	ProtocolVersion int `envconfig:"PROTOCOL_VERSION" default:"6"`

	// DisabledGroups hides whole catalogue groups (e.g. "gui") from the
	// served tool set.
	DisabledGroups []string `envconfig:"DISABLED_GROUPS"`

	ListenAddr        string        `envconfig:"LISTEN_ADDR" default:":8080"`
	HTTPClientTimeout time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"30s"`
	ShutdownTimeout   time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`

	OtelExporterOtlpEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelExporterOtlpInsecure bool   `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
	LogLevel                 string `envconfig:"LOG_LEVEL" default:"info"`
}

// ParsedLogLevel returns the slog.Level based on the configured LogLevel string.
func (c *Config) ParsedLogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info":
		fallthrough
	default:
		return slog.LevelInfo
	}
}

// Load loads configuration first from environment variables (to get the file
// path), then from the YAML file if one is specified, and finally applies
// environment variables again so they win over file settings.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("ankibridge", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if cfg.ConfigFilePath != "" {
		yamlFile, err := os.ReadFile(cfg.ConfigFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file '%s': %w", cfg.ConfigFilePath, err)
		}
		var fileCfg FileConfig
		if err := yaml.Unmarshal(yamlFile, &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file '%s': %w", cfg.ConfigFilePath, err)
		}
		if fileCfg.AnkiConnectURL != "" {
			cfg.AnkiConnectURL = fileCfg.AnkiConnectURL
		}
		if fileCfg.APIKey != "" {
			cfg.APIKey = fileCfg.APIKey
		}
		if len(fileCfg.DisabledGroups) > 0 {
			cfg.DisabledGroups = fileCfg.DisabledGroups
		}

		// Env vars override file settings.
		if err := envconfig.Process("ankibridge", &cfg); err != nil {
			return nil, fmt.Errorf("failed to process overriding environment variables: %w", err)
		}
	}

	if cfg.AnkiConnectURL == "" {
		cfg.AnkiConnectURL = DefaultAnkiConnectURL
	}

	return &cfg, nil
}
