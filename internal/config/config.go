package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the server process configuration. OPENAI_API_KEY and
// OPENAI_API_BASE_URL are not part of it; the adapter reads them from
// the environment on every call.
type Config struct {
	Port                   int      `yaml:"port"`
	APIKey                 string   `yaml:"api_key"`
	RateLimit              int      `yaml:"rate_limit"`
	MaxBodyBytes           int64    `yaml:"max_body_bytes"`
	RequestTimeoutSeconds  int      `yaml:"request_timeout_seconds"`
	UpstreamTimeoutSeconds int      `yaml:"upstream_timeout_seconds"`
	AllowedOrigins         []string `yaml:"allowed_origins"`
	LogLevel               string   `yaml:"log_level"`
	LogFormat              string   `yaml:"log_format"`
}

func defaults() Config {
	return Config{
		Port:                   8080,
		RateLimit:              60,
		MaxBodyBytes:           64 * 1024,
		RequestTimeoutSeconds:  65,
		UpstreamTimeoutSeconds: 60,
		AllowedOrigins:         []string{"*"},
		LogLevel:               "info",
		LogFormat:              "text",
	}
}

// RequestTimeout is the whole-request deadline enforced by the middleware chain.
func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// UpstreamTimeout is the HTTP client timeout for the chat-completion call.
func (c Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.UpstreamTimeoutSeconds) * time.Second
}

// Load loads configuration from a YAML file (if path is non-empty),
// then applies TEXTEDITOR_* environment overrides.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"TEXTEDITOR_PORT", &cfg.Port},
		{"TEXTEDITOR_RATE_LIMIT", &cfg.RateLimit},
		{"TEXTEDITOR_REQUEST_TIMEOUT_SECONDS", &cfg.RequestTimeoutSeconds},
		{"TEXTEDITOR_UPSTREAM_TIMEOUT_SECONDS", &cfg.UpstreamTimeoutSeconds},
	}
	for _, e := range ints {
		v := os.Getenv(e.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid %s %q: %w", e.key, v, err)
		}
		*e.dst = n
	}

	if v := os.Getenv("TEXTEDITOR_MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: invalid TEXTEDITOR_MAX_BODY_BYTES %q: %w", v, err)
		}
		cfg.MaxBodyBytes = n
	}
	if v := os.Getenv("TEXTEDITOR_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("TEXTEDITOR_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.AllowedOrigins = origins
	}
	if v := os.Getenv("TEXTEDITOR_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TEXTEDITOR_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	return nil
}

func (c Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: port %d out of range", c.Port)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log_format %q", c.LogFormat)
	}
	return nil
}
