package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig loads configuration from file using viper.
// Environment > config file > defaults precedence.
func LoadConfig(configPath string) (*ClientConfig, error) {
	v := viper.New()

	// Defaults matching DefaultClientConfig
	v.SetDefault("base_url", "https://rulebricks.com/api/v1")
	v.SetDefault("request_timeout", "30s")
	v.SetDefault("max_retries", 2)
	v.SetDefault("log_level", "info")

	// Bind environment variables with RULEFORGE_ prefix
	v.SetEnvPrefix("RULEFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Security check: the API key must come from the environment, never a
	// config file that may end up in version control.
	if err := validateNoSecretsInConfig(v, configPath); err != nil {
		return nil, err
	}

	cfg := &ClientConfig{
		APIKey:         v.GetString("api_key"),
		BaseURL:        v.GetString("base_url"),
		RequestTimeout: v.GetDuration("request_timeout"),
		MaxRetries:     v.GetInt("max_retries"),
		LogLevel:       v.GetString("log_level"),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateConfig checks the endpoint URL and positive timeout/retry values.
func validateConfig(cfg *ClientConfig) error {
	if cfg.APIKey == "" {
		return fmt.Errorf("api key missing (set RULEFORGE_API_KEY)")
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL, got %q", cfg.BaseURL)
	}
	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %v", cfg.RequestTimeout)
	}
	if cfg.MaxRetries < 0 {
		return fmt.Errorf("max_retries must not be negative, got %d", cfg.MaxRetries)
	}
	return nil
}

// validateNoSecretsInConfig enforces environment-only secrets.
func validateNoSecretsInConfig(v *viper.Viper, configPath string) error {
	if configPath == "" {
		return nil
	}
	file := viper.New()
	file.SetConfigFile(configPath)
	if err := file.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if file.IsSet("api_key") {
		return fmt.Errorf("api keys not allowed in config files (use RULEFORGE_API_KEY environment variable)")
	}
	return nil
}
