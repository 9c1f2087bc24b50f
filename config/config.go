// Package config provides configuration management for ruleforge clients.
package config

import "time"

// ClientConfig holds configuration for the hosted service client.
type ClientConfig struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
	MaxRetries     int
	LogLevel       string
}

// DefaultClientConfig returns configuration with default values.
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:        "https://rulebricks.com/api/v1",
		RequestTimeout: 30 * time.Second,
		MaxRetries:     2,
		LogLevel:       "info",
	}
}
