package config

import "time"

// DirectionsConfig holds route provider configuration
type DirectionsConfig struct {
	// Mapbox Directions API access token (empty disables the provider)
	MapboxToken string `mapstructure:"mapbox_token"`

	// OpenRouteService API key (empty disables the provider)
	ORSAPIKey string `mapstructure:"ors_api_key"`

	// Request timeout per provider call
	Timeout time.Duration `mapstructure:"timeout" validate:"required"`

	// Rate limiting shared across all providers
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	// Maximum requests per second
	Requests int `mapstructure:"requests" validate:"min=1"`

	// Burst size for token bucket
	Burst int `mapstructure:"burst" validate:"min=1"`
}
