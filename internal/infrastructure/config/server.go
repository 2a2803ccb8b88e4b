package config

import "time"

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Host to bind the HTTP server
	Host string `mapstructure:"host"`

	// Port for the HTTP server
	Port int `mapstructure:"port" validate:"required,min=1,max=65535"`

	// CORS allowed origins ("*" allows any)
	AllowedOrigins []string `mapstructure:"allowed_origins"`

	// Read timeout for incoming requests
	ReadTimeout time.Duration `mapstructure:"read_timeout" validate:"required"`

	// Write timeout for outgoing responses
	WriteTimeout time.Duration `mapstructure:"write_timeout" validate:"required"`

	// Graceful shutdown timeout
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required"`

	// PID file path for single-instance enforcement
	PIDFile string `mapstructure:"pid_file"`
}
