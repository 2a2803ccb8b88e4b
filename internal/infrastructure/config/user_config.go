package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// UserConfig represents user preferences stored in ~/.tripplan/config.json
// This file stores ONLY preferences, never tokens or secrets
type UserConfig struct {
	// Default driver ID to use when not specified via CLI
	DefaultDriverID *uint `json:"default_driver_id,omitempty"`

	// Server URL the CLI talks to when not specified via flag
	ServerURL string `json:"server_url,omitempty"`
}

// UserConfigHandler manages loading and saving user configuration
type UserConfigHandler struct {
	configPath string
}

// NewUserConfigHandler creates a new user config handler
func NewUserConfigHandler() (*UserConfigHandler, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".tripplan")
	configPath := filepath.Join(configDir, "config.json")

	// Ensure config directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	return &UserConfigHandler{
		configPath: configPath,
	}, nil
}

// Load reads the user config from disk
func (h *UserConfigHandler) Load() (*UserConfig, error) {
	// If file doesn't exist, return empty config
	if _, err := os.Stat(h.configPath); os.IsNotExist(err) {
		return &UserConfig{}, nil
	}

	data, err := os.ReadFile(h.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read user config: %w", err)
	}

	var config UserConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse user config: %w", err)
	}

	return &config, nil
}

// Save writes the user config to disk
func (h *UserConfigHandler) Save(config *UserConfig) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal user config: %w", err)
	}

	if err := os.WriteFile(h.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write user config: %w", err)
	}

	return nil
}

// SetDefaultDriver sets the default driver ID
func (h *UserConfigHandler) SetDefaultDriver(driverID uint) error {
	config, err := h.Load()
	if err != nil {
		return err
	}

	config.DefaultDriverID = &driverID
	return h.Save(config)
}

// ClearDefaultDriver removes the default driver setting
func (h *UserConfigHandler) ClearDefaultDriver() error {
	config, err := h.Load()
	if err != nil {
		return err
	}

	config.DefaultDriverID = nil
	return h.Save(config)
}

// SetServerURL sets the server URL the CLI talks to
func (h *UserConfigHandler) SetServerURL(url string) error {
	config, err := h.Load()
	if err != nil {
		return err
	}

	config.ServerURL = url
	return h.Save(config)
}

// GetConfigPath returns the path to the user config file
func (h *UserConfigHandler) GetConfigPath() string {
	return h.configPath
}
