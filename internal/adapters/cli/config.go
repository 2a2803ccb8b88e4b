package cli

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haulpath/tripplan/internal/application/driver/queries"
	"github.com/haulpath/tripplan/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage client configuration",
		Long: `Manage trip planner client preferences.

Preferences (default driver, server URL) are stored in ~/.tripplan/config.json
and apply to every command unless overridden with --driver or --server.

Examples:
  tripplan config show
  tripplan config set-driver 3
  tripplan config set-server http://planner.example.com:8000
  tripplan config clear-driver`,
	}

	// Add subcommands
	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetDriverCommand())
	cmd.AddCommand(newConfigClearDriverCommand())
	cmd.AddCommand(newConfigSetServerCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long: `Display stored preferences and the values commands will actually use
once flags and defaults are applied.

Example:
  tripplan config show`,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}

			userCfg, err := handler.Load()
			if err != nil {
				fmt.Printf("Warning: Failed to load user config: %v\n\n", err)
				userCfg = &config.UserConfig{}
			}

			fmt.Println("Trip Planner Configuration")
			fmt.Println("==========================")

			fmt.Println("User Preferences:")
			fmt.Printf("  Config file:      %s\n", handler.GetConfigPath())
			if userCfg.DefaultDriverID != nil {
				fmt.Printf("  Default Driver:   ID=%d\n", *userCfg.DefaultDriverID)
			} else {
				fmt.Printf("  Default Driver:   (not set)\n")
			}
			if userCfg.ServerURL != "" {
				fmt.Printf("  Server URL:       %s\n", userCfg.ServerURL)
			} else {
				fmt.Printf("  Server URL:       (not set)\n")
			}

			fmt.Println("\nEffective (flags applied):")
			fmt.Printf("  Server:           %s\n", resolveServerURL())
			if id := resolveDriverID(); id > 0 {
				fmt.Printf("  Driver:           %d\n", id)
			} else {
				fmt.Printf("  Driver:           (none)\n")
			}

			return nil
		},
	}
}

// newConfigSetDriverCommand creates the config set-driver subcommand
func newConfigSetDriverCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-driver <driver-id>",
		Short: "Set default driver",
		Long: `Set the default driver for trip planning and log commands.

The driver is verified against the server's roster before being saved.

Examples:
  tripplan config set-driver 3
  tripplan config set-driver 3 --server http://planner.example.com:8000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid driver id %q", args[0])
			}
			id := uint(parsed)

			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}

			// Verify the driver exists before saving the preference
			client := newServerClient()
			ctx, cancel := context.WithTimeout(context.Background(), client.http.Timeout)
			defer cancel()

			var drivers []queries.DriverDTO
			if err := client.get(ctx, "/drivers/", &drivers); err != nil {
				return fmt.Errorf("failed to verify driver: %w", err)
			}

			var name string
			found := false
			for _, d := range drivers {
				if d.ID == id {
					name = d.Name
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("driver %d not found on server", id)
			}

			if err := handler.SetDefaultDriver(id); err != nil {
				return fmt.Errorf("failed to set default driver: %w", err)
			}

			fmt.Println("✓ Default driver set successfully")
			fmt.Printf("  Driver ID: %d\n", id)
			fmt.Printf("  Name:      %s\n", name)
			fmt.Printf("\nCommands will now use this driver by default.\n")
			fmt.Printf("Override with the --driver flag.\n")

			return nil
		},
	}
}

// newConfigClearDriverCommand creates the config clear-driver subcommand
func newConfigClearDriverCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-driver",
		Short: "Clear default driver setting",
		Long: `Remove the default driver setting.

After clearing, plans are computed from --cycle-used alone unless a
driver is given explicitly.

Example:
  tripplan config clear-driver`,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}

			if err := handler.ClearDefaultDriver(); err != nil {
				return fmt.Errorf("failed to clear default driver: %w", err)
			}

			fmt.Println("✓ Default driver cleared")

			return nil
		},
	}
}

// newConfigSetServerCommand creates the config set-server subcommand
func newConfigSetServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-server <url>",
		Short: "Set server URL",
		Long: `Set the trip planner server URL used by all commands.

Example:
  tripplan config set-server http://planner.example.com:8000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := strings.TrimRight(args[0], "/")
			parsed, err := url.Parse(raw)
			if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
				return fmt.Errorf("invalid server URL %q: expected http(s)://host[:port]", args[0])
			}

			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}

			if err := handler.SetServerURL(raw); err != nil {
				return fmt.Errorf("failed to set server URL: %w", err)
			}

			fmt.Println("✓ Server URL set successfully")
			fmt.Printf("  Server: %s\n", raw)

			return nil
		},
	}
}
