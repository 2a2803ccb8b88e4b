package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	serverURL string
	driverID  uint
	jsonOut   bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tripplan",
		Short: "Trip Planner CLI - Plan HOS-compliant trucking trips",
		Long: `Trip Planner CLI plans property-carrying CMV trips that comply with
FMCSA Hours of Service rules. The CLI talks to the trip planner server
over HTTP.

Examples:
  tripplan plan --current="-87.63,41.88" --pickup="-90.20,38.63" --dropoff="-90.05,35.15"
  tripplan plan --current="-87.63,41.88" --pickup="-90.20,38.63" --dropoff="-90.05,35.15" --driver 3
  tripplan drivers list
  tripplan drivers add --name "Maya Torres" --tz America/Chicago
  tripplan drivers logs 3
  tripplan providers
  tripplan health
  tripplan config set-driver 3`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "",
		"Trip planner server URL (default: user config or http://localhost:8000)")
	rootCmd.PersistentFlags().UintVar(&driverID, "driver", 0,
		"Driver ID (falls back to the user config default)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false,
		"Print raw JSON responses")

	// Add command groups
	rootCmd.AddCommand(NewPlanCommand())
	rootCmd.AddCommand(NewDriversCommand())
	rootCmd.AddCommand(NewProvidersCommand())
	rootCmd.AddCommand(NewHealthCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
