package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// healthStatus mirrors the server's /health response body
type healthStatus struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// NewHealthCommand creates the health command
func NewHealthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check server health status",
		Long:  `Verify that the trip planner server is running and can reach its database.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newServerClient()

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			var health healthStatus
			if err := client.get(ctx, "/health", &health); err != nil {
				return fmt.Errorf("health check failed: %w", err)
			}

			if jsonOut {
				fmt.Println(prettyPrint(health))
				return nil
			}

			fmt.Println("✓ Server is healthy")
			fmt.Printf("  Server:   %s\n", client.baseURL)
			fmt.Printf("  Status:   %s\n", health.Status)
			fmt.Printf("  Database: %s\n", health.Database)

			return nil
		},
	}

	return cmd
}
