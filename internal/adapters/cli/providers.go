package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// providerStatus mirrors the server's /providers/ response
type providerStatus struct {
	Name       string `json:"name"`
	Configured bool   `json:"configured"`
	Fallback   bool   `json:"fallback"`
}

// NewProvidersCommand creates the providers command
func NewProvidersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "Show directions provider status",
		Long: `Show which directions providers the server has credentials for.

Providers are tried in the order listed; the haversine estimator always
terminates the chain, so routing works even with no API keys configured.

Example:
  tripplan providers`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProviders()
		},
	}
}

// runProviders executes the providers command
func runProviders() error {
	client := newServerClient()
	ctx, cancel := context.WithTimeout(context.Background(), client.http.Timeout)
	defer cancel()

	var providers []providerStatus
	if err := client.get(ctx, "/providers/", &providers); err != nil {
		return fmt.Errorf("failed to fetch provider status: %w", err)
	}

	if jsonOut {
		fmt.Println(prettyPrint(providers))
		return nil
	}

	fmt.Printf("\nDIRECTIONS PROVIDERS (in fallback order)\n")
	fmt.Println("─────────────────────────────────────────────────────────────────────────────")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Provider\tStatus")
	fmt.Fprintln(w, "────────\t──────")
	for _, p := range providers {
		status := "✗ not configured"
		switch {
		case p.Fallback:
			status = "✓ built-in fallback"
		case p.Configured:
			status = "✓ configured"
		}
		fmt.Fprintf(w, "%s\t%s\n", p.Name, status)
	}
	w.Flush()
	fmt.Println()

	return nil
}
