package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/haulpath/tripplan/internal/application/driver/queries"
)

// NewDriversCommand creates the drivers command with subcommands
func NewDriversCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drivers",
		Short: "Driver roster and duty logs",
		Long: `Manage drivers and view their daily Hours of Service logs.

Examples:
  tripplan drivers list
  tripplan drivers add --name "Maya Torres" --tz America/Chicago
  tripplan drivers logs 3
  tripplan drivers logs          (uses the configured default driver)`,
	}

	// Add subcommands
	cmd.AddCommand(newDriversListCommand())
	cmd.AddCommand(newDriversAddCommand())
	cmd.AddCommand(newDriversLogsCommand())

	return cmd
}

// newDriversListCommand creates the drivers list subcommand
func newDriversListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all drivers",
		Long: `List every registered driver, ordered by name.

Example:
  tripplan drivers list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDriversList()
		},
	}
}

// newDriversAddCommand creates the drivers add subcommand
func newDriversAddCommand() *cobra.Command {
	var (
		name string
		tz   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new driver",
		Long: `Register a driver on the server.

The home timezone is an IANA zone name and determines how the driver's
trips are split into local calendar days. It defaults to UTC.

Examples:
  tripplan drivers add --name "Maya Torres" --tz America/Chicago
  tripplan drivers add --name "Alex Kim"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDriversAdd(name, tz)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Driver name [required]")
	cmd.Flags().StringVar(&tz, "tz", "", "Home timezone as an IANA zone name (default: UTC)")
	cmd.MarkFlagRequired("name")

	return cmd
}

// newDriversLogsCommand creates the drivers logs subcommand
func newDriversLogsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logs [driver-id]",
		Short: "Show a driver's daily logs",
		Long: `Show a driver's daily duty logs, newest date first.

The driver can be given as an argument, via --driver, or configured as
the default with 'tripplan config set-driver'.

Examples:
  tripplan drivers logs 3
  tripplan drivers logs --driver 3
  tripplan drivers logs --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := resolveDriverID()
			if len(args) == 1 {
				parsed, err := strconv.ParseUint(args[0], 10, 32)
				if err != nil {
					return fmt.Errorf("invalid driver id %q", args[0])
				}
				id = uint(parsed)
			}
			if id == 0 {
				return fmt.Errorf("no driver specified: pass an id, use --driver, or set a default with 'tripplan config set-driver'")
			}
			return runDriverLogs(id)
		},
	}
}

// runDriversList executes the drivers list command
func runDriversList() error {
	client := newServerClient()
	ctx, cancel := context.WithTimeout(context.Background(), client.http.Timeout)
	defer cancel()

	var drivers []queries.DriverDTO
	if err := client.get(ctx, "/drivers/", &drivers); err != nil {
		return fmt.Errorf("failed to list drivers: %w", err)
	}

	if jsonOut {
		fmt.Println(prettyPrint(drivers))
		return nil
	}

	if len(drivers) == 0 {
		fmt.Println("No drivers registered")
		return nil
	}

	fmt.Printf("\nDRIVERS (%d)\n", len(drivers))
	fmt.Println("─────────────────────────────────────────────────────────────────────────────")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tHome Timezone")
	fmt.Fprintln(w, "──\t────\t─────────────")
	for _, d := range drivers {
		fmt.Fprintf(w, "%d\t%s\t%s\n", d.ID, d.Name, d.HomeTimezone)
	}
	w.Flush()
	fmt.Println()

	return nil
}

// runDriversAdd executes the drivers add command
func runDriversAdd(name, tz string) error {
	client := newServerClient()
	ctx, cancel := context.WithTimeout(context.Background(), client.http.Timeout)
	defer cancel()

	request := map[string]interface{}{"name": name}
	if tz != "" {
		request["home_tz"] = tz
	}

	var created queries.DriverDTO
	if err := client.post(ctx, "/drivers/", request, &created); err != nil {
		return fmt.Errorf("failed to register driver: %w", err)
	}

	if jsonOut {
		fmt.Println(prettyPrint(created))
		return nil
	}

	fmt.Println("✓ Driver registered")
	fmt.Printf("  ID:            %d\n", created.ID)
	fmt.Printf("  Name:          %s\n", created.Name)
	fmt.Printf("  Home Timezone: %s\n", created.HomeTimezone)
	return nil
}

// runDriverLogs executes the drivers logs command
func runDriverLogs(id uint) error {
	client := newServerClient()
	ctx, cancel := context.WithTimeout(context.Background(), client.http.Timeout)
	defer cancel()

	var records []queries.DailyRecordDTO
	if err := client.get(ctx, fmt.Sprintf("/drivers/%d/logs/", id), &records); err != nil {
		return fmt.Errorf("failed to fetch driver logs: %w", err)
	}

	if jsonOut {
		fmt.Println(prettyPrint(records))
		return nil
	}

	if len(records) == 0 {
		fmt.Printf("No logs recorded for driver %d\n", id)
		return nil
	}

	fmt.Printf("\nDAILY LOGS: %s (%d day(s), newest first)\n", records[0].DriverName, len(records))
	fmt.Println("─────────────────────────────────────────────────────────────────────────────")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Date\tDriving\tOn Duty\tOff Duty\tEntries")
	fmt.Fprintln(w, "────\t───────\t───────\t────────\t───────")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%.1fh\t%.1fh\t%.1fh\t%d\n",
			r.Date, r.DrivingHours, r.OnDutyHours, r.OffDutyHours, len(r.Entries))
	}
	w.Flush()
	fmt.Println()

	return nil
}
