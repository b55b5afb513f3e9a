package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
	dimColor  = color.New(color.FgYellow)
)

// RootCmd returns the emprius operator command tree.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emprius",
		Short: "Operator tools for the Emprius booking backend",
		Long: `emprius manages the booking backend's schema and lets operators evaluate
booking rules offline against JSON snapshots of tools, users and bookings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("config", "config/config.dev.yaml", "Path to configuration file")

	cmd.AddCommand(MigrateCmd())
	cmd.AddCommand(CheckCmd())
	cmd.AddCommand(ActionsCmd())
	cmd.AddCommand(TokenCmd())
	return cmd
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// parseNow reads an optional RFC 3339 --now flag, defaulting to the current time.
func parseNow(cmd *cobra.Command) (time.Time, error) {
	s, _ := cmd.Flags().GetString("now")
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now %q: %w", s, err)
	}
	return t, nil
}
