package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"emprius-backend/internal/booking"
	"emprius-backend/internal/domain"
)

// ActionsCmd returns the actions command
func ActionsCmd() *cobra.Command {
	var bookingPath, role string

	cmd := &cobra.Command{
		Use:     "actions",
		Short:   "List the actions a viewer is offered for a booking",
		Example: `  emprius actions --booking booking.json --role request`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := booking.Role(role)
			if r != booking.RoleRequest && r != booking.RolePetition {
				return fmt.Errorf("role must be %q or %q", booking.RoleRequest, booking.RolePetition)
			}
			now, err := parseNow(cmd)
			if err != nil {
				return err
			}
			var b domain.Booking
			if err := readJSON(bookingPath, &b); err != nil {
				return err
			}

			actions := booking.Actions(&b, r, now)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "booking %d [%s] as %s\n", b.ID, b.Status, r)
			if len(actions) == 0 {
				fmt.Fprintln(out, dimColor.Sprint("  no actions"))
				return nil
			}
			for _, a := range actions {
				line := "  " + string(a.Kind)
				if a.Disabled {
					line += " " + dimColor.Sprint("(disabled)")
				}
				if a.RequiresConfirmation {
					line += " " + dimColor.Sprint("(confirm)")
				}
				if a.Warning != "" {
					line += " " + failColor.Sprint(a.Warning)
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&bookingPath, "booking", "", "Booking JSON file")
	cmd.Flags().StringVar(&role, "role", "", "Viewer role: request or petition")
	cmd.Flags().String("now", "", "Evaluation time (RFC 3339)")
	_ = cmd.MarkFlagRequired("booking")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}
