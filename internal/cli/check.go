package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"emprius-backend/internal/booking"
	"emprius-backend/internal/domain"
)

// CheckCmd returns the check command
func CheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Evaluate booking rules against JSON snapshots",
	}
	cmd.AddCommand(checkEligibilityCmd())
	cmd.AddCommand(checkConflictCmd())
	return cmd
}

func checkEligibilityCmd() *cobra.Command {
	var toolPath, userPath string

	cmd := &cobra.Command{
		Use:   "eligibility",
		Short: "Report whether a user may book a tool",
		Example: `  emprius check eligibility --tool tool.json --user user.json
  emprius check eligibility --tool tool.json --user user.json --now 2024-06-12T12:00:00Z`,
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := parseNow(cmd)
			if err != nil {
				return err
			}
			var tool domain.Tool
			if err := readJSON(toolPath, &tool); err != nil {
				return err
			}
			var user domain.User
			if err := readJSON(userPath, &user); err != nil {
				return err
			}

			e := booking.CanUserBookTool(&tool, &user, now)
			out := cmd.OutOrStdout()
			if e.CanBook {
				fmt.Fprintf(out, "%s user %d can book tool %d\n", okColor.Sprint("ELIGIBLE"), user.ID, tool.ID)
				return nil
			}
			fmt.Fprintf(out, "%s user %d cannot book tool %d: %s\n", failColor.Sprint("DENIED"), user.ID, tool.ID, e.Reason())
			return nil
		},
	}
	cmd.Flags().StringVar(&toolPath, "tool", "", "Tool JSON file, reservedDates included")
	cmd.Flags().StringVar(&userPath, "user", "", "User JSON file, communities and location included")
	cmd.Flags().String("now", "", "Evaluation time (RFC 3339)")
	_ = cmd.MarkFlagRequired("tool")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func checkConflictCmd() *cobra.Command {
	var start, end, reservedPath string

	cmd := &cobra.Command{
		Use:     "conflict",
		Short:   "Report whether a date range collides with reserved dates",
		Example: `  emprius check conflict --start 2024-06-10 --end 2024-06-12 --reserved reserved.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			proposed, err := domain.NewDateRangeFromCalendar(start, end)
			if err != nil {
				return err
			}
			var reserved []domain.DateRange
			if err := readJSON(reservedPath, &reserved); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := booking.CheckConflict(proposed, reserved); err != nil {
				fmt.Fprintf(out, "%s %v\n", failColor.Sprint("CONFLICT"), err)
				return nil
			}
			fmt.Fprintf(out, "%s %s to %s is free\n", okColor.Sprint("FREE"), start, end)
			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "First day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Last day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&reservedPath, "reserved", "", "JSON array of {from,to} epoch ranges")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	_ = cmd.MarkFlagRequired("reserved")
	return cmd
}
