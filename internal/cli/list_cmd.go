package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avoigt/timebook/internal/cli/formatter"
	"github.com/avoigt/timebook/internal/contract"
)

func newListCmd(app *App) *cobra.Command {
	var fromStr, toStr, projectID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bookings in a range (default: last 7 days)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseDateRange(fromStr, toStr)
			if err != nil {
				return err
			}

			resp, err := app.Bookings.List(context.Background(), contract.ListRequest{
				From:      from,
				To:        to,
				ProjectID: projectID,
			})
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatBookings(resp.Bookings))
			return nil
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "Range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toStr, "to", "", "Range end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&projectID, "project", "", "Only bookings for this project")

	return cmd
}
