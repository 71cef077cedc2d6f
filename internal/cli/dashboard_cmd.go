package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avoigt/timebook/internal/cli/formatter"
	"github.com/avoigt/timebook/internal/contract"
)

func newDashboardCmd(app *App) *cobra.Command {
	var fromStr, toStr string

	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash"},
		Short:   "Show booked vs planned hours (default: current week)",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseDateRange(fromStr, toStr)
			if err != nil {
				return err
			}

			req := contract.NewDashboardRequest()
			req.From = from
			req.To = to

			resp, err := app.Dashboard.GetDashboard(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatDashboard(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "Range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toStr, "to", "", "Range end (YYYY-MM-DD)")

	return cmd
}
