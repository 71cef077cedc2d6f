package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avoigt/timebook/internal/cli/formatter"
	"github.com/avoigt/timebook/internal/contract"
)

func newFinishCmd(app *App) *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "finish",
		Short: "Finish the running booking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewFinishRequest()
			req.Note = note

			resp, err := app.Bookings.Finish(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Printf("Finished %s after %s\n",
				formatter.StyleBlue.Render(resp.Booking.ProjectID),
				formatter.FormatHours(resp.Hours))
			return nil
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "Replace the booking note")

	return cmd
}
