package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avoigt/timebook/internal/cli/formatter"
	"github.com/avoigt/timebook/internal/contract"
)

func newStartCmd(app *App) *cobra.Command {
	var tags []string
	var note string

	cmd := &cobra.Command{
		Use:   "start <project>",
		Short: "Start booking time on a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewStartRequest(args[0])
			req.Tags = tags
			req.Note = note

			resp, err := app.Bookings.Start(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Printf("Started booking on %s at %s\n",
				formatter.StyleBlue.Render(resp.Booking.ProjectID),
				resp.Booking.Start.Local().Format("15:04"))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag the booking (repeatable)")
	cmd.Flags().StringVar(&note, "note", "", "Attach a note")

	return cmd
}
