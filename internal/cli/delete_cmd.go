package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <booking-id>",
		Short: "Delete a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Bookings.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted booking %s\n", args[0])
			return nil
		},
	}
}
