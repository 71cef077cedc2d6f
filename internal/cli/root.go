package cli

import (
	"github.com/spf13/cobra"

	"github.com/avoigt/timebook/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Bookings  service.BookingService
	Dashboard service.DashboardService
	Reports   service.ReportService
	Settings  service.SettingsService

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "timebook" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "timebook",
		Short: "Track booked time against your weekly plan",
	}

	root.AddCommand(
		newStartCmd(app),
		newFinishCmd(app),
		newListCmd(app),
		newDeleteCmd(app),
		newDashboardCmd(app),
		newReportCmd(app),
		newPlanCmd(app),
		newWatchCmd(app),
	)

	return root
}
