package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/avoigt/timebook/internal/cli"
	"github.com/avoigt/timebook/internal/db"
	"github.com/avoigt/timebook/internal/repository"
	"github.com/avoigt/timebook/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.timebook/timebook.db
	dbPath := os.Getenv("TIMEBOOK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".timebook", "timebook.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	bookingRepo := repository.NewSQLiteBookingRepo(database)
	plannedRepo := repository.NewSQLitePlannedHoursRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// TIMEBOOK_LOG=stderr turns on use-case logging.
	var logWriter io.Writer
	if os.Getenv("TIMEBOOK_LOG") == "stderr" {
		logWriter = os.Stderr
	}
	observer := service.NewLogUseCaseObserver(logWriter)

	app := &cli.App{
		Bookings:  service.NewBookingService(bookingRepo, uow, observer),
		Dashboard: service.NewDashboardService(bookingRepo, plannedRepo, observer),
		Reports:   service.NewReportService(bookingRepo, observer),
		Settings:  service.NewSettingsService(plannedRepo, observer),
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
