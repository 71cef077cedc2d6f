package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/avoigt/timebook/internal/cli/formatter"
	"github.com/avoigt/timebook/internal/contract"
	"github.com/avoigt/timebook/internal/domain"
)

var planWeekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

var planFlagNames = map[time.Weekday]string{
	time.Monday:    "mon",
	time.Tuesday:   "tue",
	time.Wednesday: "wed",
	time.Thursday:  "thu",
	time.Friday:    "fri",
	time.Saturday:  "sat",
	time.Sunday:    "sun",
}

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show planned hours per weekday",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Settings.GetPlan(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatPlan(resp))
			return nil
		},
	}

	cmd.AddCommand(newPlanSetCmd(app))
	return cmd
}

func newPlanSetCmd(app *App) *cobra.Command {
	flagHours := make(map[time.Weekday]*float64, len(planWeekdays))

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set planned hours per weekday",
		Long:  "Set planned hours via flags, or interactively when no flags are given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			current, err := app.Settings.GetPlan(ctx)
			if err != nil {
				return err
			}
			plan := current.Hours

			anyFlag := false
			for d, name := range planFlagNames {
				if cmd.Flags().Changed(name) {
					plan[d] = *flagHours[d]
					anyFlag = true
				}
			}

			if !anyFlag {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("no weekday flags given and stdin is not a terminal")
				}
				if err := runPlanForm(plan); err != nil {
					return err
				}
			}

			resp, err := app.Settings.SetPlan(ctx, contract.PlanRequest{Hours: plan})
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatPlan(resp))
			return nil
		},
	}

	for _, d := range planWeekdays {
		v := new(float64)
		flagHours[d] = v
		cmd.Flags().Float64Var(v, planFlagNames[d], 0, "Planned hours for "+d.String())
	}

	return cmd
}

// runPlanForm collects hours for each weekday in a huh form, mutating plan
// in place on submit.
func runPlanForm(plan domain.PlannedHours) error {
	values := make(map[time.Weekday]*string, len(planWeekdays))
	fields := make([]huh.Field, 0, len(planWeekdays))
	for _, d := range planWeekdays {
		v := strconv.FormatFloat(plan[d], 'f', -1, 64)
		values[d] = &v
		fields = append(fields, huh.NewInput().
			Title(d.String()).
			Placeholder("0").
			Value(values[d]).
			Validate(validateHours))
	}

	form := huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return err
	}

	for _, d := range planWeekdays {
		raw := *values[d]
		if raw == "" {
			plan[d] = 0
			continue
		}
		h, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid hours for %s: %w", d, err)
		}
		plan[d] = h
	}
	return nil
}

func validateHours(s string) error {
	if s == "" {
		return nil
	}
	h, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("enter a number of hours")
	}
	if h < 0 || h > 24 {
		return fmt.Errorf("hours must be between 0 and 24")
	}
	return nil
}
