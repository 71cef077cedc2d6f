package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/avoigt/timebook/internal/cli/formatter"
	"github.com/avoigt/timebook/internal/contract"
	"github.com/avoigt/timebook/internal/stats"
)

// granularityValue is a pflag.Value that validates on Set, so bad input
// fails at flag parsing instead of deep in the service.
type granularityValue struct {
	g *stats.Granularity
}

var _ pflag.Value = (*granularityValue)(nil)

func (v *granularityValue) String() string {
	return string(*v.g)
}

func (v *granularityValue) Set(s string) error {
	g, err := stats.ParseGranularity(s)
	if err != nil {
		return err
	}
	*v.g = g
	return nil
}

func (v *granularityValue) Type() string {
	return "granularity"
}

func newReportCmd(app *App) *cobra.Command {
	var fromStr, toStr string
	var granularity stats.Granularity

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Chart booked hours over a range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseDateRange(fromStr, toStr)
			if err != nil {
				return err
			}

			req := contract.NewReportRequest(from, to)
			req.Granularity = granularity

			resp, err := app.Reports.GetReport(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatReport(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "Range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toStr, "to", "", "Range end (YYYY-MM-DD)")
	cmd.Flags().Var(&granularityValue{g: &granularity}, "granularity",
		"Bucket width: day, week, month or all (default: by range length)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
