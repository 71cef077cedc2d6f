package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/avoigt/timebook/internal/cli/formatter"
	"github.com/avoigt/timebook/internal/contract"
	"github.com/avoigt/timebook/internal/service"
)

func newWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Live view of the running booking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("watch needs an interactive terminal")
			}
			m := newWatchModel(app.Dashboard)
			_, err := tea.NewProgram(m).Run()
			return err
		},
	}
}

type watchKeyMap struct {
	Quit key.Binding
}

var watchKeys = watchKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type watchTickMsg time.Time

type watchDataMsg struct {
	resp *contract.DashboardResponse
	err  error
}

type watchModel struct {
	dashboard service.DashboardService
	resp      *contract.DashboardResponse
	err       error
}

func newWatchModel(dashboard service.DashboardService) watchModel {
	return watchModel{dashboard: dashboard}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.fetch(), watchTick())
}

func watchTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) fetch() tea.Cmd {
	return func() tea.Msg {
		resp, err := m.dashboard.GetDashboard(context.Background(), contract.NewDashboardRequest())
		return watchDataMsg{resp: resp, err: err}
	}
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, watchKeys.Quit) {
			return m, tea.Quit
		}
	case watchTickMsg:
		return m, tea.Batch(m.fetch(), watchTick())
	case watchDataMsg:
		m.resp = msg.resp
		m.err = msg.err
	}
	return m, nil
}

func (m watchModel) View() string {
	if m.err != nil {
		return formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n"
	}
	if m.resp == nil {
		return formatter.StyleDim.Render("Loading...") + "\n"
	}

	var body string
	if m.resp.Running != nil {
		body = fmt.Sprintf("%s %s on %s\n\n",
			formatter.StyleGreen.Render("● recording"),
			formatter.FormatHours(m.resp.Running.Elapsed),
			formatter.StyleBlue.Render(m.resp.Running.Booking.ProjectID))
	} else {
		body = formatter.StyleDim.Render("Nothing running (timebook start <project>)") + "\n\n"
	}

	body += fmt.Sprintf("Week so far: %s", formatter.FormatHours(m.resp.Total.Hours))
	if m.resp.Planned > 0 {
		body += "\n" + formatter.RenderProgress(m.resp.Progress.FulfilledPct, 24)
	}
	body += "\n\n" + formatter.StyleDim.Render("q to quit")
	return formatter.RenderBox("Watch", body) + "\n"
}
