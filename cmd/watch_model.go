package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quentel/tally/internal/application"
)

type watchTickMsg time.Time

type watchModel struct {
	ctx      context.Context
	timer    *application.TimerService
	interval time.Duration
	sample   application.Sample
	spinner  spinner.Model

	elapsedStyle lipgloss.Style
	pausedStyle  lipgloss.Style
	labelStyle   lipgloss.Style
	helpStyle    lipgloss.Style
}

func newWatchModel(ctx context.Context, timer *application.TimerService, interval time.Duration) watchModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("114"))),
	)

	return watchModel{
		ctx:          ctx,
		timer:        timer,
		interval:     interval,
		sample:       timer.SampleNow(ctx),
		spinner:      s,
		elapsedStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		pausedStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		labelStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		helpStyle:    lipgloss.NewStyle().Faint(true),
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.tick(), m.spinner.Tick)
}

func (m watchModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case watchTickMsg:
		m.sample = m.timer.SampleNow(m.ctx)
		return m, m.tick()
	case tea.ResumeMsg, tea.FocusMsg:
		// The host returned from a suspended or backgrounded state; resample
		// immediately instead of waiting for the next tick.
		m.sample = m.timer.SampleNow(m.ctx)
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m watchModel) View() string {
	elapsed := formatElapsed(m.sample.ElapsedMs)

	line := m.pausedStyle.Render(elapsed) + m.labelStyle.Render(" (paused)")
	if m.sample.Running {
		line = m.spinner.View() + m.elapsedStyle.Render(elapsed)
	}

	if m.sample.TaskName != "" {
		line += m.labelStyle.Render(fmt.Sprintf("  %s", m.sample.TaskName))
	}

	return line + "\n" + m.helpStyle.Render("q to quit") + "\n"
}

func runWatch(ctx context.Context, output io.Writer, app *app, interval time.Duration) error {
	p := tea.NewProgram(
		newWatchModel(ctx, app.timer, interval),
		tea.WithOutput(output),
		tea.WithContext(ctx),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
