package dashboard

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/quentel/tally/internal/application"
)

const (
	summaryBarWidth = 24
	chartLabelWidth = 16
)

var intensityCells = []string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

func renderView(stats application.Statistics, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Effort Dashboard"),
		s.header.Render(fmt.Sprintf("tasks: %d", len(stats.Summaries))),
	}
	if !opts.Now.IsZero() {
		lines = append(lines, s.header.Render("as of "+opts.Now.Format("2006-01-02 15:04")))
	}

	if len(stats.Summaries) == 0 {
		lines = append(lines, s.empty.Render("No sessions recorded yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	if len(stats.FrequentTasks) > 0 {
		lines = append(lines, s.shortcut.Render("shortcuts: "+strings.Join(stats.FrequentTasks, " · ")))
	}

	lines = append(lines, s.section.Render(renderSummaries(stats.Summaries, s)))
	lines = append(lines, s.section.Render(renderTrend(stats, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSummaries(summaries []application.TaskSummary, s styles) string {
	var maxTotal int64
	for _, summary := range summaries {
		if summary.TotalMs > maxTotal {
			maxTotal = summary.TotalMs
		}
	}

	rows := make([]string, 0, len(summaries)*2)
	for _, summary := range summaries {
		rows = append(rows, s.task.Render(summary.TaskName))
		rows = append(rows, lipgloss.JoinHorizontal(
			lipgloss.Top,
			renderBar(summary.TotalMs, maxTotal, summaryBarWidth, s),
			" ",
			s.detail.Render(fmt.Sprintf(
				"today %s · avg %s/day · total %s",
				formatDuration(summary.TodayMs),
				formatDuration(summary.AverageMs),
				formatDuration(summary.TotalMs),
			)),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderBar(value, max int64, width int, s styles) string {
	filled := 0
	if max > 0 {
		filled = int(math.Round(float64(value) / float64(max) * float64(width)))
	}
	if filled > width {
		filled = width
	}

	return s.barBracket.Render("[") +
		s.barFill.Render(strings.Repeat("█", filled)) +
		s.barEmpty.Render(strings.Repeat("░", width-filled)) +
		s.barBracket.Render("]")
}

// renderTrend draws one intensity row per top task across the 30-day chart
// window, scaled to the busiest day in the window.
func renderTrend(stats application.Statistics, s styles) string {
	windowLabel := "last 30 days"
	if len(stats.Chart) > 0 {
		windowLabel = fmt.Sprintf("last 30 days (%s – %s)",
			stats.Chart[0].Date, stats.Chart[len(stats.Chart)-1].Date)
	}

	rows := []string{s.header.Render(windowLabel)}

	var maxMinutes float64
	for _, point := range stats.Chart {
		for _, minutes := range point.Minutes {
			if minutes > maxMinutes {
				maxMinutes = minutes
			}
		}
	}

	for _, task := range stats.TopTasks {
		var cells strings.Builder
		for _, point := range stats.Chart {
			cells.WriteString(renderCell(point.Minutes[task], maxMinutes, s))
		}
		rows = append(rows, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.chartLabel.Render(padLabel(task, chartLabelWidth)),
			" ",
			cells.String(),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCell(minutes, maxMinutes float64, s styles) string {
	if minutes <= 0 || maxMinutes <= 0 {
		return s.chartZero.Render("·")
	}

	level := int(minutes / maxMinutes * float64(len(intensityCells)))
	if level >= len(intensityCells) {
		level = len(intensityCells) - 1
	}

	return s.chartCell.Render(intensityCells[level])
}

func padLabel(label string, width int) string {
	runes := []rune(label)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return label + strings.Repeat(" ", width-len(runes))
}

func formatDuration(ms int64) string {
	d := time.Duration(ms) * time.Millisecond

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh%02dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm%02ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
