package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/wle-js-upgrade/internal/model"
)

// maxRecentResults bounds how many result lines stay on screen.
const maxRecentResults = 8

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	summaryStyle = lipgloss.NewStyle().Bold(true)
)

// migrateModel is the Bubble Tea model shown while files are migrated.
type migrateModel struct {
	mode     StartMode
	total    int
	done     int
	failed   int
	recent   []m.MigrationResult
	warnings []string
	summary  *tally
	progress progress.Model
	quitting bool
}

func newMigrateModel(mode StartMode) migrateModel {
	return migrateModel{
		mode:     mode,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

func (mm migrateModel) Init() tea.Cmd {
	return nil
}

func (mm migrateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case upcomingMsg:
		mm.total = msg.count
	case resultMsg:
		mm.done++
		if msg.result.Failed() {
			mm.failed++
		}

		if msg.result.Warning != "" {
			mm.warnings = append(mm.warnings, fmt.Sprintf("%s: %s", msg.result.Path, msg.result.Warning))
		}

		mm.recent = append(mm.recent, msg.result)
		if len(mm.recent) > maxRecentResults {
			mm.recent = mm.recent[len(mm.recent)-maxRecentResults:]
		}
	case summaryMsg:
		counts := countResults(msg.results)
		mm.summary = &counts
	case doneMsg:
		mm.quitting = true
		return mm, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			mm.quitting = true
			return mm, tea.Quit
		}
	case tea.WindowSizeMsg:
		mm.progress.Width = min(msg.Width-20, 60)
		if mm.progress.Width < 10 {
			mm.progress.Width = 10
		}
	}

	return mm, nil
}

func (mm migrateModel) percent() float64 {
	if mm.total == 0 {
		return 0
	}

	return float64(mm.done) / float64(mm.total)
}

func (mm migrateModel) View() string {
	var b strings.Builder

	title := "Migrating components"
	if mm.mode == ModePlan {
		title = "Checking components"
	}

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s  %d/%d\n\n", mm.progress.ViewAs(mm.percent()), mm.done, mm.total)

	for _, result := range mm.recent {
		b.WriteString(renderResultLine(result, mm.mode))
		b.WriteByte('\n')
	}

	for _, warning := range mm.warnings {
		b.WriteString(warnStyle.Render("warning: " + warning))
		b.WriteByte('\n')
	}

	if mm.summary != nil {
		b.WriteByte('\n')
		b.WriteString(summaryStyle.Render(fmt.Sprintf(
			"%d file(s): %d changed, %d skipped, %d failed",
			mm.done, mm.summary.changed, mm.summary.skipped, mm.summary.failed,
		)))
		b.WriteByte('\n')
	}

	return b.String()
}

func renderResultLine(result m.MigrationResult, mode StartMode) string {
	status := statusOf(result, mode)

	var label string

	switch status {
	case statusFailed:
		label = failStyle.Render(fmt.Sprintf("%-14s", status))
	case statusUnchanged, statusSkipped:
		label = mutedStyle.Render(fmt.Sprintf("%-14s", status))
	default:
		label = okStyle.Render(fmt.Sprintf("%-14s", status))
	}

	line := label + string(result.Path)
	if len(result.Components) > 0 {
		line += mutedStyle.Render(" (" + strings.Join(result.Components, ", ") + ")")
	}

	if result.Err != nil {
		line += failStyle.Render(": " + result.Err.Error())
	}

	return line
}
