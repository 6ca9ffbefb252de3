package controller

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/fatih/color"
	m "github.com/mouse-blink/wle-js-upgrade/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	failedColor  = color.New(color.FgRed, color.Bold)
	changedColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	mutedColor   = color.New(color.Faint)
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd  *cobra.Command
	mode StartMode
	mu   sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.mode = newStartConfig(options).mode
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

// Wait returns immediately; output is written synchronously.
func (s *SimpleUI) Wait() {
}

// Err always returns nil; writes to the command output are not checked.
func (s *SimpleUI) Err() error {
	return nil
}

// DisplayUpcoming announces how many files will be processed.
func (s *SimpleUI) DisplayUpcoming(count int) {
	verb := "Migrating"
	if s.mode == ModePlan {
		verb = "Checking"
	}

	s.printf("%s %d file(s)\n", verb, count)
}

// DisplayResult prints one line for a processed file.
func (s *SimpleUI) DisplayResult(result m.MigrationResult) {
	status := statusOf(result, s.mode)

	var line strings.Builder

	switch status {
	case statusFailed:
		line.WriteString(failedColor.Sprintf("%-14s", status))
	case statusUnchanged, statusSkipped:
		line.WriteString(mutedColor.Sprintf("%-14s", status))
	default:
		line.WriteString(changedColor.Sprintf("%-14s", status))
	}

	line.WriteString(string(result.Path))

	if len(result.Components) > 0 {
		fmt.Fprintf(&line, " (%s)", strings.Join(result.Components, ", "))
	}

	if result.Err != nil {
		fmt.Fprintf(&line, ": %v", result.Err)
	}

	if s.mode == ModePlan {
		for _, typeName := range result.Components {
			if entries := result.Methods[typeName]; len(entries) > 0 {
				fmt.Fprintf(&line, "\n  %s: %s", typeName, methodList(entries))
			}
		}
	}

	if result.Warning != "" {
		line.WriteString("\n  ")
		line.WriteString(warningColor.Sprintf("warning: %s", result.Warning))
	}

	s.printf("%s\n", line.String())
}

// DisplaySummary prints a table of all processed files.
func (s *SimpleUI) DisplaySummary(results []m.MigrationResult) {
	if len(results) == 0 {
		s.printf("No files processed\n")
		return
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Components", "Imports", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	for _, result := range results {
		table.Append([]string{
			string(result.Path),
			strings.Join(result.Components, ", "),
			importList(result),
			statusOf(result, s.mode),
		})
	}

	counts := countResults(results)
	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(results)),
		"",
		"",
		fmt.Sprintf("%d changed %d failed", counts.changed, counts.failed),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
