package controller

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/wle-js-upgrade/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
	mu      sync.Mutex
	err     error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)

	return t.startWithModel(newMigrateModel(cfg.mode))
}

func (t *TUI) startWithModel(model tea.Model) error {
	if t.program != nil {
		return nil
	}

	t.program = tea.NewProgram(model, tea.WithOutput(t.output), tea.WithInput(nil))
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		_, err := t.program.Run()

		t.mu.Lock()
		t.err = err
		t.mu.Unlock()
	}()

	return nil
}

// Close asks the program to render its final frame and exit.
func (t *TUI) Close() {
	t.send(doneMsg{})
}

// Wait blocks until the program has exited.
func (t *TUI) Wait() {
	if t.done != nil {
		<-t.done
	}
}

// Err returns the error the program exited with, if any.
func (t *TUI) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.err
}

// DisplayUpcoming sets the total the progress bar counts towards.
func (t *TUI) DisplayUpcoming(count int) {
	t.send(upcomingMsg{count: count})
}

// DisplayResult advances the progress bar and lists the file.
func (t *TUI) DisplayResult(result m.MigrationResult) {
	t.send(resultMsg{result: result})
}

// DisplaySummary shows the final counts.
func (t *TUI) DisplaySummary(results []m.MigrationResult) {
	t.send(summaryMsg{results: results})
}

func (t *TUI) send(msg tea.Msg) {
	if t.program == nil {
		return
	}

	t.program.Send(msg)
}
