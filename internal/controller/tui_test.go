package controller

import (
	"bytes"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/wle-js-upgrade/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quitModel struct{}

func (q quitModel) Init() tea.Cmd { return tea.Quit }
func (q quitModel) Update(tea.Msg) (tea.Model, tea.Cmd) {
	return q, tea.Quit
}
func (q quitModel) View() string { return "" }

func waitWithTimeout(t *testing.T, fn func()) {
	t.Helper()

	finished := make(chan struct{})
	go func() {
		fn()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out")
	}
}

func TestTUI_StartWithModel_WaitAndClose(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	require.NoError(t, tui.startWithModel(quitModel{}))

	waitWithTimeout(t, tui.Wait)
	waitWithTimeout(t, tui.Close)
	assert.NoError(t, tui.Err())
}

func TestTUI_Lifecycle(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	require.NoError(t, tui.Start(WithMigrateMode()))

	tui.DisplayUpcoming(2)
	tui.DisplayResult(m.MigrationResult{Path: "js/a.js", Changed: true, Components: []string{"spinner"}})
	tui.DisplayResult(m.MigrationResult{Path: "js/b.js", Err: errors.New("boom")})
	tui.DisplaySummary([]m.MigrationResult{{Changed: true}, {Err: errors.New("boom")}})

	tui.Close()
	waitWithTimeout(t, tui.Wait)

	assert.NoError(t, tui.Err())
}

func TestTUI_NoProgram(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	// Without Start every call is a no-op.
	tui.DisplayUpcoming(1)
	tui.DisplayResult(m.MigrationResult{Path: "js/a.js"})
	tui.DisplaySummary(nil)
	tui.Close()
	tui.Wait()

	assert.Empty(t, buf.String())
}

func TestMigrateModel_Update(t *testing.T) {
	model := newMigrateModel(ModeMigrate)

	next, _ := model.Update(upcomingMsg{count: 4})
	model = next.(migrateModel)
	assert.Equal(t, 4, model.total)

	next, _ = model.Update(resultMsg{result: m.MigrationResult{Path: "a.js", Changed: true}})
	model = next.(migrateModel)
	next, _ = model.Update(resultMsg{result: m.MigrationResult{Path: "b.js", Err: errors.New("boom"), Warning: "no prettier"}})
	model = next.(migrateModel)

	assert.Equal(t, 2, model.done)
	assert.Equal(t, 1, model.failed)
	assert.InDelta(t, 0.5, model.percent(), 0.0001)
	assert.Equal(t, []string{"b.js: no prettier"}, model.warnings)

	next, _ = model.Update(summaryMsg{results: []m.MigrationResult{{Changed: true}, {Err: errors.New("boom")}}})
	model = next.(migrateModel)
	require.NotNil(t, model.summary)
	assert.Equal(t, 1, model.summary.changed)

	view := model.View()
	assert.Contains(t, view, "Migrating components")
	assert.Contains(t, view, "a.js")
	assert.Contains(t, view, "warning: b.js: no prettier")
	assert.Contains(t, view, "2 file(s): 1 changed, 0 skipped, 1 failed")

	next, cmd := model.Update(doneMsg{})
	assert.True(t, next.(migrateModel).quitting)
	assert.NotNil(t, cmd)
}

func TestMigrateModel_KeepsRecentResultsBounded(t *testing.T) {
	model := newMigrateModel(ModePlan)

	for range maxRecentResults + 5 {
		next, _ := model.Update(resultMsg{result: m.MigrationResult{Path: "x.js"}})
		model = next.(migrateModel)
	}

	assert.Len(t, model.recent, maxRecentResults)
	assert.Contains(t, model.View(), "Checking components")
}

func TestMigrateModel_PercentWithoutTotal(t *testing.T) {
	assert.Zero(t, newMigrateModel(ModeMigrate).percent())
}

func TestMigrateModel_CtrlCQuits(t *testing.T) {
	next, cmd := newMigrateModel(ModeMigrate).Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, next.(migrateModel).quitting)
	assert.NotNil(t, cmd)
}
