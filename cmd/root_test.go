package cmd

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/wle-js-upgrade/internal/config"
	"github.com/mouse-blink/wle-js-upgrade/internal/domain"
	domainmocks "github.com/mouse-blink/wle-js-upgrade/internal/domain/mocks"
	m "github.com/mouse-blink/wle-js-upgrade/internal/model"
)

// useMockWorkflow makes every command in the test run against wf and
// records the configuration it was built with.
func useMockWorkflow(t *testing.T, wf domain.Workflow) *config.Config {
	t.Helper()
	t.Chdir(t.TempDir())

	var got config.Config

	original := newWorkflow
	newWorkflow = func(_ *cobra.Command, cfg *config.Config, _ *slog.Logger) domain.Workflow {
		got = *cfg
		return wf
	}

	t.Cleanup(func() { newWorkflow = original })

	return &got
}

func newTestRootCmd(args ...string) (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd(), newPreviewCmd())
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	return cmd, &out
}

func TestRootCmd_MigratesWithDefaults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cfg := useMockWorkflow(t, mockWorkflow)

	mockWorkflow.On("Migrate", mock.Anything, mock.MatchedBy(func(args domain.MigrateArgs) bool {
		return len(args.Patterns) == 1 && args.Patterns[0] == "js/**/*.js" &&
			len(args.Exclude) == 0 &&
			args.Parallel == 1 &&
			args.Format &&
			!args.DryRun
	})).Return([]m.MigrationResult{{Path: "js/a.js", Changed: true}}, nil)

	cmd, _ := newTestRootCmd("js/**/*.js")
	require.NoError(t, cmd.Execute())

	assert.Equal(t, config.DefaultFormatter, cfg.Formatter)
}

func TestRootCmd_Flags(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cfg := useMockWorkflow(t, mockWorkflow)

	mockWorkflow.On("Migrate", mock.Anything, mock.MatchedBy(func(args domain.MigrateArgs) bool {
		return args.Parallel == 4 &&
			args.DryRun &&
			!args.Format &&
			len(args.Exclude) == 2 &&
			args.Exclude[0] == "js/vendor/**" &&
			len(args.Patterns) == 2
	})).Return(nil, nil)

	cmd, _ := newTestRootCmd(
		"-p", "4", "-n", "--format=false",
		"-x", "js/vendor/**", "-x", "**/*.min.js",
		"--template", "tpl/index.js",
		"js", "lib/*.mjs",
	)
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "tpl/index.js", cfg.Template)
}

func TestRootCmd_ConfigFile(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useMockWorkflow(t, mockWorkflow)

	require.NoError(t, os.WriteFile(".wle-js-upgrade.yaml", []byte("parallel: 3\nexclude: [\"dist/**\"]\n"), 0o644))

	mockWorkflow.On("Migrate", mock.Anything, mock.MatchedBy(func(args domain.MigrateArgs) bool {
		return args.Parallel == 3 && len(args.Exclude) == 1 && args.Exclude[0] == "dist/**"
	})).Return(nil, nil)

	cmd, _ := newTestRootCmd("js")
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_ExplicitConfigFlag(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useMockWorkflow(t, mockWorkflow)

	path := filepath.Join(t.TempDir(), "upgrade.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parallel: 6\n"), 0o644))

	mockWorkflow.On("Migrate", mock.Anything, mock.MatchedBy(func(args domain.MigrateArgs) bool {
		return args.Parallel == 6
	})).Return(nil, nil)

	cmd, _ := newTestRootCmd("--config", path, "js")
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useMockWorkflow(t, mockWorkflow)

	cmd, _ := newTestRootCmd("-p", "0", "js")
	err := cmd.Execute()
	require.ErrorIs(t, err, config.ErrInvalidParallel)
}

func TestRootCmd_RequiresPatterns(t *testing.T) {
	useMockWorkflow(t, domainmocks.NewMockWorkflow(t))

	cmd, _ := newTestRootCmd()
	require.Error(t, cmd.Execute())
}

func TestRootCmd_PropagatesFailures(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useMockWorkflow(t, mockWorkflow)

	boom := errors.New("boom")
	mockWorkflow.On("Migrate", mock.Anything, mock.Anything).Return(nil, boom)

	cmd, _ := newTestRootCmd("js")
	require.ErrorIs(t, cmd.Execute(), boom)
}

func TestRootCmd_PassesContext(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useMockWorkflow(t, mockWorkflow)

	type key struct{}

	ctx := context.WithValue(context.Background(), key{}, "run")

	mockWorkflow.On("Migrate", mock.MatchedBy(func(got context.Context) bool {
		return got.Value(key{}) == "run"
	}), mock.Anything).Return(nil, nil)

	cmd, _ := newTestRootCmd("js")
	require.NoError(t, cmd.ExecuteContext(ctx))
}

func TestListCmd_Plans(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useMockWorkflow(t, mockWorkflow)

	mockWorkflow.On("Plan", mock.Anything, mock.MatchedBy(func(args domain.MigrateArgs) bool {
		return len(args.Patterns) == 1 && args.Patterns[0] == "js" &&
			len(args.Exclude) == 1 && args.Exclude[0] == "js/vendor/**"
	})).Return(nil, nil)

	cmd, _ := newTestRootCmd("list", "-x", "js/vendor/**", "js")
	require.NoError(t, cmd.Execute())
}

func TestPreviewCmd_WritesToStdout(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useMockWorkflow(t, mockWorkflow)

	mockWorkflow.On("Preview", mock.Anything, m.Path("js/a.js"), mock.Anything).
		Run(func(args mock.Arguments) {
			_, _ = args.Get(2).(*bytes.Buffer).WriteString("export class A extends Component {}\n")
		}).
		Return(nil)

	cmd, out := newTestRootCmd("preview", "js/a.js")
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "export class A extends Component {}\n", out.String())
}

func TestPreviewCmd_RequiresOneFile(t *testing.T) {
	useMockWorkflow(t, domainmocks.NewMockWorkflow(t))

	cmd, _ := newTestRootCmd("preview", "a.js", "b.js")
	require.Error(t, cmd.Execute())
}

func TestNewLogger_Levels(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetErr(&bytes.Buffer{})

	ctx := context.Background()

	assert.True(t, newLogger(cmd, true, true).Enabled(ctx, slog.LevelDebug))
	assert.False(t, newLogger(cmd, false, false).Enabled(ctx, slog.LevelDebug))
	assert.True(t, newLogger(cmd, false, false).Enabled(ctx, slog.LevelInfo))
	assert.False(t, newLogger(cmd, false, true).Enabled(ctx, slog.LevelInfo))
	assert.True(t, newLogger(cmd, false, true).Enabled(ctx, slog.LevelWarn))
}

func TestDefaultWorkflow_Preview(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "comp.js")
	require.NoError(t, os.WriteFile(path, []byte("WL.registerComponent('a', {}, {});\n"), 0o644))

	var out bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	wf := defaultWorkflow(cmd, config.Default(), slog.New(slog.DiscardHandler))
	require.NoError(t, wf.Preview(context.Background(), m.Path(path), &out))

	assert.Contains(t, out.String(), "export class A extends Component {")
	assert.Contains(t, out.String(), "import {Component} from '@wonderlandengine/api';")
}
