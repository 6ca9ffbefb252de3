// Package cmd provides the root command and CLI setup for wle-js-upgrade.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/wle-js-upgrade/internal/adapter"
	"github.com/mouse-blink/wle-js-upgrade/internal/config"
	"github.com/mouse-blink/wle-js-upgrade/internal/controller"
	"github.com/mouse-blink/wle-js-upgrade/internal/domain"
	m "github.com/mouse-blink/wle-js-upgrade/internal/model"
)

// newWorkflow builds the workflow for a command run. Tests replace it.
var newWorkflow = defaultWorkflow

var configFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

const rootLongDescription = `wle-js-upgrade migrates Wonderland Engine components written against the
legacy WL.registerComponent API to the class based API.

Every registration call is replaced by an "export class ... extends Component"
declaration, engine globals are rewritten to this.engine, and the imports
the new code needs are added at the top of the file. Generated entrypoints
that predate the current template are replaced by it.

Patterns are globs ("js/**/*.js") or paths; a directory stands for every
.js and .mjs file below it. node_modules is never searched.

Add "// wle-js-upgrade:ignore" at the top of a file to leave it untouched.`

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "wle-js-upgrade [patterns...]",
		Short:         "Migrate legacy Wonderland Engine components to classes",
		Long:          rootLongDescription,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			_, err = newWorkflow(cmd, cfg, logger).Migrate(cmd.Context(), migrateArgs(cfg, args))

			return err
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFlag, "config", "", "config file (default is ./.wle-js-upgrade.yaml)")
	flags.BoolP("verbose", "v", false, "log every step of the migration")
	flags.IntP("parallel", "p", 1, "number of files migrated at once")
	flags.BoolP("dry-run", "n", false, "report what would change without writing files")
	flags.Bool("format", true, "run the formatter on rewritten files")
	flags.String("formatter", config.DefaultFormatter, "formatter command; the file path is appended")
	flags.String("template", "", "entrypoint template replacing stale entrypoints (default is the bundled one)")
	flags.StringArrayP("exclude", "x", nil, "exclude files matching glob (can be repeated)")

	return cmd
}

// loadSettings resolves the configuration of a run and the logger it reports to.
func loadSettings(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.NewLoader(wd, configFlag, cmd.Flags()).Load()
	if err != nil {
		return nil, nil, err
	}

	return cfg, newLogger(cmd, cfg.Verbose, controller.IsTTY(cmd.OutOrStdout())), nil
}

// newLogger logs to stderr. The TUI redraws stdout, so only warnings are
// shown next to it unless verbose output was asked for.
func newLogger(cmd *cobra.Command, verbose, tty bool) *slog.Logger {
	level := slog.LevelInfo

	switch {
	case verbose:
		level = slog.LevelDebug
	case tty:
		level = slog.LevelWarn
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func defaultWorkflow(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) domain.Workflow {
	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
	fsAdapter := adapter.NewLocalSourceFSAdapter()

	var formatter adapter.Formatter
	if cfg.Format {
		formatter = adapter.NewExecFormatter(cfg.Formatter)
	}

	orchestrator := domain.NewOrchestrator(
		fsAdapter,
		formatter,
		adapter.NewTemplateStore(fsAdapter, m.Path(cfg.Template)),
		logger,
	)

	return domain.NewWorkflow(fsAdapter, ui, orchestrator, logger)
}

func migrateArgs(cfg *config.Config, patterns []string) domain.MigrateArgs {
	return domain.MigrateArgs{
		Patterns: patterns,
		Exclude:  cfg.Exclude,
		Parallel: cfg.Parallel,
		DryRun:   cfg.DryRun,
		Format:   cfg.Format,
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// An interrupt stops the run between two files.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}
