package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/wle-js-upgrade/internal/adapter"
	"github.com/mouse-blink/wle-js-upgrade/internal/controller"
	m "github.com/mouse-blink/wle-js-upgrade/internal/model"
)

// ErrNoFilesMatched is returned when the patterns resolve to no files.
var ErrNoFilesMatched = errors.New("no files matched")

// MigrateArgs contains the arguments for migrating a set of files.
type MigrateArgs struct {
	Patterns []string
	Exclude  []string
	// Parallel bounds how many files are migrated at once; values below 1 mean 1.
	Parallel int
	DryRun   bool
	Format   bool
}

// Workflow defines the operations exposed to the command line.
type Workflow interface {
	// Migrate rewrites every file the patterns resolve to. Per-file failures do
	// not stop the run; they are joined into the returned error.
	Migrate(ctx context.Context, args MigrateArgs) ([]m.MigrationResult, error)
	// Plan reports what Migrate would do without touching any file.
	Plan(ctx context.Context, args MigrateArgs) ([]m.MigrationResult, error)
	// Preview writes the migrated content of one file to w.
	Preview(ctx context.Context, path m.Path, w io.Writer) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	ui        controller.UI
	orch      Orchestrator
	logger    *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided collaborators.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	ui controller.UI,
	orch Orchestrator,
	logger *slog.Logger,
) Workflow {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &workflow{
		fsAdapter: fsAdapter,
		ui:        ui,
		orch:      orch,
		logger:    logger,
	}
}

func (w *workflow) Migrate(ctx context.Context, args MigrateArgs) ([]m.MigrationResult, error) {
	return w.run(ctx, args, controller.WithMigrateMode())
}

func (w *workflow) Plan(ctx context.Context, args MigrateArgs) ([]m.MigrationResult, error) {
	args.DryRun = true
	args.Format = false

	return w.run(ctx, args, controller.WithPlanMode())
}

func (w *workflow) Preview(_ context.Context, path m.Path, out io.Writer) error {
	info, err := w.fsAdapter.FileInfo(path)
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	content, err := w.fsAdapter.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	t, err := w.orch.Transform(string(content))
	if err != nil {
		return fmt.Errorf("failed to migrate %s: %w", path, err)
	}

	if _, err := io.WriteString(out, t.Content); err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}

	return nil
}

func (w *workflow) run(ctx context.Context, args MigrateArgs, mode controller.StartOption) ([]m.MigrationResult, error) {
	paths, err := w.fsAdapter.Get(args.Patterns, args.Exclude)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve patterns: %w", err)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoFilesMatched, args.Patterns)
	}

	if err := w.ui.Start(mode); err != nil {
		return nil, fmt.Errorf("failed to start UI: %w", err)
	}

	w.ui.DisplayUpcoming(len(paths))

	results, err := w.migrateAll(ctx, paths, args)

	w.ui.DisplaySummary(results)
	w.ui.Close()
	w.ui.Wait()

	if uiErr := w.ui.Err(); uiErr != nil {
		w.logger.Warn("progress display stopped", slog.Any("error", uiErr))
		err = errors.Join(err, fmt.Errorf("UI failed: %w", uiErr))
	}

	return results, err
}

// migrateAll migrates paths with at most args.Parallel files in flight. The
// results keep the order of paths; files not reached before cancellation are
// left out.
func (w *workflow) migrateAll(ctx context.Context, paths []m.Path, args MigrateArgs) ([]m.MigrationResult, error) {
	parallel := args.Parallel
	if parallel <= 0 {
		parallel = 1
	}

	opts := MigrateOptions{DryRun: args.DryRun, Format: args.Format}

	results := make([]m.MigrationResult, len(paths))
	reached := make([]bool, len(paths))

	var (
		mu   sync.Mutex
		errs []error
	)

	g := new(errgroup.Group)
	g.SetLimit(parallel)

	for i, path := range paths {
		if ctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}

			w.logger.Debug("migrating file", slog.String("path", string(path)))

			result, err := w.orch.Migrate(ctx, path, opts)

			results[i] = result
			reached[i] = true

			w.ui.DisplayResult(result)

			if err != nil {
				w.logger.Error("migration failed", slog.String("path", string(path)), slog.Any("error", err))

				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}

			return nil
		})
	}

	_ = g.Wait()

	done := make([]m.MigrationResult, 0, len(results))

	for i, result := range results {
		if reached[i] {
			done = append(done, result)
		}
	}

	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}

	return done, errors.Join(errs...)
}
