package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mouse-blink/wle-js-upgrade/internal/adapter"
	"github.com/mouse-blink/wle-js-upgrade/internal/domain/rewrite"
	m "github.com/mouse-blink/wle-js-upgrade/internal/model"
)

// ErrFileNotFound is returned when the file to migrate does not exist.
var ErrFileNotFound = errors.New("file not found")

// Transformation is the outcome of running the rewrite pipeline on one document.
type Transformation struct {
	Content            string
	EntrypointReplaced bool
	// Skipped is true when the document opted out with an ignore directive.
	Skipped bool
	Context *m.RewriteContext
	// Methods maps each rewritten component type name to its method entries.
	Methods map[string][]m.MethodEntry
}

// MigrateOptions controls the side effects of Migrate.
type MigrateOptions struct {
	// DryRun computes the result without writing or formatting the file.
	DryRun bool
	// Format runs the external formatter on rewritten files.
	Format bool
}

// Orchestrator runs the rewrite pipeline for one file at a time: entrypoint
// detection, component rewriting, import rendering and final assembly.
type Orchestrator interface {
	Transform(doc string) (Transformation, error)
	Migrate(ctx context.Context, path m.Path, opts MigrateOptions) (m.MigrationResult, error)
}

type orchestrator struct {
	fsAdapter adapter.SourceFSAdapter
	formatter adapter.Formatter
	templates adapter.TemplateStore
	logger    *slog.Logger
}

// NewOrchestrator constructs an Orchestrator backed by the provided adapters.
// The formatter may be nil, in which case formatting is skipped.
func NewOrchestrator(
	fsAdapter adapter.SourceFSAdapter,
	formatter adapter.Formatter,
	templates adapter.TemplateStore,
	logger *slog.Logger,
) Orchestrator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &orchestrator{
		fsAdapter: fsAdapter,
		formatter: formatter,
		templates: templates,
		logger:    logger,
	}
}

func (o *orchestrator) Transform(doc string) (Transformation, error) {
	rule := fileIgnoreRule(doc)
	if rule.all {
		return Transformation{Content: doc, Skipped: true, Context: m.NewRewriteContext()}, nil
	}

	if !rule.ignores(stageEntrypoint) && rewrite.IsStaleEntrypoint(doc) {
		template, err := o.templates.Entrypoint()
		if err != nil {
			return Transformation{}, err
		}

		return Transformation{Content: template, EntrypointReplaced: true, Context: m.NewRewriteContext()}, nil
	}

	rctx := m.NewRewriteContext()
	if rule.ignores(stageComponents) {
		return Transformation{Content: doc, Context: rctx}, nil
	}

	methods, err := componentMethods(doc)
	if err != nil {
		return Transformation{}, err
	}

	body, err := rewrite.RewriteComponents(doc, rctx, o.logger)
	if err != nil {
		return Transformation{}, err
	}

	content := body
	if imports := rewrite.RenderImports(rctx); imports != "" {
		content = imports + "\n" + body
	}

	return Transformation{Content: content, Context: rctx, Methods: methods}, nil
}

// componentMethods lists the method entries of every registration in doc.
func componentMethods(doc string) (map[string][]m.MethodEntry, error) {
	defs, err := rewrite.FindComponents(doc)
	if err != nil {
		return nil, err
	}

	methods := make(map[string][]m.MethodEntry, len(defs))

	for _, def := range defs {
		entries, err := rewrite.ParseMethodEntries(def.MethodsText)
		if err != nil {
			return nil, err
		}

		methods[def.TypeName] = append(methods[def.TypeName], entries...)
	}

	return methods, nil
}

// Migrate rewrites the file at path in place. Failures leave the file
// untouched and are reported both in the returned result and as the error.
// A formatter failure only produces a warning.
func (o *orchestrator) Migrate(ctx context.Context, path m.Path, opts MigrateOptions) (m.MigrationResult, error) {
	result := m.MigrationResult{Path: path}

	fail := func(err error) (m.MigrationResult, error) {
		result.Err = err
		return result, err
	}

	info, err := o.fsAdapter.FileInfo(path)
	if err != nil || info.IsDir() {
		return fail(fmt.Errorf("%w: %s", ErrFileNotFound, path))
	}

	content, err := o.fsAdapter.ReadFile(path)
	if err != nil {
		return fail(fmt.Errorf("failed to read %s: %w", path, err))
	}

	doc := string(content)

	t, err := o.Transform(doc)
	if err != nil {
		return fail(fmt.Errorf("failed to migrate %s: %w", path, err))
	}

	result.Skipped = t.Skipped
	result.EntrypointReplaced = t.EntrypointReplaced
	result.Components = t.Context.Components
	result.Methods = t.Methods
	result.Imports = importsOf(t.Context)
	result.Changed = t.Content != doc

	if !result.Changed || opts.DryRun {
		return result, nil
	}

	if err := o.fsAdapter.WriteFile(path, []byte(t.Content), info.Mode().Perm()); err != nil {
		return fail(fmt.Errorf("failed to write %s: %w", path, err))
	}

	o.logger.Debug("file migrated", slog.String("path", string(path)), slog.Int("components", len(t.Context.Components)))

	if opts.Format && o.formatter != nil {
		if err := o.formatter.Format(ctx, path); err != nil {
			o.logger.Warn("formatting skipped", slog.String("path", string(path)), slog.Any("error", err))
			result.Warning = err.Error()
		} else {
			result.Formatted = true
		}
	}

	return result, nil
}

func importsOf(rctx *m.RewriteContext) map[m.Library][]string {
	imports := make(map[m.Library][]string)

	for _, set := range rctx.ImportSets() {
		if set.Len() > 0 {
			imports[set.Library] = set.Symbols()
		}
	}

	return imports
}
