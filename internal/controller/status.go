package controller

import (
	"strings"

	m "github.com/mouse-blink/wle-js-upgrade/internal/model"
)

// Status labels shown per file.
const (
	statusFailed       = "failed"
	statusSkipped      = "skipped"
	statusReplaced     = "replaced"
	statusMigrated     = "migrated"
	statusWouldMigrate = "would migrate"
	statusWouldReplace = "would replace"
	statusUnchanged    = "unchanged"
)

func statusOf(result m.MigrationResult, mode StartMode) string {
	switch {
	case result.Failed():
		return statusFailed
	case result.Skipped:
		return statusSkipped
	case result.EntrypointReplaced && mode == ModePlan:
		return statusWouldReplace
	case result.EntrypointReplaced:
		return statusReplaced
	case result.Changed && mode == ModePlan:
		return statusWouldMigrate
	case result.Changed:
		return statusMigrated
	default:
		return statusUnchanged
	}
}

// importList renders the imports of a result as "Component, Type; vec3".
func importList(result m.MigrationResult) string {
	groups := make([]string, 0, len(result.Imports))

	for _, lib := range m.Libraries {
		if symbols := result.Imports[lib]; len(symbols) > 0 {
			groups = append(groups, strings.Join(symbols, ", "))
		}
	}

	return strings.Join(groups, "; ")
}

// methodList renders the methods of one component as "init(), async onPress(e)".
func methodList(entries []m.MethodEntry) string {
	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		name := entry.Name + "(" + entry.Params + ")"
		if entry.IsAsync {
			name = "async " + name
		}

		names = append(names, name)
	}

	return strings.Join(names, ", ")
}

type tally struct {
	changed int
	failed  int
	skipped int
}

func countResults(results []m.MigrationResult) tally {
	var t tally

	for _, result := range results {
		switch {
		case result.Failed():
			t.failed++
		case result.Skipped:
			t.skipped++
		case result.Changed:
			t.changed++
		}
	}

	return t
}
