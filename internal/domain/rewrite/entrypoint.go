package rewrite

import "strings"

// Markers the editor writes into generated entrypoint files.
const (
	MarkerAutoImports = "/* wle:auto-imports:start */"
	MarkerAutoConstants = "/* wle:auto-constants:start */"

	// legacyRuntimeLoad is how entrypoints before the current template loaded the runtime.
	legacyRuntimeLoad = "loadRuntime(RuntimeBaseName, {"
	// buttonSetup is declared by every entrypoint generated from the current template.
	buttonSetup = "function setupButtonsXR()"
)

// IsStaleEntrypoint reports whether doc is a generated entrypoint that
// predates the current template.
func IsStaleEntrypoint(doc string) bool {
	if strings.Contains(doc, legacyRuntimeLoad) {
		return true
	}

	if !strings.Contains(doc, MarkerAutoImports) {
		return false
	}

	return !strings.Contains(doc, MarkerAutoConstants) || !strings.Contains(doc, buttonSetup)
}

// RewriteIfStaleEntrypoint returns template in place of a stale entrypoint
// and doc otherwise. The boolean reports whether the replacement happened.
func RewriteIfStaleEntrypoint(doc, template string) (string, bool) {
	if !IsStaleEntrypoint(doc) {
		return doc, false
	}

	return template, true
}
