package model

// MigrationResult describes what happened to a single file.
type MigrationResult struct {
	Path Path
	// Components lists the type names of the registrations that were rewritten.
	Components []string
	// Methods maps each component type name to the methods it declares.
	Methods map[string][]MethodEntry
	// Imports maps each library to the symbols imported from it.
	Imports map[Library][]string
	// EntrypointReplaced is true when the file was swapped for the bootstrap template.
	EntrypointReplaced bool
	// Skipped is true when the file opted out of migration.
	Skipped   bool
	Changed   bool
	Formatted bool
	Warning   string // non-fatal problem, e.g. the formatter could not run
	Err       error  // migration failure; the file was left untouched
}

// Failed reports whether the migration of the file failed.
func (r MigrationResult) Failed() bool {
	return r.Err != nil
}
