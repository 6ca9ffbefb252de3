package model

import "sort"

// Library is the module specifier an import line pulls symbols from.
type Library string

const (
	// LibraryEngine is the engine API module.
	LibraryEngine Library = "@wonderlandengine/api"
	// LibraryMath is the math library module.
	LibraryMath Library = "gl-matrix"
)

// Libraries lists the libraries in the order their imports are rendered.
var Libraries = []Library{LibraryEngine, LibraryMath}

// ImportSet is the set of symbols imported from one library.
// Adding a symbol twice has no effect.
type ImportSet struct {
	Library Library
	symbols map[string]struct{}
}

// NewImportSet creates an empty ImportSet for lib.
func NewImportSet(lib Library) *ImportSet {
	return &ImportSet{Library: lib, symbols: make(map[string]struct{})}
}

// Add records symbol in the set.
func (s *ImportSet) Add(symbol string) {
	if symbol == "" {
		return
	}

	if s.symbols == nil {
		s.symbols = make(map[string]struct{})
	}

	s.symbols[symbol] = struct{}{}
}

// Len returns the number of distinct symbols.
func (s *ImportSet) Len() int {
	return len(s.symbols)
}

// Symbols returns the recorded symbols in lexicographic order.
func (s *ImportSet) Symbols() []string {
	out := make([]string, 0, len(s.symbols))
	for symbol := range s.symbols {
		out = append(out, symbol)
	}

	sort.Strings(out)

	return out
}

// RewriteContext accumulates what one file's rewrite discovered.
// It is created per file and never shared between files.
type RewriteContext struct {
	Engine     *ImportSet
	Math       *ImportSet
	Components []string
}

// NewRewriteContext creates an empty RewriteContext.
func NewRewriteContext() *RewriteContext {
	return &RewriteContext{
		Engine: NewImportSet(LibraryEngine),
		Math:   NewImportSet(LibraryMath),
	}
}

// Imports returns the set collecting symbols of lib.
func (c *RewriteContext) Imports(lib Library) *ImportSet {
	if lib == LibraryMath {
		return c.Math
	}

	return c.Engine
}

// ImportSets returns the sets in rendering order.
func (c *RewriteContext) ImportSets() []*ImportSet {
	sets := make([]*ImportSet, 0, len(Libraries))
	for _, lib := range Libraries {
		sets = append(sets, c.Imports(lib))
	}

	return sets
}
