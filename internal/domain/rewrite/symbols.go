package rewrite

import (
	"regexp"
	"sort"
	"strings"

	m "github.com/mouse-blink/wle-js-upgrade/internal/model"
)

// Stage groups symbol rules. Stages are applied in ascending order.
type Stage int

// Available stages.
const (
	StageConstructors Stage = iota + 1
	StageMath
	StageGlobals
	StageNested
	StageRenames
)

// SymbolRule replaces every match of Pattern with Replacement.
// When Import is set, the expanded Import template is recorded in the import
// set of Library for every match. Replacement and Import may refer to
// submatches with ${n}.
type SymbolRule struct {
	Stage       Stage
	Pattern     *regexp.Regexp
	Replacement string
	Library     m.Library
	Import      string
}

// Apply rewrites text and records the symbols the replacements reference.
func (r SymbolRule) Apply(text string, ctx *m.RewriteContext) string {
	matches := r.Pattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder

	b.Grow(len(text))

	last := 0

	for _, loc := range matches {
		b.WriteString(text[last:loc[0]])
		b.Write(r.Pattern.ExpandString(nil, r.Replacement, text, loc))

		if r.Import != "" && ctx != nil {
			symbol := string(r.Pattern.ExpandString(nil, r.Import, text, loc))
			ctx.Imports(r.Library).Add(symbol)
		}

		last = loc[1]
	}

	b.WriteString(text[last:])

	return b.String()
}

// SymbolTable is a list of rules.
type SymbolTable []SymbolRule

// Apply runs every rule over text, stage by stage. Rules of the same stage
// keep their table order.
func (t SymbolTable) Apply(text string, ctx *m.RewriteContext) string {
	for _, rule := range t.ordered() {
		text = rule.Apply(text, ctx)
	}

	return text
}

func (t SymbolTable) ordered() SymbolTable {
	if sort.SliceIsSorted(t, func(i, j int) bool { return t[i].Stage < t[j].Stage }) {
		return t
	}

	sorted := append(SymbolTable(nil), t...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Stage < sorted[j].Stage })

	return sorted
}

// engineGlobals are properties of the former WL global that now live on the
// component's engine instance.
var engineGlobals = []string{
	"scene",
	"physics",
	"textures",
	"canvas",
	"arSupported",
	"vrSupported",
	"onSceneLoaded",
	"onXRSessionStart",
	"onXRSessionEnd",
	"onXRSupported",
	"xrFrame",
}

// xrProperties moved under engine.xr.
var xrProperties = map[string]string{
	"xrSession":     "session",
	"xrBaseLayer":   "baseLayer",
	"xrFramebuffer": "framebuffer",
}

var methodRenames = map[string]string{
	"getTranslationWorld":      "getPositionWorld",
	"getTranslationLocal":      "getPositionLocal",
	"resetTranslationRotation": "resetPositionRotation",
}

// engineConstructors take the engine as their first argument.
var engineConstructors = []string{"Texture"}

// DefaultSymbolTable returns the rules applied to method bodies.
func DefaultSymbolTable() SymbolTable {
	ctors := strings.Join(engineConstructors, "|")

	table := SymbolTable{
		{
			Stage:       StageConstructors,
			Pattern:     regexp.MustCompile(`\bnew\s+WL\.(` + ctors + `)\s*\(\s*\)`),
			Replacement: "new ${1}(this.engine)",
			Library:     m.LibraryEngine,
			Import:      "${1}",
		},
		{
			Stage:       StageConstructors,
			Pattern:     regexp.MustCompile(`\bnew\s+WL\.(` + ctors + `)\s*\(`),
			Replacement: "new ${1}(this.engine, ",
			Library:     m.LibraryEngine,
			Import:      "${1}",
		},
		{
			Stage:       StageMath,
			Pattern:     regexp.MustCompile(`\bglMatrix\.(\w+)\.`),
			Replacement: "${1}.",
			Library:     m.LibraryMath,
			Import:      "${1}",
		},
		{
			Stage:       StageGlobals,
			Pattern:     regexp.MustCompile(`\bWL\.(` + strings.Join(engineGlobals, "|") + `)\b`),
			Replacement: "this.engine.${1}",
		},
	}

	for _, legacy := range sortedKeys(xrProperties) {
		table = append(table, SymbolRule{
			Stage:       StageNested,
			Pattern:     regexp.MustCompile(`\bWL\.` + legacy + `\b`),
			Replacement: "this.engine.xr." + xrProperties[legacy],
		})
	}

	for _, legacy := range sortedKeys(methodRenames) {
		table = append(table, SymbolRule{
			Stage:       StageRenames,
			Pattern:     regexp.MustCompile(`\b` + legacy + `\b`),
			Replacement: methodRenames[legacy],
		})
	}

	return table
}

// propertyTypeRule strips the WL namespace from property type annotations.
var propertyTypeRule = SymbolRule{
	Pattern:     regexp.MustCompile(`\bWL\.Type\.`),
	Replacement: "Type.",
	Library:     m.LibraryEngine,
	Import:      "Type",
}

func sortedKeys(in map[string]string) []string {
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
