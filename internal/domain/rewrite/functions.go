package rewrite

import (
	"strings"

	m "github.com/mouse-blink/wle-js-upgrade/internal/model"
)

// reservedWords can precede "(...) {" without starting a method entry.
var reservedWords = map[string]struct{}{
	"if":       {},
	"for":      {},
	"while":    {},
	"switch":   {},
	"catch":    {},
	"with":     {},
	"function": {},
	"return":   {},
	"else":     {},
	"do":       {},
	"try":      {},
	"finally":  {},
	"new":      {},
	"typeof":   {},
	"await":    {},
	"yield":    {},
}

// methodMatch is a method entry together with the offset its header starts at.
type methodMatch struct {
	entry m.MethodEntry
	start int
}

// header renders the class method form of the entry header.
func (mm methodMatch) header() string {
	var b strings.Builder

	if mm.entry.IsAsync {
		b.WriteString("async ")
	}

	b.WriteString(mm.entry.Name)
	b.WriteByte('(')
	b.WriteString(mm.entry.Params)
	b.WriteString(") {")

	return b.String()
}

// RewriteFunctions converts the entries of a legacy methods object into
// class methods. block is the text between the braces of the object.
//
// Symbol rules run first over the whole block, bodies included. Then every
// top-level "name: [async] function(params) {" header becomes
// "[async ]name(params) {" and the comma separating it from the next entry
// becomes a line break. Anything else is kept as is.
func RewriteFunctions(block string, ctx *m.RewriteContext) (string, error) {
	return rewriteFunctions(block, DefaultSymbolTable(), ctx)
}

func rewriteFunctions(block string, table SymbolTable, ctx *m.RewriteContext) (string, error) {
	block = table.Apply(block, ctx)

	matches, err := scanMethods(block)
	if err != nil {
		return "", err
	}

	var b strings.Builder

	b.Grow(len(block))

	last := 0

	for _, mm := range matches {
		b.WriteString(block[last:mm.start])
		b.WriteString(mm.header())
		b.WriteString(block[mm.entry.Body.Start+1 : mm.entry.Body.End+1])

		last = mm.entry.Body.End + 1
		if last < len(block) && block[last] == ',' {
			b.WriteByte('\n')

			last++
		}
	}

	b.WriteString(block[last:])

	return b.String(), nil
}

// ParseMethodEntries lists the method entries at the top level of block.
func ParseMethodEntries(block string) ([]m.MethodEntry, error) {
	matches, err := scanMethods(block)
	if err != nil {
		return nil, err
	}

	entries := make([]m.MethodEntry, 0, len(matches))
	for _, mm := range matches {
		entries = append(entries, mm.entry)
	}

	return entries, nil
}

// scanMethods walks the top level of an object literal body. Nested scopes
// are stepped over as a whole, so headers inside method bodies or nested
// object literals are left alone.
func scanMethods(block string) ([]methodMatch, error) {
	var found []methodMatch

	for i := 0; i < len(block); {
		if next := skipLiteral(block, i); next != i {
			i = next
			continue
		}

		c := block[i]

		switch {
		case c == '{':
			end, err := FindScopeEnd(block, i)
			if err != nil {
				return nil, err
			}

			i = end + 1
		case isIdentStart(c) && atWordStart(block, i):
			mm, ok := matchMethodHeader(block, i)
			if !ok {
				i += len(readIdent(block, i))
				continue
			}

			end, err := FindScopeEnd(block, mm.entry.Body.Start)
			if err != nil {
				return nil, err
			}

			mm.entry.Body.End = end
			found = append(found, mm)
			i = end + 1
		default:
			i++
		}
	}

	return found, nil
}

// matchMethodHeader recognizes
//
//	[async] name [: [async] [function]] (params) {
//
// starting at i. On success the returned entry has Body.Start set to the
// offset of the opening brace.
func matchMethodHeader(text string, i int) (methodMatch, bool) {
	mm := methodMatch{start: i}

	name := readIdent(text, i)
	j := i + len(name)

	if name == "async" {
		k := skipSpace(text, j)
		if next := readIdent(text, k); k > j && next != "" {
			mm.entry.IsAsync = true
			name = next
			j = k + len(next)
		}
	}

	if _, reserved := reservedWords[name]; reserved {
		return methodMatch{}, false
	}

	mm.entry.Name = name

	k := skipSpace(text, j)
	if k < len(text) && text[k] == ':' {
		k = skipSpace(text, k+1)

		if hasKeyword(text, k, "async") {
			mm.entry.IsAsync = true
			k = skipSpace(text, k+len("async"))
		}

		if hasKeyword(text, k, "function") {
			k = skipSpace(text, k+len("function"))
		}
	}

	if k >= len(text) || text[k] != '(' {
		return methodMatch{}, false
	}

	closeParen, ok := findGroupEnd(text, k)
	if !ok {
		return methodMatch{}, false
	}

	mm.entry.Params = text[k+1 : closeParen]

	k = skipSpace(text, closeParen+1)
	if k >= len(text) || text[k] != '{' {
		return methodMatch{}, false
	}

	mm.entry.Body.Start = k

	return mm, true
}
