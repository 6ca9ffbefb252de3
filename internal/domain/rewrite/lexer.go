// Package rewrite implements the text transformations that turn legacy
// component registrations into class declarations.
//
// The package never builds a syntax tree. It scans raw text, matching brace
// scopes and recognizing the few statement shapes the legacy generator
// emitted. String literals, regular expression literals and comments are
// skipped while scanning so that braces inside them are not treated as
// structure.
package rewrite

import "strings"

// skipLiteral returns the offset just past the string literal, regular
// expression literal or comment starting at i. It returns i when no literal
// starts there.
func skipLiteral(text string, i int) int {
	switch text[i] {
	case '\'', '"', '`':
		return skipQuoted(text, i, text[i])
	case '/':
		if next := skipComment(text, i); next != i {
			return next
		}

		if regexAllowed(text, i) {
			return skipRegex(text, i)
		}
	}

	return i
}

// skipComment returns the offset just past the comment starting at i, or i
// when there is none.
func skipComment(text string, i int) int {
	if text[i] != '/' || i+1 >= len(text) {
		return i
	}

	switch text[i+1] {
	case '/':
		end := strings.IndexByte(text[i:], '\n')
		if end < 0 {
			return len(text)
		}

		return i + end
	case '*':
		end := strings.Index(text[i+2:], "*/")
		if end < 0 {
			return len(text)
		}

		return i + 2 + end + 2
	}

	return i
}

// skipQuoted skips a quoted literal. Single and double quoted strings cannot
// span lines, so an unterminated one ends at the line break.
func skipQuoted(text string, i int, quote byte) int {
	for j := i + 1; j < len(text); j++ {
		switch text[j] {
		case '\\':
			j++
		case quote:
			return j + 1
		case '\n':
			if quote != '`' {
				return j
			}
		}
	}

	return len(text)
}

// regexOperators are the characters after which a slash starts an expression.
const regexOperators = "(,=:[!&|?{};+-*%<>~^"

// regexKeywords are the words after which a slash starts an expression.
var regexKeywords = map[string]struct{}{
	"return": {}, "typeof": {}, "instanceof": {}, "in": {}, "of": {}, "new": {},
	"delete": {}, "void": {}, "throw": {}, "case": {}, "do": {}, "else": {},
	"yield": {}, "await": {},
}

// regexAllowed reports whether a slash at i begins a regular expression
// literal rather than a division.
func regexAllowed(text string, i int) bool {
	j := i - 1
	for j >= 0 && isSpace(text[j]) {
		j--
	}

	if j < 0 {
		return true
	}

	prev := text[j]
	if strings.IndexByte(regexOperators, prev) >= 0 {
		return true
	}

	if !isIdentPart(prev) {
		return false
	}

	k := j
	for k > 0 && isIdentPart(text[k-1]) {
		k--
	}

	_, ok := regexKeywords[text[k:j+1]]

	return ok
}

// skipRegex skips the regular expression literal starting at i, flags
// included. A slash inside a character class does not end the literal. When
// the line ends first the slash is not a literal and i is returned.
func skipRegex(text string, i int) int {
	inClass := false

	for j := i + 1; j < len(text); j++ {
		switch text[j] {
		case '\\':
			j++
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if inClass {
				continue
			}

			j++
			for j < len(text) && isIdentPart(text[j]) {
				j++
			}

			return j
		case '\n', '\r':
			return i
		}
	}

	return i
}

// skipTrivia skips whitespace and comments.
func skipTrivia(text string, i int) int {
	for i < len(text) {
		switch text[i] {
		case ' ', '\t', '\n', '\r':
			i++
			continue
		case '/':
			if next := skipComment(text, i); next != i {
				i = next
				continue
			}
		}

		return i
	}

	return i
}

// skipSpace skips whitespace only.
func skipSpace(text string, i int) int {
	for i < len(text) && isSpace(text[i]) {
		i++
	}

	return i
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// readIdent returns the identifier starting at i, or "" if there is none.
func readIdent(text string, i int) string {
	if i >= len(text) || !isIdentStart(text[i]) {
		return ""
	}

	j := i + 1
	for j < len(text) && isIdentPart(text[j]) {
		j++
	}

	return text[i:j]
}

// atWordStart reports whether an identifier at i is not the tail of a longer
// identifier or a member access.
func atWordStart(text string, i int) bool {
	if i == 0 {
		return true
	}

	prev := text[i-1]

	return !isIdentPart(prev) && prev != '.'
}

// hasKeyword reports whether the word kw starts at i and is not merely the
// prefix of a longer identifier.
func hasKeyword(text string, i int, kw string) bool {
	if !strings.HasPrefix(text[i:], kw) {
		return false
	}

	end := i + len(kw)

	return end == len(text) || !isIdentPart(text[end])
}

// findGroupEnd returns the offset of the parenthesis closing the one at open.
func findGroupEnd(text string, open int) (int, bool) {
	depth := 0

	for i := open; i < len(text); {
		if next := skipLiteral(text, i); next != i {
			i = next
			continue
		}

		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, true
			}
		}

		i++
	}

	return 0, false
}
