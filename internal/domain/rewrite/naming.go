package rewrite

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ClassName derives a class identifier from a registration type name.
//
// The name is split on every character that is not a letter, digit or
// underscore. Each token gets its first letter upper-cased and keeps the rest.
// A leading token that starts with a digit is dropped.
//
//	"my-comp"       -> "MyComp"
//	"score_display" -> "Score_display"
//	"3d-view"       -> "View"
func ClassName(typeName string) string {
	tokens := strings.FieldsFunc(typeName, func(r rune) bool {
		return r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var b strings.Builder

	for i, token := range tokens {
		first, size := utf8.DecodeRuneInString(token)
		if i == 0 && unicode.IsDigit(first) {
			continue
		}

		b.WriteRune(unicode.ToUpper(first))
		b.WriteString(token[size:])
	}

	return b.String()
}
