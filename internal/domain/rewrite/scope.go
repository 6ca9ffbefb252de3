package rewrite

import (
	"fmt"

	m "github.com/mouse-blink/wle-js-upgrade/internal/model"
)

// UnmatchedScopeError reports an opening brace whose scope never closes.
type UnmatchedScopeError struct {
	Offset int
}

func (e *UnmatchedScopeError) Error() string {
	return fmt.Sprintf("unmatched scope: brace at offset %d is never closed", e.Offset)
}

// FindScopeEnd returns the offset of the brace closing the one at open.
func FindScopeEnd(text string, open int) (int, error) {
	if open < 0 || open >= len(text) || text[open] != '{' {
		return 0, &UnmatchedScopeError{Offset: open}
	}

	depth := 1

	for i := open + 1; i < len(text); {
		if next := skipLiteral(text, i); next != i {
			i = next
			continue
		}

		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, nil
			}
		}

		i++
	}

	return 0, &UnmatchedScopeError{Offset: open}
}

// FindScope is FindScopeEnd returning the whole span.
func FindScope(text string, open int) (m.ScopeSpan, error) {
	end, err := FindScopeEnd(text, open)
	if err != nil {
		return m.ScopeSpan{}, err
	}

	return m.ScopeSpan{Start: open, End: end}, nil
}
