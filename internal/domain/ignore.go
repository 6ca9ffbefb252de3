package domain

import (
	"strings"
)

const ignoreDirective = "wle-js-upgrade:ignore"

// Stages that an ignore directive can name.
const (
	stageEntrypoint = "entrypoint"
	stageComponents = "components"
)

type ignoreRule struct {
	all   bool
	names map[string]struct{}
}

func (r ignoreRule) ignores(stage string) bool {
	if r.all {
		return true
	}

	if len(r.names) == 0 {
		return false
	}

	_, ok := r.names[stage]

	return ok
}

func mergeIgnoreRule(dst *ignoreRule, src ignoreRule) {
	if src.all {
		dst.all = true
		dst.names = nil

		return
	}

	if dst.all || len(src.names) == 0 {
		return
	}

	if dst.names == nil {
		dst.names = make(map[string]struct{}, len(src.names))
	}

	for name := range src.names {
		dst.names[name] = struct{}{}
	}
}

func parseIgnoreDirective(commentText string) (ignoreRule, bool) {
	s := strings.TrimSpace(commentText)
	if strings.HasPrefix(s, "//") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "//"))
	} else if strings.HasPrefix(s, "/*") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "/*"))
		s = strings.TrimSpace(strings.TrimSuffix(s, "*/"))
	}

	if !strings.HasPrefix(s, ignoreDirective) {
		return ignoreRule{}, false
	}

	rest := strings.TrimSpace(strings.TrimPrefix(s, ignoreDirective))
	if rest == "" {
		return ignoreRule{all: true}, true
	}

	parts := strings.Split(rest, ",")
	rule := ignoreRule{names: make(map[string]struct{}, len(parts))}

	for _, part := range parts {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}

		rule.names[name] = struct{}{}
	}

	if len(rule.names) == 0 {
		rule.all = true
		rule.names = nil
	}

	return rule, true
}

// fileIgnoreRule merges the directives found in the comments that open the
// document, before its first statement.
func fileIgnoreRule(doc string) ignoreRule {
	var rule ignoreRule

	for _, comment := range leadingComments(doc) {
		r, ok := parseIgnoreDirective(comment)
		if !ok {
			continue
		}

		mergeIgnoreRule(&rule, r)
	}

	return rule
}

// leadingComments returns the comments preceding the first token that is not
// a comment. A shebang line is skipped.
func leadingComments(doc string) []string {
	var comments []string

	i := 0
	if strings.HasPrefix(doc, "#!") {
		i = lineEnd(doc, 0)
	}

	for {
		for i < len(doc) && strings.ContainsRune(" \t\r\n", rune(doc[i])) {
			i++
		}

		switch {
		case strings.HasPrefix(doc[i:], "//"):
			end := lineEnd(doc, i)
			comments = append(comments, doc[i:end])
			i = end
		case strings.HasPrefix(doc[i:], "/*"):
			end := strings.Index(doc[i+2:], "*/")
			if end < 0 {
				return append(comments, doc[i:])
			}

			end += i + 4
			comments = append(comments, doc[i:end])
			i = end
		default:
			return comments
		}
	}
}

func lineEnd(doc string, from int) int {
	if idx := strings.IndexByte(doc[from:], '\n'); idx >= 0 {
		return from + idx
	}

	return len(doc)
}
