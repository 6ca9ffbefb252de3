package rewrite

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/wle-js-upgrade/internal/model"
)

// RenderImports renders one import line per library that has symbols, in
// library order. It returns "" when nothing needs importing.
func RenderImports(ctx *m.RewriteContext) string {
	var b strings.Builder

	for _, set := range ctx.ImportSets() {
		if set.Len() == 0 {
			continue
		}

		fmt.Fprintf(&b, "import {%s} from '%s';\n", strings.Join(set.Symbols(), ", "), set.Library)
	}

	return b.String()
}
