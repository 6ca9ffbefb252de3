package adapter

import (
	_ "embed"
	"fmt"

	m "github.com/mouse-blink/wle-js-upgrade/internal/model"
)

//go:embed templates/index.js
var defaultEntrypoint string

// TemplateStore provides the canonical entrypoint that replaces stale ones.
type TemplateStore interface {
	Entrypoint() (string, error)
}

type templateStore struct {
	fsAdapter SourceFSAdapter
	path      m.Path
}

// NewTemplateStore constructs a TemplateStore. An empty path selects the
// bundled template; otherwise the template is read from path through
// fsAdapter on every call.
func NewTemplateStore(fsAdapter SourceFSAdapter, path m.Path) TemplateStore {
	return &templateStore{fsAdapter: fsAdapter, path: path}
}

func (ts *templateStore) Entrypoint() (string, error) {
	if ts.path == "" {
		return defaultEntrypoint, nil
	}

	content, err := ts.fsAdapter.ReadFile(ts.path)
	if err != nil {
		return "", fmt.Errorf("failed to read entrypoint template: %w", err)
	}

	return string(content), nil
}
