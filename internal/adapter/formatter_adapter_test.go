package adapter

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/wle-js-upgrade/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireCommand(t *testing.T, name string) {
	t.Helper()

	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
}

func TestExecFormatter_Success(t *testing.T) {
	requireCommand(t, "true")

	path := filepath.Join(t.TempDir(), "a.js")
	writeTestFile(t, path, "a();\n")

	err := NewExecFormatter("true --write").Format(context.Background(), m.Path(path))
	assert.NoError(t, err)
}

func TestExecFormatter_CommandFails(t *testing.T) {
	requireCommand(t, "false")

	err := NewExecFormatter("false").Format(context.Background(), m.Path("a.js"))
	require.ErrorIs(t, err, ErrFormatterUnavailable)
	assert.Contains(t, err.Error(), "false")
}

func TestExecFormatter_Missing(t *testing.T) {
	err := NewExecFormatter("wle-js-upgrade-no-such-formatter --write").Format(context.Background(), m.Path("a.js"))
	require.ErrorIs(t, err, ErrFormatterUnavailable)
}

func TestExecFormatter_NoCommand(t *testing.T) {
	err := NewExecFormatter("  ").Format(context.Background(), m.Path("a.js"))
	require.ErrorIs(t, err, ErrFormatterUnavailable)
}
