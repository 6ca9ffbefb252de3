package domain

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

// staticTemplates serves a fixed entrypoint template.
type staticTemplates string

func (s staticTemplates) Entrypoint() (string, error) {
	return string(s), nil
}

func archiveFile(archive *txtar.Archive, name string) (string, bool) {
	for _, f := range archive.Files {
		if f.Name == name {
			return string(f.Data), true
		}
	}

	return "", false
}

func TestTransform_Golden(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")

		t.Run(name, func(t *testing.T) {
			archive, err := txtar.ParseFile(file)
			require.NoError(t, err)

			input, ok := archiveFile(archive, "input.js")
			require.True(t, ok, "missing input.js")

			want, ok := archiveFile(archive, "output.js")
			require.True(t, ok, "missing output.js")

			template, _ := archiveFile(archive, "template.js")

			orch := NewOrchestrator(nil, nil, staticTemplates(template), nil)

			got, err := orch.Transform(input)
			require.NoError(t, err)
			assert.Equal(t, want, got.Content)
		})
	}
}

func TestTransform_MigratedOutputIsFixedPoint(t *testing.T) {
	for _, name := range []string{"spinner", "async-xr", "already-migrated", "regex-literals"} {
		t.Run(name, func(t *testing.T) {
			archive, err := txtar.ParseFile(filepath.Join("testdata", name+".txtar"))
			require.NoError(t, err)

			output, ok := archiveFile(archive, "output.js")
			require.True(t, ok)

			got, err := NewOrchestrator(nil, nil, staticTemplates(""), nil).Transform(output)
			require.NoError(t, err)
			assert.Equal(t, output, got.Content)
			assert.Empty(t, got.Context.Components)
		})
	}
}
