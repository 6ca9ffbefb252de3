package rewrite

import (
	"testing"

	m "github.com/mouse-blink/wle-js-upgrade/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestRenderImports(t *testing.T) {
	t.Run("nothing to import", func(t *testing.T) {
		assert.Empty(t, RenderImports(m.NewRewriteContext()))
	})

	t.Run("deduplicated and sorted", func(t *testing.T) {
		ctx := m.NewRewriteContext()
		ctx.Engine.Add("Component")
		ctx.Engine.Add("Type")
		ctx.Engine.Add("Component")

		assert.Equal(t, "import {Component, Type} from '@wonderlandengine/api';\n", RenderImports(ctx))
	})

	t.Run("library order is fixed", func(t *testing.T) {
		ctx := m.NewRewriteContext()
		ctx.Math.Add("vec3")
		ctx.Math.Add("quat")
		ctx.Engine.Add("Component")

		want := "import {Component} from '@wonderlandengine/api';\n" +
			"import {quat, vec3} from 'gl-matrix';\n"
		assert.Equal(t, want, RenderImports(ctx))
	})

	t.Run("only math", func(t *testing.T) {
		ctx := m.NewRewriteContext()
		ctx.Math.Add("mat4")

		assert.Equal(t, "import {mat4} from 'gl-matrix';\n", RenderImports(ctx))
	})
}
