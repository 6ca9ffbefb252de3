package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportSet_AddIsIdempotentAndSorted(t *testing.T) {
	set := NewImportSet(LibraryEngine)
	set.Add("Type")
	set.Add("Component")
	set.Add("Component")
	set.Add("")

	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"Component", "Type"}, set.Symbols())
}

func TestImportSet_ZeroValue(t *testing.T) {
	var set ImportSet
	set.Add("vec3")

	assert.Equal(t, []string{"vec3"}, set.Symbols())
}

func TestRewriteContext_ImportSetsOrder(t *testing.T) {
	ctx := NewRewriteContext()
	ctx.Imports(LibraryMath).Add("quat")
	ctx.Imports(LibraryEngine).Add("Component")

	sets := ctx.ImportSets()
	if assert.Len(t, sets, 2) {
		assert.Equal(t, LibraryEngine, sets[0].Library)
		assert.Equal(t, LibraryMath, sets[1].Library)
		assert.Equal(t, []string{"quat"}, sets[1].Symbols())
	}
}

func TestScopeSpan_Inner(t *testing.T) {
	text := "a{bc}d"
	span := ScopeSpan{Start: 1, End: 4}

	assert.Equal(t, "bc", span.Inner(text))
	assert.Equal(t, 4, span.Len())
}
