package jsinterop

import (
	"testing"

	"github.com/rubiojr/jsexport/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectPreservesOrderAndFilters(t *testing.T) {
	p := model.NewProgram(
		exported("z.Last", "z"),
		&model.Class{Name: "a.Internal"},
		exported("a.First", "a"),
	)
	classes, skipped := Collect(p, fakeMeta{})
	require.Len(t, classes, 2)
	assert.Equal(t, "z.Last", classes[0].Name)
	assert.Equal(t, "a.First", classes[1].Name)
	assert.Empty(t, skipped)
}

func TestCollectSkipsMissingDescriptors(t *testing.T) {
	p := model.NewProgram(exported("a.Kept", "a"), exported("a.Gone", "a"))
	p.Strip("a.Gone")
	p.Declare("b.Never")

	classes, skipped := Collect(p, fakeMeta{})
	require.Len(t, classes, 1)
	assert.Equal(t, "a.Kept", classes[0].Name)
	assert.Equal(t, []string{"a.Gone", "b.Never"}, skipped)
}

func TestCollectDescribesMembers(t *testing.T) {
	first := ctor(model.IntType)
	second := ctor()
	hidden := method("hidden", false, model.VoidType)
	hidden.Public = false
	p := model.NewProgram(exported("a.Foo", "pkg",
		method("run", false, model.VoidType),
		first,
		hidden,
		second,
		method("make", true, model.IntType, model.IntType),
	))

	classes, _ := Collect(p, fakeMeta{})
	require.Len(t, classes, 1)
	cls := classes[0]
	assert.Equal(t, "pkg", cls.Package)
	assert.Equal(t, "Foo", cls.JSName)
	assert.Equal(t, "pkg.Foo", cls.FQN())

	require.NotNil(t, cls.Constructor)
	assert.Same(t, first, cls.Constructor.Method)
	assert.True(t, cls.Constructor.IsConstructor())
	assert.Equal(t, 1, cls.Constructor.ParameterCount())

	require.Len(t, cls.Members, 2)
	assert.Equal(t, "run", cls.Members[0].JSName)
	assert.False(t, cls.Members[0].Static)
	assert.Equal(t, "make", cls.Members[1].JSName)
	assert.True(t, cls.Members[1].Static)
}

func TestCollectNoConstructor(t *testing.T) {
	classes, _ := Collect(model.NewProgram(exported("a.Util", "")), fakeMeta{})
	require.Len(t, classes, 1)
	assert.Nil(t, classes[0].Constructor)
	assert.Equal(t, "Util", classes[0].FQN())
}
