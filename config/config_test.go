package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAndLoadMissing(t *testing.T) {
	c, err := FindAndLoad(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultRuntime(), c.Runtime)
	assert.False(t, c.Output.Minify)
	assert.Empty(t, c.Path)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	src := `
[output]
path = "out/exports.js"
minify = true
indent = "  "

[runtime]
string-to-native = "str"
long-to-js = "lng"
`
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	c, err := FindAndLoad(dir)
	require.NoError(t, err)
	assert.Equal(t, path, c.Path)
	assert.Equal(t, "out/exports.js", c.Output.Path)
	assert.True(t, c.Output.Minify)
	assert.Equal(t, "  ", c.Output.Indent)
	assert.Equal(t, "str", c.Runtime.StringToNative)
	assert.Equal(t, "lng", c.Runtime.LongToJS)
	assert.Equal(t, "$rt_ustr", c.Runtime.StringToJS)
	assert.Equal(t, "Long_fromNumber", c.Runtime.LongToNative)
}

func TestLoadParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("[output\n"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse error")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot read")
}
