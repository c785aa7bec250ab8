package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewConfigStore_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	store, err := NewConfigStore(path)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, path, store.Path())
	_, ok := store.Get("split.pretty")
	assert.False(t, ok)
	assert.NoFileExists(t, path)
}

func TestNewConfigStore_DefaultPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}
	if _, err := os.Stat(filepath.Join(home, DefaultDirName, "config.toml")); err == nil {
		t.Skip("User config present; not touching it")
	}

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, DefaultDirName, "config.toml"), store.Path())
}

func TestConfigStore_NestedTables(t *testing.T) {
	path := writeConfig(t, `
[split]
array_path = "Apple.Banana"
id_path = "id"
pretty = true
collisions = false
output_dir = "out"

[output]
color = false
`)

	store, err := NewConfigStore(path)
	require.NoError(t, err)

	assert.Equal(t, "Apple.Banana", store.GetString("split.array_path"))
	assert.Equal(t, "id", store.GetString("split.id_path"))
	assert.Equal(t, "out", store.GetString("split.output_dir"))
	assert.True(t, store.GetBool("split.pretty"))
	assert.False(t, store.GetBool("split.collisions"))

	val, ok := store.Get("output.color")
	assert.True(t, ok)
	assert.Equal(t, false, val)
}

func TestConfigStore_WrongTypes(t *testing.T) {
	path := writeConfig(t, `
[split]
pretty = "yes"
array_path = 3
`)

	store, err := NewConfigStore(path)
	require.NoError(t, err)

	assert.False(t, store.GetBool("split.pretty"))
	assert.Equal(t, "", store.GetString("split.array_path"))
	assert.Equal(t, "", store.GetString("split.nonexistent"))
}

func TestConfigStore_InvalidTOML(t *testing.T) {
	path := writeConfig(t, "[split\npretty = ")

	_, err := NewConfigStore(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestConfigStore_Reload(t *testing.T) {
	path := writeConfig(t, "[split]\npretty = false\n")
	store, err := NewConfigStore(path)
	require.NoError(t, err)
	assert.False(t, store.GetBool("split.pretty"))

	require.NoError(t, os.WriteFile(path, []byte("[split]\npretty = true\n"), 0o600))
	require.NoError(t, store.Load())

	assert.True(t, store.GetBool("split.pretty"))
}

func TestFlattenMap(t *testing.T) {
	got := flattenMap(map[string]any{
		"a": map[string]any{
			"b": 1,
			"c": map[string]any{"d": "x"},
		},
		"top": true,
	}, "")

	assert.Equal(t, map[string]any{
		"a.b":   1,
		"a.c.d": "x",
		"top":   true,
	}, got)
}
