package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_TOML(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, ConfigFileTOML, "[app]\nlanguage = \"pt\"\ndll_path = \"C:/bridge.dll\"\n")

	vals, found := loadFile(dir)

	require.True(t, found)
	assert.Equal(t, "pt", vals.Language)
	assert.Equal(t, "C:/bridge.dll", vals.DLLPath)
}

func TestLoadFile_INIBareValue(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, ConfigFileINI, "[app]\nlanguage = pt\n")

	vals, found := loadFile(dir)

	require.True(t, found)
	assert.Equal(t, "pt", vals.Language)
	assert.Empty(t, vals.DLLPath)
}

func TestLoadFile_TOMLTakesPrecedenceOverINI(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, ConfigFileTOML, "[app]\nlanguage = \"en\"\n")
	writeConfigFile(t, dir, ConfigFileINI, "[app]\nlanguage = pt\n")

	vals, found := loadFile(dir)

	require.True(t, found)
	assert.Equal(t, "en", vals.Language)
}

func TestLoadFile_CorruptTOMLFallsThroughToINI(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, ConfigFileTOML, "{{{ this is not toml")
	writeConfigFile(t, dir, ConfigFileINI, "[app]\nlanguage = pt\n")

	vals, found := loadFile(dir)

	require.True(t, found)
	assert.Equal(t, "pt", vals.Language)
}

func TestLoadFile_UnknownKeysAndSectionsIgnored(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, ConfigFileTOML,
		"[app]\nlanguage = \"pt\"\ntheme = \"dark\"\n\n[highlight]\ncolor = \"#ff2d2d\"\n")

	vals, found := loadFile(dir)

	require.True(t, found)
	assert.Equal(t, "pt", vals.Language)
}

func TestLoadFile_Absent(t *testing.T) {
	vals, found := loadFile(t.TempDir())

	assert.False(t, found)
	assert.Empty(t, vals.Language)
}

func TestLoadFile_CorruptTOMLOnly(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, ConfigFileTOML, "\x00\x01 not a config")

	_, found := loadFile(dir)

	assert.False(t, found)
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()

	vals, err := writeDefault(dir)

	require.NoError(t, err)
	assert.Equal(t, "en", vals.Language)

	data, err := os.ReadFile(filepath.Join(dir, ConfigFileTOML))
	require.NoError(t, err)
	assert.Equal(t, "[app]\nlanguage = \"en\"\n", string(data))

	// The written file must round-trip through the loader.
	loaded, found := loadFile(dir)
	require.True(t, found)
	assert.Equal(t, "en", loaded.Language)
}
