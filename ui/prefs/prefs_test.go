package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingFileGivesDefaults(t *testing.T) {
	p := LoadFrom(filepath.Join(t.TempDir(), "none.json"))
	assert.Equal(t, 1100.0, p.FloatWithFallback(KeyWindowWidth, 1100))
	assert.Equal(t, "", p.String(KeyExportDir))
	assert.False(t, p.Dirty())
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", prefsFile)
	p := LoadFrom(path)
	p.SetFloat(KeyWindowWidth, 1280)
	p.SetString(KeyExportDir, "/tmp/out")
	assert.True(t, p.Dirty())

	require.NoError(t, p.Save())
	assert.False(t, p.Dirty())

	q := LoadFrom(path)
	assert.Equal(t, 1280.0, q.FloatWithFallback(KeyWindowWidth, 0))
	assert.Equal(t, "/tmp/out", q.String(KeyExportDir))
}

func TestSettingSameValueIsClean(t *testing.T) {
	path := filepath.Join(t.TempDir(), prefsFile)
	p := LoadFrom(path)
	p.SetFloat(KeyWindowHeight, 720)
	require.NoError(t, p.Save())

	p.SetFloat(KeyWindowHeight, 720)
	assert.False(t, p.Dirty())
}

func TestCorruptFileIsIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), prefsFile)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	p := LoadFrom(path)
	assert.Equal(t, 5.0, p.FloatWithFallback(KeyWindowWidth, 5))
	assert.Equal(t, path, p.Path())
}
