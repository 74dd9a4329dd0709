package kvstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir)
	require.NoError(t, err)

	_, ok := f.Get("user")
	assert.False(t, ok)

	require.NoError(t, f.Set("user", `{"name":"Jane"}`))

	// A fresh handle sees the persisted value.
	g, err := NewFile(dir)
	require.NoError(t, err)
	v, ok := g.Get("user")
	assert.True(t, ok)
	assert.Equal(t, `{"name":"Jane"}`, v)
}

func TestFileRemove(t *testing.T) {
	f, err := NewFile(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, f.Set("k", "v"))
	require.NoError(t, f.Remove("k"))
	_, ok := f.Get("k")
	assert.False(t, ok)

	// Removing a missing key is fine.
	assert.NoError(t, f.Remove("k"))
}

func TestFileCorruptStateStartsFresh(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "state.json"), []byte("{broken"), 0644))

	f, err := NewFile(dir)
	require.NoError(t, err)
	_, ok := f.Get("anything")
	assert.False(t, ok)
}

func TestFileReloadPicksUpExternalWrites(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, f.Set("k", "old"))

	require.NoError(t, os.WriteFile(f.Path(), []byte(`{"k":"new"}`), 0644))
	f.Reload()

	v, _ := f.Get("k")
	assert.Equal(t, "new", v)
}

func TestFileReloadIgnoresCorruptRewrite(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, f.Set("k", "keep"))

	require.NoError(t, os.WriteFile(f.Path(), []byte("garbage"), 0644))
	f.Reload()

	v, _ := f.Get("k")
	assert.Equal(t, "keep", v)
}

func TestMemory(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Set("a", "1"))
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	require.NoError(t, m.Remove("a"))
	_, ok = m.Get("a")
	assert.False(t, ok)
}

func TestDefaultDataDirPerOS(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t,
		filepath.Join(home, "Library", "Application Support", "fluorish"),
		defaultDataDirForOS("darwin"))

	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "fluorish"), defaultDataDirForOS("linux"))
}
