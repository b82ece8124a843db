package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithoutFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)

	want := Default()
	want.DataDir = dir
	assert.Equal(t, want, cfg)
}

func TestLoadPartialFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName),
		[]byte(`{"listen_addr": ":9090", "storage": {"backend": "sqlite"}}`), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "themeplane.db", cfg.Storage.Path)
	assert.Equal(t, "themeplane", cfg.AppName)
	assert.Equal(t, filepath.Join(dir, "themeplane.db"), cfg.DatabasePath())
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("THEMEPLANE_APP_NAME", "boutique")
	t.Setenv("THEMEPLANE_LOG_LEVEL", "debug")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "boutique", cfg.AppName)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsBadBackend(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"storage": {"backend": "redis"}}`), 0o644))
	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{`), 0o644))
	_, err := Load(dir)
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	cfg := Default()
	cfg.DataDir = dir
	cfg.AppName = "boutique"
	cfg.Storage.Backend = BackendSQLite
	require.NoError(t, Save(cfg))

	_, err := os.Stat(filepath.Join(dir, FileName+".tmp"))
	assert.True(t, os.IsNotExist(err))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
