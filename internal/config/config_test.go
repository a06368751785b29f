package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFileUsesDefaults(t *testing.T) {
	settings, err := loadSettings(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 1, settings.Workers)
	assert.Equal(t, "auto", settings.Color)
	assert.NotEmpty(t, settings.RCFiles)
}

func TestLoadSettings_FromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
rc_files:
  - /etc/bash.bashrc
  - /home/op/.bashrc
path: /usr/local/bin:/usr/bin
workers: 8
color: never
log_path: /var/log/cmdshadow.jsonl
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	settings, err := loadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"/etc/bash.bashrc", "/home/op/.bashrc"}, settings.RCFiles)
	assert.Equal(t, "/usr/local/bin:/usr/bin", settings.Path)
	assert.Equal(t, 8, settings.Workers)
	assert.Equal(t, "never", settings.Color)
	assert.Equal(t, "/var/log/cmdshadow.jsonl", settings.LogPath)
}

func TestLoadSettings_ClampsWorkers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 0\n"), 0644))

	settings, err := loadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 1, settings.Workers)
}

func TestLoadSettings_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: [not an int\n"), 0644))

	_, err := loadSettings(path)
	assert.Error(t, err)
}
