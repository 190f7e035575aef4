package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMaster(t *testing.T) {
	path := writeFile(t, `
port: 6001
data_dir: /var/lib/kalavara/db
threads: 8
volumes:
  - http://localhost:7000
  - http://localhost:7001
metrics_addr: 127.0.0.1:9090
`)

	cfg, err := LoadMaster(path)
	require.NoError(t, err)

	assert.Equal(t, 6001, cfg.Port)
	assert.Equal(t, "/var/lib/kalavara/db", cfg.DataDir)
	assert.Equal(t, 8, cfg.Threads)
	assert.Equal(t, []string{"http://localhost:7000", "http://localhost:7001"}, cfg.Volumes)
	assert.Equal(t, "127.0.0.1:9090", cfg.MetricsAddr)
}

func TestLoadVolume(t *testing.T) {
	path := writeFile(t, `
port: 7001
data_dir: /var/lib/kalavara/store
master: http://localhost:6000
base: http://localhost:7001
`)

	cfg, err := LoadVolume(path)
	require.NoError(t, err)

	assert.Equal(t, 7001, cfg.Port)
	assert.Equal(t, "http://localhost:6000", cfg.Master)
	assert.Equal(t, "http://localhost:7001", cfg.Base)
	assert.Zero(t, cfg.Threads)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadMaster(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeFile(t, "port: [not a number")

	_, err := LoadVolume(path)
	assert.Error(t, err)
}
